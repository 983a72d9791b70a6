package utils

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	ErrNoFile            = errors.New("no file uploaded")
	ErrFileTooLarge      = errors.New("file size exceeds limit")
	ErrUnsupportedFormat = errors.New("unsupported file format")
)

type IUtils interface {
	NewULIDFromTimestamp(t time.Time) (string, error)
	ValidateAudioFile(file *multipart.FileHeader) error
	SaveTempFile(file *multipart.FileHeader) (string, func(), error)
	EncodeBase64(data []byte) string
}

type utils struct {
	maxFileSize    int64
	allowedFormats map[string]bool
}

func New() IUtils {
	return NewWithLimits(10*1024*1024, []string{".webm", ".wav", ".mp3", ".m4a", ".ogg"})
}

func NewWithLimits(maxFileSize int64, allowedFormats []string) IUtils {
	formats := make(map[string]bool, len(allowedFormats))
	for _, f := range allowedFormats {
		formats[strings.ToLower(f)] = true
	}

	return &utils{
		maxFileSize:    maxFileSize,
		allowedFormats: formats,
	}
}

func (u *utils) NewULIDFromTimestamp(t time.Time) (string, error) {
	ms := ulid.Timestamp(t)
	entropy := ulid.Monotonic(rand.Reader, 0)

	id, err := ulid.New(ms, entropy)
	if err != nil {
		return "", err
	}

	return id.String(), nil
}

func (u *utils) ValidateAudioFile(file *multipart.FileHeader) error {
	if file == nil {
		return ErrNoFile
	}

	if file.Size > u.maxFileSize {
		return ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !u.allowedFormats[ext] {
		return ErrUnsupportedFormat
	}

	return nil
}

// SaveTempFile copies an upload to disk, keeping its extension so format
// sniffing downstream still works. The returned func removes the file.
func (u *utils) SaveTempFile(file *multipart.FileHeader) (string, func(), error) {
	src, err := file.Open()
	if err != nil {
		return "", nil, err
	}
	defer src.Close()

	dst, err := os.CreateTemp("", "upload-*"+strings.ToLower(filepath.Ext(file.Filename)))
	if err != nil {
		return "", nil, err
	}

	cleanup := func() { _ = os.Remove(dst.Name()) }

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		cleanup()
		return "", nil, err
	}
	if err := dst.Close(); err != nil {
		cleanup()
		return "", nil, err
	}

	return dst.Name(), cleanup, nil
}

func (u *utils) EncodeBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}
