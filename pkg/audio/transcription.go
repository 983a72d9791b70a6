package audio

import (
	"context"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

type ITranscriber interface {
	TranscribeAudio(ctx context.Context, filePath string) (string, error)
}

type TranscriptionService struct {
	client   *openai.Client
	language string
}

func NewTranscriptionService(apiKey string, language string) *TranscriptionService {
	if language == "" {
		language = "en"
	}
	return &TranscriptionService{
		client:   openai.NewClient(apiKey),
		language: language,
	}
}

func (t *TranscriptionService) TranscribeAudio(ctx context.Context, filePath string) (string, error) {
	resp, err := t.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: filePath,
		Language: t.language,
	})
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.Text), nil
}
