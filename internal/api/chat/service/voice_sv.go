package chatService

import (
	"ElectionAssistant/internal/api/chat"
	"ElectionAssistant/pkg/audio"
	contextPkg "ElectionAssistant/pkg/context"
	"ElectionAssistant/pkg/utils"
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
)

func (s *chatService) SendVoice(ctx context.Context, sessionID string, req chat.SendVoiceRequest) (*chat.ExchangeResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if s.transcriber == nil {
		return nil, chat.ErrVoiceInputDisabled
	}

	if err := s.validateAudioFile(req); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid audio file")
		return nil, err
	}

	path, cleanup, err := s.utils.SaveTempFile(req.Audio)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to save audio file")
		return nil, chat.ErrInvalidAudioFile
	}
	defer cleanup()

	transcript, err := s.transcriber.TranscribeAudio(ctx, path)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to transcribe audio")
		return nil, chat.ErrTranscriptionFailed
	}

	transcript = strings.TrimSpace(transcript)
	if transcript == "" {
		return nil, chat.ErrEmptyTranscript
	}

	res, err := s.exchange(ctx, sessionID, transcript)
	if err != nil {
		return nil, err
	}
	res.Transcript = transcript

	s.attachSpeech(ctx, res)

	return res, nil
}

func (s *chatService) validateAudioFile(req chat.SendVoiceRequest) error {
	err := s.utils.ValidateAudioFile(req.Audio)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, utils.ErrFileTooLarge):
		return chat.ErrAudioFileTooLarge
	case errors.Is(err, utils.ErrUnsupportedFormat):
		return chat.ErrUnsupportedFormat
	default:
		return chat.ErrInvalidAudioFile
	}
}

// attachSpeech voices the bot reply. Failures are logged and leave the reply text only.
func (s *chatService) attachSpeech(ctx context.Context, res *chat.ExchangeResponse) {
	if s.synthesizer == nil {
		return
	}

	requestID := contextPkg.GetRequestID(ctx)

	data, err := s.synthesizer.GenerateAudio(ctx, res.BotMessage.Text)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to generate audio response, continuing without audio")
		return
	}

	if s.s3Client == nil {
		res.AudioBase64 = s.utils.EncodeBase64(data)
		return
	}

	location, err := s.s3Client.UploadFileFromBytes(audio.NewAudioFileName(), data, "audio/mpeg")
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to upload audio response, returning it inline")
		res.AudioBase64 = s.utils.EncodeBase64(data)
		return
	}

	url, err := s.s3Client.PresignUrl(location)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to presign audio response, returning it inline")
		if derr := s.s3Client.DeleteFile(location); derr != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"location":   location,
				"error":      derr.Error(),
			}).Warn("Failed to delete unreachable audio object")
		}
		res.AudioBase64 = s.utils.EncodeBase64(data)
		return
	}
	res.AudioURL = url
}
