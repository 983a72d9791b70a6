package chat

import "ElectionAssistant/pkg/response"

var (
	ErrInvalidAudioFile      = response.NewError(400, "invalid audio file")
	ErrAudioFileTooLarge     = response.NewError(400, "audio file too large")
	ErrUnsupportedFormat     = response.NewError(400, "unsupported audio format")
	ErrEmptyTranscript       = response.NewError(422, "no speech recognized")
	ErrTranscriptionFailed   = response.NewError(502, "failed to transcribe audio")
	ErrVoiceInputDisabled    = response.NewError(503, "voice input is not configured")
	ErrSessionCreationFailed = response.NewError(500, "failed to create chat session")
	ErrHistoryUnavailable    = response.NewError(503, "message history unavailable")
)
