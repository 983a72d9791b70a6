package chat

import (
	"ElectionAssistant/internal/entity"
	"ElectionAssistant/pkg/nlp"
	"mime/multipart"
	"time"
)

const Greeting = "Welcome to VoteSense. I can help with election queries regarding parties, symbols, slogans and candidates. How can I assist you today?"

type SessionResponse struct {
	SessionID string           `json:"session_id"`
	Token     string           `json:"token"`
	ExpiresAt time.Time        `json:"expires_at"`
	Messages  []entity.Message `json:"messages"`
}

type SendMessageRequest struct {
	Text  string `json:"text" validate:"required,notblank,max=500"`
	Speak bool   `json:"speak"`
}

type SendVoiceRequest struct {
	Audio *multipart.FileHeader `validate:"required"`
}

type ExchangeResponse struct {
	UserMessage entity.Message `json:"user_message"`
	BotMessage  entity.Message `json:"bot_message"`
	Transcript  string         `json:"transcript,omitempty"`
	AudioURL    string         `json:"audio_url,omitempty"`
	AudioBase64 string         `json:"audio_base64,omitempty"`
}

type HistoryResponse struct {
	SessionID string           `json:"session_id"`
	Messages  []entity.Message `json:"messages"`
	Total     int              `json:"total"`
}

type AnalyzeRequest struct {
	Text string `json:"text" validate:"required,notblank,max=500"`
}

type AnalyzeResponse struct {
	Input    string           `json:"input"`
	Tokens   []string         `json:"tokens"`
	Related  bool             `json:"related"`
	Intent   nlp.Intent       `json:"intent"`
	Entity   *nlp.EntityMatch `json:"entity,omitempty"`
	Response string           `json:"response"`
}

type SuggestionsRequest struct {
	Query string `query:"q" validate:"max=100"`
}

type SuggestionsResponse struct {
	Query       string   `json:"query"`
	Suggestions []string `json:"suggestions"`
}

type WSMessage struct {
	Type    string          `json:"type"`
	Message *entity.Message `json:"message,omitempty"`
	Error   string          `json:"error,omitempty"`
}

const (
	WSTypeMessage = "message"
	WSTypeError   = "error"
)
