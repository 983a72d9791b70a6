package chatService

import (
	"ElectionAssistant/internal/api/chat"
	"ElectionAssistant/internal/entity"
	contextPkg "ElectionAssistant/pkg/context"
	jwtPkg "ElectionAssistant/pkg/jwt"
	"ElectionAssistant/pkg/nlp"
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

func (s *chatService) StartSession(ctx context.Context) (*chat.SessionResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	sessionID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate session ID")
		return nil, chat.ErrSessionCreationFailed
	}

	token, expiredAt, err := jwtPkg.Sign(map[string]interface{}{
		"session_id": sessionID,
	}, s.config.SessionTTL)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to sign session token")
		return nil, chat.ErrSessionCreationFailed
	}

	greeting := s.ids.NewMessage(entity.SenderBot, chat.Greeting)
	if err := s.chatRepo.AppendMessage(ctx, sessionID, greeting); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to store greeting")
		return nil, chat.ErrHistoryUnavailable
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"session_id": sessionID,
	}).Info("Chat session started")

	return &chat.SessionResponse{
		SessionID: sessionID,
		Token:     token,
		ExpiresAt: time.Unix(expiredAt, 0).UTC(),
		Messages:  []entity.Message{greeting},
	}, nil
}

func (s *chatService) SendMessage(ctx context.Context, sessionID string, req chat.SendMessageRequest) (*chat.ExchangeResponse, error) {
	res, err := s.exchange(ctx, sessionID, req.Text)
	if err != nil {
		return nil, err
	}

	if req.Speak {
		s.attachSpeech(ctx, res)
	}

	return res, nil
}

// exchange records the user's message, answers it and records the answer.
// Surrounding whitespace is dropped before either is stored.
func (s *chatService) exchange(ctx context.Context, sessionID string, text string) (*chat.ExchangeResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)
	text = strings.TrimSpace(text)

	userMessage := s.ids.NewMessage(entity.SenderUser, text)
	if err := s.chatRepo.AppendMessage(ctx, sessionID, userMessage); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to store user message")
		return nil, chat.ErrHistoryUnavailable
	}

	analysis := s.engine.Analyze(text)

	botMessage := s.ids.NewMessage(entity.SenderBot, analysis.Response)
	if err := s.chatRepo.AppendMessage(ctx, sessionID, botMessage); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to store bot message")
		return nil, chat.ErrHistoryUnavailable
	}

	fields := logrus.Fields{
		"request_id": requestID,
		"session_id": sessionID,
		"related":    analysis.Related,
		"intent":     analysis.Intent,
	}
	if analysis.Entity != nil {
		fields["entity_type"] = analysis.Entity.Type
		fields["party"] = analysis.Entity.Party.ShortName
	}
	s.log.WithFields(fields).Debug("Query answered")

	return &chat.ExchangeResponse{
		UserMessage: userMessage,
		BotMessage:  botMessage,
	}, nil
}

func (s *chatService) GetHistory(ctx context.Context, sessionID string) (*chat.HistoryResponse, error) {
	messages, err := s.chatRepo.GetMessages(ctx, sessionID)
	if err != nil {
		return nil, chat.ErrHistoryUnavailable
	}

	return &chat.HistoryResponse{
		SessionID: sessionID,
		Messages:  messages,
		Total:     len(messages),
	}, nil
}

func (s *chatService) ClearHistory(ctx context.Context, sessionID string) error {
	if err := s.chatRepo.ClearMessages(ctx, sessionID); err != nil {
		return chat.ErrHistoryUnavailable
	}

	s.log.WithFields(logrus.Fields{
		"request_id": contextPkg.GetRequestID(ctx),
		"session_id": sessionID,
	}).Info("Chat history cleared")

	return nil
}

func (s *chatService) Analyze(ctx context.Context, req chat.AnalyzeRequest) (*chat.AnalyzeResponse, error) {
	a := s.engine.Analyze(req.Text)

	return &chat.AnalyzeResponse{
		Input:    a.Input,
		Tokens:   a.Tokens,
		Related:  a.Related,
		Intent:   a.Intent,
		Entity:   a.Entity,
		Response: a.Response,
	}, nil
}

func (s *chatService) Suggest(ctx context.Context, req chat.SuggestionsRequest) (*chat.SuggestionsResponse, error) {
	return &chat.SuggestionsResponse{
		Query:       req.Query,
		Suggestions: s.suggester.Suggest(req.Query, nlp.MaxSuggestions),
	}, nil
}
