package chatRepository

import (
	"ElectionAssistant/internal/entity"
	"time"

	"golang.org/x/net/context"
)

// Repository keeps a session's messages in creation order. History expires
// together with the session.
type Repository interface {
	AppendMessage(ctx context.Context, sessionID string, msg entity.Message) error
	GetMessages(ctx context.Context, sessionID string) ([]entity.Message, error)
	ClearMessages(ctx context.Context, sessionID string) error
}

type Config struct {
	HistoryLimit int
	SessionTTL   time.Duration
}

func historyKey(sessionID string) string {
	return "chat:history:" + sessionID
}
