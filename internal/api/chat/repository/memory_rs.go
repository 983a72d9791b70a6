package chatRepository

import (
	"ElectionAssistant/internal/entity"
	"context"
	"sync"
	"time"
)

type memoryHistory struct {
	messages  []entity.Message
	expiresAt time.Time
}

type memoryRepository struct {
	mu       sync.Mutex
	sessions map[string]*memoryHistory
	config   Config
	now      func() time.Time
}

// NewMemoryRepository is used when no redis is configured. History lives only
// as long as the process.
func NewMemoryRepository(config Config) Repository {
	return &memoryRepository{
		sessions: make(map[string]*memoryHistory),
		config:   config,
		now:      time.Now,
	}
}

func (r *memoryRepository) AppendMessage(ctx context.Context, sessionID string, msg entity.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.evictExpired(now)

	h, ok := r.sessions[historyKey(sessionID)]
	if !ok {
		h = &memoryHistory{}
		r.sessions[historyKey(sessionID)] = h
	}

	h.messages = append(h.messages, msg)
	if limit := r.config.HistoryLimit; limit > 0 && len(h.messages) > limit {
		h.messages = append([]entity.Message(nil), h.messages[len(h.messages)-limit:]...)
	}
	if r.config.SessionTTL > 0 {
		h.expiresAt = now.Add(r.config.SessionTTL)
	}

	return nil
}

func (r *memoryRepository) GetMessages(ctx context.Context, sessionID string) ([]entity.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.evictExpired(r.now())

	h, ok := r.sessions[historyKey(sessionID)]
	if !ok {
		return []entity.Message{}, nil
	}

	return append([]entity.Message(nil), h.messages...), nil
}

func (r *memoryRepository) ClearMessages(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, historyKey(sessionID))
	return nil
}

// evictExpired runs under r.mu.
func (r *memoryRepository) evictExpired(now time.Time) {
	for key, h := range r.sessions {
		if !h.expiresAt.IsZero() && now.After(h.expiresAt) {
			delete(r.sessions, key)
		}
	}
}
