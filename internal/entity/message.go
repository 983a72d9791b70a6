package entity

import (
	"sync"
	"time"
)

type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

type Message struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Sender    Sender    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

// MessageIDGenerator hands out millisecond timestamps as message ids, bumping
// to last+1 when the clock has not advanced so ids stay strictly increasing.
type MessageIDGenerator struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

func NewMessageIDGenerator() *MessageIDGenerator {
	return &MessageIDGenerator{now: time.Now}
}

func (g *MessageIDGenerator) Next() (int64, time.Time) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	id := now.UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id

	return id, now
}

func (g *MessageIDGenerator) NewMessage(sender Sender, text string) Message {
	id, ts := g.Next()
	return Message{
		ID:        id,
		Text:      text,
		Sender:    sender,
		Timestamp: ts,
	}
}
