package entity

import "time"

type ChatSession struct {
	ID        string
	ExpiresAt time.Time
}
