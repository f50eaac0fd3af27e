package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single entry in a chat's conversation. Messages are
// immutable once created and owned by their parent chat.
type Message struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

func NewMessage(role, content string) Message {
	return Message{
		ID:        NewID(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	}
}

// NewID returns a globally unique identifier. Wall-clock millisecond ids
// collide under rapid calls, so ids are random UUIDs instead.
func NewID() string {
	return uuid.New().String()
}
