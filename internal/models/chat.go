package models

import (
	"time"
)

// titleLimit is the maximum number of runes taken from a message when
// deriving a chat title.
const titleLimit = 50

// Chat is one conversation thread, optionally bound to an assistant.
// Message order is conversation order.
type Chat struct {
	ID               string           `json:"id"`
	Title            string           `json:"title"`
	AssistantID      string           `json:"assistantId,omitempty"`
	Messages         []Message        `json:"messages"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
	LLMModel         string           `json:"llmModel,omitempty"`
	ResponseBehavior ResponseBehavior `json:"responseBehavior,omitempty"`
	SystemPrompt     string           `json:"systemPrompt,omitempty"`
}

// NewChat creates a chat titled after the opening message (or the
// assistant's name when the message is empty). A non-empty message becomes
// the first user message; an empty message yields an empty conversation.
func NewChat(message string, assistant *Assistant) Chat {
	now := time.Now()
	chat := Chat{
		ID:        NewID(),
		Title:     DeriveTitle(message, assistant),
		CreatedAt: now,
		UpdatedAt: now,
		Messages:  []Message{},
	}
	if assistant != nil {
		chat.AssistantID = assistant.ID
	}
	if message != "" {
		chat.Messages = append(chat.Messages, NewMessage(RoleUser, message))
	}
	return chat
}

// DeriveTitle returns the first 50 runes of message, falling back to a
// "Chat with ..." default when the message is empty.
func DeriveTitle(message string, assistant *Assistant) string {
	if t := TruncateTitle(message); t != "" {
		return t
	}
	name := "Assistant"
	if assistant != nil && assistant.Name != "" {
		name = assistant.Name
	}
	return "Chat with " + name
}

// TruncateTitle clips content to the title length limit.
func TruncateTitle(content string) string {
	runes := []rune(content)
	if len(runes) > titleLimit {
		return string(runes[:titleLimit])
	}
	return content
}

// Append adds a message, refreshes UpdatedAt and fills in the title from
// the message content when no title is set yet.
func (c *Chat) Append(msg Message) {
	c.Messages = append(c.Messages, msg)
	c.UpdatedAt = msg.Timestamp
	if c.Title == "" {
		c.Title = TruncateTitle(msg.Content)
	}
}

// Clone returns a deep copy; the message slice is not shared.
func (c Chat) Clone() Chat {
	out := c
	out.Messages = make([]Message, len(c.Messages))
	copy(out.Messages, c.Messages)
	return out
}
