package models

import (
	"strings"
	"testing"
	"time"
)

func TestNewChatWithMessage(t *testing.T) {
	chat := NewChat("Hello there", nil)

	if chat.ID == "" {
		t.Error("expected a generated id")
	}
	if chat.Title != "Hello there" {
		t.Errorf("expected the message as title, got %q", chat.Title)
	}
	if len(chat.Messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(chat.Messages))
	}
	if chat.Messages[0].Role != RoleUser {
		t.Errorf("expected a user message, got %s", chat.Messages[0].Role)
	}
}

func TestNewChatEmptyMessage(t *testing.T) {
	a := Assistant{ID: "a1", Name: "Guide"}
	chat := NewChat("", &a)

	if len(chat.Messages) != 0 {
		t.Errorf("expected no messages, got %d", len(chat.Messages))
	}
	if chat.Title != "Chat with Guide" {
		t.Errorf("unexpected title %q", chat.Title)
	}
	if chat.AssistantID != "a1" {
		t.Errorf("expected the assistant binding, got %q", chat.AssistantID)
	}
}

func TestDeriveTitle(t *testing.T) {
	tests := []struct {
		name      string
		message   string
		assistant *Assistant
		want      string
	}{
		{"message wins", "Hi", &Assistant{Name: "Guide"}, "Hi"},
		{"assistant fallback", "", &Assistant{Name: "Guide"}, "Chat with Guide"},
		{"generic fallback", "", nil, "Chat with Assistant"},
		{"unnamed assistant", "", &Assistant{}, "Chat with Assistant"},
		{"truncated at 50 runes", strings.Repeat("ä", 60), nil, strings.Repeat("ä", 50)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveTitle(tt.message, tt.assistant); got != tt.want {
				t.Errorf("DeriveTitle = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAppendFillsEmptyTitle(t *testing.T) {
	chat := Chat{ID: NewID(), Messages: []Message{}}
	msg := NewMessage(RoleUser, "What about parking permits?")

	chat.Append(msg)

	if chat.Title != "What about parking permits?" {
		t.Errorf("expected the title filled from content, got %q", chat.Title)
	}
	if !chat.UpdatedAt.Equal(msg.Timestamp) {
		t.Error("expected UpdatedAt to match the appended message")
	}

	// A set title is never overwritten.
	chat.Append(NewMessage(RoleUser, "another message"))
	if chat.Title != "What about parking permits?" {
		t.Errorf("expected the title untouched, got %q", chat.Title)
	}
}

func TestChatCloneDoesNotShareMessages(t *testing.T) {
	chat := NewChat("Hello", nil)
	clone := chat.Clone()

	clone.Messages[0].Content = "mutated"
	if chat.Messages[0].Content != "Hello" {
		t.Error("Clone must deep-copy the message slice")
	}

	clone.Messages = append(clone.Messages, NewMessage(RoleAssistant, "extra"))
	if len(chat.Messages) != 1 {
		t.Error("appending to a clone must not grow the original")
	}
}

func TestEffectiveBehavior(t *testing.T) {
	tests := []struct {
		name      string
		chat      *Chat
		assistant *Assistant
		want      ResponseBehavior
	}{
		{"chat wins", &Chat{ResponseBehavior: BehaviorPrecise}, &Assistant{ResponseBehavior: BehaviorCreative}, BehaviorPrecise},
		{"assistant fallback", &Chat{}, &Assistant{ResponseBehavior: BehaviorCreative}, BehaviorCreative},
		{"balanced default", &Chat{}, &Assistant{}, BehaviorBalanced},
		{"nil everything", nil, nil, BehaviorBalanced},
		{"invalid chat value ignored", &Chat{ResponseBehavior: "wild"}, &Assistant{ResponseBehavior: BehaviorPrecise}, BehaviorPrecise},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EffectiveBehavior(tt.chat, tt.assistant); got != tt.want {
				t.Errorf("EffectiveBehavior = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestMessageTimestamps(t *testing.T) {
	before := time.Now()
	msg := NewMessage(RoleAssistant, "hi")
	after := time.Now()

	if msg.Timestamp.Before(before) || msg.Timestamp.After(after) {
		t.Error("expected a fresh timestamp")
	}
	if msg.ID == "" {
		t.Error("expected a generated message id")
	}
}
