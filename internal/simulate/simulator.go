package simulate

import (
	"context"
	"time"

	"cityassist/internal/i18n"
	"cityassist/internal/models"
)

// SecureMarker is appended to simulated replies while secure mode is
// active. It is a fixed marker string, deliberately not translated.
const SecureMarker = "[SECURE MODE: LOGGING DISABLED]"

const (
	// FirstReplyDelay applies to the very first reply of a brand-new chat.
	FirstReplyDelay = 500 * time.Millisecond

	// ReplyDelay applies to every subsequent reply.
	ReplyDelay = 800 * time.Millisecond
)

// Simulator produces deterministic replies after a fixed delay. It
// performs no I/O and cannot fail; cancellation is the only early exit.
type Simulator struct {
	firstReplyDelay time.Duration
	replyDelay      time.Duration
}

func NewSimulator() *Simulator {
	return &Simulator{
		firstReplyDelay: FirstReplyDelay,
		replyDelay:      ReplyDelay,
	}
}

// NewSimulatorWithDelays is used by tests to avoid wall-clock waits.
func NewSimulatorWithDelays(first, subsequent time.Duration) *Simulator {
	return &Simulator{firstReplyDelay: first, replyDelay: subsequent}
}

func (s *Simulator) GenerateReply(ctx context.Context, req Request) Result {
	delay := s.replyDelay
	if req.FirstReply {
		delay = s.firstReplyDelay
	}

	select {
	case <-ctx.Done():
		return Result{Err: ctx.Err()}
	case <-time.After(delay):
	}

	return Result{Message: models.NewMessage(models.RoleAssistant, s.content(req))}
}

// content derives the reply deterministically from the assistant's
// name/description, the secure-mode flag and the effective behavior.
func (s *Simulator) content(req Request) string {
	if req.FirstReply {
		return s.greeting(req)
	}

	name := i18n.T(i18n.KeyTheAssistant, req.Language)
	if req.Assistant != nil && req.Assistant.Name != "" {
		name = req.Assistant.Name
	}

	marker := ""
	if req.SecureMode {
		marker = " " + SecureMarker
	}

	behavior := models.EffectiveBehavior(&req.Chat, req.Assistant)
	return i18n.Tf(i18n.KeySimulatedReply, req.Language, name, marker, behavior)
}

func (s *Simulator) greeting(req Request) string {
	if req.Assistant != nil && req.Assistant.SystemPrompt != "" {
		return i18n.Tf(i18n.KeySimulatedGreetingNamed, req.Language,
			req.Assistant.Name, req.Assistant.Description)
	}
	return i18n.T(i18n.KeySimulatedGreeting, req.Language)
}
