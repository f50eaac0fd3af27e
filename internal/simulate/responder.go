// Package simulate produces assistant replies. The Simulator is a local
// stand-in for a real inference backend; the Responder interface lets a
// live backend replace it without touching the state controller.
package simulate

import (
	"context"

	"cityassist/internal/i18n"
	"cityassist/internal/models"
)

// Request carries everything a responder needs: a snapshot of the chat as
// it looked when the reply was scheduled, the resolved assistant (may be
// nil) and the session flags captured at schedule time.
type Request struct {
	Chat       models.Chat
	Assistant  *models.Assistant
	FirstReply bool
	SecureMode bool
	Language   i18n.Language
}

// Result is the outcome of a reply generation. Backends report failures
// through Err rather than letting errors escape into UI state; the
// Simulator never fails by construction.
type Result struct {
	Message models.Message
	Err     error
}

// Responder generates one assistant reply for a request. Implementations
// must honor ctx cancellation.
type Responder interface {
	GenerateReply(ctx context.Context, req Request) Result
}
