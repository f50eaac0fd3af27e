package ui

import (
	"cityassist/internal/i18n"
	"cityassist/internal/models"
)

// Messages emitted by the screens. The root model translates them into
// state controller calls; screens never mutate application state
// themselves.

// StartChatRequested starts a new chat, optionally bound to an assistant.
// An empty Text opens an empty conversation.
type StartChatRequested struct {
	Text      string
	Assistant *models.Assistant
}

// ChatSelected opens an existing chat.
type ChatSelected struct {
	Chat models.Chat
}

type ChatDeleted struct {
	ChatID string
}

type ChatRenamed struct {
	ChatID string
	Title  string
}

// MessageSubmitted sends a message in the current chat.
type MessageSubmitted struct {
	Content string
}

// ModelSelected picks an LLM model for the current chat.
type ModelSelected struct {
	ModelID string
}

// ChatSettingsSaved applies the chat settings modal.
type ChatSettingsSaved struct {
	Behavior     models.ResponseBehavior
	SystemPrompt string
}

// Navigation requests.
type HomeRequested struct{}
type DiscoveryRequested struct{}
type VersionRequested struct{}
type TermsRequested struct{}

// EditorRequested opens the assistant editor; a nil Assistant means
// "create new".
type EditorRequested struct {
	Assistant *models.Assistant
}

type FavoriteToggled struct {
	AssistantID string
}

type AssistantDeleted struct {
	AssistantID string
}

// AssistantSaved commits the editor form. Existing is nil on create.
type AssistantSaved struct {
	Existing *models.Assistant
	Draft    models.AssistantDraft
}

type EditorCancelled struct{}

// ExportRequested writes an assistant definition file.
type ExportRequested struct {
	Assistant models.Assistant
}

// ImportRequested parses an assistant definition file from Path.
type ImportRequested struct {
	Path string
}

// SecureModeToggled flips the secure/private mode.
type SecureModeToggled struct{}

type SecureIntroConfirmed struct{}
type SecureIntroDismissed struct{}

type TermsAccepted struct{}
type TermsDismissed struct{}

// LanguageSelected switches the UI language.
type LanguageSelected struct {
	Language i18n.Language
}
