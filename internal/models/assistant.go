package models

import (
	"errors"
	"time"
)

const (
	CreatedBySystem = "system"
	CreatedByUser   = "user"
)

// ErrMissingFields is returned when a draft lacks the required name or
// description. Validation blocks the save before any state mutation.
var ErrMissingFields = errors.New("assistant name and description are required")

// Assistant is a reusable persona configuration a chat can bind to.
// Only user-created assistants are persisted and editable; built-in
// ("system") assistants come from the static catalog and are read-only.
type Assistant struct {
	ID                   string           `json:"id"`
	Name                 string           `json:"name"`
	Description          string           `json:"description"`
	Icon                 string           `json:"icon"`
	SystemPrompt         string           `json:"systemPrompt"`
	ResponseBehavior     ResponseBehavior `json:"responseBehavior"`
	AllowedTools         []string         `json:"allowedTools"`
	CreatedBy            string           `json:"createdBy"`
	IsPublic             bool             `json:"isPublic"`
	PublishedDepartments []string         `json:"publishedDepartments,omitempty"`
	QuickPrompts         []string         `json:"quickPrompts,omitempty"`
	UpdatedAt            time.Time        `json:"updatedAt,omitempty"`
	SubscriptionCount    int              `json:"subscriptionCount,omitempty"`
}

// AssistantDraft carries the user-editable fields collected by the editor.
type AssistantDraft struct {
	Name                 string
	Description          string
	Icon                 string
	SystemPrompt         string
	ResponseBehavior     ResponseBehavior
	AllowedTools         []string
	PublishedDepartments []string
	QuickPrompts         []string
}

// Validate checks the required fields. Partial saves are forbidden, so
// callers must not mutate any state when this fails.
func (d AssistantDraft) Validate() error {
	if d.Name == "" || d.Description == "" {
		return ErrMissingFields
	}
	return nil
}

// NewAssistant materializes a draft as a user-created assistant.
// Publication to at least one department makes it public.
func NewAssistant(d AssistantDraft) Assistant {
	behavior := d.ResponseBehavior
	if !behavior.Valid() {
		behavior = BehaviorBalanced
	}
	return Assistant{
		ID:                   NewID(),
		Name:                 d.Name,
		Description:          d.Description,
		Icon:                 d.Icon,
		SystemPrompt:         d.SystemPrompt,
		ResponseBehavior:     behavior,
		AllowedTools:         d.AllowedTools,
		CreatedBy:            CreatedByUser,
		IsPublic:             len(d.PublishedDepartments) > 0,
		PublishedDepartments: d.PublishedDepartments,
		QuickPrompts:         d.QuickPrompts,
		UpdatedAt:            time.Now(),
		SubscriptionCount:    0,
	}
}

// Draft extracts the editable fields, used to seed the editor and the
// export document.
func (a Assistant) Draft() AssistantDraft {
	return AssistantDraft{
		Name:                 a.Name,
		Description:          a.Description,
		Icon:                 a.Icon,
		SystemPrompt:         a.SystemPrompt,
		ResponseBehavior:     a.ResponseBehavior,
		AllowedTools:         a.AllowedTools,
		PublishedDepartments: a.PublishedDepartments,
		QuickPrompts:         a.QuickPrompts,
	}
}

// Editable reports whether the assistant may be edited or deleted by the
// user. Built-in assistants are rejected at this boundary.
func (a Assistant) Editable() bool {
	return a.CreatedBy == CreatedByUser
}
