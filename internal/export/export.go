// Package export reads and writes assistant definition files. An export
// document carries only the user-editable fields; identity and derived
// fields (id, createdBy, isPublic) never leave the application.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cityassist/internal/models"
)

// Document is the on-disk assistant definition.
type Document struct {
	Name                 string                  `json:"name"`
	Description          string                  `json:"description"`
	Icon                 string                  `json:"icon"`
	SystemPrompt         string                  `json:"systemPrompt"`
	ResponseBehavior     models.ResponseBehavior `json:"responseBehavior"`
	AllowedTools         []string                `json:"allowedTools"`
	PublishedDepartments []string                `json:"publishedDepartments"`
	QuickPrompts         []string                `json:"quickPrompts"`
}

// NewDocument extracts the exportable fields of an assistant.
func NewDocument(a models.Assistant) Document {
	return Document{
		Name:                 strings.TrimSpace(a.Name),
		Description:          strings.TrimSpace(a.Description),
		Icon:                 a.Icon,
		SystemPrompt:         strings.TrimSpace(a.SystemPrompt),
		ResponseBehavior:     a.ResponseBehavior,
		AllowedTools:         a.AllowedTools,
		PublishedDepartments: a.PublishedDepartments,
		QuickPrompts:         a.QuickPrompts,
	}
}

// Draft converts an imported document into an editor draft.
func (d Document) Draft() models.AssistantDraft {
	return models.AssistantDraft{
		Name:                 d.Name,
		Description:          d.Description,
		Icon:                 d.Icon,
		SystemPrompt:         d.SystemPrompt,
		ResponseBehavior:     d.ResponseBehavior,
		AllowedTools:         d.AllowedTools,
		PublishedDepartments: d.PublishedDepartments,
		QuickPrompts:         d.QuickPrompts,
	}
}

// Marshal renders the document as indented JSON.
func Marshal(a models.Assistant) ([]byte, error) {
	data, err := json.MarshalIndent(NewDocument(a), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal assistant: %w", err)
	}
	return data, nil
}

// FileName derives the export file name from the assistant's name,
// falling back to "assistant" when the name is empty.
func FileName(a models.Assistant) string {
	name := strings.TrimSpace(a.Name)
	if name == "" {
		name = "assistant"
	}
	// Keep the name filesystem-safe.
	name = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '-'
		}
		return r
	}, name)
	return name + ".json"
}

// WriteFile exports an assistant into dir and returns the written path.
func WriteFile(dir string, a models.Assistant) (string, error) {
	data, err := Marshal(a)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}
	path := filepath.Join(dir, FileName(a))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}
	return path, nil
}

// Parse decodes an assistant definition. Parsing is best-effort: malformed
// JSON is the only rejected condition, reported to the user and otherwise
// inert.
func Parse(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("failed to parse assistant file: %w", err)
	}
	return doc, nil
}

// ReadFile loads and parses an assistant definition from disk.
func ReadFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("failed to read assistant file: %w", err)
	}
	return Parse(data)
}
