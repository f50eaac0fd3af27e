package models

import (
	"errors"
	"testing"
)

func TestDraftValidate(t *testing.T) {
	tests := []struct {
		name    string
		draft   AssistantDraft
		wantErr bool
	}{
		{"complete", AssistantDraft{Name: "A", Description: "B"}, false},
		{"missing name", AssistantDraft{Description: "B"}, true},
		{"missing description", AssistantDraft{Name: "A"}, true},
		{"empty", AssistantDraft{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.draft.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrMissingFields) {
				t.Errorf("expected ErrMissingFields, got %v", err)
			}
		})
	}
}

func TestNewAssistant(t *testing.T) {
	a := NewAssistant(AssistantDraft{
		Name:                 "Helper",
		Description:          "Helps",
		PublishedDepartments: []string{"rit", "kvr"},
	})

	if a.ID == "" {
		t.Error("expected a generated id")
	}
	if a.CreatedBy != CreatedByUser {
		t.Errorf("expected user ownership, got %q", a.CreatedBy)
	}
	if !a.IsPublic {
		t.Error("publishing to departments must make the assistant public")
	}
	if a.SubscriptionCount != 0 {
		t.Errorf("new assistants start unsubscribed, got %d", a.SubscriptionCount)
	}
	if a.UpdatedAt.IsZero() {
		t.Error("expected UpdatedAt to be set")
	}
}

func TestNewAssistantDefaultsBehavior(t *testing.T) {
	a := NewAssistant(AssistantDraft{Name: "A", Description: "B", ResponseBehavior: "nonsense"})
	if a.ResponseBehavior != BehaviorBalanced {
		t.Errorf("invalid behavior must default to balanced, got %s", a.ResponseBehavior)
	}

	a = NewAssistant(AssistantDraft{Name: "A", Description: "B", ResponseBehavior: BehaviorPrecise})
	if a.ResponseBehavior != BehaviorPrecise {
		t.Errorf("valid behavior must be kept, got %s", a.ResponseBehavior)
	}
}

func TestDraftRoundTrip(t *testing.T) {
	a := NewAssistant(AssistantDraft{
		Name:         "Helper",
		Description:  "Helps",
		Icon:         "🤖",
		SystemPrompt: "Be helpful.",
		AllowedTools: []string{"search", "web_browser"},
		QuickPrompts: []string{"Hi"},
	})

	d := a.Draft()
	if d.Name != a.Name || d.SystemPrompt != a.SystemPrompt || len(d.AllowedTools) != 2 {
		t.Errorf("draft did not round-trip: %+v", d)
	}
}

func TestEditable(t *testing.T) {
	if (Assistant{CreatedBy: CreatedBySystem}).Editable() {
		t.Error("system assistants must not be editable")
	}
	if !(Assistant{CreatedBy: CreatedByUser}).Editable() {
		t.Error("user assistants must be editable")
	}
}

func TestKnownTools(t *testing.T) {
	for _, tool := range Tools() {
		if !KnownTool(string(tool)) {
			t.Errorf("tool %s must be known", tool)
		}
		if name, ok := ToolDisplayName(string(tool)); !ok || name == "" {
			t.Errorf("tool %s must have a display name", tool)
		}
	}
	if KnownTool("quantum_leap") {
		t.Error("unknown tool ids must be rejected")
	}
}

func TestBehaviorTemperature(t *testing.T) {
	tests := []struct {
		behavior ResponseBehavior
		want     float32
	}{
		{BehaviorPrecise, 0.2},
		{BehaviorBalanced, 0.7},
		{BehaviorCreative, 1.0},
		{"unknown", 0.7},
	}
	for _, tt := range tests {
		if got := tt.behavior.Temperature(); got != tt.want {
			t.Errorf("Temperature(%s) = %v, want %v", tt.behavior, got, tt.want)
		}
	}
}

func TestFlattenDepartments(t *testing.T) {
	tree := []Department{
		{ID: "a", Name: "A", Children: []Department{
			{ID: "a1", Name: "A1"},
			{ID: "a2", Name: "A2", Children: []Department{{ID: "a2x", Name: "A2X"}}},
		}},
		{ID: "b", Name: "B"},
	}

	flat := FlattenDepartments(tree)
	wantOrder := []string{"a", "a1", "a2", "a2x", "b"}
	if len(flat) != len(wantOrder) {
		t.Fatalf("expected %d nodes, got %d", len(wantOrder), len(flat))
	}
	for i, id := range wantOrder {
		if flat[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, flat[i].ID)
		}
	}
	if flat[3].Depth != 2 {
		t.Errorf("expected depth 2 for a2x, got %d", flat[3].Depth)
	}

	if FindDepartment(tree, "a2x") == nil {
		t.Error("expected to find a nested department")
	}
	if FindDepartment(tree, "zz") != nil {
		t.Error("expected nil for an unknown department")
	}
}
