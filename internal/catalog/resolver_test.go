package catalog

import (
	"testing"

	"cityassist/internal/models"
)

func TestResolveOrder(t *testing.T) {
	// A user assistant shadowing a recommended id must win the lookup.
	shadow := models.Assistant{ID: "rec-buergerservice", Name: "Shadow", CreatedBy: models.CreatedByUser}
	r := NewResolver(func() []models.Assistant { return []models.Assistant{shadow} })

	got := r.Resolve("rec-buergerservice")
	if got == nil || got.Name != "Shadow" {
		t.Errorf("expected the user assistant to win, got %+v", got)
	}
}

func TestResolveAllSources(t *testing.T) {
	user := models.NewAssistant(models.AssistantDraft{Name: "Mine", Description: "d"})
	r := NewResolver(func() []models.Assistant { return []models.Assistant{user} })

	tests := []struct {
		name string
		id   string
		want bool
	}{
		{"user", user.ID, true},
		{"recommended", "rec-buergerservice", true},
		{"community", "com-sap", true},
		{"unknown", "nope", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Resolve(tt.id)
			if (got != nil) != tt.want {
				t.Errorf("Resolve(%q) = %v, want found=%v", tt.id, got, tt.want)
			}
		})
	}
}

func TestResolveReturnsCopy(t *testing.T) {
	r := NewResolver(nil)

	a := r.Resolve("rec-buergerservice")
	a.Name = "mutated"

	if again := r.Resolve("rec-buergerservice"); again.Name == "mutated" {
		t.Error("Resolve must not expose the catalog's backing storage")
	}
}

func TestMergedOrder(t *testing.T) {
	user := models.NewAssistant(models.AssistantDraft{Name: "Mine", Description: "d"})
	r := NewResolver(func() []models.Assistant { return []models.Assistant{user} })

	merged := r.Merged()
	wantLen := len(Recommended()) + len(Community()) + 1
	if len(merged) != wantLen {
		t.Fatalf("expected %d assistants, got %d", wantLen, len(merged))
	}

	if merged[0].ID != Recommended()[0].ID {
		t.Error("expected recommended assistants first")
	}
	if merged[len(merged)-1].ID != user.ID {
		t.Error("expected user assistants last")
	}
}

func TestResolverReflectsLiveUserCollection(t *testing.T) {
	var users []models.Assistant
	r := NewResolver(func() []models.Assistant { return users })

	if r.Resolve("late") != nil {
		t.Fatal("expected no match before the assistant exists")
	}

	users = append(users, models.Assistant{ID: "late", Name: "Late", CreatedBy: models.CreatedByUser})
	if r.Resolve("late") == nil {
		t.Error("expected the resolver to see assistants added after construction")
	}
}

func TestBuiltinsAreSystemOwned(t *testing.T) {
	for _, a := range append(Recommended(), Community()...) {
		if a.CreatedBy != models.CreatedBySystem {
			t.Errorf("built-in %s must be system-owned, got %q", a.ID, a.CreatedBy)
		}
		if a.Editable() {
			t.Errorf("built-in %s must not be editable", a.ID)
		}
	}
}
