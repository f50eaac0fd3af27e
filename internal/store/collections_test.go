package store

import (
	"testing"

	"cityassist/internal/models"
)

func TestCollectionsRoundTrip(t *testing.T) {
	kv := NewMemory()

	chats := []models.Chat{models.NewChat("Hello", nil)}
	if err := SaveChats(kv, chats); err != nil {
		t.Fatalf("SaveChats: %v", err)
	}
	loaded := LoadChats(kv)
	if len(loaded) != 1 || loaded[0].ID != chats[0].ID {
		t.Errorf("chats did not round-trip: %+v", loaded)
	}

	a := models.NewAssistant(models.AssistantDraft{Name: "A", Description: "B"})
	if err := SaveAssistants(kv, []models.Assistant{a}); err != nil {
		t.Fatalf("SaveAssistants: %v", err)
	}
	if got := LoadAssistants(kv); len(got) != 1 || got[0].ID != a.ID {
		t.Errorf("assistants did not round-trip: %+v", got)
	}

	if err := SaveFavorites(kv, []string{"x", "y"}); err != nil {
		t.Fatalf("SaveFavorites: %v", err)
	}
	if got := LoadFavorites(kv); len(got) != 2 || got[0] != "x" {
		t.Errorf("favorites did not round-trip: %+v", got)
	}
}

func TestLoadMissingCollections(t *testing.T) {
	kv := NewMemory()

	if got := LoadChats(kv); got != nil {
		t.Errorf("expected nil for missing chats, got %+v", got)
	}
	if got := LoadAssistants(kv); got != nil {
		t.Errorf("expected nil for missing assistants, got %+v", got)
	}
	if got := LoadFavorites(kv); got != nil {
		t.Errorf("expected nil for missing favorites, got %+v", got)
	}
}

func TestLoadCorruptCollectionFallsBackToEmpty(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"truncated json", `[{"id": "x"`},
		{"wrong shape", `{"id": "x"}`},
		{"plain garbage", `not json at all`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := NewMemory()
			kv.Set(KeyChats, tt.raw)

			if got := LoadChats(kv); got != nil {
				t.Errorf("expected empty fallback, got %+v", got)
			}
		})
	}
}

func TestFlags(t *testing.T) {
	kv := NewMemory()

	if LoadFlag(kv, KeyTermsAccepted) {
		t.Error("unset flag must read false")
	}
	if err := SetFlag(kv, KeyTermsAccepted); err != nil {
		t.Fatalf("SetFlag: %v", err)
	}
	if !LoadFlag(kv, KeyTermsAccepted) {
		t.Error("set flag must read true")
	}

	// Anything but the sentinel reads false.
	kv.Set(KeyHasSeenSecureIntro, "yes")
	if LoadFlag(kv, KeyHasSeenSecureIntro) {
		t.Error("non-sentinel values must read false")
	}
}

func TestLanguageRoundTrip(t *testing.T) {
	kv := NewMemory()

	if got := LoadLanguage(kv); got != "" {
		t.Errorf("expected empty language, got %q", got)
	}
	if err := SaveLanguage(kv, "de"); err != nil {
		t.Fatalf("SaveLanguage: %v", err)
	}
	if got := LoadLanguage(kv); got != "de" {
		t.Errorf("expected de, got %q", got)
	}
}
