package store

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"cityassist/internal/models"
)

// The collection helpers serialize whole collections to JSON. Every save
// overwrites the full collection so storage always matches in-memory
// state. A malformed stored value must not crash startup: loads fall back
// to the empty collection instead of propagating a parse error.

func LoadAssistants(kv KV) []models.Assistant {
	return loadCollection[models.Assistant](kv, KeyAssistants)
}

func SaveAssistants(kv KV, assistants []models.Assistant) error {
	return saveJSON(kv, KeyAssistants, assistants)
}

func LoadChats(kv KV) []models.Chat {
	return loadCollection[models.Chat](kv, KeyChats)
}

func SaveChats(kv KV, chats []models.Chat) error {
	return saveJSON(kv, KeyChats, chats)
}

func LoadFavorites(kv KV) []string {
	return loadCollection[string](kv, KeyFavorites)
}

func SaveFavorites(kv KV, favorites []string) error {
	return saveJSON(kv, KeyFavorites, favorites)
}

// LoadFlag reads a sentinel boolean flag; absent or corrupt values read as
// false.
func LoadFlag(kv KV, key string) bool {
	v, ok := kv.Get(key)
	return ok && v == flagTrue
}

func SetFlag(kv KV, key string) error {
	return kv.Set(key, flagTrue)
}

// LoadLanguage returns the persisted language code, or "" when unset.
func LoadLanguage(kv KV) string {
	v, _ := kv.Get(KeyLanguage)
	return v
}

func SaveLanguage(kv KV, code string) error {
	return kv.Set(KeyLanguage, code)
}

func loadCollection[T any](kv KV, key string) []T {
	raw, ok := kv.Get(key)
	if !ok || raw == "" {
		return nil
	}
	var out []T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		log.Warn().Str("key", key).Err(err).Msg("discarding corrupt stored collection")
		return nil
	}
	return out
}

func saveJSON(kv KV, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %q: %w", key, err)
	}
	return kv.Set(key, string(data))
}
