package store

// Storage keys. Structured values are JSON-encoded by the collection
// helpers; the store itself is string-keyed and string-valued.
const (
	KeyAssistants         = "assistants"
	KeyChats              = "chats"
	KeyFavorites          = "favorites"
	KeyTermsAccepted      = "termsAccepted"
	KeyHasSeenSecureIntro = "hasSeenSecureIntro"
	KeyLanguage           = "language"
)

// flagTrue is the sentinel value for boolean flags.
const flagTrue = "true"

// KV is the persisted key-value store. Both operations are synchronous and
// durable from the caller's perspective.
type KV interface {
	// Get returns the stored value and whether the key was present.
	Get(key string) (string, bool)

	// Set stores value under key, overwriting any previous value.
	Set(key, value string) error

	// Close releases the underlying storage.
	Close() error
}
