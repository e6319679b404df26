// Package store persists the engine's settings document: players, total
// rounds, advanced settings and custom challenges, as one versioned JSON
// payload behind a small load/save/clear contract. Round and turn state is
// deliberately not persisted.
package store

// DocumentVersion is the only version Load accepts. Anything else reads as
// absent, never as partial data.
const DocumentVersion = 1

// PlayerRecord is the persisted form of a player.
type PlayerRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AdvancedRecord is the persisted form of the preference flags.
type AdvancedRecord struct {
	EnabledCategories  map[string]bool `json:"enabledCategories"`
	FavoriteChallenges map[string]bool `json:"favoriteChallenges"`
	DisabledChallenges map[string]bool `json:"disabledChallenges"`
}

// CustomChallengeRecord is the persisted form of a user-created challenge.
// Only simple challenges can be user-created, so Kind is always "simple".
type CustomChallengeRecord struct {
	Kind       string   `json:"kind"`
	ID         string   `json:"id"`
	Text       string   `json:"text"`
	Difficulty string   `json:"difficulty"`
	Categories []string `json:"categories"`
}

// Document is the versioned persistence payload.
type Document struct {
	Version int   `json:"version"`
	SavedAt int64 `json:"savedAt"`

	Players     []PlayerRecord `json:"players"`
	TotalRounds int            `json:"totalRounds"`

	Advanced         AdvancedRecord          `json:"advanced"`
	CustomChallenges []CustomChallengeRecord `json:"customChallenges"`
}

// Store is the durable home for the document.
//
// Load returns (nil, nil) when no usable document exists: a missing key, an
// unparseable payload and a version mismatch all read identically as
// absent. Save is best-effort from the engine's point of view; the caller
// swallows failures. Clear removes the document entirely.
type Store interface {
	Load() (*Document, error)
	Save(doc *Document) error
	Clear() error
	Close() error
}
