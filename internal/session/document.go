package session

import (
	"github.com/drunkirk/drunkirk-go/internal/challenge"
	"github.com/drunkirk/drunkirk-go/internal/game"
	"github.com/drunkirk/drunkirk-go/internal/store"
)

// toDocument projects the persisted slice of a snapshot into the wire
// document. Round and turn state never leaves memory.
func toDocument(s game.State) *store.Document {
	players := make([]store.PlayerRecord, len(s.Players))
	for i, p := range s.Players {
		players[i] = store.PlayerRecord{ID: p.ID, Name: p.Name}
	}

	customs := make([]store.CustomChallengeRecord, len(s.CustomChallenges))
	for i, c := range s.CustomChallenges {
		customs[i] = store.CustomChallengeRecord{
			Kind:       "simple",
			ID:         c.ID,
			Text:       c.Text,
			Difficulty: string(c.Difficulty),
			Categories: c.Categories,
		}
	}

	return &store.Document{
		Version:     store.DocumentVersion,
		Players:     players,
		TotalRounds: s.TotalRounds,
		Advanced: store.AdvancedRecord{
			EnabledCategories:  s.Advanced.EnabledCategories,
			FavoriteChallenges: s.Advanced.FavoriteChallenges,
			DisabledChallenges: s.Advanced.DisabledChallenges,
		},
		CustomChallenges: customs,
	}
}

// fromDocument unpacks a loaded document into hydration inputs. Records
// with difficulties this build doesn't know degrade to normal rather than
// dropping the challenge.
func fromDocument(doc *store.Document) ([]game.Player, int, game.AdvancedSettings, []challenge.Simple) {
	players := make([]game.Player, len(doc.Players))
	for i, p := range doc.Players {
		players[i] = game.Player{ID: p.ID, Name: p.Name}
	}

	customs := make([]challenge.Simple, 0, len(doc.CustomChallenges))
	for _, c := range doc.CustomChallenges {
		d, err := challenge.ParseDifficulty(c.Difficulty)
		if err != nil {
			d = challenge.Normal
		}
		customs = append(customs, challenge.Simple{
			ID:         c.ID,
			Text:       c.Text,
			Difficulty: d,
			Categories: c.Categories,
		})
	}

	advanced := game.AdvancedSettings{
		EnabledCategories:  doc.Advanced.EnabledCategories,
		FavoriteChallenges: doc.Advanced.FavoriteChallenges,
		DisabledChallenges: doc.Advanced.DisabledChallenges,
	}

	return players, doc.TotalRounds, advanced, customs
}
