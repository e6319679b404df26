package game

import (
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/drunkirk/drunkirk-go/internal/challenge"
)

// customIDPrefix distinguishes user-created challenge ids from built-ins.
const customIDPrefix = "custom_"

// ToggleCategory flips a category between enabled and disabled. Categories
// default to enabled, so the first toggle disables.
func (s State) ToggleCategory(category string) State {
	next := s
	next.Advanced = cloneSettings(s.Advanced)
	v, ok := next.Advanced.EnabledCategories[category]
	next.Advanced.EnabledCategories[category] = ok && !v
	return next
}

// ToggleFavorite flips the favorite flag for a challenge id.
func (s State) ToggleFavorite(challengeID string) State {
	next := s
	next.Advanced = cloneSettings(s.Advanced)
	next.Advanced.FavoriteChallenges[challengeID] = !s.Advanced.FavoriteChallenges[challengeID]
	return next
}

// ToggleChallengeEnabled flips the disabled flag for a challenge id.
// Challenges default to enabled.
func (s State) ToggleChallengeEnabled(challengeID string) State {
	next := s
	next.Advanced = cloneSettings(s.Advanced)
	next.Advanced.DisabledChallenges[challengeID] = !s.Advanced.DisabledChallenges[challengeID]
	return next
}

// AddCustomChallenge prepends a user-created simple challenge with a
// generated custom-prefixed id and the fixed custom category. Blank text is
// a no-op.
func (s State) AddCustomChallenge(text string, difficulty challenge.Difficulty) State {
	text = strings.TrimSpace(text)
	if text == "" {
		return s
	}

	item := challenge.Simple{
		ID:         customIDPrefix + uuid.NewString(),
		Text:       text,
		Difficulty: difficulty,
		Categories: []string{challenge.CategoryCustom},
	}

	next := s
	next.CustomChallenges = append([]challenge.Simple{item}, s.CustomChallenges...)
	return next
}

// EditCustomChallenge updates the text and difficulty of a custom challenge
// by id. Blank text and unknown ids are no-ops.
func (s State) EditCustomChallenge(id, text string, difficulty challenge.Difficulty) State {
	text = strings.TrimSpace(text)
	if text == "" {
		return s
	}

	next := s
	next.CustomChallenges = slices.Clone(s.CustomChallenges)
	for i, c := range next.CustomChallenges {
		if c.ID == id {
			c.Text = text
			c.Difficulty = difficulty
			next.CustomChallenges[i] = c
		}
	}
	return next
}

// DeleteCustomChallenge removes a custom challenge and cascades the removal
// of its favorite and disabled flags.
func (s State) DeleteCustomChallenge(id string) State {
	next := s
	next.CustomChallenges = make([]challenge.Simple, 0, len(s.CustomChallenges))
	for _, c := range s.CustomChallenges {
		if c.ID != id {
			next.CustomChallenges = append(next.CustomChallenges, c)
		}
	}

	next.Advanced = cloneSettings(s.Advanced)
	delete(next.Advanced.FavoriteChallenges, id)
	delete(next.Advanced.DisabledChallenges, id)
	return next
}
