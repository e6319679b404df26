// Package challenge defines the challenge pool: the difficulty tiers, the
// Simple/Tracked challenge variants, the built-in set, and the weighted
// filter/picker the game draws from on every turn.
package challenge

import "fmt"

// Difficulty is the tier a challenge is rated at. It drives both scoring and
// how often the picker surfaces the challenge.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Normal Difficulty = "normal"
	Hard   Difficulty = "hard"
	Brutal Difficulty = "brutal"
)

// Multiplier is the per-tier scoring factor.
func (d Difficulty) Multiplier() int {
	switch d {
	case Easy:
		return 1
	case Normal:
		return 2
	case Hard:
		return 3
	case Brutal:
		return 4
	}
	return 0
}

// BaseWeight is the per-tier selection weight. Easy outcomes dominate and
// brutal ones stay rare.
func (d Difficulty) BaseWeight() float64 {
	switch d {
	case Easy:
		return 8
	case Normal:
		return 5
	case Hard:
		return 2
	case Brutal:
		return 0.75
	}
	return 0
}

// ParseDifficulty validates a difficulty coming from outside the engine.
func ParseDifficulty(s string) (Difficulty, error) {
	switch d := Difficulty(s); d {
	case Easy, Normal, Hard, Brutal:
		return d, nil
	}
	return "", fmt.Errorf("challenge: unknown difficulty %q", s)
}

// Range is an inclusive integer range.
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Info is the variant-independent view of a challenge, used by the picker
// and by turn records.
type Info struct {
	ID         string
	Difficulty Difficulty
	Categories []string
	// Weight is an optional per-challenge multiplier on the base weight.
	// Zero means unset and is treated as 1.
	Weight float64
}

// Challenge is the closed sum over the two variants. Consumers type-switch
// on Simple and Tracked; there is no third case.
type Challenge interface {
	Info() Info
	sealed()
}

// Simple is a one-shot challenge: display text, optionally parameterized by
// a quantity drawn from an inclusive range.
type Simple struct {
	ID         string     `json:"id"`
	Text       string     `json:"text"`
	Difficulty Difficulty `json:"difficulty"`
	Categories []string   `json:"categories,omitempty"`
	Weight     float64    `json:"weight,omitempty"`
	Quantity   *Range     `json:"quantity,omitempty"`

	// Repeatability hints. Declared for the pool data model but not read by
	// the current selection algorithm; immediate repeats are allowed.
	Repeatable    bool `json:"repeatable,omitempty"`
	CooldownTurns int  `json:"cooldownTurns,omitempty"`
}

// Tracked is an ongoing effect: an action the target keeps up for a number
// of rounds drawn from Rounds.
type Tracked struct {
	ID         string     `json:"id"`
	Action     string     `json:"action"`
	Difficulty Difficulty `json:"difficulty"`
	Categories []string   `json:"categories,omitempty"`
	Weight     float64    `json:"weight,omitempty"`
	Rounds     Range      `json:"rounds"`

	Repeatable    bool `json:"repeatable,omitempty"`
	CooldownTurns int  `json:"cooldownTurns,omitempty"`
}

func (c Simple) Info() Info {
	return Info{ID: c.ID, Difficulty: c.Difficulty, Categories: c.Categories, Weight: c.Weight}
}

func (c Tracked) Info() Info {
	return Info{ID: c.ID, Difficulty: c.Difficulty, Categories: c.Categories, Weight: c.Weight}
}

func (Simple) sealed()  {}
func (Tracked) sealed() {}
