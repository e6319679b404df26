// Package game owns the party-game state machine. State is an immutable
// value: every transition is a pure function producing a new snapshot, and
// precondition failures return the input unchanged rather than erroring.
// The UI layer is expected to disable controls for transitions that would
// no-op, so there is no caller to report those to.
package game

import (
	"maps"
	"slices"
	"time"

	"github.com/drunkirk/drunkirk-go/internal/challenge"
)

// DefaultTotalRounds is the round count a fresh state starts with.
const DefaultTotalRounds = 6

// Player is one participant in turn order.
type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TurnEntry is the immutable record of one resolved turn.
type TurnEntry struct {
	Round       int    `json:"round"`
	TurnInRound int    `json:"turnInRound"`
	PlayerID    string `json:"playerId"`

	ChallengeID   string               `json:"challengeId"`
	ChallengeText string               `json:"challengeText"`
	Difficulty    challenge.Difficulty `json:"difficulty"`
	Categories    []string             `json:"categories"`

	Quantity      *int `json:"n"`
	PointsAwarded int  `json:"pointsAwarded"`

	Timestamp time.Time `json:"timestamp"`
	IsSkip    bool      `json:"isSkip,omitempty"`
}

// ActiveTracked is an instantiated tracked challenge bound to a target
// player for a number of remaining rounds.
type ActiveTracked struct {
	ID              string               `json:"id"`
	ChallengeID     string               `json:"challengeId"`
	TargetPlayerID  string               `json:"targetPlayerId"`
	Action          string               `json:"action"`
	RemainingRounds int                  `json:"remainingRounds"`
	StartedRound    int                  `json:"startedRound"`
	Difficulty      challenge.Difficulty `json:"difficulty"`
}

// AdvancedSettings holds the per-category and per-challenge preference
// flags. A missing category entry means enabled; a missing favorite or
// disabled entry means not favorited / not disabled.
type AdvancedSettings struct {
	EnabledCategories  map[string]bool `json:"enabledCategories"`
	FavoriteChallenges map[string]bool `json:"favoriteChallenges"`
	DisabledChallenges map[string]bool `json:"disabledChallenges"`
}

// State is the root aggregate. It is replaced wholesale on each transition;
// nothing mutates it in place.
type State struct {
	Players     []Player `json:"players"`
	TotalRounds int      `json:"totalRounds"`

	Advanced         AdvancedSettings   `json:"advanced"`
	CustomChallenges []challenge.Simple `json:"customChallenges"`

	CurrentPlayerIndex int `json:"currentPlayerIndex"`

	// Round starts at 1. TurnInRound is 0 before the first turn of a round,
	// then 1..len(Players).
	Round       int `json:"round"`
	TurnInRound int `json:"turnInRound"`

	CurrentTurn *TurnEntry `json:"currentTurn"`

	Scores  map[string]int `json:"scores"`
	History []TurnEntry    `json:"history"`

	ActiveTracked []ActiveTracked `json:"activeTracked"`
}

// Phase is the derived lifecycle stage of a State.
type Phase string

const (
	PhaseSetup      Phase = "setup"
	PhaseInProgress Phase = "in_progress"
	PhaseComplete   Phase = "complete"
)

// NewState returns the empty default state the engine runs on until
// hydration, and that hydration merges into.
func NewState() State {
	return State{
		Players:     []Player{},
		TotalRounds: DefaultTotalRounds,
		Advanced: AdvancedSettings{
			EnabledCategories:  map[string]bool{},
			FavoriteChallenges: map[string]bool{},
			DisabledChallenges: map[string]bool{},
		},
		CustomChallenges: []challenge.Simple{},
		Round:            1,
		TurnInRound:      0,
		Scores:           map[string]int{},
		History:          []TurnEntry{},
		ActiveTracked:    []ActiveTracked{},
	}
}

// Over reports whether the game has finished: the rotation rolled past the
// last round, leaving turnInRound at 0 with round beyond totalRounds.
func (s State) Over() bool {
	return s.TurnInRound == 0 && s.Round > s.TotalRounds
}

// Phase derives the lifecycle stage from the counters.
func (s State) Phase() Phase {
	switch {
	case s.Over():
		return PhaseComplete
	case len(s.Players) >= 2:
		return PhaseInProgress
	default:
		return PhaseSetup
	}
}

// Pool is the merged built-in and custom challenge pool selection runs over.
func (s State) Pool() []challenge.Challenge {
	pool := challenge.Builtin()
	for _, c := range s.CustomChallenges {
		pool = append(pool, c)
	}
	return pool
}

func cloneSettings(a AdvancedSettings) AdvancedSettings {
	clone := func(m map[string]bool) map[string]bool {
		if m == nil {
			return map[string]bool{}
		}
		return maps.Clone(m)
	}
	return AdvancedSettings{
		EnabledCategories:  clone(a.EnabledCategories),
		FavoriteChallenges: clone(a.FavoriteChallenges),
		DisabledChallenges: clone(a.DisabledChallenges),
	}
}

func zeroScores(players []Player) map[string]int {
	scores := make(map[string]int, len(players))
	for _, p := range players {
		scores[p.ID] = 0
	}
	return scores
}

func appendHistory(history []TurnEntry, entry TurnEntry) []TurnEntry {
	return append(slices.Clone(history), entry)
}
