package game

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/drunkirk/drunkirk-go/internal/challenge"
	"github.com/drunkirk/drunkirk-go/internal/engine"
)

// normalizeName collapses internal whitespace and trims the ends.
func normalizeName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

// AddPlayer appends a player with a zeroed score. Empty names and
// case-insensitive duplicates are no-ops.
func (s State) AddPlayer(name string) State {
	name = normalizeName(name)
	if name == "" {
		return s
	}
	for _, p := range s.Players {
		if strings.EqualFold(p.Name, name) {
			return s
		}
	}

	player := Player{ID: uuid.NewString(), Name: name}

	next := s
	next.Players = append(slices.Clone(s.Players), player)
	next.Scores = maps.Clone(s.Scores)
	if next.Scores == nil {
		next.Scores = map[string]int{}
	}
	next.Scores[player.ID] = 0
	return next
}

// RemovePlayer removes the player, their score entry, and every tracked
// effect targeting them, then clamps the rotation index into the remaining
// bounds.
func (s State) RemovePlayer(playerID string) State {
	next := s
	next.Players = make([]Player, 0, len(s.Players))
	for _, p := range s.Players {
		if p.ID != playerID {
			next.Players = append(next.Players, p)
		}
	}

	next.Scores = maps.Clone(s.Scores)
	delete(next.Scores, playerID)

	if len(next.Players) == 0 {
		next.CurrentPlayerIndex = 0
	} else if next.CurrentPlayerIndex > len(next.Players)-1 {
		next.CurrentPlayerIndex = len(next.Players) - 1
	}

	next.ActiveTracked = trackedWithoutTarget(s.ActiveTracked, playerID)
	return next
}

// SetTotalRounds sets the game length, clamped to at least one round.
func (s State) SetTotalRounds(totalRounds int) State {
	if totalRounds < 1 {
		totalRounds = 1
	}
	next := s
	next.TotalRounds = totalRounds
	return next
}

// StartGame resets the round counters, history and scores for a fresh game.
// No-op with fewer than two players.
func (s State) StartGame() State {
	if len(s.Players) < 2 {
		return s
	}
	return s.resetCounters()
}

// ResetGame is StartGame without the player-count precondition: always
// applicable, same counter/score reset.
func (s State) ResetGame() State {
	return s.resetCounters()
}

func (s State) resetCounters() State {
	next := s
	next.CurrentPlayerIndex = 0
	next.Round = 1
	next.TurnInRound = 0
	next.CurrentTurn = nil
	next.History = []TurnEntry{}
	next.Scores = zeroScores(s.Players)
	next.ActiveTracked = []ActiveTracked{}
	return next
}

// drawChallenge picks from the merged built-in and custom pool under the
// current settings. The built-in pool is never empty, so a picker error
// means the pool data itself is malformed.
func (s State) drawChallenge(r engine.Rand) challenge.Challenge {
	picked, err := challenge.Pick(r, s.Pool(), challenge.Options{
		Disabled:          s.Advanced.DisabledChallenges,
		EnabledCategories: s.Advanced.EnabledCategories,
		Favorites:         s.Advanced.FavoriteChallenges,
	})
	if err != nil {
		panic(fmt.Sprintf("game: challenge pool is malformed: %v", err))
	}
	return picked
}

// NextTurn resolves one turn for the current player: draws a challenge,
// scores it, records the turn, and advances the rotation. When the turn
// closes a round, end-of-round tracked maintenance runs before any new
// tracked effect from this turn is applied, so a tracked challenge drawn on
// a round's last turn keeps its full duration. No-op once the game is over
// or with fewer than two players.
func (s State) NextTurn(r engine.Rand) State {
	if len(s.Players) < 2 || s.Over() {
		return s
	}

	player := s.Players[s.CurrentPlayerIndex]
	picked := s.drawChallenge(r)

	nextTurnInRound := s.TurnInRound + 1
	finishedRound := nextTurnInRound >= len(s.Players)
	nextRound := s.Round
	if finishedRound {
		nextRound++
	}

	tracked := slices.Clone(s.ActiveTracked)
	if finishedRound {
		tracked = advanceTrackedRound(tracked)
	}

	var text string
	var quantity *int
	var points int

	switch c := picked.(type) {
	case challenge.Tracked:
		active, rendered, rounds := instantiateTracked(r, c, player, s.Round)
		tracked = append(tracked, active)
		text = rendered
		points = challenge.Score(c.Difficulty, &rounds)
	case challenge.Simple:
		text, quantity = challenge.FormatSimple(r, c)
		points = challenge.Score(c.Difficulty, quantity)
	}

	scores := maps.Clone(s.Scores)
	if scores == nil {
		scores = map[string]int{}
	}
	scores[player.ID] += points

	entry := TurnEntry{
		Round:         s.Round,
		TurnInRound:   nextTurnInRound,
		PlayerID:      player.ID,
		ChallengeID:   picked.Info().ID,
		ChallengeText: text,
		Difficulty:    picked.Info().Difficulty,
		Categories:    picked.Info().Categories,
		Quantity:      quantity,
		PointsAwarded: points,
		Timestamp:     time.Now(),
	}

	next := s
	next.Scores = scores
	next.History = appendHistory(s.History, entry)
	next.CurrentTurn = &entry
	next.CurrentPlayerIndex = (s.CurrentPlayerIndex + 1) % len(s.Players)
	next.Round = nextRound
	if finishedRound {
		next.TurnInRound = 0
	} else {
		next.TurnInRound = nextTurnInRound
	}
	next.ActiveTracked = tracked
	return next
}

// SkipTurn passes without scoring: the rotation advances first and a fresh
// challenge is resolved for the player who just became current, at zero
// points, so the table always sees a challenge on screen even right after a
// skip. The skipped turn is still recorded in history with the skip flag
// set.
func (s State) SkipTurn(r engine.Rand) State {
	if len(s.Players) < 2 || s.Over() {
		return s
	}

	nextTurnInRound := s.TurnInRound + 1
	finishedRound := nextTurnInRound >= len(s.Players)
	nextRound := s.Round
	nextCounter := nextTurnInRound
	if finishedRound {
		nextRound++
		nextCounter = 0
	}

	nextIndex := (s.CurrentPlayerIndex + 1) % len(s.Players)
	nextPlayer := s.Players[nextIndex]

	tracked := slices.Clone(s.ActiveTracked)
	if finishedRound {
		tracked = advanceTrackedRound(tracked)
	}

	picked := s.drawChallenge(r)

	var text string
	var quantity *int

	switch c := picked.(type) {
	case challenge.Tracked:
		active, rendered, _ := instantiateTracked(r, c, nextPlayer, nextRound)
		tracked = append(tracked, active)
		text = rendered
	case challenge.Simple:
		text, quantity = challenge.FormatSimple(r, c)
	}

	entryTurn := nextCounter
	if entryTurn == 0 {
		entryTurn = len(s.Players)
	}

	entry := TurnEntry{
		Round:         nextRound,
		TurnInRound:   entryTurn,
		PlayerID:      nextPlayer.ID,
		ChallengeID:   picked.Info().ID,
		ChallengeText: text,
		Difficulty:    picked.Info().Difficulty,
		Categories:    picked.Info().Categories,
		Quantity:      quantity,
		PointsAwarded: 0,
		Timestamp:     time.Now(),
		IsSkip:        true,
	}

	next := s
	next.CurrentPlayerIndex = nextIndex
	next.Round = nextRound
	next.TurnInRound = nextCounter
	next.CurrentTurn = &entry
	next.History = appendHistory(s.History, entry)
	next.ActiveTracked = tracked
	return next
}

// Hydrate merges a persisted snapshot into the state. Only the persisted
// fields are touched; runtime counters keep their defaults, so hydration
// cannot fight an in-flight game.
func (s State) Hydrate(players []Player, totalRounds int, advanced AdvancedSettings, customs []challenge.Simple) State {
	next := s
	if players != nil {
		next.Players = slices.Clone(players)
		next.Scores = zeroScores(players)
	}
	if totalRounds >= 1 {
		next.TotalRounds = totalRounds
	}
	if advanced.EnabledCategories != nil || advanced.FavoriteChallenges != nil || advanced.DisabledChallenges != nil {
		next.Advanced = cloneSettings(advanced)
	}
	if customs != nil {
		next.CustomChallenges = slices.Clone(customs)
	}
	return next
}

// ResetAll returns the state to factory defaults: players, settings and
// custom challenges cleared along with every runtime counter. The caller is
// responsible for clearing the persisted document alongside it.
func (s State) ResetAll() State {
	return NewState()
}
