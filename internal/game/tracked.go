package game

import (
	"github.com/google/uuid"

	"github.com/drunkirk/drunkirk-go/internal/challenge"
	"github.com/drunkirk/drunkirk-go/internal/engine"
)

// instantiateTracked draws the effect duration for a tracked challenge and
// builds the active instance targeting the given player, along with its
// display text. startedRound is the round the effect begins counting from.
func instantiateTracked(r engine.Rand, c challenge.Tracked, target Player, startedRound int) (ActiveTracked, string, int) {
	rounds := engine.IntBetween(r, c.Rounds.Min, c.Rounds.Max)
	active := ActiveTracked{
		ID:              uuid.NewString(),
		ChallengeID:     c.ID,
		TargetPlayerID:  target.ID,
		Action:          c.Action,
		RemainingRounds: rounds,
		StartedRound:    startedRound,
		Difficulty:      c.Difficulty,
	}
	return active, challenge.FormatTracked(target.Name, c.Action, rounds), rounds
}

// advanceTrackedRound runs end-of-round maintenance: every active effect
// loses one remaining round and expired effects are dropped. Called exactly
// once per completed round, never per turn.
func advanceTrackedRound(active []ActiveTracked) []ActiveTracked {
	next := make([]ActiveTracked, 0, len(active))
	for _, a := range active {
		a.RemainingRounds--
		if a.RemainingRounds > 0 {
			next = append(next, a)
		}
	}
	return next
}

// trackedWithoutTarget drops every effect aimed at the removed player,
// regardless of remaining rounds.
func trackedWithoutTarget(active []ActiveTracked, playerID string) []ActiveTracked {
	next := make([]ActiveTracked, 0, len(active))
	for _, a := range active {
		if a.TargetPlayerID != playerID {
			next = append(next, a)
		}
	}
	return next
}
