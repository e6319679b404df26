// Package session owns the live game state. It serializes every transition
// behind one lock, hydrates from the store once before the first user
// action, and persists settings-affecting snapshots through a short
// debounce so storage latency never blocks gameplay. Persistence failures
// are logged and swallowed: the in-memory state stays authoritative and the
// worst case is not surviving a restart.
package session

import (
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/sirupsen/logrus"

	"github.com/drunkirk/drunkirk-go/internal/challenge"
	"github.com/drunkirk/drunkirk-go/internal/engine"
	"github.com/drunkirk/drunkirk-go/internal/game"
	"github.com/drunkirk/drunkirk-go/internal/store"
)

// saveQuietPeriod is how long edits must stay quiet before the pending
// snapshot is written. Bursts of rapid edits coalesce into one write.
const saveQuietPeriod = 300 * time.Millisecond

// Session is the single logical writer over the game state.
type Session struct {
	mu    sync.Mutex
	state game.State

	store store.Store
	rng   engine.Rand
	log   *logrus.Logger

	debounced func(func())

	// pending guards Close's final flush: it holds the latest snapshot
	// scheduled for saving, nil when nothing is outstanding.
	pendingMu sync.Mutex
	pending   *store.Document
}

// New builds a session over the given store and random source.
func New(st store.Store, rng engine.Rand, log *logrus.Logger) *Session {
	if log == nil {
		log = logrus.New()
	}
	return &Session{
		state:     game.NewState(),
		store:     st,
		rng:       rng,
		log:       log,
		debounced: debounce.New(saveQuietPeriod),
	}
}

// Hydrate loads the persisted document, if any, and merges it into the
// default state. Call it before serving user actions; it shares the
// transition lock, so any action that does race it is still strictly
// ordered. Load errors are treated as an absent document.
func (s *Session) Hydrate() {
	doc, err := s.store.Load()
	if err != nil {
		s.log.WithError(err).Warn("session: hydration load failed, starting empty")
		return
	}
	if doc == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	players, totalRounds, advanced, customs := fromDocument(doc)
	s.state = s.state.Hydrate(players, totalRounds, advanced, customs)
}

// State returns the current snapshot.
func (s *Session) State() game.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// apply runs one transition under the lock. persist schedules a debounced
// save of the resulting snapshot; only transitions that touch persisted
// fields (players, rounds, settings, customs) set it.
func (s *Session) apply(persist bool, fn func(game.State) game.State) game.State {
	s.mu.Lock()
	next := fn(s.state)
	s.state = next
	s.mu.Unlock()

	if persist {
		s.scheduleSave(next)
	}
	return next
}

func (s *Session) scheduleSave(snapshot game.State) {
	doc := toDocument(snapshot)

	s.pendingMu.Lock()
	s.pending = doc
	s.pendingMu.Unlock()

	s.debounced(func() {
		s.pendingMu.Lock()
		pending := s.pending
		s.pending = nil
		s.pendingMu.Unlock()
		if pending != nil {
			s.saveNow(pending)
		}
	})
}

func (s *Session) saveNow(doc *store.Document) {
	doc.SavedAt = time.Now().UnixMilli()
	if err := s.store.Save(doc); err != nil {
		s.log.WithError(err).Warn("session: persist failed, keeping in-memory state")
	}
}

// AddPlayer appends a player. Persisted.
func (s *Session) AddPlayer(name string) game.State {
	return s.apply(true, func(st game.State) game.State { return st.AddPlayer(name) })
}

// RemovePlayer removes a player and cascades cleanup. Persisted.
func (s *Session) RemovePlayer(id string) game.State {
	return s.apply(true, func(st game.State) game.State { return st.RemovePlayer(id) })
}

// SetTotalRounds sets the game length. Persisted.
func (s *Session) SetTotalRounds(n int) game.State {
	return s.apply(true, func(st game.State) game.State { return st.SetTotalRounds(n) })
}

// ToggleCategory flips a category filter. Persisted.
func (s *Session) ToggleCategory(category string) game.State {
	return s.apply(true, func(st game.State) game.State { return st.ToggleCategory(category) })
}

// ToggleFavorite flips a challenge's favorite flag. Persisted.
func (s *Session) ToggleFavorite(id string) game.State {
	return s.apply(true, func(st game.State) game.State { return st.ToggleFavorite(id) })
}

// ToggleChallengeEnabled flips a challenge's disabled flag. Persisted.
func (s *Session) ToggleChallengeEnabled(id string) game.State {
	return s.apply(true, func(st game.State) game.State { return st.ToggleChallengeEnabled(id) })
}

// AddCustomChallenge creates a custom challenge. Persisted.
func (s *Session) AddCustomChallenge(text string, d challenge.Difficulty) game.State {
	return s.apply(true, func(st game.State) game.State { return st.AddCustomChallenge(text, d) })
}

// EditCustomChallenge updates a custom challenge. Persisted.
func (s *Session) EditCustomChallenge(id, text string, d challenge.Difficulty) game.State {
	return s.apply(true, func(st game.State) game.State { return st.EditCustomChallenge(id, text, d) })
}

// DeleteCustomChallenge removes a custom challenge and its flags. Persisted.
func (s *Session) DeleteCustomChallenge(id string) game.State {
	return s.apply(true, func(st game.State) game.State { return st.DeleteCustomChallenge(id) })
}

// StartGame begins a fresh game. Round state is not persisted.
func (s *Session) StartGame() game.State {
	return s.apply(false, func(st game.State) game.State { return st.StartGame() })
}

// NextTurn resolves the current player's turn.
func (s *Session) NextTurn() game.State {
	return s.apply(false, func(st game.State) game.State { return st.NextTurn(s.rng) })
}

// SkipTurn skips ahead and resolves a zero-point challenge for the next
// player.
func (s *Session) SkipTurn() game.State {
	return s.apply(false, func(st game.State) game.State { return st.SkipTurn(s.rng) })
}

// ResetGame resets counters and scores without the player-count
// precondition.
func (s *Session) ResetGame() game.State {
	return s.apply(false, func(st game.State) game.State { return st.ResetGame() })
}

// ResetAll returns to factory defaults and clears the persisted document.
func (s *Session) ResetAll() game.State {
	next := s.apply(false, func(st game.State) game.State { return st.ResetAll() })

	s.pendingMu.Lock()
	s.pending = nil
	s.pendingMu.Unlock()

	if err := s.store.Clear(); err != nil {
		s.log.WithError(err).Warn("session: clearing persisted state failed")
	}
	return next
}

// Close flushes any pending save synchronously and closes the store.
func (s *Session) Close() error {
	s.pendingMu.Lock()
	pending := s.pending
	s.pending = nil
	s.pendingMu.Unlock()
	if pending != nil {
		s.saveNow(pending)
	}
	return s.store.Close()
}
