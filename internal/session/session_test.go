package session

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drunkirk/drunkirk-go/internal/challenge"
	"github.com/drunkirk/drunkirk-go/internal/engine"
	"github.com/drunkirk/drunkirk-go/internal/store"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func newTestSession(st store.Store) *Session {
	return New(st, engine.NewSeeded(99, 99), quietLogger())
}

// countingStore counts Save calls so tests can observe debouncing.
type countingStore struct {
	*store.Memory
	mu    sync.Mutex
	saves int
}

func (c *countingStore) Save(doc *store.Document) error {
	c.mu.Lock()
	c.saves++
	c.mu.Unlock()
	return c.Memory.Save(doc)
}

func (c *countingStore) saveCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.saves
}

// failingStore rejects every save.
type failingStore struct {
	*store.Memory
}

func (failingStore) Save(*store.Document) error {
	return errors.New("disk full")
}

func TestHydrateAppliesPersistedDocument(t *testing.T) {
	st := store.NewMemory()
	require.NoError(t, st.Save(&store.Document{
		Version:     store.DocumentVersion,
		Players:     []store.PlayerRecord{{ID: "p1", Name: "Alice"}, {ID: "p2", Name: "Bob"}},
		TotalRounds: 9,
		Advanced: store.AdvancedRecord{
			EnabledCategories:  map[string]bool{"drinking": false},
			FavoriteChallenges: map[string]bool{"take_sips": true},
			DisabledChallenges: map[string]bool{},
		},
		CustomChallenges: []store.CustomChallengeRecord{
			{Kind: "simple", ID: "custom_1", Text: "Spin around", Difficulty: "easy", Categories: []string{"custom"}},
		},
	}))

	sess := newTestSession(st)
	sess.Hydrate()

	state := sess.State()
	require.Len(t, state.Players, 2)
	assert.Equal(t, "Alice", state.Players[0].Name)
	assert.Equal(t, 9, state.TotalRounds)
	assert.True(t, state.Advanced.FavoriteChallenges["take_sips"])
	require.Len(t, state.CustomChallenges, 1)
	assert.Equal(t, challenge.Easy, state.CustomChallenges[0].Difficulty)
	assert.Equal(t, map[string]int{"p1": 0, "p2": 0}, state.Scores)
}

func TestHydrateUnknownDifficultyDegradesToNormal(t *testing.T) {
	st := store.NewMemory()
	require.NoError(t, st.Save(&store.Document{
		Version: store.DocumentVersion,
		CustomChallenges: []store.CustomChallengeRecord{
			{Kind: "simple", ID: "custom_1", Text: "Mystery", Difficulty: "impossible"},
		},
	}))

	sess := newTestSession(st)
	sess.Hydrate()

	state := sess.State()
	require.Len(t, state.CustomChallenges, 1)
	assert.Equal(t, challenge.Normal, state.CustomChallenges[0].Difficulty)
}

func TestHydrateAbsentStoreKeepsDefaults(t *testing.T) {
	sess := newTestSession(store.NewMemory())
	sess.Hydrate()

	state := sess.State()
	assert.Empty(t, state.Players)
	assert.Equal(t, 6, state.TotalRounds)
}

func TestRapidEditsCoalesceIntoOneSave(t *testing.T) {
	st := &countingStore{Memory: store.NewMemory()}
	sess := newTestSession(st)

	sess.AddPlayer("Alice")
	sess.AddPlayer("Bob")
	sess.AddPlayer("Cara")
	sess.SetTotalRounds(8)

	require.Eventually(t, func() bool {
		doc, err := st.Load()
		return err == nil && doc != nil && len(doc.Players) == 3 && doc.TotalRounds == 8
	}, 2*time.Second, 20*time.Millisecond, "debounced save never landed")

	assert.LessOrEqual(t, st.saveCount(), 2, "burst of edits should coalesce")
}

func TestGameplayTransitionsDoNotPersist(t *testing.T) {
	st := &countingStore{Memory: store.NewMemory()}
	sess := newTestSession(st)

	sess.AddPlayer("Alice")
	sess.AddPlayer("Bob")
	require.Eventually(t, func() bool {
		doc, _ := st.Load()
		return doc != nil && len(doc.Players) == 2
	}, 2*time.Second, 20*time.Millisecond)
	settled := st.saveCount()

	sess.StartGame()
	sess.NextTurn()
	sess.SkipTurn()
	sess.ResetGame()
	time.Sleep(2 * saveQuietPeriod)

	assert.Equal(t, settled, st.saveCount(), "round/turn state must not trigger saves")
}

func TestPersistFailureIsSwallowed(t *testing.T) {
	sess := newTestSession(failingStore{Memory: store.NewMemory()})

	state := sess.AddPlayer("Alice")
	require.Len(t, state.Players, 1)

	time.Sleep(2 * saveQuietPeriod)
	assert.Len(t, sess.State().Players, 1, "in-memory state stays authoritative")
}

func TestResetAllClearsStore(t *testing.T) {
	st := store.NewMemory()
	sess := newTestSession(st)

	sess.AddPlayer("Alice")
	require.Eventually(t, func() bool {
		doc, _ := st.Load()
		return doc != nil
	}, 2*time.Second, 20*time.Millisecond)

	state := sess.ResetAll()

	assert.Empty(t, state.Players)
	assert.Equal(t, 6, state.TotalRounds)
	assert.Eventually(t, func() bool {
		doc, _ := st.Load()
		return doc == nil
	}, 2*time.Second, 20*time.Millisecond, "persisted document should stay cleared")
}

func TestCloseFlushesPendingSave(t *testing.T) {
	st := store.NewMemory()
	sess := newTestSession(st)

	sess.AddPlayer("Alice")
	require.NoError(t, sess.Close())

	doc, err := st.Load()
	require.NoError(t, err)
	require.NotNil(t, doc, "Close must flush the pending snapshot")
	assert.Len(t, doc.Players, 1)
}

func TestTurnsAreSerialized(t *testing.T) {
	sess := newTestSession(store.NewMemory())
	sess.AddPlayer("Alice")
	sess.AddPlayer("Bob")
	sess.SetTotalRounds(50)
	sess.StartGame()

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				sess.NextTurn()
			}
		}()
	}
	wg.Wait()

	state := sess.State()
	assert.Len(t, state.History, 40, "every turn lands exactly once")
	total := 0
	for _, e := range state.History {
		total += e.PointsAwarded
	}
	scoreSum := 0
	for _, v := range state.Scores {
		scoreSum += v
	}
	assert.Equal(t, total, scoreSum, "scores match awarded points")
}
