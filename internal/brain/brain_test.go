package brain

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tirage90/predictor/internal/domain"
)

type memStore struct {
	states map[domain.Stream]*domain.BrainState
}

func newMemStore() *memStore {
	return &memStore{states: map[domain.Stream]*domain.BrainState{}}
}

func (m *memStore) LoadBrain(stream domain.Stream) (*domain.BrainState, error) {
	return m.states[stream], nil
}

func (m *memStore) SaveBrain(stream domain.Stream, state *domain.BrainState) error {
	m.states[stream] = state.Clone()
	return nil
}

func drawAt(date string, winning ...int) domain.Draw {
	var w [5]int
	copy(w[:], winning)
	t, _ := time.Parse("2006-01-02", date)
	return domain.Draw{Date: t, Winning: w}
}

func TestNew_InjectsDefaultsWhenStoreEmpty(t *testing.T) {
	store := newMemStore()
	b := New(domain.StreamWinning, store, zerolog.Nop())

	status := b.Status()
	assert.Len(t, status.Weights, len(domain.DefaultWeights()))
	var total float64
	for _, w := range status.Weights {
		total += w
	}
	assert.InDelta(t, 1.0, total, 1e-6)
}

func TestLearn_ExcludesActualDrawFromTrainingSet(t *testing.T) {
	store := newMemStore()
	b := New(domain.StreamWinning, store, zerolog.Nop())

	draws := make([]domain.Draw, 0, 30)
	for i := 0; i < 30; i++ {
		draws = append(draws, drawAt("2024-01-01", 7, 15, 23, 42, 71))
	}
	actual := drawAt("2024-02-01", 7, 15, 23, 42, 71)

	err := b.Learn(actual, draws, nil)
	require.NoError(t, err)

	status := b.Status()
	assert.Equal(t, 1, status.Global.TotalDraws)
	// Every training draw equals the actual draw, so the leakage guard leaves
	// nothing to score and the ensemble selects no numbers to match.
	require.Len(t, status.History, 1)
	assert.Equal(t, 0, status.History[0].GlobalMatch)
}

func TestLearn_WeightsStaySummedToOne(t *testing.T) {
	store := newMemStore()
	b := New(domain.StreamWinning, store, zerolog.Nop())

	draws := make([]domain.Draw, 0, 20)
	for i := 0; i < 20; i++ {
		draws = append(draws, drawAt("2024-01-01", 1, 2, 3, 4, 5))
	}
	actual := drawAt("2024-02-01", 1, 2, 3, 4, 6)

	require.NoError(t, b.Learn(actual, draws, nil))

	status := b.Status()
	var total float64
	for _, w := range status.Weights {
		assert.GreaterOrEqual(t, w, 0.05)
		assert.LessOrEqual(t, w, 0.60)
		total += w
	}
	assert.InDelta(t, 1.0, total, 1e-6)
}

func TestLearn_HistoryBoundedToFifty(t *testing.T) {
	store := newMemStore()
	b := New(domain.StreamWinning, store, zerolog.Nop())

	draws := []domain.Draw{drawAt("2024-01-01", 1, 2, 3, 4, 5)}
	for i := 0; i < 60; i++ {
		actual := drawAt("2024-02-01", 1, 2, 3, 4, 5)
		require.NoError(t, b.Learn(actual, draws, nil))
	}

	status := b.Status()
	assert.LessOrEqual(t, len(status.History), 50)
}

func TestLearn_PerStreamIsolation(t *testing.T) {
	store := newMemStore()
	winning := New(domain.StreamWinning, store, zerolog.Nop())
	machine := New(domain.StreamMachine, store, zerolog.Nop())

	draws := []domain.Draw{drawAt("2024-01-01", 1, 2, 3, 4, 5)}
	require.NoError(t, winning.Learn(drawAt("2024-02-01", 1, 2, 3, 4, 5), draws, nil))

	assert.Equal(t, 0, machine.Status().Global.TotalDraws)
	assert.Equal(t, 1, winning.Status().Global.TotalDraws)
}
