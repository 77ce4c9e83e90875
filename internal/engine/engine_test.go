package engine

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tirage90/predictor/internal/brain"
	"github.com/tirage90/predictor/internal/domain"
	"github.com/tirage90/predictor/internal/history"
)

type memoryBrainStore struct {
	states map[domain.Stream]*domain.BrainState
}

func newMemoryBrainStore() *memoryBrainStore {
	return &memoryBrainStore{states: map[domain.Stream]*domain.BrainState{}}
}

func (s *memoryBrainStore) LoadBrain(stream domain.Stream) (*domain.BrainState, error) {
	return s.states[stream], nil
}

func (s *memoryBrainStore) SaveBrain(stream domain.Stream, state *domain.BrainState) error {
	s.states[stream] = state
	return nil
}

type stubDrawStore struct {
	draws     []domain.Draw
	drawTypes []domain.DrawType
	inserted  []domain.Draw
	patterns  map[int][]domain.PatternStrength
}

func (s *stubDrawStore) GetDraws(drawTypeID *int) []domain.Draw {
	if drawTypeID == nil {
		return s.draws
	}
	var out []domain.Draw
	for _, d := range s.draws {
		if d.DrawTypeID == *drawTypeID {
			out = append(out, d)
		}
	}
	return out
}

func (s *stubDrawStore) GetDrawTypes() []domain.DrawType { return s.drawTypes }
func (s *stubDrawStore) Invalidate()                     {}

func (s *stubDrawStore) InsertDraws(draws []domain.Draw) (int, error) {
	s.inserted = append(s.inserted, draws...)
	s.draws = append(s.draws, draws...)
	return len(draws), nil
}

func (s *stubDrawStore) SavePatterns(drawTypeID int, patterns []domain.PatternStrength) error {
	if s.patterns == nil {
		s.patterns = make(map[int][]domain.PatternStrength)
	}
	s.patterns[drawTypeID] = patterns
	return nil
}

func drawAt(day int, drawTypeID int, winning [5]int) domain.Draw {
	return domain.Draw{
		DrawTypeID: drawTypeID,
		Date:       time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, day),
		DayOfWeek:  (day + 4) % 7,
		Winning:    winning,
		Machine:    [5]int{11, 12, 13, 14, 15},
		HasMachine: true,
	}
}

func newTestEngine(draws []domain.Draw) (*Engine, *stubDrawStore) {
	store := &stubDrawStore{draws: draws, drawTypes: []domain.DrawType{{ID: 1, Name: "18h", Category: "daily"}}}
	winning := brain.New(domain.StreamWinning, newMemoryBrainStore(), zerolog.Nop())
	machine := brain.New(domain.StreamMachine, newMemoryBrainStore(), zerolog.Nop())

	eng := New(Dependencies{
		Draws:       store,
		Winning:     winning,
		Machine:     machine,
		History:     history.NewMemoryLog(),
		DrawTypeIDs: []int{1},
		Log:         zerolog.Nop(),
	})
	return eng, store
}

func manyDraws(n int) []domain.Draw {
	out := make([]domain.Draw, 0, n)
	for i := 0; i < n; i++ {
		base := 1 + (i % 80)
		out = append(out, drawAt(i, 1, [5]int{base, base + 1, base + 2, base + 3, base + 4}))
	}
	return out
}

func TestPredict_ReturnsFiveDistinctNumbersPerStream(t *testing.T) {
	eng, _ := newTestEngine(manyDraws(60))

	resp, err := eng.Predict(context.Background(), nil, nil)
	require.NoError(t, err)

	assert.Len(t, resp.Main.Numbers, 5)
	assert.Len(t, resp.Machine.Numbers, 5)
	assert.False(t, resp.Cached)
}

func TestPredict_SecondCallIsServedFromCache(t *testing.T) {
	eng, _ := newTestEngine(manyDraws(40))

	_, err := eng.Predict(context.Background(), nil, nil)
	require.NoError(t, err)

	resp, err := eng.Predict(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.True(t, resp.Cached)
}

func TestPredict_ZeroDrawsProducesEmptySelection(t *testing.T) {
	eng, _ := newTestEngine(nil)

	resp, err := eng.Predict(context.Background(), nil, nil)
	require.NoError(t, err)

	assert.Empty(t, resp.Main.Numbers)
	assert.Equal(t, float64(0), resp.Main.Confidence)
}

func TestEvaluate_RejectsDuplicateNumbers(t *testing.T) {
	eng, _ := newTestEngine(manyDraws(20))

	_, err := eng.Evaluate(context.Background(), EvaluateRequest{Numbers: [5]int{1, 1, 2, 3, 4}})
	require.Error(t, err)
}

func TestEvaluate_RejectsOutOfRangeNumbers(t *testing.T) {
	eng, _ := newTestEngine(manyDraws(20))

	_, err := eng.Evaluate(context.Background(), EvaluateRequest{Numbers: [5]int{0, 1, 2, 3, 4}})
	require.Error(t, err)
}

func TestEvaluate_AcceptsValidCombination(t *testing.T) {
	eng, _ := newTestEngine(manyDraws(50))

	resp, err := eng.Evaluate(context.Background(), EvaluateRequest{Numbers: [5]int{1, 2, 3, 4, 5}})
	require.NoError(t, err)
	assert.Len(t, resp.Numbers, 5)
	assert.Contains(t, []string{"Excellent", "Bon", "Moyen", "Risqué"}, resp.Recommendation)
}

func TestBrainStatus_ReturnsNormalizedWeights(t *testing.T) {
	eng, _ := newTestEngine(manyDraws(10))

	status := eng.BrainStatus(domain.StreamWinning)
	assert.Equal(t, "winning", status.Stream)

	var sum float64
	for _, w := range status.Weights {
		sum += w
	}
	assert.InDelta(t, 1.0, sum, 1e-6)
}

func TestRefresh_SecondCallWhileRunningReportsStateConflict(t *testing.T) {
	eng, _ := newTestEngine(manyDraws(5))

	eng.refreshMu.Lock()
	eng.isRefreshing = true
	eng.refreshMu.Unlock()

	_, err := eng.Refresh(false)
	require.Error(t, err)
}
