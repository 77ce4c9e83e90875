// Package brain implements the Brain: persistent per-stream state holding
// strategy weights, cumulative accuracy, and a bounded learning history,
// exposing Status, Score, and Learn.
package brain

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tirage90/predictor/internal/domain"
	"github.com/tirage90/predictor/internal/scorer"
	"github.com/tirage90/predictor/internal/selector"
	"github.com/tirage90/predictor/internal/strategies"
)

const learningRate = 0.05

// Store is the persistence contract a Brain depends on; internal/store
// implements it against Postgres ai_memory blobs.
type Store interface {
	LoadBrain(stream domain.Stream) (*domain.BrainState, error)
	SaveBrain(stream domain.Stream, state *domain.BrainState) error
}

// Brain guards one stream's state with a mutex: Learn is serialized per
// stream, and a stream's Brain never reads or writes the other stream's
// state.
type Brain struct {
	stream domain.Stream
	store Store
	log    zerolog.Logger

	mu    sync.Mutex
	state *domain.BrainState
}

// New loads a Brain for stream from store, falling back to defaults on any
// load error.
func New(stream domain.Stream, store Store, log zerolog.Logger) *Brain {
	b := &Brain{
		stream: stream,
		store:  store,
		log:    log.With().Str("component", "brain").Str("stream", string(stream)).Logger(),
	}

	state, err := store.LoadBrain(stream)
	if err != nil || state == nil {
		if err != nil {
			b.log.Warn().Err(err).Msg("failed to load brain, using defaults")
		}
		state = domain.NewBrainState(stream)
	}
	if state.InjectDefaults() {
		state.Normalize(true)
	}
	b.state = state
	return b
}

// Status returns a deep copy of the current state.
func (b *Brain) Status() *domain.BrainState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state.Clone()
}

// Score is a thin wrapper over the ensemble scorer using the Brain's
// current weights.
func (b *Brain) Score(draws []domain.Draw, externalScores []int) map[int]float64 {
	b.mu.Lock()
	weights := cloneWeights(b.state.Weights)
	b.mu.Unlock()

	return scorer.Score(draws, weights, b.stream, externalScores).Scores
}

// Learn applies one ground-truth draw to the Brain's weights: leakage
// guard, ensemble evaluation against ground truth, per-strategy scoring,
// weight tuning, bounded history append, and persistence.
func (b *Brain) Learn(actualDraw domain.Draw, allDraws []domain.Draw, drawTypeID *int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	filtered := excludeEqual(allDraws, actualDraw)

	weights := cloneWeights(b.state.Weights)
	scores := scorer.Score(filtered, weights, b.stream, nil).Scores
	top := selector.Select(scores)

	actualSet := actualDraw.Numbers(b.stream)
	_, globalMatch := matchAgainst(top.Numbers, actualSet)

	b.state.Global.TotalDraws++
	b.state.Global.TotalHits += globalMatch
	if drawTypeID != nil {
		stats := b.state.ByType[*drawTypeID]
		stats.TotalDraws++
		stats.TotalHits += globalMatch
		b.state.ByType[*drawTypeID] = stats
	}

	stratScores := scoreStrategies(filtered, b.stream, actualSet)
	newWeights := tuneWeights(b.state.Weights, stratScores)
	b.state.Weights = newWeights

	now := time.Now()
	b.state.LastTuned = &now
	b.state.LastAnalyzedDraw = &actualDraw
	b.state.AppendHistory(domain.HistoryEntry{
		Date:        now,
		Draw:        actualSet,
		StratScores: stratScores,
		GlobalMatch: globalMatch,
		NewWeights:  cloneWeights(newWeights),
	})

	if err := b.store.SaveBrain(b.stream, b.state); err != nil {
		b.log.Warn().Err(err).Msg("brain persistence failed, keeping in-memory state")
	}
	return nil
}

// excludeEqual drops any draw whose number sets match actualDraw exactly.
func excludeEqual(draws []domain.Draw, actualDraw domain.Draw) []domain.Draw {
	out := make([]domain.Draw, 0, len(draws))
	for _, d := range draws {
		if d.Equal(actualDraw) {
			continue
		}
		out = append(out, d)
	}
	return out
}

// matchAgainst returns the exact matches between predicted and actual plus
// their count.
func matchAgainst(predicted []int, actual [5]int) ([]int, int) {
	actualSet := make(map[int]bool, 5)
	for _, n := range actual {
		actualSet[n] = true
	}
	var matches []int
	for _, n := range predicted {
		if actualSet[n] {
			matches = append(matches, n)
		}
	}
	return matches, len(matches)
}

// nearMisses returns predicted numbers differing from some actual number by
// exactly 1, excluding any predicted number that is itself an exact match.
func nearMisses(predicted []int, actual [5]int, matches map[int]bool) []int {
	var out []int
	for _, p := range predicted {
		if matches[p] {
			continue
		}
		for _, a := range actual {
			if abs(p-a) == 1 {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// scoreStrategies runs each tuned strategy's top-10 candidates against the
// actual draw: +1.0 per exact match, +0.25 per near-miss.
func scoreStrategies(draws []domain.Draw, stream domain.Stream, actual [5]int) map[domain.StrategyKey]float64 {
	matchSet := make(map[int]bool, 5)
	for _, a := range actual {
		matchSet[a] = true
	}

	pool := map[domain.StrategyKey][]int{
		domain.StrategyHot:         strategies.Hot(draws, 10, stream),
		domain.StrategyDue:         strategies.Due(draws, 10, stream),
		domain.StrategyPosition:    strategies.Position(draws, 10, stream),
		domain.StrategyCorrelation: strategies.Correlation(draws, 10, stream),
		domain.StrategyBalanced:    strategies.Balanced(draws, 10, stream),
		domain.StrategyStatistical: strategies.Statistical(draws, 10, stream),
		domain.StrategyFinales:     strategies.Finales(draws, 10, stream),
	}

	out := make(map[domain.StrategyKey]float64, len(pool))
	for key, candidates := range pool {
		matches, count := matchAgainst(candidates, actual)
		matches2 := make(map[int]bool, count)
		for _, m := range matches {
			matches2[m] = true
		}
		near := nearMisses(candidates, actual, matches2)
		out[key] = float64(count)*1.0 + float64(len(near))*0.25
	}
	return out
}

// tuneWeights applies the LR=0.05 additive nudge, clamp, and L1-normalize
// rule. The lstm key is externally governed and never
// tuned here.
func tuneWeights(current map[domain.StrategyKey]float64, stratScores map[domain.StrategyKey]float64) map[domain.StrategyKey]float64 {
	next := cloneWeights(current)
	for key, score := range stratScores {
		w := next[key]
		switch {
		case score >= 3:
			w += 2 * learningRate
		case score >= 1:
			w += learningRate
		default:
			w -= 0.5 * learningRate
		}
		next[key] = w
	}

	state := &domain.BrainState{Weights: next}
	state.Normalize(false)
	return state.Weights
}

func cloneWeights(w map[domain.StrategyKey]float64) map[domain.StrategyKey]float64 {
	out := make(map[domain.StrategyKey]float64, len(w))
	for k, v := range w {
		out[k] = v
	}
	return out
}
