package domain

import "time"

// StrategyKey identifies one of the Ensemble Scorer's strategy weights.
type StrategyKey string

const (
	StrategyHot         StrategyKey = "hot"
	StrategyDue         StrategyKey = "due"
	StrategyCorrelation StrategyKey = "correlation"
	StrategyPosition    StrategyKey = "position"
	StrategyBalanced    StrategyKey = "balanced"
	StrategyStatistical StrategyKey = "statistical"
	StrategyFinales     StrategyKey = "finales"
	StrategyLSTM        StrategyKey = "lstm"
)

// DefaultWeights is the Brain's starting weight map before any learning has
// happened. It is also the source of truth for which strategy keys must
// exist in every loaded brain.
func DefaultWeights() map[StrategyKey]float64 {
	return map[StrategyKey]float64{
		StrategyHot:         0.15,
		StrategyDue:         0.15,
		StrategyCorrelation: 0.15,
		StrategyPosition:    0.10,
		StrategyBalanced:    0.10,
		StrategyStatistical: 0.15,
		StrategyFinales:     0.10,
		StrategyLSTM:        0.10,
	}
}

const (
	minWeight = 0.05
	maxWeight = 0.60
	maxHistory = 50
)

// AccuracyStats holds cumulative hit counting for one scope (global, or one
// draw type).
type AccuracyStats struct {
	TotalDraws int     `json:"totalDraws"`
	TotalHits int      `json:"totalHits"`
}

// GlobalAccuracy is totalHits / (totalDraws*5), or 0 when no draws have been
// learned from yet.
func (a AccuracyStats) GlobalAccuracy() float64 {
	if a.TotalDraws == 0 {
		return 0
	}
	return float64(a.TotalHits) / float64(a.TotalDraws*5)
}

// HistoryEntry is one bounded FIFO learning record.
type HistoryEntry struct {
	Date        time.Time              `json:"date"`
	Draw        [5]int                 `json:"draw"`
	StratScores map[StrategyKey]float64 `json:"stratScores"`
	GlobalMatch int                    `json:"globalMatch"`
	NewWeights map[StrategyKey]float64 `json:"newWeights"`
}

// BrainState is the persisted, per-stream learning memory.
type BrainState struct {
	Stream          Stream                   `json:"stream"`
	Version         int                      `json:"version"`
	LastTuned       *time.Time               `json:"lastTuned"`
	Weights         map[StrategyKey]float64  `json:"weights"`
	Global          AccuracyStats            `json:"global"`
	ByType          map[int]AccuracyStats    `json:"byType"`
	History         []HistoryEntry           `json:"history"`
	LastAnalyzedDraw *Draw                   `json:"lastAnalyzedDraw"`
}

// NewBrainState builds a fresh brain for a stream with default weights.
func NewBrainState(stream Stream) *BrainState {
	return &BrainState{
		Stream:  stream,
		Version: 1,
		Weights: DefaultWeights(),
		ByType:  map[int]AccuracyStats{},
		History: nil,
	}
}

// Clone deep-copies a BrainState so callers can hold a consistent snapshot
// while the owning Brain continues to mutate its working copy.
func (b *BrainState) Clone() *BrainState {
	if b == nil {
		return nil
	}
	clone := &BrainState{
		Stream:  b.Stream,
		Version: b.Version,
		Global:  b.Global,
	}
	if b.LastTuned != nil {
		t := *b.LastTuned
		clone.LastTuned = &t
	}
	clone.Weights = make(map[StrategyKey]float64, len(b.Weights))
	for k, v := range b.Weights {
		clone.Weights[k] = v
	}
	clone.ByType = make(map[int]AccuracyStats, len(b.ByType))
	for k, v := range b.ByType {
		clone.ByType[k] = v
	}
	clone.History = make([]HistoryEntry, len(b.History))
	copy(clone.History, b.History)
	if b.LastAnalyzedDraw != nil {
		d := *b.LastAnalyzedDraw
		clone.LastAnalyzedDraw = &d
	}
	return clone
}

// InjectDefaults adds any default strategy key missing from Weights, then
// reports whether anything was injected (the caller re-normalizes and
// rounds when true, as part of migrating an older brain on load).
func (b *BrainState) InjectDefaults() bool {
	injected := false
	if b.Weights == nil {
		b.Weights = map[StrategyKey]float64{}
	}
	for k, v := range DefaultWeights() {
		if _, ok := b.Weights[k]; !ok {
			b.Weights[k] = v
			injected = true
		}
	}
	return injected
}

// Normalize clamps every weight to [minWeight, maxWeight] and then
// L1-normalizes so the weights sum to 1, rounding each to two decimals when
// round is true.
func (b *BrainState) Normalize(round bool) {
	for k, v := range b.Weights {
		if v < minWeight {
			v = minWeight
		}
		if v > maxWeight {
			v = maxWeight
		}
		b.Weights[k] = v
	}
	var total float64
	for _, v := range b.Weights {
		total += v
	}
	if total == 0 {
		return
	}
	for k, v := range b.Weights {
		normalized := v / total
		if round {
			normalized = roundTo2(normalized)
		}
		b.Weights[k] = normalized
	}
}

func roundTo2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}

// AppendHistory pushes a new entry and trims the FIFO to maxHistory.
func (b *BrainState) AppendHistory(e HistoryEntry) {
	b.History = append(b.History, e)
	if len(b.History) > maxHistory {
		b.History = b.History[len(b.History)-maxHistory:]
	}
}
