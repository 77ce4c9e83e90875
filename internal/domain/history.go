package domain

import (
	"time"

	"github.com/google/uuid"
)

// OutcomeResult is the matched-against-ground-truth record attached to a
// PredictionEntry once the Verification Loop resolves it.
type OutcomeResult struct {
	DrawDate   time.Time `json:"drawDate"`
	Actual     []int     `json:"actual"`
	MatchCount int       `json:"matchCount"`
	Matches    []int     `json:"matches"`
	NearMisses []int     `json:"nearMisses"`
}

// PredictionEntry is one served prediction, logged externally and mutated
// exactly once by the Verification Loop.
type PredictionEntry struct {
	ID                 uuid.UUID       `json:"id"`
	Timestamp          time.Time       `json:"timestamp"`
	DrawTypeID          int             `json:"drawTypeId"`
	DayOfWeek           int             `json:"dayOfWeek"`
	PredictedNumbers    []int           `json:"predictedNumbers"`
	Confidence          float64         `json:"confidence"`
	Scores              map[int]float64 `json:"scores"`
	MachineNumbers      []int           `json:"machineNumbers,omitempty"`
	MachineConfidence   float64         `json:"machineConfidence,omitempty"`
	HybridNumbers       []int           `json:"hybridNumbers,omitempty"`
	HybridConfidence    float64         `json:"hybridConfidence,omitempty"`
	Result              *OutcomeResult  `json:"result,omitempty"`
	MachineResult       *OutcomeResult  `json:"machineResult,omitempty"`
	HybridResult        *OutcomeResult  `json:"hybridResult,omitempty"`
}

// Verified reports whether this entry has already been matched against a
// ground-truth draw. A verified entry is never rewritten.
func (p *PredictionEntry) Verified() bool {
	return p.Result != nil
}

// MaxHistoryEntries bounds the prediction-history log.
const MaxHistoryEntries = 1000
