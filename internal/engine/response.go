package engine

import (
	"time"

	"github.com/google/uuid"
)

// Context identifies which draw type / day-of-week a prediction was scoped
// to, or nil for both when the request was unscoped.
type Context struct {
	DrawTypeID *int `json:"drawTypeId,omitempty"`
	DayOfWeek  *int `json:"dayOfWeek,omitempty"`
}

// PredictionBlock is one stream's selection, as served in the main/machine
// slots of a PredictResponse.
type PredictionBlock struct {
	Numbers    []int           `json:"numbers"`
	Sum        int             `json:"sum"`
	Confidence float64         `json:"confidence"`
	Scores     map[int]float64 `json:"scores"`
}

// HybridBlock is the Correlation Booster's output: a boosted selection plus
// the bookkeeping that explains how it was produced.
type HybridBlock struct {
	PredictionBlock
	Method              string  `json:"method"`
	CorrelationStrength float64 `json:"correlationStrength"`
	BoostedCount        int     `json:"boostedCount"`
}

// NumberScore is one ranked candidate surfaced outside its owning stream's
// full score map.
type NumberScore struct {
	Number int     `json:"number"`
	Score  float64 `json:"score"`
}

// AnalysisBlock summarizes the statistical analyzers for the response's
// "analysis" field: the hottest, most overdue, and most common finale
// numbers for the winning stream.
type AnalysisBlock struct {
	Hottest       []NumberScore        `json:"hottest"`
	MostOverdue   []NumberScore        `json:"mostOverdue"`
	DecadeCounts  []int                `json:"decadeCounts"`
	FinaleCounts  map[int]int          `json:"finaleCounts"`
	TopPairs      []PairSummary        `json:"topPairs"`
}

// PairSummary is a reporting-only view of one correlated pair.
type PairSummary struct {
	A, B int     `json:"-"`
	Lift float64 `json:"lift"`
}

// LastPerformance summarizes recent verified predictions, derived from the
// prediction-history log.
type LastPerformance struct {
	SampleSize    int     `json:"sampleSize"`
	AverageHits   float64 `json:"averageHits"`
	HitRate       float64 `json:"hitRate"`
}

// PredictResponse is the full payload served by GET /predict.
type PredictResponse struct {
	ID            uuid.UUID       `json:"id"`
	Context       Context         `json:"context"`
	Main          PredictionBlock `json:"main"`
	Machine       PredictionBlock `json:"machine"`
	Hybrid        HybridBlock     `json:"hybrid"`
	Alternatives  [][]int         `json:"alternatives"`
	Alerts        []string        `json:"alerts"`
	TopCandidates []NumberScore   `json:"topCandidates"`
	Analysis      AnalysisBlock   `json:"analysis"`
	GeneratedAt   time.Time       `json:"generatedAt"`

	LastPerformance *LastPerformance `json:"lastPerformance,omitempty"`

	Cached     bool    `json:"cached"`
	AgeSeconds float64 `json:"ageSeconds,omitempty"`
}

// EvaluatedNumber is one user-supplied number's standing against the
// current ensemble scores.
type EvaluatedNumber struct {
	Number int     `json:"number"`
	Score  float64 `json:"score"`
	IsHot  bool    `json:"isHot"`
	IsWarm bool    `json:"isWarm"`
}

// EvaluateResponse is the payload served by POST /evaluate.
type EvaluateResponse struct {
	Numbers       []EvaluatedNumber `json:"numbers"`
	TotalScore    float64           `json:"totalScore"`
	Confidence    float64           `json:"confidence"`
	Matches       int               `json:"matches"`
	StrongMatches int               `json:"strongMatches"`
	SynergyBonus  float64           `json:"synergyBonus"`
	Analysis      AnalysisBlock     `json:"analysis"`
	TopCandidates []NumberScore     `json:"topCandidates"`
	Recommendation string           `json:"recommendation"`
}

// RefreshStatus is the last-run bookkeeping surfaced by GET /api/brain and
// returned immediately by POST /refresh.
type RefreshStatus struct {
	Running    bool      `json:"running"`
	LastRun    time.Time `json:"lastRun,omitempty"`
	LastError  string    `json:"lastError,omitempty"`
	NewRows    int       `json:"newRows"`
}

// BrainStatusResponse is the payload served by GET /api/brain.
type BrainStatusResponse struct {
	Stream          string           `json:"stream"`
	Weights         map[string]float64 `json:"weights"`
	GlobalAccuracy  float64          `json:"globalAccuracy"`
	TotalDraws      int              `json:"totalDraws"`
	RealPerformance *LastPerformance `json:"realPerformance,omitempty"`
}
