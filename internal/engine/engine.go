// Package engine wires the Draw Store, the two per-stream Brains, the
// Correlation Booster, the Prediction Cache, and the Verification Loop
// together into the four operations the HTTP façade exposes: Predict,
// Evaluate, BrainStatus, and Refresh.
package engine

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tirage90/predictor/internal/brain"
	"github.com/tirage90/predictor/internal/cache"
	"github.com/tirage90/predictor/internal/domain"
	"github.com/tirage90/predictor/internal/history"
	"github.com/tirage90/predictor/internal/mlfeature"
)

// predictionCacheTTL is the Prediction Cache's fixed entry lifetime.
const predictionCacheTTL = 10 * time.Minute

// verifyThrottle is the minimum interval between two runs of the
// Verification Loop.
const verifyThrottle = 60 * time.Second

// DrawStore is the subset of internal/store.DrawStore the engine depends
// on, narrowed to an interface so tests can substitute an in-memory stand-in.
type DrawStore interface {
	GetDraws(drawTypeID *int) []domain.Draw
	GetDrawTypes() []domain.DrawType
	Invalidate()
	InsertDraws(draws []domain.Draw) (int, error)
	SavePatterns(drawTypeID int, patterns []domain.PatternStrength) error
}

// Scraper is the subset of internal/scrape.Client the refresh cycle needs.
type Scraper interface {
	FetchMonth(ctx context.Context, drawTypeID, year, month int) ([]domain.RawDraw, error)
}

// Engine holds every long-lived dependency needed to serve a prediction,
// evaluate a hand-picked combination, or run a refresh cycle.
type Engine struct {
	draws    DrawStore
	winning  *brain.Brain
	machine  *brain.Brain
	history  history.Log
	ranker   mlfeature.Ranker
	scraper  Scraper
	drawTypeIDs []int
	log      zerolog.Logger

	boostFactor float64

	predictionCache *cache.TTLCache[string, PredictResponse]

	refreshMu    sync.Mutex
	isRefreshing bool
	lastStatus   RefreshStatus

	verifyMu   sync.Mutex
	lastVerify time.Time
}

// Dependencies bundles everything New needs, mirroring the shape a
// cmd/server main wires up at startup.
type Dependencies struct {
	Draws       DrawStore
	Winning     *brain.Brain
	Machine     *brain.Brain
	History     history.Log
	Ranker      mlfeature.Ranker
	Scraper     Scraper
	DrawTypeIDs []int
	BoostFactor float64
	Log         zerolog.Logger
}

// New builds an Engine. Ranker may be mlfeature.NoopRanker{} when no
// external feature source is configured.
func New(deps Dependencies) *Engine {
	if deps.Ranker == nil {
		deps.Ranker = mlfeature.NoopRanker{}
	}
	if deps.BoostFactor <= 0 {
		deps.BoostFactor = 1.30
	}
	return &Engine{
		draws:           deps.Draws,
		winning:         deps.Winning,
		machine:         deps.Machine,
		history:         deps.History,
		ranker:          deps.Ranker,
		scraper:         deps.Scraper,
		drawTypeIDs:     deps.DrawTypeIDs,
		boostFactor:     deps.BoostFactor,
		log:             deps.Log.With().Str("component", "engine").Logger(),
		predictionCache: cache.New[string, PredictResponse](predictionCacheTTL),
	}
}

// brainFor returns the Brain for a stream.
func (e *Engine) brainFor(stream domain.Stream) *brain.Brain {
	if stream == domain.StreamMachine {
		return e.machine
	}
	return e.winning
}
