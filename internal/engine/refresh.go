package engine

import (
	"context"
	"time"

	"github.com/tirage90/predictor/internal/analyzers"
	"github.com/tirage90/predictor/internal/apperr"
	"github.com/tirage90/predictor/internal/domain"
	"github.com/tirage90/predictor/internal/scrape"
)

var _ Scraper = (*scrape.Client)(nil)

// Refresh triggers a scrape-and-learn cycle in the background and reports
// immediately; isRefreshing prevents two cycles from overlapping. A request
// that arrives while one is already running gets an apperr of kind
// StateConflict rather than a blocking wait.
func (e *Engine) Refresh(forceTrain bool) (RefreshStatus, error) {
	e.refreshMu.Lock()
	if e.isRefreshing {
		status := e.lastStatus
		status.Running = true
		e.refreshMu.Unlock()
		return status, apperr.New(apperr.StateConflict, "refresh already running")
	}
	e.isRefreshing = true
	e.lastStatus.Running = true
	e.refreshMu.Unlock()

	go e.runRefresh(forceTrain)

	return RefreshStatus{Running: true}, nil
}

func (e *Engine) runRefresh(forceTrain bool) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	newRows, err := e.scrapeAndStore(ctx)

	e.refreshMu.Lock()
	e.isRefreshing = false
	e.lastStatus.Running = false
	e.lastStatus.LastRun = time.Now()
	e.lastStatus.NewRows = newRows
	if err != nil {
		e.lastStatus.LastError = err.Error()
	} else {
		e.lastStatus.LastError = ""
	}
	e.refreshMu.Unlock()

	if err != nil {
		e.log.Error().Err(err).Msg("refresh cycle failed")
		return
	}
	if newRows == 0 && !forceTrain {
		return
	}

	e.draws.Invalidate()
	e.predictionCache.Invalidate()

	e.storePatterns()

	if err := e.Verify(true); err != nil {
		e.log.Warn().Err(err).Msg("verification during refresh failed")
	}

	e.trainFromLatest()
}

// scrapeAndStore fetches the current month for every configured draw type,
// normalizes and inserts new rows, and returns the total newly inserted. A
// fetch or insert error ends the cycle and is returned with the count so far.
func (e *Engine) scrapeAndStore(ctx context.Context) (int, error) {
	if e.scraper == nil {
		return 0, nil
	}

	now := time.Now()
	var total int
	for _, drawTypeID := range e.drawTypeIDs {
		raw, err := e.scraper.FetchMonth(ctx, drawTypeID, now.Year(), int(now.Month()))
		if err != nil {
			return total, err
		}

		normalized := make([]domain.Draw, 0, len(raw))
		for _, r := range raw {
			d, err := scrape.Normalize(r)
			if err != nil {
				e.log.Warn().Err(err).Int("drawTypeId", drawTypeID).Msg("dropping unparseable draw")
				continue
			}
			normalized = append(normalized, d)
		}

		n, err := e.draws.InsertDraws(normalized)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

// storePatterns runs the decade-distribution analyzer per draw type and
// persists each distinct per-draw bucket pattern's observed frequency as a
// strength in [0, 99.99] (defaulting to 50 on non-finite input), the
// analyzer-backed pattern storage step of the refresh cycle.
func (e *Engine) storePatterns() {
	for _, drawTypeID := range e.drawTypeIDs {
		id := drawTypeID
		draws := e.draws.GetDraws(&id)
		if len(draws) == 0 {
			continue
		}

		_, patternStrings := analyzers.DecadeDistribution(draws, domain.StreamWinning)
		counts := make(map[string]int, len(patternStrings))
		for _, p := range patternStrings {
			counts[p]++
		}

		patterns := make([]domain.PatternStrength, 0, len(counts))
		for pattern, count := range counts {
			strength := float64(count) / float64(len(patternStrings)) * 100
			patterns = append(patterns, domain.PatternStrength{Pattern: pattern, Strength: strength})
		}

		if err := e.draws.SavePatterns(id, patterns); err != nil {
			e.log.Warn().Err(err).Int("drawTypeId", id).Msg("failed to persist pattern strengths")
		}
	}
}

// trainFromLatest runs one Learn step per draw type against its most recent
// draw, for both streams.
func (e *Engine) trainFromLatest() {
	for _, drawTypeID := range e.drawTypeIDs {
		id := drawTypeID
		draws := e.draws.GetDraws(&id)
		if len(draws) == 0 {
			continue
		}
		latest := draws[len(draws)-1]

		if err := e.winning.Learn(latest, draws, &id); err != nil {
			e.log.Warn().Err(err).Int("drawTypeId", id).Msg("winning brain learn failed")
		}
		if latest.HasMachine {
			if err := e.machine.Learn(latest, draws, &id); err != nil {
				e.log.Warn().Err(err).Int("drawTypeId", id).Msg("machine brain learn failed")
			}
		}
	}
}
