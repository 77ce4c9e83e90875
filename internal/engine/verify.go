package engine

import (
	"time"

	"github.com/tirage90/predictor/internal/domain"
)

const (
	verificationWindow = 7 * 24 * time.Hour
	attributionMin     = -24 * time.Hour
	attributionMax     = 72 * time.Hour
)

// maybeVerify runs Verify(false), swallowing its result, for callers on the
// request path that want the loop to stay warm without blocking on or
// reacting to its outcome.
func (e *Engine) maybeVerify() {
	if err := e.Verify(false); err != nil {
		e.log.Warn().Err(err).Msg("verification pass failed")
	}
}

// Verify matches unverified, recent prediction-history entries against the
// draws now on record and persists any newly resolved outcomes. It is
// throttled to once per verifyThrottle unless force is set. A verified
// entry is never rewritten.
func (e *Engine) Verify(force bool) error {
	e.verifyMu.Lock()
	if !force && time.Since(e.lastVerify) < verifyThrottle {
		e.verifyMu.Unlock()
		return nil
	}
	e.lastVerify = time.Now()
	e.verifyMu.Unlock()

	entries, err := e.history.All()
	if err != nil {
		return err
	}

	draws := e.draws.GetDraws(nil)
	cutoff := time.Now().Add(-verificationWindow)

	changed := false
	for i := range entries {
		entry := &entries[i]
		if entry.Verified() || entry.Timestamp.Before(cutoff) {
			continue
		}
		if verifyEntry(entry, draws) {
			changed = true
		}
	}

	if !changed {
		return nil
	}
	return e.history.Replace(entries)
}

// verifyEntry seeks the earliest same-drawType draw on or after the entry's
// prediction date and, if its timestamp falls in [-24h, +72h) of the
// prediction, attributes match/near-miss results to it. Returns whether the
// entry was resolved.
func verifyEntry(entry *domain.PredictionEntry, draws []domain.Draw) bool {
	y, m, day := entry.Timestamp.Date()
	predictionDate := time.Date(y, m, day, 0, 0, 0, 0, entry.Timestamp.Location())
	for _, d := range draws {
		if d.DrawTypeID != entry.DrawTypeID {
			continue
		}
		if d.Date.Before(predictionDate) {
			continue
		}
		delta := d.Date.Sub(entry.Timestamp)
		if delta < attributionMin || delta >= attributionMax {
			continue
		}

		actual := d.Winning
		entry.Result = outcomeFor(d.Date, entry.PredictedNumbers, actual)
		if len(entry.MachineNumbers) > 0 && d.HasMachine {
			entry.MachineResult = outcomeFor(d.Date, entry.MachineNumbers, d.Machine)
		}
		if len(entry.HybridNumbers) > 0 {
			entry.HybridResult = outcomeFor(d.Date, entry.HybridNumbers, actual)
		}
		return true
	}
	return false
}

func outcomeFor(drawDate time.Time, predicted []int, actual [5]int) *domain.OutcomeResult {
	actualSet := make(map[int]bool, 5)
	actualSlice := make([]int, 0, 5)
	for _, a := range actual {
		actualSet[a] = true
		actualSlice = append(actualSlice, a)
	}

	matchSet := make(map[int]bool, 5)
	var matches []int
	for _, p := range predicted {
		if actualSet[p] {
			matches = append(matches, p)
			matchSet[p] = true
		}
	}

	var nearMisses []int
	for _, p := range predicted {
		if matchSet[p] {
			continue
		}
		for _, a := range actual {
			if abs(p-a) == 1 {
				nearMisses = append(nearMisses, p)
				break
			}
		}
	}

	return &domain.OutcomeResult{
		DrawDate:   drawDate,
		Actual:     actualSlice,
		MatchCount: len(matches),
		Matches:    matches,
		NearMisses: nearMisses,
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
