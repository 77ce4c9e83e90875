package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tirage90/predictor/internal/booster"
	"github.com/tirage90/predictor/internal/cache"
	"github.com/tirage90/predictor/internal/domain"
	"github.com/tirage90/predictor/internal/selector"
)

// minDayOfWeekSample is the smallest day-filtered draw count the scorer will
// run on before falling back to the full history. The fallback is surfaced
// as an alert rather than kept silent.
const minDayOfWeekSample = 10

const topCandidateCount = 15

// Predict serves the full prediction payload for one (drawType, dayOfWeek)
// scope: both streams' selections, the correlation-boosted hybrid, and the
// supporting analysis, using the Prediction Cache when an unexpired entry
// exists.
func (e *Engine) Predict(ctx context.Context, drawTypeID, dayOfWeek *int) (PredictResponse, error) {
	e.maybeVerify()

	key := cache.PredictionKey(drawTypeID, dayOfWeek)
	if cached, ok, age := e.predictionCache.Get(key); ok {
		cached.Cached = true
		cached.AgeSeconds = age.Seconds()
		return cached, nil
	}

	allDraws := e.draws.GetDraws(drawTypeID)
	scoped, fellBack := filterByDayOfWeek(allDraws, dayOfWeek)

	externalWinning, err := e.ranker.Rank(ctx, scoped, topCandidateCount)
	if err != nil {
		e.log.Warn().Err(err).Msg("external feature source unavailable, proceeding without it")
		externalWinning = nil
	}

	winningScores := e.winning.Score(scoped, externalWinning)
	machineScores := e.machine.Score(scoped, nil)

	mainSel := selector.Select(winningScores)
	machineSel := selector.Select(machineScores)

	matrix := booster.BuildMatrix(scoped)
	boost := booster.Boost(matrix, machineSel.Numbers, winningScores, e.boostFactor)

	alertList := alerts(fellBack, len(scoped), mainSel, machineSel)

	resp := PredictResponse{
		ID:      uuid.New(),
		Context: Context{DrawTypeID: drawTypeID, DayOfWeek: dayOfWeek},
		Main:    blockFrom(mainSel),
		Machine: blockFrom(machineSel),
		Hybrid: HybridBlock{
			PredictionBlock:     blockFrom(boost.Selection),
			Method:              "correlation-boost",
			CorrelationStrength: boost.CorrelationStrength,
			BoostedCount:        boost.BoostedCount,
		},
		Alternatives:  alternativeSelections(winningScores, mainSel.Numbers, 3),
		Alerts:        alertList,
		TopCandidates: topScores(winningScores, topCandidateCount),
		Analysis:      buildAnalysis(scoped, domain.StreamWinning),
		GeneratedAt:   time.Now(),
	}
	resp.LastPerformance = e.recentPerformance(drawTypeID)

	if err := e.history.Append(domain.PredictionEntry{
		ID:               resp.ID,
		Timestamp:        resp.GeneratedAt,
		DrawTypeID:       valueOrZero(drawTypeID),
		DayOfWeek:        valueOrZero(dayOfWeek),
		PredictedNumbers: resp.Main.Numbers,
		Confidence:       resp.Main.Confidence,
		Scores:           winningScores,
		MachineNumbers:   resp.Machine.Numbers,
		MachineConfidence: resp.Machine.Confidence,
		HybridNumbers:    resp.Hybrid.Numbers,
		HybridConfidence: resp.Hybrid.Confidence,
	}); err != nil {
		e.log.Warn().Err(err).Msg("failed to append prediction history entry")
	}

	e.predictionCache.Set(key, resp)
	return resp, nil
}

func valueOrZero(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

// filterByDayOfWeek narrows draws to a single weekday when requested,
// falling back to the unfiltered sequence when fewer than
// minDayOfWeekSample draws match. The second return reports whether the
// fallback fired.
func filterByDayOfWeek(draws []domain.Draw, dayOfWeek *int) ([]domain.Draw, bool) {
	if dayOfWeek == nil {
		return draws, false
	}
	filtered := make([]domain.Draw, 0, len(draws))
	for _, d := range draws {
		if d.DayOfWeek == *dayOfWeek {
			filtered = append(filtered, d)
		}
	}
	if len(filtered) < minDayOfWeekSample {
		return draws, true
	}
	return filtered, false
}

func blockFrom(sel domain.Selection) PredictionBlock {
	return PredictionBlock{
		Numbers:    sel.Numbers,
		Sum:        sel.Sum,
		Confidence: sel.Confidence,
		Scores:     sel.Scores,
	}
}

func topScores(scores map[int]float64, n int) []NumberScore {
	out := make([]NumberScore, 0, 90)
	for num, s := range scores {
		if s <= 0 {
			continue
		}
		out = append(out, NumberScore{Number: num, Score: s})
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && lessNumberScore(out[j], out[j-1]); j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func lessNumberScore(a, b NumberScore) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return a.Number < b.Number
}

// alternativeSelections builds up to count additional 5-number combinations
// by excluding the previously chosen top pick and re-running the selector,
// giving a caller a next-best fallback without a second canonical stream.
func alternativeSelections(scores map[int]float64, exclude []int, count int) [][]int {
	excluded := make(map[int]bool, len(exclude))
	for _, n := range exclude {
		excluded[n] = true
	}

	out := make([][]int, 0, count)
	working := make(map[int]float64, len(scores))
	for n, s := range scores {
		if excluded[n] {
			continue
		}
		working[n] = s
	}

	for i := 0; i < count; i++ {
		sel := selector.Select(working)
		if len(sel.Numbers) == 0 {
			break
		}
		out = append(out, sel.Numbers)
		for _, n := range sel.Numbers {
			delete(working, n)
		}
	}
	return out
}

// alerts surfaces conditions worth calling out in the response rather than
// leaving them silent: a day-of-week sample too small to trust, a thin
// overall history, and low-confidence selections.
func alerts(fellBack bool, sampleSize int, main, machine domain.Selection) []string {
	var out []string
	if fellBack {
		out = append(out, fmt.Sprintf("day-of-week sample below %d draws, scored against full history instead", minDayOfWeekSample))
	}
	if sampleSize < 30 {
		out = append(out, fmt.Sprintf("thin history (%d draws): scores may be unstable", sampleSize))
	}
	if main.Confidence > 0 && main.Confidence < 50 {
		out = append(out, "main selection confidence is low")
	}
	if machine.Confidence > 0 && machine.Confidence < 50 {
		out = append(out, "machine selection confidence is low")
	}
	return out
}

// recentPerformance summarizes the last verified history entries for the
// requested draw type (or all types when nil) into a LastPerformance block,
// or nil when nothing has been verified yet.
func (e *Engine) recentPerformance(drawTypeID *int) *LastPerformance {
	entries, err := e.history.All()
	if err != nil {
		e.log.Warn().Err(err).Msg("failed to read prediction history")
		return nil
	}

	var hits, n int
	for _, entry := range entries {
		if entry.Result == nil {
			continue
		}
		if drawTypeID != nil && entry.DrawTypeID != *drawTypeID {
			continue
		}
		hits += entry.Result.MatchCount
		n++
		if n >= 20 {
			break
		}
	}
	if n == 0 {
		return nil
	}
	return &LastPerformance{
		SampleSize:  n,
		AverageHits: float64(hits) / float64(n),
		HitRate:     float64(hits) / float64(n*5),
	}
}
