package engine

import (
	"context"

	"github.com/tirage90/predictor/internal/apperr"
	"github.com/tirage90/predictor/internal/domain"
)

const hotCandidateCutoff = 15

// EvaluateRequest is the user-supplied combination to score against the
// current ensemble, optionally scoped the same way Predict is.
type EvaluateRequest struct {
	Numbers    [5]int
	DrawTypeID *int
	DayOfWeek  *int
}

// Evaluate scores a hand-picked combination against the current winning
// ensemble and reports how it stacks up against the top candidates. It
// returns an apperr of kind InvalidInput when numbers are malformed.
func (e *Engine) Evaluate(ctx context.Context, req EvaluateRequest) (EvaluateResponse, error) {
	if err := validateNumbers(req.Numbers); err != nil {
		return EvaluateResponse{}, err
	}

	allDraws := e.draws.GetDraws(req.DrawTypeID)
	scoped, _ := filterByDayOfWeek(allDraws, req.DayOfWeek)

	externalWinning, err := e.ranker.Rank(ctx, scoped, topCandidateCount)
	if err != nil {
		e.log.Warn().Err(err).Msg("external feature source unavailable, proceeding without it")
		externalWinning = nil
	}
	scores := e.winning.Score(scoped, externalWinning)
	top := topScores(scores, topCandidateCount)

	hot := make(map[int]bool, hotCandidateCutoff)
	for i, ns := range top {
		if i >= hotCandidateCutoff {
			break
		}
		hot[ns.Number] = true
	}
	strongSet := make(map[int]bool, 5)
	for _, n := range topScores(scores, 5) {
		strongSet[n.Number] = true
	}

	numbers := make([]EvaluatedNumber, 0, 5)
	var totalScore float64
	var matches, strongMatches int
	for _, n := range req.Numbers {
		s := scores[n]
		totalScore += s
		isHot := hot[n]
		if isHot {
			matches++
		}
		if strongSet[n] {
			strongMatches++
		}
		numbers = append(numbers, EvaluatedNumber{
			Number: n,
			Score:  s,
			IsHot:  isHot,
			IsWarm: !isHot && s > 0,
		})
	}

	synergyBonus := synergyBonusFor(matches)
	confidence := evaluateConfidence(totalScore, matches)

	return EvaluateResponse{
		Numbers:        numbers,
		TotalScore:     totalScore,
		Confidence:     confidence,
		Matches:        matches,
		StrongMatches:  strongMatches,
		SynergyBonus:   synergyBonus,
		Analysis:       buildAnalysis(scoped, domain.StreamWinning),
		TopCandidates:  top,
		Recommendation: recommendationFor(confidence),
	}, nil
}

func validateNumbers(numbers [5]int) error {
	seen := make(map[int]bool, 5)
	for _, n := range numbers {
		if n < 1 || n > 90 {
			return apperr.New(apperr.InvalidInput, "numbers must be between 1 and 90")
		}
		if seen[n] {
			return apperr.New(apperr.InvalidInput, "numbers must be distinct")
		}
		seen[n] = true
	}
	return nil
}

// synergyBonusFor rewards a combination that lands several hot numbers at
// once, echoing the ensemble's own consensus amplifier: each match beyond
// the second adds 0.10, capped at 0.30.
func synergyBonusFor(matches int) float64 {
	if matches <= 2 {
		return 0
	}
	bonus := float64(matches-2) * 0.10
	if bonus > 0.30 {
		bonus = 0.30
	}
	return bonus
}

// evaluateConfidence mirrors the Selector's confidence shape (average score
// scaled plus a base, capped at 95) with a flat bonus per hot match.
func evaluateConfidence(totalScore float64, matches int) float64 {
	avg := totalScore / 5
	c := avg*100 + 35 + float64(matches)*5
	if c > 95 {
		c = 95
	}
	if c < 0 {
		c = 0
	}
	return c
}

func recommendationFor(confidence float64) string {
	switch {
	case confidence >= 80:
		return "Excellent"
	case confidence >= 60:
		return "Bon"
	case confidence >= 40:
		return "Moyen"
	default:
		return "Risqué"
	}
}
