package strategies

import (
	"github.com/tirage90/predictor/internal/analyzers"
	"github.com/tirage90/predictor/internal/domain"
)

type finaleScore struct {
	finale int
	score float64
}

// Finales picks the top-3 finales by weighted score (0.6·dueScore +
// 0.4·percentage), then collects every number sharing one of those finales,
// ranked by global frequency.
func Finales(draws []domain.Draw, k int, stream domain.Stream) []int {
	if len(draws) == 0 {
		return nil
	}
	stats := analyzers.FinaleAnalysis(draws, stream)

	ranked := make([]finaleScore, 0, 10)
	for f := 0; f <= 9; f++ {
		fs := stats[f]
		ranked = append(ranked, finaleScore{f, 0.6*fs.DueScore + 0.4*fs.Percentage})
	}
	for i := 1; i < len(ranked); i++ {
		for j := i; j > 0 && lessFinaleScore(ranked[j], ranked[j-1]); j-- {
			ranked[j-1], ranked[j] = ranked[j], ranked[j-1]
		}
	}
	if len(ranked) > 3 {
		ranked = ranked[:3]
	}

	top := make(map[int]bool, 3)
	for _, r := range ranked {
		top[r.finale] = true
	}

	freq := rawFrequency(draws, stream)
	candidates := make([]int, 0, 27)
	for n := 1; n <= 90; n++ {
		if top[n%10] {
			candidates = append(candidates, n)
		}
	}
	for i := 1; i < len(candidates); i++ {
		for j := i; j > 0 && lessFreq(candidates[j], candidates[j-1], freq); j-- {
			candidates[j-1], candidates[j] = candidates[j], candidates[j-1]
		}
	}

	return takeDistinct(candidates, k, make(map[int]bool, k))
}

func lessFinaleScore(a, b finaleScore) bool {
	if a.score != b.score {
		return a.score > b.score
	}
	return a.finale < b.finale
}
