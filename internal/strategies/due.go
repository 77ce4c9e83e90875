package strategies

import (
	"github.com/tirage90/predictor/internal/analyzers"
	"github.com/tirage90/predictor/internal/domain"
)

// Due returns numbers with cycleCount ≥ 3, sorted by dueScore descending.
func Due(draws []domain.Draw, k int, stream domain.Stream) []int {
	stats := analyzers.CycleAnalysis(draws, stream)

	candidates := make([]domain.CycleStats, 0, 90)
	for n := 1; n <= 90; n++ {
		cs := stats[n]
		if cs.CycleCount >= 3 {
			candidates = append(candidates, cs)
		}
	}

	for i := 1; i < len(candidates); i++ {
		for j := i; j > 0 && lessDue(candidates[j], candidates[j-1]); j-- {
			candidates[j-1], candidates[j] = candidates[j], candidates[j-1]
		}
	}

	ranked := make([]int, len(candidates))
	for i, c := range candidates {
		ranked[i] = c.Number
	}
	return takeDistinct(ranked, k, make(map[int]bool, k))
}

func lessDue(a, b domain.CycleStats) bool {
	if a.DueScore != b.DueScore {
		return a.DueScore > b.DueScore
	}
	return a.Number < b.Number
}
