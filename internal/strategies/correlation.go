package strategies

import (
	"github.com/tirage90/predictor/internal/analyzers"
	"github.com/tirage90/predictor/internal/domain"
)

// Correlation walks the pairs ranked by lift and adds both members of each
// pair until k numbers are collected.
func Correlation(draws []domain.Draw, k int, stream domain.Stream) []int {
	lifts, _ := analyzers.CorrelationAnalysis(draws, stream)

	seen := make(map[int]bool, k)
	out := make([]int, 0, k)
	for _, l := range lifts {
		if len(out) >= k {
			break
		}
		if !seen[l.A] {
			seen[l.A] = true
			out = append(out, l.A)
		}
		if len(out) >= k {
			break
		}
		if !seen[l.B] {
			seen[l.B] = true
			out = append(out, l.B)
		}
	}
	return out
}
