package strategies

import (
	"github.com/tirage90/predictor/internal/analyzers"
	"github.com/tirage90/predictor/internal/domain"
)

// Position picks the most frequent number for each sorted position 1..5,
// skipping numbers already chosen at an earlier position; if fewer than 5
// are collected (k may be smaller too) it pads with Hot.
func Position(draws []domain.Draw, k int, stream domain.Stream) []int {
	byPosition := analyzers.PositionAnalysis(draws, stream)
	seen := make(map[int]bool, k)
	out := make([]int, 0, k)

	for pos := 0; pos < 5 && len(out) < k; pos++ {
		for _, pc := range byPosition[pos] {
			if !seen[pc.Number] {
				seen[pc.Number] = true
				out = append(out, pc.Number)
				break
			}
		}
	}

	if len(out) < k {
		pad := Hot(draws, k, stream)
		out = append(out, takeDistinct(pad, k-len(out), seen)...)
	}
	return out
}
