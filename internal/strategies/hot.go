package strategies

import "github.com/tirage90/predictor/internal/domain"

// Hot returns the top-k numbers by raw frequency.
func Hot(draws []domain.Draw, k int, stream domain.Stream) []int {
	if len(draws) == 0 {
		return nil
	}
	freq := rawFrequency(draws, stream)
	ranked := rankedByFreqDesc(freq)
	return takeDistinct(ranked, k, make(map[int]bool, k))
}
