package strategies

import "github.com/tirage90/predictor/internal/domain"

// Mixed interleaves Hot and Due: hot[0], due[0], hot[1], due[1], ... until
// k distinct numbers are collected.
func Mixed(draws []domain.Draw, k int, stream domain.Stream) []int {
	hot := Hot(draws, k, stream)
	due := Due(draws, k, stream)

	seen := make(map[int]bool, k)
	out := make([]int, 0, k)
	for i := 0; len(out) < k && (i < len(hot) || i < len(due)); i++ {
		if i < len(hot) && len(out) < k && !seen[hot[i]] {
			seen[hot[i]] = true
			out = append(out, hot[i])
		}
		if i < len(due) && len(out) < k && !seen[due[i]] {
			seen[due[i]] = true
			out = append(out, due[i])
		}
	}
	return out
}
