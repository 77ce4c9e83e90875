package strategies

import "github.com/tirage90/predictor/internal/domain"

// balancedDecadeOrder is the fixed decade visiting order for the balanced
// strategy: the middle decades first, then the edges.
var balancedDecadeOrder = [9]int{2, 3, 4, 5, 1, 6, 7, 0, 8}

// Balanced picks the most frequent number from each decade, visiting
// decades in balancedDecadeOrder, until k numbers are collected.
func Balanced(draws []domain.Draw, k int, stream domain.Stream) []int {
	if len(draws) == 0 {
		return nil
	}
	freq := rawFrequency(draws, stream)

	byDecade := make(map[int][]int, 9)
	for n := 1; n <= 90; n++ {
		byDecade[domain.Decade(n)] = append(byDecade[domain.Decade(n)], n)
	}

	out := make([]int, 0, k)
	for _, dec := range balancedDecadeOrder {
		if len(out) >= k {
			break
		}
		best := bestInDecade(byDecade[dec], freq)
		if best != 0 {
			out = append(out, best)
		}
	}
	return out
}

func bestInDecade(nums []int, freq map[int]int) int {
	best, bestCount := 0, -1
	for _, n := range nums {
		if freq[n] > bestCount || (freq[n] == bestCount && n < best) {
			best, bestCount = n, freq[n]
		}
	}
	return best
}
