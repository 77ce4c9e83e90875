// Package selector picks five distinct numbers from a score map under a
// decade-balance constraint.
package selector

import "github.com/tirage90/predictor/internal/domain"

const pickCount = 5

// Select runs the greedy decade-balanced pass over a score map and returns
// the chosen numbers sorted ascending, along with their confidence.
// Zero-score inputs (e.g. no draws loaded) produce an empty selection with
// zero confidence.
func Select(scores map[int]float64) domain.Selection {
	ranked := rankedDescending(scores)
	if len(ranked) == 0 || scores[ranked[0]] <= 0 {
		return domain.Selection{Numbers: nil, Scores: scores}
	}

	decadeCounts := make(map[int]int, 9)
	chosen := make([]int, 0, pickCount)
	chosenSet := make(map[int]bool, pickCount)

	for _, n := range ranked {
		if len(chosen) >= pickCount {
			break
		}
		if scores[n] <= 0 {
			continue
		}
		dec := domain.Decade(n)
		if decadeCounts[dec] < 2 {
			chosen = append(chosen, n)
			chosenSet[n] = true
			decadeCounts[dec]++
		}
	}

	if len(chosen) < pickCount {
		for _, n := range ranked {
			if len(chosen) >= pickCount {
				break
			}
			if chosenSet[n] || scores[n] <= 0 {
				continue
			}
			chosen = append(chosen, n)
			chosenSet[n] = true
		}
	}

	sel := domain.NewSelection(sortAscending(chosen), scores)
	sel.Confidence = confidence(sel.Numbers, scores, 95, 40)
	return sel
}

// SelectHybrid is Select with the hybrid path's wider confidence band
// (cap 97, base 42).
func SelectHybrid(scores map[int]float64) domain.Selection {
	sel := Select(scores)
	sel.Confidence = confidence(sel.Numbers, scores, 97, 42)
	return sel
}

func confidence(numbers []int, scores map[int]float64, cap, base float64) float64 {
	if len(numbers) == 0 {
		return 0
	}
	var sum float64
	for _, n := range numbers {
		sum += scores[n]
	}
	avg := sum / float64(len(numbers))
	c := avg*100 + base
	if c > cap {
		c = cap
	}
	return c
}

func rankedDescending(scores map[int]float64) []int {
	nums := make([]int, 0, 90)
	for n := 1; n <= 90; n++ {
		if _, ok := scores[n]; ok {
			nums = append(nums, n)
		}
	}
	for i := 1; i < len(nums); i++ {
		for j := i; j > 0 && less(nums[j], nums[j-1], scores); j-- {
			nums[j-1], nums[j] = nums[j], nums[j-1]
		}
	}
	return nums
}

func less(a, b int, scores map[int]float64) bool {
	if scores[a] != scores[b] {
		return scores[a] > scores[b]
	}
	return a < b
}

func sortAscending(nums []int) []int {
	out := append([]int(nil), nums...)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j] < out[j-1]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}
