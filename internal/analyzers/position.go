package analyzers

import "github.com/tirage90/predictor/internal/domain"

// PositionCount is one number's frequency at a fixed sorted position.
type PositionCount struct {
	Number int
	Count int
}

// PositionAnalysis sorts each draw ascending and accumulates per-number
// counts at each of the five sorted positions, returning the top-10
// numbers for each position 1..5.
func PositionAnalysis(draws []domain.Draw, stream domain.Stream) [5][]PositionCount {
	var counts [5]map[int]int
	for i := range counts {
		counts[i] = make(map[int]int)
	}

	for _, d := range draws {
		if stream == domain.StreamMachine && !d.HasMachine {
			continue
		}
		sorted := sortedNumbers(d.Numbers(stream))
		for pos, n := range sorted {
			counts[pos][n]++
		}
	}

	var out [5][]PositionCount
	for pos := range counts {
		out[pos] = topN(counts[pos], 10)
	}
	return out
}

func sortedNumbers(nums [5]int) []int {
	sorted := append([]int(nil), nums[:]...)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j-1] > sorted[j]; j-- {
			sorted[j-1], sorted[j] = sorted[j], sorted[j-1]
		}
	}
	return sorted
}

// topN returns the n highest-count entries, ties broken by ascending number.
func topN(counts map[int]int, n int) []PositionCount {
	all := make([]PositionCount, 0, len(counts))
	for num, c := range counts {
		all = append(all, PositionCount{Number: num, Count: c})
	}
	for i := 1; i < len(all); i++ {
		for j := i; j > 0 && lessPositionCount(all[j], all[j-1]); j-- {
			all[j-1], all[j] = all[j], all[j-1]
		}
	}
	if len(all) > n {
		all = all[:n]
	}
	return all
}

func lessPositionCount(a, b PositionCount) bool {
	if a.Count != b.Count {
		return a.Count > b.Count
	}
	return a.Number < b.Number
}
