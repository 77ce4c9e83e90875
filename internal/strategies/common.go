// Package strategies implements the deterministic scoring strategies that
// feed the ensemble scorer. Each strategy takes a chronological draw
// sequence, a cap k, and a stream tag, and returns up to k distinct numbers
// in 1..90. Ties are always broken by ascending number for determinism.
package strategies

import "github.com/tirage90/predictor/internal/domain"

// Key names a recognized strategy, matching domain.StrategyKey one-for-one
// except that "mixed" has no Brain weight of its own and the Brain's "lstm"
// weight has no strategy in this package.
type Key string

const (
	KeyHot         Key = "hot"
	KeyDue         Key = "due"
	KeyPosition    Key = "position"
	KeyMixed       Key = "mixed"
	KeyCorrelation Key = "correlation"
	KeyBalanced    Key = "balanced"
	KeyStatistical Key = "statistical"
	KeyFinales     Key = "finales"
)

// rawFrequency counts how often each number appears across the sequence.
func rawFrequency(draws []domain.Draw, stream domain.Stream) map[int]int {
	freq := make(map[int]int, 90)
	for _, d := range draws {
		if stream == domain.StreamMachine && !d.HasMachine {
			continue
		}
		for _, n := range d.Numbers(stream) {
			freq[n]++
		}
	}
	return freq
}

// rankedByFreqDesc returns numbers 1..90 ordered by descending frequency,
// ties broken ascending by number.
func rankedByFreqDesc(freq map[int]int) []int {
	nums := make([]int, 0, 90)
	for n := 1; n <= 90; n++ {
		nums = append(nums, n)
	}
	for i := 1; i < len(nums); i++ {
		for j := i; j > 0 && lessFreq(nums[j], nums[j-1], freq); j-- {
			nums[j-1], nums[j] = nums[j], nums[j-1]
		}
	}
	return nums
}

func lessFreq(a, b int, freq map[int]int) bool {
	if freq[a] != freq[b] {
		return freq[a] > freq[b]
	}
	return a < b
}

// takeDistinct walks a candidate list in order, collecting up to k distinct
// numbers not already present in seen.
func takeDistinct(candidates []int, k int, seen map[int]bool) []int {
	out := make([]int, 0, k)
	for _, n := range candidates {
		if len(out) >= k {
			break
		}
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

func lastDraw(draws []domain.Draw, stream domain.Stream) ([5]int, bool) {
	for i := len(draws) - 1; i >= 0; i-- {
		d := draws[i]
		if stream == domain.StreamMachine && !d.HasMachine {
			continue
		}
		return d.Numbers(stream), true
	}
	return [5]int{}, false
}
