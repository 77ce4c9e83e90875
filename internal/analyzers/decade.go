package analyzers

import (
	"fmt"
	"strings"

	"github.com/tirage90/predictor/internal/domain"
)

// decadeBucketBounds are the nine 1-9/10-19/.../80-90 buckets used by the
// decade-distribution analyzer — distinct from domain.Decade's ⌊(n-1)/10⌋
// bucketing used by the Selector's balance rule.
var decadeBucketBounds = [9][2]int{
	{1, 9}, {10, 19}, {20, 29}, {30, 39}, {40, 49},
	{50, 59}, {60, 69}, {70, 79}, {80, 90},
}

func decadeBucketIndex(n int) int {
	for i, b := range decadeBucketBounds {
		if n >= b[0] && n <= b[1] {
			return i
		}
	}
	return len(decadeBucketBounds) - 1
}

// DecadeDistribution buckets every drawn number into the 1-9/.../80-90
// scheme , returning per-bucket counts plus
// one bucket-index pattern string per draw (e.g. "0-1-2-3-8").
func DecadeDistribution(draws []domain.Draw, stream domain.Stream) ([]domain.DecadeBucket, []string) {
	buckets := make([]domain.DecadeBucket, len(decadeBucketBounds))
	for i, b := range decadeBucketBounds {
		buckets[i] = domain.DecadeBucket{Index: i, Low: b[0], High: b[1]}
	}

	patterns := make([]string, 0, len(draws))
	for _, d := range draws {
		if stream == domain.StreamMachine && !d.HasMachine {
			continue
		}
		nums := sortedNumbers(d.Numbers(stream))
		parts := make([]string, len(nums))
		for i, n := range nums {
			idx := decadeBucketIndex(n)
			buckets[idx].Count++
			parts[i] = fmt.Sprintf("%d", idx)
		}
		patterns = append(patterns, strings.Join(parts, "-"))
	}

	return buckets, patterns
}
