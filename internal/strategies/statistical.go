package strategies

import (
	"github.com/tirage90/predictor/internal/analyzers"
	"github.com/tirage90/predictor/internal/domain"
)

type statScore struct {
	number int
	score float64
}

// Statistical scores every number by its lift-based association with the
// last draw's numbers plus its follower probability from them, then returns
// the top-k.
func Statistical(draws []domain.Draw, k int, stream domain.Stream) []int {
	last, ok := lastDraw(draws, stream)
	if !ok {
		return nil
	}
	inLast := make(map[int]bool, 5)
	for _, n := range last {
		inLast[n] = true
	}

	lifts, _ := analyzers.CorrelationAnalysis(draws, stream)
	byAnchor := analyzers.FollowerAnalysis(draws, stream)

	scores := make(map[int]float64, 90)
	for _, l := range lifts {
		switch {
		case inLast[l.A] && !inLast[l.B]:
			scores[l.B] += (l.Lift - 1) * 2
		case inLast[l.B] && !inLast[l.A]:
			scores[l.A] += (l.Lift - 1) * 2
		}
	}
	for anchor := range inLast {
		for _, fs := range byAnchor[anchor] {
			if !inLast[fs.Follower] {
				scores[fs.Follower] += fs.Probability * 5
			}
		}
	}

	ranked := make([]statScore, 0, len(scores))
	for n, s := range scores {
		ranked = append(ranked, statScore{n, s})
	}
	for i := 1; i < len(ranked); i++ {
		for j := i; j > 0 && lessStatScore(ranked[j], ranked[j-1]); j-- {
			ranked[j-1], ranked[j] = ranked[j], ranked[j-1]
		}
	}

	nums := make([]int, len(ranked))
	for i, r := range ranked {
		nums[i] = r.number
	}
	return takeDistinct(nums, k, make(map[int]bool, k))
}

func lessStatScore(a, b statScore) bool {
	if a.score != b.score {
		return a.score > b.score
	}
	return a.number < b.number
}
