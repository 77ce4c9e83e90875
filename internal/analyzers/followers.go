package analyzers

import "github.com/tirage90/predictor/internal/domain"

// FollowerAnalysis walks consecutive draw pairs (draw_i anchor -> draw_{i+1}
// follower) and accumulates transition counts.
// Pairs are kept when count ≥ 3 and probability > 0.10, top-10 per anchor.
func FollowerAnalysis(draws []domain.Draw, stream domain.Stream) map[int][]domain.FollowerStat {
	anchorFreq := make(map[int]int, 90)
	transition := make(map[[2]int]int)

	var prev []int
	for _, d := range draws {
		if stream == domain.StreamMachine && !d.HasMachine {
			continue
		}
		cur := sortedNumbers(d.Numbers(stream))
		if prev != nil {
			for _, a := range prev {
				anchorFreq[a]++
				for _, f := range cur {
					transition[[2]int{a, f}]++
				}
			}
		}
		prev = cur
	}

	byAnchor := make(map[int][]domain.FollowerStat, 90)
	for key, count := range transition {
		anchor, follower := key[0], key[1]
		freq := anchorFreq[anchor]
		if count < 3 || freq == 0 {
			continue
		}
		prob := float64(count) / float64(freq)
		if prob <= 0.10 {
			continue
		}
		byAnchor[anchor] = append(byAnchor[anchor], domain.FollowerStat{
			Anchor: anchor, Follower: follower, Count: count, Probability: prob,
		})
	}

	for anchor, stats := range byAnchor {
		sortFollowerStats(stats)
		if len(stats) > 10 {
			stats = stats[:10]
		}
		byAnchor[anchor] = stats
	}
	return byAnchor
}

func sortFollowerStats(fs []domain.FollowerStat) {
	for i := 1; i < len(fs); i++ {
		for j := i; j > 0 && lessFollowerStat(fs[j], fs[j-1]); j-- {
			fs[j-1], fs[j] = fs[j], fs[j-1]
		}
	}
}

func lessFollowerStat(a, b domain.FollowerStat) bool {
	if a.Probability != b.Probability {
		return a.Probability > b.Probability
	}
	return a.Follower < b.Follower
}
