package analyzers

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/tirage90/predictor/internal/domain"
)

// CycleAnalysis walks a chronologically ordered draw sequence once and
// returns gap/due statistics for every number 1..90.
func CycleAnalysis(draws []domain.Draw, stream domain.Stream) map[int]domain.CycleStats {
	appearances := make(map[int][]int, 90) // number -> draw indices where it appeared

	for idx, d := range draws {
		if stream == domain.StreamMachine && !d.HasMachine {
			continue
		}
		for _, n := range d.Numbers(stream) {
			appearances[n] = append(appearances[n], idx)
		}
	}

	totalDraws := len(draws)
	out := make(map[int]domain.CycleStats, 90)

	for n := 1; n <= 90; n++ {
		idxs := appearances[n]
		out[n] = cycleStatsFor(n, idxs, totalDraws)
	}
	return out
}

func cycleStatsFor(number int, idxs []int, totalDraws int) domain.CycleStats {
	if len(idxs) == 0 {
		return domain.CycleStats{
			Number:     number,
			CurrentGap: totalDraws,
			DueScore:   200,
			CycleCount: 0,
			IsOverdue:  totalDraws > 0,
			OverdueBy:  float64(totalDraws),
		}
	}

	gaps := make([]float64, 0, len(idxs))
	for i := 1; i < len(idxs); i++ {
		gaps = append(gaps, float64(idxs[i]-idxs[i-1]))
	}

	currentGap := totalDraws - 1 - idxs[len(idxs)-1]

	cs := domain.CycleStats{
		Number:     number,
		CurrentGap: currentGap,
		CycleCount: len(gaps),
	}

	if len(gaps) == 0 {
		// A single appearance: no completed cycle yet, but it has appeared.
		cs.DueScore = 200
		cs.IsOverdue = true
		cs.OverdueBy = float64(currentGap)
		return cs
	}

	cs.AvgCycle = stat.Mean(gaps, nil)
	cs.MedianCycle = median(gaps)
	cs.MinCycle = int(minFloat(gaps))
	cs.MaxCycle = int(maxFloat(gaps))
	cs.StdDev = stat.StdDev(gaps, nil)

	if cs.AvgCycle > 0 {
		cs.DueScore = math.Min(200, 100*float64(currentGap)/cs.AvgCycle)
	} else {
		cs.DueScore = 200
	}

	if float64(currentGap) > cs.AvgCycle {
		cs.IsOverdue = true
		cs.OverdueBy = float64(currentGap) - cs.AvgCycle
	}

	return cs
}

// ReliableDueCandidate reports whether a number has enough completed cycles
// to be trusted as "due".
func ReliableDueCandidate(cs domain.CycleStats) bool {
	return cs.CycleCount >= 5
}

func median(xs []float64) float64 {
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

func minFloat(xs []float64) float64 {
	m := xs[0]
	for _, x := range xs[1:] {
		if x < m {
			m = x
		}
	}
	return m
}

func maxFloat(xs []float64) float64 {
	m := xs[0]
	for _, x := range xs[1:] {
		if x > m {
			m = x
		}
	}
	return m
}
