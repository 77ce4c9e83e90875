package analyzers

import (
	"math"

	"github.com/tirage90/predictor/internal/domain"
)

// FinaleAnalysis groups numbers by their last decimal digit. Count is the number of individual number-occurrences sharing
// the finale; Appearances counts distinct draws containing it at least once.
func FinaleAnalysis(draws []domain.Draw, stream domain.Stream) map[int]domain.FinaleStats {
	count := make(map[int]int, 10)
	appearances := make(map[int]int, 10)
	lastSeenDrawIdx := make(map[int]int, 10)
	var drawIdx int

	totalOccurrences := 0
	for _, d := range draws {
		if stream == domain.StreamMachine && !d.HasMachine {
			continue
		}
		seenThisDraw := make(map[int]bool, 10)
		for _, n := range d.Numbers(stream) {
			f := n % 10
			count[f]++
			totalOccurrences++
			seenThisDraw[f] = true
		}
		for f := range seenThisDraw {
			appearances[f]++
			lastSeenDrawIdx[f] = drawIdx
		}
		drawIdx++
	}

	out := make(map[int]domain.FinaleStats, 10)
	for f := 0; f <= 9; f++ {
		appCount := appearances[f]
		fs := domain.FinaleStats{
			Finale:      f,
			Count:       count[f],
			Appearances: appCount,
		}
		if totalOccurrences > 0 {
			fs.Percentage = 100 * float64(count[f]) / float64(totalOccurrences)
		}
		if appCount == 0 {
			fs.CurrentGap = drawIdx
			fs.DueScore = 200
			out[f] = fs
			continue
		}

		fs.CurrentGap = drawIdx - 1 - lastSeenDrawIdx[f]

		// Average cycle between appearances, analogous to cycle analysis.
		if appCount >= 2 {
			avgCycle := float64(drawIdx) / float64(appCount)
			if avgCycle > 0 {
				fs.DueScore = math.Min(200, 100*float64(fs.CurrentGap)/avgCycle)
			}
		} else {
			fs.DueScore = 200
		}
		out[f] = fs
	}
	return out
}
