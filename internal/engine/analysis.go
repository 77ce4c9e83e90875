package engine

import (
	"sort"

	"github.com/tirage90/predictor/internal/analyzers"
	"github.com/tirage90/predictor/internal/domain"
)

const analysisTopN = 10

func buildAnalysis(draws []domain.Draw, stream domain.Stream) AnalysisBlock {
	cycles := analyzers.CycleAnalysis(draws, stream)
	freq := make(map[int]int, 90)
	for _, d := range draws {
		if stream == domain.StreamMachine && !d.HasMachine {
			continue
		}
		for _, n := range d.Numbers(stream) {
			freq[n]++
		}
	}

	hottest := topFrequency(freq, analysisTopN)
	mostOverdue := topOverdue(cycles, analysisTopN)

	buckets, _ := analyzers.DecadeDistribution(draws, stream)
	decadeCounts := make([]int, len(buckets))
	for i, b := range buckets {
		decadeCounts[i] = b.Count
	}

	finaleStats := analyzers.FinaleAnalysis(draws, stream)
	finaleCounts := make(map[int]int, 10)
	for f, fs := range finaleStats {
		finaleCounts[f] = fs.Count
	}

	pairs, _ := analyzers.CorrelationAnalysis(draws, stream)
	topPairs := make([]PairSummary, 0, analysisTopN)
	for i, p := range pairs {
		if i >= analysisTopN {
			break
		}
		topPairs = append(topPairs, PairSummary{A: p.A, B: p.B, Lift: p.Lift})
	}

	return AnalysisBlock{
		Hottest:      hottest,
		MostOverdue:  mostOverdue,
		DecadeCounts: decadeCounts,
		FinaleCounts: finaleCounts,
		TopPairs:     topPairs,
	}
}

func topFrequency(freq map[int]int, n int) []NumberScore {
	out := make([]NumberScore, 0, 90)
	for num := 1; num <= 90; num++ {
		out = append(out, NumberScore{Number: num, Score: float64(freq[num])})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Number < out[j].Number
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func topOverdue(cycles map[int]domain.CycleStats, n int) []NumberScore {
	out := make([]NumberScore, 0, 90)
	for num := 1; num <= 90; num++ {
		cs := cycles[num]
		if !analyzers.ReliableDueCandidate(cs) {
			continue
		}
		out = append(out, NumberScore{Number: num, Score: cs.DueScore})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Number < out[j].Number
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
