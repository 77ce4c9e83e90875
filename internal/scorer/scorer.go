// Package scorer implements the Ensemble Scorer: it linearly combines the
// eight weighted strategies into a full 1..90 score map, then applies
// tactical neighbor redistribution and a synergy amplifier. It depends on
// strategies and analyzers but never on the Brain, so the Brain can consume
// this package without a cyclic import.
package scorer

import (
	"github.com/tirage90/predictor/internal/analyzers"
	"github.com/tirage90/predictor/internal/domain"
	"github.com/tirage90/predictor/internal/strategies"
)

// listCap is the maximum ranked-list length a strategy contributes to the
// ensemble.
const listCap = 15

// Result is the output of Score: per-number combined scores and the raw
// vote counts the synergy amplifier consumes.
type Result struct {
	Scores map[int]float64
	Votes map[int]int
}

// Score runs the full ensemble procedure against a draw sequence, a set of
// current Brain weights, and an optional external (ml/lstm) candidate
// ranking.
func Score(draws []domain.Draw, weights map[domain.StrategyKey]float64, stream domain.Stream, externalScores []int) Result {
	scores := make(map[int]float64, 90)
	votes := make(map[int]int, 90)
	for n := 1; n <= 90; n++ {
		scores[n] = 0
		votes[n] = 0
	}

	dueStats := analyzers.CycleAnalysis(draws, stream)

	contribute(scores, votes, strategies.Hot(draws, listCap, stream), weights[domain.StrategyHot], defaultContribution)
	contribute(scores, votes, strategies.Due(draws, listCap, stream), weights[domain.StrategyDue], dueContribution(dueStats))
	contribute(scores, votes, strategies.Position(draws, listCap, stream), weights[domain.StrategyPosition], positionContribution)
	contribute(scores, votes, strategies.Correlation(draws, listCap, stream), weights[domain.StrategyCorrelation], defaultContribution)
	contribute(scores, votes, strategies.Balanced(draws, listCap, stream), weights[domain.StrategyBalanced], balancedContribution)
	contribute(scores, votes, strategies.Statistical(draws, listCap, stream), weights[domain.StrategyStatistical], defaultContribution)
	contribute(scores, votes, strategies.Finales(draws, listCap, stream), weights[domain.StrategyFinales], defaultContribution)
	contribute(scores, votes, capList(externalScores, listCap), weights[domain.StrategyLSTM], defaultContribution)

	neighborRedistribution(scores)
	synergyAmplify(scores, votes)

	return Result{Scores: scores, Votes: votes}
}

// contributionFn computes a strategy's score contribution for the number at
// rank index, given the strategy's current Brain weight.
type contributionFn func(number, index int, weight float64) float64

func contribute(scores map[int]float64, votes map[int]int, list []int, weight float64, fn contributionFn) {
	for i, n := range list {
		if i >= listCap {
			break
		}
		scores[n] += fn(n, i, weight)
		if i < 5 {
			votes[n]++
		}
	}
}

// defaultContribution is w_s·(15-i)/15, the base shape every strategy uses
// unless it needs a special contribution shape of its own.
func defaultContribution(number, index int, weight float64) float64 {
	return weight * float64(listCap-index) / float64(listCap)
}

// dueContribution multiplies the base contribution by min(dueScore,150)/150.
func dueContribution(dueStats map[int]domain.CycleStats) contributionFn {
	return func(number, index int, weight float64) float64 {
		base := defaultContribution(number, index, weight)
		capped := dueStats[number].DueScore
		if capped > 150 {
			capped = 150
		}
		return base * capped / 150
	}
}

// positionContribution is a flat w_s·2.0 regardless of rank.
func positionContribution(number, index int, weight float64) float64 {
	return weight * 2.0
}

// balancedContribution is w_s·3.0 for ranks 0..4, then
// w_s·(1.0 + 2.0·(15-i)/10) after.
func balancedContribution(number, index int, weight float64) float64 {
	if index < 5 {
		return weight * 3.0
	}
	return weight * (1.0 + 2.0*float64(listCap-index)/10.0)
}

func capList(list []int, max int) []int {
	if len(list) > max {
		return list[:max]
	}
	return list
}

// neighborRedistribution adds 0.15·score[n] to n-1 and n+1 for every number
// in the current top-15. Single-pass: contributions are
// computed from a snapshot and applied once, never cascaded.
func neighborRedistribution(scores map[int]float64) {
	top := topByScore(scores, 15)
	additions := make(map[int]float64, 30)
	for _, n := range top {
		if scores[n] <= 0 {
			continue
		}
		share := 0.15 * scores[n]
		if n-1 >= 1 {
			additions[n-1] += share
		}
		if n+1 <= 90 {
			additions[n+1] += share
		}
	}
	for n, add := range additions {
		scores[n] += add
	}
}

// synergyAmplify applies the consensus multiplier and lone-wolf penalty.
func synergyAmplify(scores map[int]float64, votes map[int]int) {
	for n := 1; n <= 90; n++ {
		switch {
		case votes[n] >= 5:
			scores[n] *= 1.20
		case votes[n] >= 3:
			scores[n] *= 1.10
		}
		if votes[n] == 0 && scores[n] > 2.0 {
			scores[n] *= 0.85
		}
	}
}

func topByScore(scores map[int]float64, n int) []int {
	nums := make([]int, 0, 90)
	for num := 1; num <= 90; num++ {
		nums = append(nums, num)
	}
	for i := 1; i < len(nums); i++ {
		for j := i; j > 0 && scores[nums[j]] > scores[nums[j-1]]; j-- {
			nums[j-1], nums[j] = nums[j], nums[j-1]
		}
	}
	if len(nums) > n {
		nums = nums[:n]
	}
	return nums
}
