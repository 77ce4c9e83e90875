// Package booster implements the Correlation Booster: it builds a
// machine→winning co-occurrence matrix and multiplicatively boosts winning
// scores correlated with a predicted machine set, producing the hybrid
// selection.
package booster

import (
	"sort"

	"github.com/tirage90/predictor/internal/domain"
	"github.com/tirage90/predictor/internal/selector"
)

const (
	defaultBoostFactor = 1.30
	topCorrelatedCount = 10
)

// Matrix is the machine->winning co-occurrence table, M[m][w] = count of
// draws where machine number m and winning number w co-occurred.
type Matrix map[int]map[int]int

// BuildMatrix scans a draw sequence and accumulates machine->winning
// co-occurrence counts. Draws without a machine set are skipped.
func BuildMatrix(draws []domain.Draw) Matrix {
	m := make(Matrix, 90)
	for _, d := range draws {
		if !d.HasMachine {
			continue
		}
		for _, mn := range d.Machine {
			if m[mn] == nil {
				m[mn] = make(map[int]int, 90)
			}
			for _, wn := range d.Winning {
				m[mn][wn]++
			}
		}
	}
	return m
}

// Result is the boosted score map plus bookkeeping the hybrid response
// surfaces.
type Result struct {
	BoostedScores       map[int]float64
	BoostedCount        int
	CorrelationStrength float64
	Selection           domain.Selection
}

// Boost multiplies winning scores for numbers historically correlated with
// the predicted machine set, then re-runs the selector on the boosted
// scores to produce the hybrid selection.
func Boost(matrix Matrix, machineNumbers []int, winningScores map[int]float64, boostFactor float64) Result {
	if boostFactor <= 0 {
		boostFactor = defaultBoostFactor
	}

	boosted := make(map[int]float64, len(winningScores))
	for n, s := range winningScores {
		boosted[n] = s
	}

	boostedOnce := make(map[int]bool, 10)
	var strengthSamples []float64

	for _, mn := range machineNumbers {
		correlated := topCorrelated(matrix[mn], topCorrelatedCount)
		if len(correlated) > 0 {
			strengthSamples = append(strengthSamples, correlationStrengthSample(correlated))
		}
		for _, c := range correlated {
			if _, present := winningScores[c.number]; !present {
				continue
			}
			if boostedOnce[c.number] {
				continue
			}
			boosted[c.number] *= boostFactor
			boostedOnce[c.number] = true
		}
	}

	return Result{
		BoostedScores:       boosted,
		BoostedCount:        len(boostedOnce),
		CorrelationStrength: average(strengthSamples),
		Selection:            selector.SelectHybrid(boosted),
	}
}

type correlatedNumber struct {
	number int
	count int
}

func topCorrelated(counts map[int]int, n int) []correlatedNumber {
	if counts == nil {
		return nil
	}
	all := make([]correlatedNumber, 0, len(counts))
	for num, c := range counts {
		all = append(all, correlatedNumber{num, c})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].count != all[j].count {
			return all[i].count > all[j].count
		}
		return all[i].number < all[j].number
	})
	if len(all) > n {
		all = all[:n]
	}
	return all
}

// correlationStrengthSample normalizes one machine number's top-correlated
// counts into a [0,1] figure: average count over the top bucket, divided by
// its own maximum (the top entry's count) — a summary of how concentrated
// the correlation is.
func correlationStrengthSample(correlated []correlatedNumber) float64 {
	if len(correlated) == 0 {
		return 0
	}
	max := float64(correlated[0].count)
	if max == 0 {
		return 0
	}
	var sum float64
	for _, c := range correlated {
		sum += float64(c.count)
	}
	avg := sum / float64(len(correlated))
	strength := avg / max
	if strength > 1 {
		strength = 1
	}
	return strength
}

func average(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}
