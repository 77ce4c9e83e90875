package booster

import (
	"testing"

	"github.com/tirage90/predictor/internal/domain"
)

func TestBoost_BoostsCorrelatedNumberExactlyOnce(t *testing.T) {
	// Both machine numbers correlate with winning number 17; it must only
	// be boosted once despite being recommended by two machine numbers.
	matrix := Matrix{
		10: {17: 9},
		20: {17: 7},
	}
	winningScores := map[int]float64{17: 1.0, 5: 1.0}

	result := Boost(matrix, []int{10, 20, 30, 40, 50}, winningScores, 1.30)

	if got, want := result.BoostedScores[17], 1.30; got != want {
		t.Errorf("boosted score for 17 = %v, want %v", got, want)
	}
	if result.BoostedScores[5] != 1.0 {
		t.Errorf("non-correlated score for 5 changed: %v", result.BoostedScores[5])
	}
	if result.BoostedCount != 1 {
		t.Errorf("BoostedCount = %d, want 1", result.BoostedCount)
	}
}

func TestBoost_NonBoostedScoresUnchanged(t *testing.T) {
	matrix := Matrix{1: {2: 5}}
	winningScores := map[int]float64{2: 3.0, 3: 3.0}

	result := Boost(matrix, []int{1}, winningScores, 1.30)

	if result.BoostedScores[3] != 3.0 {
		t.Errorf("score for uncorrelated number 3 changed: %v", result.BoostedScores[3])
	}
	if result.BoostedScores[2] <= winningScores[2] {
		t.Errorf("boosted score for 2 (%v) not strictly greater than pre-boost (%v)", result.BoostedScores[2], winningScores[2])
	}
}

func TestBuildMatrix_SkipsDrawsWithoutMachine(t *testing.T) {
	draws := []domain.Draw{
		{Winning: [5]int{1, 2, 3, 4, 5}, HasMachine: false},
		{Winning: [5]int{1, 2, 3, 4, 5}, Machine: [5]int{10, 20, 30, 40, 50}, HasMachine: true},
	}
	m := BuildMatrix(draws)
	if m[10][1] != 1 {
		t.Errorf("m[10][1] = %d, want 1", m[10][1])
	}
}
