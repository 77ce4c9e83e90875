package scorer

import (
	"testing"
	"time"

	"github.com/tirage90/predictor/internal/domain"
)

func draw(winning ...int) domain.Draw {
	var w [5]int
	copy(w[:], winning)
	return domain.Draw{Date: time.Now(), Winning: w}
}

func TestScore_NonNegativeAndFinite(t *testing.T) {
	draws := make([]domain.Draw, 0, 100)
	for i := 0; i < 100; i++ {
		draws = append(draws, draw(7, 15+(i%5), 23, 42, 71))
	}

	result := Score(draws, domain.DefaultWeights(), domain.StreamWinning, nil)
	for n := 1; n <= 90; n++ {
		s := result.Scores[n]
		if s < 0 {
			t.Errorf("score[%d] = %v, want >= 0", n, s)
		}
		if s != s { // NaN check
			t.Errorf("score[%d] is NaN", n)
		}
	}
}

func TestScore_Deterministic(t *testing.T) {
	draws := make([]domain.Draw, 0, 50)
	for i := 0; i < 50; i++ {
		draws = append(draws, draw(7, 15, 23, 42, 71))
	}
	weights := domain.DefaultWeights()

	r1 := Score(draws, weights, domain.StreamWinning, nil)
	r2 := Score(draws, weights, domain.StreamWinning, nil)

	for n := 1; n <= 90; n++ {
		if r1.Scores[n] != r2.Scores[n] {
			t.Errorf("score[%d] differs between runs: %v vs %v", n, r1.Scores[n], r2.Scores[n])
		}
	}
}

func TestScore_DominantNumberRanksTop(t *testing.T) {
	draws := make([]domain.Draw, 0, 200)
	for i := 0; i < 200; i++ {
		draws = append(draws, draw(7, 15, 23, 42, 71))
	}

	result := Score(draws, domain.DefaultWeights(), domain.StreamWinning, nil)
	for n := 1; n <= 90; n++ {
		if n == 7 {
			continue
		}
		if result.Scores[n] > result.Scores[7] {
			t.Errorf("number %d scored higher (%v) than the always-drawn number 7 (%v)", n, result.Scores[n], result.Scores[7])
		}
	}
}

func TestScore_ZeroDrawsIsAllZero(t *testing.T) {
	result := Score(nil, domain.DefaultWeights(), domain.StreamWinning, nil)
	for n := 1; n <= 90; n++ {
		if result.Scores[n] != 0 {
			t.Errorf("score[%d] = %v on zero draws, want 0", n, result.Scores[n])
		}
	}
}

func TestNeighborRedistribution_StaysInRange(t *testing.T) {
	scores := map[int]float64{1: 10, 90: 10}
	neighborRedistribution(scores)
	if _, ok := scores[0]; ok {
		t.Error("neighbor redistribution created a score for number 0")
	}
	if _, ok := scores[91]; ok {
		t.Error("neighbor redistribution created a score for number 91")
	}
}
