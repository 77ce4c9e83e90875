package strategies

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

func TestHot_RanksByFrequency(t *testing.T) {
	draws := make([]domain.Draw, 0, 200)
	for i := 0; i < 200; i++ {
		draws = append(draws, draw(7, 15, 23, 42, 71))
	}

	top := Hot(draws, 5, domain.StreamWinning)
	if len(top) == 0 || top[0] != 7 {
		t.Fatalf("Hot()[0] = %v, want 7", top)
	}
}

func TestDue_RequiresMinimumCycleCount(t *testing.T) {
	draws := []domain.Draw{draw(1, 2, 3, 4, 5), draw(1, 2, 3, 4, 5)}
	due := Due(draws, 5, domain.StreamWinning)
	for _, n := range due {
		if n == 0 {
			t.Error("Due() should never return 0")
		}
	}
	// Two draws give each of 1..5 a single completed cycle, below the minimum of 3.
	if len(due) != 0 {
		t.Errorf("Due() = %v, want empty when no number has 3 completed cycles", due)
	}
}

func TestBalanced_RespectsDecadeOrder(t *testing.T) {
	draws := []domain.Draw{draw(21, 31, 41, 51, 11)}
	out := Balanced(draws, 5, domain.StreamWinning)
	if len(out) == 0 {
		t.Fatal("Balanced() returned nothing")
	}
	seen := make(map[int]bool)
	for _, n := range out {
		if seen[n] {
			t.Errorf("Balanced() returned duplicate %d", n)
		}
		seen[n] = true
	}
	want := []int{21, 31, 41, 51, 11} // decades 2, 3, 4, 5, 1 in visiting order
	if len(out) != len(want) {
		t.Fatalf("Balanced() = %v, want %v", out, want)
	}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("Balanced()[%d] = %d, want %d", i, out[i], want[i])
		}
	}
}

func TestMixed_InterleavesHotAndDue(t *testing.T) {
	draws := make([]domain.Draw, 0, 50)
	for i := 0; i < 50; i++ {
		draws = append(draws, draw(7, 15, 23, 42, 71))
	}
	out := Mixed(draws, 10, domain.StreamWinning)
	seen := make(map[int]bool)
	for _, n := range out {
		if seen[n] {
			t.Errorf("Mixed() returned duplicate %d", n)
		}
		seen[n] = true
	}
}

func TestAllStrategies_EmptyOnZeroDraws(t *testing.T) {
	strats := []func([]domain.Draw, int, domain.Stream) []int{
		Hot, Due, Position, Mixed, Correlation, Balanced, Statistical, Finales,
	}
	for _, s := range strats {
		if out := s(nil, 5, domain.StreamWinning); len(out) != 0 {
			t.Errorf("strategy on zero draws = %v, want empty", out)
		}
	}
}

func TestAllStrategies_RespectK(t *testing.T) {
	draws := make([]domain.Draw, 0, 30)
	for i := 1; i <= 30; i++ {
		draws = append(draws, draw(i%90+1, (i+10)%90+1, (i+20)%90+1, (i+30)%90+1, (i+40)%90+1))
	}

	strats := []func([]domain.Draw, int, domain.Stream) []int{
		Hot, Due, Position, Mixed, Correlation, Balanced, Statistical, Finales,
	}
	for _, s := range strats {
		out := s(draws, 5, domain.StreamWinning)
		if len(out) > 5 {
			t.Errorf("strategy returned %d numbers, want <= 5", len(out))
		}
		for _, n := range out {
			if n < 1 || n > 90 {
				t.Errorf("strategy returned out-of-range number %d", n)
			}
		}
	}
}
