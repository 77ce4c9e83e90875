package analyzers

import (
	"testing"
	"time"

	"github.com/tirage90/predictor/internal/domain"
)

func draw(date string, winning ...int) domain.Draw {
	var w [5]int
	copy(w[:], winning)
	t, _ := time.Parse("2006-01-02", date)
	return domain.Draw{Date: t, DayOfWeek: int(t.Weekday()), Winning: w}
}

func generateDraws(n int, gen func(i int) domain.Draw) []domain.Draw {
	draws := make([]domain.Draw, n)
	for i := 0; i < n; i++ {
		draws[i] = gen(i)
	}
	return draws
}

func TestCycleAnalysis_NeverAppeared(t *testing.T) {
	draws := generateDraws(10, func(i int) domain.Draw {
		return draw("2024-01-01", 1, 2, 3, 4, 5)
	})

	stats := CycleAnalysis(draws, domain.StreamWinning)
	cs := stats[90]
	if cs.CycleCount != 0 {
		t.Errorf("CycleCount = %d, want 0", cs.CycleCount)
	}
	if cs.DueScore != 200 {
		t.Errorf("DueScore = %v, want 200", cs.DueScore)
	}
}

func TestCycleAnalysis_RegularAppearance(t *testing.T) {
	// 7 appears every draw: every gap is 1 draw, currentGap 0, dueScore 0.
	draws := generateDraws(20, func(i int) domain.Draw {
		return draw("2024-01-01", 7, 15, 23, 42, 71)
	})

	stats := CycleAnalysis(draws, domain.StreamWinning)
	cs := stats[7]
	if !ReliableDueCandidate(cs) {
		t.Errorf("expected number 7 with %d cycles to be a reliable due candidate", cs.CycleCount)
	}
	if cs.AvgCycle != 1 {
		t.Errorf("AvgCycle = %v, want 1 for a number appearing every draw", cs.AvgCycle)
	}
}

func TestPositionAnalysis_TopPerPosition(t *testing.T) {
	draws := generateDraws(5, func(i int) domain.Draw {
		return draw("2024-01-01", 1, 20, 30, 40, 90)
	})

	byPosition := PositionAnalysis(draws, domain.StreamWinning)
	if byPosition[0][0].Number != 1 {
		t.Errorf("position 1 top number = %d, want 1", byPosition[0][0].Number)
	}
	if byPosition[4][0].Number != 90 {
		t.Errorf("position 5 top number = %d, want 90", byPosition[4][0].Number)
	}
}

func TestCorrelationAnalysis_LiftThreshold(t *testing.T) {
	// 10..14 always appear together, in half of the draws: each of their
	// pairs has count 5 and lift 5*10/(5*5) = 2.0.
	draws := generateDraws(10, func(i int) domain.Draw {
		if i%2 == 0 {
			return draw("2024-01-01", 10, 11, 12, 13, 14)
		}
		return draw("2024-01-02", 60, 61, 62, 63, 64)
	})

	lifts, _ := CorrelationAnalysis(draws, domain.StreamWinning)
	if len(lifts) == 0 {
		t.Fatal("expected correlated pairs among numbers that always appear together")
	}
	for _, l := range lifts {
		if l.Lift <= 1.2 {
			t.Errorf("pair (%d,%d) lift = %v, want > 1.2", l.A, l.B, l.Lift)
		}
		if l.Count < 3 {
			t.Errorf("pair (%d,%d) count = %d, want >= 3", l.A, l.B, l.Count)
		}
	}
}

func TestDecadeDistribution_BucketBoundaries(t *testing.T) {
	draws := []domain.Draw{draw("2024-01-01", 9, 10, 80, 90, 45)}
	buckets, patterns := DecadeDistribution(draws, domain.StreamWinning)

	if buckets[0].Count != 1 { // 9 falls in bucket 0 (1..9)
		t.Errorf("bucket 0 count = %d, want 1", buckets[0].Count)
	}
	if buckets[1].Count != 1 { // 10 falls in bucket 1 (10..19)
		t.Errorf("bucket 1 count = %d, want 1", buckets[1].Count)
	}
	if buckets[8].Count != 2 { // 80 and 90 both fall in the 11-wide last bucket
		t.Errorf("bucket 8 count = %d, want 2", buckets[8].Count)
	}
	if len(patterns) != 1 {
		t.Fatalf("len(patterns) = %d, want 1", len(patterns))
	}
}

func TestFinaleAnalysis_NeverSeenFinale(t *testing.T) {
	draws := generateDraws(5, func(i int) domain.Draw {
		return draw("2024-01-01", 1, 11, 21, 31, 41) // all finale 1
	})

	stats := FinaleAnalysis(draws, domain.StreamWinning)
	if stats[1].Count != 25 {
		t.Errorf("finale 1 count = %d, want 25", stats[1].Count)
	}
	if stats[9].Appearances != 0 {
		t.Errorf("finale 9 appearances = %d, want 0", stats[9].Appearances)
	}
	if stats[9].DueScore != 200 {
		t.Errorf("finale 9 dueScore = %v, want 200", stats[9].DueScore)
	}
}

func TestFollowerAnalysis_KeepsOnlyFrequentTransitions(t *testing.T) {
	draws := generateDraws(10, func(i int) domain.Draw {
		if i%2 == 0 {
			return draw("2024-01-01", 1, 2, 3, 4, 5)
		}
		return draw("2024-01-02", 6, 7, 8, 9, 10)
	})

	byAnchor := FollowerAnalysis(draws, domain.StreamWinning)
	stats, ok := byAnchor[1]
	if !ok || len(stats) == 0 {
		t.Fatal("expected anchor 1 to have follower stats")
	}
	for _, s := range stats {
		if s.Probability <= 0.10 {
			t.Errorf("follower %d kept with probability %v, want > 0.10", s.Follower, s.Probability)
		}
	}
}
