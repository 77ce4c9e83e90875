package selector

import (
	"testing"

	"github.com/tirage90/predictor/internal/domain"
)

func TestSelect_ZeroScoresYieldsEmptySelection(t *testing.T) {
	scores := make(map[int]float64, 90)
	for n := 1; n <= 90; n++ {
		scores[n] = 0
	}
	sel := Select(scores)
	if len(sel.Numbers) != 0 {
		t.Errorf("Select() with all-zero scores returned %v, want empty", sel.Numbers)
	}
	if sel.Confidence != 0 {
		t.Errorf("Confidence = %v, want 0", sel.Confidence)
	}
}

func TestSelect_RespectsDecadeBalance(t *testing.T) {
	// Numbers 10..14 all score highest; 11..14 share decade 1 (11..20), so
	// balanced selection cannot take more than 2 of them in the first pass.
	scores := make(map[int]float64, 90)
	for n := 1; n <= 90; n++ {
		scores[n] = 0.01
	}
	for _, n := range []int{10, 11, 12, 13, 14} {
		scores[n] = 10
	}

	sel := Select(scores)
	if len(sel.Numbers) != 5 {
		t.Fatalf("Select() returned %d numbers, want 5", len(sel.Numbers))
	}
	decadeCounts := make(map[int]int)
	for _, n := range sel.Numbers {
		decadeCounts[domain.Decade(n)]++
	}
	for dec, c := range decadeCounts {
		if c > 2 {
			t.Errorf("decade %d has %d selected numbers, want <= 2", dec, c)
		}
	}
}

func TestSelect_ReturnsDistinctAscending(t *testing.T) {
	scores := make(map[int]float64, 90)
	for n := 1; n <= 90; n++ {
		scores[n] = float64(n)
	}
	sel := Select(scores)
	seen := make(map[int]bool)
	for i, n := range sel.Numbers {
		if n < 1 || n > 90 {
			t.Errorf("number %d out of range", n)
		}
		if seen[n] {
			t.Errorf("duplicate number %d", n)
		}
		seen[n] = true
		if i > 0 && sel.Numbers[i-1] > n {
			t.Errorf("numbers not ascending: %v", sel.Numbers)
		}
	}
}

func TestSelectHybrid_WiderConfidenceBand(t *testing.T) {
	scores := make(map[int]float64, 90)
	for n := 1; n <= 90; n++ {
		scores[n] = 1.0
	}
	sel := SelectHybrid(scores)
	if sel.Confidence > 97 {
		t.Errorf("hybrid confidence = %v, want <= 97", sel.Confidence)
	}
}
