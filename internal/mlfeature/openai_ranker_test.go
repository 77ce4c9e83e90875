package mlfeature

import "testing"

func TestParseRankedNumbers_ExtractsDistinctInOrder(t *testing.T) {
	got := parseRankedNumbers("Sure, here you go: 7, 42, 7, 15, 91, 23, not-a-number, 88", 5)
	want := []int{7, 42, 15, 23, 88}
	if len(got) != len(want) {
		t.Fatalf("parseRankedNumbers() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("parseRankedNumbers()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestParseRankedNumbers_StopsAtK(t *testing.T) {
	got := parseRankedNumbers("1,2,3,4,5,6,7", 3)
	if len(got) != 3 {
		t.Fatalf("parseRankedNumbers() returned %d numbers, want 3", len(got))
	}
}
