package analyzers

import "github.com/tirage90/predictor/internal/domain"

// Triple is a three-number co-occurrence used only for reporting.
type Triple struct {
	A, B, C int
	Count   int
}

// CorrelationAnalysis computes pairwise lift over a draw sequence:
// lift(a,b) = count(a,b)*N / (count(a)*count(b)).
// Pairs are kept when count ≥ 3 and lift > 1.2. Triples are returned purely
// for reporting and are not consumed by any strategy.
func CorrelationAnalysis(draws []domain.Draw, stream domain.Stream) ([]domain.PairLift, []Triple) {
	single := make(map[int]int, 90)
	pair := make(map[[2]int]int)
	triple := make(map[[3]int]int)

	n := 0
	for _, d := range draws {
		if stream == domain.StreamMachine && !d.HasMachine {
			continue
		}
		n++
		nums := sortedNumbers(d.Numbers(stream))
		for _, a := range nums {
			single[a]++
		}
		for i := 0; i < len(nums); i++ {
			for j := i + 1; j < len(nums); j++ {
				pair[[2]int{nums[i], nums[j]}]++
				for k := j + 1; k < len(nums); k++ {
					triple[[3]int{nums[i], nums[j], nums[k]}]++
				}
			}
		}
	}

	var lifts []domain.PairLift
	for key, count := range pair {
		if count < 3 {
			continue
		}
		ca, cb := single[key[0]], single[key[1]]
		if ca == 0 || cb == 0 || n == 0 {
			continue
		}
		lift := float64(count*n) / float64(ca*cb)
		if lift > 1.2 {
			lifts = append(lifts, domain.PairLift{A: key[0], B: key[1], Count: count, Lift: lift})
		}
	}
	sortPairLifts(lifts)

	var triples []Triple
	for key, count := range triple {
		if count < 3 {
			continue
		}
		triples = append(triples, Triple{A: key[0], B: key[1], C: key[2], Count: count})
	}
	sortTriples(triples)

	return lifts, triples
}

func sortPairLifts(ls []domain.PairLift) {
	for i := 1; i < len(ls); i++ {
		for j := i; j > 0 && lessPairLift(ls[j], ls[j-1]); j-- {
			ls[j-1], ls[j] = ls[j], ls[j-1]
		}
	}
}

func lessPairLift(a, b domain.PairLift) bool {
	if a.Lift != b.Lift {
		return a.Lift > b.Lift
	}
	if a.A != b.A {
		return a.A < b.A
	}
	return a.B < b.B
}

func sortTriples(ts []Triple) {
	for i := 1; i < len(ts); i++ {
		for j := i; j > 0 && lessTriple(ts[j], ts[j-1]); j-- {
			ts[j-1], ts[j] = ts[j], ts[j-1]
		}
	}
}

func lessTriple(a, b Triple) bool {
	if a.Count != b.Count {
		return a.Count > b.Count
	}
	if a.A != b.A {
		return a.A < b.A
	}
	if a.B != b.B {
		return a.B < b.B
	}
	return a.C < b.C
}
