package domain

import "time"

// Draw is a single tirage: five winning numbers and, when available, five
// machine numbers drawn from 1..90.
type Draw struct {
	DrawTypeID int       `json:"drawTypeId"`
	Date       time.Time `json:"date"`
	DayOfWeek int       `json:"dayOfWeek"` // 0..6
	Winning    [5]int    `json:"winning"`
	Machine    [5]int    `json:"machine,omitempty"`
	HasMachine bool      `json:"hasMachine"`
}

// Numbers returns the requested stream's five numbers. Callers must not
// request Machine unless HasMachine is true.
func (d Draw) Numbers(stream Stream) [5]int {
	if stream == StreamMachine {
		return d.Machine
	}
	return d.Winning
}

// Equal reports whether two draws carry the same number sets, ignoring date
// and day-of-week. Used by the Brain's leakage guard.
func (d Draw) Equal(other Draw) bool {
	return sameSet(d.Winning, other.Winning) &&
		d.HasMachine == other.HasMachine &&
		(!d.HasMachine || sameSet(d.Machine, other.Machine))
}

func sameSet(a, b [5]int) bool {
	var am, bm [91]bool
	for i := range a {
		am[a[i]] = true
		bm[b[i]] = true
	}
	for n := 1; n <= 90; n++ {
		if am[n] != bm[n] {
			return false
		}
	}
	return true
}

// DrawType is a fixed catalog entry identifying one of the daily tirages.
type DrawType struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// Stream distinguishes the two independently predicted number sets.
type Stream string

const (
	StreamWinning Stream = "winning"
	StreamMachine Stream = "machine"
)

// Selection is a ranked, decade-balanced set of five numbers plus the
// confidence and per-number score map that produced it.
type Selection struct {
	Numbers    []int           `json:"numbers"`
	Sum        int             `json:"sum"`
	Confidence float64         `json:"confidence"`
	Scores     map[int]float64 `json:"scores"`
}

// NewSelection builds a Selection from chosen numbers and the score map they
// were drawn from, computing Sum and leaving Confidence to the caller.
func NewSelection(numbers []int, scores map[int]float64) Selection {
	sum := 0
	for _, n := range numbers {
		sum += n
	}
	return Selection{Numbers: numbers, Sum: sum, Scores: scores}
}

// Decade buckets a number into one of nine decades: 0 covers 1..10, 1 covers
// 11..20, ..., 8 covers 81..90 (ten numbers in every bucket).
func Decade(n int) int {
	return (n - 1) / 10
}

// RawDraw is an unvalidated draw as received from the upstream scraping API
// before scrape.Normalize converts it into a Draw.
type RawDraw struct {
	DrawTypeID int
	DrawName   string
	Date       string
	Winning    []string
	Machine    []string
}
