package scrape

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tirage90/predictor/internal/domain"
)

// dateLayout matches the upstream site's "2006-01-02" date format.
const dateLayout = "2006-01-02"

// Normalize converts a RawDraw into a domain.Draw, parsing strings to ints,
// checking the winning group is five distinct numbers in 1..90, and
// nullifying the machine group when it is absent, short, or non-numeric.
func Normalize(raw domain.RawDraw) (domain.Draw, error) {
	date, err := time.Parse(dateLayout, raw.Date)
	if err != nil {
		return domain.Draw{}, fmt.Errorf("scrape: parse date %q: %w", raw.Date, err)
	}

	winning, err := parseDistinctGroup(raw.Winning)
	if err != nil {
		return domain.Draw{}, fmt.Errorf("scrape: winning group: %w", err)
	}

	draw := domain.Draw{
		DrawTypeID: raw.DrawTypeID,
		Date:       date,
		DayOfWeek:  int(date.Weekday()),
		Winning:    winning,
	}

	if machine, err := parseDistinctGroup(raw.Machine); err == nil {
		draw.Machine = machine
		draw.HasMachine = true
	}

	return draw, nil
}

// parseDistinctGroup parses exactly five number strings into a distinct
// [5]int in 1..90. Any deviation (wrong count, non-numeric, out of range,
// duplicate) is an error so the caller can treat the group as absent.
func parseDistinctGroup(raw []string) ([5]int, error) {
	var nums [5]int
	if len(raw) != 5 {
		return nums, fmt.Errorf("expected 5 numbers, got %d", len(raw))
	}

	var seen [91]bool
	for i, s := range raw {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return nums, fmt.Errorf("non-numeric entry %q: %w", s, err)
		}
		if n < 1 || n > 90 {
			return nums, fmt.Errorf("number %d out of range 1..90", n)
		}
		if seen[n] {
			return nums, fmt.Errorf("duplicate number %d", n)
		}
		seen[n] = true
		nums[i] = n
	}
	return nums, nil
}
