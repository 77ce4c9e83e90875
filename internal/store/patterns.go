package store

import (
	"math"

	"github.com/tirage90/predictor/internal/domain"
)

// clampStrength keeps a strength field within the pattern table's [0,99.99]
// column range, defaulting to 50 on a non-finite input.
func clampStrength(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 50
	}
	if v < 0 {
		return 0
	}
	if v > 99.99 {
		return 99.99
	}
	return v
}

// SavePatterns upserts one draw type's pattern strengths, clamping each to
// [0, 99.99] with a default of 50 on non-finite values.
func (s *DrawStore) SavePatterns(drawTypeID int, patterns []domain.PatternStrength) error {
	for _, p := range patterns {
		_, err := s.db.Exec(`
			INSERT INTO patterns (draw_type_id, pattern, strength, updated_at)
			VALUES ($1, $2, $3, NOW())
			ON CONFLICT (draw_type_id, pattern) DO UPDATE SET
				strength = EXCLUDED.strength,
				updated_at = NOW()
		`, drawTypeID, p.Pattern, clampStrength(p.Strength))
		if err != nil {
			return err
		}
	}
	return nil
}
