// Package history is the external prediction-history log: newest-first,
// capped at domain.MaxHistoryEntries, append-then-verify. The backing
// implementation is a choice behind a shared interface — FileLog and
// MemoryLog both satisfy Log, so tests can substitute the in-memory one.
package history

import "github.com/tirage90/predictor/internal/domain"

// Log is the append/read/replace contract the Verification Loop and the
// prediction-serving path depend on.
type Log interface {
	// Append adds a new entry at the front (newest-first), trimming to
	// domain.MaxHistoryEntries.
	Append(e domain.PredictionEntry) error
	// All returns every entry, newest-first.
	All() ([]domain.PredictionEntry, error)
	// Replace overwrites the full log, used by the Verification Loop after
	// mutating matched entries in place.
	Replace(entries []domain.PredictionEntry) error
}

func prepend(entries []domain.PredictionEntry, e domain.PredictionEntry) []domain.PredictionEntry {
	out := append([]domain.PredictionEntry{e}, entries...)
	if len(out) > domain.MaxHistoryEntries {
		out = out[:domain.MaxHistoryEntries]
	}
	return out
}
