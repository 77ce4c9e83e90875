package history

import (
	"sync"

	"github.com/tirage90/predictor/internal/domain"
)

// MemoryLog is an in-memory substitute for FileLog, used in tests that
// don't need a real file on disk.
type MemoryLog struct {
	mu      sync.Mutex
	entries []domain.PredictionEntry
}

// NewMemoryLog returns an empty in-memory log.
func NewMemoryLog() *MemoryLog {
	return &MemoryLog{}
}

func (m *MemoryLog) Append(e domain.PredictionEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = prepend(m.entries, e)
	return nil
}

func (m *MemoryLog) All() ([]domain.PredictionEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.PredictionEntry, len(m.entries))
	copy(out, m.entries)
	return out, nil
}

func (m *MemoryLog) Replace(entries []domain.PredictionEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append([]domain.PredictionEntry(nil), entries...)
	return nil
}
