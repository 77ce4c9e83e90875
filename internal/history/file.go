package history

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/tirage90/predictor/internal/domain"
)

// FileLog persists the prediction-history file: a newest-first JSON array
// capped at domain.MaxHistoryEntries.
type FileLog struct {
	mu   sync.Mutex
	path string
}

// NewFileLog opens (without yet reading) the history file at path.
func NewFileLog(path string) *FileLog {
	return &FileLog{path: path}
}

func (f *FileLog) Append(e domain.PredictionEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := f.read()
	if err != nil {
		return err
	}
	return f.write(prepend(entries, e))
}

func (f *FileLog) All() ([]domain.PredictionEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.read()
}

func (f *FileLog) Replace(entries []domain.PredictionEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.write(entries)
}

func (f *FileLog) read() ([]domain.PredictionEntry, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}

	var entries []domain.PredictionEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (f *FileLog) write(entries []domain.PredictionEntry) error {
	if len(entries) > domain.MaxHistoryEntries {
		entries = entries[:domain.MaxHistoryEntries]
	}
	raw, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(f.path, raw, 0o644)
}
