package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/tirage90/predictor/internal/domain"
)

func entry(numbers ...int) domain.PredictionEntry {
	return domain.PredictionEntry{
		Timestamp:        time.Now(),
		PredictedNumbers: numbers,
	}
}

func testLogs(t *testing.T) []Log {
	t.Helper()
	dir := t.TempDir()
	return []Log{
		NewMemoryLog(),
		NewFileLog(filepath.Join(dir, "history.json")),
	}
}

func TestLog_AppendIsNewestFirst(t *testing.T) {
	for _, l := range testLogs(t) {
		l.Append(entry(1))
		l.Append(entry(2))

		all, err := l.All()
		if err != nil {
			t.Fatalf("All() error = %v", err)
		}
		if len(all) != 2 || all[0].PredictedNumbers[0] != 2 {
			t.Errorf("All() = %v, want newest-first [2,1]", all)
		}
	}
}

func TestLog_AppendTrimsToMax(t *testing.T) {
	for _, l := range testLogs(t) {
		for i := 0; i < domain.MaxHistoryEntries+10; i++ {
			l.Append(entry(i))
		}
		all, err := l.All()
		if err != nil {
			t.Fatalf("All() error = %v", err)
		}
		if len(all) != domain.MaxHistoryEntries {
			t.Errorf("len(All()) = %d, want %d", len(all), domain.MaxHistoryEntries)
		}
	}
}

func TestLog_ReplacePersistsMutation(t *testing.T) {
	for _, l := range testLogs(t) {
		l.Append(entry(1))
		all, _ := l.All()
		all[0].Result = &domain.OutcomeResult{MatchCount: 3}

		if err := l.Replace(all); err != nil {
			t.Fatalf("Replace() error = %v", err)
		}
		reloaded, _ := l.All()
		if !reloaded[0].Verified() {
			t.Error("expected entry to be verified after Replace")
		}
	}
}
