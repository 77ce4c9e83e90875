package store

import (
	"database/sql"
	"encoding/json"

	"github.com/tirage90/predictor/internal/domain"
)

// LoadBrain reads the stream's serialized BrainState from ai_memory. A
// missing row is not an error: it returns (nil, nil) so the caller falls
// back to defaults.
func (s *DrawStore) LoadBrain(stream domain.Stream) (*domain.BrainState, error) {
	var raw []byte
	err := s.db.QueryRow(`SELECT data FROM ai_memory WHERE id = $1`, string(stream)).Scan(&raw)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	var state domain.BrainState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// SaveBrain upserts the stream's serialized BrainState into ai_memory.
func (s *DrawStore) SaveBrain(stream domain.Stream, state *domain.BrainState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		INSERT INTO ai_memory (id, data, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at
	`, string(stream), raw)
	return err
}
