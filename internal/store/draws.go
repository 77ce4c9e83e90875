package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tirage90/predictor/internal/cache"
	"github.com/tirage90/predictor/internal/domain"
)

const (
	drawCacheKey  = "all"
	drawFetchCap  = 5000
	drawCacheTTL  = time.Hour
)

// DrawStore is the Draw Store Adapter: chronologically ordered draws
// filtered by draw type, with a TTL-cached unfiltered view.
type DrawStore struct {
	db  *DB
	log zerolog.Logger

	cache *cache.TTLCache[string, []domain.Draw]
}

// NewDrawStore wraps db with a TTL cache over the unfiltered draw list
// (1 hour lifetime).
func NewDrawStore(db *DB, log zerolog.Logger) *DrawStore {
	return &DrawStore{
		db:    db,
		log:   log.With().Str("component", "draw_store").Logger(),
		cache: cache.New[string, []domain.Draw](drawCacheTTL),
	}
}

// Invalidate clears the unfiltered cache.
func (s *DrawStore) Invalidate() {
	s.cache.Invalidate()
}

// GetDraws returns the requested draw type's full history, or up to 5000
// most recent draws across all types when drawTypeID is nil, oldest first.
// On a backing-store error it returns an empty sequence rather than
// propagating.
func (s *DrawStore) GetDraws(drawTypeID *int) []domain.Draw {
	if drawTypeID == nil {
		if cached, ok, _ := s.cache.Get(drawCacheKey); ok {
			return cached
		}
		draws, err := s.queryDraws(nil, drawFetchCap)
		if err != nil {
			s.log.Warn().Err(err).Msg("failed to load draws, returning empty sequence")
			return nil
		}
		s.cache.Set(drawCacheKey, draws)
		return draws
	}

	draws, err := s.queryDraws(drawTypeID, 0)
	if err != nil {
		s.log.Warn().Err(err).Int("drawTypeId", *drawTypeID).Msg("failed to load draws, returning empty sequence")
		return nil
	}
	return draws
}

// queryDraws fetches draws in reverse-chronological order (limited by limit
// when limit > 0) and reverses the slice into chronological order.
func (s *DrawStore) queryDraws(drawTypeID *int, limit int) ([]domain.Draw, error) {
	query := `
		SELECT draw_type_id, draw_date, day_of_week,
			winning_number_1, winning_number_2, winning_number_3, winning_number_4, winning_number_5,
			machine_number_1, machine_number_2, machine_number_3, machine_number_4, machine_number_5
		FROM draws
	`
	args := []interface{}{}
	if drawTypeID != nil {
		query += " WHERE draw_type_id = $1"
		args = append(args, *drawTypeID)
	}
	query += " ORDER BY draw_date DESC"
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", len(args)+1)
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var draws []domain.Draw
	for rows.Next() {
		d, err := scanDraw(rows)
		if err != nil {
			return nil, err
		}
		draws = append(draws, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	reverseDraws(draws)
	return draws, nil
}

func scanDraw(rows *sql.Rows) (domain.Draw, error) {
	var d domain.Draw
	var w [5]int
	var m [5]sql.NullInt64

	if err := rows.Scan(
		&d.DrawTypeID, &d.Date, &d.DayOfWeek,
		&w[0], &w[1], &w[2], &w[3], &w[4],
		&m[0], &m[1], &m[2], &m[3], &m[4],
	); err != nil {
		return domain.Draw{}, err
	}

	d.Winning = w
	d.HasMachine = true
	for i, v := range m {
		if !v.Valid {
			d.HasMachine = false
			continue
		}
		d.Machine[i] = int(v.Int64)
	}
	if !d.HasMachine {
		d.Machine = [5]int{}
	}
	return d, nil
}

func reverseDraws(draws []domain.Draw) {
	for i, j := 0, len(draws)-1; i < j; i, j = i+1, j-1 {
		draws[i], draws[j] = draws[j], draws[i]
	}
}

// InsertDraws upserts normalized draws into the draws table, relying on the
// draw_type_id/draw_date/raw_winning unique constraint to skip rows already
// on record. Returns the number of genuinely new rows.
func (s *DrawStore) InsertDraws(draws []domain.Draw) (int, error) {
	var inserted int
	for _, d := range draws {
		n, err := s.insertOne(d)
		if err != nil {
			return inserted, err
		}
		inserted += n
	}
	return inserted, nil
}

func (s *DrawStore) insertOne(d domain.Draw) (int, error) {
	rawWinning := joinNumbers(d.Winning[:])
	var rawMachine sql.NullString
	var machine [5]sql.NullInt64
	if d.HasMachine {
		rawMachine = sql.NullString{String: joinNumbers(d.Machine[:]), Valid: true}
		for i, n := range d.Machine {
			machine[i] = sql.NullInt64{Int64: int64(n), Valid: true}
		}
	}

	res, err := s.db.Exec(`
		INSERT INTO draws (
			draw_type_id, draw_date, day_of_week, week_of_year, month_year,
			winning_number_1, winning_number_2, winning_number_3, winning_number_4, winning_number_5,
			machine_number_1, machine_number_2, machine_number_3, machine_number_4, machine_number_5,
			raw_winning, raw_machine
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		ON CONFLICT (draw_type_id, draw_date, raw_winning) DO NOTHING
	`,
		d.DrawTypeID, d.Date, d.DayOfWeek, isoWeek(d.Date), d.Date.Format("2006-01"),
		d.Winning[0], d.Winning[1], d.Winning[2], d.Winning[3], d.Winning[4],
		machine[0], machine[1], machine[2], machine[3], machine[4],
		rawWinning, rawMachine,
	)
	if err != nil {
		return 0, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(affected), nil
}

func isoWeek(t time.Time) int {
	_, week := t.ISOWeek()
	return week
}

func joinNumbers(nums []int) string {
	out := ""
	for i, n := range nums {
		if i > 0 {
			out += ","
		}
		out += fmt.Sprintf("%d", n)
	}
	return out
}

// GetDrawTypes returns the fixed catalog of draw types.
func (s *DrawStore) GetDrawTypes() []domain.DrawType {
	rows, err := s.db.Query(`SELECT id, name, category FROM draw_types ORDER BY id`)
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to load draw types")
		return nil
	}
	defer rows.Close()

	var types []domain.DrawType
	for rows.Next() {
		var t domain.DrawType
		if err := rows.Scan(&t.ID, &t.Name, &t.Category); err != nil {
			s.log.Warn().Err(err).Msg("failed to scan draw type")
			return nil
		}
		types = append(types, t)
	}
	return types
}
