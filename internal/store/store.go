// Package store is the Postgres-backed Draw Store Adapter and Brain blob
// persistence: connection setup, migration-on-connect, and parameterized
// queries.
package store

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// DB wraps *sql.DB so callers can call sql methods directly while getting
// one place to hang domain queries.
type DB struct {
	*sql.DB
}

// ConnectionParams are the Postgres dial parameters.
type ConnectionParams struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode string
}

// New opens a connection, pings it, and ensures the schema exists.
func New(params ConnectionParams) (*DB, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		params.Host, params.Port, params.User, params.Password, params.DBName, params.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	if err := createTables(db); err != nil {
		return nil, err
	}

	return &DB{db}, nil
}

// createTables creates the schema if it doesn't exist yet.
func createTables(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS draw_types (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			category TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS draws (
			id SERIAL PRIMARY KEY,
			draw_type_id INTEGER NOT NULL REFERENCES draw_types(id),
			draw_date DATE NOT NULL,
			day_of_week SMALLINT NOT NULL,
			week_of_year SMALLINT,
			month_year TEXT,
			winning_number_1 INTEGER NOT NULL,
			winning_number_2 INTEGER NOT NULL,
			winning_number_3 INTEGER NOT NULL,
			winning_number_4 INTEGER NOT NULL,
			winning_number_5 INTEGER NOT NULL,
			machine_number_1 INTEGER,
			machine_number_2 INTEGER,
			machine_number_3 INTEGER,
			machine_number_4 INTEGER,
			machine_number_5 INTEGER,
			raw_winning TEXT,
			raw_machine TEXT,
			UNIQUE(draw_type_id, draw_date, raw_winning)
		)`,
		`CREATE TABLE IF NOT EXISTS number_frequency (
			draw_type_id INTEGER NOT NULL REFERENCES draw_types(id),
			number SMALLINT NOT NULL,
			total_count INTEGER NOT NULL DEFAULT 0,
			position_1_count INTEGER NOT NULL DEFAULT 0,
			position_2_count INTEGER NOT NULL DEFAULT 0,
			position_3_count INTEGER NOT NULL DEFAULT 0,
			position_4_count INTEGER NOT NULL DEFAULT 0,
			position_5_count INTEGER NOT NULL DEFAULT 0,
			last_seen DATE,
			UNIQUE(draw_type_id, number)
		)`,
		`CREATE TABLE IF NOT EXISTS ai_memory (
			id TEXT PRIMARY KEY,
			data JSON NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS predictions (
			id SERIAL PRIMARY KEY,
			draw_type_id INTEGER REFERENCES draw_types(id),
			day_of_week SMALLINT,
			predicted_numbers TEXT NOT NULL,
			confidence NUMERIC,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS patterns (
			draw_type_id INTEGER NOT NULL REFERENCES draw_types(id),
			pattern TEXT NOT NULL,
			strength NUMERIC(5,2) NOT NULL DEFAULT 50,
			updated_at TIMESTAMP NOT NULL DEFAULT NOW(),
			UNIQUE(draw_type_id, pattern)
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return numberFrequencyTrigger(db)
}

// numberFrequencyTrigger installs the trigger that maintains
// number_frequency on insert into draws.
func numberFrequencyTrigger(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE OR REPLACE FUNCTION bump_number_frequency() RETURNS TRIGGER AS $$
		DECLARE
			pos INTEGER;
			num INTEGER;
		BEGIN
			FOR pos IN 1..5 LOOP
				num := CASE pos
					WHEN 1 THEN NEW.winning_number_1
					WHEN 2 THEN NEW.winning_number_2
					WHEN 3 THEN NEW.winning_number_3
					WHEN 4 THEN NEW.winning_number_4
					WHEN 5 THEN NEW.winning_number_5
				END;
				INSERT INTO number_frequency (draw_type_id, number, total_count, last_seen)
				VALUES (NEW.draw_type_id, num, 1, NEW.draw_date)
				ON CONFLICT (draw_type_id, number) DO UPDATE SET
					total_count = number_frequency.total_count + 1,
					last_seen = NEW.draw_date;
			END LOOP;
			RETURN NEW;
		END;
		$$ LANGUAGE plpgsql;
	`)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		DROP TRIGGER IF EXISTS draws_bump_number_frequency ON draws;
		CREATE TRIGGER draws_bump_number_frequency
		AFTER INSERT ON draws
		FOR EACH ROW EXECUTE FUNCTION bump_number_frequency();
	`)
	return err
}
