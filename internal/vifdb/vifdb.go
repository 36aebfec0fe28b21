// Package vifdb archives decoded VIF rows into a sqlite database as an
// optional secondary sink next to the CSV output.
package vifdb

import (
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/vibra-data/vif2csv/internal/vif"
)

// DB wraps the archive database connection. Each Open creates a new
// run row; every archived record points back at it.
type DB struct {
	*sql.DB
	runID string
}

// Open opens (creating if needed) the archive at path, applies pending
// schema migrations and registers a new run.
func Open(path string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db := &DB{DB: sqlDB, runID: uuid.NewString()}
	if err := db.migrateUp(); err != nil {
		sqlDB.Close()
		return nil, err
	}
	if _, err := db.Exec(
		"INSERT INTO runs (run_id, started_at) VALUES (?, ?)",
		db.runID, time.Now().UTC(),
	); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to register run: %w", err)
	}
	return db, nil
}

// RunID identifies this conversion run in the archive.
func (db *DB) RunID() string { return db.runID }

// WriteRow archives one decoded row. It implements vif.RowSink.
func (db *DB) WriteRow(row *vif.Row) error {
	temperature, err := strconv.ParseFloat(row.Temperature, 64)
	if err != nil {
		return fmt.Errorf("failed to parse temperature: %w", err)
	}
	battery, err := strconv.ParseFloat(row.Battery, 64)
	if err != nil {
		return fmt.Errorf("failed to parse battery: %w", err)
	}
	velocity := sql.NullFloat64{Float64: row.Velocity, Valid: row.VelocityOK}

	_, err = db.Exec(`
		INSERT INTO records (
			run_id, source_file, recorded_at, state, velocity,
			temperature, battery, geophone, error_code
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		db.runID, row.Source, row.Stamp.UTC(), row.State, velocity,
		temperature, battery, row.Geophone, row.ErrorCode,
	)
	if err != nil {
		return fmt.Errorf("failed to insert record: %w", err)
	}
	return nil
}
