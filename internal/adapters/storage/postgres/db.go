package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Open abre una conexión pool a Postgres usando pgx (database/sql).
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// schema es idempotente. El índice único de medication_logs es el que hace
// idempotente el "marcar como tomada".
var schema = []string{
	`CREATE TABLE IF NOT EXISTS user_profiles (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		role       TEXT NOT NULL CHECK (role IN ('patient', 'caretaker')),
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS medications (
		id           TEXT PRIMARY KEY,
		patient_id   TEXT NOT NULL,
		caretaker_id TEXT NOT NULL,
		name         TEXT NOT NULL,
		dosage       TEXT NOT NULL,
		days         TEXT[] NOT NULL DEFAULT '{}',
		time_slot    TEXT NOT NULL DEFAULT '',
		created_at   TIMESTAMPTZ NOT NULL,
		updated_at   TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS medications_caretaker_idx ON medications (caretaker_id)`,
	`CREATE INDEX IF NOT EXISTS medications_patient_idx ON medications (patient_id)`,
	`CREATE TABLE IF NOT EXISTS medication_logs (
		id            TEXT PRIMARY KEY,
		medication_id TEXT NOT NULL REFERENCES medications (id) ON DELETE CASCADE,
		patient_id    TEXT NOT NULL,
		date          DATE NOT NULL,
		taken         BOOLEAN NOT NULL,
		recorded_by   TEXT NOT NULL DEFAULT '',
		created_at    TIMESTAMPTZ NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS medication_logs_key_idx ON medication_logs (medication_id, patient_id, date)`,
	`CREATE INDEX IF NOT EXISTS medication_logs_patient_date_idx ON medication_logs (patient_id, date)`,
}

// Migrate crea tablas e índices si faltan.
func Migrate(ctx context.Context, db *sql.DB) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate step %d: %w", i, err)
		}
	}
	return nil
}
