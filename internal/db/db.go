// Package db provides PostgreSQL database access for resume, job, and
// application storage.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// migrations are applied in order on startup. Entity payloads live in
// JSONB columns validated against their schemas before every write.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS resumes (
		id         UUID PRIMARY KEY,
		data       JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS job_descriptions (
		id              UUID PRIMARY KEY,
		company         TEXT NOT NULL,
		role            TEXT NOT NULL,
		location        TEXT NOT NULL DEFAULT '',
		salary          TEXT NOT NULL DEFAULT '',
		job_type        TEXT NOT NULL DEFAULT 'full_time',
		industry        TEXT NOT NULL DEFAULT '',
		required_skills JSONB NOT NULL DEFAULT '[]',
		keywords        JSONB NOT NULL DEFAULT '[]',
		raw_text        TEXT NOT NULL DEFAULT '',
		created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS applications (
		id                 UUID PRIMARY KEY,
		job_description_id UUID,
		company            TEXT NOT NULL,
		role               TEXT NOT NULL,
		location           TEXT NOT NULL DEFAULT '',
		status             TEXT NOT NULL DEFAULT 'draft',
		application_date   TEXT NOT NULL DEFAULT '',
		notes              TEXT NOT NULL DEFAULT '',
		connection_info    TEXT NOT NULL DEFAULT '',
		application_link   TEXT NOT NULL DEFAULT '',
		saved_resume       TEXT NOT NULL DEFAULT '',
		saved_cover_letter TEXT NOT NULL DEFAULT '',
		interviews         JSONB NOT NULL DEFAULT '[]',
		reminders          JSONB NOT NULL DEFAULT '[]',
		created_at         TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at         TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_applications_status ON applications (status)`,
	`CREATE INDEX IF NOT EXISTS idx_applications_company ON applications (company)`,
}

// Migrate applies the schema migrations.
func (db *DB) Migrate(ctx context.Context) error {
	for i, stmt := range migrations {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply migration %d: %w", i+1, err)
		}
	}
	return nil
}
