// Package postgres implements the domain repositories using PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// DB wraps a *sql.DB and implements the domain repository interfaces.
type DB struct {
	sql *sql.DB
}

// Open connects to PostgreSQL, pings, and runs migrations.
func Open(connStr string) (*DB, error) {
	s, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}
	s.SetMaxOpenConns(10)
	s.SetMaxIdleConns(5)
	s.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.PingContext(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}

	d := &DB{sql: s}
	if err := d.migrate(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	return d, nil
}

// Close closes the underlying database connection.
func (d *DB) Close() error {
	return d.sql.Close()
}

func (d *DB) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			email TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS sessions (
			token TEXT PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			user_agent TEXT NOT NULL DEFAULT '',
			ip TEXT NOT NULL DEFAULT '',
			expires_at TIMESTAMPTZ NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_expires_at ON sessions(expires_at);`,
		`CREATE TABLE IF NOT EXISTS profiles (
			user_id BIGINT PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			age INT NOT NULL,
			gender TEXT NOT NULL CHECK(gender IN ('male','female')),
			height_cm DOUBLE PRECISION NOT NULL,
			goal_weight_kg DOUBLE PRECISION NOT NULL DEFAULT 0,
			goal_body_fat_pct DOUBLE PRECISION NOT NULL DEFAULT 0,
			goal TEXT NOT NULL CHECK(goal IN ('weight_loss','maintain','weight_gain')),
			current_weight_kg DOUBLE PRECISION,
			current_body_fat_pct DOUBLE PRECISION,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS weight_entries (
			user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			day TEXT NOT NULL,
			weight_kg DOUBLE PRECISION NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			PRIMARY KEY(user_id, day)
		);`,
		`CREATE TABLE IF NOT EXISTS body_fat_entries (
			user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			day TEXT NOT NULL,
			body_fat_pct DOUBLE PRECISION NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			PRIMARY KEY(user_id, day)
		);`,
	}

	for _, stmt := range stmts {
		if _, err := d.sql.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
