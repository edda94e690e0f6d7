package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"fittrack/internal/domain"
)

// UpsertWeightEntry inserts or replaces the weight entry for (user, day).
// The (user_id, day) primary key makes a same-day re-record overwrite the
// prior value instead of appending a second row.
func (d *DB) UpsertWeightEntry(ctx context.Context, userID int64, day string, weightKg float64, recordedAt time.Time) (*domain.WeightEntry, error) {
	var e domain.WeightEntry
	err := d.sql.QueryRowContext(ctx,
		`INSERT INTO weight_entries(user_id, day, weight_kg, created_at) VALUES($1, $2, $3, $4)
		 ON CONFLICT (user_id, day) DO UPDATE SET weight_kg = EXCLUDED.weight_kg, created_at = EXCLUDED.created_at
		 RETURNING user_id, day, weight_kg, created_at;`,
		userID, day, weightKg, recordedAt.UTC(),
	).Scan(&e.UserID, &e.Day, &e.WeightKg, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// UpsertBodyFatEntry inserts or replaces the body-fat entry for (user, day).
func (d *DB) UpsertBodyFatEntry(ctx context.Context, userID int64, day string, bodyFatPct float64, recordedAt time.Time) (*domain.BodyFatEntry, error) {
	var e domain.BodyFatEntry
	err := d.sql.QueryRowContext(ctx,
		`INSERT INTO body_fat_entries(user_id, day, body_fat_pct, created_at) VALUES($1, $2, $3, $4)
		 ON CONFLICT (user_id, day) DO UPDATE SET body_fat_pct = EXCLUDED.body_fat_pct, created_at = EXCLUDED.created_at
		 RETURNING user_id, day, body_fat_pct, created_at;`,
		userID, day, bodyFatPct, recordedAt.UTC(),
	).Scan(&e.UserID, &e.Day, &e.BodyFatPct, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// ListWeightEntries returns all weight entries for the user, ascending by day.
func (d *DB) ListWeightEntries(ctx context.Context, userID int64) ([]domain.WeightEntry, error) {
	rows, err := d.sql.QueryContext(ctx,
		`SELECT user_id, day, weight_kg, created_at FROM weight_entries WHERE user_id = $1 ORDER BY day ASC;`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.WeightEntry
	for rows.Next() {
		var e domain.WeightEntry
		if err := rows.Scan(&e.UserID, &e.Day, &e.WeightKg, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// ListBodyFatEntries returns all body-fat entries for the user, ascending by day.
func (d *DB) ListBodyFatEntries(ctx context.Context, userID int64) ([]domain.BodyFatEntry, error) {
	rows, err := d.sql.QueryContext(ctx,
		`SELECT user_id, day, body_fat_pct, created_at FROM body_fat_entries WHERE user_id = $1 ORDER BY day ASC;`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.BodyFatEntry
	for rows.Next() {
		var e domain.BodyFatEntry
		if err := rows.Scan(&e.UserID, &e.Day, &e.BodyFatPct, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// WeightEntryForLocalDay returns the weight entry for a local calendar day,
// or nil if none was recorded.
func (d *DB) WeightEntryForLocalDay(ctx context.Context, userID int64, localDay string) (*domain.WeightEntry, error) {
	var e domain.WeightEntry
	err := d.sql.QueryRowContext(ctx,
		`SELECT user_id, day, weight_kg, created_at FROM weight_entries WHERE user_id = $1 AND day = $2;`,
		userID, localDay,
	).Scan(&e.UserID, &e.Day, &e.WeightKg, &e.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// BodyFatEntryForLocalDay returns the body-fat entry for a local calendar
// day, or nil if none was recorded.
func (d *DB) BodyFatEntryForLocalDay(ctx context.Context, userID int64, localDay string) (*domain.BodyFatEntry, error) {
	var e domain.BodyFatEntry
	err := d.sql.QueryRowContext(ctx,
		`SELECT user_id, day, body_fat_pct, created_at FROM body_fat_entries WHERE user_id = $1 AND day = $2;`,
		userID, localDay,
	).Scan(&e.UserID, &e.Day, &e.BodyFatPct, &e.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}
