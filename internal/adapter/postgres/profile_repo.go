package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"fittrack/internal/domain"
)

// GetProfile returns the user's profile, or nil if none exists yet.
func (d *DB) GetProfile(ctx context.Context, userID int64) (*domain.UserProfile, error) {
	var p domain.UserProfile
	err := d.sql.QueryRowContext(ctx,
		`SELECT user_id, name, email, age, gender, height_cm, goal_weight_kg, goal_body_fat_pct, goal,
		        current_weight_kg, current_body_fat_pct, created_at, updated_at
		 FROM profiles WHERE user_id = $1;`, userID,
	).Scan(&p.UserID, &p.Name, &p.Email, &p.Age, &p.Gender, &p.HeightCm, &p.GoalWeightKg,
		&p.GoalBodyFatPct, &p.Goal, &p.CurrentWeightKg, &p.CurrentBodyFatPct, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// CreateProfile inserts a new profile row for the user.
func (d *DB) CreateProfile(ctx context.Context, p *domain.UserProfile) error {
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	_, err := d.sql.ExecContext(ctx,
		`INSERT INTO profiles(user_id, name, email, age, gender, height_cm, goal_weight_kg, goal_body_fat_pct, goal,
		                      current_weight_kg, current_body_fat_pct, created_at, updated_at)
		 VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);`,
		p.UserID, p.Name, p.Email, p.Age, p.Gender, p.HeightCm, p.GoalWeightKg, p.GoalBodyFatPct, p.Goal,
		p.CurrentWeightKg, p.CurrentBodyFatPct, p.CreatedAt, p.UpdatedAt)
	return err
}

// UpdateProfile replaces the editable profile fields. The cached current
// measurements are left alone; those move through UpdateCurrentValues.
func (d *DB) UpdateProfile(ctx context.Context, p *domain.UserProfile) error {
	p.UpdatedAt = time.Now().UTC()
	_, err := d.sql.ExecContext(ctx,
		`UPDATE profiles SET name = $2, email = $3, age = $4, gender = $5, height_cm = $6,
		        goal_weight_kg = $7, goal_body_fat_pct = $8, goal = $9, updated_at = $10
		 WHERE user_id = $1;`,
		p.UserID, p.Name, p.Email, p.Age, p.Gender, p.HeightCm, p.GoalWeightKg, p.GoalBodyFatPct, p.Goal, p.UpdatedAt)
	return err
}

// UpdateCurrentValues refreshes the cached latest measurements. A nil
// argument leaves that column untouched.
func (d *DB) UpdateCurrentValues(ctx context.Context, userID int64, weightKg, bodyFatPct *float64) error {
	_, err := d.sql.ExecContext(ctx,
		`UPDATE profiles SET current_weight_kg = COALESCE($2, current_weight_kg),
		        current_body_fat_pct = COALESCE($3, current_body_fat_pct),
		        updated_at = $4
		 WHERE user_id = $1;`,
		userID, weightKg, bodyFatPct, time.Now().UTC())
	return err
}
