package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"fittrack/internal/domain"
)

// GetByEmail returns the user with the given email, or nil if none exists.
func (d *DB) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := d.sql.QueryRowContext(ctx,
		`SELECT id, email, password_hash, created_at FROM users WHERE email = $1;`, email,
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByID returns the user with the given id, or nil if none exists.
func (d *DB) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	err := d.sql.QueryRowContext(ctx,
		`SELECT id, email, password_hash, created_at FROM users WHERE id = $1;`, id,
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user and returns it with its assigned id.
func (d *DB) Create(ctx context.Context, email, passwordHash string) (*domain.User, error) {
	u := domain.User{Email: email, PasswordHash: passwordHash, CreatedAt: time.Now().UTC()}
	err := d.sql.QueryRowContext(ctx,
		`INSERT INTO users(email, password_hash, created_at) VALUES($1, $2, $3) RETURNING id;`,
		u.Email, u.PasswordHash, u.CreatedAt,
	).Scan(&u.ID)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Count returns the number of registered users.
func (d *DB) Count(ctx context.Context) (int, error) {
	var n int
	err := d.sql.QueryRowContext(ctx, `SELECT COUNT(*) FROM users;`).Scan(&n)
	return n, err
}

// SessionRepo implements domain.SessionRepository on the shared DB handle.
type SessionRepo struct {
	db *DB
}

// NewSessionRepo returns a session repository backed by the given DB.
func NewSessionRepo(db *DB) *SessionRepo {
	return &SessionRepo{db: db}
}

// Create stores a new session.
func (r *SessionRepo) Create(ctx context.Context, userID int64, token, userAgent, ip string, expiresAt time.Time) error {
	_, err := r.db.sql.ExecContext(ctx,
		`INSERT INTO sessions(token, user_id, user_agent, ip, expires_at, created_at) VALUES($1, $2, $3, $4, $5, $6);`,
		token, userID, userAgent, ip, expiresAt.UTC(), time.Now().UTC())
	return err
}

// GetByToken returns the session for the token, or nil if none exists.
func (r *SessionRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	var s domain.Session
	err := r.db.sql.QueryRowContext(ctx,
		`SELECT token, user_id, user_agent, ip, expires_at, created_at FROM sessions WHERE token = $1;`, token,
	).Scan(&s.Token, &s.UserID, &s.UserAgent, &s.IP, &s.ExpiresAt, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Delete removes the session with the given token.
func (r *SessionRepo) Delete(ctx context.Context, token string) error {
	_, err := r.db.sql.ExecContext(ctx, `DELETE FROM sessions WHERE token = $1;`, token)
	return err
}

// DeleteExpired removes sessions past their expiry.
func (r *SessionRepo) DeleteExpired(ctx context.Context) error {
	_, err := r.db.sql.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at < $1;`, time.Now().UTC())
	return err
}

var (
	_ domain.MeasurementRepository = (*DB)(nil)
	_ domain.ProfileRepository     = (*DB)(nil)
	_ domain.UserRepository        = (*DB)(nil)
	_ domain.SessionRepository     = (*SessionRepo)(nil)
)
