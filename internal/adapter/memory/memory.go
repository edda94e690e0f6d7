// Package memory implements an in-memory repository for development and testing.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"fittrack/internal/domain"
)

type entryKey struct {
	userID int64
	day    string
}

// DB implements an in-memory database storage.
type DB struct {
	mu       sync.Mutex
	weights  map[entryKey]domain.WeightEntry
	bodyFats map[entryKey]domain.BodyFatEntry
	profiles map[int64]*domain.UserProfile
	users    []*domain.User
	sessions map[string]*domain.Session

	userIDCounter int64
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{
		weights:  make(map[entryKey]domain.WeightEntry),
		bodyFats: make(map[entryKey]domain.BodyFatEntry),
		profiles: make(map[int64]*domain.UserProfile),
		sessions: make(map[string]*domain.Session),
	}
}

// Ensure interfaces are met.
var _ domain.MeasurementRepository = (*DB)(nil)
var _ domain.ProfileRepository = (*DB)(nil)
var _ domain.UserRepository = (*DB)(nil)
var _ domain.SessionRepository = (*SessionRepo)(nil)

// --- MeasurementRepository ---

// UpsertWeightEntry stores the weight entry for (user, day), replacing any
// earlier value recorded the same day.
func (db *DB) UpsertWeightEntry(ctx context.Context, userID int64, day string, weightKg float64, recordedAt time.Time) (*domain.WeightEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	e := domain.WeightEntry{
		UserID:    userID,
		Day:       day,
		WeightKg:  weightKg,
		CreatedAt: recordedAt.UTC(),
	}
	db.weights[entryKey{userID, day}] = e
	return &e, nil
}

// UpsertBodyFatEntry stores the body-fat entry for (user, day), replacing any
// earlier value recorded the same day.
func (db *DB) UpsertBodyFatEntry(ctx context.Context, userID int64, day string, bodyFatPct float64, recordedAt time.Time) (*domain.BodyFatEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	e := domain.BodyFatEntry{
		UserID:     userID,
		Day:        day,
		BodyFatPct: bodyFatPct,
		CreatedAt:  recordedAt.UTC(),
	}
	db.bodyFats[entryKey{userID, day}] = e
	return &e, nil
}

// ListWeightEntries returns the user's weight entries ascending by day.
func (db *DB) ListWeightEntries(ctx context.Context, userID int64) ([]domain.WeightEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	var result []domain.WeightEntry
	for k, e := range db.weights {
		if k.userID == userID {
			result = append(result, e)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Day < result[j].Day
	})
	return result, nil
}

// ListBodyFatEntries returns the user's body-fat entries ascending by day.
func (db *DB) ListBodyFatEntries(ctx context.Context, userID int64) ([]domain.BodyFatEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	var result []domain.BodyFatEntry
	for k, e := range db.bodyFats {
		if k.userID == userID {
			result = append(result, e)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Day < result[j].Day
	})
	return result, nil
}

// WeightEntryForLocalDay returns the weight entry for the given day, or nil.
func (db *DB) WeightEntryForLocalDay(ctx context.Context, userID int64, localDay string) (*domain.WeightEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if e, ok := db.weights[entryKey{userID, localDay}]; ok {
		ret := e
		return &ret, nil
	}
	return nil, nil
}

// BodyFatEntryForLocalDay returns the body-fat entry for the given day, or nil.
func (db *DB) BodyFatEntryForLocalDay(ctx context.Context, userID int64, localDay string) (*domain.BodyFatEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if e, ok := db.bodyFats[entryKey{userID, localDay}]; ok {
		ret := e
		return &ret, nil
	}
	return nil, nil
}

// --- ProfileRepository ---

// GetProfile retrieves a user's profile, or nil if none exists.
func (db *DB) GetProfile(ctx context.Context, userID int64) (*domain.UserProfile, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if p, ok := db.profiles[userID]; ok {
		ret := *p
		return &ret, nil
	}
	return nil, nil
}

// CreateProfile creates a new profile.
func (db *DB) CreateProfile(ctx context.Context, p *domain.UserProfile) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, ok := db.profiles[p.UserID]; ok {
		return errors.New("profile already exists")
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	stored := *p
	db.profiles[p.UserID] = &stored
	return nil
}

// UpdateProfile replaces the editable profile fields, keeping the cached
// current measurements.
func (db *DB) UpdateProfile(ctx context.Context, p *domain.UserProfile) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	existing, ok := db.profiles[p.UserID]
	if !ok {
		return errors.New("profile not found")
	}
	existing.Name = p.Name
	existing.Email = p.Email
	existing.Age = p.Age
	existing.Gender = p.Gender
	existing.HeightCm = p.HeightCm
	existing.GoalWeightKg = p.GoalWeightKg
	existing.GoalBodyFatPct = p.GoalBodyFatPct
	existing.Goal = p.Goal
	existing.UpdatedAt = time.Now().UTC()
	return nil
}

// UpdateCurrentValues refreshes the cached latest measurements. Nil
// arguments leave the corresponding field untouched.
func (db *DB) UpdateCurrentValues(ctx context.Context, userID int64, weightKg, bodyFatPct *float64) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	existing, ok := db.profiles[userID]
	if !ok {
		return errors.New("profile not found")
	}
	if weightKg != nil {
		v := *weightKg
		existing.CurrentWeightKg = &v
	}
	if bodyFatPct != nil {
		v := *bodyFatPct
		existing.CurrentBodyFatPct = &v
	}
	existing.UpdatedAt = time.Now().UTC()
	return nil
}

// --- UserRepository ---

// GetByEmail retrieves a user by email, or nil if none exists.
func (db *DB) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

// GetByID retrieves a user by ID, or nil if none exists.
func (db *DB) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

// Create creates a new user.
func (db *DB) Create(ctx context.Context, email, passwordHash string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Email == email {
			return nil, errors.New("user already exists")
		}
	}

	db.userIDCounter++
	u := &domain.User{
		ID:           db.userIDCounter,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	db.users = append(db.users, u)
	return u, nil
}

// Count returns the total number of users.
func (db *DB) Count(ctx context.Context) (int, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return len(db.users), nil
}

// --- SessionRepository ---

// SessionRepo implements session persistence.
type SessionRepo struct {
	db *DB
}

// NewSessionRepo creates a new session repository.
func (db *DB) NewSessionRepo() *SessionRepo {
	return &SessionRepo{db: db}
}

// Create creates a new session.
func (r *SessionRepo) Create(ctx context.Context, userID int64, token, userAgent, ip string, expiresAt time.Time) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.sessions[token] = &domain.Session{
		Token:     token,
		UserID:    userID,
		UserAgent: userAgent,
		IP:        ip,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	}
	return nil
}

// GetByToken retrieves a session by token.
func (r *SessionRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if s, ok := r.db.sessions[token]; ok {
		if time.Now().After(s.ExpiresAt) {
			delete(r.db.sessions, token)
			return nil, nil
		}
		return s, nil
	}
	return nil, nil
}

// Delete deletes a session.
func (r *SessionRepo) Delete(ctx context.Context, token string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	delete(r.db.sessions, token)
	return nil
}

// DeleteExpired deletes all expired sessions.
func (r *SessionRepo) DeleteExpired(ctx context.Context) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	now := time.Now()
	for k, v := range r.db.sessions {
		if now.After(v.ExpiresAt) {
			delete(r.db.sessions, k)
		}
	}
	return nil
}
