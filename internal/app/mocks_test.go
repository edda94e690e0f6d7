package app_test

import (
	"context"
	"time"

	"fittrack/internal/domain"
)

// Mock repositories in the function-fields pattern: unset fields fall back
// to benign defaults.

type mockMeasurementRepo struct {
	upsertWeightFn  func(ctx context.Context, userID int64, day string, weightKg float64, recordedAt time.Time) (*domain.WeightEntry, error)
	upsertBodyFatFn func(ctx context.Context, userID int64, day string, bodyFatPct float64, recordedAt time.Time) (*domain.BodyFatEntry, error)
	listWeightFn    func(ctx context.Context, userID int64) ([]domain.WeightEntry, error)
	listBodyFatFn   func(ctx context.Context, userID int64) ([]domain.BodyFatEntry, error)
	weightForDayFn  func(ctx context.Context, userID int64, localDay string) (*domain.WeightEntry, error)
	bodyFatForDayFn func(ctx context.Context, userID int64, localDay string) (*domain.BodyFatEntry, error)
}

func (m *mockMeasurementRepo) UpsertWeightEntry(ctx context.Context, userID int64, day string, weightKg float64, recordedAt time.Time) (*domain.WeightEntry, error) {
	if m.upsertWeightFn != nil {
		return m.upsertWeightFn(ctx, userID, day, weightKg, recordedAt)
	}
	return &domain.WeightEntry{UserID: userID, Day: day, WeightKg: weightKg, CreatedAt: recordedAt}, nil
}

func (m *mockMeasurementRepo) UpsertBodyFatEntry(ctx context.Context, userID int64, day string, bodyFatPct float64, recordedAt time.Time) (*domain.BodyFatEntry, error) {
	if m.upsertBodyFatFn != nil {
		return m.upsertBodyFatFn(ctx, userID, day, bodyFatPct, recordedAt)
	}
	return &domain.BodyFatEntry{UserID: userID, Day: day, BodyFatPct: bodyFatPct, CreatedAt: recordedAt}, nil
}

func (m *mockMeasurementRepo) ListWeightEntries(ctx context.Context, userID int64) ([]domain.WeightEntry, error) {
	if m.listWeightFn != nil {
		return m.listWeightFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockMeasurementRepo) ListBodyFatEntries(ctx context.Context, userID int64) ([]domain.BodyFatEntry, error) {
	if m.listBodyFatFn != nil {
		return m.listBodyFatFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockMeasurementRepo) WeightEntryForLocalDay(ctx context.Context, userID int64, localDay string) (*domain.WeightEntry, error) {
	if m.weightForDayFn != nil {
		return m.weightForDayFn(ctx, userID, localDay)
	}
	return nil, nil
}

func (m *mockMeasurementRepo) BodyFatEntryForLocalDay(ctx context.Context, userID int64, localDay string) (*domain.BodyFatEntry, error) {
	if m.bodyFatForDayFn != nil {
		return m.bodyFatForDayFn(ctx, userID, localDay)
	}
	return nil, nil
}

type mockProfileRepo struct {
	getFn           func(ctx context.Context, userID int64) (*domain.UserProfile, error)
	createFn        func(ctx context.Context, p *domain.UserProfile) error
	updateFn        func(ctx context.Context, p *domain.UserProfile) error
	updateCurrentFn func(ctx context.Context, userID int64, weightKg, bodyFatPct *float64) error
}

func (m *mockProfileRepo) GetProfile(ctx context.Context, userID int64) (*domain.UserProfile, error) {
	if m.getFn != nil {
		return m.getFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockProfileRepo) CreateProfile(ctx context.Context, p *domain.UserProfile) error {
	if m.createFn != nil {
		return m.createFn(ctx, p)
	}
	return nil
}

func (m *mockProfileRepo) UpdateProfile(ctx context.Context, p *domain.UserProfile) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, p)
	}
	return nil
}

func (m *mockProfileRepo) UpdateCurrentValues(ctx context.Context, userID int64, weightKg, bodyFatPct *float64) error {
	if m.updateCurrentFn != nil {
		return m.updateCurrentFn(ctx, userID, weightKg, bodyFatPct)
	}
	return nil
}
