package app

import (
	"context"
	"math"
	"time"

	"fittrack/internal/domain"
	"fittrack/internal/health"
)

// TrackerService validates and records daily measurements, keeping the
// profile's cached current values in sync with the entry streams.
type TrackerService struct {
	measurements domain.MeasurementRepository
	profiles     domain.ProfileRepository
}

// NewTrackerService creates a TrackerService backed by the given repositories.
func NewTrackerService(m domain.MeasurementRepository, p domain.ProfileRepository) *TrackerService {
	return &TrackerService{measurements: m, profiles: p}
}

// RecordWeight upserts the weight entry for today's local day and refreshes
// the profile's cached current weight. A second call on the same day
// replaces the stored value, it does not append a second entry. The entry
// upsert and the cache update are two separate writes; if the second fails
// the stream already holds the entry and series reads prefer the stream, so
// the stale cache is only cosmetic until the next successful record.
func (s *TrackerService) RecordWeight(ctx context.Context, userID int64, weightKg float64) (*domain.WeightEntry, error) {
	if userID <= 0 {
		return nil, domain.ErrUnauthorized
	}
	if weightKg < 1 || weightKg > 300 {
		return nil, domain.Invalid("weight", "must be between 1 and 300 kg")
	}
	now := time.Now()
	entry, err := s.measurements.UpsertWeightEntry(ctx, userID, domain.LocalDay(now), weightKg, now)
	if err != nil {
		return nil, err
	}
	if err := s.profiles.UpdateCurrentValues(ctx, userID, &weightKg, nil); err != nil {
		return nil, err
	}
	return entry, nil
}

// RecordBodyFat upserts the body-fat entry for today's local day and
// refreshes the profile's cached current body fat, with the same
// upsert-by-day and dual-write contract as RecordWeight.
func (s *TrackerService) RecordBodyFat(ctx context.Context, userID int64, bodyFatPct float64) (*domain.BodyFatEntry, error) {
	if userID <= 0 {
		return nil, domain.ErrUnauthorized
	}
	if bodyFatPct <= 0 || bodyFatPct > 100 {
		return nil, domain.Invalid("bodyFat", "must be between 0 and 100")
	}
	now := time.Now()
	entry, err := s.measurements.UpsertBodyFatEntry(ctx, userID, domain.LocalDay(now), bodyFatPct, now)
	if err != nil {
		return nil, err
	}
	if err := s.profiles.UpdateCurrentValues(ctx, userID, nil, &bodyFatPct); err != nil {
		return nil, err
	}
	return entry, nil
}

// RecordBodyFatNavy derives a body-fat percentage from circumference
// measurements using the profile's gender and height, rounds it to one
// decimal, and records it through the same path as a manual entry — only a
// final percentage is ever stored.
func (s *TrackerService) RecordBodyFatNavy(ctx context.Context, userID int64, waistCm, neckCm, hipCm float64) (*domain.BodyFatEntry, error) {
	if userID <= 0 {
		return nil, domain.ErrUnauthorized
	}
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.Invalid("profile", "gender and height are required for the navy method")
	}
	pct, err := health.BodyFatNavy(profile.Gender, waistCm, neckCm, hipCm, profile.HeightCm)
	if err != nil {
		return nil, err
	}
	pct = math.Round(pct*10) / 10
	return s.RecordBodyFat(ctx, userID, pct)
}

// HasEntryToday reports whether the given metric stream already holds an
// entry for today's local day.
func (s *TrackerService) HasEntryToday(ctx context.Context, userID int64, metric domain.Metric) (bool, error) {
	if userID <= 0 {
		return false, domain.ErrUnauthorized
	}
	today := domain.LocalDay(time.Now())
	switch metric {
	case domain.MetricWeight:
		e, err := s.measurements.WeightEntryForLocalDay(ctx, userID, today)
		if err != nil {
			return false, err
		}
		return e != nil, nil
	case domain.MetricBodyFat:
		e, err := s.measurements.BodyFatEntryForLocalDay(ctx, userID, today)
		if err != nil {
			return false, err
		}
		return e != nil, nil
	default:
		return false, domain.Invalid("metric", `must be "weight" or "bodyFat"`)
	}
}
