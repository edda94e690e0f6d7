package app

import (
	"context"
	"time"

	"fittrack/internal/domain"
)

// SeriesService recomputes the merged weight/body-fat series for chart and
// history views. It holds no state of its own: every call re-reads the
// streams and profile and runs the pure merge, so it is safe to invoke on
// each update notification.
type SeriesService struct {
	measurements domain.MeasurementRepository
	profiles     domain.ProfileRepository
}

// NewSeriesService creates a SeriesService backed by the given repositories.
func NewSeriesService(m domain.MeasurementRepository, p domain.ProfileRepository) *SeriesService {
	return &SeriesService{measurements: m, profiles: p}
}

func (s *SeriesService) merged(ctx context.Context, userID int64) ([]domain.MergedPoint, error) {
	weights, err := s.measurements.ListWeightEntries(ctx, userID)
	if err != nil {
		return nil, err
	}
	bodyFats, err := s.measurements.ListBodyFatEntries(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return domain.MergeSeries(weights, bodyFats, domain.BaselineFrom(profile)), nil
}

// ChartData returns the merged series ascending by day for chart rendering,
// with the profile's goal values attached to every point as reference lines.
func (s *SeriesService) ChartData(ctx context.Context, userID int64) ([]domain.MergedPoint, error) {
	if userID <= 0 {
		return nil, domain.ErrUnauthorized
	}
	return s.merged(ctx, userID)
}

// History returns the merged series descending by day for history tables,
// optionally restricted to a single exact local day ("2006-01-02"). Sparse
// or empty data yields an empty slice, never an error.
func (s *SeriesService) History(ctx context.Context, userID int64, dayFilter string) ([]domain.MergedPoint, error) {
	if userID <= 0 {
		return nil, domain.ErrUnauthorized
	}
	if dayFilter != "" {
		if _, err := time.ParseInLocation("2006-01-02", dayFilter, time.Local); err != nil {
			return nil, domain.Invalid("date", `must be a calendar date formatted "2006-01-02"`)
		}
	}
	points, err := s.merged(ctx, userID)
	if err != nil {
		return nil, err
	}
	return domain.Descending(points, dayFilter), nil
}
