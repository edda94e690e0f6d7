package app

import (
	"context"
	"math"

	"fittrack/internal/domain"
	"fittrack/internal/health"
)

// ProfileService manages profile reads, edits and the derived health
// summary.
type ProfileService struct {
	profiles domain.ProfileRepository
}

// NewProfileService creates a ProfileService backed by the given repository.
func NewProfileService(p domain.ProfileRepository) *ProfileService {
	return &ProfileService{profiles: p}
}

// Get returns the user's profile, or nil if none exists.
func (s *ProfileService) Get(ctx context.Context, userID int64) (*domain.UserProfile, error) {
	if userID <= 0 {
		return nil, domain.ErrUnauthorized
	}
	return s.profiles.GetProfile(ctx, userID)
}

// Update validates and persists edits to the profile's editable fields.
// The cached current values are owned by the tracker and are not touched
// here.
func (s *ProfileService) Update(ctx context.Context, userID int64, p *domain.UserProfile) error {
	if userID <= 0 {
		return domain.ErrUnauthorized
	}
	p.UserID = userID
	if err := p.Validate(); err != nil {
		return err
	}
	return s.profiles.UpdateProfile(ctx, p)
}

// Summary is the derived health snapshot for the profile page. BMI is never
// stored anywhere; it is computed on demand from the cached current weight
// and the profile height.
type Summary struct {
	Goal              domain.GoalType      `json:"goal"`
	CurrentWeightKg   *float64             `json:"currentWeightKg"`
	CurrentBodyFatPct *float64             `json:"currentBodyFatPct"`
	GoalWeightKg      float64              `json:"goalWeightKg"`
	GoalBodyFatPct    float64              `json:"goalBodyFatPct"`
	WeightToGoalKg    *float64             `json:"weightToGoalKg"`
	BMI               *float64             `json:"bmi"`
	BMR               *float64             `json:"bmr"`
	BMICategory       health.BMICategory   `json:"bmiCategory,omitempty"`
	BodyFatCategory   string               `json:"bodyFatCategory,omitempty"`
	BodyFatRanges     []health.BodyFatRange `json:"bodyFatRanges"`
}

// Summarize builds the health summary for a user. Missing measurements
// simply leave the derived fields nil; a missing profile returns nil.
func (s *ProfileService) Summarize(ctx context.Context, userID int64) (*Summary, error) {
	if userID <= 0 {
		return nil, domain.ErrUnauthorized
	}
	p, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}

	sum := &Summary{
		Goal:              p.Goal,
		CurrentWeightKg:   p.CurrentWeightKg,
		CurrentBodyFatPct: p.CurrentBodyFatPct,
		GoalWeightKg:      p.GoalWeightKg,
		GoalBodyFatPct:    p.GoalBodyFatPct,
		BodyFatRanges:     health.BodyFatRanges(p.Gender),
	}
	if p.CurrentWeightKg != nil && p.HeightCm > 0 {
		bmi := health.BMI(*p.CurrentWeightKg, p.HeightCm)
		sum.BMI = &bmi
		sum.BMICategory = health.ClassifyBMI(bmi)
		if p.Age > 0 {
			bmr := health.BMR(*p.CurrentWeightKg, p.HeightCm, p.Age, p.Gender)
			sum.BMR = &bmr
		}
	}
	if p.CurrentWeightKg != nil && p.GoalWeightKg > 0 {
		toGo := math.Abs(*p.CurrentWeightKg - p.GoalWeightKg)
		sum.WeightToGoalKg = &toGo
	}
	if p.CurrentBodyFatPct != nil {
		sum.BodyFatCategory = health.ClassifyBodyFat(p.Gender, *p.CurrentBodyFatPct)
	}
	return sum, nil
}
