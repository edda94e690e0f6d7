package app_test

import (
	"context"
	"math"
	"testing"

	"fittrack/internal/app"
	"fittrack/internal/domain"
	"fittrack/internal/health"
)

func TestSummarize(t *testing.T) {
	weight := 70.0
	fat := 20.0
	profiles := &mockProfileRepo{
		getFn: func(_ context.Context, _ int64) (*domain.UserProfile, error) {
			return &domain.UserProfile{
				UserID: 1, Age: 30, Gender: domain.Male, HeightCm: 175,
				Goal: domain.GoalWeightLoss, GoalWeightKg: 65, GoalBodyFatPct: 15,
				CurrentWeightKg: &weight, CurrentBodyFatPct: &fat,
			}, nil
		},
	}
	svc := app.NewProfileService(profiles)

	sum, err := svc.Summarize(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum == nil {
		t.Fatal("expected a summary")
	}
	if sum.BMI == nil || math.Abs(*sum.BMI-22.857) > 0.001 {
		t.Errorf("expected BMI ~22.857, got %v", sum.BMI)
	}
	if sum.BMICategory != health.NormalWeight {
		t.Errorf("expected Normal weight, got %q", sum.BMICategory)
	}
	if sum.BodyFatCategory != "Average" {
		t.Errorf("expected Average body fat, got %q", sum.BodyFatCategory)
	}
	if sum.WeightToGoalKg == nil || *sum.WeightToGoalKg != 5 {
		t.Errorf("expected 5 kg to go, got %v", sum.WeightToGoalKg)
	}
	wantBMR := health.BMR(70, 175, 30, domain.Male)
	if sum.BMR == nil || math.Abs(*sum.BMR-wantBMR) > 0.001 {
		t.Errorf("expected BMR %v, got %v", wantBMR, sum.BMR)
	}
	if len(sum.BodyFatRanges) != 5 {
		t.Errorf("expected reference table attached, got %d rows", len(sum.BodyFatRanges))
	}
}

func TestSummarize_NoMeasurementsYet(t *testing.T) {
	profiles := &mockProfileRepo{
		getFn: func(_ context.Context, _ int64) (*domain.UserProfile, error) {
			return &domain.UserProfile{UserID: 1, Gender: domain.Female, HeightCm: 165, Goal: domain.GoalMaintain}, nil
		},
	}
	svc := app.NewProfileService(profiles)

	sum, err := svc.Summarize(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.BMI != nil || sum.BMICategory != "" || sum.BodyFatCategory != "" || sum.WeightToGoalKg != nil {
		t.Errorf("expected empty derived fields, got %+v", sum)
	}
}

func TestSummarize_NoProfile(t *testing.T) {
	svc := app.NewProfileService(&mockProfileRepo{})
	sum, err := svc.Summarize(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum != nil {
		t.Fatalf("expected nil summary, got %+v", sum)
	}
}

func TestProfileUpdate_Validation(t *testing.T) {
	svc := app.NewProfileService(&mockProfileRepo{})
	bad := &domain.UserProfile{Name: "bob", Age: 150, Gender: domain.Male, HeightCm: 180, Goal: domain.GoalMaintain}
	if err := svc.Update(context.Background(), 1, bad); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestProfileUpdate_SetsOwner(t *testing.T) {
	var saved *domain.UserProfile
	profiles := &mockProfileRepo{
		updateFn: func(_ context.Context, p *domain.UserProfile) error {
			saved = p
			return nil
		},
	}
	svc := app.NewProfileService(profiles)
	p := &domain.UserProfile{Name: "bob", Email: "b@c.d", Age: 40, Gender: domain.Male, HeightCm: 180, Goal: domain.GoalWeightGain}
	if err := svc.Update(context.Background(), 7, p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved == nil || saved.UserID != 7 {
		t.Fatalf("expected profile bound to user 7, got %+v", saved)
	}
}
