package health_test

import (
	"testing"

	"fittrack/internal/domain"
	"fittrack/internal/health"
)

func TestBMR(t *testing.T) {
	male := health.BMR(70, 175, 30, domain.Male)
	wantMale := 88.362 + 13.397*70 + 4.799*175 - 5.677*30
	if !almostEqual(male, wantMale, 1e-9) {
		t.Errorf("BMR(male) = %v; want %v", male, wantMale)
	}

	female := health.BMR(60, 165, 25, domain.Female)
	wantFemale := 447.593 + 9.247*60 + 3.098*165 - 4.330*25
	if !almostEqual(female, wantFemale, 1e-9) {
		t.Errorf("BMR(female) = %v; want %v", female, wantFemale)
	}
}

func TestTDEE(t *testing.T) {
	bmr := health.BMR(70, 175, 30, domain.Male)
	tests := []struct {
		activity health.ActivityLevel
		mult     float64
	}{
		{health.Sedentary, 1.2},
		{health.Light, 1.375},
		{health.Moderate, 1.55},
		{health.Active, 1.725},
		{health.Extra, 1.9},
	}
	for _, tc := range tests {
		t.Run(string(tc.activity), func(t *testing.T) {
			got, err := health.TDEE(70, 175, 30, domain.Male, tc.activity)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !almostEqual(got, bmr*tc.mult, 1e-9) {
				t.Errorf("TDEE(%s) = %v; want %v", tc.activity, got, bmr*tc.mult)
			}
		})
	}
}

func TestTDEE_UnknownActivityFailsFast(t *testing.T) {
	_, err := health.TDEE(70, 175, 30, domain.Male, health.ActivityLevel("couch"))
	if !domain.IsValidation(err) {
		t.Errorf("expected validation error for unknown activity level, got %v", err)
	}
}
