package health

import (
	"math"

	"fittrack/internal/domain"
)

// BodyFatNavy estimates body-fat percentage from circumference measurements
// using the US Navy method, formula family 495/(...) - 450:
//
//	male:   495 / (1.0324 - 0.19077*log10(waist-neck) + 0.15456*log10(height)) - 450
//	female: 495 / (1.29579 - 0.35004*log10(waist+hip-neck) + 0.22100*log10(height)) - 450
//
// All inputs are centimeters. Hip is only used (and required) for females.
// The logarithm arguments must be positive, so waist must exceed neck for
// males and waist+hip must exceed neck for females; violations return a
// validation error before anything is computed. The result is not clamped
// to [0,100] — implausible inputs surface implausible percentages and the
// caller decides whether to flag them.
func BodyFatNavy(gender domain.Gender, waistCm, neckCm, hipCm, heightCm float64) (float64, error) {
	if heightCm <= 0 {
		return 0, domain.Invalid("height", "must be a positive number")
	}
	if waistCm <= 0 {
		return 0, domain.Invalid("waist", "must be a positive number")
	}
	if neckCm <= 0 {
		return 0, domain.Invalid("neck", "must be a positive number")
	}

	switch gender {
	case domain.Male:
		if waistCm-neckCm <= 0 {
			return 0, domain.Invalid("waist", "waist circumference must be greater than neck circumference")
		}
		return 495/(1.0324-0.19077*math.Log10(waistCm-neckCm)+0.15456*math.Log10(heightCm)) - 450, nil
	case domain.Female:
		if hipCm <= 0 {
			return 0, domain.Invalid("hip", "hip circumference is required for females")
		}
		if waistCm+hipCm-neckCm <= 0 {
			return 0, domain.Invalid("waist", "combined waist and hip circumference must be greater than neck circumference")
		}
		return 495/(1.29579-0.35004*math.Log10(waistCm+hipCm-neckCm)+0.22100*math.Log10(heightCm)) - 450, nil
	default:
		return 0, domain.Invalid("gender", `must be "male" or "female"`)
	}
}

// BodyFatRange is one row of the healthy body-fat reference table. Max is
// exclusive; a zero Max means the range is open-ended.
type BodyFatRange struct {
	Label string  `json:"label"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

var (
	maleBodyFatRanges = []BodyFatRange{
		{Label: "Essential fat", Min: 2, Max: 6},
		{Label: "Athletes", Min: 6, Max: 14},
		{Label: "Fitness", Min: 14, Max: 18},
		{Label: "Average", Min: 18, Max: 25},
		{Label: "Obese", Min: 25},
	}
	femaleBodyFatRanges = []BodyFatRange{
		{Label: "Essential fat", Min: 10, Max: 14},
		{Label: "Athletes", Min: 14, Max: 21},
		{Label: "Fitness", Min: 21, Max: 25},
		{Label: "Average", Min: 25, Max: 32},
		{Label: "Obese", Min: 32},
	}
)

// BodyFatRanges returns the gender-specific reference table for display.
func BodyFatRanges(gender domain.Gender) []BodyFatRange {
	if gender == domain.Female {
		return femaleBodyFatRanges
	}
	return maleBodyFatRanges
}

// ClassifyBodyFat looks up the reference range label for a percentage.
// Values below the essential-fat floor return an empty label.
func ClassifyBodyFat(gender domain.Gender, pct float64) string {
	for _, r := range BodyFatRanges(gender) {
		if pct >= r.Min && (r.Max == 0 || pct < r.Max) {
			return r.Label
		}
	}
	return ""
}
