package health

import "fittrack/internal/domain"

// ActivityLevel scales BMR up to total daily energy expenditure.
type ActivityLevel string

// Recognised activity levels.
const (
	Sedentary ActivityLevel = "sedentary"
	Light     ActivityLevel = "light"
	Moderate  ActivityLevel = "moderate"
	Active    ActivityLevel = "active"
	Extra     ActivityLevel = "extra"
)

var activityMultipliers = map[ActivityLevel]float64{
	Sedentary: 1.2,
	Light:     1.375,
	Moderate:  1.55,
	Active:    1.725,
	Extra:     1.9,
}

// BMR computes the basal metabolic rate via the Harris-Benedict equations:
//
//	male:   88.362 + 13.397*weight + 4.799*height - 5.677*age
//	female: 447.593 + 9.247*weight + 3.098*height - 4.330*age
func BMR(weightKg, heightCm float64, age int, gender domain.Gender) float64 {
	if gender == domain.Female {
		return 447.593 + 9.247*weightKg + 3.098*heightCm - 4.330*float64(age)
	}
	return 88.362 + 13.397*weightKg + 4.799*heightCm - 5.677*float64(age)
}

// TDEE computes total daily energy expenditure as BMR times the activity
// multiplier. An unknown activity level is a configuration error and fails
// fast rather than silently defaulting.
func TDEE(weightKg, heightCm float64, age int, gender domain.Gender, activity ActivityLevel) (float64, error) {
	mult, ok := activityMultipliers[activity]
	if !ok {
		return 0, domain.Invalid("activityLevel", `must be one of "sedentary", "light", "moderate", "active", "extra"`)
	}
	return BMR(weightKg, heightCm, age, gender) * mult, nil
}
