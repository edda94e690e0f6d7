package domain

import (
	"context"
	"time"
)

// Gender selects the formula family for the body composition equations. The
// US Navy method only defines male and female variants, so this stays a
// closed two-value enum; formula selection dispatches on it at the formula
// boundary.
type Gender string

// Recognised genders.
const (
	Male   Gender = "male"
	Female Gender = "female"
)

// ParseGender validates a raw gender string.
func ParseGender(s string) (Gender, error) {
	switch g := Gender(s); g {
	case Male, Female:
		return g, nil
	}
	return "", Invalid("gender", `must be "male" or "female"`)
}

// GoalType describes what the user is working toward.
type GoalType string

// Recognised goal types.
const (
	GoalWeightLoss GoalType = "weight_loss"
	GoalMaintain   GoalType = "maintain"
	GoalWeightGain GoalType = "weight_gain"
)

// ParseGoalType validates a raw goal type string.
func ParseGoalType(s string) (GoalType, error) {
	switch g := GoalType(s); g {
	case GoalWeightLoss, GoalMaintain, GoalWeightGain:
		return g, nil
	}
	return "", Invalid("goal", `must be "weight_loss", "maintain" or "weight_gain"`)
}

// UserProfile holds a user's attributes and goal settings.
//
// CurrentWeightKg and CurrentBodyFatPct are denormalized caches of the most
// recent entry in the respective measurement stream (or a user-supplied
// baseline before any entries exist). The entry upsert and the cache update
// are two separate writes, so a failure between them leaves the cache stale
// relative to the stream; readers that already hold the streams must prefer
// the streams and use the cache only as a baseline.
type UserProfile struct {
	UserID            int64     `json:"userId"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	Age               int       `json:"age"`
	Gender            Gender    `json:"gender"`
	HeightCm          float64   `json:"heightCm"`
	GoalWeightKg      float64   `json:"goalWeightKg"`
	GoalBodyFatPct    float64   `json:"goalBodyFatPct"`
	Goal              GoalType  `json:"goal"`
	CurrentWeightKg   *float64  `json:"currentWeightKg"`
	CurrentBodyFatPct *float64  `json:"currentBodyFatPct"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// Validate checks the profile's editable fields.
func (p *UserProfile) Validate() error {
	if p.Name == "" {
		return Invalid("name", "is required")
	}
	if p.Age < 1 || p.Age > 120 {
		return Invalid("age", "must be between 1 and 120")
	}
	if _, err := ParseGender(string(p.Gender)); err != nil {
		return err
	}
	if p.HeightCm < 50 || p.HeightCm > 250 {
		return Invalid("height", "must be between 50 and 250 cm")
	}
	if p.GoalWeightKg < 0 || p.GoalWeightKg > 300 {
		return Invalid("goalWeight", "must be between 0 and 300 kg")
	}
	if p.GoalBodyFatPct < 0 || p.GoalBodyFatPct > 100 {
		return Invalid("goalBodyFat", "must be between 0 and 100")
	}
	if _, err := ParseGoalType(string(p.Goal)); err != nil {
		return err
	}
	return nil
}

// ProfileRepository is the port for profile persistence.
type ProfileRepository interface {
	GetProfile(ctx context.Context, userID int64) (*UserProfile, error)
	CreateProfile(ctx context.Context, p *UserProfile) error
	UpdateProfile(ctx context.Context, p *UserProfile) error
	// UpdateCurrentValues overwrites the cached snapshot fields; a nil
	// argument leaves that field untouched.
	UpdateCurrentValues(ctx context.Context, userID int64, weightKg, bodyFatPct *float64) error
}
