// Package health holds the pure metric formulas: BMI, US Navy body-fat
// estimation, Harris-Benedict TDEE, and the category tables used to label
// results. Nothing in here performs I/O.
package health

// BMICategory is a qualitative BMI classification.
type BMICategory string

// BMI categories, lower bound inclusive.
const (
	Underweight  BMICategory = "Underweight"
	NormalWeight BMICategory = "Normal weight"
	Overweight   BMICategory = "Overweight"
	Obese        BMICategory = "Obese"
)

// BMI computes the Body Mass Index for a weight in kilograms and a height in
// centimeters: weight / (height in meters)². Callers validate positivity;
// the function itself is total over positive reals.
func BMI(weightKg, heightCm float64) float64 {
	m := heightCm / 100
	return weightKg / (m * m)
}

// ClassifyBMI maps a BMI value to its category. Thresholds are half-open
// intervals with the lower bound inclusive: 18.5 is already Normal weight,
// 25 is already Overweight, 30 is already Obese.
func ClassifyBMI(bmi float64) BMICategory {
	switch {
	case bmi < 18.5:
		return Underweight
	case bmi < 25:
		return NormalWeight
	case bmi < 30:
		return Overweight
	default:
		return Obese
	}
}
