package domain

import "time"

const kgToLb = 2.2046226218

// ConvertWeight converts a weight value between "kg" and "lb".
// Returns v unchanged if from == to or if the units are unrecognised.
func ConvertWeight(v float64, from, to string) float64 {
	if from == to {
		return v
	}
	if from == "kg" && to == "lb" {
		return v * kgToLb
	}
	if from == "lb" && to == "kg" {
		return v / kgToLb
	}
	return v
}

// LocalDay formats t as the observer's local calendar day ("2006-01-02").
// Bucketing by the local day rather than the UTC day keeps entries recorded
// near midnight on the day the user actually saw on the calendar.
func LocalDay(t time.Time) string {
	return t.In(time.Local).Format("2006-01-02")
}
