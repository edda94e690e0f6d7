package domain

import (
	"context"
	"time"
)

// Metric identifies one of the two measurement streams.
type Metric string

// Measurement streams.
const (
	MetricWeight  Metric = "weight"
	MetricBodyFat Metric = "bodyFat"
)

// ParseMetric validates a raw metric name.
func ParseMetric(s string) (Metric, error) {
	switch m := Metric(s); m {
	case MetricWeight, MetricBodyFat:
		return m, nil
	}
	return "", Invalid("metric", `must be "weight" or "bodyFat"`)
}

// WeightEntry represents a single weight measurement. There is at most one
// entry per user per local calendar day; recording again on the same day
// overwrites the value rather than appending a second row.
type WeightEntry struct {
	UserID    int64     `json:"userId"`
	Day       string    `json:"day"`
	WeightKg  float64   `json:"weightKg"`
	CreatedAt time.Time `json:"createdAt"`
}

// BodyFatEntry represents a single body-fat percentage measurement, with the
// same upsert-by-day rule as WeightEntry.
type BodyFatEntry struct {
	UserID     int64     `json:"userId"`
	Day        string    `json:"day"`
	BodyFatPct float64   `json:"bodyFatPct"`
	CreatedAt  time.Time `json:"createdAt"`
}

// MeasurementRepository is the port for measurement persistence. Entries are
// keyed by (user, local day); upserts replace the value for an existing day.
type MeasurementRepository interface {
	UpsertWeightEntry(ctx context.Context, userID int64, day string, weightKg float64, recordedAt time.Time) (*WeightEntry, error)
	UpsertBodyFatEntry(ctx context.Context, userID int64, day string, bodyFatPct float64, recordedAt time.Time) (*BodyFatEntry, error)
	ListWeightEntries(ctx context.Context, userID int64) ([]WeightEntry, error)
	ListBodyFatEntries(ctx context.Context, userID int64) ([]BodyFatEntry, error)
	WeightEntryForLocalDay(ctx context.Context, userID int64, localDay string) (*WeightEntry, error)
	BodyFatEntryForLocalDay(ctx context.Context, userID int64, localDay string) (*BodyFatEntry, error)
}
