package domain

import "sort"

// Baseline seeds the merge with the profile's cached current values and
// carries the goal reference lines onto every point.
type Baseline struct {
	Weight      *float64
	BodyFat     *float64
	GoalWeight  float64
	GoalBodyFat float64
}

// BaselineFrom extracts a Baseline from a profile. A nil profile yields an
// empty baseline, which is a valid seed: the merged series then starts with
// nil values until the first observation.
func BaselineFrom(p *UserProfile) Baseline {
	if p == nil {
		return Baseline{}
	}
	return Baseline{
		Weight:      p.CurrentWeightKg,
		BodyFat:     p.CurrentBodyFatPct,
		GoalWeight:  p.GoalWeightKg,
		GoalBodyFat: p.GoalBodyFatPct,
	}
}

// MergedPoint is one day in the combined weight/body-fat series. Weight and
// BodyFat hold the value observed on the day or the last known value carried
// forward; nil means no observation and no baseline exist yet. The Observed
// flags tell direct measurements apart from carried-forward values.
type MergedPoint struct {
	Day             string   `json:"day"`
	Weight          *float64 `json:"weight"`
	BodyFat         *float64 `json:"bodyFat"`
	WeightObserved  bool     `json:"weightObserved"`
	BodyFatObserved bool     `json:"bodyFatObserved"`
	GoalWeight      float64  `json:"goalWeight"`
	GoalBodyFat     float64  `json:"goalBodyFat"`
}

// MergeSeries combines the two measurement streams into a single series
// ordered ascending by day. A day appears only if at least one metric was
// observed on it; the engine does not synthesize calendar-continuous points.
// A metric missing on an emitted day carries the last known value forward,
// seeded from the baseline, so the baseline only fills days that precede the
// first stored entry. Storage upserts one entry per day, but streams recorded
// before that rule may hold duplicates; the chronologically latest entry for
// a day wins.
//
// MergeSeries is a pure recomputation over the given snapshots and is safe
// to re-invoke on every update notification.
func MergeSeries(weights []WeightEntry, bodyFats []BodyFatEntry, base Baseline) []MergedPoint {
	weightByDay := make(map[string]WeightEntry, len(weights))
	for _, e := range weights {
		if cur, ok := weightByDay[e.Day]; !ok || e.CreatedAt.After(cur.CreatedAt) {
			weightByDay[e.Day] = e
		}
	}
	fatByDay := make(map[string]BodyFatEntry, len(bodyFats))
	for _, e := range bodyFats {
		if cur, ok := fatByDay[e.Day]; !ok || e.CreatedAt.After(cur.CreatedAt) {
			fatByDay[e.Day] = e
		}
	}

	days := make([]string, 0, len(weightByDay)+len(fatByDay))
	for d := range weightByDay {
		days = append(days, d)
	}
	for d := range fatByDay {
		if _, ok := weightByDay[d]; !ok {
			days = append(days, d)
		}
	}
	sort.Strings(days)

	lastWeight := base.Weight
	lastFat := base.BodyFat

	points := make([]MergedPoint, 0, len(days))
	for _, d := range days {
		p := MergedPoint{Day: d, GoalWeight: base.GoalWeight, GoalBodyFat: base.GoalBodyFat}
		if e, ok := weightByDay[d]; ok {
			v := e.WeightKg
			lastWeight = &v
			p.WeightObserved = true
		}
		if e, ok := fatByDay[d]; ok {
			v := e.BodyFatPct
			lastFat = &v
			p.BodyFatObserved = true
		}
		p.Weight = lastWeight
		p.BodyFat = lastFat
		points = append(points, p)
	}
	return points
}

// Descending returns a most-recent-first copy of an ascending series,
// optionally restricted to a single exact day. Filtering to a day with no
// observations yields an empty slice, not an error.
func Descending(points []MergedPoint, dayFilter string) []MergedPoint {
	out := make([]MergedPoint, 0, len(points))
	for i := len(points) - 1; i >= 0; i-- {
		if dayFilter != "" && points[i].Day != dayFilter {
			continue
		}
		out = append(out, points[i])
	}
	return out
}
