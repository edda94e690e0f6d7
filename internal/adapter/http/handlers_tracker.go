package adapthttp

import (
	"net/http"
	"time"

	"fittrack/internal/domain"
)

func (s *Server) handleTrackerWeight(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	user := userFromContext(r)

	var body struct {
		Value float64 `json:"value"`
		Unit  string  `json:"unit"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if body.Unit == "" {
		body.Unit = "kg"
	}
	if body.Unit != "kg" && body.Unit != "lb" {
		writeServiceError(w, domain.Invalid("unit", `must be "kg" or "lb"`))
		return
	}

	entry, err := s.tracker.RecordWeight(r.Context(), user.ID, domain.ConvertWeight(body.Value, body.Unit, "kg"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"today": localDayString(time.Now()), "entry": entry})
}

func (s *Server) handleTrackerBodyFat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	user := userFromContext(r)

	// A direct percentage records as-is; circumference measurements go
	// through the navy estimate using the profile's gender and height.
	var body struct {
		BodyFatPct *float64 `json:"bodyFatPct"`
		WaistCm    float64  `json:"waistCm"`
		NeckCm     float64  `json:"neckCm"`
		HipCm      float64  `json:"hipCm"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var (
		entry *domain.BodyFatEntry
		err   error
	)
	if body.BodyFatPct != nil {
		entry, err = s.tracker.RecordBodyFat(r.Context(), user.ID, *body.BodyFatPct)
	} else {
		entry, err = s.tracker.RecordBodyFatNavy(r.Context(), user.ID, body.WaistCm, body.NeckCm, body.HipCm)
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"today": localDayString(time.Now()), "entry": entry})
}

func (s *Server) handleTrackerToday(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	user := userFromContext(r)

	hasWeight, err := s.tracker.HasEntryToday(r.Context(), user.ID, domain.MetricWeight)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	hasBodyFat, err := s.tracker.HasEntryToday(r.Context(), user.ID, domain.MetricBodyFat)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"today":      localDayString(time.Now()),
		"hasWeight":  hasWeight,
		"hasBodyFat": hasBodyFat,
	})
}

func (s *Server) handleTrackerHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	user := userFromContext(r)

	unit, err := weightUnit(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	points, err := s.series.History(r.Context(), user.ID, r.URL.Query().Get("date"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"unit":  unit,
		"items": convertSeriesUnits(points, unit),
	})
}

func (s *Server) handleTrackerChart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	user := userFromContext(r)

	unit, err := weightUnit(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	points, err := s.series.ChartData(r.Context(), user.ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"unit":  unit,
		"today": localDayString(time.Now()),
		"items": convertSeriesUnits(points, unit),
	})
}
