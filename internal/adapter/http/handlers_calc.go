package adapthttp

import (
	"net/http"

	"fittrack/internal/domain"
	"fittrack/internal/health"
)

func (s *Server) handleCalcBMI(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var body struct {
		WeightKg float64 `json:"weightKg"`
		HeightCm float64 `json:"heightCm"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if body.WeightKg <= 0 || body.HeightCm <= 0 {
		writeServiceError(w, domain.Invalid("weight", "weight and height must be positive"))
		return
	}

	bmi := health.BMI(body.WeightKg, body.HeightCm)
	writeJSON(w, http.StatusOK, map[string]any{
		"bmi":      bmi,
		"category": health.ClassifyBMI(bmi),
	})
}

func (s *Server) handleCalcBodyFat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var body struct {
		Gender   string  `json:"gender"`
		WaistCm  float64 `json:"waistCm"`
		NeckCm   float64 `json:"neckCm"`
		HipCm    float64 `json:"hipCm"`
		HeightCm float64 `json:"heightCm"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	gender, err := domain.ParseGender(body.Gender)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	pct, err := health.BodyFatNavy(gender, body.WaistCm, body.NeckCm, body.HipCm, body.HeightCm)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"bodyFatPct": pct,
		"category":   health.ClassifyBodyFat(gender, pct),
		"ranges":     health.BodyFatRanges(gender),
	})
}

func (s *Server) handleCalcTDEE(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var body struct {
		WeightKg      float64 `json:"weightKg"`
		HeightCm      float64 `json:"heightCm"`
		Age           int     `json:"age"`
		Gender        string  `json:"gender"`
		ActivityLevel string  `json:"activityLevel"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	gender, err := domain.ParseGender(body.Gender)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if body.WeightKg <= 0 || body.HeightCm <= 0 || body.Age <= 0 {
		writeServiceError(w, domain.Invalid("weight", "weight, height and age must be positive"))
		return
	}

	tdee, err := health.TDEE(body.WeightKg, body.HeightCm, body.Age, gender, health.ActivityLevel(body.ActivityLevel))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"bmr":  health.BMR(body.WeightKg, body.HeightCm, body.Age, gender),
		"tdee": tdee,
	})
}
