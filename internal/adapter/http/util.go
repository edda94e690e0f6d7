package adapthttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path"
	"time"

	"fittrack/internal/app"
	"fittrack/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]any{"error": err.Error()})
}

// writeServiceError maps kinded service errors to HTTP statuses: validation
// failures are the client's fault, auth failures are 401, the rest is 500.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case domain.IsValidation(err):
		writeError(w, http.StatusBadRequest, err)
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, app.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, err)
	case errors.Is(err, app.ErrEmailTaken):
		writeError(w, http.StatusConflict, err)
	default:
		writeError(w, http.StatusInternalServerError, err)
	}
}

func parseJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	return nil
}

// weightUnit validates the optional ?unit= query parameter; kg is the
// default.
func weightUnit(r *http.Request) (string, error) {
	unit := r.URL.Query().Get("unit")
	switch unit {
	case "":
		return "kg", nil
	case "kg", "lb":
		return unit, nil
	default:
		return "", domain.Invalid("unit", `must be "kg" or "lb"`)
	}
}

// convertSeriesUnits returns a copy of the series with weight values and
// goals expressed in the requested display unit. Stored values are always kg.
func convertSeriesUnits(points []domain.MergedPoint, unit string) []domain.MergedPoint {
	if unit == "kg" {
		return points
	}
	out := make([]domain.MergedPoint, len(points))
	for i, p := range points {
		if p.Weight != nil {
			v := domain.ConvertWeight(*p.Weight, "kg", unit)
			p.Weight = &v
		}
		p.GoalWeight = domain.ConvertWeight(p.GoalWeight, "kg", unit)
		out[i] = p
	}
	return out
}

func localDayString(t time.Time) string {
	return domain.LocalDay(t)
}

func withNoCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}

func spaFromDisk(dir string) http.Handler {
	fileServer := http.FileServer(http.Dir(dir))
	indexPath := path.Join(dir, "index.html")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqPath := path.Clean(r.URL.Path)
		if reqPath == "/" {
			http.ServeFile(w, r, indexPath)
			return
		}

		staticPath := path.Join(dir, reqPath)
		if _, err := os.Stat(staticPath); err == nil {
			fileServer.ServeHTTP(w, r)
			return
		}

		http.ServeFile(w, r, indexPath)
	})
}
