package adapthttp

import (
	"net/http"

	"fittrack/internal/app"

	"github.com/coreos/go-oidc/v3/oidc"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// OIDCConfig carries the single-sign-on wiring. Enabled is false when no
// issuer is configured, in which case the SSO endpoints answer 404.
type OIDCConfig struct {
	Enabled      bool
	Provider     *oidc.Provider
	OAuth2Config *oauth2.Config
}

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	tracker *app.TrackerService
	series  *app.SeriesService
	profile *app.ProfileService
	auth    *app.AuthService
	log     *zap.SugaredLogger
	webDir  string

	oidcConfig  OIDCConfig
	disableAuth bool
}

// New creates a Server wired to the given application services.
func New(ts *app.TrackerService, ss *app.SeriesService, ps *app.ProfileService, as *app.AuthService, log *zap.SugaredLogger, webDir string) *Server {
	return &Server{tracker: ts, series: ss, profile: ps, auth: as, log: log, webDir: webDir}
}

// WithOIDC enables single sign-on with the given provider configuration.
func (s *Server) WithOIDC(cfg OIDCConfig) *Server {
	s.oidcConfig = cfg
	return s
}

// WithoutAuth disables the auth middleware. Requests run as a fixed user;
// only for tests.
func (s *Server) WithoutAuth() *Server {
	s.disableAuth = true
	return s
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	api.HandleFunc("/auth/register", s.handleRegister)
	api.HandleFunc("/auth/login", s.handleLogin)
	api.HandleFunc("/auth/logout", s.handleLogout)
	api.HandleFunc("/auth/config", s.handleAuthConfig)
	api.HandleFunc("/auth/sso/login", s.handleSSOLogin)
	api.HandleFunc("/auth/sso/callback", s.handleSSOCallback)

	// Calculators are stateless; no session required.
	api.HandleFunc("/calc/bmi", s.handleCalcBMI)
	api.HandleFunc("/calc/bodyfat", s.handleCalcBodyFat)
	api.HandleFunc("/calc/tdee", s.handleCalcTDEE)

	protected := http.NewServeMux()
	protected.HandleFunc("/tracker/weight", s.handleTrackerWeight)
	protected.HandleFunc("/tracker/bodyfat", s.handleTrackerBodyFat)
	protected.HandleFunc("/tracker/today", s.handleTrackerToday)
	protected.HandleFunc("/tracker/history", s.handleTrackerHistory)
	protected.HandleFunc("/tracker/chart", s.handleTrackerChart)
	protected.HandleFunc("/profile", s.handleProfile)
	protected.HandleFunc("/profile/summary", s.handleProfileSummary)

	authed := s.authMiddleware(protected)
	api.Handle("/tracker/", authed)
	api.Handle("/profile", authed)
	api.Handle("/profile/", authed)

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", api))
	root.Handle("/", spaFromDisk(s.webDir))

	return s.loggingMiddleware(withNoCache(root))
}
