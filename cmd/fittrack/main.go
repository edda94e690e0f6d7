package main

import (
	"context"
	"errors"
	"net/http"

	adapthttp "fittrack/internal/adapter/http"
	"fittrack/internal/adapter/postgres"
	"fittrack/internal/app"
	"fittrack/internal/config"
	"fittrack/pkg/logger"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

func main() {
	log := logger.New()
	defer func() { _ = log.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalw("config", "err", err)
	}
	if cfg.Development {
		log = logger.NewDevelopment()
	}

	db, err := postgres.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalw("db open", "err", err)
	}
	defer func() { _ = db.Close() }()

	sessionRepo := postgres.NewSessionRepo(db)

	trackerSvc := app.NewTrackerService(db, db)
	seriesSvc := app.NewSeriesService(db, db)
	profileSvc := app.NewProfileService(db)
	authSvc := app.NewAuthService(db, sessionRepo, db)

	srv := adapthttp.New(trackerSvc, seriesSvc, profileSvc, authSvc, log.SugaredLogger, cfg.WebDir)

	if cfg.SSOEnabled() {
		provider, err := oidc.NewProvider(context.Background(), cfg.OIDCIssuer)
		if err != nil {
			log.Fatalw("oidc provider", "err", err)
		}
		srv.WithOIDC(adapthttp.OIDCConfig{
			Enabled:  true,
			Provider: provider,
			OAuth2Config: &oauth2.Config{
				ClientID:     cfg.OIDCClientID,
				ClientSecret: cfg.OIDCClientSecret,
				RedirectURL:  cfg.OIDCRedirectURL,
				Endpoint:     provider.Endpoint(),
				Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
			},
		})
		log.Infow("sso enabled", "issuer", cfg.OIDCIssuer)
	}

	log.Infow("listening", "addr", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, srv.Handler()); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalw("server", "err", err)
	}
}
