// Package config loads runtime configuration from the environment, with
// optional .env file support for local development.
package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the process needs to start.
type Config struct {
	Addr        string
	WebDir      string
	DatabaseURL string
	Development bool

	// OIDC single sign-on; SSO stays disabled while OIDCIssuer is empty.
	OIDCIssuer       string
	OIDCClientID     string
	OIDCClientSecret string
	OIDCRedirectURL  string
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present; real environment variables win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Addr:        env("ADDR", ":8080"),
		WebDir:      env("WEB_DIR", "web"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Development: os.Getenv("DEV") != "",

		OIDCIssuer:       os.Getenv("OIDC_ISSUER"),
		OIDCClientID:     os.Getenv("OIDC_CLIENT_ID"),
		OIDCClientSecret: os.Getenv("OIDC_CLIENT_SECRET"),
		OIDCRedirectURL:  env("OIDC_REDIRECT_URL", "http://localhost:8080/api/auth/sso/callback"),
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}
	if cfg.OIDCIssuer != "" && (cfg.OIDCClientID == "" || cfg.OIDCClientSecret == "") {
		return nil, errors.New("OIDC_CLIENT_ID and OIDC_CLIENT_SECRET are required when OIDC_ISSUER is set")
	}
	return cfg, nil
}

// SSOEnabled reports whether an OIDC issuer is configured.
func (c *Config) SSOEnabled() bool {
	return c.OIDCIssuer != ""
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
