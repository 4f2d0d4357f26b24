// Package config loads application configuration from the environment,
// optionally seeded from a .env file.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every runtime setting for the server.
type Config struct {
	AppEnv        string
	Port          string
	DBPath        string
	SessionSecret string
	SessionTTL    time.Duration
	CookieName    string
	CookieSecure  bool
	CORSOrigin    string
}

// Load reads configuration from environment variables. A .env file in the
// working directory is loaded first if present; real environment variables
// take precedence over it.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, relying on environment variables")
	}

	ttlHours := 24
	if v := os.Getenv("SESSION_TTL_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			ttlHours = n
		} else {
			slog.Warn("Invalid SESSION_TTL_HOURS, using default", "value", v, "default_hours", ttlHours)
		}
	}

	appEnv := getEnv("APP_ENV", "development")

	// The session cookie is Secure everywhere except local development,
	// which runs on plain http. COOKIE_SECURE overrides either way.
	cookieSecure := appEnv != "development"
	if v := os.Getenv("COOKIE_SECURE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cookieSecure = b
		} else {
			slog.Warn("Invalid COOKIE_SECURE, using default", "value", v, "default", cookieSecure)
		}
	}

	return &Config{
		AppEnv:        appEnv,
		Port:          getEnv("PORT", "8080"),
		DBPath:        getEnv("DB_PATH", "./data/medtrack.db"),
		SessionSecret: getEnv("SESSION_SECRET", "dev-only-insecure-secret"),
		SessionTTL:    time.Duration(ttlHours) * time.Hour,
		CookieName:    getEnv("SESSION_COOKIE", "medtrack_session"),
		CookieSecure:  cookieSecure,
		CORSOrigin:    getEnv("CORS_ORIGIN", "http://127.0.0.1:8080"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
