package main

import (
	"log/slog"
	"net/http"
	"os"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"medtrack/internal/auth"
	"medtrack/internal/config"
	"medtrack/internal/middleware"
	"medtrack/internal/storage/sqlite"
	"medtrack/internal/web"
	"medtrack/pkg/logging"
)

func main() {
	logging.Setup()
	cfg := config.Load()

	if cfg.SessionSecret == "dev-only-insecure-secret" {
		slog.Warn("SESSION_SECRET not set, using the insecure development default")
	}

	// Initialize SQLite storage
	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	sessions := auth.NewSessionManager(store, cfg.SessionSecret, cfg.SessionTTL)

	server, err := web.New(store, sessions, cfg.CookieName, cfg.CookieSecure, slog.Default())
	if err != nil {
		slog.Error("Failed to build route layer", "error", err)
		os.Exit(1)
	}

	// Middleware chain: logging outermost, then metrics, then CORS
	handler := middleware.Logging(middleware.Metrics(middleware.CORS(cfg.CORSOrigin)(server.Routes())))

	// Wrap with h2c for HTTP/2 without TLS
	h2cHandler := h2c.NewHandler(handler, &http2.Server{})

	addr := ":" + cfg.Port
	slog.Info("Server starting", "address", addr, "url", "http://localhost"+addr)
	if err := http.ListenAndServe(addr, h2cHandler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
