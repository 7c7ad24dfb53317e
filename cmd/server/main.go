package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mehak1404/splitwise/internal/api"
	"github.com/mehak1404/splitwise/internal/auth"
	"github.com/mehak1404/splitwise/internal/config"
	"github.com/mehak1404/splitwise/internal/ledger"
	"github.com/mehak1404/splitwise/internal/metrics"
	"github.com/mehak1404/splitwise/internal/middleware"
	"github.com/mehak1404/splitwise/internal/service"
	"github.com/mehak1404/splitwise/internal/storage/sqlite"
	"github.com/mehak1404/splitwise/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	expenseSvc := service.NewExpenseService(ledger.New(), store, m)
	if err := expenseSvc.Load(context.Background()); err != nil {
		slog.Error("Failed to restore ledger", "error", err)
		os.Exit(1)
	}

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
	authSvc := service.NewAuthService(auth.NewPasswordAuthenticator(store), jwtManager, expenseSvc)

	a := api.New(expenseSvc, authSvc, jwtManager, registry)
	handler := middleware.RequestLogging(a.Handler())

	// HTTP/2 without TLS for clients that speak h2c
	h2cHandler := h2c.NewHandler(handler, &http2.Server{})

	slog.Info("Server starting", "address", cfg.Bind)
	if err := http.ListenAndServe(cfg.Bind, h2cHandler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
