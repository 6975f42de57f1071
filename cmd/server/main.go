package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"octofit/internal/adapters/apiclient"
	web "octofit/internal/adapters/http"
	"octofit/internal/adapters/http/perf"
	"octofit/internal/config"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

const shutdownTimeout = 10 * time.Second

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("failed to load .env: %v", err)
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	slog.SetDefault(newLogger(cfg))
	if os.Getenv("OCTOFIT_CSRF_KEY") == "" {
		slog.Warn("csrf_key_random", "hint", "set OCTOFIT_CSRF_KEY so perf reset forms survive restarts")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Performance instrumentation: one collector for page requests and upstream fetches
	collector := perf.NewCollector(perf.DefaultRingSize)
	client := apiclient.New(cfg.APIBaseURL, cfg.FetchTimeout, collector)

	handler, err := web.NewMux(ctx, web.Deps{
		Fetcher:        client,
		Collector:      collector,
		PerfDashboard:  cfg.PerfDashboard,
		StaticDir:      cfg.StaticDir,
		APIBaseURL:     client.BaseURL(),
		CSRFKey:        cfg.CSRFKey,
		SecureCookies:  cfg.IsProduction(),
		TrustedOrigins: cfg.TrustedOrigins,
		CORSOrigins:    cfg.CORSOrigins,
		RatePerSecond:  cfg.RatePerSecond,
		RateBurst:      cfg.RateBurst,
	})
	if err != nil {
		log.Fatalf("failed to build handler: %v", err)
	}

	// No WriteTimeout: list pages stream while the upstream fetch runs,
	// and the fetch has its own deadline.
	srv := &http.Server{
		Addr:              cfg.Address,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server_starting",
			"version", version,
			"addr", cfg.Address,
			"env", cfg.Env,
			"api_base_url", client.BaseURL(),
			"fetch_timeout", cfg.FetchTimeout.String(),
			"perf_dashboard", cfg.PerfDashboard,
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server failed: %v", err)
		}
	case <-ctx.Done():
		slog.Info("server_stopping")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown_failed", "error", err)
		}
	}
}

// newLogger emits text locally and JSON in production.
func newLogger(cfg config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
