// Package config loads dashboard settings from the environment.
package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// EnvProduction is the OCTOFIT_ENV value that enables production behaviour.
const EnvProduction = "production"

const (
	defaultAPIBaseURL   = "http://localhost:8000"
	defaultFetchTimeout = 30 * time.Second
	csrfKeyBytes        = 32
)

// Config captures runtime configuration values for the dashboard server.
type Config struct {
	Env            string
	Address        string
	StaticDir      string
	APIBaseURL     string
	FetchTimeout   time.Duration // 0 means the upstream call may wait forever
	LogLevel       slog.Level
	PerfDashboard  bool
	CSRFKey        []byte
	TrustedOrigins []string
	CORSOrigins    []string
	RatePerSecond  float64
	RateBurst      int
}

// IsProduction reports whether the server runs with production settings.
func (c Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// LoadDotEnv reads KEY=VALUE pairs from the given files into the process
// environment without overriding variables already set. Missing files are skipped.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// Load reads environment variables and applies defaults.
// PRE: LoadDotEnv has run if a .env file should apply
// POST: Returns a usable config, or an error naming the first bad variable
func Load() (Config, error) {
	cfg := Config{
		Env:            getEnv("OCTOFIT_ENV", "development"),
		Address:        getEnv("OCTOFIT_ADDR", ":8080"),
		StaticDir:      getEnv("OCTOFIT_STATIC_DIR", "static"),
		APIBaseURL:     resolveAPIBaseURL(),
		FetchTimeout:   getDurationEnv("OCTOFIT_FETCH_TIMEOUT", defaultFetchTimeout),
		TrustedOrigins: splitAndTrim(getEnv("OCTOFIT_TRUSTED_ORIGINS", "")),
		CORSOrigins:    splitAndTrim(getEnv("OCTOFIT_CORS_ORIGINS", "")),
		RatePerSecond:  getFloatEnv("OCTOFIT_RATE_LIMIT_RPS", 10),
		RateBurst:      getIntEnv("OCTOFIT_RATE_LIMIT_BURST", 40),
	}

	// The perf page shows the upstream URL and route timings; production opts in.
	cfg.PerfDashboard = getBoolEnv("OCTOFIT_PERF_DASHBOARD", !cfg.IsProduction())

	level, err := parseLevel(getEnv("OCTOFIT_LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, err
	}
	cfg.LogLevel = level

	key, err := csrfKey(os.Getenv("OCTOFIT_CSRF_KEY"), cfg.IsProduction())
	if err != nil {
		return Config{}, err
	}
	cfg.CSRFKey = key

	if cfg.RatePerSecond <= 0 || cfg.RateBurst <= 0 {
		return Config{}, errors.New("OCTOFIT_RATE_LIMIT_RPS and OCTOFIT_RATE_LIMIT_BURST must be positive")
	}
	return cfg, nil
}

// resolveAPIBaseURL picks the upstream root: explicit setting, then the
// Codespaces forwarded port, then localhost.
func resolveAPIBaseURL() string {
	if v := getEnv("OCTOFIT_API_BASE_URL", ""); v != "" {
		return strings.TrimRight(v, "/")
	}
	if name := getEnv("CODESPACE_NAME", ""); name != "" {
		return "https://" + name + "-8000.app.github.dev"
	}
	return defaultAPIBaseURL
}

// csrfKey decodes a hex key. Development gets a random key per process;
// production refuses to start without one so tokens survive restarts.
func csrfKey(hexKey string, production bool) ([]byte, error) {
	if hexKey == "" {
		if production {
			return nil, errors.New("OCTOFIT_CSRF_KEY is required in production")
		}
		key := make([]byte, csrfKeyBytes)
		if _, err := rand.Read(key); err != nil {
			return nil, fmt.Errorf("generate csrf key: %w", err)
		}
		return key, nil
	}
	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("OCTOFIT_CSRF_KEY: %w", err)
	}
	if len(key) != csrfKeyBytes {
		return nil, fmt.Errorf("OCTOFIT_CSRF_KEY: want %d bytes, got %d", csrfKeyBytes, len(key))
	}
	return key, nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("OCTOFIT_LOG_LEVEL: %w", err)
	}
	return level, nil
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil && parsed >= 0 {
			return parsed
		}
	}
	return fallback
}

func getBoolEnv(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getFloatEnv(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return fallback
}
