// Package config reads the storefront service settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ashendes/storefront-demo/internal/pricing"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// ProductionBasePath prefixes every route and asset when ENV=production
const ProductionBasePath = "/sumshinebysums"

// Config holds the service settings
type Config struct {
	Env               string
	Port              string
	BasePath          string
	LogLevel          log.Level
	SessionTTL        time.Duration
	SweepInterval     time.Duration
	SeedCart          bool
	PaymentDelay      time.Duration
	ContactDelay      time.Duration
	SearchDebounce    time.Duration
	SubmitConcurrency int
	PricingFile       string
}

// IsProduction reports whether the service runs with production paths
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// AssetPrefix is prepended to static asset URLs
func (c Config) AssetPrefix() string {
	return c.BasePath
}

// LoadDotEnv loads .env into the environment outside production. A missing
// file is not an error.
func LoadDotEnv(path string) {
	if os.Getenv("ENV") == "production" {
		return
	}
	if err := godotenv.Load(path); err != nil {
		log.WithField("path", path).Debug("No .env file found, using environment variables")
		return
	}
	log.WithField("path", path).Info("Loaded environment from .env")
}

// Load reads the configuration from the environment
func Load() (Config, error) {
	cfg := Config{
		Env:         getEnv("ENV", "development"),
		Port:        getEnv("PORT", "8080"),
		PricingFile: getEnv("PRICING_FILE", ""),
	}

	cfg.BasePath = getEnv("BASE_PATH", "")
	if cfg.BasePath == "" && cfg.IsProduction() {
		cfg.BasePath = ProductionBasePath
	}
	cfg.BasePath = strings.TrimRight(cfg.BasePath, "/")

	level, err := log.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	cfg.LogLevel = level

	durations := []struct {
		key      string
		fallback time.Duration
		dst      *time.Duration
	}{
		{"SESSION_TTL", 30 * time.Minute, &cfg.SessionTTL},
		{"SESSION_SWEEP_INTERVAL", time.Minute, &cfg.SweepInterval},
		{"PAYMENT_DELAY", 1500 * time.Millisecond, &cfg.PaymentDelay},
		{"CONTACT_DELAY", 1500 * time.Millisecond, &cfg.ContactDelay},
		{"SEARCH_DEBOUNCE", 300 * time.Millisecond, &cfg.SearchDebounce},
	}
	for _, d := range durations {
		v, err := getDuration(d.key, d.fallback)
		if err != nil {
			return Config{}, err
		}
		*d.dst = v
	}
	if cfg.SweepInterval <= 0 {
		return Config{}, fmt.Errorf("SESSION_SWEEP_INTERVAL must be positive")
	}

	if cfg.SeedCart, err = strconv.ParseBool(getEnv("SEED_CART", "true")); err != nil {
		return Config{}, fmt.Errorf("SEED_CART: %w", err)
	}

	if cfg.SubmitConcurrency, err = strconv.Atoi(getEnv("SUBMIT_CONCURRENCY", "10")); err != nil {
		return Config{}, fmt.Errorf("SUBMIT_CONCURRENCY: %w", err)
	}
	if cfg.SubmitConcurrency < 1 {
		return Config{}, fmt.Errorf("SUBMIT_CONCURRENCY must be at least 1")
	}

	return cfg, nil
}

// PricingTable loads the pricing overrides named by PRICING_FILE
func (c Config) PricingTable() (*pricing.Table, error) {
	return pricing.LoadTable(c.PricingFile)
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s must not be negative", key)
	}
	return d, nil
}

// getEnv gets environment variable with fallback
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
