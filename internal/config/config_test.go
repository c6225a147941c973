package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ashendes/storefront-demo/internal/pricing"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENV", "development")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "", cfg.BasePath)
	assert.Equal(t, log.InfoLevel, cfg.LogLevel)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, 1500*time.Millisecond, cfg.PaymentDelay)
	assert.Equal(t, 300*time.Millisecond, cfg.SearchDebounce)
	assert.True(t, cfg.SeedCart)
	assert.Equal(t, 10, cfg.SubmitConcurrency)
}

func TestProductionBasePath(t *testing.T) {
	t.Setenv("ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, ProductionBasePath, cfg.BasePath)
	assert.Equal(t, ProductionBasePath, cfg.AssetPrefix())

	t.Setenv("BASE_PATH", "/shop/")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "/shop", cfg.BasePath)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("SESSION_TTL", "5m")
	t.Setenv("PAYMENT_DELAY", "0s")
	t.Setenv("SEED_CART", "false")
	t.Setenv("SUBMIT_CONCURRENCY", "3")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 5*time.Minute, cfg.SessionTTL)
	assert.Equal(t, time.Duration(0), cfg.PaymentDelay)
	assert.False(t, cfg.SeedCart)
	assert.Equal(t, 3, cfg.SubmitConcurrency)
	assert.Equal(t, log.DebugLevel, cfg.LogLevel)
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"SESSION_TTL":            "soon",
		"CONTACT_DELAY":          "-1s",
		"SESSION_SWEEP_INTERVAL": "0s",
		"SEED_CART":              "maybe",
		"SUBMIT_CONCURRENCY":     "0",
		"LOG_LEVEL":              "loud",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("STOREFRONT_TEST_VALUE=from-dotenv\n"), 0o600))
	t.Setenv("ENV", "development")
	t.Cleanup(func() { os.Unsetenv("STOREFRONT_TEST_VALUE") })

	LoadDotEnv(path)
	assert.Equal(t, "from-dotenv", os.Getenv("STOREFRONT_TEST_VALUE"))

	// missing file is fine
	LoadDotEnv(filepath.Join(t.TempDir(), "missing.env"))
}

func TestPricingTableFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pricing.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tax_rate: 0.05\n"), 0o600))
	t.Setenv("PRICING_FILE", path)

	cfg, err := Load()
	require.NoError(t, err)
	table, err := cfg.PricingTable()
	require.NoError(t, err)
	assert.Equal(t, 0.05, table.TaxRate)
	assert.Equal(t, pricing.FromDollars(4.99), table.GiftWrapFee)
}
