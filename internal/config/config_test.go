package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("CHECKOUT_RAZORPAY__KEY_ID", "rzp_test_key")
	t.Setenv("CHECKOUT_RAZORPAY__KEY_SECRET", "rzp_test_secret")
}

func TestLoadConfig_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 20*time.Second, cfg.Server.HandlerTimeout)
	assert.Equal(t, "https://api.razorpay.com", cfg.Razorpay.BaseURL)
	assert.Equal(t, "INR", cfg.Checkout.Currency)
	assert.Equal(t, "Fresh Dairy Hub", cfg.Checkout.MerchantName)
	assert.Equal(t, 3, cfg.Retry.MaxRetries)
	assert.False(t, cfg.Database.Enabled)
}

func TestLoadConfig_EnvOverridesNestedKeys(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CHECKOUT_SERVER__PORT", "9090")
	t.Setenv("CHECKOUT_CHECKOUT__CREATE_TIMEOUT", "3s")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 3*time.Second, cfg.Checkout.CreateTimeout)
	assert.Equal(t, "rzp_test_key", cfg.Razorpay.KeyID)
}

func TestLoadConfig_YAMLFile(t *testing.T) {
	setRequiredEnv(t)
	path := filepath.Join(t.TempDir(), "checkout.yaml")
	require.NoError(t, os.WriteFile(path, []byte("checkout:\n  delivery_fee: \"40\"\nlogger:\n  format: json\n"), 0o600))
	t.Setenv("CHECKOUT_CONFIG_FILE", path)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "40", cfg.Checkout.DeliveryFee)
	assert.Equal(t, "json", cfg.Logger.Format)
}

func TestLoadConfig_MissingSecret(t *testing.T) {
	t.Setenv("CHECKOUT_RAZORPAY__KEY_ID", "rzp_test_key")
	t.Setenv("CHECKOUT_RAZORPAY__KEY_SECRET", "")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadClientConfig_NoSecretRequired(t *testing.T) {
	t.Setenv("CHECKOUT_RAZORPAY__KEY_SECRET", "")
	t.Setenv("CHECKOUT_CHECKOUT__SERVER_URL", "http://shop.internal:8080")

	cfg, err := LoadClientConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://shop.internal:8080", cfg.Checkout.ServerURL)
	assert.Equal(t, 15*time.Second, cfg.Checkout.VerifyTimeout)
}

func TestLoadClientConfig_InvalidCurrency(t *testing.T) {
	t.Setenv("CHECKOUT_CHECKOUT__CURRENCY", "RUPEE")

	_, err := LoadClientConfig()
	assert.Error(t, err)
}

func TestLoadConfig_DatabaseEnabledRequiresCredentials(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CHECKOUT_DATABASE__ENABLED", "true")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database.user")
}

func TestLoggerConfig_SlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LoggerConfig{Level: "debug"}.SlogLevel())
	assert.Equal(t, slog.LevelWarn, LoggerConfig{Level: "WARN"}.SlogLevel())
	assert.Equal(t, slog.LevelInfo, LoggerConfig{}.SlogLevel())
}

func TestDatabaseConfig_PgxConfig(t *testing.T) {
	db := DatabaseConfig{
		Host:         "db.internal",
		Port:         5433,
		User:         "checkout",
		Password:     "p@ss/word",
		Name:         "orders",
		SSLMode:      "disable",
		MaxOpenConns: 7,
	}

	cfg, err := db.PgxConfig(t.Context())
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.ConnConfig.Host)
	assert.Equal(t, uint16(5433), cfg.ConnConfig.Port)
	assert.Equal(t, "p@ss/word", cfg.ConnConfig.Password)
	assert.Equal(t, int32(7), cfg.MaxConns)
	assert.Equal(t, "freshdairy-checkout", cfg.ConnConfig.RuntimeParams["application_name"])
}
