package config

import (
	"errors"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
)

const (
	envPrefix     = "CHECKOUT_"
	configFileEnv = "CHECKOUT_CONFIG_FILE"
)

type Config struct {
	Primary  Primary        `koanf:"primary"`
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Razorpay RazorpayConfig `koanf:"razorpay"`
	Checkout CheckoutConfig `koanf:"checkout"`
	Retry    RetryConfig    `koanf:"retry"`
	Logger   LoggerConfig   `koanf:"logger"`
	Worker   WorkerConfig   `koanf:"worker"`
}

type WorkerConfig struct {
	Enabled   bool          `koanf:"enabled"`
	Interval  time.Duration `koanf:"interval" validate:"required"`
	BatchSize int           `koanf:"batch_size" validate:"required"`
	MinAge    time.Duration `koanf:"min_age"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

type ServerConfig struct {
	Port           string        `koanf:"port" validate:"required"`
	ReadTimeout    time.Duration `koanf:"read_timeout" validate:"required"`
	WriteTimeout   time.Duration `koanf:"write_timeout" validate:"required"`
	IdleTimeout    time.Duration `koanf:"idle_timeout" validate:"required"`
	HandlerTimeout time.Duration `koanf:"handler_timeout" validate:"required"`
}

type DatabaseConfig struct {
	Enabled         bool          `koanf:"enabled"`
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	User            string        `koanf:"user"`
	Password        string        `koanf:"password"`
	Name            string        `koanf:"name"`
	SSLMode         string        `koanf:"ssl_mode"`
	MaxOpenConns    int           `koanf:"max_open_conns"`
	MaxIdleConns    int           `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `koanf:"conn_max_idle_time"`
}

type RazorpayConfig struct {
	KeyID     string        `koanf:"key_id" validate:"required"`
	KeySecret string        `koanf:"key_secret" validate:"required"`
	BaseURL   string        `koanf:"base_url" validate:"required,url"`
	Timeout   time.Duration `koanf:"timeout" validate:"required"`
}

// CheckoutConfig holds the storefront-facing settings used by the checkout client.
type CheckoutConfig struct {
	ServerURL     string        `koanf:"server_url" validate:"required,url"`
	Currency      string        `koanf:"currency" validate:"required,len=3"`
	DeliveryFee   string        `koanf:"delivery_fee" validate:"required,numeric"`
	MerchantName  string        `koanf:"merchant_name" validate:"required"`
	ThemeColor    string        `koanf:"theme_color" validate:"required"`
	CreateTimeout time.Duration `koanf:"create_timeout" validate:"required"`
	VerifyTimeout time.Duration `koanf:"verify_timeout" validate:"required"`
}

// RetryConfig applies to idempotent provider reads only.
type RetryConfig struct {
	BaseDelay  time.Duration `koanf:"base_delay"`
	MaxRetries int           `koanf:"max_retries"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"primary.env": "development",

		"server.port":            "8080",
		"server.read_timeout":    "10s",
		"server.write_timeout":   "30s",
		"server.idle_timeout":    "60s",
		"server.handler_timeout": "20s",

		"database.enabled":            false,
		"database.host":               "localhost",
		"database.port":               5432,
		"database.ssl_mode":           "disable",
		"database.max_open_conns":     10,
		"database.max_idle_conns":     2,
		"database.conn_max_lifetime":  "1h",
		"database.conn_max_idle_time": "30m",

		"razorpay.base_url": "https://api.razorpay.com",
		"razorpay.timeout":  "15s",

		"checkout.server_url":     "http://localhost:8080",
		"checkout.currency":       "INR",
		"checkout.delivery_fee":   "0",
		"checkout.merchant_name":  "Fresh Dairy Hub",
		"checkout.theme_color":    "#3B8069",
		"checkout.create_timeout": "15s",
		"checkout.verify_timeout": "15s",

		"retry.base_delay":  "1s",
		"retry.max_retries": 3,

		"logger.level":        "info",
		"logger.format":       "text",
		"logger.max_size_mb":  50,
		"logger.max_backups":  5,
		"logger.max_age_days": 28,

		"worker.enabled":    true,
		"worker.interval":   "1m",
		"worker.batch_size": 50,
		"worker.min_age":    "5m",
	}
}

// LoadConfig reads defaults, then the optional YAML file named by
// CHECKOUT_CONFIG_FILE, then CHECKOUT_* environment variables. Nested keys use
// a double underscore: CHECKOUT_RAZORPAY__KEY_ID sets razorpay.key_id.
func LoadConfig() (*Config, error) {
	mainConfig, err := load()
	if err != nil {
		return nil, err
	}

	if err := mainConfig.Validate(); err != nil {
		slog.Error("config validation failed", "error", err)
		return nil, err
	}

	return mainConfig, nil
}

// LoadClientConfig loads the same sources as LoadConfig but validates only the
// sections the storefront client uses. The provider secret is never required.
func LoadClientConfig() (*Config, error) {
	cfg, err := load()
	if err != nil {
		return nil, err
	}

	validate := validator.New()
	if err := validate.Struct(cfg.Checkout); err != nil {
		slog.Error("checkout config validation failed", "error", err)
		return nil, err
	}
	if err := validate.Struct(cfg.Logger); err != nil {
		slog.Error("logger config validation failed", "error", err)
		return nil, err
	}

	return cfg, nil
}

func load() (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		logger.Error("failed to load defaults", "error", err)
		return nil, err
	}

	if path := os.Getenv(configFileEnv); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			logger.Error("failed to load config file", "path", path, "error", err)
			return nil, err
		}
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, envPrefix)),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		logger.Error("failed to load environment variables", "error", err)
		return nil, err
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		logger.Error("could not unmarshal main config", "error", err)
		return nil, err
	}

	return cfg, nil
}

// Validate runs struct tag validation plus the rules tags cannot express.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}

	if c.Database.Enabled {
		var missing []string
		if c.Database.Host == "" {
			missing = append(missing, "database.host")
		}
		if c.Database.Port == 0 {
			missing = append(missing, "database.port")
		}
		if c.Database.User == "" {
			missing = append(missing, "database.user")
		}
		if c.Database.Name == "" {
			missing = append(missing, "database.name")
		}
		if len(missing) > 0 {
			return errors.New("database enabled but missing: " + strings.Join(missing, ", "))
		}
	}

	if c.Retry.MaxRetries < 1 {
		return errors.New("retry.max_retries must be at least 1")
	}

	return nil
}
