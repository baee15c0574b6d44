package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
)

const envPrefix = "GATEWAY_"

type Config struct {
	Primary  Primary        `koanf:"primary"`
	Server   ServerConfig   `koanf:"server"`
	PayPal   PayPalConfig   `koanf:"paypal"`
	Merchant MerchantConfig `koanf:"merchant"`
	Logger   LoggerConfig   `koanf:"logger"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

type ServerConfig struct {
	Port           string        `koanf:"port" validate:"required"`
	ReadTimeout    time.Duration `koanf:"read_timeout" validate:"required"`
	WriteTimeout   time.Duration `koanf:"write_timeout" validate:"required"`
	IdleTimeout    time.Duration `koanf:"idle_timeout" validate:"required"`
	RequestTimeout time.Duration `koanf:"request_timeout" validate:"required"`
	StaticDir      string        `koanf:"static_dir"`
}

// PayPalConfig holds the processor endpoint and the credentials injected into
// every outbound call. ClientID and ClientSecret must never reach a log line.
type PayPalConfig struct {
	BaseURL      string        `koanf:"base_url" validate:"required,url"`
	ClientID     string        `koanf:"client_id" validate:"required"`
	ClientSecret string        `koanf:"client_secret" validate:"required"`
	Timeout      time.Duration `koanf:"timeout" validate:"required"`
	TokenCache   bool          `koanf:"token_cache"`
}

// LogValue keeps the credentials out of structured logs.
func (c PayPalConfig) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("base_url", c.BaseURL),
		slog.String("client_id", "[REDACTED]"),
		slog.Duration("timeout", c.Timeout),
		slog.Bool("token_cache", c.TokenCache),
	)
}

type MerchantConfig struct {
	Currency   string `koanf:"currency" validate:"required,len=3"`
	Amount     string `koanf:"amount" validate:"required"`
	ReturnURL  string `koanf:"return_url" validate:"required,url"`
	CancelURL  string `koanf:"cancel_url" validate:"required,url"`
	PayerEmail string `koanf:"payer_email" validate:"omitempty,email"`
	ReturnFlow string `koanf:"return_flow" validate:"required,oneof=AUTO MANUAL"`
}

type LoggerConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format" validate:"omitempty,oneof=text json"`
}

// defaults mirrors the sandbox setup the checkout page was built against.
// PORT, PAYPAL_CLIENT_ID and PAYPAL_CLIENT_SECRET are honoured for hosts that
// only set the plain variables; GATEWAY_ variables take precedence.
func defaults() map[string]interface{} {
	return map[string]interface{}{
		"primary.env":            "development",
		"server.port":            envOr("PORT", "3000"),
		"server.read_timeout":    "15s",
		"server.write_timeout":   "60s",
		"server.idle_timeout":    "120s",
		"server.request_timeout": "45s",
		"paypal.base_url":        "https://api-m.sandbox.paypal.com",
		"paypal.client_id":       os.Getenv("PAYPAL_CLIENT_ID"),
		"paypal.client_secret":   os.Getenv("PAYPAL_CLIENT_SECRET"),
		"paypal.timeout":         "30s",
		"paypal.token_cache":     false,
		"merchant.currency":      "USD",
		"merchant.amount":        "64.00",
		"merchant.return_url":    "http://localhost:3000/#return",
		"merchant.cancel_url":    "http://localhost:3000/#cancel",
		"merchant.return_flow":   "AUTO",
		"logger.level":           "info",
		"logger.format":          "text",
	}
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func LoadConfig() (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		logger.Error("failed to load default configuration", "error", err)
		return nil, err
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

	mainConfig := &Config{}

	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Error("could not unmarshal main config", "error", err)
		return nil, err
	}

	validate := validator.New()

	err = validate.Struct(mainConfig)
	if err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	return mainConfig, nil
}
