package config_test

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/DanielPopoola/checkout-proxy/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setCredentials(t *testing.T) {
	t.Helper()
	t.Setenv("GATEWAY_PAYPAL__CLIENT_ID", "client-id")
	t.Setenv("GATEWAY_PAYPAL__CLIENT_SECRET", "client-secret")
}

func TestLoadConfig_Defaults(t *testing.T) {
	setCredentials(t)
	t.Setenv("PORT", "")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "https://api-m.sandbox.paypal.com", cfg.PayPal.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.PayPal.Timeout)
	assert.False(t, cfg.PayPal.TokenCache)
	assert.Equal(t, "USD", cfg.Merchant.Currency)
	assert.Equal(t, "64.00", cfg.Merchant.Amount)
	assert.Equal(t, "AUTO", cfg.Merchant.ReturnFlow)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	setCredentials(t)
	t.Setenv("GATEWAY_SERVER__PORT", "8081")
	t.Setenv("GATEWAY_MERCHANT__AMOUNT", "10.00")
	t.Setenv("GATEWAY_PAYPAL__TIMEOUT", "5s")
	t.Setenv("GATEWAY_PAYPAL__TOKEN_CACHE", "true")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Server.Port)
	assert.Equal(t, "10.00", cfg.Merchant.Amount)
	assert.Equal(t, 5*time.Second, cfg.PayPal.Timeout)
	assert.True(t, cfg.PayPal.TokenCache)
	assert.Equal(t, "client-id", cfg.PayPal.ClientID)
}

func TestLoadConfig_PlainPayPalVariables(t *testing.T) {
	for _, key := range []string{"GATEWAY_PAYPAL__CLIENT_ID", "GATEWAY_PAYPAL__CLIENT_SECRET", "GATEWAY_SERVER__PORT"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	t.Setenv("PAYPAL_CLIENT_ID", "plain-id")
	t.Setenv("PAYPAL_CLIENT_SECRET", "plain-secret")
	t.Setenv("PORT", "4000")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "plain-id", cfg.PayPal.ClientID)
	assert.Equal(t, "plain-secret", cfg.PayPal.ClientSecret)
	assert.Equal(t, "4000", cfg.Server.Port)
}

func TestLoadConfig_MissingCredentials(t *testing.T) {
	t.Setenv("GATEWAY_PAYPAL__CLIENT_ID", "")
	t.Setenv("PAYPAL_CLIENT_ID", "")

	_, err := config.LoadConfig()
	require.Error(t, err)
}

func TestLoadConfig_InvalidReturnFlow(t *testing.T) {
	setCredentials(t)
	t.Setenv("GATEWAY_MERCHANT__RETURN_FLOW", "SOMETIMES")

	_, err := config.LoadConfig()
	require.Error(t, err)
}

func TestPayPalConfig_LogValueRedactsCredentials(t *testing.T) {
	cfg := config.PayPalConfig{
		BaseURL:      "https://api-m.sandbox.paypal.com",
		ClientID:     "client-id",
		ClientSecret: "client-secret",
	}

	rendered := cfg.LogValue().String()

	assert.NotContains(t, rendered, "client-id")
	assert.NotContains(t, rendered, "client-secret")
	assert.Contains(t, rendered, "REDACTED")
}

func TestLoggerConfig_SlogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}

	for in, want := range tests {
		assert.Equal(t, want, config.LoggerConfig{Level: in}.SlogLevel(), in)
	}
}
