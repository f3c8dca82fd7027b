//go:build unit

package config_test

import (
	"testing"
	"time"

	"colpa-mia/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("PORT", "8080")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, "localhost:6379", cfg.Redis.Addr())
		assert.Equal(t, 4500*time.Millisecond, cfg.OpenAI.Timeout)
		assert.Equal(t, "it", cfg.OpenAI.Locale)
		assert.Equal(t, 220, cfg.OpenAI.MaxLength)
		assert.Equal(t, "https://api.twilio.com", cfg.Twilio.BaseURL)
		assert.Empty(t, cfg.Stripe.WebhookSecret)
		assert.Empty(t, cfg.Rules.PriceRules)
	})

	t.Run("missing port is rejected", func(t *testing.T) {
		t.Setenv("PORT", "")

		_, err := config.LoadConfig()
		require.Error(t, err)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("REDIS_HOST", "redis.internal")
		t.Setenv("REDIS_PORT", "6380")
		t.Setenv("OPENAI_TIMEOUT", "2s")
		t.Setenv("PRICE_RULES", `{"price_x":{"minutes":10}}`)

		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "redis.internal:6380", cfg.Redis.Addr())
		assert.Equal(t, 2*time.Second, cfg.OpenAI.Timeout)
		assert.JSONEq(t, `{"price_x":{"minutes":10}}`, cfg.Rules.PriceRules)
	})
}
