package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, Redis connection, etc.), security settings
// - default: Values common across all environments (timeouts, fallback locale, etc.), standard settings
//
// STRIPE_WEBHOOK_SECRET and STRIPE_API_KEY are intentionally NOT required:
// the webhook handler must answer a misconfigured deployment with an explicit
// 500, not crash-loop at startup.
// -----------------------------------------------------------------------------

type Config struct {
	Server ServerConfig
	Redis  RedisConfig
	Stripe StripeConfig
	OpenAI OpenAIConfig
	Twilio TwilioConfig
	SMTP   SMTPConfig
	Rules  RulesConfig
	Log    LogConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     string `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type StripeConfig struct {
	APIKey        string `envconfig:"STRIPE_API_KEY" default:""`
	WebhookSecret string `envconfig:"STRIPE_WEBHOOK_SECRET" default:""`
}

type OpenAIConfig struct {
	APIKey    string        `envconfig:"OPENAI_API_KEY" default:""`
	BaseURL   string        `envconfig:"OPENAI_BASE_URL" default:"https://api.openai.com"`
	Model     string        `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`
	Timeout   time.Duration `envconfig:"OPENAI_TIMEOUT" default:"4500ms"`
	MaxLength int           `envconfig:"EXCUSE_MAX_LENGTH" default:"220"`
	Locale    string        `envconfig:"EXCUSE_LOCALE" default:"it"`
}

type TwilioConfig struct {
	AccountSID string `envconfig:"TWILIO_ACCOUNT_SID" default:""`
	AuthToken  string `envconfig:"TWILIO_AUTH_TOKEN" default:""`
	FromNumber string `envconfig:"TWILIO_WHATSAPP_FROM" default:""`
	BaseURL    string `envconfig:"TWILIO_BASE_URL" default:"https://api.twilio.com"`
}

type SMTPConfig struct {
	Host     string `envconfig:"SMTP_HOST" default:""`
	Port     string `envconfig:"SMTP_PORT" default:"587"`
	Username string `envconfig:"SMTP_USERNAME" default:""`
	Password string `envconfig:"SMTP_PASSWORD" default:""`
	Sender   string `envconfig:"SMTP_SENDER" default:""`
}

// RulesConfig carries the static price -> entitlement table as JSON:
// {"price_xxx": {"minutes": 10, "content_tag": "work"}, ...}
// Empty means the compiled-in defaults are used.
type RulesConfig struct {
	PriceRules string `envconfig:"PRICE_RULES" default:""`
}

type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

func (c *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}
