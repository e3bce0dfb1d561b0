package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/divine-encounter/event-registration/api"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

type Config struct {
	Env      string     `env:"ENV" envDefault:"LOCAL"`
	Host     string     `env:"HOST" envDefault:"0.0.0.0"`
	Port     string     `env:"PORT" envDefault:"8080"`
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`

	DynamoTableName string `env:"DYNAMO_TABLE_NAME" envDefault:"DivineEncounter"`
	// Points the server at DynamoDB local, which gets the table created on start.
	DynamoEndpoint string `env:"DYNAMO_ENDPOINT"`

	EventID uuid.UUID `env:"EVENT_ID" envDefault:"3f0d5b8e-1c2a-4e6f-9b7d-2026de0e0001"`

	PaystackBaseURL   string `env:"PAYSTACK_BASE_URL" envDefault:"https://api.paystack.co"`
	PaystackSecretKey string `env:"PAYSTACK_SECRET_KEY"`
	// SSM parameter holding the secret key, read when PaystackSecretKey is unset.
	PaystackSecretKeyParam string `env:"PAYSTACK_SECRET_KEY_PARAM" envDefault:"/divine-encounter/paystack-secret-key"`

	EmailFromAddress string   `env:"EMAIL_FROM_ADDRESS" envDefault:"Divine Encounter <hello@divineencounter.org>"`
	PublicOrigin     string   `env:"PUBLIC_ORIGIN" envDefault:"https://divineencounter.org"`
	AllowedOrigins   []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"https://divineencounter.org,https://www.divineencounter.org"`

	OtelEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

// loadConfig reads an optional .env file and then the environment. Values
// already in the environment win over the file.
func loadConfig(envFiles ...string) (Config, error) {
	err := godotenv.Load(envFiles...)
	if err != nil && len(envFiles) > 0 {
		return Config{}, fmt.Errorf("failed to load env file: %w", err)
	}

	var cfg Config
	err = env.Parse(&cfg)
	if err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}

func (c Config) Environment() (api.Environment, error) {
	switch strings.ToUpper(c.Env) {
	case "LOCAL":
		return api.LOCAL, nil
	case "PROD":
		return api.PROD, nil
	default:
		return api.LOCAL, fmt.Errorf("unknown environment %q", c.Env)
	}
}
