package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config represents the application configuration.
type Config struct {
	App       AppConfig       `envPrefix:"APP_"`
	Book      BookConfig      `envPrefix:"BOOK_"`
	TradeFeed TradeFeedConfig `envPrefix:"TRADE_FEED_"`
}

// AppConfig represents the process-level configuration.
type AppConfig struct {
	Name        string `env:"NAME" envDefault:"trading-engine"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	GRPCPort    int    `env:"GRPC_PORT" envDefault:"5001"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
}

// BookConfig represents the order book configuration.
type BookConfig struct {
	// ExpiryHour is the local-time hour at which good-for-day orders are
	// cancelled.
	ExpiryHour int `env:"EXPIRY_HOUR" envDefault:"16"`
}

// TradeFeedConfig represents the Kafka trade feed configuration.
type TradeFeedConfig struct {
	Enabled bool     `env:"ENABLED" envDefault:"false"`
	Brokers []string `env:"BROKERS" envSeparator:"," envDefault:"localhost:9092"`
	Topic   string   `env:"TOPIC" envDefault:"trades"`
}

// Load loads the configuration from the environment.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}
