package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "trading-engine", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, 5001, cfg.App.GRPCPort)
	assert.Equal(t, "info", cfg.App.LogLevel)

	assert.Equal(t, 16, cfg.Book.ExpiryHour)

	assert.False(t, cfg.TradeFeed.Enabled)
	assert.Equal(t, []string{"localhost:9092"}, cfg.TradeFeed.Brokers)
	assert.Equal(t, "trades", cfg.TradeFeed.Topic)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_GRPC_PORT", "6001")
	t.Setenv("APP_ENVIRONMENT", "production")
	t.Setenv("BOOK_EXPIRY_HOUR", "17")
	t.Setenv("TRADE_FEED_ENABLED", "true")
	t.Setenv("TRADE_FEED_BROKERS", "kafka-1:9092,kafka-2:9092")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 6001, cfg.App.GRPCPort)
	assert.Equal(t, "production", cfg.App.Environment)
	assert.Equal(t, 17, cfg.Book.ExpiryHour)
	assert.True(t, cfg.TradeFeed.Enabled)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.TradeFeed.Brokers)
}
