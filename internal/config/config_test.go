package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vlkors/hydrobot/internal/config"
	"github.com/vlkors/hydrobot/pkg/logger"
)

func TestLoad(t *testing.T) {
	t.Setenv("BOT_TOKEN", "test-token")
	t.Setenv("OPENWEATHER_API_KEY", "test-key")
	t.Setenv("APP_ENV", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "test-token", cfg.BotToken)
	assert.Equal(t, "test-key", cfg.OpenWeatherAPIKey)
	assert.Equal(t, logger.EnvDevelopment, cfg.AppEnv)
}

func TestLoadMissingBotToken(t *testing.T) {
	t.Setenv("BOT_TOKEN", "")
	t.Setenv("OPENWEATHER_API_KEY", "test-key")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoadMissingWeatherKey(t *testing.T) {
	t.Setenv("BOT_TOKEN", "test-token")
	t.Setenv("OPENWEATHER_API_KEY", "")

	_, err := config.Load()
	assert.Error(t, err)
}
