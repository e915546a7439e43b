package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/vlkors/hydrobot/pkg/logger"
)

type Config struct {
	BotToken          string
	OpenWeatherAPIKey string
	AppEnv            string
}

func Load() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Info().Msg("config.Load: no .env file found - using env variables")
	}

	cfg := &Config{
		BotToken:          os.Getenv("BOT_TOKEN"),
		OpenWeatherAPIKey: os.Getenv("OPENWEATHER_API_KEY"),
		AppEnv:            os.Getenv("APP_ENV"),
	}

	if cfg.BotToken == "" {
		return nil, fmt.Errorf("config.Load: BOT_TOKEN is required")
	}

	if cfg.OpenWeatherAPIKey == "" {
		return nil, fmt.Errorf("config.Load: OPENWEATHER_API_KEY is required")
	}

	if cfg.AppEnv == "" {
		cfg.AppEnv = logger.EnvDevelopment
	}

	return cfg, nil
}
