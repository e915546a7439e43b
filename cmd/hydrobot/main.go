package main

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"

	"github.com/vlkors/hydrobot/internal/bot"
	"github.com/vlkors/hydrobot/internal/config"
	"github.com/vlkors/hydrobot/internal/lookup"
	"github.com/vlkors/hydrobot/internal/session"
	"github.com/vlkors/hydrobot/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("ошибка загрузки конфигурации")
	}

	logger.Init(cfg.AppEnv)

	botAPI, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		log.Fatal().Err(err).Msg("ошибка создания telegram-бота")
	}

	store := session.NewStore()
	weather := lookup.NewWeatherClient(cfg.OpenWeatherAPIKey)
	food := lookup.NewFoodClient()
	handler := session.NewHandler(store, weather, food)

	botService := bot.New(botAPI, handler)

	log.Info().Str("username", botAPI.Self.UserName).Msg("бот запущен")

	botService.Start(context.Background())
}
