package logger

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Init настраивает глобальный логгер zerolog. В development пишем
// человекочитаемый вывод в консоль, в production — JSON уровня info.
func Init(env string) {
	if env == EnvProduction {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
		return
	}

	log.Logger = zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger()
	log.Logger = log.Logger.Level(zerolog.DebugLevel)
}
