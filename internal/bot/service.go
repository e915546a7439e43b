package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"

	"github.com/vlkors/hydrobot/internal/session"
)

// BotService связывает Telegram с машиной состояний: принимает обновления
// длинным поллингом и отправляет ответы.
type BotService struct {
	botAPI  *tgbotapi.BotAPI
	handler *session.Handler
}

func New(botAPI *tgbotapi.BotAPI, handler *session.Handler) *BotService {
	return &BotService{
		botAPI:  botAPI,
		handler: handler,
	}
}

// Start крутит цикл обработки обновлений до закрытия канала. Сообщения
// обрабатываются последовательно, одно за другим.
func (b *BotService) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.botAPI.GetUpdatesChan(u)

	for update := range updates {
		if update.Message == nil || update.Message.Text == "" {
			continue
		}

		chatID := update.Message.Chat.ID
		text := update.Message.Text

		log.Info().Int64("chat_id", chatID).Str("text", text).Msg("входящее сообщение")

		reply := b.handler.Handle(ctx, chatID, text)
		if reply == "" {
			continue
		}

		msg := tgbotapi.NewMessage(chatID, reply)
		if _, err := b.botAPI.Send(msg); err != nil {
			log.Error().Err(err).Int64("chat_id", chatID).Msg("не удалось отправить ответ")
		}
	}
}
