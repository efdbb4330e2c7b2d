package bot

import (
	"context"
	"log"

	"pointsjack/internal/config"
	"pointsjack/internal/session"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Bot struct {
	api     *tgbotapi.BotAPI
	handler *Handler
}

func New(cfg *config.Config, svc *session.Service) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, err
	}

	return &Bot{
		api:     api,
		handler: NewHandler(api, cfg, svc),
	}, nil
}

// Run polls for updates until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	log.Printf("Bot started: @%s", b.api.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	defer b.api.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.CallbackQuery != nil {
				go b.handler.HandleCallback(ctx, update.CallbackQuery)
				continue
			}

			if update.Message != nil {
				go b.handler.HandleMessage(ctx, update.Message)
			}
		}
	}
}
