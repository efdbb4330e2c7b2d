package bot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"pointsjack/internal/config"
	"pointsjack/internal/game"
	"pointsjack/internal/session"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Handler struct {
	bot *tgbotapi.BotAPI
	cfg *config.Config
	svc *session.Service
}

func NewHandler(bot *tgbotapi.BotAPI, cfg *config.Config, svc *session.Service) *Handler {
	return &Handler{
		bot: bot,
		cfg: cfg,
		svc: svc,
	}
}

func chatKey(chatID int64) string {
	return "tg:" + strconv.FormatInt(chatID, 10)
}

func (h *Handler) send(chatID int64, text string) {
	if _, err := h.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.Printf("Failed to send message: %v", err)
	}
}

func (h *Handler) sendWithKeyboard(chatID int64, text string, kb tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = kb
	if _, err := h.bot.Send(msg); err != nil {
		log.Printf("Failed to send message: %v", err)
	}
}

func (h *Handler) answerCallback(id, text string) {
	if _, err := h.bot.Request(tgbotapi.NewCallback(id, text)); err != nil {
		log.Printf("Failed to answer callback: %v", err)
	}
}

func (h *Handler) sendTable(chatID int64, s game.Snapshot) {
	h.sendWithKeyboard(chatID, formatTable(s), keyboardFor(s))
}

// rejectionText turns a refused intent into a short callback answer.
func rejectionText(err error) string {
	switch {
	case errors.Is(err, game.ErrMatchOver):
		return "The match is over. Start a new match."
	case errors.Is(err, game.ErrInvalidTransition):
		return "No round in progress"
	case errors.Is(err, game.ErrInvalidVisibility):
		return "Unknown setting"
	}
	return "Error"
}

func (h *Handler) HandleStart(ctx context.Context, chatID int64) {
	s := h.svc.State(ctx, chatKey(chatID))
	h.sendWithKeyboard(chatID,
		"🎰 Welcome to Blackjack!\n\n"+formatTable(s)+"\n\n"+formatHelp(h.cfg.Rules),
		keyboardFor(s))
}

func (h *Handler) HandleHelp(chatID int64) {
	h.send(chatID, formatHelp(h.cfg.Rules))
}

func (h *Handler) HandlePlay(ctx context.Context, chatID int64) {
	s, err := h.svc.Start(ctx, chatKey(chatID))
	if err != nil {
		h.sendWithKeyboard(chatID, "❌ "+rejectionText(err), keyboardFor(s))
		return
	}
	h.sendTable(chatID, s)
}

func (h *Handler) HandleNewMatch(ctx context.Context, chatID int64) {
	s := h.svc.NewMatch(ctx, chatKey(chatID))
	h.sendWithKeyboard(chatID,
		fmt.Sprintf("🆕 New match! Both sides start with %d points.\n\n%s", s.PlayerPoints, formatTable(s)),
		keyboardFor(s))
}

func (h *Handler) HandleSettings(ctx context.Context, chatID int64) {
	s := h.svc.State(ctx, chatKey(chatID))
	h.sendWithKeyboard(chatID,
		"⚙️ Dealer visibility:\n"+
			"• Normal: one dealer card, total hidden\n"+
			"• Easy: all dealer cards, total hidden\n"+
			"• Very easy: all dealer cards and the total",
		SettingsKeyboard(s.Visibility))
}

func (h *Handler) HandleStats(ctx context.Context, chatID int64) {
	p, err := h.svc.Stats(ctx, chatKey(chatID))
	if err != nil {
		log.Printf("Failed to load stats: %v", err)
		h.send(chatID, "❌ Error")
		return
	}
	h.send(chatID, formatStats(p))
}

func (h *Handler) HandleTop(ctx context.Context, chatID int64) {
	stats, err := h.svc.Top(ctx, h.cfg.TopLimit)
	if err != nil {
		log.Printf("Failed to load top players: %v", err)
		h.send(chatID, "❌ Error")
		return
	}
	h.send(chatID, formatTop(stats))
}

func (h *Handler) HandleCallback(ctx context.Context, callback *tgbotapi.CallbackQuery) {
	if callback.Message == nil {
		h.answerCallback(callback.ID, "")
		return
	}
	chatID := callback.Message.Chat.ID
	key := chatKey(chatID)

	if v, ok := parseVisibilityCallback(callback.Data); ok {
		s, err := h.svc.SetVisibility(ctx, key, v)
		if err != nil {
			h.answerCallback(callback.ID, rejectionText(err))
			return
		}
		h.answerCallback(callback.ID, "Dealer visibility: "+v.String())
		if s.Round > 0 {
			h.sendTable(chatID, s)
		}
		return
	}

	switch callback.Data {
	case CallbackPlayAgain:
		h.answerCallback(callback.ID, "")
		h.HandlePlay(ctx, chatID)
		return
	case CallbackNewMatch:
		h.answerCallback(callback.ID, "")
		h.HandleNewMatch(ctx, chatID)
		return
	case CallbackSettings:
		h.answerCallback(callback.ID, "")
		h.HandleSettings(ctx, chatID)
		return
	case CallbackStats:
		h.answerCallback(callback.ID, "")
		h.HandleStats(ctx, chatID)
		return
	}

	var (
		s   game.Snapshot
		err error
	)
	switch callback.Data {
	case CallbackHit:
		s, err = h.svc.Hit(ctx, key)
	case CallbackStay:
		s, err = h.svc.Stay(ctx, key)
	default:
		h.answerCallback(callback.ID, "")
		return
	}

	if err != nil {
		h.answerCallback(callback.ID, rejectionText(err))
		return
	}

	h.answerCallback(callback.ID, "")
	h.sendTable(chatID, s)
}

func (h *Handler) HandleMessage(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	parts := strings.Fields(msg.Text)

	if len(parts) == 0 {
		return
	}

	// Commands may carry the bot name in groups: /play@SomeBot.
	cmd, _, _ := strings.Cut(strings.ToLower(parts[0]), "@")

	switch cmd {
	case "/start":
		h.HandleStart(ctx, chatID)
	case "/help":
		h.HandleHelp(chatID)
	case "/play":
		h.HandlePlay(ctx, chatID)
	case "/newmatch":
		h.HandleNewMatch(ctx, chatID)
	case "/settings":
		h.HandleSettings(ctx, chatID)
	case "/stats":
		h.HandleStats(ctx, chatID)
	case "/top":
		h.HandleTop(ctx, chatID)
	}
}
