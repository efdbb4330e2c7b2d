package bot

import (
	"pointsjack/internal/game"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	CallbackHit       = "hit"
	CallbackStay      = "stay"
	CallbackPlayAgain = "play_again"
	CallbackNewMatch  = "new_match"
	CallbackSettings  = "settings"
	CallbackStats     = "stats"

	callbackVisibilityPrefix = "vis_"
)

func GameKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("👊 Hit", CallbackHit),
			tgbotapi.NewInlineKeyboardButtonData("✋ Stay", CallbackStay),
		),
	)
}

func EndRoundKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Start", CallbackPlayAgain),
			tgbotapi.NewInlineKeyboardButtonData("⚙️ Settings", CallbackSettings),
			tgbotapi.NewInlineKeyboardButtonData("📊 Stats", CallbackStats),
		),
	)
}

func MatchOverKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🆕 New match", CallbackNewMatch),
			tgbotapi.NewInlineKeyboardButtonData("📊 Stats", CallbackStats),
		),
	)
}

// SettingsKeyboard marks the current dealer visibility with a check.
func SettingsKeyboard(current game.Visibility) tgbotapi.InlineKeyboardMarkup {
	var row []tgbotapi.InlineKeyboardButton
	for _, v := range []game.Visibility{game.VisibilityOneCard, game.VisibilityAllCards, game.VisibilityFull} {
		label := v.String()
		if v == current {
			label = "✅ " + label
		}
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(label, visibilityCallback(v)))
	}
	return tgbotapi.NewInlineKeyboardMarkup(row)
}

func keyboardFor(s game.Snapshot) tgbotapi.InlineKeyboardMarkup {
	switch {
	case s.CanHit():
		return GameKeyboard()
	case s.MatchOver:
		return MatchOverKeyboard()
	}
	return EndRoundKeyboard()
}
