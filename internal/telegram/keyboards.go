package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	btnBalance    = "💰 Balance"
	btnReferral   = "👥 Referral"
	btnBotInfo    = "ℹ️ Bot Info"
	btnHelp       = "❓ Help"
	btnTotalUsers = "📊 Total Users"
	btnLanguage   = "🌐 Language"
	btnGetAccount = "🎁 Get Account"
)

func mainMenu() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnGetAccount),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnBalance),
			tgbotapi.NewKeyboardButton(btnReferral),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnBotInfo),
			tgbotapi.NewKeyboardButton(btnHelp),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnTotalUsers),
			tgbotapi.NewKeyboardButton(btnLanguage),
		),
	)
	kb.ResizeKeyboard = true
	return kb
}

// verifyKeyboard asks the user whether the credential works. The callback
// data carries the resource id: verify:<status>:<resourceID>.
func verifyKeyboard(resourceID int64) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Working", fmt.Sprintf("verify:working:%d", resourceID)),
			tgbotapi.NewInlineKeyboardButtonData("❌ Not Working", fmt.Sprintf("verify:notworking:%d", resourceID)),
		),
	)
}

func joinKeyboard(channelID int64) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("📢 Join Channel", fmt.Sprintf("https://t.me/c/%d", normalizeChannelID(channelID))),
		),
	)
}

// normalizeChannelID strips the -100 supergroup prefix for t.me/c links.
func normalizeChannelID(channelID int64) int64 {
	if channelID < -1000000000000 {
		return -channelID - 1000000000000
	}
	if channelID < 0 {
		return -channelID
	}
	return channelID
}
