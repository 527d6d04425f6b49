package telegram

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/earnova/earnova-bot/internal/metrics"
	"github.com/earnova/earnova-bot/internal/service/poolservice"
	"github.com/earnova/earnova-bot/internal/service/proofservice"
)

func (d *Dispatcher) handleStart(ctx context.Context, msg *tgbotapi.Message) {
	userID := msg.From.ID

	var referrerID *int64
	if arg := strings.TrimSpace(msg.CommandArguments()); arg != "" {
		if id, err := strconv.ParseInt(arg, 10, 64); err == nil {
			referrerID = &id
		}
	}

	result, err := d.users.RegisterStart(ctx, userID, msg.From.UserName, referrerID)
	if err != nil {
		zap.L().Error("can't register user on /start", zap.Int64("userID", userID), zap.Error(err))
		d.reply(userID, text("operational_error", "bn"))
		return
	}

	lang := d.lang(ctx, userID)
	if !result.Joined {
		if _, err := d.bot.SendMessage(userID, text("join_required", lang), joinKeyboard(d.cfg.RequiredChannelID)); err != nil {
			zap.L().Warn("Failed to send join prompt", zap.Int64("userID", userID), zap.Error(err))
		}
		return
	}

	if _, err := d.bot.SendMessage(userID, text("welcome", lang), mainMenu()); err != nil {
		zap.L().Warn("Failed to send welcome", zap.Int64("userID", userID), zap.Error(err))
	}
}

func (d *Dispatcher) handleButton(ctx context.Context, msg *tgbotapi.Message) {
	userID := msg.From.ID
	if d.locked(ctx, userID) {
		return
	}
	lang := d.lang(ctx, userID)

	switch msg.Text {
	case btnBalance:
		d.sendProfile(ctx, userID, lang)
	case btnReferral:
		link := fmt.Sprintf("https://t.me/%s?start=%d", d.bot.Username(), userID)
		d.reply(userID, fmt.Sprintf("👥 Invite friends, earn 10 points each:\n%s", link))
	case btnBotInfo:
		info := text("bot_info", lang)
		if available, err := d.pool.AvailableCount(ctx); err == nil {
			info = fmt.Sprintf("%s\n\n🎁 Accounts in stock: %d", info, available)
		}
		d.reply(userID, info)
	case btnHelp:
		d.reply(userID, text("help", lang))
	case btnTotalUsers:
		total, err := d.users.TotalUsers(ctx)
		if err != nil {
			d.reply(userID, text("operational_error", lang))
			return
		}
		d.reply(userID, fmt.Sprintf("📊 Total users: %d", total))
	case btnLanguage:
		newLang, err := d.users.ToggleLanguage(ctx, userID)
		if err != nil {
			d.reply(userID, text("operational_error", lang))
			return
		}
		d.reply(userID, fmt.Sprintf("🌐 Language set to %s", newLang))
	case btnGetAccount:
		d.handleClaim(ctx, userID, lang)
	default:
		// Unknown text re-shows the menu.
		if _, err := d.bot.SendMessage(userID, text("welcome", lang), mainMenu()); err != nil {
			zap.L().Warn("Failed to send menu", zap.Int64("userID", userID), zap.Error(err))
		}
	}
}

func (d *Dispatcher) sendProfile(ctx context.Context, userID int64, lang string) {
	profile, err := d.users.GetProfile(ctx, userID)
	if err != nil {
		d.reply(userID, text("operational_error", lang))
		return
	}
	d.reply(userID, fmt.Sprintf("💰 Points: %d\n👥 Referrals: %d\n🎁 Accounts taken: %d",
		profile.Points, profile.Referrals, profile.AccountsTaken))
}

func (d *Dispatcher) handleClaim(ctx context.Context, userID int64, lang string) {
	result, err := d.pool.Claim(ctx, userID)
	if err != nil {
		switch {
		case errors.Is(err, poolservice.ErrBanned):
			d.reply(userID, text("banned", lang))
		case errors.Is(err, poolservice.ErrProofOpen):
			d.reply(userID, text("proof_open", lang))
		case errors.Is(err, poolservice.ErrNoneAvailable):
			d.reply(userID, text("none_available", lang))
		case errors.Is(err, poolservice.ErrNegativePoints):
			d.reply(userID, text("negative_points", lang))
		default:
			zap.L().Error("can't claim resource", zap.Int64("userID", userID), zap.Error(err))
			d.reply(userID, text("operational_error", lang))
		}
		return
	}
	metrics.Claims.Inc()

	msgID, err := d.bot.SendMessage(userID,
		credentialText(result.Resource.Name, result.Secret, lang),
		verifyKeyboard(result.Resource.ID))
	if err != nil {
		zap.L().Error("Failed to deliver credential", zap.Int64("userID", userID), zap.Error(err))
		// The user never saw the secret; void the proof so its deadline
		// cannot ban them.
		if err := d.pool.VoidProof(ctx, result.Proof.ID); err != nil {
			zap.L().Error("can't void undelivered proof",
				zap.Int64("proofID", result.Proof.ID), zap.Error(err))
		}
		d.reply(userID, text("operational_error", lang))
		return
	}

	proofID := result.Proof.ID
	d.timers.Schedule(proofID, d.cfg.CredentialTTL, func() {
		if err := d.bot.DeleteMessage(userID, msgID); err != nil {
			zap.L().Warn("Failed to auto-delete credential message",
				zap.Int64("userID", userID), zap.Int("messageID", msgID), zap.Error(err))
		}
	})
}

// handleCallback handles the verify:<status>:<resourceID> verdict buttons.
func (d *Dispatcher) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.From == nil {
		return
	}
	userID := cb.From.ID

	parts := strings.Split(cb.Data, ":")
	if len(parts) != 3 || parts[0] != "verify" {
		_ = d.bot.AnswerCallback(cb.ID, "")
		return
	}
	verdict := parts[1]

	if err := d.proofs.RecordVerdict(ctx, userID, verdict); err != nil {
		switch {
		case errors.Is(err, proofservice.ErrNoPendingProof):
			_ = d.bot.AnswerCallback(cb.ID, text("no_pending_proof", d.lang(ctx, userID)))
		case errors.Is(err, proofservice.ErrInvalidVerdict):
			_ = d.bot.AnswerCallback(cb.ID, "")
		default:
			zap.L().Error("can't record verdict", zap.Int64("userID", userID), zap.Error(err))
			_ = d.bot.AnswerCallback(cb.ID, text("operational_error", d.lang(ctx, userID)))
		}
		return
	}

	_ = d.bot.AnswerCallback(cb.ID, "✅")
	d.reply(userID, "📸 Now send the proof screenshot.")
}

func (d *Dispatcher) handlePhoto(ctx context.Context, msg *tgbotapi.Message) {
	userID := msg.From.ID
	lang := d.lang(ctx, userID)

	// Largest photo size last.
	fileID := msg.Photo[len(msg.Photo)-1].FileID

	proof, err := d.proofs.SubmitEvidence(ctx, userID, fileID)
	if err != nil {
		if errors.Is(err, proofservice.ErrNoPendingProof) {
			d.reply(userID, text("no_pending_proof", lang))
			return
		}
		zap.L().Error("can't submit evidence", zap.Int64("userID", userID), zap.Error(err))
		d.reply(userID, text("operational_error", lang))
		return
	}

	d.timers.Cancel(proof.ID)
	d.reply(userID, text("proof_received", lang))
}
