package telegram

import (
	"context"
	"strconv"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/earnova/earnova-bot/internal/config"
	"github.com/earnova/earnova-bot/internal/domain"
	"github.com/earnova/earnova-bot/internal/service/adminservice"
	"github.com/earnova/earnova-bot/internal/service/poolservice"
	"github.com/earnova/earnova-bot/internal/service/userservice"
	"github.com/earnova/earnova-bot/pkg/ratelimit"
)

//go:generate mockgen -source=dispatcher.go -destination=mock_telegram.go -package=telegram

// Sender is the outbound surface of the bot the handlers use.
type Sender interface {
	SendText(chatID int64, text string) error
	SendMessage(chatID int64, text string, markup any) (int, error)
	SendPhoto(chatID int64, fileID, caption string) error
	GetChatMember(chatID, userID int64) (string, error)
	DeleteMessage(chatID int64, messageID int) error
	AnswerCallback(callbackID, text string) error
	Username() string
}

type UserService interface {
	RegisterStart(ctx context.Context, userID int64, username string, referrerID *int64) (*userservice.StartResult, error)
	Locked(ctx context.Context, userID int64) (bool, error)
	Get(ctx context.Context, userID int64) (*domain.User, error)
	GetProfile(ctx context.Context, userID int64) (*userservice.Profile, error)
	ToggleLanguage(ctx context.Context, userID int64) (string, error)
	TotalUsers(ctx context.Context) (int64, error)
	AdjustPoints(ctx context.Context, userID int64, delta int64) error
	SetBanned(ctx context.Context, userID int64, banned bool) error
}

type PoolService interface {
	Claim(ctx context.Context, userID int64) (*poolservice.ClaimResult, error)
	VoidProof(ctx context.Context, proofID int64) error
	Add(ctx context.Context, name, secret string, cost int, defaultFlag bool) (int64, error)
	Remove(ctx context.Context, id int64) error
	List(ctx context.Context, limit int) ([]domain.Resource, error)
	AvailableCount(ctx context.Context) (int64, error)
}

type ProofService interface {
	RecordVerdict(ctx context.Context, userID int64, verdict string) error
	SubmitEvidence(ctx context.Context, userID int64, fileID string) (*domain.Proof, error)
}

type GateService interface {
	AddRequired(ctx context.Context, channelID int64) (int, error)
	RemoveRequired(ctx context.Context, channelID int64) (int, error)
	ListChannels(ctx context.Context) ([]domain.RequiredChannel, error)
}

type AdminService interface {
	QueueBroadcast(ctx context.Context, text string) (int64, error)
	LogAction(ctx context.Context, adminID int64, action string, payload map[string]any)
	Stats(ctx context.Context) (*adminservice.Stats, error)
}

const (
	startRateBurst  = 3
	startRateWindow = 10 * time.Second
)

type Dispatcher struct {
	cfg     *config.Config
	bot     Sender
	users   UserService
	pool    PoolService
	proofs  ProofService
	gate    GateService
	admin   AdminService
	limiter *ratelimit.Limiter
	timers  *Timers
}

func NewDispatcher(cfg *config.Config, bot Sender, users UserService, pool PoolService,
	proofs ProofService, gate GateService, admin AdminService) *Dispatcher {
	return &Dispatcher{
		cfg:     cfg,
		bot:     bot,
		users:   users,
		pool:    pool,
		proofs:  proofs,
		gate:    gate,
		admin:   admin,
		limiter: ratelimit.New(startRateBurst, startRateWindow),
		timers:  NewTimers(),
	}
}

// Run consumes the update channel until the context is canceled.
func (d *Dispatcher) Run(ctx context.Context, updates tgbotapi.UpdatesChannel) {
	zap.L().Info("Telegram dispatcher started")
	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping dispatcher")
			d.timers.StopAll()
			return
		case update, ok := <-updates:
			if !ok {
				d.timers.StopAll()
				return
			}
			d.handleUpdate(ctx, update)
		}
	}
}

func (d *Dispatcher) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			zap.L().Error("update handler panicked", zap.Any("panic", r))
		}
	}()

	switch {
	case update.CallbackQuery != nil:
		d.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		d.handleMessage(ctx, update.Message)
	}
}

func (d *Dispatcher) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil || msg.Chat == nil {
		return
	}

	switch {
	case len(msg.Photo) > 0:
		d.handlePhoto(ctx, msg)
	case msg.IsCommand() && msg.Command() == "start":
		if !d.limiter.Allow(strconv.FormatInt(msg.From.ID, 10)) {
			return
		}
		d.handleStart(ctx, msg)
	case msg.IsCommand():
		d.handleAdminCommand(ctx, msg)
	default:
		d.handleButton(ctx, msg)
	}
}

func (d *Dispatcher) lang(ctx context.Context, userID int64) string {
	user, err := d.users.Get(ctx, userID)
	if err != nil || user == nil {
		return "bn"
	}
	return user.Language
}

// locked replies with the join prompt and reports true when the user has
// not cleared the current membership gate.
func (d *Dispatcher) locked(ctx context.Context, userID int64) bool {
	isLocked, err := d.users.Locked(ctx, userID)
	if err != nil {
		zap.L().Error("can't check membership gate", zap.Int64("userID", userID), zap.Error(err))
		isLocked = true
	}
	if isLocked {
		lang := d.lang(ctx, userID)
		if _, err := d.bot.SendMessage(userID, text("join_required", lang), joinKeyboard(d.cfg.RequiredChannelID)); err != nil {
			zap.L().Warn("Failed to send join prompt", zap.Int64("userID", userID), zap.Error(err))
		}
	}
	return isLocked
}

func (d *Dispatcher) reply(chatID int64, msg string) {
	if err := d.bot.SendText(chatID, msg); err != nil {
		zap.L().Warn("Failed to send reply", zap.Int64("chatID", chatID), zap.Error(err))
	}
}
