package userservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/earnova/earnova-bot/internal/domain"
)

//go:generate mockgen -source=userservice.go -destination=mock_userservice.go -package=userservice

// ReferralReward is what a referrer earns when a referred user joins, and
// loses again if that user later leaves the gate.
const ReferralReward = 10

type UserRepo interface {
	UpsertOnContact(ctx context.Context, userID int64, username string, referrerID *int64) error
	Get(ctx context.Context, userID int64) (*domain.User, error)
	AdjustPoints(ctx context.Context, userID int64, delta int64) error
	SetBanned(ctx context.Context, userID int64, banned bool) error
	SetJoinedVersion(ctx context.Context, userID int64, version int) error
	IncAccountsTaken(ctx context.Context, userID int64, n int) error
	SetLanguage(ctx context.Context, userID int64, lang string) error
	CountAll(ctx context.Context) (int64, error)
	ListIDs(ctx context.Context) ([]int64, error)
}

type ReferralRepo interface {
	Create(ctx context.Context, referrerID, referredID, points int64) (bool, error)
	ListActive(ctx context.Context) ([]domain.Referral, error)
	MarkLeft(ctx context.Context, referredID int64) (bool, error)
	CountByReferrer(ctx context.Context, referrerID int64) (int64, error)
}

type Gate interface {
	CheckJoined(ctx context.Context, userID int64) (bool, int64, error)
	CurrentVersion(ctx context.Context) (int, error)
}

type StartResult struct {
	Joined         bool
	MissingChannel int64
}

type Profile struct {
	Points        int64
	Referrals     int64
	AccountsTaken int
	Language      string
}

type Service struct {
	userRepo     UserRepo
	referralRepo ReferralRepo
	gate         Gate
}

func New(userRepo UserRepo, referralRepo ReferralRepo, gate Gate) *Service {
	return &Service{
		userRepo:     userRepo,
		referralRepo: referralRepo,
		gate:         gate,
	}
}

// RegisterStart handles /start: upserts the user, runs the membership gate
// and, on a pass, stamps the current required version and settles the
// referral. A self-referral is dropped before anything is written. The
// referral is created at most once per referred user; only the creating
// call awards points.
func (s *Service) RegisterStart(ctx context.Context, userID int64, username string, referrerID *int64) (*StartResult, error) {
	if referrerID != nil && *referrerID == userID {
		referrerID = nil
	}

	if err := s.userRepo.UpsertOnContact(ctx, userID, username, referrerID); err != nil {
		return nil, err
	}

	ok, missing, err := s.gate.CheckJoined(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &StartResult{Joined: false, MissingChannel: missing}, nil
	}

	version, err := s.gate.CurrentVersion(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.SetJoinedVersion(ctx, userID, version); err != nil {
		return nil, err
	}

	if referrerID != nil {
		created, err := s.referralRepo.Create(ctx, *referrerID, userID, ReferralReward)
		if err != nil {
			return nil, err
		}
		if created {
			if err := s.userRepo.AdjustPoints(ctx, *referrerID, ReferralReward); err != nil {
				return nil, err
			}
			zap.L().Info("referral recorded",
				zap.Int64("referrerID", *referrerID), zap.Int64("referredID", userID))
		}
	}

	return &StartResult{Joined: true}, nil
}

// Locked reports whether a user must re-run /start before using the bot:
// either they are missing a required channel, or the required set changed
// since their clearance was stamped.
func (s *Service) Locked(ctx context.Context, userID int64) (bool, error) {
	ok, _, err := s.gate.CheckJoined(ctx, userID)
	if err != nil {
		return true, err
	}
	if !ok {
		return true, nil
	}

	user, err := s.userRepo.Get(ctx, userID)
	if err != nil {
		return true, err
	}
	if user == nil {
		return true, nil
	}

	version, err := s.gate.CurrentVersion(ctx)
	if err != nil {
		return true, err
	}
	return user.JoinedRequiredVersion != version, nil
}

func (s *Service) Get(ctx context.Context, userID int64) (*domain.User, error) {
	return s.userRepo.Get(ctx, userID)
}

func (s *Service) GetProfile(ctx context.Context, userID int64) (*Profile, error) {
	user, err := s.userRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	referrals, err := s.referralRepo.CountByReferrer(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Profile{
		Points:        user.Points,
		Referrals:     referrals,
		AccountsTaken: user.AccountsTaken,
		Language:      user.Language,
	}, nil
}

// ToggleLanguage flips bn <-> en and returns the new language.
func (s *Service) ToggleLanguage(ctx context.Context, userID int64) (string, error) {
	user, err := s.userRepo.Get(ctx, userID)
	if err != nil {
		return "", err
	}

	lang := "bn"
	if user != nil && user.Language == "bn" {
		lang = "en"
	}
	if err := s.userRepo.SetLanguage(ctx, userID, lang); err != nil {
		return "", err
	}
	return lang, nil
}

func (s *Service) TotalUsers(ctx context.Context) (int64, error) {
	return s.userRepo.CountAll(ctx)
}

func (s *Service) AdjustPoints(ctx context.Context, userID int64, delta int64) error {
	return s.userRepo.AdjustPoints(ctx, userID, delta)
}

func (s *Service) SetBanned(ctx context.Context, userID int64, banned bool) error {
	return s.userRepo.SetBanned(ctx, userID, banned)
}
