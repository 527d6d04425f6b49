package gateservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/earnova/earnova-bot/internal/domain"
)

//go:generate mockgen -source=gateservice.go -destination=mock_gateservice.go -package=gateservice

type ChannelRepo interface {
	Add(ctx context.Context, channelID int64, chType string) error
	Remove(ctx context.Context, channelID int64) error
	List(ctx context.Context) ([]domain.RequiredChannel, error)
	Version(ctx context.Context) (int, error)
	BumpVersion(ctx context.Context) (int, error)
}

type Messenger interface {
	GetChatMember(chatID, userID int64) (string, error)
}

// Service decides whether a user currently satisfies the required-channel
// membership set. The set is versioned: any add or remove bumps the version,
// which invalidates every clearance stamped before it.
type Service struct {
	channelRepo ChannelRepo
	messenger   Messenger
	primary     int64
}

func New(channelRepo ChannelRepo, messenger Messenger, primaryChannel int64) *Service {
	return &Service{
		channelRepo: channelRepo,
		messenger:   messenger,
		primary:     primaryChannel,
	}
}

// RequiredChannels returns the primary channel followed by the
// administratively added required channels in insertion order.
func (s *Service) RequiredChannels(ctx context.Context) ([]int64, error) {
	channels, err := s.channelRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	required := []int64{s.primary}
	for _, ch := range channels {
		if ch.Type != domain.ChannelTypeRequired || ch.ChannelID == s.primary {
			continue
		}
		required = append(required, ch.ChannelID)
	}
	return required, nil
}

// CheckJoined walks the required channels in order and stops at the first
// one the user is not a member of. A membership lookup failure counts as
// not joined — the gate fails closed.
func (s *Service) CheckJoined(ctx context.Context, userID int64) (bool, int64, error) {
	required, err := s.RequiredChannels(ctx)
	if err != nil {
		return false, 0, err
	}

	for _, channelID := range required {
		status, err := s.messenger.GetChatMember(channelID, userID)
		if err != nil {
			zap.L().Debug("membership lookup failed, treating as not joined",
				zap.Int64("channelID", channelID), zap.Int64("userID", userID), zap.Error(err))
			return false, channelID, nil
		}
		if status == "left" || status == "kicked" {
			return false, channelID, nil
		}
	}
	return true, 0, nil
}

func (s *Service) CurrentVersion(ctx context.Context) (int, error) {
	return s.channelRepo.Version(ctx)
}

// AddRequired registers a channel and bumps the required version, locking
// everyone out until they re-verify with /start.
func (s *Service) AddRequired(ctx context.Context, channelID int64) (int, error) {
	if err := s.channelRepo.Add(ctx, channelID, domain.ChannelTypeRequired); err != nil {
		return 0, err
	}
	return s.channelRepo.BumpVersion(ctx)
}

func (s *Service) RemoveRequired(ctx context.Context, channelID int64) (int, error) {
	if err := s.channelRepo.Remove(ctx, channelID); err != nil {
		return 0, err
	}
	return s.channelRepo.BumpVersion(ctx)
}

func (s *Service) ListChannels(ctx context.Context) ([]domain.RequiredChannel, error) {
	return s.channelRepo.List(ctx)
}
