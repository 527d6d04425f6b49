package proofservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/earnova/earnova-bot/internal/domain"
)

//go:generate mockgen -source=proofservice.go -destination=mock_proofservice.go -package=proofservice

type ProofRepo interface {
	Create(ctx context.Context, userID, resourceID int64, deadline time.Time) (*domain.Proof, error)
	FindOpenByUser(ctx context.Context, userID int64) (*domain.Proof, error)
	SetVerdict(ctx context.Context, userID int64, verdict string) (bool, error)
	AttachEvidence(ctx context.Context, userID int64, fileID string) (*domain.Proof, error)
	MarkPosted(ctx context.Context, id, channelID int64) error
	DueForExpiry(ctx context.Context, now time.Time, limit int) ([]domain.Proof, error)
	Expire(ctx context.Context, id int64) (bool, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
}

type Messenger interface {
	SendPhoto(chatID int64, fileID, caption string) error
}

var (
	ErrInvalidVerdict = errors.New("verdict must be working or notworking")
	ErrNoPendingProof = errors.New("no pending proof for this user")
)

type Service struct {
	proofRepo     ProofRepo
	messenger     Messenger
	publicChannel int64
	dataChannel   int64
}

func New(proofRepo ProofRepo, messenger Messenger, publicChannel, dataChannel int64) *Service {
	return &Service{
		proofRepo:     proofRepo,
		messenger:     messenger,
		publicChannel: publicChannel,
		dataChannel:   dataChannel,
	}
}

// RecordVerdict stamps the user's chosen verdict onto their pending proof.
// The proof stays pending until a screenshot arrives.
func (s *Service) RecordVerdict(ctx context.Context, userID int64, verdict string) error {
	if verdict != domain.VerdictWorking && verdict != domain.VerdictNotWorking {
		return ErrInvalidVerdict
	}

	ok, err := s.proofRepo.SetVerdict(ctx, userID, verdict)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNoPendingProof
	}
	return nil
}

// SubmitEvidence binds the screenshot to the user's pending proof and routes
// it: the public proof channel always gets a copy, the data channel
// additionally when the verdict was notworking. Forwarding is best-effort —
// a failed post is logged and the proof still counts as received.
func (s *Service) SubmitEvidence(ctx context.Context, userID int64, fileID string) (*domain.Proof, error) {
	proof, err := s.proofRepo.AttachEvidence(ctx, userID, fileID)
	if err != nil {
		return nil, err
	}
	if proof == nil {
		return nil, ErrNoPendingProof
	}

	caption := fmt.Sprintf("User: %d\nResource: %d\nType: %s\nTime: %s",
		proof.UserID, proof.ResourceID, proof.Type, time.Now().UTC().Format(time.RFC3339))

	targets := []int64{s.publicChannel}
	if proof.Type == domain.VerdictNotWorking {
		targets = append(targets, s.dataChannel)
	}

	for _, channelID := range targets {
		if err := s.messenger.SendPhoto(channelID, fileID, caption); err != nil {
			zap.L().Warn("can't forward proof evidence",
				zap.Int64("channelID", channelID), zap.Int64("proofID", proof.ID), zap.Error(err))
			continue
		}
		if err := s.proofRepo.MarkPosted(ctx, proof.ID, channelID); err != nil {
			continue
		}
		proof.Posted = append(proof.Posted, channelID)
	}

	return proof, nil
}

func (s *Service) PendingCount(ctx context.Context) (int64, error) {
	return s.proofRepo.CountByStatus(ctx, domain.ProofPending)
}
