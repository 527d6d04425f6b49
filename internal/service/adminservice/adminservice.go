package adminservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/earnova/earnova-bot/internal/domain"
)

//go:generate mockgen -source=adminservice.go -destination=mock_adminservice.go -package=adminservice

type BroadcastRepo interface {
	Enqueue(ctx context.Context, text string) (int64, error)
	ClaimNext(ctx context.Context) (*domain.BroadcastJob, error)
	Finish(ctx context.Context, id int64, sent, failed int) error
}

type AuditRepo interface {
	LogAction(ctx context.Context, adminID int64, action string, payload map[string]any) error
}

type UserRepo interface {
	CountAll(ctx context.Context) (int64, error)
}

type ResourceRepo interface {
	CountByStatus(ctx context.Context, status string) (int64, error)
}

type ProofRepo interface {
	CountByStatus(ctx context.Context, status string) (int64, error)
}

type Stats struct {
	Users         int64
	Available     int64
	Assigned      int64
	PendingProofs int64
}

type Service struct {
	broadcastRepo BroadcastRepo
	auditRepo     AuditRepo
	userRepo      UserRepo
	resourceRepo  ResourceRepo
	proofRepo     ProofRepo
}

func New(broadcastRepo BroadcastRepo, auditRepo AuditRepo, userRepo UserRepo, resourceRepo ResourceRepo, proofRepo ProofRepo) *Service {
	return &Service{
		broadcastRepo: broadcastRepo,
		auditRepo:     auditRepo,
		userRepo:      userRepo,
		resourceRepo:  resourceRepo,
		proofRepo:     proofRepo,
	}
}

// QueueBroadcast stores the message for the sweep scheduler's broadcast
// lane; nothing is sent here.
func (s *Service) QueueBroadcast(ctx context.Context, text string) (int64, error) {
	return s.broadcastRepo.Enqueue(ctx, text)
}

// LogAction records an admin command in the audit trail. Best-effort: a
// failed insert must not fail the command that triggered it.
func (s *Service) LogAction(ctx context.Context, adminID int64, action string, payload map[string]any) {
	if err := s.auditRepo.LogAction(ctx, adminID, action, payload); err != nil {
		zap.L().Warn("can't write admin audit entry",
			zap.Int64("adminID", adminID), zap.String("action", action), zap.Error(err))
	}
}

func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	users, err := s.userRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	available, err := s.resourceRepo.CountByStatus(ctx, domain.ResourceAvailable)
	if err != nil {
		return nil, err
	}
	assigned, err := s.resourceRepo.CountByStatus(ctx, domain.ResourceAssigned)
	if err != nil {
		return nil, err
	}
	pending, err := s.proofRepo.CountByStatus(ctx, domain.ProofPending)
	if err != nil {
		return nil, err
	}

	return &Stats{
		Users:         users,
		Available:     available,
		Assigned:      assigned,
		PendingProofs: pending,
	}, nil
}
