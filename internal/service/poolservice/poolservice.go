package poolservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/earnova/earnova-bot/internal/domain"
)

//go:generate mockgen -source=poolservice.go -destination=mock_poolservice.go -package=poolservice

type ResourceRepo interface {
	Claim(ctx context.Context, userID int64) (*domain.Resource, error)
	Add(ctx context.Context, name, secret string, cost int, defaultFlag bool) (int64, error)
	Remove(ctx context.Context, id int64) error
	List(ctx context.Context, limit int) ([]domain.Resource, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
}

type UserRepo interface {
	Get(ctx context.Context, userID int64) (*domain.User, error)
	IncAccountsTaken(ctx context.Context, userID int64, n int) error
}

type ProofRepo interface {
	FindOpenByUser(ctx context.Context, userID int64) (*domain.Proof, error)
	Create(ctx context.Context, userID, resourceID int64, deadline time.Time) (*domain.Proof, error)
	Expire(ctx context.Context, id int64) (bool, error)
}

type Cipher interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

var (
	ErrUnknownUser    = errors.New("user is not registered")
	ErrBanned         = errors.New("user is banned")
	ErrNegativePoints = errors.New("user has a negative points balance")
	ErrProofOpen      = errors.New("user already has an open proof")
	ErrNoneAvailable  = errors.New("no resource is available")
)

// ClaimResult is what a successful claim hands back to the transport layer:
// the assigned resource, its decrypted credential and the opened proof.
type ClaimResult struct {
	Resource *domain.Resource
	Secret   string
	Proof    *domain.Proof
}

type Service struct {
	resourceRepo ResourceRepo
	userRepo     UserRepo
	proofRepo    ProofRepo
	cipher       Cipher
	deadline     time.Duration
}

func New(resourceRepo ResourceRepo, userRepo UserRepo, proofRepo ProofRepo, cipher Cipher, deadline time.Duration) *Service {
	return &Service{
		resourceRepo: resourceRepo,
		userRepo:     userRepo,
		proofRepo:    proofRepo,
		cipher:       cipher,
		deadline:     deadline,
	}
}

// Claim runs the whole distribution flow: eligibility checks, the atomic
// pool claim, credential decryption and opening the verification proof.
// A user whose previous proof is still pending is refused a second resource
// until that proof resolves.
func (s *Service) Claim(ctx context.Context, userID int64) (*ClaimResult, error) {
	user, err := s.userRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUnknownUser
	}
	if user.Banned {
		return nil, ErrBanned
	}
	if user.Points < 0 {
		return nil, ErrNegativePoints
	}

	open, err := s.proofRepo.FindOpenByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if open != nil {
		return nil, ErrProofOpen
	}

	res, err := s.resourceRepo.Claim(ctx, userID)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, ErrNoneAvailable
	}

	secret, err := s.cipher.Decrypt(res.Secret)
	if err != nil {
		zap.L().Error("can't decrypt resource secret",
			zap.Int64("resourceID", res.ID), zap.Error(err))
		return nil, fmt.Errorf("resource %d: %w", res.ID, err)
	}

	if err := s.userRepo.IncAccountsTaken(ctx, userID, 1); err != nil {
		return nil, err
	}

	proof, err := s.proofRepo.Create(ctx, userID, res.ID, time.Now().UTC().Add(s.deadline))
	if err != nil {
		return nil, err
	}

	zap.L().Info("resource claimed",
		zap.Int64("userID", userID), zap.Int64("resourceID", res.ID))
	return &ClaimResult{Resource: res, Secret: secret, Proof: proof}, nil
}

func (s *Service) Add(ctx context.Context, name, secret string, cost int, defaultFlag bool) (int64, error) {
	ciphertext, err := s.cipher.Encrypt(secret)
	if err != nil {
		return 0, err
	}
	return s.resourceRepo.Add(ctx, name, ciphertext, cost, defaultFlag)
}

// VoidProof abandons a proof whose credential message never reached the
// user, so the running deadline cannot auto-ban them. Only a still-pending
// proof is voided.
func (s *Service) VoidProof(ctx context.Context, proofID int64) error {
	_, err := s.proofRepo.Expire(ctx, proofID)
	return err
}

func (s *Service) Remove(ctx context.Context, id int64) error {
	return s.resourceRepo.Remove(ctx, id)
}

func (s *Service) List(ctx context.Context, limit int) ([]domain.Resource, error) {
	return s.resourceRepo.List(ctx, limit)
}

func (s *Service) AvailableCount(ctx context.Context) (int64, error) {
	return s.resourceRepo.CountByStatus(ctx, domain.ResourceAvailable)
}
