// Package sweep runs the background reconciliation lanes: proof expiry with
// auto-ban, referral reversal for users who left the gate, and draining the
// broadcast queue. Every lane is eventually consistent — outcomes land on
// the next tick, never mid-interaction.
package sweep

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/earnova/earnova-bot/internal/config"
	"github.com/earnova/earnova-bot/internal/domain"
	"github.com/earnova/earnova-bot/internal/metrics"
	"github.com/earnova/earnova-bot/internal/service/adminservice"
	"github.com/earnova/earnova-bot/internal/service/proofservice"
	"github.com/earnova/earnova-bot/internal/service/userservice"
)

//go:generate mockgen -source=sweep.go -destination=mock_sweep.go -package=sweep

const (
	expiryBatchLimit = 200

	// Telegram tolerates roughly 25 outbound messages per 1.2s window.
	broadcastBurst  = 25
	broadcastWindow = 1200 * time.Millisecond
)

type Messenger interface {
	SendText(chatID int64, text string) error
	GetChatMember(chatID, userID int64) (string, error)
}

var inflightProofs sync.Map

type Scheduler struct {
	cfg           *config.Config
	proofRepo     proofservice.ProofRepo
	userRepo      userservice.UserRepo
	referralRepo  userservice.ReferralRepo
	broadcastRepo adminservice.BroadcastRepo
	messenger     Messenger
	workerPool    WorkerPoolI
	limiter       *rate.Limiter
}

func New(cfg *config.Config, proofRepo proofservice.ProofRepo, userRepo userservice.UserRepo,
	referralRepo userservice.ReferralRepo, broadcastRepo adminservice.BroadcastRepo, messenger Messenger) *Scheduler {
	return &Scheduler{
		cfg:           cfg,
		proofRepo:     proofRepo,
		userRepo:      userRepo,
		referralRepo:  referralRepo,
		broadcastRepo: broadcastRepo,
		messenger:     messenger,
		workerPool:    NewWorkerPool(10),
		limiter:       rate.NewLimiter(rate.Every(broadcastWindow/broadcastBurst), broadcastBurst),
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	zap.L().Info("Sweep scheduler started")
	go s.runLane(ctx, "proof-timeout", s.cfg.ProofPeriod, s.expireDueProofs)
	go s.runLane(ctx, "referral-leave", s.cfg.ReferralPeriod, s.reconcileReferrals)
	go s.runLane(ctx, "broadcast", s.cfg.BroadcastIdle, s.drainBroadcasts)
}

// runLane ticks forever; one bad iteration is logged and the lane keeps
// going on the next tick.
func (s *Scheduler) runLane(ctx context.Context, name string, period time.Duration, fn func(ctx context.Context)) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping sweep lane", zap.String("lane", name))
			return
		case <-ticker.C:
			func() {
				defer func() {
					if r := recover(); r != nil {
						zap.L().Error("sweep lane panicked", zap.String("lane", name), zap.Any("panic", r))
					}
				}()
				fn(ctx)
			}()
		}
	}
}

func (s *Scheduler) expireDueProofs(ctx context.Context) {
	due, err := s.proofRepo.DueForExpiry(ctx, time.Now().UTC(), expiryBatchLimit)
	if err != nil {
		zap.L().Error("Failed to fetch proofs due for expiry", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, proof := range due {
		proof := proof

		if _, loaded := inflightProofs.LoadOrStore(proof.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer inflightProofs.Delete(proof.ID)
				return s.expireProof(ctx, proof)
			})
			if err != nil {
				inflightProofs.Delete(proof.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error expiring proofs", zap.Error(err))
	}
}

// expireProof enforces the deadline: the proof becomes terminal, the user is
// banned, and the ban is announced best-effort. Evidence that landed between
// the batch fetch and the expiry makes the guarded update a no-op, in which
// case the user is not banned. Only an administrative unban reverses a ban.
func (s *Scheduler) expireProof(ctx context.Context, proof domain.Proof) error {
	expired, err := s.proofRepo.Expire(ctx, proof.ID)
	if err != nil {
		return fmt.Errorf("failed to expire proof %d: %w", proof.ID, err)
	}
	if !expired {
		zap.L().Info("Proof resolved before expiry, skipping ban",
			zap.Int64("proofID", proof.ID), zap.Int64("userID", proof.UserID))
		return nil
	}
	if err := s.userRepo.SetBanned(ctx, proof.UserID, true); err != nil {
		return fmt.Errorf("failed to ban user %d: %w", proof.UserID, err)
	}
	metrics.ProofsExpired.Inc()

	announcement := fmt.Sprintf("Auto-ban: User %d did not submit screenshot in time. Resource=%d",
		proof.UserID, proof.ResourceID)
	if err := s.messenger.SendText(s.cfg.ProofChannelPublic, announcement); err != nil {
		zap.L().Warn("Failed to announce auto-ban", zap.Int64("userID", proof.UserID), zap.Error(err))
	}

	zap.L().Info("Proof expired, user banned",
		zap.Int64("proofID", proof.ID), zap.Int64("userID", proof.UserID))
	return nil
}

// reconcileReferrals reverses referrals whose referred user left the primary
// channel. A membership lookup failure skips the row until the next pass.
func (s *Scheduler) reconcileReferrals(ctx context.Context) {
	referrals, err := s.referralRepo.ListActive(ctx)
	if err != nil {
		zap.L().Error("Failed to list active referrals", zap.Error(err))
		return
	}

	for _, ref := range referrals {
		status, err := s.messenger.GetChatMember(s.cfg.RequiredChannelID, ref.ReferredID)
		if err != nil {
			continue
		}
		if status != "left" && status != "kicked" {
			continue
		}

		reversed, err := s.referralRepo.MarkLeft(ctx, ref.ReferredID)
		if err != nil {
			zap.L().Error("Failed to reverse referral", zap.Int64("referredID", ref.ReferredID), zap.Error(err))
			continue
		}
		if reversed {
			zap.L().Info("Referral reversed",
				zap.Int64("referrerID", ref.ReferrerID), zap.Int64("referredID", ref.ReferredID))
		}
	}
}

// drainBroadcasts processes at most one queued job per pass, pacing sends
// to stay under the outbound rate limit. A failed send counts and moves on.
func (s *Scheduler) drainBroadcasts(ctx context.Context) {
	job, err := s.broadcastRepo.ClaimNext(ctx)
	if err != nil {
		zap.L().Error("Failed to claim broadcast job", zap.Error(err))
		return
	}
	if job == nil {
		return
	}

	ids, err := s.userRepo.ListIDs(ctx)
	if err != nil {
		zap.L().Error("Failed to list broadcast recipients", zap.Error(err))
		return
	}

	var sent, failed int
	for _, userID := range ids {
		if err := s.limiter.Wait(ctx); err != nil {
			break
		}
		if err := s.messenger.SendText(userID, job.Text); err != nil {
			failed++
			metrics.BroadcastFailed.Inc()
			continue
		}
		sent++
		metrics.BroadcastSent.Inc()
	}

	if err := s.broadcastRepo.Finish(ctx, job.ID, sent, failed); err != nil {
		zap.L().Error("Failed to finish broadcast job", zap.Int64("jobID", job.ID), zap.Error(err))
		return
	}
	zap.L().Info("Broadcast job done",
		zap.Int64("jobID", job.ID), zap.Int("sent", sent), zap.Int("failed", failed))
}
