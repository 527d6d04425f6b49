package poolservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/earnova/earnova-bot/internal/domain"
)

type serviceMocks struct {
	resourceRepo *MockResourceRepo
	userRepo     *MockUserRepo
	proofRepo    *MockProofRepo
	cipher       *MockCipher
}

func NewMock(t *testing.T) (*Service, *serviceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := &serviceMocks{
		resourceRepo: NewMockResourceRepo(ctrl),
		userRepo:     NewMockUserRepo(ctrl),
		proofRepo:    NewMockProofRepo(ctrl),
		cipher:       NewMockCipher(ctrl),
	}
	svc := New(m.resourceRepo, m.userRepo, m.proofRepo, m.cipher, 10*time.Minute)
	return svc, m
}

func TestService_Claim(t *testing.T) {
	ctx := context.Background()
	userID := int64(42)

	resource := &domain.Resource{ID: 3, Name: "acct-3", Secret: "v1:ct", Status: domain.ResourceAssigned}
	proof := &domain.Proof{ID: 7, UserID: userID, ResourceID: 3, Status: domain.ProofPending}

	tests := []struct {
		name      string
		mockSetup func(m *serviceMocks)
		expectErr bool
		sentinel  error
		want      *ClaimResult
	}{
		{
			name: "eligible user claims and a proof opens",
			mockSetup: func(m *serviceMocks) {
				m.userRepo.EXPECT().Get(ctx, userID).Return(&domain.User{UserID: userID, Points: 5}, nil)
				m.proofRepo.EXPECT().FindOpenByUser(ctx, userID).Return(nil, nil)
				m.resourceRepo.EXPECT().Claim(ctx, userID).Return(resource, nil)
				m.cipher.EXPECT().Decrypt("v1:ct").Return("hunter2", nil)
				m.userRepo.EXPECT().IncAccountsTaken(ctx, userID, 1).Return(nil)
				m.proofRepo.EXPECT().Create(ctx, userID, int64(3), gomock.Any()).Return(proof, nil)
			},
			want: &ClaimResult{Resource: resource, Secret: "hunter2", Proof: proof},
		},
		{
			name: "unknown user",
			mockSetup: func(m *serviceMocks) {
				m.userRepo.EXPECT().Get(ctx, userID).Return(nil, nil)
			},
			expectErr: true,
			sentinel:  ErrUnknownUser,
		},
		{
			name: "banned user",
			mockSetup: func(m *serviceMocks) {
				m.userRepo.EXPECT().Get(ctx, userID).Return(&domain.User{UserID: userID, Banned: true}, nil)
			},
			expectErr: true,
			sentinel:  ErrBanned,
		},
		{
			name: "negative points",
			mockSetup: func(m *serviceMocks) {
				m.userRepo.EXPECT().Get(ctx, userID).Return(&domain.User{UserID: userID, Points: -10}, nil)
			},
			expectErr: true,
			sentinel:  ErrNegativePoints,
		},
		{
			name: "pending proof blocks a second claim",
			mockSetup: func(m *serviceMocks) {
				m.userRepo.EXPECT().Get(ctx, userID).Return(&domain.User{UserID: userID}, nil)
				m.proofRepo.EXPECT().FindOpenByUser(ctx, userID).Return(proof, nil)
			},
			expectErr: true,
			sentinel:  ErrProofOpen,
		},
		{
			name: "empty pool",
			mockSetup: func(m *serviceMocks) {
				m.userRepo.EXPECT().Get(ctx, userID).Return(&domain.User{UserID: userID}, nil)
				m.proofRepo.EXPECT().FindOpenByUser(ctx, userID).Return(nil, nil)
				m.resourceRepo.EXPECT().Claim(ctx, userID).Return(nil, nil)
			},
			expectErr: true,
			sentinel:  ErrNoneAvailable,
		},
		{
			name: "corrupt secret surfaces as an operation error",
			mockSetup: func(m *serviceMocks) {
				m.userRepo.EXPECT().Get(ctx, userID).Return(&domain.User{UserID: userID}, nil)
				m.proofRepo.EXPECT().FindOpenByUser(ctx, userID).Return(nil, nil)
				m.resourceRepo.EXPECT().Claim(ctx, userID).Return(resource, nil)
				m.cipher.EXPECT().Decrypt("v1:ct").Return("", errors.New("secret is corrupt or key mismatch"))
			},
			expectErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := NewMock(t)
			tt.mockSetup(m)

			result, err := svc.Claim(ctx, userID)
			if tt.expectErr {
				assert.Error(t, err)
				if tt.sentinel != nil {
					assert.ErrorIs(t, err, tt.sentinel)
				}
				assert.Nil(t, result)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, result)
		})
	}
}

// The proof deadline is stamped from the configured window.
func TestService_Claim_DeadlineWindow(t *testing.T) {
	ctx := context.Background()
	svc, m := NewMock(t)
	userID := int64(42)

	m.userRepo.EXPECT().Get(ctx, userID).Return(&domain.User{UserID: userID}, nil)
	m.proofRepo.EXPECT().FindOpenByUser(ctx, userID).Return(nil, nil)
	m.resourceRepo.EXPECT().Claim(ctx, userID).Return(&domain.Resource{ID: 3, Secret: "v1:ct"}, nil)
	m.cipher.EXPECT().Decrypt("v1:ct").Return("pw", nil)
	m.userRepo.EXPECT().IncAccountsTaken(ctx, userID, 1).Return(nil)

	before := time.Now().UTC()
	m.proofRepo.EXPECT().Create(ctx, userID, int64(3), gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _ int64, deadline time.Time) (*domain.Proof, error) {
			assert.WithinDuration(t, before.Add(10*time.Minute), deadline, 5*time.Second)
			return &domain.Proof{ID: 7, DeadlineAt: deadline}, nil
		},
	)

	_, err := svc.Claim(ctx, userID)
	assert.NoError(t, err)
}

func TestService_VoidProof(t *testing.T) {
	ctx := context.Background()

	t.Run("pending proof is voided", func(t *testing.T) {
		svc, m := NewMock(t)
		m.proofRepo.EXPECT().Expire(ctx, int64(7)).Return(true, nil)

		assert.NoError(t, svc.VoidProof(ctx, 7))
	})

	t.Run("already resolved proof is a no-op", func(t *testing.T) {
		svc, m := NewMock(t)
		m.proofRepo.EXPECT().Expire(ctx, int64(7)).Return(false, nil)

		assert.NoError(t, svc.VoidProof(ctx, 7))
	})
}

func TestService_Add(t *testing.T) {
	ctx := context.Background()
	svc, m := NewMock(t)

	// The plaintext never reaches the repo.
	m.cipher.EXPECT().Encrypt("hunter2").Return("v1:ct", nil)
	m.resourceRepo.EXPECT().Add(ctx, "acct-3", "v1:ct", 0, true).Return(int64(3), nil)

	id, err := svc.Add(ctx, "acct-3", "hunter2", 0, true)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), id)
}

func TestService_AvailableCount(t *testing.T) {
	ctx := context.Background()
	svc, m := NewMock(t)

	m.resourceRepo.EXPECT().CountByStatus(ctx, domain.ResourceAvailable).Return(int64(4), nil)

	total, err := svc.AvailableCount(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(4), total)
}
