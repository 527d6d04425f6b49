package userservice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/earnova/earnova-bot/internal/domain"
)

type serviceMocks struct {
	userRepo     *MockUserRepo
	referralRepo *MockReferralRepo
	gate         *MockGate
}

func NewMock(t *testing.T) (*Service, *serviceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := &serviceMocks{
		userRepo:     NewMockUserRepo(ctrl),
		referralRepo: NewMockReferralRepo(ctrl),
		gate:         NewMockGate(ctrl),
	}
	svc := New(m.userRepo, m.referralRepo, m.gate)
	return svc, m
}

func TestService_RegisterStart(t *testing.T) {
	ctx := context.Background()
	userID := int64(42)
	referrer := int64(777)

	tests := []struct {
		name       string
		referrerID *int64
		mockSetup  func(m *serviceMocks)
		want       *StartResult
	}{
		{
			name:       "new referred user awards the referrer",
			referrerID: &referrer,
			mockSetup: func(m *serviceMocks) {
				m.userRepo.EXPECT().UpsertOnContact(ctx, userID, "tester", &referrer).Return(nil)
				m.gate.EXPECT().CheckJoined(ctx, userID).Return(true, int64(0), nil)
				m.gate.EXPECT().CurrentVersion(ctx).Return(3, nil)
				m.userRepo.EXPECT().SetJoinedVersion(ctx, userID, 3).Return(nil)
				m.referralRepo.EXPECT().Create(ctx, referrer, userID, int64(ReferralReward)).Return(true, nil)
				m.userRepo.EXPECT().AdjustPoints(ctx, referrer, int64(ReferralReward)).Return(nil)
			},
			want: &StartResult{Joined: true},
		},
		{
			name:       "repeat start does not award twice",
			referrerID: &referrer,
			mockSetup: func(m *serviceMocks) {
				m.userRepo.EXPECT().UpsertOnContact(ctx, userID, "tester", &referrer).Return(nil)
				m.gate.EXPECT().CheckJoined(ctx, userID).Return(true, int64(0), nil)
				m.gate.EXPECT().CurrentVersion(ctx).Return(3, nil)
				m.userRepo.EXPECT().SetJoinedVersion(ctx, userID, 3).Return(nil)
				m.referralRepo.EXPECT().Create(ctx, referrer, userID, int64(ReferralReward)).Return(false, nil)
			},
			want: &StartResult{Joined: true},
		},
		{
			name: "self-referral is dropped",
			referrerID: func() *int64 {
				self := userID
				return &self
			}(),
			mockSetup: func(m *serviceMocks) {
				m.userRepo.EXPECT().UpsertOnContact(ctx, userID, "tester", gomock.Nil()).Return(nil)
				m.gate.EXPECT().CheckJoined(ctx, userID).Return(true, int64(0), nil)
				m.gate.EXPECT().CurrentVersion(ctx).Return(3, nil)
				m.userRepo.EXPECT().SetJoinedVersion(ctx, userID, 3).Return(nil)
				// No referral calls at all.
			},
			want: &StartResult{Joined: true},
		},
		{
			name:       "not joined stops before the version stamp",
			referrerID: &referrer,
			mockSetup: func(m *serviceMocks) {
				m.userRepo.EXPECT().UpsertOnContact(ctx, userID, "tester", &referrer).Return(nil)
				m.gate.EXPECT().CheckJoined(ctx, userID).Return(false, int64(-100200), nil)
			},
			want: &StartResult{Joined: false, MissingChannel: -100200},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := NewMock(t)
			tt.mockSetup(m)

			result, err := svc.RegisterStart(ctx, userID, "tester", tt.referrerID)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, result)
		})
	}
}

func TestService_Locked(t *testing.T) {
	ctx := context.Background()
	userID := int64(42)

	tests := []struct {
		name      string
		mockSetup func(m *serviceMocks)
		locked    bool
	}{
		{
			name: "cleared at the current version",
			mockSetup: func(m *serviceMocks) {
				m.gate.EXPECT().CheckJoined(ctx, userID).Return(true, int64(0), nil)
				m.userRepo.EXPECT().Get(ctx, userID).Return(&domain.User{UserID: userID, JoinedRequiredVersion: 3}, nil)
				m.gate.EXPECT().CurrentVersion(ctx).Return(3, nil)
			},
			locked: false,
		},
		{
			name: "stale clearance after a version bump",
			mockSetup: func(m *serviceMocks) {
				m.gate.EXPECT().CheckJoined(ctx, userID).Return(true, int64(0), nil)
				m.userRepo.EXPECT().Get(ctx, userID).Return(&domain.User{UserID: userID, JoinedRequiredVersion: 3}, nil)
				m.gate.EXPECT().CurrentVersion(ctx).Return(4, nil)
			},
			locked: true,
		},
		{
			name: "not a member",
			mockSetup: func(m *serviceMocks) {
				m.gate.EXPECT().CheckJoined(ctx, userID).Return(false, int64(-100200), nil)
			},
			locked: true,
		},
		{
			name: "unknown user",
			mockSetup: func(m *serviceMocks) {
				m.gate.EXPECT().CheckJoined(ctx, userID).Return(true, int64(0), nil)
				m.userRepo.EXPECT().Get(ctx, userID).Return(nil, nil)
			},
			locked: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := NewMock(t)
			tt.mockSetup(m)

			locked, err := svc.Locked(ctx, userID)
			assert.NoError(t, err)
			assert.Equal(t, tt.locked, locked)
		})
	}
}

func TestService_GetProfile(t *testing.T) {
	ctx := context.Background()
	svc, m := NewMock(t)
	userID := int64(42)

	m.userRepo.EXPECT().Get(ctx, userID).Return(&domain.User{
		UserID: userID, Points: 30, AccountsTaken: 2, Language: "bn",
	}, nil)
	m.referralRepo.EXPECT().CountByReferrer(ctx, userID).Return(int64(3), nil)

	profile, err := svc.GetProfile(ctx, userID)
	assert.NoError(t, err)
	assert.Equal(t, &Profile{Points: 30, Referrals: 3, AccountsTaken: 2, Language: "bn"}, profile)
}

func TestService_ToggleLanguage(t *testing.T) {
	ctx := context.Background()
	userID := int64(42)

	tests := []struct {
		name    string
		current string
		want    string
	}{
		{name: "bn flips to en", current: "bn", want: "en"},
		{name: "en flips to bn", current: "en", want: "bn"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := NewMock(t)
			m.userRepo.EXPECT().Get(ctx, userID).Return(&domain.User{UserID: userID, Language: tt.current}, nil)
			m.userRepo.EXPECT().SetLanguage(ctx, userID, tt.want).Return(nil)

			lang, err := svc.ToggleLanguage(ctx, userID)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, lang)
		})
	}
}
