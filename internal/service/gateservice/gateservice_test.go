package gateservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/earnova/earnova-bot/internal/domain"
)

const primary = int64(-100200)

type serviceMocks struct {
	channelRepo *MockChannelRepo
	messenger   *MockMessenger
}

func NewMock(t *testing.T) (*Service, *serviceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := &serviceMocks{
		channelRepo: NewMockChannelRepo(ctrl),
		messenger:   NewMockMessenger(ctrl),
	}
	svc := New(m.channelRepo, m.messenger, primary)
	return svc, m
}

func TestService_RequiredChannels(t *testing.T) {
	ctx := context.Background()
	svc, m := NewMock(t)

	// The primary channel is first and never duplicated.
	m.channelRepo.EXPECT().List(ctx).Return([]domain.RequiredChannel{
		{ChannelID: primary, Type: domain.ChannelTypeRequired},
		{ChannelID: -100555, Type: domain.ChannelTypeRequired},
		{ChannelID: -100666, Type: "optional"},
	}, nil)

	required, err := svc.RequiredChannels(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []int64{primary, -100555}, required)
}

func TestService_CheckJoined(t *testing.T) {
	ctx := context.Background()
	userID := int64(42)

	tests := []struct {
		name        string
		mockSetup   func(m *serviceMocks)
		wantOK      bool
		wantMissing int64
	}{
		{
			name: "member of every required channel",
			mockSetup: func(m *serviceMocks) {
				m.channelRepo.EXPECT().List(ctx).Return([]domain.RequiredChannel{
					{ChannelID: -100555, Type: domain.ChannelTypeRequired},
				}, nil)
				m.messenger.EXPECT().GetChatMember(primary, userID).Return("member", nil)
				m.messenger.EXPECT().GetChatMember(int64(-100555), userID).Return("administrator", nil)
			},
			wantOK: true,
		},
		{
			name: "left the second channel",
			mockSetup: func(m *serviceMocks) {
				m.channelRepo.EXPECT().List(ctx).Return([]domain.RequiredChannel{
					{ChannelID: -100555, Type: domain.ChannelTypeRequired},
				}, nil)
				m.messenger.EXPECT().GetChatMember(primary, userID).Return("member", nil)
				m.messenger.EXPECT().GetChatMember(int64(-100555), userID).Return("left", nil)
			},
			wantOK:      false,
			wantMissing: -100555,
		},
		{
			name: "kicked from the primary channel",
			mockSetup: func(m *serviceMocks) {
				m.channelRepo.EXPECT().List(ctx).Return(nil, nil)
				m.messenger.EXPECT().GetChatMember(primary, userID).Return("kicked", nil)
			},
			wantOK:      false,
			wantMissing: primary,
		},
		{
			name: "lookup failure fails closed",
			mockSetup: func(m *serviceMocks) {
				m.channelRepo.EXPECT().List(ctx).Return(nil, nil)
				m.messenger.EXPECT().GetChatMember(primary, userID).Return("", errors.New("api error"))
			},
			wantOK:      false,
			wantMissing: primary,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := NewMock(t)
			tt.mockSetup(m)

			ok, missing, err := svc.CheckJoined(ctx, userID)
			assert.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantMissing, missing)
		})
	}
}

func TestService_AddRequired_BumpsVersion(t *testing.T) {
	ctx := context.Background()
	svc, m := NewMock(t)

	m.channelRepo.EXPECT().Add(ctx, int64(-100555), domain.ChannelTypeRequired).Return(nil)
	m.channelRepo.EXPECT().BumpVersion(ctx).Return(4, nil)

	version, err := svc.AddRequired(ctx, -100555)
	assert.NoError(t, err)
	assert.Equal(t, 4, version)
}

func TestService_RemoveRequired_BumpsVersion(t *testing.T) {
	ctx := context.Background()
	svc, m := NewMock(t)

	m.channelRepo.EXPECT().Remove(ctx, int64(-100555)).Return(nil)
	m.channelRepo.EXPECT().BumpVersion(ctx).Return(5, nil)

	version, err := svc.RemoveRequired(ctx, -100555)
	assert.NoError(t, err)
	assert.Equal(t, 5, version)
}
