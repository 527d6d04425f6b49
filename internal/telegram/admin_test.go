package telegram

import (
	"context"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/earnova/earnova-bot/internal/domain"
	"github.com/earnova/earnova-bot/internal/service/adminservice"
)

const adminID = int64(900)

func TestDispatcher_AdminOnly(t *testing.T) {
	ctx := context.Background()
	d, m := newTestDispatcher(t)

	m.bot.EXPECT().SendText(int64(42), "Admin only.").Return(nil)
	d.handleAdminCommand(ctx, commandMsg(42, "/stats"))
}

func TestDispatcher_AdminCommands(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		text      string
		mockSetup func(m *dispatcherMocks)
	}{
		{
			name: "ch_add bumps the gate version",
			text: "/ch_add -100555",
			mockSetup: func(m *dispatcherMocks) {
				m.gate.EXPECT().AddRequired(ctx, int64(-100555)).Return(4, nil)
				m.admin.EXPECT().LogAction(ctx, adminID, "ch_add", map[string]any{"channel_id": int64(-100555)})
				m.bot.EXPECT().SendText(adminID, "Channel -100555 added. Gate version is now 4.").Return(nil)
			},
		},
		{
			name: "ch_add rejects a bad id",
			text: "/ch_add oops",
			mockSetup: func(m *dispatcherMocks) {
				m.bot.EXPECT().SendText(adminID, "Usage: /ch_add <channel_id>").Return(nil)
			},
		},
		{
			name: "ch_remove bumps the gate version",
			text: "/ch_remove -100555",
			mockSetup: func(m *dispatcherMocks) {
				m.gate.EXPECT().RemoveRequired(ctx, int64(-100555)).Return(5, nil)
				m.admin.EXPECT().LogAction(ctx, adminID, "ch_remove", map[string]any{"channel_id": int64(-100555)})
				m.bot.EXPECT().SendText(adminID, "Channel -100555 removed. Gate version is now 5.").Return(nil)
			},
		},
		{
			name: "ch_list",
			text: "/ch_list",
			mockSetup: func(m *dispatcherMocks) {
				m.gate.EXPECT().ListChannels(ctx).Return([]domain.RequiredChannel{
					{ChannelID: -100555, Type: domain.ChannelTypeRequired},
				}, nil)
				m.bot.EXPECT().SendText(adminID, "Required channels:\n-100555 (required)\n").Return(nil)
			},
		},
		{
			name: "points_give",
			text: "/points_give 42 15",
			mockSetup: func(m *dispatcherMocks) {
				m.users.EXPECT().AdjustPoints(ctx, int64(42), int64(15)).Return(nil)
				m.admin.EXPECT().LogAction(ctx, adminID, "points_give", map[string]any{"user_id": int64(42), "points": int64(15)})
				m.bot.EXPECT().SendText(adminID, "Done. User 42 adjusted by 15 points.").Return(nil)
			},
		},
		{
			name: "points_take negates the delta",
			text: "/points_take 42 15",
			mockSetup: func(m *dispatcherMocks) {
				m.users.EXPECT().AdjustPoints(ctx, int64(42), int64(-15)).Return(nil)
				m.admin.EXPECT().LogAction(ctx, adminID, "points_take", map[string]any{"user_id": int64(42), "points": int64(15)})
				m.bot.EXPECT().SendText(adminID, "Done. User 42 adjusted by -15 points.").Return(nil)
			},
		},
		{
			name: "points_give rejects zero",
			text: "/points_give 42 0",
			mockSetup: func(m *dispatcherMocks) {
				m.bot.EXPECT().SendText(adminID, "Usage: /points_give <user_id> <points>").Return(nil)
			},
		},
		{
			name: "ban",
			text: "/ban 42",
			mockSetup: func(m *dispatcherMocks) {
				m.users.EXPECT().SetBanned(ctx, int64(42), true).Return(nil)
				m.admin.EXPECT().LogAction(ctx, adminID, "ban", map[string]any{"user_id": int64(42)})
				m.bot.EXPECT().SendText(adminID, "Done. User 42 banned.").Return(nil)
			},
		},
		{
			name: "unban",
			text: "/unban 42",
			mockSetup: func(m *dispatcherMocks) {
				m.users.EXPECT().SetBanned(ctx, int64(42), false).Return(nil)
				m.admin.EXPECT().LogAction(ctx, adminID, "unban", map[string]any{"user_id": int64(42)})
				m.bot.EXPECT().SendText(adminID, "Done. User 42 unbanned.").Return(nil)
			},
		},
		{
			name: "res_add parses the pipe form",
			text: "/res_add netflix-7|user:pass123|0|true",
			mockSetup: func(m *dispatcherMocks) {
				m.pool.EXPECT().Add(ctx, "netflix-7", "user:pass123", 0, true).Return(int64(12), nil)
				m.admin.EXPECT().LogAction(ctx, adminID, "res_add", map[string]any{"resource_id": int64(12), "name": "netflix-7"})
				m.bot.EXPECT().SendText(adminID, "Resource 12 added.").Return(nil)
			},
		},
		{
			name: "res_add rejects a short form",
			text: "/res_add name|secret",
			mockSetup: func(m *dispatcherMocks) {
				m.bot.EXPECT().SendText(adminID, "Usage: /res_add name|secret|cost|flag").Return(nil)
			},
		},
		{
			name: "res_remove",
			text: "/res_remove 12",
			mockSetup: func(m *dispatcherMocks) {
				m.pool.EXPECT().Remove(ctx, int64(12)).Return(nil)
				m.admin.EXPECT().LogAction(ctx, adminID, "res_remove", map[string]any{"resource_id": int64(12)})
				m.bot.EXPECT().SendText(adminID, "Resource 12 removed.").Return(nil)
			},
		},
		{
			name: "broadcast queues a job",
			text: "/broadcast hello everyone",
			mockSetup: func(m *dispatcherMocks) {
				m.admin.EXPECT().QueueBroadcast(ctx, "hello everyone").Return(int64(3), nil)
				m.admin.EXPECT().LogAction(ctx, adminID, "broadcast", map[string]any{"job_id": int64(3)})
				m.bot.EXPECT().SendText(adminID, "Broadcast 3 queued.").Return(nil)
			},
		},
		{
			name: "stats",
			text: "/stats",
			mockSetup: func(m *dispatcherMocks) {
				m.admin.EXPECT().Stats(ctx).Return(&adminservice.Stats{
					Users: 100, Available: 5, Assigned: 20, PendingProofs: 2,
				}, nil)
				m.admin.EXPECT().LogAction(ctx, adminID, "stats", gomock.Nil())
				m.bot.EXPECT().SendText(adminID, "Users: 100\nAvailable: 5\nAssigned: 20\nPending proofs: 2").Return(nil)
			},
		},
		{
			name: "unknown admin command",
			text: "/frobnicate",
			mockSetup: func(m *dispatcherMocks) {
				m.bot.EXPECT().SendText(adminID, "Unknown command. /admin for help.").Return(nil)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, m := newTestDispatcher(t)
			tt.mockSetup(m)
			d.handleAdminCommand(ctx, commandMsg(adminID, tt.text))
		})
	}
}
