package telegram

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const adminHelp = `Admin commands:
/ch_add <channel_id> - add required channel
/ch_remove <channel_id> - remove required channel
/ch_list - list required channels
/points_give <user_id> <points>
/points_take <user_id> <points>
/ban <user_id>
/unban <user_id>
/res_add name|secret|cost|flag
/res_remove <resource_id>
/res_list
/broadcast <text>
/stats`

func (d *Dispatcher) handleAdminCommand(ctx context.Context, msg *tgbotapi.Message) {
	adminID := msg.From.ID
	if !d.cfg.IsAdmin(adminID) {
		d.reply(adminID, "Admin only.")
		return
	}

	args := strings.TrimSpace(msg.CommandArguments())
	switch msg.Command() {
	case "admin":
		d.reply(adminID, adminHelp)
	case "ch_add":
		d.adminChannelAdd(ctx, adminID, args)
	case "ch_remove":
		d.adminChannelRemove(ctx, adminID, args)
	case "ch_list":
		d.adminChannelList(ctx, adminID)
	case "points_give":
		d.adminAdjustPoints(ctx, adminID, args, 1, "points_give")
	case "points_take":
		d.adminAdjustPoints(ctx, adminID, args, -1, "points_take")
	case "ban":
		d.adminSetBanned(ctx, adminID, args, true)
	case "unban":
		d.adminSetBanned(ctx, adminID, args, false)
	case "res_add":
		d.adminResourceAdd(ctx, adminID, args)
	case "res_remove":
		d.adminResourceRemove(ctx, adminID, args)
	case "res_list":
		d.adminResourceList(ctx, adminID)
	case "broadcast":
		d.adminBroadcast(ctx, adminID, args)
	case "stats":
		d.adminStats(ctx, adminID)
	default:
		d.reply(adminID, "Unknown command. /admin for help.")
	}
}

func (d *Dispatcher) adminChannelAdd(ctx context.Context, adminID int64, args string) {
	channelID, err := strconv.ParseInt(args, 10, 64)
	if err != nil {
		d.reply(adminID, "Usage: /ch_add <channel_id>")
		return
	}
	version, err := d.gate.AddRequired(ctx, channelID)
	if err != nil {
		zap.L().Error("can't add required channel", zap.Int64("channelID", channelID), zap.Error(err))
		d.reply(adminID, "Failed to add channel.")
		return
	}
	d.admin.LogAction(ctx, adminID, "ch_add", map[string]any{"channel_id": channelID})
	d.reply(adminID, fmt.Sprintf("Channel %d added. Gate version is now %d.", channelID, version))
}

func (d *Dispatcher) adminChannelRemove(ctx context.Context, adminID int64, args string) {
	channelID, err := strconv.ParseInt(args, 10, 64)
	if err != nil {
		d.reply(adminID, "Usage: /ch_remove <channel_id>")
		return
	}
	version, err := d.gate.RemoveRequired(ctx, channelID)
	if err != nil {
		zap.L().Error("can't remove required channel", zap.Int64("channelID", channelID), zap.Error(err))
		d.reply(adminID, "Failed to remove channel.")
		return
	}
	d.admin.LogAction(ctx, adminID, "ch_remove", map[string]any{"channel_id": channelID})
	d.reply(adminID, fmt.Sprintf("Channel %d removed. Gate version is now %d.", channelID, version))
}

func (d *Dispatcher) adminChannelList(ctx context.Context, adminID int64) {
	channels, err := d.gate.ListChannels(ctx)
	if err != nil {
		d.reply(adminID, "Failed to list channels.")
		return
	}
	if len(channels) == 0 {
		d.reply(adminID, "No extra required channels.")
		return
	}
	var sb strings.Builder
	sb.WriteString("Required channels:\n")
	for _, ch := range channels {
		fmt.Fprintf(&sb, "%d (%s)\n", ch.ChannelID, ch.Type)
	}
	d.reply(adminID, sb.String())
}

func (d *Dispatcher) adminAdjustPoints(ctx context.Context, adminID int64, args string, sign int64, action string) {
	fields := strings.Fields(args)
	if len(fields) != 2 {
		d.reply(adminID, fmt.Sprintf("Usage: /%s <user_id> <points>", action))
		return
	}
	userID, err1 := strconv.ParseInt(fields[0], 10, 64)
	points, err2 := strconv.ParseInt(fields[1], 10, 64)
	if err1 != nil || err2 != nil || points <= 0 {
		d.reply(adminID, fmt.Sprintf("Usage: /%s <user_id> <points>", action))
		return
	}

	if err := d.users.AdjustPoints(ctx, userID, sign*points); err != nil {
		zap.L().Error("can't adjust points", zap.Int64("userID", userID), zap.Error(err))
		d.reply(adminID, "Failed to adjust points.")
		return
	}
	d.admin.LogAction(ctx, adminID, action, map[string]any{"user_id": userID, "points": points})
	d.reply(adminID, fmt.Sprintf("Done. User %d adjusted by %d points.", userID, sign*points))
}

func (d *Dispatcher) adminSetBanned(ctx context.Context, adminID int64, args string, banned bool) {
	action := "unban"
	if banned {
		action = "ban"
	}
	userID, err := strconv.ParseInt(args, 10, 64)
	if err != nil {
		d.reply(adminID, fmt.Sprintf("Usage: /%s <user_id>", action))
		return
	}
	if err := d.users.SetBanned(ctx, userID, banned); err != nil {
		zap.L().Error("can't set ban flag", zap.Int64("userID", userID), zap.Error(err))
		d.reply(adminID, "Failed.")
		return
	}
	d.admin.LogAction(ctx, adminID, action, map[string]any{"user_id": userID})
	d.reply(adminID, fmt.Sprintf("Done. User %d %sned.", userID, action))
}

// adminResourceAdd parses the pipe-separated form: name|secret|cost|flag.
func (d *Dispatcher) adminResourceAdd(ctx context.Context, adminID int64, args string) {
	parts := strings.Split(args, "|")
	if len(parts) != 4 {
		d.reply(adminID, "Usage: /res_add name|secret|cost|flag")
		return
	}
	name := strings.TrimSpace(parts[0])
	secret := strings.TrimSpace(parts[1])
	cost, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil || name == "" || secret == "" {
		d.reply(adminID, "Usage: /res_add name|secret|cost|flag")
		return
	}
	flag, err := strconv.ParseBool(strings.TrimSpace(parts[3]))
	if err != nil {
		d.reply(adminID, "Usage: /res_add name|secret|cost|flag")
		return
	}

	id, err := d.pool.Add(ctx, name, secret, cost, flag)
	if err != nil {
		zap.L().Error("can't add resource", zap.Error(err))
		d.reply(adminID, "Failed to add resource.")
		return
	}
	d.admin.LogAction(ctx, adminID, "res_add", map[string]any{"resource_id": id, "name": name})
	d.reply(adminID, fmt.Sprintf("Resource %d added.", id))
}

func (d *Dispatcher) adminResourceRemove(ctx context.Context, adminID int64, args string) {
	id, err := strconv.ParseInt(args, 10, 64)
	if err != nil {
		d.reply(adminID, "Usage: /res_remove <resource_id>")
		return
	}
	if err := d.pool.Remove(ctx, id); err != nil {
		zap.L().Error("can't remove resource", zap.Int64("resourceID", id), zap.Error(err))
		d.reply(adminID, "Failed to remove resource.")
		return
	}
	d.admin.LogAction(ctx, adminID, "res_remove", map[string]any{"resource_id": id})
	d.reply(adminID, fmt.Sprintf("Resource %d removed.", id))
}

func (d *Dispatcher) adminResourceList(ctx context.Context, adminID int64) {
	resources, err := d.pool.List(ctx, 50)
	if err != nil {
		d.reply(adminID, "Failed to list resources.")
		return
	}
	if len(resources) == 0 {
		d.reply(adminID, "Pool is empty.")
		return
	}
	var sb strings.Builder
	sb.WriteString("Resources:\n")
	for _, r := range resources {
		fmt.Fprintf(&sb, "#%d %s [%s] cost=%d\n", r.ID, r.Name, r.Status, r.Cost)
	}
	d.reply(adminID, sb.String())
}

func (d *Dispatcher) adminBroadcast(ctx context.Context, adminID int64, args string) {
	if args == "" {
		d.reply(adminID, "Usage: /broadcast <text>")
		return
	}
	jobID, err := d.admin.QueueBroadcast(ctx, args)
	if err != nil {
		zap.L().Error("can't queue broadcast", zap.Error(err))
		d.reply(adminID, "Failed to queue broadcast.")
		return
	}
	d.admin.LogAction(ctx, adminID, "broadcast", map[string]any{"job_id": jobID})
	d.reply(adminID, fmt.Sprintf("Broadcast %d queued.", jobID))
}

func (d *Dispatcher) adminStats(ctx context.Context, adminID int64) {
	stats, err := d.admin.Stats(ctx)
	if err != nil {
		d.reply(adminID, "Failed to fetch stats.")
		return
	}
	d.admin.LogAction(ctx, adminID, "stats", nil)
	d.reply(adminID, fmt.Sprintf("Users: %d\nAvailable: %d\nAssigned: %d\nPending proofs: %d",
		stats.Users, stats.Available, stats.Assigned, stats.PendingProofs))
}
