package auditrepo

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/earnova/earnova-bot/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// LogAction is write-only; nothing in the bot reads it back. A marshalling
// or insert failure is logged and reported but never blocks the admin
// command itself.
func (r *Repository) LogAction(ctx context.Context, adminID int64, action string, payload map[string]any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		zap.L().Error("can't marshal admin action payload", zap.Error(err))
		return err
	}

	query := `
        INSERT INTO admin_actions (admin_id, action, payload)
        VALUES ($1, $2, $3)
    `
	_, err = r.db.Exec(ctx, query, adminID, action, raw)
	if err != nil {
		zap.L().Error("can't log admin action", zap.Error(err))
		return err
	}
	return nil
}
