package channelrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/earnova/earnova-bot/internal/domain"
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

func (r *Repository) Add(ctx context.Context, channelID int64, chType string) error {
	query := `
        INSERT INTO channels (channel_id, type, active)
        VALUES ($1, $2, TRUE)
        ON CONFLICT (channel_id) DO UPDATE
        SET type = EXCLUDED.type, active = TRUE, updated_at = now()
    `
	_, err := r.db.Exec(ctx, query, channelID, chType)
	if err != nil {
		zap.L().Error("can't add channel", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Remove(ctx context.Context, channelID int64) error {
	query := `
        DELETE FROM channels
        WHERE channel_id = $1
    `
	_, err := r.db.Exec(ctx, query, channelID)
	if err != nil {
		zap.L().Error("can't remove channel", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) List(ctx context.Context) ([]domain.RequiredChannel, error) {
	query := `
        SELECT channel_id, type, active, updated_at
        FROM channels
        WHERE active
        ORDER BY updated_at ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list channels", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var channels []domain.RequiredChannel
	for rows.Next() {
		var ch domain.RequiredChannel
		if err := rows.Scan(&ch.ChannelID, &ch.Type, &ch.Active, &ch.UpdatedAt); err != nil {
			zap.L().Error("can't scan channel row", zap.Error(err))
			return nil, err
		}
		channels = append(channels, ch)
	}
	return channels, nil
}

func (r *Repository) Version(ctx context.Context) (int, error) {
	var version int
	err := r.db.QueryRow(ctx, `SELECT required_version FROM bot_state WHERE id = 1`).Scan(&version)
	if err != nil {
		zap.L().Error("can't read required version", zap.Error(err))
		return 0, err
	}
	return version, nil
}

// BumpVersion is the only writer of the required-version counter. It only
// ever increments, so every clearance stamped before the bump goes stale.
func (r *Repository) BumpVersion(ctx context.Context) (int, error) {
	query := `
        UPDATE bot_state
        SET required_version = required_version + 1
        WHERE id = 1
        RETURNING required_version
    `
	var version int
	err := r.db.QueryRow(ctx, query).Scan(&version)
	if err != nil {
		zap.L().Error("can't bump required version", zap.Error(err))
		return 0, err
	}
	return version, nil
}
