package resourcerepo

import (
	"context"

	"github.com/jackc/pgx/v5"
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

// Claim hands the oldest available resource to userID. The select and the
// status flip happen in one statement, so under concurrent claims each
// resource is returned to exactly one caller; SKIP LOCKED keeps racing
// claimers from queueing on the same row. Returns nil when the pool is empty.
func (r *Repository) Claim(ctx context.Context, userID int64) (*domain.Resource, error) {
	query := `
        UPDATE resources
        SET status = 'assigned', assigned_to = $1, assigned_at = now()
        WHERE id = (
            SELECT id FROM resources
            WHERE status = 'available'
            ORDER BY created_at ASC
            LIMIT 1
            FOR UPDATE SKIP LOCKED
        )
        RETURNING id, name, secret, cost, default_flag, status, assigned_to, assigned_at, created_at
    `
	row := r.db.QueryRow(ctx, query, userID)

	var res domain.Resource
	err := row.Scan(&res.ID, &res.Name, &res.Secret, &res.Cost, &res.DefaultFlag,
		&res.Status, &res.AssignedTo, &res.AssignedAt, &res.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't claim resource", zap.Error(err))
		return nil, err
	}
	return &res, nil
}

func (r *Repository) Add(ctx context.Context, name, secret string, cost int, defaultFlag bool) (int64, error) {
	query := `
        INSERT INTO resources (name, secret, cost, default_flag, status)
        VALUES ($1, $2, $3, $4, 'available')
        RETURNING id
    `
	var id int64
	err := r.db.QueryRow(ctx, query, name, secret, cost, defaultFlag).Scan(&id)
	if err != nil {
		zap.L().Error("can't save resource", zap.Error(err))
		return 0, err
	}
	return id, nil
}

// Remove soft-deletes. Removing an absent or already-removed resource is a
// no-op.
func (r *Repository) Remove(ctx context.Context, id int64) error {
	query := `
        UPDATE resources
        SET status = 'removed'
        WHERE id = $1 AND status <> 'removed'
    `
	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't remove resource", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) List(ctx context.Context, limit int) ([]domain.Resource, error) {
	query := `
        SELECT id, name, secret, cost, default_flag, status, assigned_to, assigned_at, created_at
        FROM resources
        ORDER BY created_at DESC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("can't list resources", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var resources []domain.Resource
	for rows.Next() {
		var res domain.Resource
		err := rows.Scan(&res.ID, &res.Name, &res.Secret, &res.Cost, &res.DefaultFlag,
			&res.Status, &res.AssignedTo, &res.AssignedAt, &res.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan resource row", zap.Error(err))
			return nil, err
		}
		resources = append(resources, res)
	}
	return resources, nil
}

func (r *Repository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM resources WHERE status = $1`, status).Scan(&total)
	if err != nil {
		zap.L().Error("can't count resources", zap.Error(err))
		return 0, err
	}
	return total, nil
}
