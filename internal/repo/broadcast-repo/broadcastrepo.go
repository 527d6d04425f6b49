package broadcastrepo

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

func (r *Repository) Enqueue(ctx context.Context, text string) (int64, error) {
	query := `
        INSERT INTO broadcast_jobs (text, status)
        VALUES ($1, 'queued')
        RETURNING id
    `
	var id int64
	err := r.db.QueryRow(ctx, query, text).Scan(&id)
	if err != nil {
		zap.L().Error("can't enqueue broadcast", zap.Error(err))
		return 0, err
	}
	return id, nil
}

// ClaimNext pops the oldest queued job and flips it to running in one
// statement, so two scheduler passes can never pick up the same job.
// Returns nil when the queue is empty.
func (r *Repository) ClaimNext(ctx context.Context) (*domain.BroadcastJob, error) {
	query := `
        UPDATE broadcast_jobs
        SET status = 'running'
        WHERE id = (
            SELECT id FROM broadcast_jobs
            WHERE status = 'queued'
            ORDER BY created_at ASC
            LIMIT 1
            FOR UPDATE SKIP LOCKED
        )
        RETURNING id, text, status, sent, failed, created_at
    `
	row := r.db.QueryRow(ctx, query)

	var job domain.BroadcastJob
	err := row.Scan(&job.ID, &job.Text, &job.Status, &job.Sent, &job.Failed, &job.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't claim broadcast job", zap.Error(err))
		return nil, err
	}
	return &job, nil
}

func (r *Repository) Finish(ctx context.Context, id int64, sent, failed int) error {
	query := `
        UPDATE broadcast_jobs
        SET status = 'done', sent = $2, failed = $3
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, id, sent, failed)
	if err != nil {
		zap.L().Error("can't finish broadcast job", zap.Error(err))
		return err
	}
	return nil
}
