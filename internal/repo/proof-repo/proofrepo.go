package proofrepo

import (
	"context"
	"time"

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

func (r *Repository) Create(ctx context.Context, userID, resourceID int64, deadline time.Time) (*domain.Proof, error) {
	query := `
        INSERT INTO proofs (user_id, resource_id, type, status, deadline_at)
        VALUES ($1, $2, 'pending', 'pending', $3)
        RETURNING id, user_id, resource_id, type, file_id, posted, created_at, deadline_at, status
    `
	row := r.db.QueryRow(ctx, query, userID, resourceID, deadline)

	var p domain.Proof
	err := row.Scan(&p.ID, &p.UserID, &p.ResourceID, &p.Type, &p.FileID, &p.Posted,
		&p.CreatedAt, &p.DeadlineAt, &p.Status)
	if err != nil {
		zap.L().Error("can't create proof", zap.Error(err))
		return nil, err
	}
	return &p, nil
}

// FindOpenByUser returns the user's open proof, or nil. Only pending proofs
// are open: once evidence lands the proof is resolved and stops blocking the
// next claim.
func (r *Repository) FindOpenByUser(ctx context.Context, userID int64) (*domain.Proof, error) {
	query := `
        SELECT id, user_id, resource_id, type, file_id, posted, created_at, deadline_at, status
        FROM proofs
        WHERE user_id = $1 AND status = 'pending'
        ORDER BY created_at DESC
        LIMIT 1
    `
	row := r.db.QueryRow(ctx, query, userID)

	var p domain.Proof
	err := row.Scan(&p.ID, &p.UserID, &p.ResourceID, &p.Type, &p.FileID, &p.Posted,
		&p.CreatedAt, &p.DeadlineAt, &p.Status)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find open proof", zap.Error(err))
		return nil, err
	}
	return &p, nil
}

// SetVerdict stamps the verdict onto the user's most recent pending proof.
// Returns false when the user has no pending proof.
func (r *Repository) SetVerdict(ctx context.Context, userID int64, verdict string) (bool, error) {
	query := `
        UPDATE proofs
        SET type = $2
        WHERE id = (
            SELECT id FROM proofs
            WHERE user_id = $1 AND status = 'pending'
            ORDER BY created_at DESC
            LIMIT 1
        )
    `
	tag, err := r.db.Exec(ctx, query, userID, verdict)
	if err != nil {
		zap.L().Error("can't set proof verdict", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// AttachEvidence binds the screenshot to the user's newest pending proof
// without evidence and flips it to received, all in one statement. Expired
// proofs never match, so an expired record cannot be resurrected by a late
// upload. Returns nil when nothing matched.
func (r *Repository) AttachEvidence(ctx context.Context, userID int64, fileID string) (*domain.Proof, error) {
	query := `
        UPDATE proofs
        SET file_id = $2, status = 'received'
        WHERE id = (
            SELECT id FROM proofs
            WHERE user_id = $1 AND file_id IS NULL AND status = 'pending'
            ORDER BY created_at DESC
            LIMIT 1
        )
        RETURNING id, user_id, resource_id, type, file_id, posted, created_at, deadline_at, status
    `
	row := r.db.QueryRow(ctx, query, userID, fileID)

	var p domain.Proof
	err := row.Scan(&p.ID, &p.UserID, &p.ResourceID, &p.Type, &p.FileID, &p.Posted,
		&p.CreatedAt, &p.DeadlineAt, &p.Status)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't attach evidence", zap.Error(err))
		return nil, err
	}
	return &p, nil
}

func (r *Repository) MarkPosted(ctx context.Context, id, channelID int64) error {
	query := `
        UPDATE proofs
        SET posted = array_append(posted, $2)
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, id, channelID)
	if err != nil {
		zap.L().Error("can't mark proof as posted", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) DueForExpiry(ctx context.Context, now time.Time, limit int) ([]domain.Proof, error) {
	query := `
        SELECT id, user_id, resource_id, type, file_id, posted, created_at, deadline_at, status
        FROM proofs
        WHERE status = 'pending' AND deadline_at <= $1
        ORDER BY deadline_at ASC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, now, limit)
	if err != nil {
		zap.L().Error("can't get proofs due for expiry", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var proofs []domain.Proof
	for rows.Next() {
		var p domain.Proof
		err := rows.Scan(&p.ID, &p.UserID, &p.ResourceID, &p.Type, &p.FileID, &p.Posted,
			&p.CreatedAt, &p.DeadlineAt, &p.Status)
		if err != nil {
			zap.L().Error("can't scan proof row", zap.Error(err))
			return nil, err
		}
		proofs = append(proofs, p)
	}
	return proofs, nil
}

// Expire is terminal. The status guard makes it a no-op for proofs that were
// received or already expired; the return value reports whether this call
// actually expired the proof.
func (r *Repository) Expire(ctx context.Context, id int64) (bool, error) {
	query := `
        UPDATE proofs
        SET status = 'expired'
        WHERE id = $1 AND status = 'pending'
    `
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't expire proof", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM proofs WHERE status = $1`, status).Scan(&total)
	if err != nil {
		zap.L().Error("can't count proofs", zap.Error(err))
		return 0, err
	}
	return total, nil
}
