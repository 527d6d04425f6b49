package referralrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/earnova/earnova-bot/internal/domain"
	"github.com/earnova/earnova-bot/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// Create records a referral once per referred user. Returns false when a
// referral for this user already exists.
func (r *Repository) Create(ctx context.Context, referrerID, referredID, points int64) (bool, error) {
	query := `
        INSERT INTO referrals (referrer_id, referred_id, points_awarded)
        VALUES ($1, $2, $3)
        ON CONFLICT (referred_id) DO NOTHING
    `
	tag, err := r.db.Exec(ctx, query, referrerID, referredID, points)
	if err != nil {
		zap.L().Error("can't create referral", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) ListActive(ctx context.Context) ([]domain.Referral, error) {
	query := `
        SELECT referrer_id, referred_id, joined_at, left_at, points_awarded
        FROM referrals
        WHERE left_at IS NULL
        ORDER BY joined_at ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list active referrals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var referrals []domain.Referral
	for rows.Next() {
		var ref domain.Referral
		if err := rows.Scan(&ref.ReferrerID, &ref.ReferredID, &ref.JoinedAt, &ref.LeftAt, &ref.PointsAwarded); err != nil {
			zap.L().Error("can't scan referral row", zap.Error(err))
			return nil, err
		}
		referrals = append(referrals, ref)
	}
	return referrals, nil
}

// MarkLeft reverses the referral for a referred user who left the gate:
// left_at is stamped and the awarded points are taken back from the
// referrer, in one transaction. The left_at guard makes the whole operation
// idempotent — a second call matches nothing and deducts nothing.
func (r *Repository) MarkLeft(ctx context.Context, referredID int64) (bool, error) {
	reversed := false
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		query := `
            UPDATE referrals
            SET left_at = now()
            WHERE referred_id = $1 AND left_at IS NULL
            RETURNING referrer_id, points_awarded
        `
		rows, err := r.db.Query(ctx, query, referredID)
		if err != nil {
			zap.L().Error("can't mark referral left", zap.Error(err))
			return err
		}
		var referrerID, awarded int64
		for rows.Next() {
			if err := rows.Scan(&referrerID, &awarded); err != nil {
				rows.Close()
				zap.L().Error("can't scan reversed referral", zap.Error(err))
				return err
			}
			reversed = true
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return err
		}
		if !reversed {
			return nil
		}

		_, err = r.db.Exec(ctx, `UPDATE users SET points = points - $2 WHERE user_id = $1`, referrerID, awarded)
		if err != nil {
			zap.L().Error("can't deduct referral points", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return reversed, nil
}

func (r *Repository) CountByReferrer(ctx context.Context, referrerID int64) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM referrals WHERE referrer_id = $1`, referrerID).Scan(&total)
	if err != nil {
		zap.L().Error("can't count referrals", zap.Error(err))
		return 0, err
	}
	return total, nil
}
