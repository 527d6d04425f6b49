package userrepo

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

// UpsertOnContact creates the user on first contact and only refreshes
// username and last_active afterwards. referrer_id is written once, on
// insert, and never overwritten.
func (r *Repository) UpsertOnContact(ctx context.Context, userID int64, username string, referrerID *int64) error {
	query := `
        INSERT INTO users (user_id, username, referrer_id)
        VALUES ($1, $2, $3)
        ON CONFLICT (user_id) DO UPDATE
        SET username = EXCLUDED.username, last_active = now()
    `
	_, err := r.db.Exec(ctx, query, userID, username, referrerID)
	if err != nil {
		zap.L().Error("can't upsert user", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Get(ctx context.Context, userID int64) (*domain.User, error) {
	query := `
        SELECT user_id, username, language, points, banned, accounts_taken,
               referrer_id, joined_required_version, created_at, last_active
        FROM users
        WHERE user_id = $1
    `
	row := r.db.QueryRow(ctx, query, userID)

	var user domain.User
	err := row.Scan(&user.UserID, &user.Username, &user.Language, &user.Points, &user.Banned,
		&user.AccountsTaken, &user.ReferrerID, &user.JoinedRequiredVersion, &user.CreatedAt, &user.LastActive)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

// AdjustPoints applies delta atomically in the database. There is no floor:
// balances may go negative and callers decide what that means.
func (r *Repository) AdjustPoints(ctx context.Context, userID int64, delta int64) error {
	query := `
        UPDATE users
        SET points = points + $2
        WHERE user_id = $1
    `
	_, err := r.db.Exec(ctx, query, userID, delta)
	if err != nil {
		zap.L().Error("can't adjust points", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SetBanned(ctx context.Context, userID int64, banned bool) error {
	query := `
        UPDATE users
        SET banned = $2
        WHERE user_id = $1
    `
	_, err := r.db.Exec(ctx, query, userID, banned)
	if err != nil {
		zap.L().Error("can't set banned flag", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SetJoinedVersion(ctx context.Context, userID int64, version int) error {
	query := `
        UPDATE users
        SET joined_required_version = $2
        WHERE user_id = $1
    `
	_, err := r.db.Exec(ctx, query, userID, version)
	if err != nil {
		zap.L().Error("can't set joined version", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) IncAccountsTaken(ctx context.Context, userID int64, n int) error {
	query := `
        UPDATE users
        SET accounts_taken = accounts_taken + $2
        WHERE user_id = $1
    `
	_, err := r.db.Exec(ctx, query, userID, n)
	if err != nil {
		zap.L().Error("can't increment accounts taken", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SetLanguage(ctx context.Context, userID int64, lang string) error {
	query := `
        UPDATE users
        SET language = $2, last_active = now()
        WHERE user_id = $1
    `
	_, err := r.db.Exec(ctx, query, userID, lang)
	if err != nil {
		zap.L().Error("can't set language", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) CountAll(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM users`).Scan(&total)
	if err != nil {
		zap.L().Error("can't count users", zap.Error(err))
		return 0, err
	}
	return total, nil
}

func (r *Repository) ListIDs(ctx context.Context) ([]int64, error) {
	query := `
        SELECT user_id
        FROM users
        ORDER BY created_at ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list user ids", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			zap.L().Error("can't scan user id", zap.Error(err))
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
