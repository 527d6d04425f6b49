package broadcastrepo

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/earnova/earnova-bot/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

func TestRepository_Enqueue(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO broadcast_jobs (text, status)`)).
		WithArgs("hello").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(5)))

	id, err := repo.Enqueue(context.Background(), "hello")
	assert.NoError(t, err)
	assert.Equal(t, int64(5), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ClaimNext(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	t.Run("Oldest queued job flips to running", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SET status = 'running'`)).
			WillReturnRows(pgxmock.NewRows([]string{"id", "text", "status", "sent", "failed", "created_at"}).
				AddRow(int64(5), "hello", domain.BroadcastRunning, 0, 0, now))

		job, err := repo.ClaimNext(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, int64(5), job.ID)
		assert.Equal(t, domain.BroadcastRunning, job.Status)
	})

	t.Run("Empty queue returns nil", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SET status = 'running'`)).
			WillReturnError(pgx.ErrNoRows)

		job, err := repo.ClaimNext(context.Background())
		assert.NoError(t, err)
		assert.Nil(t, job)
	})
}

func TestRepository_Finish(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`SET status = 'done', sent = $2, failed = $3`)).
		WithArgs(int64(5), 90, 10).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, repo.Finish(context.Background(), 5, 90, 10))
	assert.NoError(t, mock.ExpectationsWereMet())
}
