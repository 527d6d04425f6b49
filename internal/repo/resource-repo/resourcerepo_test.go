package resourcerepo

import (
	"context"
	"errors"
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

func TestRepository_Claim(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	userID := int64(42)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Resource
	}{
		{
			name: "Oldest available resource is assigned",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "name", "secret", "cost", "default_flag", "status", "assigned_to", "assigned_at", "created_at"}).
					AddRow(int64(1), "acct-1", "ct", 0, true, domain.ResourceAssigned, &userID, &now, now)
				mock.ExpectQuery(regexp.QuoteMeta(`SET status = 'assigned', assigned_to = $1, assigned_at = now()`)).
					WithArgs(userID).
					WillReturnRows(rows)
			},
			result: &domain.Resource{
				ID: 1, Name: "acct-1", Secret: "ct", Cost: 0, DefaultFlag: true,
				Status: domain.ResourceAssigned, AssignedTo: &userID, AssignedAt: &now, CreatedAt: now,
			},
		},
		{
			name: "Empty pool returns nil",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SET status = 'assigned', assigned_to = $1, assigned_at = now()`)).
					WithArgs(userID).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SET status = 'assigned', assigned_to = $1, assigned_at = now()`)).
					WithArgs(userID).
					WillReturnError(errors.New("db error"))
			},
			expectErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			res, err := repo.Claim(context.Background(), userID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, res)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Add(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO resources (name, secret, cost, default_flag, status)`)).
		WithArgs("acct-1", "ct", 5, false).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(7)))

	id, err := repo.Add(context.Background(), "acct-1", "ct", 5, false)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Remove(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`SET status = 'removed'`)).
		WithArgs(int64(7)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, repo.Remove(context.Background(), 7))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CountByStatus(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM resources WHERE status = $1`)).
		WithArgs(domain.ResourceAvailable).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(3)))

	total, err := repo.CountByStatus(context.Background(), domain.ResourceAvailable)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), total)
}
