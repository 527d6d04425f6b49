package proofrepo

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

var proofColumns = []string{"id", "user_id", "resource_id", "type", "file_id", "posted", "created_at", "deadline_at", "status"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	deadline := now.Add(10 * time.Minute)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO proofs (user_id, resource_id, type, status, deadline_at)`)).
		WithArgs(int64(42), int64(3), deadline).
		WillReturnRows(pgxmock.NewRows(proofColumns).
			AddRow(int64(7), int64(42), int64(3), domain.VerdictPending, nil, []int64(nil), now, deadline, domain.ProofPending))

	proof, err := repo.Create(context.Background(), 42, 3, deadline)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), proof.ID)
	assert.Equal(t, domain.ProofPending, proof.Status)
	assert.Equal(t, deadline, proof.DeadlineAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindOpenByUser(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		wantNil   bool
	}{
		{
			name: "Open proof found",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE user_id = $1 AND status = 'pending'`)).
					WithArgs(int64(42)).
					WillReturnRows(pgxmock.NewRows(proofColumns).
						AddRow(int64(7), int64(42), int64(3), domain.VerdictPending, nil, []int64(nil), now, now, domain.ProofPending))
			},
		},
		{
			name: "Resolved or absent proof returns nil",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE user_id = $1 AND status = 'pending'`)).
					WithArgs(int64(42)).
					WillReturnError(pgx.ErrNoRows)
			},
			wantNil: true,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE user_id = $1 AND status = 'pending'`)).
					WithArgs(int64(42)).
					WillReturnError(errors.New("db error"))
			},
			expectErr: true,
			wantNil:   true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			proof, err := repo.FindOpenByUser(context.Background(), 42)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantNil, proof == nil)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_SetVerdict(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name string
		rows int64
		want bool
	}{
		{name: "Pending proof updated", rows: 1, want: true},
		{name: "No pending proof", rows: 0, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock.ExpectExec(regexp.QuoteMeta(`SET type = $2`)).
				WithArgs(int64(42), domain.VerdictNotWorking).
				WillReturnResult(pgxmock.NewResult("UPDATE", tt.rows))

			ok, err := repo.SetVerdict(context.Background(), 42, domain.VerdictNotWorking)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, ok)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_AttachEvidence(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	t.Run("Newest pending proof receives the file", func(t *testing.T) {
		fileID := "photo-1"
		mock.ExpectQuery(regexp.QuoteMeta(`SET file_id = $2, status = 'received'`)).
			WithArgs(int64(42), fileID).
			WillReturnRows(pgxmock.NewRows(proofColumns).
				AddRow(int64(7), int64(42), int64(3), domain.VerdictWorking, &fileID, []int64(nil), now, now, domain.ProofReceived))

		proof, err := repo.AttachEvidence(context.Background(), 42, fileID)
		assert.NoError(t, err)
		assert.Equal(t, domain.ProofReceived, proof.Status)
		assert.Equal(t, &fileID, proof.FileID)
	})

	t.Run("Nothing pending returns nil", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SET file_id = $2, status = 'received'`)).
			WithArgs(int64(42), "photo-1").
			WillReturnError(pgx.ErrNoRows)

		proof, err := repo.AttachEvidence(context.Background(), 42, "photo-1")
		assert.NoError(t, err)
		assert.Nil(t, proof)
	})
}

func TestRepository_DueForExpiry(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE status = 'pending' AND deadline_at <= $1`)).
		WithArgs(now, 200).
		WillReturnRows(pgxmock.NewRows(proofColumns).
			AddRow(int64(7), int64(42), int64(3), domain.VerdictPending, nil, []int64(nil), now, now, domain.ProofPending).
			AddRow(int64(8), int64(43), int64(4), domain.VerdictPending, nil, []int64(nil), now, now, domain.ProofPending))

	due, err := repo.DueForExpiry(context.Background(), now, 200)
	assert.NoError(t, err)
	assert.Len(t, due, 2)
	assert.Equal(t, int64(7), due[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Expire(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Pending proof expires", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`SET status = 'expired'`)).
			WithArgs(int64(7)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		expired, err := repo.Expire(context.Background(), 7)
		assert.NoError(t, err)
		assert.True(t, expired)
	})

	t.Run("Received proof is a no-op", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`SET status = 'expired'`)).
			WithArgs(int64(7)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		expired, err := repo.Expire(context.Background(), 7)
		assert.NoError(t, err)
		assert.False(t, expired)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_MarkPosted(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`SET posted = array_append(posted, $2)`)).
		WithArgs(int64(7), int64(-100300)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, repo.MarkPosted(context.Background(), 7, -100300))
	assert.NoError(t, mock.ExpectationsWereMet())
}
