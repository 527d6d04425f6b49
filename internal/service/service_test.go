package service

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/earnova/earnova-bot/internal/config"
	"github.com/earnova/earnova-bot/internal/pg"
	"github.com/earnova/earnova-bot/internal/repo"
)

type fakeMessenger struct{}

func (fakeMessenger) SendPhoto(chatID int64, fileID, caption string) error { return nil }
func (fakeMessenger) GetChatMember(chatID, userID int64) (string, error) { return "member", nil }

type fakeCipher struct{}

func (fakeCipher) Encrypt(plaintext string) (string, error) { return plaintext, nil }
func (fakeCipher) Decrypt(ciphertext string) (string, error) { return ciphertext, nil }

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mockDB.Close)

	repos := repo.New(mockDB, pg.NewMockTXManager(ctrl))
	services := New(&config.Config{}, repos, fakeCipher{}, fakeMessenger{})

	assert.NotNil(t, services.UserService)
	assert.NotNil(t, services.PoolService)
	assert.NotNil(t, services.ProofService)
	assert.NotNil(t, services.GateService)
	assert.NotNil(t, services.AdminService)
}
