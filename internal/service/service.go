package service

import (
	"github.com/earnova/earnova-bot/internal/config"
	"github.com/earnova/earnova-bot/internal/repo"
	"github.com/earnova/earnova-bot/internal/service/adminservice"
	"github.com/earnova/earnova-bot/internal/service/gateservice"
	"github.com/earnova/earnova-bot/internal/service/poolservice"
	"github.com/earnova/earnova-bot/internal/service/proofservice"
	"github.com/earnova/earnova-bot/internal/service/userservice"
)

type Services struct {
	UserService  *userservice.Service
	PoolService  *poolservice.Service
	ProofService *proofservice.Service
	GateService  *gateservice.Service
	AdminService *adminservice.Service
}

// Messenger is the transport surface the services need; the telegram Bot
// satisfies it.
type Messenger interface {
	SendPhoto(chatID int64, fileID, caption string) error
	GetChatMember(chatID, userID int64) (string, error)
}

func New(cfg *config.Config, repo *repo.Repositories, cipher poolservice.Cipher, messenger Messenger) *Services {
	gateService := gateservice.New(repo.ChannelRepo, messenger, cfg.RequiredChannelID)
	userService := userservice.New(repo.UserRepo, repo.ReferralRepo, gateService)
	poolService := poolservice.New(repo.ResourceRepo, repo.UserRepo, repo.ProofRepo, cipher, cfg.ProofDeadline)
	proofService := proofservice.New(repo.ProofRepo, messenger, cfg.ProofChannelPublic, cfg.ProofChannelData)
	adminService := adminservice.New(repo.BroadcastRepo, repo.AuditRepo, repo.UserRepo, repo.ResourceRepo, repo.ProofRepo)

	return &Services{
		UserService:  userService,
		PoolService:  poolService,
		ProofService: proofService,
		GateService:  gateService,
		AdminService: adminService,
	}
}
