package repo

import (
	"github.com/earnova/earnova-bot/internal/pg"
	auditrepo "github.com/earnova/earnova-bot/internal/repo/audit-repo"
	broadcastrepo "github.com/earnova/earnova-bot/internal/repo/broadcast-repo"
	channelrepo "github.com/earnova/earnova-bot/internal/repo/channel-repo"
	proofrepo "github.com/earnova/earnova-bot/internal/repo/proof-repo"
	referralrepo "github.com/earnova/earnova-bot/internal/repo/referral-repo"
	resourcerepo "github.com/earnova/earnova-bot/internal/repo/resource-repo"
	userrepo "github.com/earnova/earnova-bot/internal/repo/user-repo"
	"github.com/earnova/earnova-bot/internal/service/adminservice"
	"github.com/earnova/earnova-bot/internal/service/gateservice"
	"github.com/earnova/earnova-bot/internal/service/poolservice"
	"github.com/earnova/earnova-bot/internal/service/proofservice"
	"github.com/earnova/earnova-bot/internal/service/userservice"
)

type Repositories struct {
	UserRepo      userservice.UserRepo
	ResourceRepo  poolservice.ResourceRepo
	ProofRepo     proofservice.ProofRepo
	ChannelRepo   gateservice.ChannelRepo
	ReferralRepo  userservice.ReferralRepo
	BroadcastRepo adminservice.BroadcastRepo
	AuditRepo     adminservice.AuditRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:      userrepo.New(conn),
		ResourceRepo:  resourcerepo.New(conn),
		ProofRepo:     proofrepo.New(conn),
		ChannelRepo:   channelrepo.New(conn),
		ReferralRepo:  referralrepo.New(conn, txManager),
		BroadcastRepo: broadcastrepo.New(conn),
		AuditRepo:     auditrepo.New(conn),
	}
}
