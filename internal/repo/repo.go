package repo

import (
	"github.com/avdeev/domainpro/internal/pg"
	domainrepo "github.com/avdeev/domainpro/internal/repo/domain-repo"
	notificationrepo "github.com/avdeev/domainpro/internal/repo/notification-repo"
	paymentrepo "github.com/avdeev/domainpro/internal/repo/payment-repo"
	userrepo "github.com/avdeev/domainpro/internal/repo/user-repo"
	"github.com/avdeev/domainpro/internal/service/authservice"
	"github.com/avdeev/domainpro/internal/service/domainservice"
	"github.com/avdeev/domainpro/internal/service/notificationservice"
	"github.com/avdeev/domainpro/internal/service/paymentservice"
)

type Repositories struct {
	UserRepo         authservice.Repo
	DomainRepo       domainservice.Repo
	PaymentRepo      paymentservice.Repo
	NotificationRepo notificationservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	userRepo := userrepo.New(conn)
	domainRepo := domainrepo.New(conn, txManager)
	paymentRepo := paymentrepo.New(conn)
	notificationRepo := notificationrepo.New(conn)

	return &Repositories{
		UserRepo:         userRepo,
		DomainRepo:       domainRepo,
		PaymentRepo:      paymentRepo,
		NotificationRepo: notificationRepo,
	}
}
