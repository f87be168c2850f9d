package service

import (
	"github.com/avdeev/domainpro/internal/gateway"
	authhandlers "github.com/avdeev/domainpro/internal/handlers/auth"
	domainhandlers "github.com/avdeev/domainpro/internal/handlers/domains"
	notificationhandlers "github.com/avdeev/domainpro/internal/handlers/notifications"
	paymenthandlers "github.com/avdeev/domainpro/internal/handlers/payments"
	"github.com/avdeev/domainpro/internal/metrics"
	"github.com/avdeev/domainpro/internal/pg"
	"github.com/avdeev/domainpro/internal/repo"
	"github.com/avdeev/domainpro/internal/service/authservice"
	"github.com/avdeev/domainpro/internal/service/domainservice"
	"github.com/avdeev/domainpro/internal/service/notificationservice"
	"github.com/avdeev/domainpro/internal/service/paymentservice"
	"github.com/avdeev/domainpro/internal/whois"
	pkgauth "github.com/avdeev/domainpro/pkg/auth"
)

type Services struct {
	AuthService         authhandlers.Service
	DomainService       domainhandlers.Service
	PaymentService      paymenthandlers.Service
	NotificationService notificationhandlers.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, whoisClient whois.ClientI, gatewayClient gateway.ClientI, recorder metrics.Recorder) *Services {
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})
	domainService := domainservice.New(repo.DomainRepo, whoisClient)
	paymentService := paymentservice.New(repo.PaymentRepo, repo.DomainRepo, repo.NotificationRepo, gatewayClient, txManager, recorder)
	notificationService := notificationservice.New(repo.NotificationRepo)

	return &Services{
		AuthService:         authService,
		DomainService:       domainService,
		PaymentService:      paymentService,
		NotificationService: notificationService,
	}
}
