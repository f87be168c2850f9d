package handlers

import (
	"net/http"

	_ "github.com/avdeev/domainpro/docs"
	authhandlers "github.com/avdeev/domainpro/internal/handlers/auth"
	domainhandlers "github.com/avdeev/domainpro/internal/handlers/domains"
	notificationhandlers "github.com/avdeev/domainpro/internal/handlers/notifications"
	paymenthandlers "github.com/avdeev/domainpro/internal/handlers/payments"
	"github.com/avdeev/domainpro/internal/service"
	"github.com/avdeev/domainpro/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type DomainHandler interface {
	AddDomain(w http.ResponseWriter, r *http.Request)
	GetDomains(w http.ResponseWriter, r *http.Request)
	UpdateDomain(w http.ResponseWriter, r *http.Request)
	DeleteDomain(w http.ResponseWriter, r *http.Request)
	GetDashboardStats(w http.ResponseWriter, r *http.Request)
	Whois(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	CreateOrder(w http.ResponseWriter, r *http.Request)
	VerifyPayment(w http.ResponseWriter, r *http.Request)
	GetPayments(w http.ResponseWriter, r *http.Request)
}

type NotificationHandler interface {
	GetNotifications(w http.ResponseWriter, r *http.Request)
	MarkAsRead(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler         AuthHandler
	DomainHandler       DomainHandler
	PaymentHandler      PaymentHandler
	NotificationHandler NotificationHandler

	metricsHandler http.Handler
}

func New(s *service.Services, metricsHandler http.Handler) *Handlers {
	return &Handlers{
		AuthHandler:         authhandlers.New(s.AuthService),
		DomainHandler:       domainhandlers.New(s.DomainService),
		PaymentHandler:      paymenthandlers.New(s.PaymentService),
		NotificationHandler: notificationhandlers.New(s.NotificationService),
		metricsHandler:      metricsHandler,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	if h.metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", h.metricsHandler)
	}
	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(auth.AuthMiddleware)
				r.Get("/me", h.AuthHandler.Me)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/domains", func(r chi.Router) {
				r.Post("/", h.DomainHandler.AddDomain)
				r.Get("/", h.DomainHandler.GetDomains)
				r.Put("/{id}", h.DomainHandler.UpdateDomain)
				r.Delete("/{id}", h.DomainHandler.DeleteDomain)
			})
			r.Get("/dashboard/stats", h.DomainHandler.GetDashboardStats)
			r.Get("/whois/{domain}", h.DomainHandler.Whois)
			r.Route("/payments", func(r chi.Router) {
				r.Post("/create-order", h.PaymentHandler.CreateOrder)
				r.Post("/verify", h.PaymentHandler.VerifyPayment)
				r.Get("/", h.PaymentHandler.GetPayments)
			})
			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.NotificationHandler.GetNotifications)
				r.Put("/{id}/read", h.NotificationHandler.MarkAsRead)
			})
		})
	})

	return r
}
