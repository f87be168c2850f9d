package paymentservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avdeev/domainpro/internal/domain"
	"github.com/avdeev/domainpro/internal/gateway"
	"github.com/avdeev/domainpro/internal/metrics"
	"github.com/avdeev/domainpro/internal/pg"
	"go.uber.org/zap"
)

// renewalTermDays is added to the current expiry on every completed
// renewal. The old expiry is the base even when it has already passed;
// only a domain with no expiry at all extends from now.
const renewalTermDays = 365

type Repo interface {
	Save(ctx context.Context, p *domain.Payment) error
	FindByUserID(ctx context.Context, userID string) ([]domain.Payment, error)
	FindByGatewayPaymentID(ctx context.Context, gatewayPaymentID string) (*domain.Payment, error)
	FindPendingByOrderID(ctx context.Context, gatewayOrderID string) (*domain.Payment, error)
	Complete(ctx context.Context, id, gatewayPaymentID string) error
}

type DomainRepo interface {
	FindByID(ctx context.Context, id string) (*domain.Domain, error)
	Update(ctx context.Context, d *domain.Domain) error
}

type NotificationRepo interface {
	Save(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
}

var (
	ErrDomainNotFound          = errors.New("domain not found")
	ErrPaymentAlreadyProcessed = errors.New("payment already processed")
	ErrOrderNotFound           = errors.New("order not found")
	ErrAmountMismatch          = errors.New("payment amount mismatch")
	ErrInvalidSignature        = errors.New("invalid payment signature")
	ErrGatewayUnavailable      = errors.New("payment gateway unavailable")
)

type Service struct {
	paymentRepo      Repo
	domainRepo       DomainRepo
	notificationRepo NotificationRepo
	gateway          gateway.ClientI
	txManager        pg.TXManager
	metrics          metrics.Recorder
	now              func() time.Time
}

func New(paymentRepo Repo, domainRepo DomainRepo, notificationRepo NotificationRepo, gatewayClient gateway.ClientI, txManager pg.TXManager, recorder metrics.Recorder) *Service {
	return &Service{
		paymentRepo:      paymentRepo,
		domainRepo:       domainRepo,
		notificationRepo: notificationRepo,
		gateway:          gatewayClient,
		txManager:        txManager,
		metrics:          recorder,
		now:              time.Now,
	}
}

// CreateOrder registers a renewal charge with the gateway and records a
// pending payment referencing the gateway order.
func (s *Service) CreateOrder(ctx context.Context, userID, domainID string, amount int64) (*gateway.Order, error) {
	d, err := s.findOwnedDomain(ctx, userID, domainID)
	if err != nil {
		return nil, err
	}

	receipt := fmt.Sprintf("domain_%s_%d", d.ID, s.now().Unix())
	order, err := s.gateway.CreateOrder(ctx, amount, "USD", receipt)
	if err != nil {
		zap.L().Error("gateway order creation failed", zap.Error(err))
		s.metrics.RecordRenewal("gateway_error")
		return nil, ErrGatewayUnavailable
	}

	payment := &domain.Payment{
		UserID:         userID,
		DomainID:       d.ID,
		Amount:         amount,
		Currency:       order.Currency,
		GatewayOrderID: &order.ID,
		Status:         domain.PaymentPending,
	}
	if err := s.paymentRepo.Save(ctx, payment); err != nil {
		return nil, err
	}

	zap.L().Info("renewal order created",
		zap.String("domain", d.Name),
		zap.String("order_id", order.ID),
		zap.Int64("amount", amount))
	return order, nil
}

// VerifyPayment settles a pending renewal. On success the payment is
// completed, the domain expiry is pushed out by a full term and a
// payment_success notification is written, all in one transaction.
// A gateway payment id that was already settled is rejected outright.
func (s *Service) VerifyPayment(ctx context.Context, userID, domainID, gatewayPaymentID, gatewayOrderID, signature string, amount int64) (*domain.Payment, error) {
	d, err := s.findOwnedDomain(ctx, userID, domainID)
	if err != nil {
		return nil, err
	}

	if !s.gateway.VerifySignature(gatewayOrderID, gatewayPaymentID, signature) {
		zap.L().Info("payment signature verification failed", zap.String("order_id", gatewayOrderID))
		s.metrics.RecordRenewal("invalid_signature")
		return nil, ErrInvalidSignature
	}

	replayed, err := s.paymentRepo.FindByGatewayPaymentID(ctx, gatewayPaymentID)
	if err != nil {
		return nil, err
	}
	if replayed != nil {
		zap.L().Info("gateway payment id replay rejected", zap.String("gateway_payment_id", gatewayPaymentID))
		s.metrics.RecordRenewal("replay")
		return nil, ErrPaymentAlreadyProcessed
	}

	payment, err := s.paymentRepo.FindPendingByOrderID(ctx, gatewayOrderID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, ErrOrderNotFound
	}
	if payment.Amount != amount || payment.DomainID != d.ID || payment.UserID != userID {
		zap.L().Info("payment verification mismatch",
			zap.String("order_id", gatewayOrderID),
			zap.Int64("expected_amount", payment.Amount),
			zap.Int64("got_amount", amount))
		s.metrics.RecordRenewal("mismatch")
		return nil, ErrAmountMismatch
	}

	now := s.now()
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.paymentRepo.Complete(ctx, payment.ID, gatewayPaymentID); err != nil {
			return err
		}

		base := now
		if d.ExpiryDate != nil {
			base = *d.ExpiryDate
		}
		newExpiry := base.Add(renewalTermDays * 24 * time.Hour)
		d.ExpiryDate = &newExpiry
		d.Status = domain.StatusActive
		if err := s.domainRepo.Update(ctx, d); err != nil {
			return err
		}

		_, err := s.notificationRepo.Save(ctx, &domain.Notification{
			UserID:   userID,
			DomainID: &d.ID,
			Type:     domain.NotificationPaymentSuccess,
			Message:  fmt.Sprintf("Payment for %s was successful, new expiry date is %s", d.Name, newExpiry.Format("2006-01-02")),
		})
		return err
	})
	if err != nil {
		zap.L().Error("can't settle payment: ", zap.Error(err))
		return nil, err
	}

	payment.Status = domain.PaymentCompleted
	payment.GatewayPaymentID = &gatewayPaymentID
	s.metrics.RecordRenewal("completed")
	zap.L().Info("renewal completed",
		zap.String("domain", d.Name),
		zap.Timep("new_expiry", d.ExpiryDate))
	return payment, nil
}

func (s *Service) GetPayments(ctx context.Context, userID string) ([]domain.Payment, error) {
	payments, err := s.paymentRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get payments", zap.Error(err))
		return nil, err
	}
	return payments, nil
}

func (s *Service) findOwnedDomain(ctx context.Context, userID, domainID string) (*domain.Domain, error) {
	d, err := s.domainRepo.FindByID(ctx, domainID)
	if err != nil {
		return nil, err
	}
	if d == nil || d.UserID != userID {
		return nil, ErrDomainNotFound
	}
	return d, nil
}
