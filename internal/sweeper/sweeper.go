// Package sweeper runs the two background jobs: the hourly reconciliation
// sweep that keeps stored domain statuses in line with their expiry dates,
// and the daily dispatch of expiry reminder emails.
package sweeper

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/avdeev/domainpro/internal/config"
	"github.com/avdeev/domainpro/internal/domain"
	"github.com/avdeev/domainpro/internal/lifecycle"
	"github.com/avdeev/domainpro/internal/mailer"
	"github.com/avdeev/domainpro/internal/metrics"
	"github.com/avdeev/domainpro/internal/pg"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// reminderWindow is how far ahead the dispatcher looks for expiring
// domains. Wider than a single day so a missed daily run cannot lose
// a reminder.
const reminderWindow = 7 * 24 * time.Hour

var processingDomains sync.Map

type DomainRepo interface {
	FindForSweep(ctx context.Context, limit uint32) ([]domain.Domain, error)
	FindDueForReminder(ctx context.Context, from, to time.Time) ([]domain.Domain, error)
	UpdateStatus(ctx context.Context, id, status string, updatedAt time.Time) error
}

type NotificationRepo interface {
	Save(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	MarkEmailSent(ctx context.Context, id string) error
}

type UserRepo interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
}

type Service struct {
	domainRepo       DomainRepo
	notificationRepo NotificationRepo
	userRepo         UserRepo
	mailer           mailer.Sender
	txManager        pg.TXManager
	metrics          metrics.Recorder

	limit            uint32
	workerPool       WorkerPoolI
	sweepInterval    time.Duration
	dispatchInterval time.Duration

	sweepRunning    atomic.Bool
	dispatchRunning atomic.Bool

	now func() time.Time
}

func New(cfg *config.Config, domainRepo DomainRepo, notificationRepo NotificationRepo, userRepo UserRepo, sender mailer.Sender, txManager pg.TXManager, recorder metrics.Recorder) *Service {
	return &Service{
		domainRepo:       domainRepo,
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		mailer:           sender,
		txManager:        txManager,
		metrics:          recorder,
		limit:            1000,
		workerPool:       NewWorkerPool(10),
		sweepInterval:    cfg.SweepInterval,
		dispatchInterval: cfg.DispatchInterval,
		now:              time.Now,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Sweeper started",
		zap.Duration("sweep_interval", s.sweepInterval),
		zap.Duration("dispatch_interval", s.dispatchInterval))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	sweepTicker := time.NewTicker(s.sweepInterval)
	defer sweepTicker.Stop()
	dispatchTicker := time.NewTicker(s.dispatchInterval)
	defer dispatchTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping sweeper")
			s.workerPool.Close()
			return
		case <-sweepTicker.C:
			s.Sweep(ctx)
		case <-dispatchTicker.C:
			s.DispatchReminders(ctx)
		}
	}
}

// Sweep reclassifies every domain with a known expiry date and records
// a status transition where the stored status no longer matches. A cycle
// that starts while the previous one is still running is skipped.
func (s *Service) Sweep(ctx context.Context) {
	if !s.sweepRunning.CompareAndSwap(false, true) {
		zap.L().Warn("Previous sweep still running, skipping cycle")
		s.metrics.RecordSweepSkipped()
		return
	}
	defer s.sweepRunning.Store(false)

	domains, err := s.domainRepo.FindForSweep(ctx, s.limit)
	if err != nil {
		zap.L().Error("Failed to fetch domains for sweep", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, d := range domains {
		d := d

		if _, loaded := processingDomains.LoadOrStore(d.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer processingDomains.Delete(d.ID)
				return s.reconcile(ctx, d)
			})
			if err != nil {
				processingDomains.Delete(d.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error sweeping domains", zap.Error(err))
	}
	s.metrics.RecordSweepRun()
}

// reconcile applies the status a domain should have right now. The status
// change and its notification land in one transaction, so a domain never
// shows as expired without the matching notification row.
func (s *Service) reconcile(ctx context.Context, d domain.Domain) error {
	now := s.now()
	next := lifecycle.Classify(d.ExpiryDate, now).Status
	if next == d.Status {
		return nil
	}

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.domainRepo.UpdateStatus(ctx, d.ID, next, now); err != nil {
			return err
		}

		// Moving back to active (after a renewal was recorded elsewhere)
		// needs no notification.
		if next == domain.StatusActive {
			return nil
		}

		notificationType := domain.NotificationExpiryReminder
		if next == domain.StatusExpired {
			notificationType = domain.NotificationDomainExpired
		}
		_, err := s.notificationRepo.Save(ctx, &domain.Notification{
			UserID:   d.UserID,
			DomainID: &d.ID,
			Type:     notificationType,
			Message:  fmt.Sprintf("Domain %s is %s", d.Name, next),
		})
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to reconcile domain %s: %w", d.Name, err)
	}

	s.metrics.RecordStatusTransition(next)
	zap.L().Info("Domain status transition",
		zap.String("domain", d.Name),
		zap.String("from", d.Status),
		zap.String("to", next))
	return nil
}

// DispatchReminders emails owners of domains expiring within the lookahead
// window. The repository query already excludes domains whose reminder was
// delivered, so a successful send is never repeated for the same expiry.
func (s *Service) DispatchReminders(ctx context.Context) {
	if !s.dispatchRunning.CompareAndSwap(false, true) {
		zap.L().Warn("Previous dispatch still running, skipping cycle")
		return
	}
	defer s.dispatchRunning.Store(false)

	now := s.now()
	domains, err := s.domainRepo.FindDueForReminder(ctx, now, now.Add(reminderWindow))
	if err != nil {
		zap.L().Error("Failed to fetch domains due for reminder", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, d := range domains {
		d := d
		g.Go(func() error {
			return s.workerPool.AddTask(ctx, func() error {
				return s.remind(ctx, d)
			})
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error dispatching reminders", zap.Error(err))
	}
}

func (s *Service) remind(ctx context.Context, d domain.Domain) error {
	user, err := s.userRepo.FindByID(ctx, d.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		zap.L().Warn("Domain owner not found, skipping reminder", zap.String("domain", d.Name))
		return nil
	}

	days := lifecycle.Classify(d.ExpiryDate, s.now()).DaysUntilExpiry
	message := fmt.Sprintf("Domain %s expires in %d days", d.Name, days)

	notification, err := s.notificationRepo.Save(ctx, &domain.Notification{
		UserID:   d.UserID,
		DomainID: &d.ID,
		Type:     domain.NotificationExpiryReminder,
		Message:  message,
	})
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Reminder: %s expires in %d days", d.Name, days)
	body := fmt.Sprintf("<p>Your domain <b>%s</b> expires on %s.</p><p>Renew it to avoid losing it.</p>",
		d.Name, d.ExpiryDate.Format("2006-01-02"))
	if err := s.mailer.Send(ctx, user.Email, subject, body); err != nil {
		s.metrics.RecordReminderFailure()
		return fmt.Errorf("failed to send reminder for %s: %w", d.Name, err)
	}

	// email_sent flips only after a confirmed delivery; a failed send
	// leaves the domain eligible for the next dispatch cycle.
	if err := s.notificationRepo.MarkEmailSent(ctx, notification.ID); err != nil {
		return err
	}
	s.metrics.RecordReminderSent()
	zap.L().Info("Reminder sent", zap.String("domain", d.Name), zap.Int("days", days))
	return nil
}
