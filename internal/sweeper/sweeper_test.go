package sweeper

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avdeev/domainpro/internal/config"
	"github.com/avdeev/domainpro/internal/domain"
	"github.com/avdeev/domainpro/internal/mailer"
	"github.com/avdeev/domainpro/internal/metrics"
	"github.com/avdeev/domainpro/internal/pg"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type mocks struct {
	domainRepo       *MockDomainRepo
	notificationRepo *MockNotificationRepo
	userRepo         *MockUserRepo
	mailer           *mailer.MockSender
	txManager        *pg.MockTXManager
	workerPool       *MockWorkerPoolI
}

func NewMock(t *testing.T) (*Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		domainRepo:       NewMockDomainRepo(ctrl),
		notificationRepo: NewMockNotificationRepo(ctrl),
		userRepo:         NewMockUserRepo(ctrl),
		mailer:           mailer.NewMockSender(ctrl),
		txManager:        pg.NewMockTXManager(ctrl),
		workerPool:       NewMockWorkerPoolI(ctrl),
	}
	cfg := &config.Config{SweepInterval: time.Hour, DispatchInterval: 24 * time.Hour}
	service := New(cfg, m.domainRepo, m.notificationRepo, m.userRepo, m.mailer, m.txManager, metrics.NewCollector())
	service.workerPool = m.workerPool
	service.now = func() time.Time { return testNow }

	// Tasks run inline so assertions see their effects synchronously.
	m.workerPool.EXPECT().AddTask(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, task Task) error {
			return task()
		}).AnyTimes()
	m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).AnyTimes()

	defer ctrl.Finish()
	return service, m
}

func timePtr(t time.Time) *time.Time { return &t }
func daysAhead(days int) *time.Time {
	return timePtr(testNow.Add(time.Duration(days) * 24 * time.Hour))
}

func TestSweepTransitions(t *testing.T) {
	service, m := NewMock(t)

	domains := []domain.Domain{
		{ID: "a", UserID: "u1", Name: "fresh.com", ExpiryDate: daysAhead(200), Status: domain.StatusActive},
		{ID: "b", UserID: "u1", Name: "soon.com", ExpiryDate: daysAhead(10), Status: domain.StatusActive},
		{ID: "c", UserID: "u2", Name: "gone.com", ExpiryDate: timePtr(testNow.Add(-48 * time.Hour)), Status: domain.StatusExpiring},
	}
	m.domainRepo.EXPECT().FindForSweep(gomock.Any(), uint32(1000)).Return(domains, nil)

	// fresh.com already matches its classification and is left alone.
	m.domainRepo.EXPECT().UpdateStatus(gomock.Any(), "b", domain.StatusExpiring, testNow).Return(nil)
	m.notificationRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, n *domain.Notification) (*domain.Notification, error) {
			assert.Equal(t, domain.NotificationExpiryReminder, n.Type)
			assert.Equal(t, "Domain soon.com is expiring", n.Message)
			return n, nil
		})
	m.domainRepo.EXPECT().UpdateStatus(gomock.Any(), "c", domain.StatusExpired, testNow).Return(nil)
	m.notificationRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, n *domain.Notification) (*domain.Notification, error) {
			assert.Equal(t, domain.NotificationDomainExpired, n.Type)
			assert.Equal(t, "u2", n.UserID)
			return n, nil
		})

	service.Sweep(context.Background())
}

func TestSweepIsIdempotent(t *testing.T) {
	service, m := NewMock(t)

	domains := []domain.Domain{
		{ID: "a", UserID: "u1", Name: "settled.com", ExpiryDate: timePtr(testNow.Add(-48 * time.Hour)), Status: domain.StatusExpired},
	}
	// Two consecutive sweeps over an already-expired domain write nothing.
	m.domainRepo.EXPECT().FindForSweep(gomock.Any(), uint32(1000)).Return(domains, nil).Times(2)

	service.Sweep(context.Background())
	service.Sweep(context.Background())
}

func TestSweepRenewalMovesBackToActive(t *testing.T) {
	service, m := NewMock(t)

	domains := []domain.Domain{
		{ID: "a", UserID: "u1", Name: "renewed.com", ExpiryDate: daysAhead(300), Status: domain.StatusExpired},
	}
	m.domainRepo.EXPECT().FindForSweep(gomock.Any(), uint32(1000)).Return(domains, nil)

	// Status is corrected, but no notification for a move back to active.
	m.domainRepo.EXPECT().UpdateStatus(gomock.Any(), "a", domain.StatusActive, testNow).Return(nil)

	service.Sweep(context.Background())
}

func TestSweepSkipsWhenPreviousStillRunning(t *testing.T) {
	service, _ := NewMock(t)

	service.sweepRunning.Store(true)
	// FindForSweep has no expectation: a call would fail the test.
	service.Sweep(context.Background())
}

func TestSweepFailureIsolation(t *testing.T) {
	service, m := NewMock(t)

	domains := []domain.Domain{
		{ID: "a", UserID: "u1", Name: "bad.com", ExpiryDate: daysAhead(10), Status: domain.StatusActive},
		{ID: "b", UserID: "u1", Name: "good.com", ExpiryDate: daysAhead(5), Status: domain.StatusActive},
	}
	m.domainRepo.EXPECT().FindForSweep(gomock.Any(), uint32(1000)).Return(domains, nil)

	m.domainRepo.EXPECT().UpdateStatus(gomock.Any(), "a", domain.StatusExpiring, testNow).Return(errors.New("some error"))
	m.domainRepo.EXPECT().UpdateStatus(gomock.Any(), "b", domain.StatusExpiring, testNow).Return(nil)
	m.notificationRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(&domain.Notification{}, nil)

	service.Sweep(context.Background())
}

func TestDispatchReminders(t *testing.T) {
	service, m := NewMock(t)

	due := []domain.Domain{
		{ID: "a", UserID: "u1", Name: "soon.com", ExpiryDate: daysAhead(5), Status: domain.StatusExpiring},
	}
	m.domainRepo.EXPECT().FindDueForReminder(gomock.Any(), testNow, testNow.Add(reminderWindow)).Return(due, nil)
	m.userRepo.EXPECT().FindByID(gomock.Any(), "u1").Return(&domain.User{ID: "u1", Email: "alice@example.com"}, nil)
	m.notificationRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, n *domain.Notification) (*domain.Notification, error) {
			assert.Equal(t, domain.NotificationExpiryReminder, n.Type)
			assert.Equal(t, "Domain soon.com expires in 5 days", n.Message)
			n.ID = "n-1"
			return n, nil
		})
	m.mailer.EXPECT().Send(gomock.Any(), "alice@example.com", "Reminder: soon.com expires in 5 days", gomock.Any()).Return(nil)
	m.notificationRepo.EXPECT().MarkEmailSent(gomock.Any(), "n-1").Return(nil)

	service.DispatchReminders(context.Background())
}

func TestDispatchFailedSendStaysEligible(t *testing.T) {
	service, m := NewMock(t)

	due := []domain.Domain{
		{ID: "a", UserID: "u1", Name: "soon.com", ExpiryDate: daysAhead(3), Status: domain.StatusExpiring},
	}
	m.domainRepo.EXPECT().FindDueForReminder(gomock.Any(), gomock.Any(), gomock.Any()).Return(due, nil)
	m.userRepo.EXPECT().FindByID(gomock.Any(), "u1").Return(&domain.User{ID: "u1", Email: "alice@example.com"}, nil)
	m.notificationRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(&domain.Notification{ID: "n-1"}, nil)
	m.mailer.EXPECT().Send(gomock.Any(), "alice@example.com", gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))
	// No MarkEmailSent expectation: the flag must not flip on failure.

	service.DispatchReminders(context.Background())
}

func TestDispatchSkipsDomainWithoutOwner(t *testing.T) {
	service, m := NewMock(t)

	due := []domain.Domain{
		{ID: "a", UserID: "ghost", Name: "orphan.com", ExpiryDate: daysAhead(2), Status: domain.StatusExpiring},
	}
	m.domainRepo.EXPECT().FindDueForReminder(gomock.Any(), gomock.Any(), gomock.Any()).Return(due, nil)
	m.userRepo.EXPECT().FindByID(gomock.Any(), "ghost").Return(nil, nil)

	service.DispatchReminders(context.Background())
}
