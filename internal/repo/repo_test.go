package repo

import (
	"testing"

	"github.com/avdeev/domainpro/internal/pg"
	domainrepo "github.com/avdeev/domainpro/internal/repo/domain-repo"
	notificationrepo "github.com/avdeev/domainpro/internal/repo/notification-repo"
	paymentrepo "github.com/avdeev/domainpro/internal/repo/payment-repo"
	userrepo "github.com/avdeev/domainpro/internal/repo/user-repo"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	mockTxManager := pg.NewMockTXManager(ctrl)
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.UserRepo)
	assert.NotNil(t, repo.DomainRepo)
	assert.NotNil(t, repo.PaymentRepo)
	assert.NotNil(t, repo.NotificationRepo)

	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &domainrepo.Repository{}, repo.DomainRepo)
	assert.IsType(t, &paymentrepo.Repository{}, repo.PaymentRepo)
	assert.IsType(t, &notificationrepo.Repository{}, repo.NotificationRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
