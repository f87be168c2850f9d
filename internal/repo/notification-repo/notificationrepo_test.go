package notificationrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/avdeev/domainpro/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func notificationRows(n *domain.Notification) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "user_id", "domain_id", "type", "message", "email_sent", "read", "created_at"}).
		AddRow(n.ID, n.UserID, n.DomainID, n.Type, n.Message, n.EmailSent, n.Read, n.CreatedAt)
}

func TestRepository_Save(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        INSERT INTO notifications (id, user_id, domain_id, type, message, email_sent, read, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `)

	domainID := "d-1"

	tests := []struct {
		name         string
		notification *domain.Notification
		mockSetup    func()
		expectErr    bool
	}{
		{
			name: "Save notification successfully",
			notification: &domain.Notification{
				UserID:   "u-1",
				DomainID: &domainID,
				Type:     domain.NotificationExpiryReminder,
				Message:  "Domain example.com is expiring",
			},
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs(pgxmock.AnyArg(), "u-1", &domainID, domain.NotificationExpiryReminder, "Domain example.com is expiring", false, false, pgxmock.AnyArg()).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			expectErr: false,
		},
		{
			name: "Database error",
			notification: &domain.Notification{
				UserID:  "u-1",
				Type:    domain.NotificationPaymentSuccess,
				Message: "Payment for example.com was successful",
			},
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs(pgxmock.AnyArg(), "u-1", pgxmock.AnyArg(), domain.NotificationPaymentSuccess, "Payment for example.com was successful", false, false, pgxmock.AnyArg()).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Save(context.Background(), tt.notification)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, result.ID)
			}
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        SELECT id, user_id, domain_id, type, message, email_sent, read, created_at
        FROM notifications
        WHERE id = $1
    `)

	t.Run("Notification found", func(t *testing.T) {
		existing := &domain.Notification{
			ID:        "n-1",
			UserID:    "u-1",
			Type:      domain.NotificationExpiryReminder,
			Message:   "Domain example.com is expiring",
			CreatedAt: time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC),
		}
		mock.ExpectQuery(query).
			WithArgs("n-1").
			WillReturnRows(notificationRows(existing))

		result, err := repo.FindByID(context.Background(), "n-1")
		assert.NoError(t, err)
		assert.Equal(t, existing, result)
	})

	t.Run("Notification not found", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs("missing").
			WillReturnError(pgx.ErrNoRows)

		result, err := repo.FindByID(context.Background(), "missing")
		assert.NoError(t, err)
		assert.Nil(t, result)
	})
}

func TestRepository_FindByUserID(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        SELECT id, user_id, domain_id, type, message, email_sent, read, created_at
        FROM notifications
        WHERE user_id = $1
        ORDER BY created_at DESC
    `)

	t.Run("Notifications found", func(t *testing.T) {
		existing := &domain.Notification{ID: "n-1", UserID: "u-1", Type: domain.NotificationDomainExpired, Message: "Domain example.com is expired"}
		mock.ExpectQuery(query).
			WithArgs("u-1").
			WillReturnRows(notificationRows(existing))

		result, err := repo.FindByUserID(context.Background(), "u-1")
		assert.NoError(t, err)
		assert.Len(t, result, 1)
		assert.Equal(t, domain.NotificationDomainExpired, result[0].Type)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs("u-1").
			WillReturnError(errors.New("database error"))

		result, err := repo.FindByUserID(context.Background(), "u-1")
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestRepository_MarkRead(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        UPDATE notifications
        SET read = TRUE
        WHERE id = $1
    `)

	t.Run("Marked as read", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs("n-1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.MarkRead(context.Background(), "n-1")
		assert.NoError(t, err)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs("n-1").
			WillReturnError(errors.New("database error"))

		err := repo.MarkRead(context.Background(), "n-1")
		assert.Error(t, err)
	})
}

func TestRepository_MarkEmailSent(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        UPDATE notifications
        SET email_sent = TRUE
        WHERE id = $1
    `)

	t.Run("Marked as sent", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs("n-1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.MarkEmailSent(context.Background(), "n-1")
		assert.NoError(t, err)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs("n-1").
			WillReturnError(errors.New("database error"))

		err := repo.MarkEmailSent(context.Background(), "n-1")
		assert.Error(t, err)
	})
}
