package paymentrepo

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

func paymentRows(p *domain.Payment) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "user_id", "domain_id", "amount", "currency", "gateway_payment_id", "gateway_order_id", "status", "created_at"}).
		AddRow(p.ID, p.UserID, p.DomainID, p.Amount, p.Currency, p.GatewayPaymentID, p.GatewayOrderID, p.Status, p.CreatedAt)
}

func TestRepository_Save(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        INSERT INTO payments (id, user_id, domain_id, amount, currency, gateway_payment_id, gateway_order_id, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    `)

	orderID := "order_123"

	tests := []struct {
		name      string
		payment   *domain.Payment
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Save payment successfully",
			payment: &domain.Payment{
				UserID:         "u-1",
				DomainID:       "d-1",
				Amount:         1499,
				Currency:       "USD",
				GatewayOrderID: &orderID,
				Status:         domain.PaymentPending,
			},
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs(pgxmock.AnyArg(), "u-1", "d-1", int64(1499), "USD", pgxmock.AnyArg(), &orderID, domain.PaymentPending, pgxmock.AnyArg()).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			expectErr: false,
		},
		{
			name: "Database error",
			payment: &domain.Payment{
				UserID:   "u-1",
				DomainID: "d-1",
				Amount:   1499,
				Currency: "USD",
				Status:   domain.PaymentPending,
			},
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs(pgxmock.AnyArg(), "u-1", "d-1", int64(1499), "USD", pgxmock.AnyArg(), pgxmock.AnyArg(), domain.PaymentPending, pgxmock.AnyArg()).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Save(context.Background(), tt.payment)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, tt.payment.ID)
			}
		})
	}
}

func TestRepository_FindByUserID(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        SELECT id, user_id, domain_id, amount, currency, gateway_payment_id, gateway_order_id, status, created_at
        FROM payments
        WHERE user_id = $1
        ORDER BY created_at DESC
    `)

	t.Run("Payments found", func(t *testing.T) {
		existing := &domain.Payment{
			ID:        "p-1",
			UserID:    "u-1",
			DomainID:  "d-1",
			Amount:    1499,
			Currency:  "USD",
			Status:    domain.PaymentCompleted,
			CreatedAt: time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC),
		}
		mock.ExpectQuery(query).
			WithArgs("u-1").
			WillReturnRows(paymentRows(existing))

		result, err := repo.FindByUserID(context.Background(), "u-1")
		assert.NoError(t, err)
		assert.Len(t, result, 1)
		assert.Equal(t, *existing, result[0])
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

func TestRepository_FindByGatewayPaymentID(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        SELECT id, user_id, domain_id, amount, currency, gateway_payment_id, gateway_order_id, status, created_at
        FROM payments
        WHERE gateway_payment_id = $1
    `)

	t.Run("Payment found", func(t *testing.T) {
		paymentID := "pay_abc"
		existing := &domain.Payment{ID: "p-1", UserID: "u-1", DomainID: "d-1", GatewayPaymentID: &paymentID, Status: domain.PaymentCompleted}
		mock.ExpectQuery(query).
			WithArgs("pay_abc").
			WillReturnRows(paymentRows(existing))

		result, err := repo.FindByGatewayPaymentID(context.Background(), "pay_abc")
		assert.NoError(t, err)
		assert.NotNil(t, result)
		assert.Equal(t, "p-1", result.ID)
	})

	t.Run("Payment not found", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs("pay_unknown").
			WillReturnError(pgx.ErrNoRows)

		result, err := repo.FindByGatewayPaymentID(context.Background(), "pay_unknown")
		assert.NoError(t, err)
		assert.Nil(t, result)
	})
}

func TestRepository_FindPendingByOrderID(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        SELECT id, user_id, domain_id, amount, currency, gateway_payment_id, gateway_order_id, status, created_at
        FROM payments
        WHERE gateway_order_id = $1 AND status = 'pending'
    `)

	t.Run("Pending payment found", func(t *testing.T) {
		orderID := "order_123"
		existing := &domain.Payment{ID: "p-1", UserID: "u-1", DomainID: "d-1", GatewayOrderID: &orderID, Status: domain.PaymentPending}
		mock.ExpectQuery(query).
			WithArgs("order_123").
			WillReturnRows(paymentRows(existing))

		result, err := repo.FindPendingByOrderID(context.Background(), "order_123")
		assert.NoError(t, err)
		assert.NotNil(t, result)
		assert.Equal(t, domain.PaymentPending, result.Status)
	})

	t.Run("No pending payment", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs("order_unknown").
			WillReturnError(pgx.ErrNoRows)

		result, err := repo.FindPendingByOrderID(context.Background(), "order_unknown")
		assert.NoError(t, err)
		assert.Nil(t, result)
	})
}

func TestRepository_Complete(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        UPDATE payments
        SET status = 'completed', gateway_payment_id = $1
        WHERE id = $2 AND status = 'pending'
    `)

	t.Run("Payment completed", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs("pay_abc", "p-1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.Complete(context.Background(), "p-1", "pay_abc")
		assert.NoError(t, err)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs("pay_abc", "p-1").
			WillReturnError(errors.New("database error"))

		err := repo.Complete(context.Background(), "p-1", "pay_abc")
		assert.Error(t, err)
	})
}
