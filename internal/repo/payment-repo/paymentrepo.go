package paymentrepo

import (
	"context"
	"errors"
	"time"

	"github.com/avdeev/domainpro/internal/domain"
	"github.com/avdeev/domainpro/internal/pg"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const columns = "id, user_id, domain_id, amount, currency, gateway_payment_id, gateway_order_id, status, created_at"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Save(ctx context.Context, p *domain.Payment) error {
	query := `
        INSERT INTO payments (id, user_id, domain_id, amount, currency, gateway_payment_id, gateway_order_id, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    `
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now()

	_, err := r.db.Exec(ctx, query, p.ID, p.UserID, p.DomainID, p.Amount, p.Currency, p.GatewayPaymentID, p.GatewayOrderID, p.Status, p.CreatedAt)
	if err != nil {
		zap.L().Error("can't save payment", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID string) ([]domain.Payment, error) {
	query := `
        SELECT ` + columns + `
        FROM payments
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get payments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var p domain.Payment
		err := rows.Scan(&p.ID, &p.UserID, &p.DomainID, &p.Amount, &p.Currency, &p.GatewayPaymentID, &p.GatewayOrderID, &p.Status, &p.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan payment row", zap.Error(err))
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, nil
}

func (r *Repository) FindByGatewayPaymentID(ctx context.Context, gatewayPaymentID string) (*domain.Payment, error) {
	query := `
        SELECT ` + columns + `
        FROM payments
        WHERE gateway_payment_id = $1
    `
	return r.findOne(ctx, query, gatewayPaymentID)
}

func (r *Repository) FindPendingByOrderID(ctx context.Context, gatewayOrderID string) (*domain.Payment, error) {
	query := `
        SELECT ` + columns + `
        FROM payments
        WHERE gateway_order_id = $1 AND status = 'pending'
    `
	return r.findOne(ctx, query, gatewayOrderID)
}

func (r *Repository) findOne(ctx context.Context, query string, arg any) (*domain.Payment, error) {
	row := r.db.QueryRow(ctx, query, arg)

	var p domain.Payment
	err := row.Scan(&p.ID, &p.UserID, &p.DomainID, &p.Amount, &p.Currency, &p.GatewayPaymentID, &p.GatewayOrderID, &p.Status, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find payment", zap.Error(err))
		return nil, err
	}
	return &p, nil
}

// Complete moves a payment to its terminal completed state and backfills
// the gateway payment id. Terminal rows are never mutated again.
func (r *Repository) Complete(ctx context.Context, id, gatewayPaymentID string) error {
	query := `
        UPDATE payments
        SET status = 'completed', gateway_payment_id = $1
        WHERE id = $2 AND status = 'pending'
    `
	_, err := r.db.Exec(ctx, query, gatewayPaymentID, id)
	if err != nil {
		zap.L().Error("failed to complete payment", zap.Error(err))
		return err
	}
	return nil
}
