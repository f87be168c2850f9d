package notificationrepo

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

const columns = "id, user_id, domain_id, type, message, email_sent, read, created_at"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Save(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	query := `
        INSERT INTO notifications (id, user_id, domain_id, type, message, email_sent, read, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
	n.ID = uuid.NewString()
	n.CreatedAt = time.Now()

	_, err := r.db.Exec(ctx, query, n.ID, n.UserID, n.DomainID, n.Type, n.Message, n.EmailSent, n.Read, n.CreatedAt)
	if err != nil {
		zap.L().Error("can't save notification", zap.Error(err))
		return nil, err
	}
	return n, nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Notification, error) {
	query := `
        SELECT ` + columns + `
        FROM notifications
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)

	var n domain.Notification
	err := row.Scan(&n.ID, &n.UserID, &n.DomainID, &n.Type, &n.Message, &n.EmailSent, &n.Read, &n.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find notification", zap.Error(err))
		return nil, err
	}
	return &n, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID string) ([]domain.Notification, error) {
	query := `
        SELECT ` + columns + `
        FROM notifications
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get notifications", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var notifications []domain.Notification
	for rows.Next() {
		var n domain.Notification
		err := rows.Scan(&n.ID, &n.UserID, &n.DomainID, &n.Type, &n.Message, &n.EmailSent, &n.Read, &n.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan notification row", zap.Error(err))
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, nil
}

// The two flags only ever flip false to true.

func (r *Repository) MarkRead(ctx context.Context, id string) error {
	query := `
        UPDATE notifications
        SET read = TRUE
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("failed to mark notification as read", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) MarkEmailSent(ctx context.Context, id string) error {
	query := `
        UPDATE notifications
        SET email_sent = TRUE
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("failed to mark notification email as sent", zap.Error(err))
		return err
	}
	return nil
}
