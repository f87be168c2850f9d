package notificationservice

import (
	"context"
	"errors"

	"github.com/avdeev/domainpro/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	Save(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	FindByID(ctx context.Context, id string) (*domain.Notification, error)
	FindByUserID(ctx context.Context, userID string) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id string) error
	MarkEmailSent(ctx context.Context, id string) error
}

var ErrNotificationNotFound = errors.New("notification not found")

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetNotifications(ctx context.Context, userID string) ([]domain.Notification, error) {
	notifications, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get notifications", zap.Error(err))
		return nil, err
	}
	return notifications, nil
}

// MarkAsRead flips the read flag. Marking an already-read notification
// again is a no-op, not an error.
func (s *Service) MarkAsRead(ctx context.Context, userID, id string) error {
	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if n == nil || n.UserID != userID {
		return ErrNotificationNotFound
	}
	if n.Read {
		return nil
	}
	return s.repo.MarkRead(ctx, id)
}
