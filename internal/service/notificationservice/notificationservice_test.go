package notificationservice

import (
	"context"
	"errors"
	"testing"

	"github.com/avdeev/domainpro/internal/domain"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo)
	defer ctrl.Finish()
	return service, repo
}

func TestGetNotifications(t *testing.T) {
	service, repo := NewMock(t)

	repo.EXPECT().FindByUserID(gomock.Any(), "user-1").Return([]domain.Notification{
		{ID: "a", Type: domain.NotificationExpiryReminder},
		{ID: "b", Type: domain.NotificationPaymentSuccess, Read: true},
	}, nil)

	notifications, err := service.GetNotifications(context.Background(), "user-1")
	assert.NoError(t, err)
	assert.Len(t, notifications, 2)

	repo.EXPECT().FindByUserID(gomock.Any(), "user-1").Return(nil, errors.New("some error"))
	_, err = service.GetNotifications(context.Background(), "user-1")
	assert.Error(t, err)
}

func TestMarkAsRead(t *testing.T) {
	const userID = "user-1"

	tests := []struct {
		name          string
		prepareMock   func(repo *MockRepo)
		expectedError error
	}{
		{
			name: "Unknown notification",
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().FindByID(gomock.Any(), "n-1").Return(nil, nil)
			},
			expectedError: ErrNotificationNotFound,
		},
		{
			name: "Another user's notification looks like not found",
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().FindByID(gomock.Any(), "n-1").Return(&domain.Notification{ID: "n-1", UserID: "somebody-else"}, nil)
			},
			expectedError: ErrNotificationNotFound,
		},
		{
			name: "Unread notification is marked",
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().FindByID(gomock.Any(), "n-1").Return(&domain.Notification{ID: "n-1", UserID: userID}, nil)
				repo.EXPECT().MarkRead(gomock.Any(), "n-1").Return(nil)
			},
		},
		{
			name: "Already read is a no-op",
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().FindByID(gomock.Any(), "n-1").Return(&domain.Notification{ID: "n-1", UserID: userID, Read: true}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := NewMock(t)
			tt.prepareMock(repo)

			err := service.MarkAsRead(context.Background(), userID, "n-1")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
