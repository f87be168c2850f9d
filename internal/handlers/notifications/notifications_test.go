package notifications

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avdeev/domainpro/internal/domain"
	"github.com/avdeev/domainpro/internal/dto"
	"github.com/avdeev/domainpro/internal/service/notificationservice"
	pkgauth "github.com/avdeev/domainpro/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

const userID = "9f3c1a4e-3e6b-4c38-9d2f-1f9be1a2c001"

func NewMock(t *testing.T) (*NotificationHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authRequest(method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	return req.WithContext(context.WithValue(req.Context(), pkgauth.UserIDKey, userID))
}

func TestGetNotificationsHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().GetNotifications(gomock.Any(), userID).Return([]domain.Notification{
		{ID: "n-1", Type: domain.NotificationExpiryReminder, Message: "Domain example.com is expiring"},
	}, nil)

	rr := httptest.NewRecorder()
	handler.GetNotifications(rr, authRequest("GET", "/api/notifications"))

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp []dto.NotificationResponseDTO
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Len(t, resp, 1)
	assert.Equal(t, domain.NotificationExpiryReminder, resp[0].Type)
}

func TestMarkAsReadHandler(t *testing.T) {
	handler, service := NewMock(t)

	withID := func(req *http.Request, id string) *http.Request {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", id)
		return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}

	t.Run("Marked as read", func(t *testing.T) {
		service.EXPECT().MarkAsRead(gomock.Any(), userID, "n-1").Return(nil)

		rr := httptest.NewRecorder()
		handler.MarkAsRead(rr, withID(authRequest("PUT", "/api/notifications/n-1/read"), "n-1"))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Notification not found", func(t *testing.T) {
		service.EXPECT().MarkAsRead(gomock.Any(), userID, "missing").Return(notificationservice.ErrNotificationNotFound)

		rr := httptest.NewRecorder()
		handler.MarkAsRead(rr, withID(authRequest("PUT", "/api/notifications/missing/read"), "missing"))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
