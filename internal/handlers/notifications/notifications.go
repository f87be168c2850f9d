package notifications

import (
	"context"
	"errors"
	"net/http"

	"github.com/avdeev/domainpro/internal/domain"
	"github.com/avdeev/domainpro/internal/dto"
	"github.com/avdeev/domainpro/internal/service/notificationservice"
	pkgauth "github.com/avdeev/domainpro/pkg/auth"
	"github.com/avdeev/domainpro/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	GetNotifications(ctx context.Context, userID string) ([]domain.Notification, error)
	MarkAsRead(ctx context.Context, userID, id string) error
}

type NotificationHandler struct {
	notificationService Service
}

func New(notificationService Service) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
	}
}

// GetNotifications godoc
//
//	@Summary		Notification feed
//	@Description	Return all notifications of the authenticated user, newest first
//	@Tags			Notifications
//	@Produce		json
//	@Success		200	{array}		dto.NotificationResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/notifications [get]
func (h *NotificationHandler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	userID, ok := pkgauth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	notifications, err := h.notificationService.GetNotifications(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	result := make([]dto.NotificationResponseDTO, 0, len(notifications))
	for _, n := range notifications {
		result = append(result, dto.NotificationResponseDTO{
			ID:        n.ID,
			DomainID:  n.DomainID,
			Type:      n.Type,
			Message:   n.Message,
			EmailSent: n.EmailSent,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}

// MarkAsRead godoc
//
//	@Summary		Mark a notification as read
//	@Description	Flip the read flag of one notification; repeating the call is a no-op
//	@Tags			Notifications
//	@Produce		json
//	@Param			id	path		string	true	"Notification id"
//	@Success		200	{object}	utils.Response
//	@Failure		404	{object}	utils.Response	"Notification not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/notifications/{id}/read [put]
func (h *NotificationHandler) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := pkgauth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	err := h.notificationService.MarkAsRead(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, notificationservice.ErrNotificationNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Notification marked as read"})
}
