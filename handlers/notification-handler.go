package handlers

import (
	"net/http"

	"campus-gigs/backend/models"

	"github.com/gorilla/mux"
)

type NotificationService interface {
	GetByUser(userID string) ([]models.Notification, error)
	MarkRead(notificationID string) error
}

type NotificationHandler struct {
	service NotificationService
}

func NewNotificationHandler(service NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// GetNotifications handles GET /notifications/{userId}, newest first.
func (h *NotificationHandler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	if userID == "" {
		writeError(w, http.StatusBadRequest, "userId is required")
		return
	}

	notifications, err := h.service.GetByUser(userID)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Always a JSON array, even when empty.
	if notifications == nil {
		notifications = []models.Notification{}
	}
	writeJSON(w, http.StatusOK, notifications)
}

// MarkRead handles PUT /notifications/{id}/read. Idempotent; unknown ids
// still report success.
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	notificationID := mux.Vars(r)["id"]

	if err := h.service.MarkRead(notificationID); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
