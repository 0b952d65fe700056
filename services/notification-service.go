package services

import (
	"campus-gigs/backend/logging"
	"campus-gigs/backend/models"
	"campus-gigs/backend/repositories"

	"github.com/sony/gobreaker"
)

// NotificationDispatcher is the best-effort side channel other services use to
// notify users. Delivery is at-most-once: failures are logged and swallowed so
// the triggering operation succeeds regardless.
type NotificationDispatcher interface {
	Notify(userID, title, message string, notificationType models.NotificationType, targetID string)
}

type NotificationService struct {
	repo    *repositories.NotificationRepo
	breaker *gobreaker.CircuitBreaker
}

func NewNotificationService(repo *repositories.NotificationRepo, breaker *gobreaker.CircuitBreaker) *NotificationService {
	return &NotificationService{
		repo:    repo,
		breaker: breaker,
	}
}

// Notify appends a notification to the user's log. Errors never propagate.
func (ns *NotificationService) Notify(userID, title, message string, notificationType models.NotificationType, targetID string) {
	if userID == "" || title == "" || message == "" {
		logging.Logger.Warnf("Notification dropped: userID, title and message are required")
		return
	}
	if notificationType == "" {
		notificationType = models.NotificationInfo
	}

	notification := models.Notification{
		UserID:   userID,
		Title:    title,
		Message:  message,
		Type:     notificationType,
		TargetID: targetID,
		IsRead:   false,
	}

	_, err := ns.breaker.Execute(func() (interface{}, error) {
		return nil, ns.repo.Insert(&notification)
	})
	if err != nil {
		logging.Logger.Warnf("Notification for user %s dropped: %v", userID, err)
		return
	}

	logging.Logger.Infof("Notification %s created for user %s", notification.ID, userID)
}

// GetByUser returns all notifications for a user, newest first.
func (ns *NotificationService) GetByUser(userID string) ([]models.Notification, error) {
	return ns.repo.GetByUser(userID)
}

// MarkRead sets is_read unconditionally; repeated calls are a no-op.
func (ns *NotificationService) MarkRead(notificationID string) error {
	return ns.repo.MarkRead(notificationID)
}
