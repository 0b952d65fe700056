package models

import "time"

type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationTask    NotificationType = "task"
	NotificationRequest NotificationType = "request"
)

// Notification is an append-only event in a user's log. TargetID optionally
// deep-links to the Task or DirectRequest the event refers to.
type Notification struct {
	ID        string           `cassandra:"id" json:"id"`
	UserID    string           `cassandra:"user_id" json:"user_id"`
	Title     string           `cassandra:"title" json:"title"`
	Message   string           `cassandra:"message" json:"message"`
	Type      NotificationType `cassandra:"type" json:"type"`
	TargetID  string           `cassandra:"target_id" json:"target_id,omitempty"`
	IsRead    bool             `cassandra:"is_read" json:"is_read"`
	CreatedAt time.Time        `cassandra:"created_at" json:"created_at"`
}
