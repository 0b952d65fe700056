package repositories

import (
	"fmt"
	"time"

	"campus-gigs/backend/models"

	"github.com/gocql/gocql"
	"github.com/sirupsen/logrus"
)

// NotificationRepo stores the per-user notification log in Cassandra.
//
// Listing reads the notifications table, clustered newest-first per user.
// Mark-read only receives a notification id, so a second lookup table maps
// id -> (user_id, created_at) to locate the row to update.
type NotificationRepo struct {
	session *gocql.Session
	logger  *logrus.Logger
}

func NewNotificationRepo(host string, logger *logrus.Logger) (*NotificationRepo, error) {
	cluster := gocql.NewCluster(host)
	cluster.Keyspace = "system"
	session, err := cluster.CreateSession()
	if err != nil {
		logger.Errorf("Failed to connect to Cassandra at %s: %v", host, err)
		return nil, err
	}

	err = session.Query(
		`CREATE KEYSPACE IF NOT EXISTS campus_gigs
         WITH replication = {
             'class': 'SimpleStrategy',
             'replication_factor': 1
         }`).Exec()
	if err != nil {
		logger.Errorf("Failed to create keyspace: %v", err)
		session.Close()
		return nil, err
	}
	session.Close()

	cluster.Keyspace = "campus_gigs"
	cluster.Consistency = gocql.One
	session, err = cluster.CreateSession()
	if err != nil {
		logger.Errorf("Failed to connect to campus_gigs keyspace: %v", err)
		return nil, err
	}

	logger.Info("Connected to Cassandra campus_gigs keyspace.")
	return &NotificationRepo{
		session: session,
		logger:  logger,
	}, nil
}

func (nr *NotificationRepo) CloseSession() {
	nr.session.Close()
	nr.logger.Info("Cassandra session closed.")
}

func (nr *NotificationRepo) CreateTables() {
	err := nr.session.Query(
		`CREATE TABLE IF NOT EXISTS notifications (
			id UUID,
			user_id TEXT,
			title TEXT,
			message TEXT,
			type TEXT,
			target_id TEXT,
			created_at TIMESTAMP,
			is_read BOOLEAN,
			PRIMARY KEY ((user_id), created_at, id)
		) WITH CLUSTERING ORDER BY (created_at DESC, id ASC)`).Exec()
	if err != nil {
		nr.logger.Errorf("Failed to create notifications table: %v", err)
	}

	err = nr.session.Query(
		`CREATE TABLE IF NOT EXISTS notifications_by_id (
			id UUID PRIMARY KEY,
			user_id TEXT,
			created_at TIMESTAMP
		)`).Exec()
	if err != nil {
		nr.logger.Errorf("Failed to create notifications_by_id table: %v", err)
	}
}

// Insert appends a notification and records its id in the lookup table.
func (nr *NotificationRepo) Insert(notification *models.Notification) error {
	id := gocql.TimeUUID()
	notification.ID = id.String()
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now()
	}

	err := nr.session.Query(
		`INSERT INTO notifications (id, user_id, title, message, type, target_id, created_at, is_read)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, notification.UserID, notification.Title, notification.Message,
		string(notification.Type), notification.TargetID, notification.CreatedAt, notification.IsRead,
	).Exec()
	if err != nil {
		return fmt.Errorf("failed to insert notification: %v", err)
	}

	err = nr.session.Query(
		`INSERT INTO notifications_by_id (id, user_id, created_at) VALUES (?, ?, ?)`,
		id, notification.UserID, notification.CreatedAt,
	).Exec()
	if err != nil {
		return fmt.Errorf("failed to index notification: %v", err)
	}

	return nil
}

// GetByUser returns the user's notifications newest first (clustering order).
func (nr *NotificationRepo) GetByUser(userID string) ([]models.Notification, error) {
	iter := nr.session.Query(
		`SELECT id, user_id, title, message, type, target_id, created_at, is_read
		 FROM notifications WHERE user_id = ?`, userID).Iter()

	var notifications []models.Notification
	var n models.Notification
	var typ string

	for iter.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &typ, &n.TargetID, &n.CreatedAt, &n.IsRead) {
		n.Type = models.NotificationType(typ)
		notifications = append(notifications, n)
	}

	if err := iter.Close(); err != nil {
		nr.logger.Errorf("Failed to fetch notifications for user %s: %v", userID, err)
		return nil, err
	}

	return notifications, nil
}

// MarkRead flips is_read to true. Unknown ids are treated as a no-op so the
// operation stays idempotent.
func (nr *NotificationRepo) MarkRead(notificationID string) error {
	id, err := gocql.ParseUUID(notificationID)
	if err != nil {
		return fmt.Errorf("invalid notification ID format")
	}

	var userID string
	var createdAt time.Time
	err = nr.session.Query(
		`SELECT user_id, created_at FROM notifications_by_id WHERE id = ?`, id,
	).Scan(&userID, &createdAt)
	if err == gocql.ErrNotFound {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to look up notification: %v", err)
	}

	err = nr.session.Query(
		`UPDATE notifications SET is_read = true WHERE user_id = ? AND created_at = ? AND id = ?`,
		userID, createdAt, id,
	).Exec()
	if err != nil {
		return fmt.Errorf("failed to mark notification as read: %v", err)
	}

	return nil
}
