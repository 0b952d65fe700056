package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"campus-gigs/backend/models"

	"github.com/gorilla/mux"
)

type stubNotificationService struct {
	getByUser func(userID string) ([]models.Notification, error)
	markRead  func(notificationID string) error
}

func (s *stubNotificationService) GetByUser(userID string) ([]models.Notification, error) {
	return s.getByUser(userID)
}

func (s *stubNotificationService) MarkRead(notificationID string) error {
	return s.markRead(notificationID)
}

func TestGetNotifications(t *testing.T) {
	t.Run("returns the user's log", func(t *testing.T) {
		handler := NewNotificationHandler(&stubNotificationService{
			getByUser: func(userID string) ([]models.Notification, error) {
				return []models.Notification{
					{ID: "n2", UserID: userID, Type: models.NotificationTask, CreatedAt: time.Now()},
					{ID: "n1", UserID: userID, Type: models.NotificationInfo, CreatedAt: time.Now().Add(-time.Hour)},
				}, nil
			},
		})

		req := httptest.NewRequest(http.MethodGet, "/notifications/u1", nil)
		req = mux.SetURLVars(req, map[string]string{"userId": "u1"})
		w := httptest.NewRecorder()

		handler.GetNotifications(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}
		var notifications []models.Notification
		if err := json.NewDecoder(w.Body).Decode(&notifications); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(notifications) != 2 {
			t.Errorf("Expected 2 notifications, got %d", len(notifications))
		}
	})

	t.Run("empty log is an empty array", func(t *testing.T) {
		handler := NewNotificationHandler(&stubNotificationService{
			getByUser: func(userID string) ([]models.Notification, error) {
				return nil, nil
			},
		})

		req := httptest.NewRequest(http.MethodGet, "/notifications/u1", nil)
		req = mux.SetURLVars(req, map[string]string{"userId": "u1"})
		w := httptest.NewRecorder()

		handler.GetNotifications(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}
		if body := w.Body.String(); body != "[]\n" {
			t.Errorf("Expected an empty JSON array, got %q", body)
		}
	})

	t.Run("store failure surfaces as 400", func(t *testing.T) {
		handler := NewNotificationHandler(&stubNotificationService{
			getByUser: func(userID string) ([]models.Notification, error) {
				return nil, fmt.Errorf("store unavailable")
			},
		})

		req := httptest.NewRequest(http.MethodGet, "/notifications/u1", nil)
		req = mux.SetURLVars(req, map[string]string{"userId": "u1"})
		w := httptest.NewRecorder()

		handler.GetNotifications(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})
}

func TestMarkReadIdempotent(t *testing.T) {
	calls := 0
	handler := NewNotificationHandler(&stubNotificationService{
		markRead: func(notificationID string) error {
			calls++
			return nil
		},
	})

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPut, "/notifications/abc/read", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "abc"})
		w := httptest.NewRecorder()

		handler.MarkRead(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Call %d: expected status 200, got %d", i+1, w.Code)
		}
		var resp map[string]bool
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if !resp["success"] {
			t.Errorf("Call %d: expected success true", i+1)
		}
	}
	if calls != 2 {
		t.Errorf("Expected the service to be called twice, got %d", calls)
	}
}

func TestMarkReadStoreFailure(t *testing.T) {
	handler := NewNotificationHandler(&stubNotificationService{
		markRead: func(notificationID string) error {
			return fmt.Errorf("failed to mark notification as read")
		},
	})

	req := httptest.NewRequest(http.MethodPut, "/notifications/abc/read", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "abc"})
	w := httptest.NewRecorder()

	handler.MarkRead(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}
