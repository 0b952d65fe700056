package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"campus-gigs/backend/models"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubChatService struct {
	postMessage  func(message models.Message) (*models.Message, error)
	listMessages func(taskID string) ([]models.MessageWithSender, error)
}

func (s *stubChatService) PostMessage(_ context.Context, message models.Message) (*models.Message, error) {
	return s.postMessage(message)
}

func (s *stubChatService) ListMessages(_ context.Context, taskID string) ([]models.MessageWithSender, error) {
	return s.listMessages(taskID)
}

func TestPostMessage(t *testing.T) {
	taskID := primitive.NewObjectID()
	senderID := primitive.NewObjectID()

	tests := []struct {
		name           string
		body           string
		service        *stubChatService
		expectedStatus int
	}{
		{
			name: "valid message",
			body: fmt.Sprintf(`{"task_id":"%s","sender_id":"%s","message_text":"on my way"}`, taskID.Hex(), senderID.Hex()),
			service: &stubChatService{
				postMessage: func(message models.Message) (*models.Message, error) {
					message.ID = primitive.NewObjectID()
					return &message, nil
				},
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid task_id",
			body:           fmt.Sprintf(`{"task_id":"nope","sender_id":"%s","message_text":"hi"}`, senderID.Hex()),
			service:        &stubChatService{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "empty message_text rejected by the service",
			body: fmt.Sprintf(`{"task_id":"%s","sender_id":"%s","message_text":""}`, taskID.Hex(), senderID.Hex()),
			service: &stubChatService{
				postMessage: func(message models.Message) (*models.Message, error) {
					return nil, fmt.Errorf("task_id, sender_id and message_text are required")
				},
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewChatHandler(tt.service)

			req := httptest.NewRequest(http.MethodPost, "/messages", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.PostMessage(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d. Body: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestListMessages(t *testing.T) {
	taskID := primitive.NewObjectID()

	handler := NewChatHandler(&stubChatService{
		listMessages: func(id string) ([]models.MessageWithSender, error) {
			if id != taskID.Hex() {
				return nil, fmt.Errorf("invalid task ID format")
			}
			return []models.MessageWithSender{
				{Message: models.Message{MessageText: "first"}, SenderName: "Alice"},
				{Message: models.Message{MessageText: "second"}, SenderName: "Bob"},
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/messages/"+taskID.Hex(), nil)
	req = mux.SetURLVars(req, map[string]string{"taskId": taskID.Hex()})
	w := httptest.NewRecorder()

	handler.ListMessages(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	var messages []models.MessageWithSender
	if err := json.NewDecoder(w.Body).Decode(&messages); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("Expected 2 messages, got %d", len(messages))
	}
	if messages[0].MessageText != "first" || messages[0].SenderName != "Alice" {
		t.Errorf("Unexpected first message: %+v", messages[0])
	}
}
