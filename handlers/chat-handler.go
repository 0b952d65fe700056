package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"campus-gigs/backend/models"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ChatService interface {
	PostMessage(ctx context.Context, message models.Message) (*models.Message, error)
	ListMessages(ctx context.Context, taskID string) ([]models.MessageWithSender, error)
}

type ChatHandler struct {
	service ChatService
}

func NewChatHandler(service ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

// PostMessage handles POST /messages.
func (h *ChatHandler) PostMessage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TaskID      string `json:"task_id"`
		SenderID    string `json:"sender_id"`
		MessageText string `json:"message_text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	taskID, err := primitive.ObjectIDFromHex(req.TaskID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid task_id format")
		return
	}
	senderID, err := primitive.ObjectIDFromHex(req.SenderID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid sender_id format")
		return
	}

	message, err := h.service.PostMessage(r.Context(), models.Message{
		TaskID:      taskID,
		SenderID:    senderID,
		MessageText: req.MessageText,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, message)
}

// ListMessages handles GET /messages/{taskId} in chronological order.
func (h *ChatHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	taskID := mux.Vars(r)["taskId"]

	messages, err := h.service.ListMessages(r.Context(), taskID)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, messages)
}
