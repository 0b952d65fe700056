package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"campus-gigs/backend/models"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RequestService interface {
	CreateRequest(ctx context.Context, request models.DirectRequest) (*models.DirectRequest, error)
	ConvertRequest(ctx context.Context, requestID string) (*models.Task, error)
}

type RequestHandler struct {
	service RequestService
}

func NewRequestHandler(service RequestService) *RequestHandler {
	return &RequestHandler{service: service}
}

// CreateRequest handles POST /direct-requests.
func (h *RequestHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SenderID   string  `json:"sender_id"`
		ReceiverID string  `json:"receiver_id"`
		Message    string  `json:"message"`
		Price      float64 `json:"price"`
		Location   string  `json:"location"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	senderID, err := primitive.ObjectIDFromHex(req.SenderID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid sender_id format")
		return
	}
	receiverID, err := primitive.ObjectIDFromHex(req.ReceiverID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid receiver_id format")
		return
	}

	request, err := h.service.CreateRequest(r.Context(), models.DirectRequest{
		SenderID:      senderID,
		ReceiverID:    receiverID,
		Message:       req.Message,
		PriceOffer:    req.Price,
		LocationOffer: req.Location,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, request)
}

// ConvertRequest handles POST /direct-requests/{id}/convert.
func (h *RequestHandler) ConvertRequest(w http.ResponseWriter, r *http.Request) {
	requestID := mux.Vars(r)["id"]

	task, err := h.service.ConvertRequest(r.Context(), requestID)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, task)
}
