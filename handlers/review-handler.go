package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"campus-gigs/backend/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReviewService interface {
	SubmitReview(ctx context.Context, review models.Review) error
}

type ReviewHandler struct {
	service ReviewService
}

func NewReviewHandler(service ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// SubmitReview handles POST /reviews.
func (h *ReviewHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TaskID         string  `json:"task_id"`
		ReviewerID     string  `json:"reviewer_id"`
		ReviewedUserID string  `json:"reviewed_user_id"`
		Rating         float64 `json:"rating"`
		Comment        string  `json:"comment"`
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
	reviewerID, err := primitive.ObjectIDFromHex(req.ReviewerID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid reviewer_id format")
		return
	}
	reviewedUserID, err := primitive.ObjectIDFromHex(req.ReviewedUserID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid reviewed_user_id format")
		return
	}

	err = h.service.SubmitReview(r.Context(), models.Review{
		TaskID:         taskID,
		ReviewerID:     reviewerID,
		ReviewedUserID: reviewedUserID,
		Rating:         req.Rating,
		Comment:        req.Comment,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Review submitted"})
}
