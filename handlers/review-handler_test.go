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

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubReviewService struct {
	submitReview func(review models.Review) error
}

func (s *stubReviewService) SubmitReview(_ context.Context, review models.Review) error {
	return s.submitReview(review)
}

func TestSubmitReview(t *testing.T) {
	taskID := primitive.NewObjectID()
	reviewerID := primitive.NewObjectID()
	reviewedID := primitive.NewObjectID()

	tests := []struct {
		name           string
		body           string
		service        *stubReviewService
		expectedStatus int
	}{
		{
			name: "valid review",
			body: fmt.Sprintf(`{"task_id":"%s","reviewer_id":"%s","reviewed_user_id":"%s","rating":4,"comment":"great work"}`,
				taskID.Hex(), reviewerID.Hex(), reviewedID.Hex()),
			service: &stubReviewService{
				submitReview: func(review models.Review) error {
					if review.Rating != 4 {
						return fmt.Errorf("unexpected rating %v", review.Rating)
					}
					return nil
				},
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "out-of-range rating rejected by the service",
			body: fmt.Sprintf(`{"task_id":"%s","reviewer_id":"%s","reviewed_user_id":"%s","rating":9}`,
				taskID.Hex(), reviewerID.Hex(), reviewedID.Hex()),
			service: &stubReviewService{
				submitReview: func(review models.Review) error {
					return fmt.Errorf("rating must be between 1 and 5")
				},
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid reviewed_user_id",
			body:           fmt.Sprintf(`{"task_id":"%s","reviewer_id":"%s","reviewed_user_id":"nope","rating":4}`, taskID.Hex(), reviewerID.Hex()),
			service:        &stubReviewService{},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewReviewHandler(tt.service)

			req := httptest.NewRequest(http.MethodPost, "/reviews", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.SubmitReview(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d. Body: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
			if tt.expectedStatus == http.StatusOK {
				var resp map[string]string
				if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
					t.Fatalf("Failed to decode response: %v", err)
				}
				if resp["message"] == "" {
					t.Error("Expected a confirmation message")
				}
			}
		})
	}
}
