package services

import (
	"testing"

	"campus-gigs/backend/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestDirectTitle(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{
			name:    "short message kept whole",
			message: "Fix my bike",
			want:    "Direct: Fix my bike",
		},
		{
			name:    "exactly fifteen characters",
			message: "123456789012345",
			want:    "Direct: 123456789012345",
		},
		{
			name:    "longer message truncated to fifteen",
			message: "1234567890123456789",
			want:    "Direct: 123456789012345",
		},
		{
			name:    "empty message",
			message: "",
			want:    "Direct: ",
		},
		{
			name:    "multi-byte characters counted as runes",
			message: "héllo wörld with more text",
			want:    "Direct: héllo wörld wit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DirectTitle(tt.message); got != tt.want {
				t.Errorf("DirectTitle(%q) = %q, want %q", tt.message, got, tt.want)
			}
		})
	}
}

func TestTaskFromRequest(t *testing.T) {
	sender := primitive.NewObjectID()
	receiver := primitive.NewObjectID()
	request := models.DirectRequest{
		ID:            primitive.NewObjectID(),
		SenderID:      sender,
		ReceiverID:    receiver,
		Message:       "Need help moving my stuff this weekend",
		PriceOffer:    250,
		LocationOffer: "North dorms",
		Status:        models.RequestPending,
	}

	task := taskFromRequest(request)

	if task.CreatedBy != sender {
		t.Errorf("CreatedBy = %s, want sender %s", task.CreatedBy.Hex(), sender.Hex())
	}
	if task.AssignedTo == nil || *task.AssignedTo != receiver {
		t.Errorf("AssignedTo = %v, want receiver %s", task.AssignedTo, receiver.Hex())
	}
	if task.Title != "Direct: Need help movin" {
		t.Errorf("Title = %q, want %q", task.Title, "Direct: Need help movin")
	}
	if task.Description != request.Message {
		t.Errorf("Description = %q, want the full message", task.Description)
	}
	if task.Price != 250 {
		t.Errorf("Price = %v, want 250", task.Price)
	}
	if task.Location != "North dorms" {
		t.Errorf("Location = %q, want %q", task.Location, "North dorms")
	}
	if task.Urgency != "Immediate" {
		t.Errorf("Urgency = %q, want %q", task.Urgency, "Immediate")
	}
	if task.Category != "Direct" {
		t.Errorf("Category = %q, want %q", task.Category, "Direct")
	}
	if task.Status != models.TaskInProgress {
		t.Errorf("Status = %q, want %q", task.Status, models.TaskInProgress)
	}
	if task.ID.IsZero() {
		t.Error("expected a generated task ID")
	}
}
