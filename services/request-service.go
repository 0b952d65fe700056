package services

import (
	"context"
	"fmt"
	"time"

	"campus-gigs/backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type RequestService struct {
	requests *mongo.Collection
	tasks    *mongo.Collection
	notifier NotificationDispatcher
}

func NewRequestService(requests, tasks *mongo.Collection, notifier NotificationDispatcher) *RequestService {
	return &RequestService{
		requests: requests,
		tasks:    tasks,
		notifier: notifier,
	}
}

// CreateRequest inserts a pending direct request and notifies the receiver
// best-effort, deep-linking the new request's id.
func (s *RequestService) CreateRequest(ctx context.Context, request models.DirectRequest) (*models.DirectRequest, error) {
	if request.SenderID.IsZero() || request.ReceiverID.IsZero() || request.Message == "" {
		return nil, fmt.Errorf("sender_id, receiver_id and message are required")
	}

	request.ID = primitive.NewObjectID()
	request.Status = models.RequestPending
	request.CreatedAt = time.Now()

	if _, err := s.requests.InsertOne(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to create direct request: %v", err)
	}

	s.notifier.Notify(
		request.ReceiverID.Hex(),
		"New direct request",
		request.Message,
		models.NotificationRequest,
		request.ID.Hex(),
	)

	return &request, nil
}

// DirectTitle builds the task title for a converted request: "Direct: " plus
// the first 15 characters of the message, counted in runes.
func DirectTitle(message string) string {
	runes := []rune(message)
	if len(runes) > 15 {
		runes = runes[:15]
	}
	return "Direct: " + string(runes)
}

// taskFromRequest derives the in-progress task a direct request converts into.
func taskFromRequest(request models.DirectRequest) models.Task {
	receiver := request.ReceiverID
	return models.Task{
		ID:          primitive.NewObjectID(),
		CreatedBy:   request.SenderID,
		AssignedTo:  &receiver,
		Title:       DirectTitle(request.Message),
		Description: request.Message,
		Price:       request.PriceOffer,
		Location:    request.LocationOffer,
		Urgency:     "Immediate",
		Category:    "Direct",
		Status:      models.TaskInProgress,
		CreatedAt:   time.Now(),
	}
}

// ConvertRequest derives a Task from a pending direct request, then archives
// the request as converted. The two writes are not transactional: if the task
// insert fails the request stays pending, and if the archive fails after a
// successful insert the store is left inconsistent.
func (s *RequestService) ConvertRequest(ctx context.Context, requestID string) (*models.Task, error) {
	objectID, err := primitive.ObjectIDFromHex(requestID)
	if err != nil {
		return nil, fmt.Errorf("invalid request ID format")
	}

	var request models.DirectRequest
	err = s.requests.FindOne(ctx, bson.M{"_id": objectID}).Decode(&request)
	if err == mongo.ErrNoDocuments {
		return nil, fmt.Errorf("direct request not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve direct request: %v", err)
	}
	if request.Status == models.RequestConverted {
		return nil, fmt.Errorf("direct request already converted")
	}

	task := taskFromRequest(request)

	if _, err := s.tasks.InsertOne(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task from request: %v", err)
	}

	_, err = s.requests.UpdateOne(ctx, bson.M{"_id": objectID},
		bson.M{"$set": bson.M{"status": models.RequestConverted}})
	if err != nil {
		return nil, fmt.Errorf("task created but failed to archive request: %v", err)
	}

	return &task, nil
}
