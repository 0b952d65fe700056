package services

import (
	"context"
	"fmt"
	"time"

	"campus-gigs/backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ChatService struct {
	messages *mongo.Collection
	users    *mongo.Collection
}

func NewChatService(messages, users *mongo.Collection) *ChatService {
	return &ChatService{
		messages: messages,
		users:    users,
	}
}

// PostMessage appends a message to the task's log and returns the created row.
func (s *ChatService) PostMessage(ctx context.Context, message models.Message) (*models.Message, error) {
	if message.TaskID.IsZero() || message.SenderID.IsZero() || message.MessageText == "" {
		return nil, fmt.Errorf("task_id, sender_id and message_text are required")
	}

	message.ID = primitive.NewObjectID()
	message.CreatedAt = time.Now()

	if _, err := s.messages.InsertOne(ctx, message); err != nil {
		return nil, fmt.Errorf("failed to post message: %v", err)
	}
	return &message, nil
}

// ListMessages returns the task's messages oldest first, joined with each
// sender's display name.
func (s *ChatService) ListMessages(ctx context.Context, taskID string) ([]models.MessageWithSender, error) {
	objectID, err := primitive.ObjectIDFromHex(taskID)
	if err != nil {
		return nil, fmt.Errorf("invalid task ID format")
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := s.messages.Find(ctx, bson.M{"task_id": objectID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve messages: %v", err)
	}
	defer cursor.Close(ctx)

	var messages []models.Message
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("failed to decode messages: %v", err)
	}

	names, err := s.senderNames(ctx, messages)
	if err != nil {
		return nil, err
	}

	result := []models.MessageWithSender{}
	for _, message := range messages {
		result = append(result, models.MessageWithSender{
			Message:    message,
			SenderName: names[message.SenderID],
		})
	}
	return result, nil
}

func (s *ChatService) senderNames(ctx context.Context, messages []models.Message) (map[primitive.ObjectID]string, error) {
	names := make(map[primitive.ObjectID]string)
	if len(messages) == 0 {
		return names, nil
	}

	seen := make(map[primitive.ObjectID]bool)
	ids := []primitive.ObjectID{}
	for _, message := range messages {
		if !seen[message.SenderID] {
			seen[message.SenderID] = true
			ids = append(ids, message.SenderID)
		}
	}

	cursor, err := s.users.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve senders: %v", err)
	}
	defer cursor.Close(ctx)

	var senders []models.User
	if err := cursor.All(ctx, &senders); err != nil {
		return nil, fmt.Errorf("failed to decode senders: %v", err)
	}

	for _, sender := range senders {
		names[sender.ID] = sender.Name
	}
	return names, nil
}
