package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Message struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TaskID      primitive.ObjectID `bson:"task_id" json:"task_id"`
	SenderID    primitive.ObjectID `bson:"sender_id" json:"sender_id"`
	MessageText string             `bson:"message_text" json:"message_text"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}

type MessageWithSender struct {
	Message
	SenderName string `json:"sender_name"`
}
