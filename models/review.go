package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Review struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TaskID         primitive.ObjectID `bson:"task_id" json:"task_id"`
	ReviewerID     primitive.ObjectID `bson:"reviewer_id" json:"reviewer_id"`
	ReviewedUserID primitive.ObjectID `bson:"reviewed_user_id" json:"reviewed_user_id"`
	Rating         float64            `bson:"rating" json:"rating"`
	Comment        string             `bson:"comment" json:"comment"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
}
