package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TaskStatus string

const (
	TaskOpen       TaskStatus = "open"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
)

type Task struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	CreatedBy   primitive.ObjectID  `bson:"created_by" json:"created_by"`
	AssignedTo  *primitive.ObjectID `bson:"assigned_to,omitempty" json:"assigned_to,omitempty"`
	Title       string              `bson:"title" json:"title"`
	Description string              `bson:"description" json:"description"`
	Price       float64             `bson:"price" json:"price"`
	Location    string              `bson:"location" json:"location"`
	Urgency     string              `bson:"urgency" json:"urgency"`
	Category    string              `bson:"category" json:"category"`
	Status      TaskStatus          `bson:"status" json:"status"`
	CreatedAt   time.Time           `bson:"created_at" json:"created_at"`
}

// CreatorSnapshot is the public slice of a creator's profile attached to
// open-task listings.
type CreatorSnapshot struct {
	Name          string  `json:"name"`
	Department    string  `json:"department"`
	RatingAvg     float64 `json:"rating_avg"`
	IsVerified    bool    `json:"is_verified"`
	CollegeDomain string  `json:"college_domain,omitempty"`
}

type TaskWithCreator struct {
	Task
	Creator CreatorSnapshot `json:"creator"`
}
