package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserStatus string

const (
	StatusAvailable      UserStatus = "available"
	StatusBusy           UserStatus = "busy"
	StatusNotTakingTasks UserStatus = "not_taking_tasks"
	StatusOffline        UserStatus = "offline"
)

// Valid reports whether s is one of the allowed user statuses.
func (s UserStatus) Valid() bool {
	switch s {
	case StatusAvailable, StatusBusy, StatusNotTakingTasks, StatusOffline:
		return true
	}
	return false
}

type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Phone          string             `bson:"phone" json:"phone"`
	Name           string             `bson:"name" json:"name"`
	Department     string             `bson:"department" json:"department"`
	Year           string             `bson:"year" json:"year"`
	Email          string             `bson:"email" json:"email"`
	Status         UserStatus         `bson:"status" json:"status"`
	IsVerified     bool               `bson:"is_verified" json:"is_verified"`
	RatingAvg      float64            `bson:"rating_avg" json:"rating_avg"`
	Skills         []string           `bson:"skills" json:"skills"`
	TasksCompleted int                `bson:"tasks_completed" json:"tasks_completed"`
	CollegeDomain  string             `bson:"college_domain,omitempty" json:"college_domain,omitempty"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
}

// HelperProfile is the reduced projection returned by helper search and listing.
type HelperProfile struct {
	ID         primitive.ObjectID `bson:"_id" json:"id"`
	Name       string             `bson:"name" json:"name"`
	Department string             `bson:"department" json:"department"`
	Year       string             `bson:"year" json:"year"`
	RatingAvg  float64            `bson:"rating_avg" json:"rating_avg"`
	IsVerified bool               `bson:"is_verified" json:"is_verified"`
	Skills     []string           `bson:"skills" json:"skills"`
}
