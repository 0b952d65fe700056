package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RequestStatus string

const (
	RequestPending   RequestStatus = "pending"
	RequestConverted RequestStatus = "converted"
)

// DirectRequest is a private job offer from one user to another. It converts
// into a Task exactly once; converted is terminal.
type DirectRequest struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SenderID      primitive.ObjectID `bson:"sender_id" json:"sender_id"`
	ReceiverID    primitive.ObjectID `bson:"receiver_id" json:"receiver_id"`
	Message       string             `bson:"message" json:"message"`
	PriceOffer    float64            `bson:"price_offer" json:"price_offer"`
	LocationOffer string             `bson:"location_offer" json:"location_offer"`
	Status        RequestStatus      `bson:"status" json:"status"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
}
