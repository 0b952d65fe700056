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

type ReviewService struct {
	reviews *mongo.Collection
	users   *mongo.Collection
}

func NewReviewService(reviews, users *mongo.Collection) *ReviewService {
	return &ReviewService{
		reviews: reviews,
		users:   users,
	}
}

// SubmitReview inserts the review and recomputes the reviewed user's average
// rating over every review they have ever received. The insert, re-read and
// update are not transactional; concurrent submissions can persist a stale
// average.
func (s *ReviewService) SubmitReview(ctx context.Context, review models.Review) error {
	if review.TaskID.IsZero() || review.ReviewerID.IsZero() || review.ReviewedUserID.IsZero() {
		return fmt.Errorf("task_id, reviewer_id and reviewed_user_id are required")
	}
	if review.Rating < 1 || review.Rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5")
	}

	review.ID = primitive.NewObjectID()
	review.CreatedAt = time.Now()

	if _, err := s.reviews.InsertOne(ctx, review); err != nil {
		return fmt.Errorf("failed to submit review: %v", err)
	}

	cursor, err := s.reviews.Find(ctx, bson.M{"reviewed_user_id": review.ReviewedUserID})
	if err != nil {
		return fmt.Errorf("failed to retrieve reviews: %v", err)
	}
	defer cursor.Close(ctx)

	var all []models.Review
	if err := cursor.All(ctx, &all); err != nil {
		return fmt.Errorf("failed to decode reviews: %v", err)
	}

	ratings := make([]float64, 0, len(all))
	for _, r := range all {
		ratings = append(ratings, r.Rating)
	}

	_, err = s.users.UpdateOne(ctx,
		bson.M{"_id": review.ReviewedUserID},
		bson.M{"$set": bson.M{"rating_avg": MeanRating(ratings)}})
	if err != nil {
		return fmt.Errorf("failed to update rating average: %v", err)
	}

	return nil
}

// MeanRating returns the arithmetic mean of the given ratings.
func MeanRating(ratings []float64) float64 {
	if len(ratings) == 0 {
		return 0
	}
	var sum float64
	for _, r := range ratings {
		sum += r
	}
	return sum / float64(len(ratings))
}
