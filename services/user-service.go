package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"campus-gigs/backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserService struct {
	users *mongo.Collection

	// allowedDomain is the configured email suffix for first-time
	// registration; empty disables the check.
	allowedDomain string
}

func NewUserService(users *mongo.Collection, allowedDomain string) *UserService {
	return &UserService{
		users:         users,
		allowedDomain: strings.TrimPrefix(allowedDomain, "@"),
	}
}

// RegisterOrLogin looks a user up by phone. An existing record is returned
// unchanged; the profile fields in the request are ignored on repeat login.
// A new record requires a valid email and gets the registration defaults.
func (s *UserService) RegisterOrLogin(ctx context.Context, user models.User) (*models.User, error) {
	if user.Phone == "" {
		return nil, fmt.Errorf("phone is required")
	}

	var existing models.User
	err := s.users.FindOne(ctx, bson.M{"phone": user.Phone}).Decode(&existing)
	if err == nil {
		return &existing, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, fmt.Errorf("failed to look up user: %v", err)
	}

	if user.Email == "" {
		return nil, fmt.Errorf("email is required for registration")
	}
	if err := ValidateEmailDomain(user.Email, s.allowedDomain); err != nil {
		return nil, err
	}

	user.ID = primitive.NewObjectID()
	user.Status = models.StatusAvailable
	user.IsVerified = true
	user.RatingAvg = 5.0
	user.TasksCompleted = 0
	user.CollegeDomain = CollegeDomain(user.Email)
	if user.Skills == nil {
		user.Skills = []string{}
	}
	user.CreatedAt = time.Now()

	if _, err := s.users.InsertOne(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %v", err)
	}

	return &user, nil
}

// ValidateEmailDomain checks that email is well formed and, when an allowed
// suffix is configured, that its domain ends with it.
func ValidateEmailDomain(email, allowed string) error {
	at := strings.LastIndex(email, "@")
	if at < 1 || at == len(email)-1 {
		return fmt.Errorf("invalid email address")
	}
	if allowed == "" {
		return nil
	}

	domain := strings.ToLower(email[at+1:])
	if !strings.HasSuffix(domain, strings.ToLower(allowed)) {
		return fmt.Errorf("registration is restricted to %s email addresses", allowed)
	}
	return nil
}

// CollegeDomain extracts the part of the email after "@".
func CollegeDomain(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return ""
	}
	return email[at+1:]
}

// UpdateStatus overwrites the user's status. The status must be one of the
// enumerated values; anything else fails with a validation error.
func (s *UserService) UpdateStatus(ctx context.Context, userID string, status models.UserStatus) (*models.User, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("invalid status: must be one of available, busy, not_taking_tasks, offline")
	}

	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format")
	}

	result, err := s.users.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return nil, fmt.Errorf("failed to update status: %v", err)
	}
	if result.MatchedCount == 0 {
		return nil, fmt.Errorf("user not found")
	}

	var user models.User
	if err := s.users.FindOne(ctx, bson.M{"_id": objectID}).Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to retrieve updated user: %v", err)
	}
	return &user, nil
}

// SearchHelpers returns available users sorted by rating, optionally filtered
// by a skill (exact set membership) and a case-insensitive name substring.
func (s *UserService) SearchHelpers(ctx context.Context, skill, query string) ([]models.HelperProfile, error) {
	filter := bson.M{"status": models.StatusAvailable}
	if skill != "" {
		filter["skills"] = skill
	}
	if query != "" {
		filter["name"] = primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	}

	opts := options.Find().SetSort(bson.D{{Key: "rating_avg", Value: -1}})
	cursor, err := s.users.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to search helpers: %v", err)
	}
	defer cursor.Close(ctx)

	helpers := []models.HelperProfile{}
	if err := cursor.All(ctx, &helpers); err != nil {
		return nil, fmt.Errorf("failed to decode helpers: %v", err)
	}
	return helpers, nil
}

// TopHelpers returns the highest-rated available users, projected to the
// helper profile fields.
func (s *UserService) TopHelpers(ctx context.Context, limit int64) ([]models.HelperProfile, error) {
	if limit <= 0 {
		limit = 10
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "rating_avg", Value: -1}}).
		SetLimit(limit).
		SetProjection(bson.M{
			"name":        1,
			"department":  1,
			"year":        1,
			"rating_avg":  1,
			"is_verified": 1,
			"skills":      1,
		})

	cursor, err := s.users.Find(ctx, bson.M{"status": models.StatusAvailable}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list helpers: %v", err)
	}
	defer cursor.Close(ctx)

	helpers := []models.HelperProfile{}
	if err := cursor.All(ctx, &helpers); err != nil {
		return nil, fmt.Errorf("failed to decode helpers: %v", err)
	}
	return helpers, nil
}
