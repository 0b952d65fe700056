package services

import (
	"context"
	"fmt"
	"time"

	"campus-gigs/backend/logging"
	"campus-gigs/backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TaskService struct {
	tasks    *mongo.Collection
	users    *mongo.Collection
	notifier NotificationDispatcher
}

func NewTaskService(tasks, users *mongo.Collection, notifier NotificationDispatcher) *TaskService {
	return &TaskService{
		tasks:    tasks,
		users:    users,
		notifier: notifier,
	}
}

// ListOpenTasks returns open tasks newest first, each joined with a snapshot
// of its creator's public profile. An empty category means no filter.
func (s *TaskService) ListOpenTasks(ctx context.Context, category string) ([]models.TaskWithCreator, error) {
	filter := bson.M{"status": models.TaskOpen}
	if category != "" {
		filter["category"] = category
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.tasks.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve tasks: %v", err)
	}
	defer cursor.Close(ctx)

	var tasks []models.Task
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, fmt.Errorf("failed to decode tasks: %v", err)
	}

	creators, err := s.creatorSnapshots(ctx, tasks)
	if err != nil {
		return nil, err
	}

	result := []models.TaskWithCreator{}
	for _, task := range tasks {
		result = append(result, models.TaskWithCreator{
			Task:    task,
			Creator: creators[task.CreatedBy],
		})
	}
	return result, nil
}

// creatorSnapshots fetches the creators of the given tasks in one query.
func (s *TaskService) creatorSnapshots(ctx context.Context, tasks []models.Task) (map[primitive.ObjectID]models.CreatorSnapshot, error) {
	snapshots := make(map[primitive.ObjectID]models.CreatorSnapshot)
	if len(tasks) == 0 {
		return snapshots, nil
	}

	seen := make(map[primitive.ObjectID]bool)
	ids := []primitive.ObjectID{}
	for _, task := range tasks {
		if !seen[task.CreatedBy] {
			seen[task.CreatedBy] = true
			ids = append(ids, task.CreatedBy)
		}
	}

	cursor, err := s.users.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve task creators: %v", err)
	}
	defer cursor.Close(ctx)

	var creators []models.User
	if err := cursor.All(ctx, &creators); err != nil {
		return nil, fmt.Errorf("failed to decode task creators: %v", err)
	}

	for _, creator := range creators {
		snapshots[creator.ID] = models.CreatorSnapshot{
			Name:          creator.Name,
			Department:    creator.Department,
			RatingAvg:     creator.RatingAvg,
			IsVerified:    creator.IsVerified,
			CollegeDomain: creator.CollegeDomain,
		}
	}
	return snapshots, nil
}

// CreateTask inserts a new open task. Category defaults to "General".
func (s *TaskService) CreateTask(ctx context.Context, task models.Task) (*models.Task, error) {
	if task.CreatedBy.IsZero() || task.Title == "" {
		return nil, fmt.Errorf("created_by and title are required")
	}
	if task.Category == "" {
		task.Category = "General"
	}

	task.ID = primitive.NewObjectID()
	task.Status = models.TaskOpen
	task.CreatedAt = time.Now()

	if _, err := s.tasks.InsertOne(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %v", err)
	}
	return &task, nil
}

// CompleteTask transitions the task to completed and returns the updated row.
// The creator is notified best-effort; when the task was assigned, the
// assignee's tasks_completed counter is bumped.
func (s *TaskService) CompleteTask(ctx context.Context, taskID string) (*models.Task, error) {
	objectID, err := primitive.ObjectIDFromHex(taskID)
	if err != nil {
		return nil, fmt.Errorf("invalid task ID format")
	}

	result, err := s.tasks.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": bson.M{"status": models.TaskCompleted}})
	if err != nil {
		return nil, fmt.Errorf("failed to update task status: %v", err)
	}
	if result.MatchedCount == 0 {
		return nil, fmt.Errorf("task not found")
	}

	var task models.Task
	if err := s.tasks.FindOne(ctx, bson.M{"_id": objectID}).Decode(&task); err != nil {
		return nil, fmt.Errorf("failed to retrieve updated task: %v", err)
	}

	if task.AssignedTo != nil {
		_, err := s.users.UpdateOne(ctx, bson.M{"_id": *task.AssignedTo}, bson.M{"$inc": bson.M{"tasks_completed": 1}})
		if err != nil {
			logging.Logger.Warnf("Failed to increment tasks_completed for user %s: %v", task.AssignedTo.Hex(), err)
		}
	}

	s.notifier.Notify(
		task.CreatedBy.Hex(),
		"Task completed",
		fmt.Sprintf("Your task %q was marked as completed.", task.Title),
		models.NotificationTask,
		task.ID.Hex(),
	)

	return &task, nil
}
