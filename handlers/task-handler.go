package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"campus-gigs/backend/models"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TaskService interface {
	ListOpenTasks(ctx context.Context, category string) ([]models.TaskWithCreator, error)
	CreateTask(ctx context.Context, task models.Task) (*models.Task, error)
	CompleteTask(ctx context.Context, taskID string) (*models.Task, error)
}

type TaskHandler struct {
	service TaskService
}

func NewTaskHandler(service TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// ListTasks handles GET /tasks?category=. The literal category "All" means no
// filter.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "All" {
		category = ""
	}

	tasks, err := h.service.ListOpenTasks(r.Context(), category)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, tasks)
}

// CreateTask handles POST /tasks.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CreatedBy   string  `json:"created_by"`
		Title       string  `json:"title"`
		Description string  `json:"description"`
		Price       float64 `json:"price"`
		Location    string  `json:"location"`
		Urgency     string  `json:"urgency"`
		Category    string  `json:"category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	createdBy, err := primitive.ObjectIDFromHex(req.CreatedBy)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid created_by format")
		return
	}

	task, err := h.service.CreateTask(r.Context(), models.Task{
		CreatedBy:   createdBy,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Location:    req.Location,
		Urgency:     req.Urgency,
		Category:    req.Category,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, task)
}

// CompleteTask handles PUT /tasks/{taskId}/complete.
func (h *TaskHandler) CompleteTask(w http.ResponseWriter, r *http.Request) {
	taskID := mux.Vars(r)["taskId"]

	task, err := h.service.CompleteTask(r.Context(), taskID)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Task marked as completed",
		"task":    task,
	})
}
