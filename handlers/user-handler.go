package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"campus-gigs/backend/logging"
	"campus-gigs/backend/models"
)

// UserService is the slice of the user directory the HTTP layer needs.
type UserService interface {
	RegisterOrLogin(ctx context.Context, user models.User) (*models.User, error)
	UpdateStatus(ctx context.Context, userID string, status models.UserStatus) (*models.User, error)
	SearchHelpers(ctx context.Context, skill, query string) ([]models.HelperProfile, error)
	TopHelpers(ctx context.Context, limit int64) ([]models.HelperProfile, error)
}

type UserHandler struct {
	service UserService
}

func NewUserHandler(service UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Login handles POST /login: register-or-login keyed by phone number.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Phone      string `json:"phone"`
		Name       string `json:"name"`
		Department string `json:"department"`
		Year       string `json:"year"`
		Email      string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if req.Phone == "" {
		writeError(w, http.StatusBadRequest, "phone is required")
		return
	}

	user, err := h.service.RegisterOrLogin(r.Context(), models.User{
		Phone:      req.Phone,
		Name:       req.Name,
		Department: req.Department,
		Year:       req.Year,
		Email:      req.Email,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// UpdateStatus handles PUT /users/status.
func (h *UserHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID string            `json:"user_id"`
		Status models.UserStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if req.UserID == "" {
		writeError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	user, err := h.service.UpdateStatus(r.Context(), req.UserID, req.Status)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// SearchHelpers handles GET /search/helpers?skill=&query=. Failures degrade
// to an empty array; this endpoint never errors to the client.
func (h *UserHandler) SearchHelpers(w http.ResponseWriter, r *http.Request) {
	skill := r.URL.Query().Get("skill")
	query := r.URL.Query().Get("query")

	helpers, err := h.service.SearchHelpers(r.Context(), skill, query)
	if err != nil {
		logging.Logger.Errorf("Helper search failed: %v", err)
		writeJSON(w, http.StatusOK, []models.HelperProfile{})
		return
	}

	writeJSON(w, http.StatusOK, helpers)
}

// ListHelpers handles GET /helpers: top 10 available users by rating.
func (h *UserHandler) ListHelpers(w http.ResponseWriter, r *http.Request) {
	helpers, err := h.service.TopHelpers(r.Context(), 10)
	if err != nil {
		logging.Logger.Errorf("Helper listing failed: %v", err)
		writeJSON(w, http.StatusOK, []models.HelperProfile{})
		return
	}

	writeJSON(w, http.StatusOK, helpers)
}
