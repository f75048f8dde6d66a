package handler

import (
	"log/slog"
	"net/http"

	models "dochub/internal/domain/models/docsystem"
	docsysSvc "dochub/internal/domain/services/docsystem"
	"dochub/internal/httputil"
)

// UserHandler handles registration
type UserHandler struct {
	userService docsysSvc.UserService
	logger      *slog.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService docsysSvc.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// UserResponse wraps a registered or returning user
type UserResponse struct {
	Message string       `json:"message"`
	User    *models.User `json:"user"`
}

// Register creates a user, or returns the existing user for a known email.
// POST /api/user
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req docsysSvc.RegisterRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, created, err := h.userService.Register(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	if !created {
		httputil.RespondJSON(w, http.StatusOK, UserResponse{Message: "Welcome back", User: user})
		return
	}
	httputil.RespondJSON(w, http.StatusCreated, UserResponse{Message: "User registered successfully", User: user})
}
