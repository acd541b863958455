// Package handler provides the HTTP handlers for the users feature.
package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"user_backend/internal/api"
	"user_backend/internal/feature/users/domain/entity"
	"user_backend/internal/feature/users/transport/http/dto"
	"user_backend/internal/feature/users/usecase"
	"user_backend/internal/platform/validation"
)

// UserUsecase defines the user operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type UserUsecase interface {
	List(ctx context.Context) ([]entity.User, error)
	Get(ctx context.Context, id uint) (*entity.User, error)
	Create(ctx context.Context, in usecase.CreateInput) (*entity.User, bool, error)
	Update(ctx context.Context, id uint, in usecase.CreateInput) (*entity.User, error)
	Delete(ctx context.Context, id uint) (*entity.User, error)
	Search(ctx context.Context, q usecase.SearchQuery) ([]entity.User, bool, error)
}

// UserHandler handles HTTP requests for the user resource.
type UserHandler struct {
	users UserUsecase
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users UserUsecase) *UserHandler {
	return &UserHandler{users: users}
}

// List handles GET /api/v1/users.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		slog.Error("list users failed", "error", err)
		api.Error(c, http.StatusInternalServerError, "Server Error.", nil)
		return
	}
	api.Success(c, http.StatusOK, dto.NewUserItems(users), "All users listed successfully.")
}

// Create handles POST /api/v1/users.
// Create is idempotent on exact-match input: resubmitting identical
// attributes returns the id of the existing record.
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserReq
	if !bindAndValidate(c, &req) {
		return
	}

	user, created, err := h.users.Create(c.Request.Context(), usecase.CreateInput{
		FullName: *req.FullName,
		Email:    *req.Email,
		Phone:    req.Phone,
		Age:      req.Age,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	slog.Info("user stored", "id", user.ID, "created", created)
	api.Success(c, http.StatusCreated, dto.CreatedData{ID: user.ID}, "User created successfully.")
}

// Show handles GET /api/v1/users/{id}.
// Single-record reads go through the caching repository, so a snapshot may be
// served for up to the cache TTL.
func (h *UserHandler) Show(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	user, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	api.Success(c, http.StatusOK, dto.NewUserItem(user), "User found successfully")
}

// Update handles PUT /api/v1/users/{id}.
// The resource id comes from the route, never from the body.
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateUserReq
	if !bindAndValidate(c, &req) {
		return
	}

	user, err := h.users.Update(c.Request.Context(), id, usecase.CreateInput{
		FullName: *req.FullName,
		Email:    *req.Email,
		Phone:    req.Phone,
		Age:      req.Age,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	slog.Info("user updated", "id", user.ID)
	api.Success(c, http.StatusOK, dto.NewUserItem(user), "User updated successfully.")
}

// Destroy handles DELETE /api/v1/users/{id}.
// A successful delete answers 410 Gone with the removed record's last state.
func (h *UserHandler) Destroy(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	user, err := h.users.Delete(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	slog.Info("user deleted", "id", id)
	api.Success(c, http.StatusGone, dto.NewUserItem(user), "User deleted successfully.")
}

// Search handles POST /api/v1/users/search.
// The page number is taken from the "page" query parameter, defaulting to 1.
func (h *UserHandler) Search(c *gin.Context) {
	// An absent body is a search with no filters.
	var req dto.SearchUserReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		slog.Warn("search rejected: malformed body", "error", err, "remote_addr", c.ClientIP())
		api.Error(c, http.StatusBadRequest, "Validation Error.", validation.Errors{
			"request": {"The request body must be valid JSON."},
		})
		return
	}
	if errs := req.Validate(); errs != nil {
		api.Error(c, http.StatusBadRequest, "Validation Error.", errs)
		return
	}

	q := usecase.SearchQuery{Email: req.Email, Phone: req.Phone}
	if req.OrderBy != nil {
		q.OrderBy = *req.OrderBy
	}
	if req.Order != nil {
		q.Order = *req.Order
	}
	if req.Limit != nil {
		q.Limit = *req.Limit
	}
	if page, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		q.Page = page
	}

	users, hasMore, err := h.users.Search(c.Request.Context(), q)
	if err != nil {
		h.writeError(c, err)
		return
	}
	api.Success(c, http.StatusOK, dto.SearchResult{
		Items:   dto.NewUserItems(users),
		HasMore: hasMore,
	}, "Search data generated successfully.")
}

// writeError maps usecase errors onto the envelope: field violations to 400,
// missing records to 404, anything else to a logged 500 with no internal
// detail exposed.
func (h *UserHandler) writeError(c *gin.Context, err error) {
	var ferr validation.Errors
	switch {
	case errors.As(err, &ferr):
		api.Error(c, http.StatusBadRequest, "Validation Error.", ferr)
	case errors.Is(err, usecase.ErrUserNotFound):
		api.Error(c, http.StatusNotFound, "User not found.", nil)
	default:
		slog.Error("user operation failed", "error", err)
		api.Error(c, http.StatusInternalServerError, "Server Error.", nil)
	}
}

// pathID extracts the resource id from the route. A non-integer id is a
// field-level validation failure, already written to the response.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		api.Error(c, http.StatusBadRequest, "Validation Error.", validation.Errors{
			"id": {"The id must be an integer."},
		})
		return 0, false
	}
	return uint(id), true
}

// bindAndValidate decodes the JSON body into req and runs its rule set,
// writing the 400 envelope on failure.
func bindAndValidate(c *gin.Context, req interface {
	Validate() validation.Errors
}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		slog.Warn("request rejected: malformed body", "error", err, "remote_addr", c.ClientIP())
		api.Error(c, http.StatusBadRequest, "Validation Error.", validation.Errors{
			"request": {"The request body must be valid JSON."},
		})
		return false
	}
	if errs := req.Validate(); errs != nil {
		api.Error(c, http.StatusBadRequest, "Validation Error.", errs)
		return false
	}
	return true
}
