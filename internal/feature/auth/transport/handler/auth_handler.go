// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"user_backend/internal/api"
	"user_backend/internal/feature/auth/domain/entity"
	"user_backend/internal/feature/auth/transport/http/dto"
	"user_backend/internal/platform/validation"
)

// AuthUsecase defines the auth operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type AuthUsecase interface {
	// Register creates an account and issues a bearer token for it.
	Register(ctx context.Context, name, email, password string) (*entity.AuthUser, string, error)
	// Login authenticates an account and issues a bearer token on success.
	Login(ctx context.Context, email, password string) (*entity.AuthUser, string, error)
}

// AuthHandler handles HTTP requests for registration and login.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register handles POST /api/v1/register.
// Field violations and duplicate emails return 400 with the rule messages;
// success returns 201 with the issued token and the account name.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register rejected: malformed body", "error", err, "remote_addr", c.ClientIP())
		api.Error(c, http.StatusBadRequest, "Validation Error.", validation.Errors{
			"request": {"The request body must be valid JSON."},
		})
		return
	}
	if errs := req.Validate(); errs != nil {
		api.Error(c, http.StatusBadRequest, "Validation Error.", errs)
		return
	}

	user, token, err := h.auth.Register(c.Request.Context(), *req.Name, *req.Email, *req.Password)
	if err != nil {
		var ferr validation.Errors
		if errors.As(err, &ferr) {
			slog.Warn("register rejected", "email", *req.Email, "remote_addr", c.ClientIP())
			api.Error(c, http.StatusBadRequest, "Validation Error.", ferr)
			return
		}
		slog.Error("register failed", "error", err, "remote_addr", c.ClientIP())
		api.Error(c, http.StatusInternalServerError, "Server Error.", nil)
		return
	}

	slog.Info("account registered", "email", user.Email, "remote_addr", c.ClientIP())
	api.Success(c, http.StatusCreated, dto.TokenData{Token: token, Name: user.Name}, "Registered successfully.")
}

// Login handles POST /api/v1/login.
// Unknown emails and wrong passwords both return the same generic 401 so that
// accounts cannot be enumerated.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login rejected: malformed body", "error", err, "remote_addr", c.ClientIP())
		api.Error(c, http.StatusBadRequest, "Validation Error.", validation.Errors{
			"request": {"The request body must be valid JSON."},
		})
		return
	}
	if errs := req.Validate(); errs != nil {
		api.Error(c, http.StatusBadRequest, "Validation Error.", errs)
		return
	}

	user, token, err := h.auth.Login(c.Request.Context(), *req.Email, *req.Password)
	if err != nil {
		slog.Warn("login failed", "email", *req.Email, "remote_addr", c.ClientIP())
		api.Error(c, http.StatusUnauthorized, "Unauthorised.", gin.H{"error": "Unauthorised"})
		return
	}

	slog.Info("login successful", "email", user.Email, "remote_addr", c.ClientIP())
	api.Success(c, http.StatusOK, dto.TokenData{Token: token, Name: user.Name}, "Login successfully.")
}
