// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"maintenance_backend/internal/api"
	"maintenance_backend/internal/feature/auth/usecase"
)

// AuthUsecase defines the authentication operations consumed by this handler.
type AuthUsecase interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// AuthHandler handles HTTP requests for operator authentication.
type AuthHandler struct {
	uc AuthUsecase
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(uc AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login authenticates an operator and returns a signed JWT.
//
// Endpoint:
// POST /login {"email": "ops@example.com", "password": "..."}
func (h *AuthHandler) Login(c *gin.Context) {
	var req api.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	token, err := h.uc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: err.Error()})
			return
		}
		slog.Error("login failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "login failed"})
		return
	}

	c.JSON(http.StatusOK, api.TokenResponse{Token: token})
}
