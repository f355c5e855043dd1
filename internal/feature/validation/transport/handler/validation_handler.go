// Package handler provides the HTTP handler for security status validation.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"maintenance_backend/internal/api"
	"maintenance_backend/internal/feature/validation/domain/entity"
)

// ValidationUsecase defines the validation operation consumed by this handler.
type ValidationUsecase interface {
	ValidateBatch(ctx context.Context, symbols []string, window int) (entity.Report, error)
}

// ValidationHandler handles HTTP requests for security status validation.
type ValidationHandler struct {
	uc ValidationUsecase
}

// NewValidationHandler creates a new ValidationHandler instance.
func NewValidationHandler(uc ValidationUsecase) *ValidationHandler {
	return &ValidationHandler{uc: uc}
}

// Run validates securities flagged by the stale scan. An empty or absent
// body validates every flagged security.
//
// Endpoint:
// POST /validation/run?window=10 {"symbols": ["IPG"]}
func (h *ValidationHandler) Run(c *gin.Context) {
	var req api.ValidationRunRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
			return
		}
	}

	windowStr := c.DefaultQuery("window", "10")
	window, err := strconv.Atoi(windowStr)
	if err != nil || window < 1 {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid window"})
		return
	}

	report, err := h.uc.ValidateBatch(c.Request.Context(), req.Symbols, window)
	if err != nil {
		slog.Error("validation run failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "validation failed"})
		return
	}

	c.JSON(http.StatusOK, report)
}
