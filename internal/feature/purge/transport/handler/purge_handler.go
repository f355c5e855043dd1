// Package handler provides the HTTP handler for the purge feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"maintenance_backend/internal/api"
	"maintenance_backend/internal/feature/purge/domain/entity"
	"maintenance_backend/internal/feature/purge/usecase"
)

// PurgeUsecase defines the purge operation consumed by this handler.
// Following Go convention, the interface is defined by the consumer (handler).
type PurgeUsecase interface {
	Purge(ctx context.Context, symbols []string, confirmed bool) (entity.PurgeResult, error)
}

// PurgeHandler handles HTTP requests for the purge operation.
type PurgeHandler struct {
	uc PurgeUsecase
}

// NewPurgeHandler creates a new PurgeHandler instance.
func NewPurgeHandler(uc PurgeUsecase) *PurgeHandler {
	return &PurgeHandler{uc: uc}
}

// Purge runs the backup-then-delete operation.
// Without "confirmed": true in the body, only the backup step executes.
//
// Endpoint:
// POST /purge {"symbols": ["IPG", "CRCW"], "confirmed": false}
func (h *PurgeHandler) Purge(c *gin.Context) {
	var req api.PurgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("purge validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	result, err := h.uc.Purge(c.Request.Context(), req.Symbols, req.Confirmed)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmptySymbolSet):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, usecase.ErrTableNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
		default:
			slog.Error("purge failed", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "purge failed"})
		}
		return
	}

	c.JSON(http.StatusOK, api.PurgeResponse{
		RunID:     result.RunID,
		Symbols:   result.Symbols,
		BackedUp:  result.BackedUp,
		Deleted:   result.Deleted,
		Confirmed: result.Confirmed,
		StartedAt: result.StartedAt.UTC().Format(time.RFC3339),
	})
}
