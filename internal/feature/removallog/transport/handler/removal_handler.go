// Package handler provides the HTTP handler for the removal log.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"maintenance_backend/internal/api"
	"maintenance_backend/internal/feature/removallog/domain/entity"
)

// RemovalUsecase defines the removal log operations consumed by this handler.
type RemovalUsecase interface {
	List(ctx context.Context) ([]entity.RemovalEntry, error)
}

// RemovalHandler handles HTTP requests for the removal log.
type RemovalHandler struct {
	uc RemovalUsecase
}

// NewRemovalHandler creates a new RemovalHandler instance.
func NewRemovalHandler(uc RemovalUsecase) *RemovalHandler {
	return &RemovalHandler{uc: uc}
}

// List returns every logged removal, newest first.
//
// Endpoint:
// GET /removals
func (h *RemovalHandler) List(c *gin.Context) {
	entries, err := h.uc.List(c.Request.Context())
	if err != nil {
		slog.Error("removal log list failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to list removals"})
		return
	}

	out := make([]api.RemovalResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, api.RemovalResponse{
			Symbol:    e.Symbol,
			Date:      e.Date.Format("2006-01-02"),
			Reason:    e.Reason,
			Status:    e.Status,
			LastPrice: e.LastPrice,
			Watchlist: e.Watchlist,
		})
	}

	c.JSON(http.StatusOK, out)
}
