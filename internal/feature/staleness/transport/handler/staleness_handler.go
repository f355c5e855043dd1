// Package handler provides the HTTP handlers for the staleness feature.
package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"maintenance_backend/internal/api"
	"maintenance_backend/internal/feature/staleness/domain/entity"
)

// StalenessUsecase defines the stale scan operations consumed by this handler.
// Following Go convention, the interface is defined by the consumer (handler).
type StalenessUsecase interface {
	GenerateReport(ctx context.Context, window int) (entity.Report, error)
}

// StalenessHandler serves the stale price report.
type StalenessHandler struct {
	uc StalenessUsecase
}

// NewStalenessHandler creates a new StalenessHandler instance.
func NewStalenessHandler(uc StalenessUsecase) *StalenessHandler {
	return &StalenessHandler{uc: uc}
}

// Report returns the stale price report for the requested window.
//
// Endpoint:
// GET /staleness/report?window=10
func (h *StalenessHandler) Report(c *gin.Context) {
	windowStr := c.DefaultQuery("window", "10")
	window, _ := strconv.Atoi(windowStr)

	report, err := h.uc.GenerateReport(c.Request.Context(), window)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}
