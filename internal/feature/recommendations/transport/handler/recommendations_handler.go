// Package handler provides the HTTP handlers for cleanup recommendations.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"maintenance_backend/internal/api"
	"maintenance_backend/internal/feature/recommendations/domain/entity"
	"maintenance_backend/internal/feature/recommendations/usecase"
)

// RecommendationsUsecase defines the operations consumed by this handler.
type RecommendationsUsecase interface {
	GenerateReport(ctx context.Context, window int) (entity.CleanupReport, error)
	RenderCleanupScript(ctx context.Context, window int) (string, error)
}

// RecommendationsHandler handles HTTP requests for cleanup recommendations.
type RecommendationsHandler struct {
	uc RecommendationsUsecase
}

// NewRecommendationsHandler creates a new RecommendationsHandler instance.
func NewRecommendationsHandler(uc RecommendationsUsecase) *RecommendationsHandler {
	return &RecommendationsHandler{uc: uc}
}

// Report returns the full cleanup recommendations report.
//
// Endpoint:
// GET /recommendations?window=10
func (h *RecommendationsHandler) Report(c *gin.Context) {
	window, ok := windowParam(c)
	if !ok {
		return
	}

	report, err := h.uc.GenerateReport(c.Request.Context(), window)
	if err != nil {
		slog.Error("recommendations report failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to generate recommendations"})
		return
	}

	c.JSON(http.StatusOK, report)
}

// Script returns the reviewable SQL cleanup script as plain text.
//
// Endpoint:
// GET /recommendations/script?window=10
func (h *RecommendationsHandler) Script(c *gin.Context) {
	window, ok := windowParam(c)
	if !ok {
		return
	}

	script, err := h.uc.RenderCleanupScript(c.Request.Context(), window)
	if err != nil {
		if errors.Is(err, usecase.ErrNoDelistedSecurities) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
			return
		}
		slog.Error("cleanup script rendering failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to render cleanup script"})
		return
	}

	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(script))
}

func windowParam(c *gin.Context) (int, bool) {
	windowStr := c.DefaultQuery("window", "10")
	window, err := strconv.Atoi(windowStr)
	if err != nil || window < 1 {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid window"})
		return 0, false
	}
	return window, true
}
