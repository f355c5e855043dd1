package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"maintenance_backend/internal/feature/recommendations/domain/entity"
	"maintenance_backend/internal/feature/recommendations/usecase"
)

// mockRecommendationsUsecase is a mock implementation of RecommendationsUsecase.
type mockRecommendationsUsecase struct {
	GenerateReportFunc      func(ctx context.Context, window int) (entity.CleanupReport, error)
	RenderCleanupScriptFunc func(ctx context.Context, window int) (string, error)
}

func (m *mockRecommendationsUsecase) GenerateReport(ctx context.Context, window int) (entity.CleanupReport, error) {
	return m.GenerateReportFunc(ctx, window)
}

func (m *mockRecommendationsUsecase) RenderCleanupScript(ctx context.Context, window int) (string, error) {
	return m.RenderCleanupScriptFunc(ctx, window)
}

func newTestRouter(uc RecommendationsUsecase) *gin.Engine {
	h := NewRecommendationsHandler(uc)
	router := gin.New()
	router.GET("/recommendations", h.Report)
	router.GET("/recommendations/script", h.Script)
	return router
}

func TestRecommendationsHandler_Report(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		url            string
		mockFunc       func(ctx context.Context, window int) (entity.CleanupReport, error)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "success: default window",
			url:  "/recommendations",
			mockFunc: func(ctx context.Context, window int) (entity.CleanupReport, error) {
				assert.Equal(t, 10, window)
				return entity.CleanupReport{
					RiskAssessment: entity.RiskAssessment{
						OverallRisk:      "LOW",
						DataQualityScore: 96,
						Urgency:          entity.UrgencyLow,
					},
				}, nil
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"data_quality_score":96`)
				assert.Contains(t, body, `"recommendations_urgency":"LOW"`)
			},
		},
		{
			name: "success: explicit window forwarded",
			url:  "/recommendations?window=30",
			mockFunc: func(ctx context.Context, window int) (entity.CleanupReport, error) {
				assert.Equal(t, 30, window)
				return entity.CleanupReport{}, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "failure: invalid window returns 400",
			url:            "/recommendations?window=zero",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "failure: usecase error returns 500",
			url:  "/recommendations",
			mockFunc: func(ctx context.Context, window int) (entity.CleanupReport, error) {
				return entity.CleanupReport{}, errors.New("db gone")
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(&mockRecommendationsUsecase{GenerateReportFunc: tt.mockFunc})

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, tt.url, nil)

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkBody != nil {
				tt.checkBody(t, w.Body.String())
			}
		})
	}
}

func TestRecommendationsHandler_Script(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success: returns plain text script", func(t *testing.T) {
		router := newTestRouter(&mockRecommendationsUsecase{
			RenderCleanupScriptFunc: func(ctx context.Context, window int) (string, error) {
				return "-- Database Cleanup Script\n", nil
			},
		})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/recommendations/script", nil)

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
		assert.Contains(t, w.Body.String(), "-- Database Cleanup Script")
	})

	t.Run("failure: nothing delisted returns 404", func(t *testing.T) {
		router := newTestRouter(&mockRecommendationsUsecase{
			RenderCleanupScriptFunc: func(ctx context.Context, window int) (string, error) {
				return "", usecase.ErrNoDelistedSecurities
			},
		})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/recommendations/script", nil)

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("failure: usecase error returns 500", func(t *testing.T) {
		router := newTestRouter(&mockRecommendationsUsecase{
			RenderCleanupScriptFunc: func(ctx context.Context, window int) (string, error) {
				return "", errors.New("db gone")
			},
		})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/recommendations/script", nil)

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
