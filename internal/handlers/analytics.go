package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/halcyon-app/halcyon/backend/internal/apierror"
	"github.com/halcyon-app/halcyon/backend/internal/logger"
	"github.com/halcyon-app/halcyon/backend/internal/service"
)

type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

// GetSummary handles GET /api/v1/analytics/summary
func (h *AnalyticsHandler) GetSummary(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	summary, err := h.analyticsService.GetSummary(c.Request.Context(), userID.(string))
	if err != nil {
		// A collaborator read failed; surface a degraded state to the
		// client rather than fabricating data.
		logger.Ctx(c.Request.Context()).Error("analytics summary failed", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, summary)
}
