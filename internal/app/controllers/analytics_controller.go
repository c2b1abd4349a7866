package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/insider-navs/backend/internal/app/services"
	"github.com/insider-navs/backend/internal/middleware"
)

// AnalyticsController serves the dashboard aggregates
type AnalyticsController struct {
	analyticsService services.AnalyticsService
}

// NewAnalyticsController creates a new AnalyticsController
func NewAnalyticsController(analyticsService services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{
		analyticsService: analyticsService,
	}
}

// GetAnalytics returns the dashboard counters
// @Summary Get analytics
// @Description Aggregate faculty and location counts; empty tables yield zeros
// @Tags analytics
// @Produce json
// @Success 200 {object} dto.AnalyticsData
// @Failure 500 {object} dto.ErrorResponse
// @Router /analytics [get]
func (c *AnalyticsController) GetAnalytics(ctx *gin.Context) {
	data, err := c.analyticsService.GetAnalytics(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, data)
}
