package controller

import (
	"ai_tutor_backend/internal/service"
	"ai_tutor_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	analytics *service.AnalyticsService
}

func NewAnalyticsController(analytics *service.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{analytics: analytics}
}

// Dashboard godoc
// @Summary Platform-wide learning analytics
// @Tags analytics
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/analytics/dashboard [get]
func (c *AnalyticsController) Dashboard(ctx *gin.Context) {
	stats, err := c.analytics.Dashboard(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, "analytics dashboard", err)
		return
	}
	util.SuccessFields(ctx, gin.H{"analytics": stats})
}
