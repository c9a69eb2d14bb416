package routes

import (
	"github.com/rajstories/Aadhaar-Intelligence-System/controllers/analytics_controller"
	"github.com/gin-gonic/gin"
)

func SetupAnalyticsRoutes(rg *gin.RouterGroup) {
	analytics := rg.Group("/analytics")

	analytics.GET("/overview", analytics_controller.GetKPIOverview)
	analytics.GET("/heatmap", analytics_controller.GetHeatmap)
	analytics.GET("/enrolment-trend", analytics_controller.GetEnrolmentTrend)
	analytics.GET("/age-distribution", analytics_controller.GetAgeDistribution)
	analytics.GET("/index-scores", analytics_controller.GetIndexScores)
}
