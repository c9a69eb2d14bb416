package routes

import (
	"github.com/rajstories/Aadhaar-Intelligence-System/controllers/alert_controller"
	"github.com/gin-gonic/gin"
)

func SetupAlertRoutes(rg *gin.RouterGroup) {
	alerts := rg.Group("/alerts")

	alerts.GET("", alert_controller.GetAlerts)
	alerts.GET("/stats", alert_controller.GetAlertStats)
	alerts.POST("/:id/acknowledge", alert_controller.AcknowledgeAlert)
}
