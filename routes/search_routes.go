package routes

import (
	"github.com/rajstories/Aadhaar-Intelligence-System/controllers/search_controller"
	"github.com/gin-gonic/gin"
)

func SetupSearchRoutes(rg *gin.RouterGroup) {
	rg.GET("/search", search_controller.GlobalSearch)
}
