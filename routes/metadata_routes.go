package routes

import (
	"github.com/rajstories/Aadhaar-Intelligence-System/controllers/metadata_controller"
	"github.com/gin-gonic/gin"
)

// SetupMetadataRoutes registers the public filter catalog endpoint. The
// dashboard calls this before anything else, so it stays outside auth.
func SetupMetadataRoutes(rg *gin.RouterGroup) {
	metadata := rg.Group("/metadata")

	metadata.GET("/filters", metadata_controller.GetFilterMetadata)
}
