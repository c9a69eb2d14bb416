package analytics_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rajstories/Aadhaar-Intelligence-System/config"
	"github.com/rajstories/Aadhaar-Intelligence-System/models"
)

// GetIndexScores godoc
// @Summary Get per-district index scores
// @Description Returns the latest index score per district for the selected index type and filters
// @Tags Admin - Analytics
// @Produce json
// @Security BearerAuth
// @Param state query string false "State code"
// @Param district query string false "District code"
// @Param year query int false "Year"
// @Param month query int false "Month (1-12)"
// @Param indexType query string false "Index type (default saturation)"
// @Success 200 {object} models.ApiResponse{data=[]models.IndexScoreRow}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/analytics/index-scores [get]
func GetIndexScores(c *gin.Context) {
	log.Printf("[admin.analytics-index] start")

	filters := models.FiltersFromQuery(c)
	if filters.IndexType == "" {
		filters.IndexType = "saturation"
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var scores []models.IndexScoreRow
	if err := filters.IndexScope(config.AisGorm.WithContext(ctx).Model(&models.IndexScore{})).
		Select(`DISTINCT ON (index_scores.district_code)
			index_scores.district_code,
			districts.name AS district_name,
			index_scores.state_code,
			index_scores.index_type,
			index_scores.score`).
		Joins("LEFT JOIN districts ON districts.code = index_scores.district_code").
		Order("index_scores.district_code, index_scores.year DESC, index_scores.month DESC").
		Scan(&scores).Error; err != nil {
		log.Printf("[admin.analytics-index] ERROR query err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch index scores"))
		return
	}

	log.Printf("[admin.analytics-index] respond 200 districts=%d type=%s", len(scores), filters.IndexType)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Index scores retrieved successfully", scores))
}
