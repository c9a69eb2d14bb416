package analytics_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rajstories/Aadhaar-Intelligence-System/config"
	"github.com/rajstories/Aadhaar-Intelligence-System/models"
)

// GetAgeDistribution godoc
// @Summary Get age-group distribution
// @Description Returns metric totals per age group with percentages, narrowed by the standard filter parameters
// @Tags Admin - Analytics
// @Produce json
// @Security BearerAuth
// @Param state query string false "State code"
// @Param district query string false "District code"
// @Param year query int false "Year"
// @Param month query int false "Month (1-12)"
// @Param metricType query string false "Metric type (default enrolment)"
// @Success 200 {object} models.ApiResponse{data=[]models.AgeBucket}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/analytics/age-distribution [get]
func GetAgeDistribution(c *gin.Context) {
	log.Printf("[admin.analytics-age] start")

	filters := models.FiltersFromQuery(c)
	if filters.MetricType == "" {
		filters.MetricType = "enrolment"
	}
	// Grouping by age group, so the age filter itself is ignored here.
	filters.AgeGroup = ""

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var buckets []models.AgeBucket
	if err := filters.Scope(config.AisGorm.WithContext(ctx).Model(&models.EnrolmentMetric{})).
		Select("age_group, COALESCE(SUM(value), 0)::bigint AS value").
		Group("age_group").
		Order("age_group ASC").
		Scan(&buckets).Error; err != nil {
		log.Printf("[admin.analytics-age] ERROR query err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch age distribution"))
		return
	}

	// ================================
	// Calculate percentages
	// ================================
	var total int64
	for _, b := range buckets {
		total += b.Value
	}
	for i := range buckets {
		if total > 0 {
			buckets[i].Percentage = (float64(buckets[i].Value) / float64(total)) * 100
		}
	}

	log.Printf("[admin.analytics-age] respond 200 buckets=%d total=%d", len(buckets), total)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Age distribution retrieved successfully", buckets))
}
