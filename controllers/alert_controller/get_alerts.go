package alert_controller

import (
	"log"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rajstories/Aadhaar-Intelligence-System/config"
	"github.com/rajstories/Aadhaar-Intelligence-System/models"
)

// GetAlerts godoc
// @Summary List monitoring alerts
// @Description Returns alerts newest first, filtered by status, severity and geography, with pagination
// @Tags Admin - Alerts
// @Produce json
// @Security BearerAuth
// @Param status query string false "Alert status (active, acknowledged, resolved)"
// @Param severity query string false "Severity (low, medium, high, critical)"
// @Param state query string false "State code"
// @Param district query string false "District code"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} models.ApiResponse{data=[]models.Alert}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/alerts [get]
func GetAlerts(c *gin.Context) {
	// Parse and validate pagination
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	offset := (page - 1) * limit

	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := config.AisGorm.WithContext(ctx).Model(&models.Alert{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if severity := c.Query("severity"); severity != "" {
		query = query.Where("severity = ?", severity)
	}
	if state := c.Query("state"); state != "" {
		query = query.Where("state_code = ?", state)
	}
	if district := c.Query("district"); district != "" {
		query = query.Where("district_code = ?", district)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Printf("[admin.alert-list] ERROR count err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count alerts"))
		return
	}

	alerts := make([]models.Alert, 0)
	if err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&alerts).Error; err != nil {
		log.Printf("[admin.alert-list] ERROR fetch err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch alerts"))
		return
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: totalPages,
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Alerts retrieved successfully", alerts, meta))
}
