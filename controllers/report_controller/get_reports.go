package report_controller

import (
	"log"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rajstories/Aadhaar-Intelligence-System/config"
	"github.com/rajstories/Aadhaar-Intelligence-System/models"
)

// GetReports godoc
// @Summary List generated reports
// @Description Returns reports newest first, optionally filtered by type, with pagination
// @Tags Admin - Reports
// @Produce json
// @Security BearerAuth
// @Param type query string false "Report type"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} models.ApiResponse{data=[]models.Report}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/reports [get]
func GetReports(c *gin.Context) {
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

	query := config.AisGorm.WithContext(ctx).Model(&models.Report{})
	if reportType := c.Query("type"); reportType != "" {
		query = query.Where("report_type = ?", reportType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Printf("[admin.report-list] ERROR count err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count reports"))
		return
	}

	reports := make([]models.Report, 0)
	if err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&reports).Error; err != nil {
		log.Printf("[admin.report-list] ERROR fetch err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch reports"))
		return
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: totalPages,
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Reports retrieved successfully", reports, meta))
}
