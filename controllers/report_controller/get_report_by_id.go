package report_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rajstories/Aadhaar-Intelligence-System/config"
	"github.com/rajstories/Aadhaar-Intelligence-System/models"
	"gorm.io/gorm"
)

// GetReportByID godoc
// @Summary Get a report by ID
// @Tags Admin - Reports
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Success 200 {object} models.ApiResponse{data=models.Report}
// @Failure 400 {object} models.ApiResponse "Invalid report ID"
// @Failure 404 {object} models.ApiResponse "Report not found"
// @Failure 500 {object} models.ApiResponse
// @Router /admin/reports/{id} [get]
func GetReportByID(c *gin.Context) {
	reportID := c.Param("id")

	if _, err := uuid.Parse(reportID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid report ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var report models.Report
	if err := config.AisGorm.WithContext(ctx).
		Where("id = ?", reportID).
		First(&report).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Report not found"))
			return
		}
		log.Printf("[admin.report-get] ERROR id=%s err=%v", reportID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Report retrieved successfully", report))
}
