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

// DeleteReport godoc
// @Summary Delete a report
// @Description Permanently deletes a report record. Super admin only
// @Tags Admin - Reports
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid report ID"
// @Failure 404 {object} models.ApiResponse "Report not found"
// @Failure 500 {object} models.ApiResponse
// @Router /admin/reports/{id} [delete]
func DeleteReport(c *gin.Context) {
	reportID := c.Param("id")
	log.Printf("[admin.report-delete] start id=%s", reportID)

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
		log.Printf("[admin.report-delete] ERROR fetch id=%s err=%v", reportID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	if err := config.AisGorm.WithContext(ctx).Delete(&report).Error; err != nil {
		log.Printf("[admin.report-delete] ERROR delete id=%s err=%v", reportID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete report"))
		return
	}

	log.Printf("[admin.report-delete] respond 200 id=%s", reportID)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Report deleted successfully", map[string]any{
		"id": report.ID,
	}))
}
