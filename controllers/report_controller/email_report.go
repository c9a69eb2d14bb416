package report_controller

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rajstories/Aadhaar-Intelligence-System/config"
	"github.com/rajstories/Aadhaar-Intelligence-System/middleware"
	"github.com/rajstories/Aadhaar-Intelligence-System/models"
	"github.com/rajstories/Aadhaar-Intelligence-System/services"
	"gorm.io/gorm"
)

// EmailReport godoc
// @Summary Email a report to the requesting admin
// @Description Renders the report PDF and sends it to the admin's email address
// @Tags Admin - Reports
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid report ID"
// @Failure 404 {object} models.ApiResponse "Report not found"
// @Failure 500 {object} models.ApiResponse
// @Router /admin/reports/{id}/email [post]
func EmailReport(c *gin.Context) {
	reportID := c.Param("id")
	log.Printf("[admin.report-email] start id=%s", reportID)

	if _, err := uuid.Parse(reportID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid report ID"))
		return
	}

	adminID, ok := middleware.GetAdminIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
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
		log.Printf("[admin.report-email] ERROR fetch id=%s err=%v", reportID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	var admin models.Admin
	if err := config.AisGorm.WithContext(ctx).
		Where("id = ?", adminID).
		First(&admin).Error; err != nil {
		log.Printf("[admin.report-email] ERROR admin lookup id=%s err=%v", adminID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	rows, err := collectReportRows(ctx, &report)
	if err != nil {
		log.Printf("[admin.report-email] ERROR collect id=%s err=%v", reportID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to build report"))
		return
	}

	filters := filtersFromParameters(report.Parameters)
	filterLines := filterSummaryLines(filters)
	pdfBuffer := generateReportPDF(&report, filterLines, rows)

	// Send asynchronously so a slow provider never blocks the response
	go func() {
		resendClient := services.NewResendClient()

		emailData := services.ReportEmailData{
			RecipientName:  admin.Name,
			RecipientEmail: admin.Email,
			ReportTitle:    report.Title,
			ReportType:     report.ReportType,
			GeneratedAt:    report.CreatedAt.Format("Jan 02, 2006"),
			FilterSummary:  filterLines,
			PDFContent:     pdfBuffer.Bytes(),
			PDFFilename:    fmt.Sprintf("report-%s.pdf", report.ID),
		}

		if err := resendClient.SendReportEmail(emailData); err != nil {
			log.Printf("[admin.report-email] failed to send for report %s: %v", reportID, err)
		} else {
			log.Printf("[admin.report-email] sent to %s for report %s", admin.Email, reportID)
		}
	}()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Report email queued", map[string]any{
		"report_id": report.ID,
		"sent_to":   admin.Email,
	}))
}
