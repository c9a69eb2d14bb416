package report_controller

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rajstories/Aadhaar-Intelligence-System/config"
	"github.com/rajstories/Aadhaar-Intelligence-System/models"
	"gorm.io/gorm"
)

// DownloadReportPDF godoc
// @Summary Download a report as PDF
// @Description Renders the report with its stored filter set and streams the PDF
// @Tags Admin - Reports
// @Produce application/pdf
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Success 200 {file} file "PDF document"
// @Failure 400 {object} models.ApiResponse "Invalid report ID"
// @Failure 404 {object} models.ApiResponse "Report not found"
// @Failure 500 {object} models.ApiResponse
// @Router /admin/reports/{id}/pdf [get]
func DownloadReportPDF(c *gin.Context) {
	reportID := c.Param("id")
	log.Printf("[admin.report-pdf] start id=%s", reportID)

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
		log.Printf("[admin.report-pdf] ERROR fetch id=%s err=%v", reportID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	rows, err := collectReportRows(ctx, &report)
	if err != nil {
		log.Printf("[admin.report-pdf] ERROR collect id=%s err=%v", reportID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to build report"))
		return
	}

	filters := filtersFromParameters(report.Parameters)
	pdfBuffer := generateReportPDF(&report, filterSummaryLines(filters), rows)
	if pdfBuffer.Len() == 0 {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to render PDF"))
		return
	}

	log.Printf("[admin.report-pdf] respond 200 id=%s bytes=%d", reportID, pdfBuffer.Len())

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="report-%s.pdf"`, report.ID))
	c.Data(http.StatusOK, "application/pdf", pdfBuffer.Bytes())
}
