package report_controller

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rajstories/Aadhaar-Intelligence-System/config"
	"github.com/rajstories/Aadhaar-Intelligence-System/middleware"
	"github.com/rajstories/Aadhaar-Intelligence-System/models"
)

var validReportTypes = map[string]bool{
	"enrolment_summary": true,
	"saturation":        true,
	"alert_digest":      true,
}

// GenerateReport godoc
// @Summary Generate a report
// @Description Creates a report record storing the requested filter set verbatim. Generation is synchronous for now
// @Tags Admin - Reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.GenerateReportRequest true "Report title, type and filters"
// @Success 201 {object} models.ApiResponse{data=models.Report}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/reports [post]
func GenerateReport(c *gin.Context) {
	log.Printf("[admin.report-generate] start")

	var req models.GenerateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request"))
		return
	}

	if !validReportTypes[req.ReportType] {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unknown report type"))
		return
	}

	adminID, ok := middleware.GetAdminIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}
	requestedBy, err := uuid.Parse(adminID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	// Store the filter set exactly as requested
	params, err := json.Marshal(req.Filters)
	if err != nil {
		log.Printf("[admin.report-generate] failed to marshal filters: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	now := time.Now()
	report := models.Report{
		ID:          uuid.Must(uuid.NewV7()),
		Title:       req.Title,
		ReportType:  req.ReportType,
		Parameters:  params,
		Status:      models.ReportStatusCompleted,
		RequestedBy: requestedBy,
		CreatedAt:   now,
		CompletedAt: &now,
	}

	if err := config.AisGorm.WithContext(ctx).Create(&report).Error; err != nil {
		log.Printf("[admin.report-generate] ERROR create err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create report"))
		return
	}

	log.Printf("[admin.report-generate] respond 201 id=%s type=%s", report.ID, report.ReportType)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Report generated successfully", report))
}
