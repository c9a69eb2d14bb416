package alert_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rajstories/Aadhaar-Intelligence-System/config"
	"github.com/rajstories/Aadhaar-Intelligence-System/middleware"
	"github.com/rajstories/Aadhaar-Intelligence-System/models"
	"gorm.io/gorm"
)

// AcknowledgeAlert godoc
// @Summary Acknowledge an alert
// @Description Marks an active alert as acknowledged by the current admin
// @Tags Admin - Alerts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Alert ID"
// @Success 200 {object} models.ApiResponse{data=models.Alert}
// @Failure 400 {object} models.ApiResponse "Invalid alert ID"
// @Failure 404 {object} models.ApiResponse "Alert not found"
// @Failure 409 {object} models.ApiResponse "Alert is not active"
// @Failure 500 {object} models.ApiResponse
// @Router /admin/alerts/{id}/acknowledge [post]
func AcknowledgeAlert(c *gin.Context) {
	alertID := c.Param("id")
	log.Printf("[admin.alert-ack] start id=%s", alertID)

	if _, err := uuid.Parse(alertID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid alert ID"))
		return
	}

	adminIDStr, ok := middleware.GetAdminIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}
	adminID, err := uuid.Parse(adminIDStr)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var alert models.Alert
	if err := config.AisGorm.WithContext(ctx).
		Where("id = ?", alertID).
		First(&alert).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Alert not found"))
			return
		}
		log.Printf("[admin.alert-ack] ERROR fetch id=%s err=%v", alertID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	if alert.Status != models.AlertStatusActive {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Alert is not active"))
		return
	}

	now := time.Now()
	alert.Status = models.AlertStatusAcknowledged
	alert.AcknowledgedAt = &now
	alert.AcknowledgedBy = &adminID

	if err := config.AisGorm.WithContext(ctx).Save(&alert).Error; err != nil {
		log.Printf("[admin.alert-ack] ERROR save id=%s err=%v", alertID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to acknowledge alert"))
		return
	}

	log.Printf("[admin.alert-ack] respond 200 id=%s by=%s", alertID, adminID)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Alert acknowledged", alert))
}
