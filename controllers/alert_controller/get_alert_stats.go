package alert_controller

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/rajstories/Aadhaar-Intelligence-System/config"
	"github.com/rajstories/Aadhaar-Intelligence-System/models"
)

// GetAlertStats godoc
// @Summary Get alert queue statistics
// @Description Returns totals per status plus the active-critical count for the dashboard header badge
// @Tags Admin - Alerts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.AlertStats}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/alerts/stats [get]
func GetAlertStats(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var stats models.AlertStats
	var wg sync.WaitGroup
	errChan := make(chan error, 5)

	count := func(dst *int64, conds ...any) {
		defer wg.Done()
		db := config.AisGorm.WithContext(ctx).Model(&models.Alert{})
		if len(conds) > 0 {
			db = db.Where(conds[0], conds[1:]...)
		}
		if err := db.Count(dst).Error; err != nil {
			errChan <- err
		}
	}

	wg.Add(5)
	go count(&stats.Total)
	go count(&stats.Active, "status = ?", models.AlertStatusActive)
	go count(&stats.Acknowledged, "status = ?", models.AlertStatusAcknowledged)
	go count(&stats.Resolved, "status = ?", models.AlertStatusResolved)
	go count(&stats.Critical, "status = ? AND severity = ?", models.AlertStatusActive, "critical")
	wg.Wait()
	close(errChan)

	if err := <-errChan; err != nil {
		log.Printf("[admin.alert-stats] ERROR count err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch alert stats"))
		return
	}

	log.Printf("[admin.alert-stats] respond 200 active=%d critical=%d", stats.Active, stats.Critical)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Alert stats retrieved successfully", stats))
}
