package analytics_controller

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rajstories/Aadhaar-Intelligence-System/config"
	"github.com/rajstories/Aadhaar-Intelligence-System/models"
	"gorm.io/gorm"
)

// GetKPIOverview godoc
// @Summary Get dashboard KPI overview
// @Description Returns headline totals with growth vs the previous period, narrowed by the standard filter parameters
// @Tags Admin - Analytics
// @Produce json
// @Security BearerAuth
// @Param state query string false "State code"
// @Param district query string false "District code"
// @Param year query int false "Year"
// @Param month query int false "Month (1-12)"
// @Param ageGroup query string false "Age group"
// @Success 200 {object} models.ApiResponse{data=models.KPIOverview}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/analytics/overview [get]
func GetKPIOverview(c *gin.Context) {
	log.Printf("[admin.analytics-overview] start")

	filters := models.FiltersFromQuery(c)
	current, previous := periodWindows(filters)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	overview := models.KPIOverview{}

	// ================================
	// Enrolments
	// ================================
	curEnrol, err := sumMetric(ctx, current, "enrolment")
	if err != nil {
		log.Printf("[admin.analytics-overview] ERROR enrolments err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch analytics overview"))
		return
	}
	prevEnrol, err := sumMetric(ctx, previous, "enrolment")
	if err != nil {
		log.Printf("[admin.analytics-overview] ERROR previous enrolments err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch analytics overview"))
		return
	}
	overview.TotalEnrolments = curEnrol
	overview.EnrolmentGrowthPercent = growthPercent(curEnrol, prevEnrol)

	// ================================
	// Updates (demographic + biometric)
	// ================================
	curUpd, err := sumUpdates(ctx, current)
	if err != nil {
		log.Printf("[admin.analytics-overview] ERROR updates err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch analytics overview"))
		return
	}
	prevUpd, err := sumUpdates(ctx, previous)
	if err != nil {
		log.Printf("[admin.analytics-overview] ERROR previous updates err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch analytics overview"))
		return
	}
	overview.TotalUpdates = curUpd
	overview.UpdateGrowthPercent = growthPercent(curUpd, prevUpd)

	// ================================
	// Authentications
	// ================================
	curAuth, err := sumMetric(ctx, current, "authentication")
	if err != nil {
		log.Printf("[admin.analytics-overview] ERROR authentications err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch analytics overview"))
		return
	}
	prevAuth, err := sumMetric(ctx, previous, "authentication")
	if err != nil {
		log.Printf("[admin.analytics-overview] ERROR previous authentications err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch analytics overview"))
		return
	}
	overview.TotalAuthentications = curAuth
	overview.AuthGrowthPercent = growthPercent(curAuth, prevAuth)

	// ================================
	// Saturation index (mean score in scope)
	// ================================
	var saturation *float64
	satFilters := current
	satFilters.IndexType = "saturation"
	if err := satFilters.IndexScope(config.AisGorm.WithContext(ctx).Model(&models.IndexScore{})).
		Select("AVG(score)").
		Scan(&saturation).Error; err != nil {
		log.Printf("[admin.analytics-overview] ERROR saturation err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch analytics overview"))
		return
	}
	if saturation != nil {
		overview.SaturationPercent = *saturation
	}

	// ================================
	// Active alerts in geographic scope
	// ================================
	alertQuery := config.AisGorm.WithContext(ctx).
		Model(&models.Alert{}).
		Where("status = ?", models.AlertStatusActive)
	if filters.State != "" {
		alertQuery = alertQuery.Where("state_code = ?", filters.State)
	}
	if filters.District != "" {
		alertQuery = alertQuery.Where("district_code = ?", filters.District)
	}
	var activeAlerts int64
	if err := alertQuery.Count(&activeAlerts).Error; err != nil {
		log.Printf("[admin.analytics-overview] ERROR alerts err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch analytics overview"))
		return
	}
	overview.ActiveAlerts = int(activeAlerts)

	log.Printf("[admin.analytics-overview] respond 200 enrolments=%d updates=%d auths=%d alerts=%d",
		overview.TotalEnrolments, overview.TotalUpdates, overview.TotalAuthentications, overview.ActiveAlerts)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Analytics overview retrieved successfully", overview))
}

// periodWindows derives the comparison window for growth figures. With a
// month selected the previous window is the month before; with only a year,
// the year before; with no time filter, the current vs previous calendar
// month.
func periodWindows(f models.AppliedFilters) (current, previous models.AppliedFilters) {
	current = f
	previous = f

	switch {
	case f.Year != 0 && f.Month != 0:
		if f.Month == 1 {
			previous.Year = f.Year - 1
			previous.Month = 12
		} else {
			previous.Month = f.Month - 1
		}
	case f.Year != 0:
		previous.Year = f.Year - 1
	default:
		now := time.Now()
		current.Year = now.Year()
		current.Month = int(now.Month())
		prev := now.AddDate(0, -1, 0)
		previous.Year = prev.Year()
		previous.Month = int(prev.Month())
	}
	return current, previous
}

func sumMetric(ctx context.Context, f models.AppliedFilters, metricType string) (int64, error) {
	f.MetricType = metricType
	return sumWithScope(ctx, f.Scope)
}

func sumUpdates(ctx context.Context, f models.AppliedFilters) (int64, error) {
	f.MetricType = ""
	return sumWithScope(ctx, func(db *gorm.DB) *gorm.DB {
		return f.Scope(db).Where("metric_type IN ?", []string{"demographic_update", "biometric_update"})
	})
}

func sumWithScope(ctx context.Context, scope func(*gorm.DB) *gorm.DB) (int64, error) {
	var total *int64
	err := scope(config.AisGorm.WithContext(ctx).Model(&models.EnrolmentMetric{})).
		Select("SUM(value)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}

func growthPercent(current, previous int64) float64 {
	if previous == 0 {
		return 0
	}
	return (float64(current) - float64(previous)) / float64(previous) * 100
}
