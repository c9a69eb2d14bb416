package analytics_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rajstories/Aadhaar-Intelligence-System/config"
	"github.com/rajstories/Aadhaar-Intelligence-System/models"
)

var monthAbbrevs = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// GetEnrolmentTrend godoc
// @Summary Get 12-month metric trend
// @Description Returns a monthly series for chart visualization. Uses the selected year, otherwise the trailing 12 months
// @Tags Admin - Analytics
// @Produce json
// @Security BearerAuth
// @Param state query string false "State code"
// @Param district query string false "District code"
// @Param year query int false "Year"
// @Param metricType query string false "Metric type (default enrolment)"
// @Param ageGroup query string false "Age group"
// @Success 200 {object} models.ApiResponse{data=[]models.TrendPoint}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/analytics/enrolment-trend [get]
func GetEnrolmentTrend(c *gin.Context) {
	log.Printf("[admin.analytics-trend] start")

	filters := models.FiltersFromQuery(c)
	if filters.MetricType == "" {
		filters.MetricType = "enrolment"
	}
	// The series always spans whole months; a month filter would collapse it
	// to a single point.
	filters.Month = 0

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// ================================
	// Grouped monthly sums in scope
	// ================================
	var rows []models.TrendPoint
	if err := filters.Scope(config.AisGorm.WithContext(ctx).Model(&models.EnrolmentMetric{})).
		Select("year, month AS month_number, COALESCE(SUM(value), 0)::bigint AS value").
		Group("year, month").
		Order("year ASC, month ASC").
		Scan(&rows).Error; err != nil {
		log.Printf("[admin.analytics-trend] ERROR query err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch trend data"))
		return
	}

	type ym struct{ year, month int }
	byMonth := make(map[ym]int64, len(rows))
	for _, r := range rows {
		byMonth[ym{r.Year, r.MonthNumber}] = r.Value
	}

	// ================================
	// Ensure all 12 months are present (fill missing months with 0)
	// ================================
	completeData := []models.TrendPoint{}

	var cursor time.Time
	if filters.Year != 0 {
		cursor = time.Date(filters.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
	} else {
		now := time.Now()
		cursor = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -11, 0)
	}

	for i := 0; i < 12; i++ {
		month := cursor.AddDate(0, i, 0)
		key := ym{month.Year(), int(month.Month())}
		completeData = append(completeData, models.TrendPoint{
			Month:       monthAbbrevs[int(month.Month())-1],
			MonthNumber: int(month.Month()),
			Year:        month.Year(),
			Value:       byMonth[key],
		})
	}

	log.Printf("[admin.analytics-trend] respond 200 months=%d metric=%s", len(completeData), filters.MetricType)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Trend data retrieved successfully", completeData))
}
