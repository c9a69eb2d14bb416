package analytics_controller

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rajstories/Aadhaar-Intelligence-System/config"
	"github.com/rajstories/Aadhaar-Intelligence-System/models"
)

// GetHeatmap godoc
// @Summary Get district heatmap data
// @Description Returns per-district aggregates with centroids for map rendering, narrowed by the standard filter parameters
// @Tags Admin - Analytics
// @Produce json
// @Security BearerAuth
// @Param state query string false "State code"
// @Param year query int false "Year"
// @Param month query int false "Month (1-12)"
// @Param metricType query string false "Metric type"
// @Param ageGroup query string false "Age group"
// @Success 200 {object} models.ApiResponse{data=[]models.HeatmapCell}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/analytics/heatmap [get]
func GetHeatmap(c *gin.Context) {
	log.Printf("[admin.analytics-heatmap] start")

	filters := models.FiltersFromQuery(c)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Raw SQL over the pgx pool: the district join plus grouped aggregation
	// is easier to tune here than through the ORM.
	var where []string
	var args []any
	addArg := func(cond string, value any) {
		args = append(args, value)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}

	if filters.State != "" {
		addArg("m.state_code = $%d", filters.State)
	}
	if filters.District != "" {
		addArg("m.district_code = $%d", filters.District)
	}
	if filters.Year != 0 {
		addArg("m.year = $%d", filters.Year)
	}
	if filters.Month != 0 {
		addArg("m.month = $%d", filters.Month)
	}
	if filters.MetricType != "" {
		addArg("m.metric_type = $%d", filters.MetricType)
	}
	if filters.AgeGroup != "" {
		addArg("m.age_group = $%d", filters.AgeGroup)
	}

	whereClause := ""
	if len(where) > 0 {
		whereClause = "WHERE " + strings.Join(where, " AND ")
	}

	query := fmt.Sprintf(`
		SELECT
			d.code AS district_code,
			d.name AS district_name,
			d.state_code,
			d.latitude,
			d.longitude,
			COALESCE(SUM(m.value), 0)::bigint AS value
		FROM enrolment_metrics m
		JOIN districts d ON d.code = m.district_code
		%s
		GROUP BY d.code, d.name, d.state_code, d.latitude, d.longitude
		ORDER BY value DESC
	`, whereClause)

	rows, err := config.AisDB.Query(ctx, query, args...)
	if err != nil {
		log.Printf("[admin.analytics-heatmap] ERROR query err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch heatmap data"))
		return
	}
	defer rows.Close()

	cells := make([]models.HeatmapCell, 0)
	var total int64
	for rows.Next() {
		var cell models.HeatmapCell
		if err := rows.Scan(
			&cell.DistrictCode,
			&cell.DistrictName,
			&cell.StateCode,
			&cell.Latitude,
			&cell.Longitude,
			&cell.Value,
		); err != nil {
			log.Printf("[admin.analytics-heatmap] ERROR scan err=%v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch heatmap data"))
			return
		}
		total += cell.Value
		cells = append(cells, cell)
	}
	if err := rows.Err(); err != nil {
		log.Printf("[admin.analytics-heatmap] ERROR rows err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch heatmap data"))
		return
	}

	// ================================
	// Calculate percentages
	// ================================
	for i := range cells {
		if total > 0 {
			cells[i].Percentage = (float64(cells[i].Value) / float64(total)) * 100
		}
	}

	log.Printf("[admin.analytics-heatmap] respond 200 districts=%d total=%d", len(cells), total)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Heatmap data retrieved successfully", cells))
}
