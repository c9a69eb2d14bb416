package search_controller

import (
	"log"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/rajstories/Aadhaar-Intelligence-System/config"
	"github.com/rajstories/Aadhaar-Intelligence-System/models"
)

// Queries shorter than this are rejected; the dashboard clears its result
// list instead of calling us.
const minQueryLength = 2

const resultLimitPerKind = 10

// GlobalSearch godoc
// @Summary Search states, districts and alerts
// @Description Case-insensitive search across geography and open alerts for the dashboard search box
// @Tags Search
// @Produce json
// @Param q query string true "Search text (min 2 characters)"
// @Success 200 {object} models.ApiResponse{data=models.SearchResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /search [get]
func GlobalSearch(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if utf8.RuneCountInString(query) < minQueryLength {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Query must be at least 2 characters"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	pattern := "%" + query + "%"
	results := make([]models.SearchResult, 0)

	// States
	var states []models.State
	if err := config.AisGorm.WithContext(ctx).
		Where("name ILIKE ? OR code ILIKE ?", pattern, pattern).
		Order("name ASC").
		Limit(resultLimitPerKind).
		Find(&states).Error; err != nil {
		log.Printf("[search] ERROR states query err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Search failed"))
		return
	}
	for _, s := range states {
		results = append(results, models.SearchResult{
			ID:       s.Code,
			Type:     "region",
			Title:    s.Name,
			Subtitle: "State",
		})
	}

	// Districts, with parent state name for the subtitle
	var districts []struct {
		models.District
		StateName string
	}
	if err := config.AisGorm.WithContext(ctx).
		Model(&models.District{}).
		Select("districts.*, states.name AS state_name").
		Joins("LEFT JOIN states ON states.code = districts.state_code").
		Where("districts.name ILIKE ? OR districts.code ILIKE ?", pattern, pattern).
		Order("districts.name ASC").
		Limit(resultLimitPerKind).
		Scan(&districts).Error; err != nil {
		log.Printf("[search] ERROR districts query err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Search failed"))
		return
	}
	for _, d := range districts {
		results = append(results, models.SearchResult{
			ID:       d.Code,
			Type:     "subRegion",
			Title:    d.Name,
			Subtitle: "District, " + d.StateName,
			Metadata: map[string]string{"stateCode": d.StateCode},
		})
	}

	// Alerts
	var alerts []models.Alert
	if err := config.AisGorm.WithContext(ctx).
		Where("title ILIKE ? OR description ILIKE ?", pattern, pattern).
		Order("created_at DESC").
		Limit(resultLimitPerKind).
		Find(&alerts).Error; err != nil {
		log.Printf("[search] ERROR alerts query err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Search failed"))
		return
	}
	for _, a := range alerts {
		results = append(results, models.SearchResult{
			ID:       a.ID.String(),
			Type:     "alert",
			Title:    a.Title,
			Subtitle: a.DistrictCode,
			Status:   a.Status,
			Metadata: map[string]string{"severity": a.Severity},
		})
	}

	log.Printf("[search] respond 200 query=%q results=%d", query, len(results))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Search results", models.SearchResponse{
		Query:      query,
		Results:    results,
		TotalCount: len(results),
	}))
}
