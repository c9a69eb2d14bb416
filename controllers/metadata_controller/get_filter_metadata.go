package metadata_controller

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	catalog_cache "github.com/rajstories/Aadhaar-Intelligence-System/cache"
	"github.com/rajstories/Aadhaar-Intelligence-System/config"
	"github.com/rajstories/Aadhaar-Intelligence-System/models"
	"gorm.io/gorm"
)

// GetFilterMetadata godoc
// @Summary Get all filter metadata
// @Description Returns states, districts, available years and the fixed enumerations the dashboard filter bar offers
// @Tags Metadata
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.FilterCatalog}
// @Failure 500 {object} models.ApiResponse
// @Router /metadata/filters [get]
func GetFilterMetadata(c *gin.Context) {
	if cached, ok := catalog_cache.Get(); ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched", cached))
		return
	}

	db := config.AisGorm

	// Run the geography and year queries concurrently
	var wg sync.WaitGroup
	var mu sync.Mutex

	catalog := &models.FilterCatalog{
		MetricTypes: models.MetricTypes,
		AgeGroups:   models.AgeGroups,
		IndexTypes:  models.IndexTypes,
	}
	var errs []error

	wg.Add(1)
	go func() {
		defer wg.Done()
		regions, err := getRegions(db)
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			errs = append(errs, err)
		} else {
			catalog.Regions = regions
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		subRegions, err := getSubRegions(db)
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			errs = append(errs, err)
		} else {
			catalog.SubRegions = subRegions
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		years, err := getYears(db)
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			errs = append(errs, err)
		} else {
			catalog.Years = years
		}
	}()

	wg.Wait()

	if len(errs) > 0 {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch filter metadata"))
		return
	}

	catalog.Months = make([]models.MonthData, 0, 12)
	for i, label := range models.MonthLabels {
		catalog.Months = append(catalog.Months, models.MonthData{Ordinal: i + 1, Label: label})
	}

	catalog_cache.Set(catalog)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched", catalog))
}

func getRegions(db *gorm.DB) ([]models.RegionData, error) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	regions := make([]models.RegionData, 0)
	err := db.WithContext(ctx).
		Model(&models.State{}).
		Select("code, name").
		Order("name ASC").
		Scan(&regions).Error
	if err != nil {
		return nil, err
	}
	return regions, nil
}

func getSubRegions(db *gorm.DB) ([]models.SubRegionData, error) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	subRegions := make([]models.SubRegionData, 0)
	err := db.WithContext(ctx).
		Model(&models.District{}).
		Select("code, name, state_code AS parent_region_code").
		Order("name ASC").
		Scan(&subRegions).Error
	if err != nil {
		return nil, err
	}
	return subRegions, nil
}

func getYears(db *gorm.DB) ([]int, error) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	years := make([]int, 0)
	err := db.WithContext(ctx).
		Model(&models.EnrolmentMetric{}).
		Distinct("year").
		Order("year ASC").
		Pluck("year", &years).Error
	if err != nil {
		return nil, err
	}
	return years, nil
}
