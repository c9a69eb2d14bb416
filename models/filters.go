// models/filters.go
package models

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// FilterCatalog is the universe of legal filter values served by the
// metadata endpoint. Shape matches what the dashboard's filter manager
// consumes.
type FilterCatalog struct {
	Regions     []RegionData    `json:"regions"`
	SubRegions  []SubRegionData `json:"subRegions"`
	Years       []int           `json:"years"`
	Months      []MonthData     `json:"months"`
	MetricTypes []string        `json:"metricTypes"`
	AgeGroups   []string        `json:"ageGroups"`
	IndexTypes  []string        `json:"indexTypes"`
}

// RegionData is a state entry in the catalog.
type RegionData struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// SubRegionData is a district entry in the catalog.
type SubRegionData struct {
	Code             string `json:"code"`
	Name             string `json:"name"`
	ParentRegionCode string `json:"parentRegionCode"`
}

// MonthData pairs the 1-12 ordinal with its display label.
type MonthData struct {
	Ordinal int    `json:"ordinal"`
	Label   string `json:"label"`
}

// Closed enumerations served in the catalog and accepted as filter values.
var (
	MetricTypes = []string{"enrolment", "demographic_update", "biometric_update", "authentication"}
	AgeGroups   = []string{"0-5", "5-18", "18-60", "60+"}
	IndexTypes  = []string{"saturation", "update_intensity", "authentication_activity"}
)

// MonthLabels in ordinal order.
var MonthLabels = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// AppliedFilters is the filter set a dashboard request carries as query
// parameters. Zero values mean "no constraint".
type AppliedFilters struct {
	State      string
	District   string
	Year       int
	Month      int
	MetricType string
	AgeGroup   string
	IndexType  string
}

// FiltersFromQuery parses the wire filter parameters from a request. Unknown
// or malformed numeric values are treated as unset rather than rejected.
func FiltersFromQuery(c *gin.Context) AppliedFilters {
	f := AppliedFilters{
		State:      c.Query("state"),
		District:   c.Query("district"),
		MetricType: c.Query("metricType"),
		AgeGroup:   c.Query("ageGroup"),
		IndexType:  c.Query("indexType"),
	}

	if year, err := strconv.Atoi(c.Query("year")); err == nil && year > 0 {
		f.Year = year
	}
	if month, err := strconv.Atoi(c.Query("month")); err == nil && month >= 1 && month <= 12 {
		f.Month = month
	}

	return f
}

// Scope narrows a metrics query to the applied filters. IndexType is
// deliberately excluded; only index_scores carries that column (see
// IndexScope).
func (f AppliedFilters) Scope(db *gorm.DB) *gorm.DB {
	if f.State != "" {
		db = db.Where("state_code = ?", f.State)
	}
	if f.District != "" {
		db = db.Where("district_code = ?", f.District)
	}
	if f.Year != 0 {
		db = db.Where("year = ?", f.Year)
	}
	if f.Month != 0 {
		db = db.Where("month = ?", f.Month)
	}
	if f.MetricType != "" {
		db = db.Where("metric_type = ?", f.MetricType)
	}
	if f.AgeGroup != "" {
		db = db.Where("age_group = ?", f.AgeGroup)
	}
	return db
}

// IndexScope narrows an index_scores query: geographic and time filters plus
// the index type. Columns are qualified so the scope survives joins against
// districts.
func (f AppliedFilters) IndexScope(db *gorm.DB) *gorm.DB {
	if f.State != "" {
		db = db.Where("index_scores.state_code = ?", f.State)
	}
	if f.District != "" {
		db = db.Where("index_scores.district_code = ?", f.District)
	}
	if f.Year != 0 {
		db = db.Where("index_scores.year = ?", f.Year)
	}
	if f.Month != 0 {
		db = db.Where("index_scores.month = ?", f.Month)
	}
	if f.IndexType != "" {
		db = db.Where("index_scores.index_type = ?", f.IndexType)
	}
	return db
}
