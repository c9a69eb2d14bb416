package models

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func filtersForQuery(t *testing.T, rawQuery string) AppliedFilters {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return FiltersFromQuery(c)
}

func TestFiltersFromQueryAllParameters(t *testing.T) {
	f := filtersForQuery(t, "state=UP&district=UP-LKO&year=2024&month=6&metricType=enrolment&ageGroup=0-5&indexType=saturation")

	assert.Equal(t, "UP", f.State)
	assert.Equal(t, "UP-LKO", f.District)
	assert.Equal(t, 2024, f.Year)
	assert.Equal(t, 6, f.Month)
	assert.Equal(t, "enrolment", f.MetricType)
	assert.Equal(t, "0-5", f.AgeGroup)
	assert.Equal(t, "saturation", f.IndexType)
}

func TestFiltersFromQueryEmpty(t *testing.T) {
	f := filtersForQuery(t, "")
	assert.Equal(t, AppliedFilters{}, f)
}

func TestFiltersFromQueryMalformedNumbersTreatedAsUnset(t *testing.T) {
	f := filtersForQuery(t, "year=abc&month=xyz")
	assert.Zero(t, f.Year)
	assert.Zero(t, f.Month)
}

func TestFiltersFromQueryMonthOutOfRange(t *testing.T) {
	assert.Zero(t, filtersForQuery(t, "month=0").Month)
	assert.Zero(t, filtersForQuery(t, "month=13").Month)
	assert.Equal(t, 12, filtersForQuery(t, "month=12").Month)
	assert.Equal(t, 1, filtersForQuery(t, "month=1").Month)
}

func TestFiltersFromQueryNegativeYearIgnored(t *testing.T) {
	assert.Zero(t, filtersForQuery(t, "year=-2024").Year)
}
