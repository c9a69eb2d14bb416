package report_controller

import (
	"testing"

	"github.com/rajstories/Aadhaar-Intelligence-System/models"
	"github.com/stretchr/testify/assert"
)

func TestFiltersFromParameters(t *testing.T) {
	params := []byte(`{"state":"UP","district":"UP-LKO","year":"2024","month":"6","metricType":"enrolment","ageGroup":"60+","indexType":"saturation"}`)

	f := filtersFromParameters(params)

	assert.Equal(t, "UP", f.State)
	assert.Equal(t, "UP-LKO", f.District)
	assert.Equal(t, 2024, f.Year)
	assert.Equal(t, 6, f.Month)
	assert.Equal(t, "enrolment", f.MetricType)
	assert.Equal(t, "60+", f.AgeGroup)
	assert.Equal(t, "saturation", f.IndexType)
}

func TestFiltersFromParametersMalformed(t *testing.T) {
	assert.Equal(t, models.AppliedFilters{}, filtersFromParameters([]byte(`not json`)))
	assert.Equal(t, models.AppliedFilters{}, filtersFromParameters([]byte(`{}`)))

	f := filtersFromParameters([]byte(`{"year":"abc","month":"13"}`))
	assert.Zero(t, f.Year)
	assert.Zero(t, f.Month)
}

func TestFilterSummaryLines(t *testing.T) {
	lines := filterSummaryLines(models.AppliedFilters{
		State: "UP",
		Year:  2024,
		Month: 6,
	})

	assert.Equal(t, []string{"State: UP", "Year: 2024", "Month: June"}, lines)
}

func TestFilterSummaryLinesEmpty(t *testing.T) {
	assert.Empty(t, filterSummaryLines(models.AppliedFilters{}))
}
