package filterstate

import "context"

// Region is a top-level geographic unit (a state in the Aadhaar domain).
type Region struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// SubRegion is a district belonging to exactly one region.
type SubRegion struct {
	Code             string `json:"code"`
	Name             string `json:"name"`
	ParentRegionCode string `json:"parentRegionCode"`
}

// Month pairs the 1-12 ordinal with its display label.
type Month struct {
	Ordinal int    `json:"ordinal"`
	Label   string `json:"label"`
}

// Catalog is the universe of legal filter values, fetched once from the
// metadata endpoint. Orphaned sub-regions (parent code not present in
// Regions) are tolerated; they simply never show up in a narrowed list.
type Catalog struct {
	Regions     []Region    `json:"regions"`
	SubRegions  []SubRegion `json:"subRegions"`
	Years       []int       `json:"years"`
	Months      []Month     `json:"months"`
	MetricTypes []string    `json:"metricTypes"`
	AgeGroups   []string    `json:"ageGroups"`
	IndexTypes  []string    `json:"indexTypes"`
}

// CatalogSource fetches the filter catalog from wherever it lives, usually
// the backend metadata endpoint. See client.Client for the HTTP version.
type CatalogSource interface {
	FetchCatalog(ctx context.Context) (*Catalog, error)
}

// Fixed enumerations. These mirror the backend's closed sets and double as
// the degraded-mode values when the metadata endpoint is unreachable.
var (
	MetricTypes = []string{"enrolment", "demographic_update", "biometric_update", "authentication"}
	AgeGroups   = []string{"0-5", "5-18", "18-60", "60+"}
	IndexTypes  = []string{"saturation", "update_intensity", "authentication_activity"}
)

var monthLabels = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// FallbackCatalog returns the hard-coded catalog substituted when the
// metadata endpoint fails: a fixed year range, twelve months and the closed
// enumerations, with no geographic entries. Dependent UI stays usable.
func FallbackCatalog() *Catalog {
	years := make([]int, 0, 7)
	for y := 2019; y <= 2025; y++ {
		years = append(years, y)
	}

	months := make([]Month, 0, 12)
	for i, label := range monthLabels {
		months = append(months, Month{Ordinal: i + 1, Label: label})
	}

	return &Catalog{
		Regions:     []Region{},
		SubRegions:  []SubRegion{},
		Years:       years,
		Months:      months,
		MetricTypes: append([]string(nil), MetricTypes...),
		AgeGroups:   append([]string(nil), AgeGroups...),
		IndexTypes:  append([]string(nil), IndexTypes...),
	}
}
