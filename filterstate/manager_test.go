package filterstate

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	catalog *Catalog
	err     error
	calls   int
}

func (s *stubSource) FetchCatalog(ctx context.Context) (*Catalog, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.catalog, nil
}

func testCatalog() *Catalog {
	c := FallbackCatalog()
	c.Regions = []Region{
		{Code: "UP", Name: "Uttar Pradesh"},
		{Code: "BR", Name: "Bihar"},
	}
	c.SubRegions = []SubRegion{
		{Code: "UP-D1", Name: "Lucknow", ParentRegionCode: "UP"},
		{Code: "UP-D2", Name: "Varanasi", ParentRegionCode: "UP"},
		{Code: "BR-D1", Name: "Patna", ParentRegionCode: "BR"},
		{Code: "XX-D1", Name: "Orphan", ParentRegionCode: "XX"},
	}
	return c
}

func TestRegionChangeClearsSubRegion(t *testing.T) {
	m := NewManager(&stubSource{catalog: testCatalog()})

	m.SetRegion("UP")
	m.SetSubRegion("UP-D1")
	m.SetRegion("BR")

	f := m.Filters()
	assert.Equal(t, "BR", f.Region)
	assert.Empty(t, f.SubRegion)
}

func TestRegionUnsetClearsSubRegion(t *testing.T) {
	m := NewManager(&stubSource{catalog: testCatalog()})

	m.SetRegion("UP")
	m.SetSubRegion("UP-D2")
	m.SetRegion("")

	f := m.Filters()
	assert.Empty(t, f.Region)
	assert.Empty(t, f.SubRegion)
}

func TestSameRegionKeepsSubRegion(t *testing.T) {
	m := NewManager(&stubSource{catalog: testCatalog()})

	m.SetRegion("UP")
	m.SetSubRegion("UP-D1")
	m.SetRegion("UP")

	assert.Equal(t, "UP-D1", m.Filters().SubRegion)
}

func TestOtherSettersTouchOneFieldOnly(t *testing.T) {
	m := NewManager(&stubSource{catalog: testCatalog()})

	m.SetRegion("UP")
	m.SetSubRegion("UP-D1")
	m.SetYear(2025)
	m.SetMonth(3)
	m.SetMetricType("enrolment")
	m.SetAgeGroup("0-5")
	m.SetIndexType("saturation")

	assert.Equal(t, Filters{
		Region:     "UP",
		SubRegion:  "UP-D1",
		Year:       2025,
		Month:      3,
		MetricType: "enrolment",
		AgeGroup:   "0-5",
		IndexType:  "saturation",
	}, m.Filters())
}

func TestSetAllIsVerbatim(t *testing.T) {
	m := NewManager(&stubSource{catalog: testCatalog()})
	m.SetRegion("UP")

	// SetAll applies no cross-field clearing, even with a mismatched pair.
	m.SetAll(Filters{Region: "BR", SubRegion: "UP-D1"})

	f := m.Filters()
	assert.Equal(t, "BR", f.Region)
	assert.Equal(t, "UP-D1", f.SubRegion)
}

func TestClear(t *testing.T) {
	m := NewManager(&stubSource{catalog: testCatalog()})
	m.SetRegion("UP")
	m.SetYear(2024)

	m.Clear()

	assert.True(t, m.Filters().IsZero())
}

func TestQueryStringEmpty(t *testing.T) {
	assert.Equal(t, "", Filters{}.QueryString())
}

func TestQueryStringWireNamesAndOrder(t *testing.T) {
	f := Filters{Region: "UP", Year: 2025}
	assert.Equal(t, "?state=UP&year=2025", f.QueryString())

	full := Filters{
		Region:     "UP",
		SubRegion:  "UP-D1",
		Year:       2025,
		Month:      7,
		MetricType: "enrolment",
		AgeGroup:   "0-5",
		IndexType:  "saturation",
	}
	assert.Equal(t,
		"?state=UP&district=UP-D1&year=2025&month=7&metricType=enrolment&ageGroup=0-5&indexType=saturation",
		full.QueryString())
}

func TestQueryStringDeterministic(t *testing.T) {
	m := NewManager(&stubSource{catalog: testCatalog()})

	// Set fields in an order that differs from the serialized order.
	m.SetIndexType("saturation")
	m.SetYear(2023)
	m.SetRegion("BR")

	first := m.QueryString()
	second := m.QueryString()
	assert.Equal(t, first, second)
	assert.Equal(t, "?state=BR&year=2023&indexType=saturation", first)
}

func TestQueryStringEscapesValues(t *testing.T) {
	f := Filters{AgeGroup: "60+"}
	assert.Equal(t, "?ageGroup=60%2B", f.QueryString())
}

func TestSubRegionsNarrowedByRegion(t *testing.T) {
	src := &stubSource{catalog: testCatalog()}
	m := NewManager(src)
	_, err := m.LoadCatalog(context.Background())
	require.NoError(t, err)

	// No region selected: the full list.
	assert.Len(t, m.SubRegions(), 4)

	m.SetRegion("UP")
	narrowed := m.SubRegions()
	require.Len(t, narrowed, 2)
	for _, sr := range narrowed {
		assert.Equal(t, "UP", sr.ParentRegionCode)
	}

	// Orphaned sub-regions resolve to nothing.
	m.SetRegion("XX")
	assert.Len(t, m.SubRegions(), 1)
	m.SetRegion("ZZ")
	assert.Empty(t, m.SubRegions())
}

func TestMutationBeforeCatalogLoad(t *testing.T) {
	m := NewManager(&stubSource{catalog: testCatalog()})

	// No ordering is guaranteed between load and first mutation.
	m.SetRegion("UP")
	assert.Nil(t, m.SubRegions())
	assert.Equal(t, NotLoaded, m.State())
	assert.Equal(t, "?state=UP", m.QueryString())
}

func TestLoadCatalogSuccess(t *testing.T) {
	src := &stubSource{catalog: testCatalog()}
	m := NewManager(src)

	c, err := m.LoadCatalog(context.Background())
	require.NoError(t, err)
	assert.Len(t, c.Regions, 2)
	assert.Equal(t, Loaded, m.State())
	assert.False(t, m.Loading())
	assert.False(t, m.Degraded())
}

func TestLoadCatalogFallbackOnFailure(t *testing.T) {
	src := &stubSource{err: errors.New("metadata endpoint unreachable")}
	m := NewManager(src)

	c, err := m.LoadCatalog(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, c.Years)
	assert.Len(t, c.Months, 12)
	assert.Equal(t, MetricTypes, c.MetricTypes)
	assert.Equal(t, AgeGroups, c.AgeGroups)
	assert.Equal(t, IndexTypes, c.IndexTypes)
	assert.Empty(t, c.Regions)
	assert.Equal(t, Loaded, m.State())
	assert.False(t, m.Loading())
	assert.True(t, m.Degraded())
}

func TestReloadRecoversFromDegraded(t *testing.T) {
	src := &stubSource{err: errors.New("boom")}
	m := NewManager(src)

	_, err := m.LoadCatalog(context.Background())
	require.NoError(t, err)
	require.True(t, m.Degraded())

	src.err = nil
	src.catalog = testCatalog()
	c, err := m.LoadCatalog(context.Background())
	require.NoError(t, err)
	assert.False(t, m.Degraded())
	assert.Len(t, c.Regions, 2)
	assert.Equal(t, 2, src.calls)
}

func TestLoadCatalogNoFallbackPropagatesError(t *testing.T) {
	src := &stubSource{err: errors.New("boom")}
	m := NewManager(src, WithFallback(nil))

	_, err := m.LoadCatalog(context.Background())
	assert.Error(t, err)
	assert.Equal(t, NotLoaded, m.State())
	assert.Nil(t, m.Catalog())
}

func TestVersionAndSubscribe(t *testing.T) {
	m := NewManager(&stubSource{catalog: testCatalog()})

	var seen []Filters
	m.Subscribe(func(f Filters) { seen = append(seen, f) })

	v0 := m.Version()
	m.SetRegion("UP")
	m.SetYear(2025)
	m.Clear()

	assert.Equal(t, v0+3, m.Version())
	require.Len(t, seen, 3)
	assert.Equal(t, "UP", seen[0].Region)
	assert.Equal(t, 2025, seen[1].Year)
	assert.True(t, seen[2].IsZero())
}
