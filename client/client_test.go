package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envelope(data any) []byte {
	b, _ := json.Marshal(map[string]any{"message": "ok", "data": data})
	return b
}

func TestFetchCatalog(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/metadata/filters", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write(envelope(map[string]any{
			"regions":     []map[string]string{{"code": "UP", "name": "Uttar Pradesh"}},
			"subRegions":  []map[string]string{{"code": "UP-D1", "name": "Lucknow", "parentRegionCode": "UP"}},
			"years":       []int{2024, 2025},
			"months":      []map[string]any{{"ordinal": 1, "label": "January"}},
			"metricTypes": []string{"enrolment"},
			"ageGroups":   []string{"0-5"},
			"indexTypes":  []string{"saturation"},
		}))
	}))
	defer srv.Close()

	c := New(srv.URL)
	catalog, err := c.FetchCatalog(context.Background())
	require.NoError(t, err)

	require.Len(t, catalog.Regions, 1)
	assert.Equal(t, "UP", catalog.Regions[0].Code)
	require.Len(t, catalog.SubRegions, 1)
	assert.Equal(t, "UP", catalog.SubRegions[0].ParentRegionCode)
	assert.Equal(t, []int{2024, 2025}, catalog.Years)
}

func TestFetchCatalogServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{"message": "Failed to fetch filter metadata", "error": true})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.FetchCatalog(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to fetch filter metadata")
}

func TestSearchEscapesQuery(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/search", r.URL.Path)
		gotQuery = r.URL.Query().Get("q")
		w.Write(envelope(SearchResponse{
			Query:      gotQuery,
			Results:    []SearchResult{{ID: "UP", Type: "region", Title: "Uttar Pradesh"}},
			TotalCount: 1,
		}))
	}))
	defer srv.Close()

	c := New(srv.URL)
	res, err := c.Search(context.Background(), "uttar pradesh")
	require.NoError(t, err)
	assert.Equal(t, "uttar pradesh", gotQuery)
	assert.Equal(t, 1, res.TotalCount)
	require.Len(t, res.Results, 1)
	assert.Equal(t, "region", res.Results[0].Type)
}

func TestKPIOverviewAppendsFilterQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/admin/analytics/overview", r.URL.Path)
		require.Equal(t, "UP", r.URL.Query().Get("state"))
		require.Equal(t, "2025", r.URL.Query().Get("year"))
		w.Write(envelope(KPIOverview{TotalEnrolments: 42, SaturationPercent: 93.5}))
	}))
	defer srv.Close()

	c := New(srv.URL)
	kpi, err := c.KPIOverview(context.Background(), "?state=UP&year=2025")
	require.NoError(t, err)
	assert.Equal(t, int64(42), kpi.TotalEnrolments)
	assert.InDelta(t, 93.5, kpi.SaturationPercent, 0.001)
}
