package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/rajstories/Aadhaar-Intelligence-System/client"
	"github.com/rajstories/Aadhaar-Intelligence-System/debounce"
	"github.com/rajstories/Aadhaar-Intelligence-System/filterstate"
)

// main fetches a KPI snapshot for a filter selection from a running server.
// Usage: go run cmd/snapshot/main.go -server http://localhost:8081 -state UP -year 2024
// This is a standalone CLI tool, not part of the main application
func main() {
	var (
		serverURL  = flag.String("server", "http://localhost:8081", "Backend base URL")
		state      = flag.String("state", "", "State code filter")
		district   = flag.String("district", "", "District code filter")
		year       = flag.Int("year", 0, "Year filter")
		month      = flag.Int("month", 0, "Month filter (1-12)")
		metricType = flag.String("metric", "", "Metric type filter")
		ageGroup   = flag.String("age", "", "Age group filter")
		indexType  = flag.String("index", "", "Index type filter")
		token      = flag.String("token", os.Getenv("AIS_ADMIN_TOKEN"), "Admin JWT for the analytics endpoints")
		search     = flag.String("search", "", "Run a debounced search instead of a KPI snapshot")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	api := client.New(*serverURL)
	if *token != "" {
		api.SetToken(*token)
	}

	if *search != "" {
		runSearch(api, *search)
		return
	}

	// Catalog first: the manager falls back to the built-in catalog when
	// the server is unreachable, so the snapshot still renders something.
	manager := filterstate.NewManager(api)
	if _, err := manager.LoadCatalog(ctx); err != nil {
		log.Printf("catalog load failed entirely: %v", err)
		os.Exit(1)
	}
	if manager.Degraded() {
		log.Printf("⚠️  using fallback catalog, server catalog unavailable")
	}

	manager.SetAll(filterstate.Filters{
		Region:     *state,
		SubRegion:  *district,
		Year:       *year,
		Month:      *month,
		MetricType: *metricType,
		AgeGroup:   *ageGroup,
		IndexType:  *indexType,
	})

	query := manager.QueryString()
	fmt.Printf("Filter query: %q\n", query)

	if subs := manager.SubRegions(); *state != "" {
		fmt.Printf("Districts available for %s: %d\n", *state, len(subs))
	}

	overview, err := api.KPIOverview(ctx, query)
	if err != nil {
		log.Printf("overview fetch failed: %v", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("KPI Snapshot")
	fmt.Println("────────────────────────────────────────")
	fmt.Printf("Enrolments:       %d (%+.1f%%)\n", overview.TotalEnrolments, overview.EnrolmentGrowthPercent)
	fmt.Printf("Updates:          %d (%+.1f%%)\n", overview.TotalUpdates, overview.UpdateGrowthPercent)
	fmt.Printf("Authentications:  %d (%+.1f%%)\n", overview.TotalAuthentications, overview.AuthGrowthPercent)
	fmt.Printf("Saturation:       %.1f%%\n", overview.SaturationPercent)
	fmt.Printf("Active alerts:    %d\n", overview.ActiveAlerts)
}

// runSearch feeds the query through the debounced search controller the way
// the dashboard search box does, falling back to fixture data offline.
func runSearch(api *client.Client, query string) {
	done := make(chan struct{})

	controller := client.NewSearchController(client.SearchControllerConfig{
		Searcher: api,
		Fallback: client.FixtureFallback,
		Delay:    debounce.DefaultDelay,
		OnResults: func(res client.SearchResponse) {
			fmt.Printf("Results for %q (%d):\n", res.Query, res.TotalCount)
			for _, r := range res.Results {
				fmt.Printf("  [%s] %s\n", r.Type, r.Title)
			}
			close(done)
		},
	})
	defer controller.Close()

	controller.Input(query)

	select {
	case <-done:
		if controller.Degraded() {
			log.Printf("⚠️  served from fixture data, server unavailable")
		}
	case <-time.After(10 * time.Second):
		log.Printf("search timed out")
		os.Exit(1)
	}
}
