package client

import "strings"

// demoResults is the built-in result set used when the backend is
// unreachable. Small on purpose; just enough for the dashboard to stay
// navigable offline.
var demoResults = []SearchResult{
	{ID: "UP", Type: "region", Title: "Uttar Pradesh", Subtitle: "State"},
	{ID: "BR", Type: "region", Title: "Bihar", Subtitle: "State"},
	{ID: "MH", Type: "region", Title: "Maharashtra", Subtitle: "State"},
	{ID: "UP-D1", Type: "subRegion", Title: "Lucknow", Subtitle: "District, Uttar Pradesh"},
	{ID: "UP-D2", Type: "subRegion", Title: "Varanasi", Subtitle: "District, Uttar Pradesh"},
	{ID: "BR-D1", Type: "subRegion", Title: "Patna", Subtitle: "District, Bihar"},
	{ID: "MH-D1", Type: "subRegion", Title: "Mumbai", Subtitle: "District, Maharashtra"},
	{
		ID:       "alert-demo-1",
		Type:     "alert",
		Title:    "Enrolment backlog rising",
		Subtitle: "Varanasi, Uttar Pradesh",
		Status:   "active",
	},
	{
		ID:       "alert-demo-2",
		Type:     "alert",
		Title:    "Authentication failures above threshold",
		Subtitle: "Patna, Bihar",
		Status:   "acknowledged",
	},
}

// FixtureFallback filters the demo result set by case-insensitive substring
// match on title and subtitle. Plug into SearchControllerConfig.Fallback for
// demo builds.
func FixtureFallback(query string) []SearchResult {
	q := strings.ToLower(query)
	matched := make([]SearchResult, 0)
	for _, r := range demoResults {
		if strings.Contains(strings.ToLower(r.Title), q) ||
			strings.Contains(strings.ToLower(r.Subtitle), q) {
			matched = append(matched, r)
		}
	}
	return matched
}
