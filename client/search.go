package client

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/rajstories/Aadhaar-Intelligence-System/debounce"
)

// MinQueryLength is the shortest query that triggers a backend search.
// Anything shorter clears the current results instead.
const MinQueryLength = 2

// Searcher is the collaborator the controller queries once input settles.
// *Client satisfies it.
type Searcher interface {
	Search(ctx context.Context, query string) (*SearchResponse, error)
}

// SearchFallback supplies results when the backend call fails. Demo builds
// plug in FixtureFallback; production builds leave it nil and show empty
// results with the degraded flag set.
type SearchFallback func(query string) []SearchResult

// SearchController feeds raw keystrokes through a debouncer and issues at
// most one backend search per settled value. One instance per search box;
// Close it when the owning view goes away.
type SearchController struct {
	mu        sync.Mutex
	searcher  Searcher
	fallback  SearchFallback
	onResults func(SearchResponse)
	debouncer *debounce.Debouncer[string]
	timeout   time.Duration
	degraded  bool
	closed    bool
}

// SearchControllerConfig wires a SearchController.
type SearchControllerConfig struct {
	Searcher  Searcher
	Fallback  SearchFallback
	OnResults func(SearchResponse)
	Delay     time.Duration // zero means debounce.DefaultDelay
	Timeout   time.Duration // per-search budget, zero means 10s
}

// NewSearchController creates a controller delivering settled-query results
// to cfg.OnResults.
func NewSearchController(cfg SearchControllerConfig) *SearchController {
	if cfg.Delay == 0 {
		cfg.Delay = debounce.DefaultDelay
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}

	sc := &SearchController{
		searcher:  cfg.Searcher,
		fallback:  cfg.Fallback,
		onResults: cfg.OnResults,
		timeout:   cfg.Timeout,
	}
	sc.debouncer = debounce.New(cfg.Delay, sc.run)
	return sc
}

// Input records a keystroke's worth of query text. Expensive work happens
// only after the input pauses for the configured delay.
func (sc *SearchController) Input(query string) {
	sc.debouncer.Set(query)
}

// Degraded reports whether the most recent search was served from the
// fallback fixture rather than the backend.
func (sc *SearchController) Degraded() bool {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.degraded
}

// Close cancels any pending debounced search. No results are delivered
// after Close returns.
func (sc *SearchController) Close() {
	sc.mu.Lock()
	sc.closed = true
	sc.mu.Unlock()
	sc.debouncer.Close()
}

func (sc *SearchController) run(query string) {
	query = strings.TrimSpace(query)

	if utf8.RuneCountInString(query) < MinQueryLength {
		sc.deliver(SearchResponse{Query: query, Results: []SearchResult{}}, false)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), sc.timeout)
	defer cancel()

	res, err := sc.searcher.Search(ctx, query)
	if err != nil {
		log.Printf("[search] backend search failed for %q: %v", query, err)
		results := []SearchResult{}
		if sc.fallback != nil {
			results = sc.fallback(query)
		}
		sc.deliver(SearchResponse{
			Query:      query,
			Results:    results,
			TotalCount: len(results),
		}, true)
		return
	}

	sc.deliver(*res, false)
}

func (sc *SearchController) deliver(res SearchResponse, degraded bool) {
	sc.mu.Lock()
	if sc.closed {
		sc.mu.Unlock()
		return
	}
	sc.degraded = degraded
	fn := sc.onResults
	sc.mu.Unlock()

	if fn != nil {
		fn(res)
	}
}
