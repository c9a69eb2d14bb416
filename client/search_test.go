package client

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSearcher struct {
	mu      sync.Mutex
	queries []string
	err     error
}

func (s *stubSearcher) Search(ctx context.Context, query string) (*SearchResponse, error) {
	s.mu.Lock()
	s.queries = append(s.queries, query)
	s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return &SearchResponse{
		Query:      query,
		Results:    []SearchResult{{ID: "UP", Type: "region", Title: "Uttar Pradesh"}},
		TotalCount: 1,
	}, nil
}

func (s *stubSearcher) seen() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.queries...)
}

type resultSink struct {
	mu        sync.Mutex
	responses []SearchResponse
}

func (r *resultSink) accept(res SearchResponse) {
	r.mu.Lock()
	r.responses = append(r.responses, res)
	r.mu.Unlock()
}

func (r *resultSink) all() []SearchResponse {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]SearchResponse(nil), r.responses...)
}

func TestBurstIssuesSingleSearchWithLastValue(t *testing.T) {
	searcher := &stubSearcher{}
	sink := &resultSink{}
	sc := NewSearchController(SearchControllerConfig{
		Searcher:  searcher,
		OnResults: sink.accept,
		Delay:     40 * time.Millisecond,
	})
	defer sc.Close()

	sc.Input("l")
	time.Sleep(10 * time.Millisecond)
	sc.Input("lu")
	time.Sleep(10 * time.Millisecond)
	sc.Input("luck")

	time.Sleep(120 * time.Millisecond)

	assert.Equal(t, []string{"luck"}, searcher.seen())
	responses := sink.all()
	require.Len(t, responses, 1)
	assert.Equal(t, "luck", responses[0].Query)
	assert.False(t, sc.Degraded())
}

func TestShortQueryClearsResultsWithoutSearching(t *testing.T) {
	searcher := &stubSearcher{}
	sink := &resultSink{}
	sc := NewSearchController(SearchControllerConfig{
		Searcher:  searcher,
		OnResults: sink.accept,
		Delay:     20 * time.Millisecond,
	})
	defer sc.Close()

	sc.Input("u")
	time.Sleep(80 * time.Millisecond)

	assert.Empty(t, searcher.seen())
	responses := sink.all()
	require.Len(t, responses, 1)
	assert.Empty(t, responses[0].Results)
	assert.Zero(t, responses[0].TotalCount)
}

func TestWhitespaceDoesNotCountTowardThreshold(t *testing.T) {
	searcher := &stubSearcher{}
	sink := &resultSink{}
	sc := NewSearchController(SearchControllerConfig{
		Searcher:  searcher,
		OnResults: sink.accept,
		Delay:     20 * time.Millisecond,
	})
	defer sc.Close()

	sc.Input("  u  ")
	time.Sleep(80 * time.Millisecond)

	assert.Empty(t, searcher.seen())
}

func TestFallbackOnBackendFailure(t *testing.T) {
	searcher := &stubSearcher{err: errors.New("connection refused")}
	sink := &resultSink{}
	sc := NewSearchController(SearchControllerConfig{
		Searcher:  searcher,
		Fallback:  FixtureFallback,
		OnResults: sink.accept,
		Delay:     20 * time.Millisecond,
	})
	defer sc.Close()

	sc.Input("patna")
	time.Sleep(100 * time.Millisecond)

	responses := sink.all()
	require.Len(t, responses, 1)
	require.NotEmpty(t, responses[0].Results)
	assert.Equal(t, "BR-D1", responses[0].Results[0].ID)
	assert.True(t, sc.Degraded())
}

func TestNoFallbackYieldsEmptyDegradedResults(t *testing.T) {
	searcher := &stubSearcher{err: errors.New("connection refused")}
	sink := &resultSink{}
	sc := NewSearchController(SearchControllerConfig{
		Searcher:  searcher,
		OnResults: sink.accept,
		Delay:     20 * time.Millisecond,
	})
	defer sc.Close()

	sc.Input("patna")
	time.Sleep(100 * time.Millisecond)

	responses := sink.all()
	require.Len(t, responses, 1)
	assert.Empty(t, responses[0].Results)
	assert.True(t, sc.Degraded())
}

func TestCloseSuppressesPendingDelivery(t *testing.T) {
	searcher := &stubSearcher{}
	var delivered int32
	sc := NewSearchController(SearchControllerConfig{
		Searcher:  searcher,
		OnResults: func(SearchResponse) { atomic.AddInt32(&delivered, 1) },
		Delay:     50 * time.Millisecond,
	})

	sc.Input("lucknow")
	time.Sleep(10 * time.Millisecond)
	sc.Close()
	time.Sleep(120 * time.Millisecond)

	assert.Zero(t, atomic.LoadInt32(&delivered))
	assert.Empty(t, searcher.seen())
}

func TestFixtureFallbackFiltersByQuery(t *testing.T) {
	results := FixtureFallback("uttar")
	require.NotEmpty(t, results)
	for _, r := range results {
		assert.Contains(t, r.Title+" "+r.Subtitle, "Uttar")
	}

	assert.Empty(t, FixtureFallback("zzz-no-match"))
}
