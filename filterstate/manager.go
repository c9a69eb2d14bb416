// Package filterstate owns the applied dashboard filters and the catalog of
// legal filter values. It is the single source of truth every data-fetching
// view serializes its query string from.
package filterstate

import (
	"context"
	"log"
	"net/url"
	"strconv"
	"strings"
	"sync"
)

// Filters is the current selection. The zero value of each field means
// "no constraint"; selecting a year without a month means the whole year.
type Filters struct {
	Region     string
	SubRegion  string
	Year       int
	Month      int
	MetricType string
	AgeGroup   string
	IndexType  string
}

// IsZero reports whether no field is set.
func (f Filters) IsZero() bool {
	return f == Filters{}
}

// LoadState tracks the catalog lifecycle: NotLoaded -> Loading -> Loaded.
// Loaded is terminal until LoadCatalog is called again.
type LoadState int

const (
	NotLoaded LoadState = iota
	Loading
	Loaded
)

// Manager is the filter state manager. One instance per consuming view;
// instances are never shared between views unless the caller deliberately
// lifts one into shared context (filters then survive navigation).
type Manager struct {
	mu       sync.Mutex
	source   CatalogSource
	fallback *Catalog
	catalog  *Catalog
	filters  Filters
	state    LoadState
	degraded bool
	version  uint64
	subs     []func(Filters)
}

// Option configures a Manager.
type Option func(*Manager)

// WithFallback overrides the catalog substituted on load failure.
// Passing nil disables the fallback entirely: LoadCatalog then returns the
// source error instead of degrading.
func WithFallback(c *Catalog) Option {
	return func(m *Manager) {
		m.fallback = c
	}
}

// NewManager creates a manager backed by the given catalog source. The
// default failure policy substitutes FallbackCatalog().
func NewManager(source CatalogSource, opts ...Option) *Manager {
	m := &Manager{
		source:   source,
		fallback: FallbackCatalog(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// LoadCatalog fetches the catalog. A source failure is not fatal: the
// fallback catalog is substituted, the degraded flag is set, and the call
// reports success. Only when the fallback has been disabled does the error
// propagate. Safe to call again for an explicit refresh.
func (m *Manager) LoadCatalog(ctx context.Context) (*Catalog, error) {
	m.mu.Lock()
	m.state = Loading
	source := m.source
	m.mu.Unlock()

	catalog, err := source.FetchCatalog(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()

	if err != nil {
		if m.fallback == nil {
			m.state = NotLoaded
			return nil, err
		}
		log.Printf("[filters] catalog load failed, using fallback: %v", err)
		catalog = m.fallback
		m.degraded = true
	} else {
		m.degraded = false
	}

	m.catalog = catalog
	m.state = Loaded
	return catalog, nil
}

// Catalog returns the loaded catalog, or nil before the first load.
func (m *Manager) Catalog() *Catalog {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.catalog
}

// State returns the catalog load state.
func (m *Manager) State() LoadState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Loading reports whether a catalog load is in flight.
func (m *Manager) Loading() bool {
	return m.State() == Loading
}

// Degraded reports whether the current catalog is the fallback rather than
// a real metadata response. The UI may or may not surface this; tests do.
func (m *Manager) Degraded() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.degraded
}

// Filters returns a copy of the current selection.
func (m *Manager) Filters() Filters {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.filters
}

// Version returns the mutation counter. Callers that poll rather than
// subscribe compare versions to decide whether to refetch.
func (m *Manager) Version() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.version
}

// Subscribe registers fn to run after every filter mutation with a copy of
// the new selection. Callbacks run synchronously on the mutating call.
func (m *Manager) Subscribe(fn func(Filters)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subs = append(m.subs, fn)
}

// SetRegion replaces the region. Changing it (including to unset) clears the
// sub-region in the same update: a district choice is meaningless once its
// parent state changes. No intermediate state is observable.
func (m *Manager) SetRegion(code string) {
	m.mutate(func(f *Filters) {
		if f.Region != code {
			f.SubRegion = ""
		}
		f.Region = code
	})
}

// SetSubRegion replaces the sub-region. The manager does not validate that
// the district belongs to the selected state; callers present valid options.
func (m *Manager) SetSubRegion(code string) {
	m.mutate(func(f *Filters) { f.SubRegion = code })
}

// SetYear replaces the year. Zero means unset.
func (m *Manager) SetYear(year int) {
	m.mutate(func(f *Filters) { f.Year = year })
}

// SetMonth replaces the month (1-12, zero means unset).
func (m *Manager) SetMonth(month int) {
	m.mutate(func(f *Filters) { f.Month = month })
}

func (m *Manager) SetMetricType(v string) {
	m.mutate(func(f *Filters) { f.MetricType = v })
}

func (m *Manager) SetAgeGroup(v string) {
	m.mutate(func(f *Filters) { f.AgeGroup = v })
}

func (m *Manager) SetIndexType(v string) {
	m.mutate(func(f *Filters) { f.IndexType = v })
}

// SetAll replaces the whole selection verbatim. No cross-field clearing is
// applied; the caller owns consistency here.
func (m *Manager) SetAll(f Filters) {
	m.mutate(func(cur *Filters) { *cur = f })
}

// Clear resets to the empty selection.
func (m *Manager) Clear() {
	m.mutate(func(f *Filters) { *f = Filters{} })
}

func (m *Manager) mutate(apply func(*Filters)) {
	m.mu.Lock()
	apply(&m.filters)
	m.version++
	snapshot := m.filters
	subs := m.subs
	m.mu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
}

// SubRegions returns the district options narrowed by the selected region:
// the subset of catalog sub-regions whose parent is the selected state, or
// the full list when no state is selected. Always recomputed, empty before
// the catalog has loaded.
func (m *Manager) SubRegions() []SubRegion {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.catalog == nil {
		return nil
	}
	if m.filters.Region == "" {
		return append([]SubRegion(nil), m.catalog.SubRegions...)
	}

	narrowed := make([]SubRegion, 0)
	for _, sr := range m.catalog.SubRegions {
		if sr.ParentRegionCode == m.filters.Region {
			narrowed = append(narrowed, sr)
		}
	}
	return narrowed
}

// QueryString serializes the current selection for backend calls. Set fields
// only, fixed order, internal names mapped to the backend's wire names
// (region -> state, subRegion -> district). Empty selection yields "", not "?".
func (m *Manager) QueryString() string {
	return m.Filters().QueryString()
}

// QueryString is the standalone serializer; see Manager.QueryString.
func (f Filters) QueryString() string {
	var b strings.Builder

	appendParam := func(key, value string) {
		if value == "" {
			return
		}
		if b.Len() == 0 {
			b.WriteByte('?')
		} else {
			b.WriteByte('&')
		}
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(value))
	}

	appendInt := func(key string, value int) {
		if value != 0 {
			appendParam(key, strconv.Itoa(value))
		}
	}

	appendParam("state", f.Region)
	appendParam("district", f.SubRegion)
	appendInt("year", f.Year)
	appendInt("month", f.Month)
	appendParam("metricType", f.MetricType)
	appendParam("ageGroup", f.AgeGroup)
	appendParam("indexType", f.IndexType)

	return b.String()
}
