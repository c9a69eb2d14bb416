package catalog_cache

import (
	"sync"
	"time"

	"github.com/rajstories/Aadhaar-Intelligence-System/models"
)

const TTL = 5 * time.Minute

// ── Filter catalog cache ─────────────────────────────────────────────────────
// The catalog changes only when geography or enumerations are reloaded, so a
// short in-process TTL keeps the metadata endpoint cheap.

type catalogEntry struct {
	catalog   *models.FilterCatalog
	fetchedAt time.Time
}

var (
	catalogMu    sync.RWMutex
	catalogCache *catalogEntry
)

func Get() (*models.FilterCatalog, bool) {
	catalogMu.RLock()
	defer catalogMu.RUnlock()
	if catalogCache != nil && time.Since(catalogCache.fetchedAt) < TTL {
		return catalogCache.catalog, true
	}
	return nil, false
}

func Set(catalog *models.FilterCatalog) {
	catalogMu.Lock()
	defer catalogMu.Unlock()
	catalogCache = &catalogEntry{catalog: catalog, fetchedAt: time.Now()}
}

// ── Invalidate (call when geography data is reseeded) ────────────────────────

func Invalidate() {
	catalogMu.Lock()
	catalogCache = nil
	catalogMu.Unlock()
}
