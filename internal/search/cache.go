package search

import (
	"fmt"
	"sync"

	"parkfinder/internal/models"
)

// resultCache keys merged result lists by category and the user location
// rounded to 4 decimal places (roughly an 11 m cell). Entries are never
// evicted within a session: staleness is an accepted tradeoff for
// responsiveness, and growth is bounded by the distinct category×cell
// combinations a session visits.
type resultCache struct {
	mu      sync.RWMutex
	entries map[string][]models.Place
}

func newResultCache() *resultCache {
	return &resultCache{entries: make(map[string][]models.Place)}
}

func cacheKey(category models.Category, lat, lng float64) string {
	return fmt.Sprintf("%s_%.4f_%.4f", category, lat, lng)
}

func (c *resultCache) get(key string) ([]models.Place, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	places, ok := c.entries[key]
	return places, ok
}

func (c *resultCache) set(key string, places []models.Place) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = places
}
