package handlers

import (
	"sync"
	"time"

	"github.com/Gokul-61/BIS-Nutrition-Advisor/internal/domain/models"
)

type cachedResult struct {
	result     *models.EvaluationResult
	computedAt time.Time
}

// resultCache holds computed evaluations keyed by farmer id so the report
// endpoint can render them without recomputation. Entries live for the
// lifetime of the process; each calculation replaces its own key only.
type resultCache struct {
	results map[string]cachedResult
	mu      sync.RWMutex
}

func newResultCache() *resultCache {
	return &resultCache{results: make(map[string]cachedResult)}
}

func (c *resultCache) Get(farmerID string) (*models.EvaluationResult, time.Time, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.results[farmerID]
	return entry.result, entry.computedAt, ok
}

func (c *resultCache) Put(farmerID string, result *models.EvaluationResult, computedAt time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.results[farmerID] = cachedResult{result: result, computedAt: computedAt}
}
