package advisor

import (
	"slices"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/Yiqing888/deadlydelivery.app/internal/domain"
)

// ResultCacheSchemaVersion is the version of the cached result shape.
// Increment this when CalculationResult changes to auto-invalidate old entries.
const ResultCacheSchemaVersion = "1.0"

type cachedResult struct {
	Version  string
	Result   domain.CalculationResult
	CachedAt time.Time
}

// resultCache is an in-memory LRU of recent calculations keyed by the exact input.
// The estimator is deterministic so a hit is always equal to a fresh computation.
type resultCache struct {
	lru *expirable.LRU[domain.CalculatorInput, *cachedResult]
}

func newResultCache(size int, ttl time.Duration) *resultCache {
	return &resultCache{
		lru: expirable.NewLRU[domain.CalculatorInput, *cachedResult](size, nil, ttl),
	}
}

// Get returns a copy of the cached result for input
func (c *resultCache) Get(input domain.CalculatorInput) (domain.CalculationResult, bool) {
	entry, found := c.lru.Get(input)
	if !found {
		return domain.CalculationResult{}, false
	}

	if entry.Version != ResultCacheSchemaVersion {
		c.lru.Remove(input)
		return domain.CalculationResult{}, false
	}

	return copyResult(entry.Result), true
}

// Set stores result under input
func (c *resultCache) Set(input domain.CalculatorInput, result domain.CalculationResult) {
	c.lru.Add(input, &cachedResult{
		Version:  ResultCacheSchemaVersion,
		Result:   copyResult(result),
		CachedAt: time.Now(),
	})
}

// Len reports the number of live entries
func (c *resultCache) Len() int {
	return c.lru.Len()
}

// Clear removes all entries
func (c *resultCache) Clear() {
	c.lru.Purge()
}

// copyResult detaches the notes slice so callers cannot mutate cached entries
func copyResult(r domain.CalculationResult) domain.CalculationResult {
	r.Notes = slices.Clone(r.Notes)
	if r.Notes == nil {
		r.Notes = []string{}
	}
	return r
}
