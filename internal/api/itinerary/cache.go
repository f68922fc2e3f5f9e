package itinerary

import (
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/roamplan/roamplan/internal/types"
)

const (
	defaultCacheTTL      = 6 * time.Hour
	defaultCacheCapacity = 50
)

// PipelineMetrics records what the pipeline did for one request, for
// observability alongside the cached plan.
type PipelineMetrics struct {
	BaselineDuration time.Duration `json:"baseline_duration"`
	EnrichDuration   time.Duration `json:"enrich_duration"`
	LLMCalls         int           `json:"llm_calls"`
	CacheHit         bool          `json:"cache_hit"`
}

type planEntry struct {
	plan     types.Itinerary
	metrics  PipelineMetrics
	storedAt time.Time
}

// PlanCache memoizes full pipeline outputs keyed by request fingerprint.
// Entries expire after the TTL; when the entry count would exceed the
// capacity the globally oldest entry is evicted first. Plans are deep
// copied on both put and get so callers and the cache never share state.
type PlanCache struct {
	mu       sync.Mutex
	store    *gocache.Cache
	capacity int
}

func NewPlanCache(ttl time.Duration, capacity int) *PlanCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	if capacity <= 0 {
		capacity = defaultCacheCapacity
	}
	return &PlanCache{
		store:    gocache.New(ttl, 10*time.Minute),
		capacity: capacity,
	}
}

// Get returns a deep copy of the cached plan, or ok=false when the key is
// absent or expired.
func (c *PlanCache) Get(key string) (types.Itinerary, PipelineMetrics, bool) {
	v, found := c.store.Get(key)
	if !found {
		return types.Itinerary{}, PipelineMetrics{}, false
	}
	entry := v.(planEntry)
	return entry.plan.Clone(), entry.metrics, true
}

// Put stores a deep copy of the plan, evicting the oldest entry first if
// the cache is full.
func (c *PlanCache) Put(key string, plan types.Itinerary, metrics PipelineMetrics) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.store.Get(key); !exists && c.store.ItemCount() >= c.capacity {
		c.evictOldestLocked()
	}
	c.store.SetDefault(key, planEntry{
		plan:     plan.Clone(),
		metrics:  metrics,
		storedAt: time.Now(),
	})
}

// Len reports the number of live entries (including not-yet-purged
// expired ones, matching the backing store's accounting).
func (c *PlanCache) Len() int {
	return c.store.ItemCount()
}

func (c *PlanCache) evictOldestLocked() {
	var oldestKey string
	var oldestAt time.Time
	for key, item := range c.store.Items() {
		entry := item.Object.(planEntry)
		if oldestKey == "" || entry.storedAt.Before(oldestAt) {
			oldestKey = key
			oldestAt = entry.storedAt
		}
	}
	if oldestKey != "" {
		c.store.Delete(oldestKey)
	}
}
