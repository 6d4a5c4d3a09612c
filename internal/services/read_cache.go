package services

import (
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/yungbote/claimline-backend/internal/observability"
)

// ReadCache holds immutable aggregates by kind and id. Values are shared and
// must not be mutated after Set.
type ReadCache struct {
	c       *gocache.Cache
	metrics *observability.Metrics
}

// NewReadCache returns a cache with the given TTL. A zero or negative ttl
// disables caching.
func NewReadCache(ttl time.Duration, metrics *observability.Metrics) *ReadCache {
	if ttl <= 0 {
		return &ReadCache{metrics: metrics}
	}
	return &ReadCache{
		c:       gocache.New(ttl, 2*ttl),
		metrics: metrics,
	}
}

func cacheKey(kind string, id uuid.UUID) string { return kind + ":" + id.String() }

func (rc *ReadCache) Get(kind string, id uuid.UUID) (any, bool) {
	if rc == nil || rc.c == nil {
		return nil, false
	}
	v, ok := rc.c.Get(cacheKey(kind, id))
	rc.metrics.IncReadCache(kind, ok)
	return v, ok
}

func (rc *ReadCache) Set(kind string, id uuid.UUID, v any) {
	if rc == nil || rc.c == nil || v == nil {
		return
	}
	rc.c.SetDefault(cacheKey(kind, id), v)
}

// Len reports the number of live entries.
func (rc *ReadCache) Len() int {
	if rc == nil || rc.c == nil {
		return 0
	}
	return rc.c.ItemCount()
}

func cached[T any](rc *ReadCache, kind string, id uuid.UUID) (*T, bool) {
	v, ok := rc.Get(kind, id)
	if !ok {
		return nil, false
	}
	t, ok := v.(*T)
	return t, ok
}
