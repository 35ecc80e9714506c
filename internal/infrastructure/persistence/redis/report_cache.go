package redis

import (
	"context"
	"errors"
	"time"
)

// PrefixReport namespaces report keys.
const PrefixReport = "report:"

// TTLReport is the default lifetime of a cached report.
const TTLReport = 5 * time.Minute

// ReportCache stores rendered reports by key.
type ReportCache struct {
	cache *Cache
	ttl   time.Duration
}

// NewReportCache creates a report cache. A non-positive ttl means TTLReport.
func NewReportCache(cache *Cache, ttl time.Duration) *ReportCache {
	if ttl <= 0 {
		ttl = TTLReport
	}
	return &ReportCache{cache: cache, ttl: ttl}
}

// ReportKey returns the Redis key of a report.
func ReportKey(key string) string {
	return PrefixReport + key
}

// Load decodes a cached report into dest. ok is false on a miss.
func (r *ReportCache) Load(ctx context.Context, key string, dest any) (bool, error) {
	err := r.cache.Get(ctx, ReportKey(key), dest)
	if errors.Is(err, ErrCacheMiss) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Store caches a report.
func (r *ReportCache) Store(ctx context.Context, key string, report any) error {
	return r.cache.Set(ctx, ReportKey(key), report, r.ttl)
}

// Invalidate drops cached reports.
func (r *ReportCache) Invalidate(ctx context.Context, keys ...string) error {
	full := make([]string, 0, len(keys))
	for _, k := range keys {
		full = append(full, ReportKey(k))
	}
	return r.cache.Delete(ctx, full...)
}
