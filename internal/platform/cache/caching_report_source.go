// Package cache provides caching implementations for report generation.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"maintenance_backend/internal/feature/staleness/domain/entity"
)

// ReportSource produces stale price reports. The scan usecase satisfies it.
type ReportSource interface {
	GenerateReport(ctx context.Context, window int) (entity.Report, error)
}

// CachingReportSource decorates a ReportSource with Redis caching.
// The stale scan reads the whole recent window of the price table, so the
// finished report is cached rather than the underlying rows.
type CachingReportSource struct {
	inner     ReportSource
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingReportSource decorates a ReportSource with Redis caching.
// If ttl is 0, it defaults to 15 minutes. If namespace is empty, it uses "staleness".
func NewCachingReportSource(rdb *redis.Client, ttl time.Duration, inner ReportSource, namespace string) *CachingReportSource {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	if namespace == "" {
		namespace = "staleness"
	}
	return &CachingReportSource{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// GenerateReport returns the cached report for the window when present,
// falling back to the inner source and storing the result best effort.
func (c *CachingReportSource) GenerateReport(ctx context.Context, window int) (entity.Report, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.GenerateReport(ctx, window)
	}

	key := c.cacheKey(window)

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.Report
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.GenerateReport(ctx, window)
	if err != nil {
		return entity.Report{}, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// Invalidate drops the cached report for the window, e.g. after a purge.
func (c *CachingReportSource) Invalidate(ctx context.Context, window int) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, c.cacheKey(window)).Err()
}

// cacheKey generates the cache key for a scan window.
func (c *CachingReportSource) cacheKey(window int) string {
	return fmt.Sprintf("%s:report:%d", c.namespace, window)
}
