package service

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"hestia-console-be/pkg/access"
)

const snapshotCacheKey = "registry-snapshot"

// CachedRegistry memoizes resolved registry snapshots for a short TTL so
// the per-request feature gate does not load the registry on every call.
// Mutations go through the feature service, which calls Invalidate.
type CachedRegistry struct {
	features IFeatureService
	cache    *gocache.Cache
}

func NewCachedRegistry(features IFeatureService, ttl time.Duration) *CachedRegistry {
	return &CachedRegistry{
		features: features,
		cache:    gocache.New(ttl, 2*ttl),
	}
}

func (r *CachedRegistry) Snapshot(ctx context.Context) (*access.Snapshot, error) {
	if cached, ok := r.cache.Get(snapshotCacheKey); ok {
		return cached.(*access.Snapshot), nil
	}

	snapshot, err := r.features.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	r.cache.SetDefault(snapshotCacheKey, snapshot)
	return snapshot, nil
}

// Invalidate drops the cached snapshot so the next gate check sees
// registry changes immediately instead of after the TTL.
func (r *CachedRegistry) Invalidate() {
	r.cache.Delete(snapshotCacheKey)
}
