package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hestia-console-be/internal/dto"
)

func TestCachedRegistryServesFromCache(t *testing.T) {
	svc, repo, _ := newFeatureServiceFixture()
	_, err := svc.Create(context.Background(), Actor{}, validCreateRequest())
	assert.NoError(t, err)

	registry := NewCachedRegistry(svc, time.Minute)

	first, err := registry.Snapshot(context.Background())
	assert.NoError(t, err)
	assert.True(t, first.CanAccess("monitoring", "ADMIN"))

	// mutate the store behind the cache's back: the cached snapshot wins
	repo.features["monitoring"].Enabled = false
	second, err := registry.Snapshot(context.Background())
	assert.NoError(t, err)
	assert.True(t, second.CanAccess("monitoring", "ADMIN"))
}

func TestCachedRegistryInvalidatedByMutation(t *testing.T) {
	svc, _, _ := newFeatureServiceFixture()
	_, err := svc.Create(context.Background(), Actor{}, validCreateRequest())
	assert.NoError(t, err)

	registry := NewCachedRegistry(svc, time.Minute)
	svc.SetChangeListener(registry.Invalidate)

	snapshot, err := registry.Snapshot(context.Background())
	assert.NoError(t, err)
	assert.True(t, snapshot.CanAccess("monitoring", "ADMIN"))

	enabled := false
	_, err = svc.Update(context.Background(), Actor{}, "monitoring", &dto.UpdateFeatureRequest{Enabled: &enabled})
	assert.NoError(t, err)

	snapshot, err = registry.Snapshot(context.Background())
	assert.NoError(t, err)
	assert.False(t, snapshot.CanAccess("monitoring", "ADMIN"), "mutation drops the cached snapshot")
}
