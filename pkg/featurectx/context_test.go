package featurectx

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hestia-console-be/pkg/access"
)

func registryEntries() []access.Entry {
	return []access.Entry{
		{
			Code:         "dashboard",
			Name:         "Dashboard",
			Path:         "/dashboard",
			Enabled:      true,
			AllowedRoles: []string{"ROOT", "ADMIN", "USER"},
		},
		{
			Code:         "monitoring",
			Name:         "Monitoring",
			Path:         "/monitoring",
			Enabled:      true,
			AllowedRoles: []string{"ROOT", "ADMIN"},
			Subfeatures: []access.Entry{
				{
					Code:         "monitoring-servers",
					Name:         "Servers",
					Path:         "/monitoring/servers",
					Enabled:      true,
					AllowedRoles: []string{"ROOT", "ADMIN"},
				},
			},
		},
	}
}

func registryServer(t *testing.T, entries []access.Entry, hits *int64) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			atomic.AddInt64(hits, 1)
		}
		assert.Equal(t, "/api/features", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data":  entries,
			"error": false,
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestStartSessionLoadsRegistry(t *testing.T) {
	srv := registryServer(t, registryEntries(), nil)
	client := New(srv.URL)

	assert.Equal(t, StateUninitialized, client.State())
	assert.False(t, client.CanAccess("dashboard"), "no session denies")

	err := client.StartSession(context.Background(), "USER")
	assert.NoError(t, err)
	assert.Equal(t, StateReady, client.State())

	assert.True(t, client.CanAccess("dashboard"))
	assert.False(t, client.CanAccess("monitoring"), "USER not in allowedRoles")
	assert.False(t, client.CanAccess("unknown-code"))
}

func TestStartSessionFetchFailureIsDenyAllReady(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	client := New(srv.URL)
	err := client.StartSession(context.Background(), "ROOT")

	assert.Error(t, err)
	assert.Equal(t, StateReady, client.State(), "never stuck in loading")
	assert.False(t, client.CanAccess("dashboard"), "empty snapshot denies everything")
}

func TestSeedSessionSkipsFetch(t *testing.T) {
	client := New("http://registry.invalid")
	client.SeedSession("ADMIN", registryEntries())

	assert.Equal(t, StateReady, client.State())
	assert.True(t, client.CanAccess("monitoring"))
	assert.True(t, client.CanAccess("monitoring-servers"))
}

func TestRefreshPicksUpRegistryChanges(t *testing.T) {
	entries := registryEntries()
	srv := registryServer(t, entries, nil)
	// TTL short enough that the refresh goes back to the network
	client := New(srv.URL, WithTTL(time.Millisecond))

	err := client.StartSession(context.Background(), "ADMIN")
	assert.NoError(t, err)
	assert.True(t, client.CanAccess("monitoring"))

	// disable the feature upstream
	entries[1].Enabled = false
	client.Invalidate()

	err = client.Refresh(context.Background())
	assert.NoError(t, err)
	assert.False(t, client.CanAccess("monitoring"))
	assert.False(t, client.CanAccess("monitoring-servers"), "disabled parent disables subfeature")
}

func TestRefreshFailureKeepsStaleSnapshot(t *testing.T) {
	var fail atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{"data": registryEntries(), "error": false})
	}))
	t.Cleanup(srv.Close)

	client := New(srv.URL, WithTTL(time.Millisecond))
	assert.NoError(t, client.StartSession(context.Background(), "USER"))
	assert.True(t, client.CanAccess("dashboard"))

	fail.Store(true)
	client.Invalidate()
	err := client.Refresh(context.Background())

	assert.Error(t, err)
	assert.Equal(t, StateReady, client.State())
	assert.True(t, client.CanAccess("dashboard"), "stale snapshot keeps answering")
}

func TestRefreshWithinTTLIsMemoized(t *testing.T) {
	var hits int64
	srv := registryServer(t, registryEntries(), &hits)
	client := New(srv.URL, WithTTL(time.Minute))

	assert.NoError(t, client.StartSession(context.Background(), "USER"))
	assert.NoError(t, client.Refresh(context.Background()))
	assert.NoError(t, client.Refresh(context.Background()))

	assert.Equal(t, int64(1), atomic.LoadInt64(&hits), "refreshes within the TTL answer from cache")
}

func TestRefreshWithoutSessionFails(t *testing.T) {
	client := New("http://registry.invalid")
	assert.Error(t, client.Refresh(context.Background()))
}

func TestLogoutClearsBackToUninitialized(t *testing.T) {
	srv := registryServer(t, registryEntries(), nil)
	client := New(srv.URL)

	assert.NoError(t, client.StartSession(context.Background(), "ROOT"))
	assert.True(t, client.CanAccess("dashboard"))

	client.Logout()

	assert.Equal(t, StateUninitialized, client.State())
	assert.Equal(t, "", client.Role())
	assert.False(t, client.CanAccess("dashboard"))
	assert.Nil(t, client.Features())
}

func TestFeaturesExposesSnapshotEntries(t *testing.T) {
	client := New("http://registry.invalid")
	client.SeedSession("USER", registryEntries())

	features := client.Features()
	assert.Len(t, features, 2)
	assert.Equal(t, "dashboard", features[0].Code)
}
