package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func registryFixture() []Entry {
	return []Entry{
		{
			Code:         "dashboard",
			Name:         "Dashboard",
			Path:         "/dashboard",
			Enabled:      true,
			AllowedRoles: []string{"ROOT", "ADMIN", "USER"},
		},
		{
			Code:         "monitoring",
			Name:         "Monitoramento",
			Path:         "/servers",
			Enabled:      true,
			AllowedRoles: []string{"ROOT", "ADMIN"},
			Subfeatures: []Entry{
				{Code: "monitoring-servers", Name: "Servidores", Path: "/servers", Enabled: true, AllowedRoles: []string{"ROOT", "ADMIN"}},
				{Code: "monitoring-services", Name: "Serviços", Path: "/services", Enabled: false, AllowedRoles: []string{"ROOT", "ADMIN"}},
			},
		},
		{
			Code:         "products",
			Name:         "Produtos",
			Path:         "/products",
			Enabled:      false,
			AllowedRoles: []string{"ROOT", "ADMIN", "USER"},
			Subfeatures: []Entry{
				{Code: "products-list", Name: "Ver Produtos", Path: "/products", Enabled: true, AllowedRoles: []string{"ROOT", "ADMIN", "USER"}},
			},
		},
	}
}

func TestCanAccessRoleMembership(t *testing.T) {
	snap := NewSnapshot(registryFixture())

	assert.True(t, snap.CanAccess("monitoring-servers", "ADMIN"))
	assert.True(t, snap.CanAccess("monitoring-servers", "ROOT"))
	assert.False(t, snap.CanAccess("monitoring-servers", "USER"))
}

func TestCanAccessUnknownCodeDenies(t *testing.T) {
	snap := NewSnapshot(registryFixture())

	for _, role := range []string{"ROOT", "ADMIN", "USER"} {
		assert.False(t, snap.CanAccess("does-not-exist", role))
	}
}

func TestCanAccessDisabledEntryDeniesEveryRole(t *testing.T) {
	snap := NewSnapshot(registryFixture())

	// monitoring-services is disabled even though ROOT/ADMIN are allowed
	for _, role := range []string{"ROOT", "ADMIN", "USER"} {
		assert.False(t, snap.CanAccess("monitoring-services", role))
	}
}

func TestCanAccessDisabledParentDisablesSubfeature(t *testing.T) {
	snap := NewSnapshot(registryFixture())

	// products-list is enabled, its parent products is not. The parent's
	// flag wins: the whole subtree is inaccessible.
	assert.False(t, snap.CanAccess("products-list", "ROOT"))
	assert.False(t, snap.CanAccess("products-list", "USER"))

	// The parent itself is denied too.
	assert.False(t, snap.CanAccess("products", "ROOT"))
}

func TestCanAccessEmptyRoleDeniesUnconditionally(t *testing.T) {
	snap := NewSnapshot(registryFixture())

	assert.False(t, snap.CanAccess("dashboard", ""))
	assert.False(t, snap.CanAccess("monitoring-servers", ""))
}

func TestCanAccessIsIdempotent(t *testing.T) {
	snap := NewSnapshot(registryFixture())

	first := snap.CanAccess("monitoring-servers", "ADMIN")
	second := snap.CanAccess("monitoring-servers", "ADMIN")
	assert.Equal(t, first, second)
	assert.True(t, first)
}

func TestNilAndEmptySnapshotsDenyAll(t *testing.T) {
	var nilSnap *Snapshot
	assert.False(t, nilSnap.CanAccess("dashboard", "ROOT"))

	empty := Empty()
	assert.False(t, empty.CanAccess("dashboard", "ROOT"))
	assert.Equal(t, 0, empty.Len())
}

func TestDuplicateCodesFirstEntryWins(t *testing.T) {
	snap := NewSnapshot([]Entry{
		{Code: "dup", Enabled: true, AllowedRoles: []string{"USER"}},
		{Code: "dup", Enabled: true, AllowedRoles: []string{"ROOT"}},
	})

	assert.True(t, snap.CanAccess("dup", "USER"))
	assert.False(t, snap.CanAccess("dup", "ROOT"))
}

func TestLookupAndFeatures(t *testing.T) {
	fixture := registryFixture()
	snap := NewSnapshot(fixture)

	entry, ok := snap.Lookup("monitoring-services")
	assert.True(t, ok)
	assert.Equal(t, "/services", entry.Path)

	_, ok = snap.Lookup("nope")
	assert.False(t, ok)

	assert.Len(t, snap.Features(), 3)
	assert.Equal(t, 6, snap.Len())
}
