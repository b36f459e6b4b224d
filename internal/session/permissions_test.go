package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sekolah-cli/internal/api"
)

func named(names ...string) []api.Permission {
	out := make([]api.Permission, 0, len(names))
	for _, n := range names {
		out = append(out, api.Permission{Name: n})
	}
	return out
}

func TestPermissionSet_Has(t *testing.T) {
	set := NewPermissionSet(named("perumahans.read", "rts.create"), false)

	assert.True(t, set.Has("perumahans.read"))
	assert.True(t, set.Has("rts.create"))
	assert.False(t, set.Has("perumahans.delete"))
	assert.False(t, set.Has("rts.read"))
	assert.Equal(t, 2, set.Len())
}

func TestPermissionSet_FallsBackToResourceAction(t *testing.T) {
	set := NewPermissionSet([]api.Permission{
		{Resource: "rooms", Action: "update"},
	}, false)

	assert.True(t, set.Has("rooms.update"))
	assert.False(t, set.Has("rooms.read"))
}

func TestPermissionSet_HasAny(t *testing.T) {
	set := NewPermissionSet(named("members.update"), false)

	assert.True(t, set.HasAny("members.create", "members.update"))
	assert.False(t, set.HasAny("members.create", "members.delete"))
	assert.False(t, set.HasAny())
}

func TestPermissionSet_HasAll(t *testing.T) {
	set := NewPermissionSet(named("wargas.read", "wargas.update"), false)

	assert.True(t, set.HasAll("wargas.read", "wargas.update"))
	assert.False(t, set.HasAll("wargas.read", "wargas.delete"))
	assert.True(t, set.HasAll())
}

func TestPermissionSet_SuperAdminPassesEverything(t *testing.T) {
	set := NewPermissionSet(nil, true)

	assert.True(t, set.Has("anything.at-all"))
	assert.True(t, set.HasAny("nope.never"))
	assert.True(t, set.HasAll("a.b", "c.d"))
	assert.True(t, set.CanDeletePerumahan())
	assert.True(t, set.CanManageMembers())
	// Len reflects only explicit grants.
	assert.Equal(t, 0, set.Len())
}

func TestPermissionSet_ViewGrantedByListOrRead(t *testing.T) {
	listOnly := NewPermissionSet(named("perumahans.list"), false)
	assert.True(t, listOnly.CanViewPerumahans())

	readOnly := NewPermissionSet(named("perumahans.read"), false)
	assert.True(t, readOnly.CanViewPerumahans())

	neither := NewPermissionSet(named("perumahans.create"), false)
	assert.False(t, neither.CanViewPerumahans())
}

func TestPermissionSet_DerivedCapabilities(t *testing.T) {
	set := NewPermissionSet(named(
		"perumahans.read",
		"perumahans.update",
		"members.delete",
	), false)

	assert.True(t, set.CanViewPerumahans())
	assert.False(t, set.CanCreatePerumahan())
	assert.True(t, set.CanUpdatePerumahan())
	assert.False(t, set.CanDeletePerumahan())
	assert.True(t, set.CanManageMembers())
}

func TestPermissionSet_CreateRequiresExactName(t *testing.T) {
	set := NewPermissionSet(named("perumahans.create"), false)

	assert.True(t, set.CanCreatePerumahan())
	assert.False(t, set.CanUpdatePerumahan())
	assert.False(t, set.CanDeletePerumahan())
}

func TestPermissionSet_Empty(t *testing.T) {
	set := NewPermissionSet(nil, false)

	assert.False(t, set.Has("perumahans.read"))
	assert.False(t, set.CanManageMembers())
	assert.Equal(t, 0, set.Len())
}
