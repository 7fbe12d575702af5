// ABOUTME: Tests for the identity registry
// ABOUTME: Covers seeding, persistence round-trips, registration, and session switching

package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rinconada/ceibas-hub/internal/blobstore"
)

func newTestRegistry(t *testing.T) (*Registry, *blobstore.MemoryStore) {
	t.Helper()
	store := blobstore.NewMemoryStore()
	r := NewRegistry(store, nil)
	r.Initialize()
	return r, store
}

func TestInitialize_SeedsBuiltinRoster(t *testing.T) {
	r, _ := newTestRegistry(t)

	users := r.Users()
	require.Len(t, users, 6)

	// Exactly one admin, active by default
	admins := 0
	for _, u := range users {
		if u.Role == RoleAdmin {
			admins++
		}
	}
	assert.Equal(t, 1, admins)

	active := r.ActiveUser()
	require.NotNil(t, active)
	assert.Equal(t, "user1", active.ID)
	assert.True(t, active.IsAdmin())
}

func TestInitialize_CorruptRosterFallsBackToSeed(t *testing.T) {
	store := blobstore.NewMemoryStore()
	store.Save("community.roster", "{not json")

	r := NewRegistry(store, nil)
	r.Initialize()

	assert.Len(t, r.Users(), 6)
	require.NotNil(t, r.ActiveUser())
	assert.Equal(t, "user1", r.ActiveUser().ID)
}

func TestInitialize_RestoresPersistedState(t *testing.T) {
	store := blobstore.NewMemoryStore()

	first := NewRegistry(store, nil)
	first.Initialize()
	_, err := first.SetActiveUser("user3")
	require.NoError(t, err)

	second := NewRegistry(store, nil)
	second.Initialize()

	active := second.ActiveUser()
	require.NotNil(t, active)
	assert.Equal(t, "user3", active.ID)
}

func TestInitialize_StaleActiveUserFallsBackToFirst(t *testing.T) {
	store := blobstore.NewMemoryStore()
	store.Save("community.active_user", "user99")

	r := NewRegistry(store, nil)
	r.Initialize()

	active := r.ActiveUser()
	require.NotNil(t, active)
	assert.Equal(t, "user1", active.ID)
}

func TestAddUser_AppendsAndLogsIn(t *testing.T) {
	r, store := newTestRegistry(t)

	user := r.AddUser("Test Neighbor", 99)

	users := r.Users()
	require.Len(t, users, 7)
	assert.Equal(t, user.ID, users[6].ID)
	assert.Equal(t, "Test Neighbor", user.Name)
	assert.Equal(t, 99, user.HouseNumber)
	assert.Equal(t, RoleUser, user.Role)
	assert.NotEmpty(t, user.AvatarURL)

	// Registration implies immediate login
	active := r.ActiveUser()
	require.NotNil(t, active)
	assert.Equal(t, user.ID, active.ID)

	// Both roster and active pointer are written through
	_, ok := store.Load("community.roster")
	assert.True(t, ok)
	activeID, ok := store.Load("community.active_user")
	require.True(t, ok)
	assert.Equal(t, user.ID, activeID)
}

func TestAddUser_IDsAreUnique(t *testing.T) {
	r, _ := newTestRegistry(t)

	a := r.AddUser("Vecino A", 1)
	b := r.AddUser("Vecino B", 2)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestSetActiveUser_UnknownID(t *testing.T) {
	r, _ := newTestRegistry(t)

	_, err := r.SetActiveUser("user99")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownUser)

	// Active pointer unchanged
	require.NotNil(t, r.ActiveUser())
	assert.Equal(t, "user1", r.ActiveUser().ID)
}

func TestLookup(t *testing.T) {
	r, _ := newTestRegistry(t)

	u, err := r.Lookup("user2")
	require.NoError(t, err)
	assert.Equal(t, "Carlos Pérez", u.Name)

	_, err = r.Lookup("nope")
	assert.ErrorIs(t, err, ErrUnknownUser)
}
