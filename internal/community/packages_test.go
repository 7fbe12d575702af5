// ABOUTME: Tests for the package mutual-aid board
// ABOUTME: Exercises the pending/accepted/completed state machine and its guards

package community

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackageCreate_StartsPending(t *testing.T) {
	board := NewPackageStore()
	carlos := testUser("u1", "Carlos")

	req := board.Create(carlos, "Amazon", "Hoy, 3-5 PM")

	assert.Equal(t, PackagePending, req.Status)
	assert.Nil(t, req.Helper)
	require.Len(t, board.Requests(), 1)
}

func TestPackageOfferHelp_AcceptsWithHelper(t *testing.T) {
	board := NewPackageStore()
	carlos := testUser("u1", "Carlos")
	ana := testUser("u2", "Ana")
	req := board.Create(carlos, "Amazon", "Hoy")

	accepted, err := board.OfferHelp(req.ID, ana)

	require.NoError(t, err)
	assert.Equal(t, PackageAccepted, accepted.Status)
	require.NotNil(t, accepted.Helper)
	assert.Equal(t, ana.ID, accepted.Helper.ID)
}

func TestPackageOfferHelp_RejectsOwnRequest(t *testing.T) {
	board := NewPackageStore()
	carlos := testUser("u1", "Carlos")
	req := board.Create(carlos, "Amazon", "Hoy")

	_, err := board.OfferHelp(req.ID, carlos)

	assert.ErrorIs(t, err, ErrOwnRequest)
	assert.Equal(t, PackagePending, board.Requests()[0].Status)
}

func TestPackageOfferHelp_RejectsNonPending(t *testing.T) {
	board := NewPackageStore()
	carlos := testUser("u1", "Carlos")
	ana := testUser("u2", "Ana")
	luisa := testUser("u3", "Luisa")
	req := board.Create(carlos, "Amazon", "Hoy")

	_, err := board.OfferHelp(req.ID, ana)
	require.NoError(t, err)

	_, err = board.OfferHelp(req.ID, luisa)
	assert.ErrorIs(t, err, ErrNotPending)
	assert.Equal(t, ana.ID, board.Requests()[0].Helper.ID)
}

func TestPackageComplete_RequesterOnly(t *testing.T) {
	board := NewPackageStore()
	carlos := testUser("u1", "Carlos")
	ana := testUser("u2", "Ana")
	req := board.Create(carlos, "Amazon", "Hoy")
	_, err := board.OfferHelp(req.ID, ana)
	require.NoError(t, err)

	_, err = board.Complete(req.ID, ana)
	assert.ErrorIs(t, err, ErrNotRequester)

	done, err := board.Complete(req.ID, carlos)
	require.NoError(t, err)
	assert.Equal(t, PackageCompleted, done.Status)
}

func TestPackageComplete_RejectsPending(t *testing.T) {
	board := NewPackageStore()
	carlos := testUser("u1", "Carlos")
	req := board.Create(carlos, "Amazon", "Hoy")

	_, err := board.Complete(req.ID, carlos)

	assert.ErrorIs(t, err, ErrNotAccepted)
}

func TestPackageBoard_UnknownID(t *testing.T) {
	board := NewPackageStore()
	ana := testUser("u2", "Ana")

	_, err := board.OfferHelp("missing", ana)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = board.Complete("missing", ana)
	assert.ErrorIs(t, err, ErrNotFound)
}
