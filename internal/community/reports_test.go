// ABOUTME: Tests for the maintenance report tracker
// ABOUTME: Covers filing, the admin-only resolve guard, and ordering

package community

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rinconada/ceibas-hub/internal/identity"
)

func testAdmin() *identity.User {
	return &identity.User{ID: "admin", Name: "Admin", Role: identity.RoleAdmin}
}

func TestReportCreate_StartsReported(t *testing.T) {
	tracker := NewReportStore()
	ana := testUser("u1", "Ana")

	report := tracker.Create(ana, "Seguridad", "  La puerta no cierra  ", "")

	assert.Equal(t, ReportReported, report.Status)
	assert.Equal(t, "La puerta no cierra", report.Description)
	assert.Equal(t, "Ahora mismo", report.Timestamp)
	assert.Empty(t, report.ImageURL)
}

func TestReportCreate_NewestFirst(t *testing.T) {
	tracker := NewReportStore()
	ana := testUser("u1", "Ana")

	tracker.Create(ana, "Jardinería", "pasto crecido", "")
	second := tracker.Create(ana, "Alumbrado Público", "lámpara fundida", "")

	reports := tracker.Reports()
	require.Len(t, reports, 2)
	assert.Equal(t, second.ID, reports[0].ID)
}

func TestReportResolve_AdminOnly(t *testing.T) {
	tracker := NewReportStore()
	ana := testUser("u1", "Ana")
	report := tracker.Create(ana, "Seguridad", "puerta", "")

	_, err := tracker.Resolve(report.ID, ana)
	assert.ErrorIs(t, err, ErrNotAdmin)
	assert.Equal(t, ReportReported, tracker.Reports()[0].Status)

	resolved, err := tracker.Resolve(report.ID, testAdmin())
	require.NoError(t, err)
	assert.Equal(t, ReportResolved, resolved.Status)
}

func TestReportResolve_AlreadyResolvedIsNoOp(t *testing.T) {
	tracker := NewReportStore()
	report := tracker.Create(testUser("u1", "Ana"), "Seguridad", "puerta", "")

	_, err := tracker.Resolve(report.ID, testAdmin())
	require.NoError(t, err)

	resolved, err := tracker.Resolve(report.ID, testAdmin())
	require.NoError(t, err)
	assert.Equal(t, ReportResolved, resolved.Status)
}

func TestReportResolve_UnknownID(t *testing.T) {
	tracker := NewReportStore()

	_, err := tracker.Resolve("missing", testAdmin())

	assert.ErrorIs(t, err, ErrNotFound)
}
