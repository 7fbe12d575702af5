// ABOUTME: Maintenance incident tracker
// ABOUTME: Residents file reports; only an admin can resolve them

package community

import (
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/rinconada/ceibas-hub/internal/identity"
)

// Maintenance report statuses (user-facing, Spanish). InProgress is
// reachable only through seed data; consumer operations move reports
// straight to resolved.
const (
	ReportReported   = "Reportado"
	ReportInProgress = "En Progreso"
	ReportResolved   = "Resuelto"
)

// ErrNotAdmin is returned when a non-admin tries to resolve a report
var ErrNotAdmin = errors.New("only an admin can resolve reports")

// MaintenanceReport is a filed incident
type MaintenanceReport struct {
	ID          string         `json:"id"`
	Reporter    *identity.User `json:"reporter"`
	Category    string         `json:"category"`
	Description string         `json:"description"`
	ImageURL    string         `json:"imageUrl,omitempty"`
	Status      string         `json:"status"`
	Timestamp   string         `json:"timestamp"`
}

// ReportStore holds the incident tracker
type ReportStore struct {
	mu      sync.RWMutex
	reports []*MaintenanceReport
}

// NewReportStore creates an empty tracker
func NewReportStore() *ReportStore {
	return &ReportStore{}
}

// Create files a new report. Description is assumed pre-validated
// (non-blank) by the caller.
func (r *ReportStore) Create(reporter *identity.User, category, description, imageURL string) *MaintenanceReport {
	r.mu.Lock()
	defer r.mu.Unlock()

	report := &MaintenanceReport{
		ID:          uuid.New().String(),
		Reporter:    reporter,
		Category:    category,
		Description: strings.TrimSpace(description),
		ImageURL:    imageURL,
		Status:      ReportReported,
		Timestamp:   "Ahora mismo",
	}
	r.reports = append([]*MaintenanceReport{report}, r.reports...)
	return report
}

// Resolve marks a report resolved. Admin only; resolving an already
// resolved report is a no-op.
func (r *ReportStore) Resolve(id string, actor *identity.User) (*MaintenanceReport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	report, err := r.findLocked(id)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() {
		return nil, ErrNotAdmin
	}

	report.Status = ReportResolved
	return report, nil
}

// Reports returns the tracker contents, newest first
func (r *ReportStore) Reports() []*MaintenanceReport {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reports := make([]*MaintenanceReport, len(r.reports))
	copy(reports, r.reports)
	return reports
}

// seed installs prebuilt reports, keeping the given order.
func (r *ReportStore) seed(reports []*MaintenanceReport) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.reports = reports
}

// findLocked returns the report with the given id. Must be called with mu held.
func (r *ReportStore) findLocked(id string) (*MaintenanceReport, error) {
	for _, rep := range r.reports {
		if rep.ID == id {
			return rep, nil
		}
	}
	return nil, ErrNotFound
}
