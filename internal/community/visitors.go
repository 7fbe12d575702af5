// ABOUTME: Visitor access records with generated access codes and QR links
// ABOUTME: Codes and QR references are immutable after registration

package community

import (
	"sync"

	"github.com/google/uuid"

	"github.com/rinconada/ceibas-hub/internal/access"
)

// Visitor statuses. Departed is reachable only through seed data;
// arrived and cancelled are terminal.
const (
	VisitorPending   = "pending"
	VisitorArrived   = "arrived"
	VisitorDeparted  = "departed"
	VisitorCancelled = "cancelled"
)

// Visitor is an announced visit with its gate credentials
type Visitor struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	VisitDate  string `json:"visitDate"`
	AccessCode string `json:"accessCode"`
	QRUrl      string `json:"qrUrl"`
	Status     string `json:"status"`
}

// VisitorStore holds visitor access records
type VisitorStore struct {
	mu       sync.RWMutex
	visitors []*Visitor
	qr       *access.QRLinker
}

// NewVisitorStore creates an empty store issuing QR links via the given linker
func NewVisitorStore(qr *access.QRLinker) *VisitorStore {
	return &VisitorStore{qr: qr}
}

// Register announces a visit, generating the access code and QR link.
// Both are immutable afterwards.
func (v *VisitorStore) Register(name, visitDate string) *Visitor {
	v.mu.Lock()
	defer v.mu.Unlock()

	code := access.NewCode()
	visitor := &Visitor{
		ID:         uuid.New().String(),
		Name:       name,
		VisitDate:  visitDate,
		AccessCode: code,
		QRUrl:      v.qr.ImageURL(access.Payload(name, visitDate, code)),
		Status:     VisitorPending,
	}
	v.visitors = append([]*Visitor{visitor}, v.visitors...)
	return visitor
}

// MarkArrived records that a pending visitor arrived at the gate
func (v *VisitorStore) MarkArrived(id string) (*Visitor, error) {
	return v.transition(id, VisitorArrived)
}

// Cancel withdraws a pending visit
func (v *VisitorStore) Cancel(id string) (*Visitor, error) {
	return v.transition(id, VisitorCancelled)
}

// transition moves a visitor out of pending into a terminal status
func (v *VisitorStore) transition(id, status string) (*Visitor, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	visitor, err := v.findLocked(id)
	if err != nil {
		return nil, err
	}
	if visitor.Status != VisitorPending {
		return nil, ErrNotPending
	}

	visitor.Status = status
	return visitor, nil
}

// Visitors returns all records, newest first
func (v *VisitorStore) Visitors() []*Visitor {
	v.mu.RLock()
	defer v.mu.RUnlock()

	visitors := make([]*Visitor, len(v.visitors))
	copy(visitors, v.visitors)
	return visitors
}

// seed installs prebuilt records, keeping the given order.
func (v *VisitorStore) seed(visitors []*Visitor) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.visitors = visitors
}

// findLocked returns the visitor with the given id. Must be called with mu held.
func (v *VisitorStore) findLocked(id string) (*Visitor, error) {
	for _, vis := range v.visitors {
		if vis.ID == id {
			return vis, nil
		}
	}
	return nil, ErrNotFound
}
