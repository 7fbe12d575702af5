// ABOUTME: Package-delivery mutual-aid board with its acceptance state machine
// ABOUTME: Pending requests can be accepted by any neighbor except the requester

package community

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/rinconada/ceibas-hub/internal/identity"
)

// Package request statuses (user-facing, Spanish)
const (
	PackagePending   = "Pendiente"
	PackageAccepted  = "Aceptado"
	PackageCompleted = "Completado"
)

// Package board errors
var (
	ErrNotPending   = errors.New("request is not pending")
	ErrNotAccepted  = errors.New("request is not accepted")
	ErrOwnRequest   = errors.New("cannot help with your own request")
	ErrNotRequester = errors.New("only the requester can complete a request")
)

// PackageRequest is a plea for a neighbor to receive a delivery
type PackageRequest struct {
	ID           string         `json:"id"`
	Requester    *identity.User `json:"requester"`
	Carrier      string         `json:"carrier"`
	DeliveryTime string         `json:"deliveryTime"`
	Status       string         `json:"status"`
	Helper       *identity.User `json:"helper,omitempty"`
}

// PackageStore holds the mutual-aid board
type PackageStore struct {
	mu       sync.RWMutex
	requests []*PackageRequest
}

// NewPackageStore creates an empty board
func NewPackageStore() *PackageStore {
	return &PackageStore{}
}

// Create opens a new pending request
func (p *PackageStore) Create(requester *identity.User, carrier, deliveryTime string) *PackageRequest {
	p.mu.Lock()
	defer p.mu.Unlock()

	req := &PackageRequest{
		ID:           uuid.New().String(),
		Requester:    requester,
		Carrier:      carrier,
		DeliveryTime: deliveryTime,
		Status:       PackagePending,
	}
	p.requests = append([]*PackageRequest{req}, p.requests...)
	return req
}

// OfferHelp moves a pending request to accepted with the given helper.
// The requester cannot help with their own request.
func (p *PackageStore) OfferHelp(id string, helper *identity.User) (*PackageRequest, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	req, err := p.findLocked(id)
	if err != nil {
		return nil, err
	}
	if req.Status != PackagePending {
		return nil, ErrNotPending
	}
	if helper.ID == req.Requester.ID {
		return nil, ErrOwnRequest
	}

	req.Status = PackageAccepted
	req.Helper = helper
	return req, nil
}

// Complete moves an accepted request to completed. Only the original
// requester may confirm completion.
func (p *PackageStore) Complete(id string, actor *identity.User) (*PackageRequest, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	req, err := p.findLocked(id)
	if err != nil {
		return nil, err
	}
	if req.Status != PackageAccepted {
		return nil, ErrNotAccepted
	}
	if actor.ID != req.Requester.ID {
		return nil, ErrNotRequester
	}

	req.Status = PackageCompleted
	return req, nil
}

// Requests returns the board, newest first
func (p *PackageStore) Requests() []*PackageRequest {
	p.mu.RLock()
	defer p.mu.RUnlock()

	requests := make([]*PackageRequest, len(p.requests))
	copy(requests, p.requests)
	return requests
}

// seed installs prebuilt requests, keeping the given order.
func (p *PackageStore) seed(requests []*PackageRequest) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.requests = requests
}

// findLocked returns the request with the given id. Must be called with mu held.
func (p *PackageStore) findLocked(id string) (*PackageRequest, error) {
	for _, r := range p.requests {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, ErrNotFound
}
