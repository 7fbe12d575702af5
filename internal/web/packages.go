// ABOUTME: Package mutual-aid board endpoints
// ABOUTME: Maps the board's state-machine errors onto HTTP statuses

package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/rinconada/ceibas-hub/internal/community"
)

type createPackageRequest struct {
	UserID       string `json:"userId"`
	Carrier      string `json:"carrier"`
	DeliveryTime string `json:"deliveryTime"`
}

type packageActionRequest struct {
	UserID string `json:"userId"`
}

func (s *Server) handleListPackages(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.stores.Packages.Requests())
}

func (s *Server) handleCreatePackage(w http.ResponseWriter, r *http.Request) {
	var req createPackageRequest
	if err := decodeJSON(r, &req); err != nil {
		s.sendJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Carrier) == "" || strings.TrimSpace(req.DeliveryTime) == "" {
		s.sendJSONError(w, http.StatusBadRequest, "carrier and deliveryTime are required")
		return
	}

	requester, reason := s.actingUser(req.UserID)
	if requester == nil {
		s.sendJSONError(w, http.StatusBadRequest, reason)
		return
	}

	created := s.stores.Packages.Create(requester, req.Carrier, req.DeliveryTime)
	s.writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleOfferHelp(w http.ResponseWriter, r *http.Request) {
	var req packageActionRequest
	if err := decodeJSON(r, &req); err != nil {
		s.sendJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	helper, reason := s.actingUser(req.UserID)
	if helper == nil {
		s.sendJSONError(w, http.StatusBadRequest, reason)
		return
	}

	updated, err := s.stores.Packages.OfferHelp(r.PathValue("id"), helper)
	if err != nil {
		s.packageError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleCompletePackage(w http.ResponseWriter, r *http.Request) {
	var req packageActionRequest
	if err := decodeJSON(r, &req); err != nil {
		s.sendJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	actor, reason := s.actingUser(req.UserID)
	if actor == nil {
		s.sendJSONError(w, http.StatusBadRequest, reason)
		return
	}

	updated, err := s.stores.Packages.Complete(r.PathValue("id"), actor)
	if err != nil {
		s.packageError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, updated)
}

// packageError translates board errors into HTTP responses
func (s *Server) packageError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, community.ErrNotFound):
		s.sendJSONError(w, http.StatusNotFound, "request not found")
	case errors.Is(err, community.ErrOwnRequest), errors.Is(err, community.ErrNotRequester):
		s.sendJSONError(w, http.StatusForbidden, err.Error())
	default:
		s.sendJSONError(w, http.StatusConflict, err.Error())
	}
}
