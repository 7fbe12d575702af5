// ABOUTME: Maintenance report endpoints
// ABOUTME: Resolution is restricted to admins

package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/rinconada/ceibas-hub/internal/community"
)

type createReportRequest struct {
	UserID      string `json:"userId"`
	Category    string `json:"category"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

type resolveReportRequest struct {
	UserID string `json:"userId"`
}

func (s *Server) handleListReports(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.stores.Reports.Reports())
}

func (s *Server) handleCreateReport(w http.ResponseWriter, r *http.Request) {
	var req createReportRequest
	if err := decodeJSON(r, &req); err != nil {
		s.sendJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Category) == "" || strings.TrimSpace(req.Description) == "" {
		s.sendJSONError(w, http.StatusBadRequest, "category and description are required")
		return
	}

	reporter, reason := s.actingUser(req.UserID)
	if reporter == nil {
		s.sendJSONError(w, http.StatusBadRequest, reason)
		return
	}

	report := s.stores.Reports.Create(reporter, req.Category, req.Description, req.ImageURL)
	s.writeJSON(w, http.StatusCreated, report)
}

func (s *Server) handleResolveReport(w http.ResponseWriter, r *http.Request) {
	var req resolveReportRequest
	if err := decodeJSON(r, &req); err != nil {
		s.sendJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	actor, reason := s.actingUser(req.UserID)
	if actor == nil {
		s.sendJSONError(w, http.StatusBadRequest, reason)
		return
	}

	resolved, err := s.stores.Reports.Resolve(r.PathValue("id"), actor)
	if err != nil {
		switch {
		case errors.Is(err, community.ErrNotFound):
			s.sendJSONError(w, http.StatusNotFound, "report not found")
		case errors.Is(err, community.ErrNotAdmin):
			s.sendJSONError(w, http.StatusForbidden, err.Error())
		default:
			s.sendJSONError(w, http.StatusConflict, err.Error())
		}
		return
	}
	s.writeJSON(w, http.StatusOK, resolved)
}
