// ABOUTME: Visitor access endpoints
// ABOUTME: Registration returns the generated access code and QR link

package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/rinconada/ceibas-hub/internal/community"
)

type registerVisitorRequest struct {
	Name      string `json:"name"`
	VisitDate string `json:"visitDate"`
}

func (s *Server) handleListVisitors(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.stores.Visitors.Visitors())
}

func (s *Server) handleRegisterVisitor(w http.ResponseWriter, r *http.Request) {
	var req registerVisitorRequest
	if err := decodeJSON(r, &req); err != nil {
		s.sendJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.VisitDate) == "" {
		s.sendJSONError(w, http.StatusBadRequest, "name and visitDate are required")
		return
	}

	visitor := s.stores.Visitors.Register(req.Name, req.VisitDate)
	s.writeJSON(w, http.StatusCreated, visitor)
}

func (s *Server) handleVisitorArrived(w http.ResponseWriter, r *http.Request) {
	visitor, err := s.stores.Visitors.MarkArrived(r.PathValue("id"))
	if err != nil {
		s.visitorError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, visitor)
}

func (s *Server) handleVisitorCancel(w http.ResponseWriter, r *http.Request) {
	visitor, err := s.stores.Visitors.Cancel(r.PathValue("id"))
	if err != nil {
		s.visitorError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, visitor)
}

func (s *Server) visitorError(w http.ResponseWriter, err error) {
	if errors.Is(err, community.ErrNotFound) {
		s.sendJSONError(w, http.StatusNotFound, "visitor not found")
		return
	}
	s.sendJSONError(w, http.StatusConflict, err.Error())
}
