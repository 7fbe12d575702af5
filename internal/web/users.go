// ABOUTME: Roster and login endpoints
// ABOUTME: Registration logs the new resident in immediately

package web

import (
	"net/http"
	"strings"
)

type addUserRequest struct {
	Name        string `json:"name"`
	HouseNumber int    `json:"houseNumber"`
}

type setActiveUserRequest struct {
	UserID string `json:"userId"`
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.session.Users())
}

func (s *Server) handleAddUser(w http.ResponseWriter, r *http.Request) {
	var req addUserRequest
	if err := decodeJSON(r, &req); err != nil {
		s.sendJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		s.sendJSONError(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.HouseNumber <= 0 {
		s.sendJSONError(w, http.StatusBadRequest, "houseNumber must be positive")
		return
	}

	user := s.session.AddUser(req.Name, req.HouseNumber)
	s.writeJSON(w, http.StatusCreated, user)
}

func (s *Server) handleActiveUser(w http.ResponseWriter, r *http.Request) {
	user := s.session.ActiveUser()
	if user == nil {
		s.sendJSONError(w, http.StatusNotFound, "no active user")
		return
	}
	s.writeJSON(w, http.StatusOK, user)
}

func (s *Server) handleSetActiveUser(w http.ResponseWriter, r *http.Request) {
	var req setActiveUserRequest
	if err := decodeJSON(r, &req); err != nil {
		s.sendJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.UserID == "" {
		s.sendJSONError(w, http.StatusBadRequest, "userId is required")
		return
	}

	user, err := s.session.SetActiveUser(req.UserID)
	if err != nil {
		s.sendJSONError(w, http.StatusNotFound, "unknown user")
		return
	}
	s.writeJSON(w, http.StatusOK, user)
}
