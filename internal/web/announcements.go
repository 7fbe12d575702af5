// ABOUTME: Announcement drafting endpoint backed by the generative announcer
// ABOUTME: Always returns 200 with text; generation failures surface as fallback copy

package web

import (
	"net/http"
	"strings"
)

type generateAnnouncementRequest struct {
	Topic string `json:"topic"`
}

func (s *Server) handleGenerateAnnouncement(w http.ResponseWriter, r *http.Request) {
	var req generateAnnouncementRequest
	if err := decodeJSON(r, &req); err != nil {
		s.sendJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Topic) == "" {
		s.sendJSONError(w, http.StatusBadRequest, "topic is required")
		return
	}

	text := s.announcer.Generate(r.Context(), req.Topic)
	s.writeJSON(w, http.StatusOK, map[string]string{"announcement": text})
}
