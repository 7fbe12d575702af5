// ABOUTME: Direct messaging endpoints over the conversation store
// ABOUTME: Sending to a fresh recipient creates the conversation with its starting notice

package web

import (
	"fmt"
	"net/http"
	"strings"
)

type sendMessageRequest struct {
	FromID string `json:"fromId"`
	ToID   string `json:"toId"`
	Text   string `json:"text"`
}

type markReadRequest struct {
	UserID string `json:"userId"`
}

func (s *Server) handleListConversations(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.session.Conversations())
}

func (s *Server) handleGetConversation(w http.ResponseWriter, r *http.Request) {
	messages := s.session.Conversation(r.PathValue("id"))
	s.writeJSON(w, http.StatusOK, messages)
}

func (s *Server) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	var req sendMessageRequest
	if err := decodeJSON(r, &req); err != nil {
		s.sendJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		s.sendJSONError(w, http.StatusBadRequest, "text is required")
		return
	}

	from, reason := s.actingUser(req.FromID)
	if from == nil {
		s.sendJSONError(w, http.StatusBadRequest, reason)
		return
	}
	to, err := s.session.Lookup(req.ToID)
	if err != nil {
		s.sendJSONError(w, http.StatusNotFound, "unknown recipient")
		return
	}

	notice := fmt.Sprintf("Iniciaste una conversación con %s.", to.Name)
	if _, err := s.session.OpenConversation(from, to, notice); err != nil {
		s.sendJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	message, err := s.session.SendMessage(from, to, req.Text)
	if err != nil {
		s.sendJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.writeJSON(w, http.StatusCreated, message)
}

func (s *Server) handleMarkRead(w http.ResponseWriter, r *http.Request) {
	var req markReadRequest
	if err := decodeJSON(r, &req); err != nil {
		s.sendJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	user, reason := s.actingUser(req.UserID)
	if user == nil {
		s.sendJSONError(w, http.StatusBadRequest, reason)
		return
	}

	s.session.MarkConversationRead(r.PathValue("id"), user.ID)
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleUnread(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]int{"unread": s.session.UnreadTotal()})
}
