// ABOUTME: HTTP JSON API surface over the session and feature stores
// ABOUTME: Owns the mux, route registration, and server lifecycle

package web

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/rinconada/ceibas-hub/internal/announce"
	"github.com/rinconada/ceibas-hub/internal/community"
	"github.com/rinconada/ceibas-hub/internal/identity"
	"github.com/rinconada/ceibas-hub/internal/session"
)

// Server exposes the community hub over HTTP
type Server struct {
	session   *session.Session
	stores    *community.Stores
	announcer announce.Announcer
	logger    *slog.Logger
	http      *http.Server
}

// New creates the API server listening on addr
func New(addr string, sess *session.Session, stores *community.Stores, announcer announce.Announcer, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		session:   sess,
		stores:    stores,
		announcer: announcer,
		logger:    logger.With("component", "web"),
	}

	mux := http.NewServeMux()
	s.registerRoutes(mux)
	s.http = &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	return s
}

// registerRoutes wires every endpoint onto the mux
func (s *Server) registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", s.handleHealth)

	mux.HandleFunc("GET /api/users", s.handleListUsers)
	mux.HandleFunc("POST /api/users", s.handleAddUser)
	mux.HandleFunc("GET /api/users/active", s.handleActiveUser)
	mux.HandleFunc("POST /api/users/active", s.handleSetActiveUser)

	mux.HandleFunc("GET /api/chat/conversations", s.handleListConversations)
	mux.HandleFunc("GET /api/chat/conversations/{id}", s.handleGetConversation)
	mux.HandleFunc("POST /api/chat/messages", s.handleSendMessage)
	mux.HandleFunc("POST /api/chat/conversations/{id}/read", s.handleMarkRead)
	mux.HandleFunc("GET /api/chat/unread", s.handleUnread)

	mux.HandleFunc("GET /api/feed", s.handleListPosts)
	mux.HandleFunc("POST /api/feed", s.handleAddPost)
	mux.HandleFunc("POST /api/feed/{id}/like", s.handleLikePost)
	mux.HandleFunc("POST /api/feed/{id}/comments", s.handleAddComment)

	mux.HandleFunc("GET /api/packages", s.handleListPackages)
	mux.HandleFunc("POST /api/packages", s.handleCreatePackage)
	mux.HandleFunc("POST /api/packages/{id}/help", s.handleOfferHelp)
	mux.HandleFunc("POST /api/packages/{id}/complete", s.handleCompletePackage)

	mux.HandleFunc("GET /api/reports", s.handleListReports)
	mux.HandleFunc("POST /api/reports", s.handleCreateReport)
	mux.HandleFunc("POST /api/reports/{id}/resolve", s.handleResolveReport)

	mux.HandleFunc("GET /api/visitors", s.handleListVisitors)
	mux.HandleFunc("POST /api/visitors", s.handleRegisterVisitor)
	mux.HandleFunc("POST /api/visitors/{id}/arrived", s.handleVisitorArrived)
	mux.HandleFunc("POST /api/visitors/{id}/cancel", s.handleVisitorCancel)

	mux.HandleFunc("POST /api/announcements/generate", s.handleGenerateAnnouncement)
}

// Handler returns the configured route handler, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Start serves HTTP until the listener closes
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("http server shutting down")
	return s.http.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeJSON writes a JSON response with the given status
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

// sendJSONError writes a JSON error response
func (s *Server) sendJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// decodeJSON parses a request body into v
func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// actingUser resolves the acting user: the given id when present,
// otherwise the session's active user. The string return carries the
// client-facing reason when resolution fails.
func (s *Server) actingUser(userID string) (*identity.User, string) {
	if userID != "" {
		u, err := s.session.Lookup(userID)
		if err != nil {
			return nil, "unknown user"
		}
		return u, ""
	}
	if u := s.session.ActiveUser(); u != nil {
		return u, ""
	}
	return nil, "no active user"
}
