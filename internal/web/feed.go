// ABOUTME: Community feed endpoints
// ABOUTME: Post content is Markdown; list responses carry a rendered HTML copy

package web

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/rinconada/ceibas-hub/internal/community"
)

var markdown = goldmark.New()

type addPostRequest struct {
	UserID  string `json:"userId"`
	Content string `json:"content"`
}

type addCommentRequest struct {
	UserID  string `json:"userId"`
	Content string `json:"content"`
}

// postView is a feed post plus its content rendered to HTML
type postView struct {
	*community.Post
	ContentHTML string `json:"contentHtml"`
}

// renderMarkdown converts Markdown to HTML, falling back to the raw
// text when conversion fails.
func (s *Server) renderMarkdown(content string) string {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(content), &buf); err != nil {
		s.logger.Warn("markdown rendering failed", "error", err)
		return content
	}
	return buf.String()
}

func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	posts := s.stores.Feed.Posts()
	views := make([]postView, 0, len(posts))
	for _, p := range posts {
		views = append(views, postView{Post: p, ContentHTML: s.renderMarkdown(p.Content)})
	}
	s.writeJSON(w, http.StatusOK, views)
}

func (s *Server) handleAddPost(w http.ResponseWriter, r *http.Request) {
	var req addPostRequest
	if err := decodeJSON(r, &req); err != nil {
		s.sendJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		s.sendJSONError(w, http.StatusBadRequest, "content is required")
		return
	}

	author, reason := s.actingUser(req.UserID)
	if author == nil {
		s.sendJSONError(w, http.StatusBadRequest, reason)
		return
	}

	post := s.stores.Feed.AddPost(author, req.Content)
	s.writeJSON(w, http.StatusCreated, postView{Post: post, ContentHTML: s.renderMarkdown(post.Content)})
}

func (s *Server) handleLikePost(w http.ResponseWriter, r *http.Request) {
	post, err := s.stores.Feed.LikePost(r.PathValue("id"))
	if err != nil {
		s.sendJSONError(w, http.StatusNotFound, "post not found")
		return
	}
	s.writeJSON(w, http.StatusOK, post)
}

func (s *Server) handleAddComment(w http.ResponseWriter, r *http.Request) {
	var req addCommentRequest
	if err := decodeJSON(r, &req); err != nil {
		s.sendJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		s.sendJSONError(w, http.StatusBadRequest, "content is required")
		return
	}

	author, reason := s.actingUser(req.UserID)
	if author == nil {
		s.sendJSONError(w, http.StatusBadRequest, reason)
		return
	}

	comment, err := s.stores.Feed.AddComment(r.PathValue("id"), author, req.Content)
	if err != nil {
		s.sendJSONError(w, http.StatusNotFound, "post not found")
		return
	}
	s.writeJSON(w, http.StatusCreated, comment)
}
