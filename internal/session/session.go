// ABOUTME: Session facade exposing identity and conversation operations to all views
// ABOUTME: Memoizes the active user's unread total keyed on the conversation revision

package session

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/rinconada/ceibas-hub/internal/chat"
	"github.com/rinconada/ceibas-hub/internal/identity"
)

// ErrSameParticipant is returned when a message is sent to its own sender
var ErrSameParticipant = errors.New("sender and recipient must be distinct users")

// ErrNoActiveUser is returned for operations that need a logged-in user
var ErrNoActiveUser = errors.New("no active user")

// Session is the single shared state object behind every feature view.
// It is constructed once at startup and injected into consumers; a
// multi-tenant deployment would scope one instance per logical session.
type Session struct {
	identity *identity.Registry
	chat     *chat.Store
	logger   *slog.Logger

	// unread memo, keyed on (conversation revision, user id)
	memoMu       sync.Mutex
	memoRevision uint64
	memoUserID   string
	memoTotal    int
	memoValid    bool
}

// New creates the facade over an identity registry and conversation store
func New(reg *identity.Registry, conversations *chat.Store, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		identity: reg,
		chat:     conversations,
		logger:   logger.With("component", "session"),
	}
}

// Initialize loads both sub-stores from persistence
func (s *Session) Initialize() {
	s.identity.Initialize()
	s.chat.Initialize()
}

// Users returns the roster in creation order
func (s *Session) Users() []*identity.User {
	return s.identity.Users()
}

// ActiveUser returns the logged-in user, or nil when no session exists
func (s *Session) ActiveUser() *identity.User {
	return s.identity.ActiveUser()
}

// Lookup resolves a roster member by id
func (s *Session) Lookup(id string) (*identity.User, error) {
	return s.identity.Lookup(id)
}

// AddUser registers a resident and logs them in
func (s *Session) AddUser(name string, houseNumber int) *identity.User {
	return s.identity.AddUser(name, houseNumber)
}

// SetActiveUser switches the session to another roster member
func (s *Session) SetActiveUser(id string) (*identity.User, error) {
	return s.identity.SetActiveUser(id)
}

// Conversations returns a snapshot of the conversation table
func (s *Session) Conversations() map[string][]*chat.Message {
	return s.chat.Conversations()
}

// Conversation returns the messages of one conversation in order
func (s *Session) Conversation(conversationID string) []*chat.Message {
	return s.chat.Conversation(conversationID)
}

// OpenConversation ensures a conversation between two users exists,
// adding the starting notice when it is first created. Returns the
// conversation id.
func (s *Session) OpenConversation(from, to *identity.User, notice string) (string, error) {
	if from == nil {
		return "", ErrNoActiveUser
	}
	if to == nil || from.ID == to.ID {
		return "", ErrSameParticipant
	}

	conversationID := chat.ConversationID(from.ID, to.ID)
	if !s.chat.Has(conversationID) && notice != "" {
		s.chat.AddSystemMessage(conversationID, notice)
	}
	return conversationID, nil
}

// SendMessage appends a message between two distinct users. Sending
// from inside a conversation implies the sender has seen it, so the
// conversation is also marked read for the sender.
func (s *Session) SendMessage(from, to *identity.User, text string) (*chat.Message, error) {
	if from == nil {
		return nil, ErrNoActiveUser
	}
	if to == nil || from.ID == to.ID {
		return nil, ErrSameParticipant
	}

	s.chat.MarkConversationRead(chat.ConversationID(from.ID, to.ID), from.ID)
	return s.chat.SendMessage(from, to, text), nil
}

// MarkConversationRead records that a user has seen every message in a conversation
func (s *Session) MarkConversationRead(conversationID, userID string) {
	s.chat.MarkConversationRead(conversationID, userID)
}

// UnreadTotal returns the active user's unread message count across all
// their conversations, memoized until the conversation table changes or
// the session switches users. Zero when no user is active.
func (s *Session) UnreadTotal() int {
	user := s.identity.ActiveUser()
	if user == nil {
		return 0
	}

	s.memoMu.Lock()
	defer s.memoMu.Unlock()

	revision := s.chat.Revision()
	if s.memoValid && s.memoRevision == revision && s.memoUserID == user.ID {
		return s.memoTotal
	}

	total := s.chat.UnreadTotal(user.ID)
	s.memoRevision = revision
	s.memoUserID = user.ID
	s.memoTotal = total
	s.memoValid = true

	s.logger.Debug("unread total recomputed", "user_id", user.ID, "revision", revision, "total", total)
	return total
}
