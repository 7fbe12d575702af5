// ABOUTME: Tests for the session facade
// ABOUTME: Covers unread memoization, send semantics, and multi-user conversation flows

package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rinconada/ceibas-hub/internal/blobstore"
	"github.com/rinconada/ceibas-hub/internal/chat"
	"github.com/rinconada/ceibas-hub/internal/identity"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	blobs := blobstore.NewMemoryStore()
	s := New(identity.NewRegistry(blobs, nil), chat.NewStore(blobs, nil), nil)
	s.Initialize()
	return s
}

func mustLookup(t *testing.T, s *Session, id string) *identity.User {
	t.Helper()
	u, err := s.Lookup(id)
	require.NoError(t, err)
	return u
}

func TestInitialize_SeedsAndActivatesAdmin(t *testing.T) {
	s := newTestSession(t)

	assert.Len(t, s.Users(), 6)
	active := s.ActiveUser()
	require.NotNil(t, active)
	assert.True(t, active.IsAdmin())
}

func TestSendMessage_ChatScenario(t *testing.T) {
	s := newTestSession(t)
	carlos := mustLookup(t, s, "user2")
	ana := mustLookup(t, s, "user3")

	_, err := s.SendMessage(carlos, ana, "Hola")
	require.NoError(t, err)
	_, err = s.SendMessage(ana, carlos, "Hola de vuelta")
	require.NoError(t, err)

	conv := s.Conversation(chat.ConversationID(carlos.ID, ana.ID))
	require.Len(t, conv, 2)
	assert.Equal(t, "Hola", conv[0].Text)
	assert.Equal(t, "Hola de vuelta", conv[1].Text)

	// Carlos hasn't read Ana's reply
	_, err = s.SetActiveUser(carlos.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, s.UnreadTotal())

	// Ana replied from inside the conversation, so nothing is unread for her
	_, err = s.SetActiveUser(ana.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, s.UnreadTotal())
}

func TestSendMessage_RejectsSameParticipant(t *testing.T) {
	s := newTestSession(t)
	carlos := mustLookup(t, s, "user2")

	_, err := s.SendMessage(carlos, carlos, "hola yo")
	assert.ErrorIs(t, err, ErrSameParticipant)

	_, err = s.SendMessage(nil, carlos, "hola")
	assert.ErrorIs(t, err, ErrNoActiveUser)
}

func TestOpenConversation_AddsNoticeOnce(t *testing.T) {
	s := newTestSession(t)
	carlos := mustLookup(t, s, "user2")
	ana := mustLookup(t, s, "user3")

	id, err := s.OpenConversation(carlos, ana, "Iniciaste una conversación con Ana Gómez.")
	require.NoError(t, err)

	conv := s.Conversation(id)
	require.Len(t, conv, 1)
	assert.True(t, conv[0].IsSystem())

	// Re-opening an existing conversation adds nothing
	_, err = s.OpenConversation(ana, carlos, "Iniciaste una conversación con Carlos Pérez.")
	require.NoError(t, err)
	assert.Len(t, s.Conversation(id), 1)
}

func TestUnreadTotal_MemoizedUntilMutation(t *testing.T) {
	s := newTestSession(t)
	carlos := mustLookup(t, s, "user2")
	ana := mustLookup(t, s, "user3")

	_, err := s.SetActiveUser(ana.ID)
	require.NoError(t, err)

	_, err = s.SendMessage(carlos, ana, "Hola")
	require.NoError(t, err)

	assert.Equal(t, 1, s.UnreadTotal())
	// Second call hits the memo (same revision, same user)
	assert.Equal(t, 1, s.UnreadTotal())

	// A mutation invalidates
	_, err = s.SendMessage(carlos, ana, "¿Estás ahí?")
	require.NoError(t, err)
	assert.Equal(t, 2, s.UnreadTotal())

	// Reading invalidates too
	s.MarkConversationRead(chat.ConversationID(carlos.ID, ana.ID), ana.ID)
	assert.Equal(t, 0, s.UnreadTotal())
}

func TestUnreadTotal_MemoKeyedOnUser(t *testing.T) {
	s := newTestSession(t)
	carlos := mustLookup(t, s, "user2")
	ana := mustLookup(t, s, "user3")

	_, err := s.SendMessage(carlos, ana, "Hola")
	require.NoError(t, err)

	_, err = s.SetActiveUser(ana.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, s.UnreadTotal())

	// Same revision, different user: memo must not leak across users
	_, err = s.SetActiveUser(carlos.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, s.UnreadTotal())
}

func TestAddUser_ThroughFacade(t *testing.T) {
	s := newTestSession(t)

	user := s.AddUser("Test Neighbor", 99)
	assert.Len(t, s.Users(), 7)
	assert.Equal(t, identity.RoleUser, user.Role)

	active := s.ActiveUser()
	require.NotNil(t, active)
	assert.Equal(t, user.ID, active.ID)
}

func TestFacade_SurvivesStorageLoss(t *testing.T) {
	// A store that always fails: the facade must still initialize with
	// seed data and keep all operations working in memory.
	s := New(identity.NewRegistry(failingStore{}, nil), chat.NewStore(failingStore{}, nil), nil)
	s.Initialize()

	require.Len(t, s.Users(), 6)
	carlos := mustLookup(t, s, "user2")
	ana := mustLookup(t, s, "user3")

	_, err := s.SendMessage(carlos, ana, "Hola")
	require.NoError(t, err)
	assert.Len(t, s.Conversation(chat.ConversationID(carlos.ID, ana.ID)), 1)
}

// failingStore simulates completely unavailable storage
type failingStore struct{}

func (failingStore) Load(string) (string, bool) { return "", false }
func (failingStore) Save(string, string)        {}
func (failingStore) Remove(string)              {}
