// ABOUTME: Conversation table with message append, read tracking, and unread aggregation
// ABOUTME: Loads from the blob store with an idempotent readBy migration pass

package chat

import (
	"encoding/json"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rinconada/ceibas-hub/internal/blobstore"
	"github.com/rinconada/ceibas-hub/internal/identity"
)

// conversationsKey is the blob under which the whole table is persisted:
// a JSON object mapping conversation id to an array of messages.
const conversationsKey = "community.conversations"

// idSeparator joins the two sorted participant ids into a conversation id.
// Colon is safe: generated user ids (uuid) never contain it.
const idSeparator = ":"

// ConversationID derives the symmetric key for a pair of users: the two
// ids sorted lexicographically and joined, so ConversationID(a, b) ==
// ConversationID(b, a).
func ConversationID(a, b string) string {
	ids := []string{a, b}
	sort.Strings(ids)
	return ids[0] + idSeparator + ids[1]
}

// participants splits a conversation id back into its two user ids
func participants(conversationID string) (string, string) {
	a, b, _ := strings.Cut(conversationID, idSeparator)
	return a, b
}

// Store is the conversation table: per-pair message logs keyed by
// conversation id. Entries are created lazily on first message and never
// deleted. Every mutation bumps the revision counter and writes the
// whole table through to the blob store.
type Store struct {
	mu     sync.RWMutex
	store  blobstore.Store
	logger *slog.Logger

	conversations map[string][]*Message
	revision      uint64
}

// NewStore creates a conversation store backed by the given blob store
func NewStore(store blobstore.Store, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		store:         store,
		logger:        logger.With("component", "chat"),
		conversations: make(map[string][]*Message),
	}
}

// Initialize loads the persisted conversation table and runs the readBy
// migration pass. It never fails: corrupt or absent data degrades to an
// empty table.
func (s *Store) Initialize() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.conversations = make(map[string][]*Message)

	raw, ok := s.store.Load(conversationsKey)
	if !ok {
		s.logger.Info("no stored conversations, starting empty")
		return
	}

	var table map[string][]*Message
	if err := json.Unmarshal([]byte(raw), &table); err != nil {
		s.logger.Warn("stored conversations unreadable, starting empty", "error", err)
		return
	}
	s.conversations = table

	if migrated := s.migrateLocked(); migrated > 0 {
		s.logger.Info("migrated legacy messages", "count", migrated)
		s.persistLocked()
	}

	s.logger.Info("conversation store initialized", "conversations", len(s.conversations))
}

// migrateLocked backfills readBy on legacy messages: the singleton set
// of the sender for user messages, the empty set for system notices.
// Idempotent: already-migrated messages carry a non-nil set and are
// left untouched. Must be called with mu held.
func (s *Store) migrateLocked() int {
	migrated := 0
	for _, messages := range s.conversations {
		for _, m := range messages {
			if m.ReadBy != nil {
				continue
			}
			if m.Sender == nil {
				m.ReadBy = []string{}
			} else {
				m.ReadBy = []string{m.Sender.ID}
			}
			migrated++
		}
	}
	return migrated
}

// SendMessage appends a message from one user to another, creating the
// conversation lazily. Preconditions (caller contract, not re-checked):
// text non-empty after trimming, from and to distinct users.
func (s *Store) SendMessage(from, to *identity.User, text string) *Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := &Message{
		ID:        uuid.New().String(),
		Sender:    from,
		Text:      strings.TrimSpace(text),
		Timestamp: formatTimestamp(time.Now()),
		ReadBy:    []string{from.ID},
	}

	conversationID := ConversationID(from.ID, to.ID)
	s.conversations[conversationID] = append(s.conversations[conversationID], msg)
	s.revision++
	s.persistLocked()

	s.logger.Debug("message sent",
		"conversation_id", conversationID,
		"message_id", msg.ID,
		"from", from.ID,
		"to", to.ID)

	return msg.clone()
}

// AddSystemMessage appends a non-attributable notice to a conversation,
// creating it if absent. System notices never count as unread.
func (s *Store) AddSystemMessage(conversationID, text string) *Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := &Message{
		ID:        uuid.New().String(),
		Sender:    nil,
		Text:      text,
		Timestamp: formatTimestamp(time.Now()),
		ReadBy:    []string{},
	}

	s.conversations[conversationID] = append(s.conversations[conversationID], msg)
	s.revision++
	s.persistLocked()

	return msg.clone()
}

// MarkConversationRead adds the user to the read set of every message in
// the conversation that doesn't already contain them. Idempotent; only
// persists (and bumps the revision) when at least one message changed.
func (s *Store) MarkConversationRead(conversationID, userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := 0
	for _, m := range s.conversations[conversationID] {
		if !m.ReadByUser(userID) {
			m.ReadBy = append(m.ReadBy, userID)
			changed++
		}
	}

	if changed > 0 {
		s.revision++
		s.persistLocked()
		s.logger.Debug("conversation marked read",
			"conversation_id", conversationID,
			"user_id", userID,
			"messages", changed)
	}
}

// Conversation returns a read-only copy of a conversation's messages in
// insertion order. Absent conversations yield an empty sequence.
func (s *Store) Conversation(conversationID string) []*Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	messages := s.conversations[conversationID]
	out := make([]*Message, len(messages))
	for i, m := range messages {
		out[i] = m.clone()
	}
	return out
}

// Conversations returns a snapshot of the whole table
func (s *Store) Conversations() map[string][]*Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string][]*Message, len(s.conversations))
	for id, messages := range s.conversations {
		copied := make([]*Message, len(messages))
		for i, m := range messages {
			copied[i] = m.clone()
		}
		out[id] = copied
	}
	return out
}

// Has reports whether a conversation exists
func (s *Store) Has(conversationID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.conversations[conversationID]
	return ok
}

// UnreadTotal counts, across every conversation the user participates
// in, the messages they haven't read. The user's own messages and
// system notices never count. O(total messages); memoization happens in
// the session facade keyed on Revision.
func (s *Store) UnreadTotal(userID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for conversationID, messages := range s.conversations {
		a, b := participants(conversationID)
		if a != userID && b != userID {
			continue
		}
		for _, m := range messages {
			if m.Sender == nil || m.Sender.ID == userID {
				continue
			}
			if !m.ReadByUser(userID) {
				total++
			}
		}
	}
	return total
}

// Revision returns the mutation counter. Any change to the table bumps
// it, which is what invalidates memoized aggregates upstream.
func (s *Store) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.revision
}

// persistLocked writes the whole table through to the blob store.
// Must be called with mu held.
func (s *Store) persistLocked() {
	data, err := json.Marshal(s.conversations)
	if err != nil {
		s.logger.Warn("marshaling conversations failed", "error", err)
		return
	}
	s.store.Save(conversationsKey, string(data))
}

// formatTimestamp renders a display-only timestamp at minute resolution.
// Timestamps are never used for ordering; insertion order is chronological order.
func formatTimestamp(t time.Time) string {
	return t.Format("15:04")
}
