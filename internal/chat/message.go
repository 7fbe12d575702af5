// ABOUTME: Message type with the system-or-user sender variant
// ABOUTME: Custom JSON keeps the legacy wire shape, including messages without readBy

package chat

import (
	"encoding/json"
	"fmt"

	"github.com/rinconada/ceibas-hub/internal/identity"
)

// senderSystem is the wire literal marking a non-attributable message
const senderSystem = "system"

// Message is a single chat message. A nil Sender denotes a system
// notice (e.g. "conversation started"), which is exempt from unread
// accounting. For user messages the sender's id is in ReadBy from
// creation: the sender has implicitly read their own message.
//
// ReadBy is nil only for legacy messages loaded from storage that
// predate read tracking; the migration pass backfills it.
type Message struct {
	ID        string
	Sender    *identity.User
	Text      string
	Timestamp string
	ReadBy    []string
}

// IsSystem reports whether this is a system notice
func (m *Message) IsSystem() bool {
	return m.Sender == nil
}

// ReadByUser reports whether the given user id is in the read set
func (m *Message) ReadByUser(userID string) bool {
	for _, id := range m.ReadBy {
		if id == userID {
			return true
		}
	}
	return false
}

// messageJSON is the wire shape. The sender field is either the literal
// string "system" or a user object; readBy may be absent in legacy data.
type messageJSON struct {
	ID        string          `json:"id"`
	Sender    json.RawMessage `json:"sender"`
	Text      string          `json:"text"`
	Timestamp string          `json:"timestamp"`
	ReadBy    []string        `json:"readBy"`
}

// MarshalJSON emits the legacy wire shape. ReadBy is always written as
// an array, never null, so marshaled data is already migrated.
func (m *Message) MarshalJSON() ([]byte, error) {
	var sender json.RawMessage
	if m.Sender == nil {
		sender = json.RawMessage(`"` + senderSystem + `"`)
	} else {
		data, err := json.Marshal(m.Sender)
		if err != nil {
			return nil, fmt.Errorf("marshaling sender: %w", err)
		}
		sender = data
	}

	readBy := m.ReadBy
	if readBy == nil {
		readBy = []string{}
	}

	return json.Marshal(&messageJSON{
		ID:        m.ID,
		Sender:    sender,
		Text:      m.Text,
		Timestamp: m.Timestamp,
		ReadBy:    readBy,
	})
}

// UnmarshalJSON accepts both the "system" sender literal and a user
// object. A missing readBy field is preserved as nil so the migration
// pass can detect legacy messages.
func (m *Message) UnmarshalJSON(data []byte) error {
	var raw messageJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	m.ID = raw.ID
	m.Text = raw.Text
	m.Timestamp = raw.Timestamp
	m.ReadBy = raw.ReadBy
	m.Sender = nil

	var literal string
	if err := json.Unmarshal(raw.Sender, &literal); err == nil {
		if literal != senderSystem {
			return fmt.Errorf("unknown sender literal %q", literal)
		}
		return nil
	}

	var user identity.User
	if err := json.Unmarshal(raw.Sender, &user); err != nil {
		return fmt.Errorf("unmarshaling sender: %w", err)
	}
	m.Sender = &user
	return nil
}

// clone returns a copy of the message safe to hand to callers
func (m *Message) clone() *Message {
	c := *m
	if m.ReadBy != nil {
		c.ReadBy = make([]string, len(m.ReadBy))
		copy(c.ReadBy, m.ReadBy)
	}
	return &c
}
