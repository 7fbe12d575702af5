// ABOUTME: Tests for message JSON encoding
// ABOUTME: Verifies the system/user sender variant and legacy readBy handling

package chat

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rinconada/ceibas-hub/internal/identity"
)

func TestMessageJSON_UserSender(t *testing.T) {
	msg := &Message{
		ID:        "msg1",
		Sender:    &identity.User{ID: "user2", Name: "Carlos Pérez", HouseNumber: 12, Role: identity.RoleUser},
		Text:      "Hola",
		Timestamp: "14:05",
		ReadBy:    []string{"user2"},
	}

	data, err := json.Marshal(msg)
	require.NoError(t, err)

	var decoded Message
	require.NoError(t, json.Unmarshal(data, &decoded))

	require.NotNil(t, decoded.Sender)
	assert.Equal(t, "user2", decoded.Sender.ID)
	assert.Equal(t, "Hola", decoded.Text)
	assert.Equal(t, []string{"user2"}, decoded.ReadBy)
}

func TestMessageJSON_SystemSenderLiteral(t *testing.T) {
	msg := &Message{ID: "sys1", Text: "Conversación iniciada.", Timestamp: "09:30", ReadBy: []string{}}

	data, err := json.Marshal(msg)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"sender":"system"`)

	var decoded Message
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, decoded.IsSystem())
	assert.NotNil(t, decoded.ReadBy)
	assert.Empty(t, decoded.ReadBy)
}

func TestMessageJSON_ReadByNeverNull(t *testing.T) {
	msg := &Message{ID: "msg1", Sender: &identity.User{ID: "user1"}, Text: "hola"}

	data, err := json.Marshal(msg)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"readBy":[]`)
	assert.NotContains(t, string(data), `"readBy":null`)
}

func TestMessageJSON_LegacyMessageWithoutReadBy(t *testing.T) {
	legacy := `{"id":"msg1","sender":{"id":"user2","name":"Carlos Pérez","houseNumber":12,"avatarUrl":"","role":"user"},"text":"Hola","timestamp":"10:00"}`

	var decoded Message
	require.NoError(t, json.Unmarshal([]byte(legacy), &decoded))

	// nil marks the message as un-migrated
	assert.Nil(t, decoded.ReadBy)
	require.NotNil(t, decoded.Sender)
	assert.Equal(t, "user2", decoded.Sender.ID)
}

func TestMessageJSON_UnknownSenderLiteral(t *testing.T) {
	var decoded Message
	err := json.Unmarshal([]byte(`{"id":"m","sender":"ghost","text":"","timestamp":""}`), &decoded)
	require.Error(t, err)
}

func TestConversationID_Symmetric(t *testing.T) {
	assert.Equal(t, ConversationID("user2", "user3"), ConversationID("user3", "user2"))
	assert.Equal(t, "user2:user3", ConversationID("user3", "user2"))
}
