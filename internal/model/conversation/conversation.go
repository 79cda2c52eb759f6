package conversation

import "time"

// Roles a turn can carry. Anything else is ignored when building the
// upstream history.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Conversation captures a transient anonymous visit to the assistant.
type Conversation struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

// Turn persists individual exchanges for history replay.
type Turn struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversationId"`
	Role           string    `json:"role"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"createdAt"`
}
