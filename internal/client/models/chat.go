package models

// Role identifies the author of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatMessage is a single line of a conversation transcript. Ordering within
// a displayed transcript is creation-timestamp order.
type ChatMessage struct {
	Role           Role      `json:"role"`
	Content        string    `json:"content"`
	CreatedAt      Timestamp `json:"created_at"`
	ConversationID string    `json:"conversation_id,omitempty"`
}

// Conversation is a server-tracked logical thread of chat messages. The
// client never assigns conversation identifiers itself.
type Conversation struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt Timestamp `json:"created_at"`
	UpdatedAt Timestamp `json:"updated_at"`
}

// ChatRequest is the send-message payload. A missing ConversationID makes
// the server open a new thread and return its id.
type ChatRequest struct {
	DeviceID       string `json:"device_id"`
	Message        string `json:"message"`
	Language       string `json:"language"`
	ConversationID string `json:"conversation_id,omitempty"`
}

// ChatResponse is the server's reply to a ChatRequest. When
// RequiresSubscription is set the Response text is paywall messaging, not an
// assistant reply, and must not be appended to the transcript.
type ChatResponse struct {
	Response             string `json:"response"`
	ConversationID       string `json:"conversation_id,omitempty"`
	RequiresSubscription bool   `json:"requires_subscription"`
}
