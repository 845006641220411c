package types

// ChatRole identifies the author of a chat message
type ChatRole string

// Chat message roles
const (
	RoleUser  ChatRole = "user"
	RoleModel ChatRole = "model"
)

// ChatMessage is one entry in a conversation's visible history.
// The history is append-only except the trailing model message, whose
// Content grows in place while a streamed reply is still arriving.
type ChatMessage struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}
