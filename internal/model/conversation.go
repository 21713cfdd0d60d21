package model

// Role is a conversation participant role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
	RoleFunction  Role = "function"
)

// Message is one entry in a conversation. Conversations are append-only:
// messages are never mutated in place, and insertion order is replayed
// verbatim into every model call.
type Message struct {
	Role        Role   `json:"role"`
	Content     string `json:"content"`
	ToolCallRef string `json:"toolCallRef,omitempty"`
}

// LastUserMessage returns the trailing message if it has the user role.
func LastUserMessage(messages []Message) (Message, bool) {
	if len(messages) == 0 {
		return Message{}, false
	}
	last := messages[len(messages)-1]
	if last.Role != RoleUser {
		return Message{}, false
	}
	return last, true
}
