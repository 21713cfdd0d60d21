package suggestion

// State is the assembler's lifecycle position for the current turn.
type State string

const (
	// StateIdle means no turn is in progress.
	StateIdle State = "idle"
	// StateStreaming means frames for the current turn are still arriving.
	StateStreaming State = "streaming"
	// StateSuggesting means the turn settled with a reply awaiting the operator.
	StateSuggesting State = "suggesting"
	// StateToolPending means the turn settled with at least one
	// confirmation-required action outstanding.
	StateToolPending State = "tool_pending"
	// StateSent means the operator approved and sent the suggested reply.
	StateSent State = "sent"
)

// Status is the approval status of a suggested reply.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Suggested is the single pending reply assembled from the frame stream.
// Replacing the suggestion always assigns a fresh ID.
type Suggested struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Status  Status `json:"status"`
}

// Action is one confirmation-required tool call recommended to the operator.
// The set is deduplicated by tool name within a turn.
type Action struct {
	ID         string                 `json:"id"`
	Name       string                 `json:"name"`
	Parameters map[string]interface{} `json:"parameters"`
}
