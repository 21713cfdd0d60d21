package response

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
}

const (
	// MessageSuccess is the message attached to every OK response.
	MessageSuccess = "Success"

	// InternalServerErrorCode is the error_code for unexpected failures.
	InternalServerErrorCode = 500

	// DefaultErrorMessage hides internal details from callers.
	DefaultErrorMessage = "Something went wrong"
)
