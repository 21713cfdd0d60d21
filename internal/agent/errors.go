package agent

import "errors"

var (
	// ErrUnknownTool is returned when a name does not resolve in the registry.
	ErrUnknownTool = errors.New("unknown tool")

	// ErrConfirmationRequired is returned when a confirmation-required tool is
	// dispatched without an explicit operator confirmation.
	ErrConfirmationRequired = errors.New("tool requires operator confirmation")

	// ErrToolExecution wraps failures from the remote side-effecting call.
	ErrToolExecution = errors.New("tool execution failed")
)
