package agent

import (
	"context"
	"fmt"

	"cs-chat-simulator/pkg/log"
)

// ExecuteResult is the normalized envelope returned for a successful dispatch.
type ExecuteResult struct {
	Success    bool                   `json:"success"`
	ToolName   string                 `json:"toolName"`
	Parameters map[string]interface{} `json:"parameters"`
	Result     interface{}            `json:"result"`
}

// Dispatcher resolves tool names through the registry and invokes the remote
// function. The confirmation gate is enforced here as well as in the stream
// consumer: the two may run in different processes.
type Dispatcher struct {
	registry *ToolRegistry
	l        log.Logger
}

// NewDispatcher creates a dispatcher over the given registry.
func NewDispatcher(registry *ToolRegistry, l log.Logger) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		l:        l,
	}
}

// Execute runs the named tool. userID is the caller's session identity and is
// injected into a missing user_id parameter when the tool's schema declares
// one; a value supplied by the model is never overwritten and no other
// parameter is altered. confirmed must be true for allow-listed tools.
// Remote failures propagate to the caller wrapped in ErrToolExecution.
func (d *Dispatcher) Execute(ctx context.Context, name string, params map[string]interface{}, userID string, confirmed bool) (ExecuteResult, error) {
	tool, ok := d.registry.Get(name)
	if !ok {
		return ExecuteResult{}, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}

	if RequiresConfirmation(name) && !confirmed {
		return ExecuteResult{}, fmt.Errorf("%w: %s", ErrConfirmationRequired, name)
	}

	params = InjectIdentity(tool, params, userID)

	d.l.Infof(ctx, "Executing tool %s with parameters: %+v", name, params)

	result, err := tool.Execute(ctx, params)
	if err != nil {
		d.l.Errorf(ctx, "Tool %s failed: %v", name, err)
		return ExecuteResult{}, fmt.Errorf("%w: %s: %v", ErrToolExecution, name, err)
	}

	return ExecuteResult{
		Success:    true,
		ToolName:   name,
		Parameters: params,
		Result:     result,
	}, nil
}

// InjectIdentity returns params with user_id populated from userID when the
// tool's parameter schema declares a user_id field and the model omitted it.
// The input map is not mutated.
func InjectIdentity(tool Tool, params map[string]interface{}, userID string) map[string]interface{} {
	if userID == "" {
		return params
	}

	props, ok := tool.Parameters()["properties"].(map[string]interface{})
	if !ok {
		return params
	}
	if _, declared := props["user_id"]; !declared {
		return params
	}
	if v, present := params["user_id"]; present {
		if s, isStr := v.(string); !isStr || s != "" {
			return params
		}
	}

	out := make(map[string]interface{}, len(params)+1)
	for k, v := range params {
		out[k] = v
	}
	out["user_id"] = userID
	return out
}
