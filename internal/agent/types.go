package agent

import (
	"context"

	"cs-chat-simulator/pkg/gemini"
)

// Tool represents a customer-service action that can be called by the
// tool-capable model.
type Tool interface {
	// Name returns the tool name (used in function calling).
	Name() string

	// Description returns what the tool does (for the model).
	Description() string

	// Parameters returns JSON schema for tool parameters.
	Parameters() map[string]interface{}

	// Execute runs the tool with given parameters.
	Execute(ctx context.Context, params map[string]interface{}) (interface{}, error)
}

// ToolRegistry manages available tools.
type ToolRegistry struct {
	tools map[string]Tool
}

// NewToolRegistry creates a new tool registry.
func NewToolRegistry() *ToolRegistry {
	return &ToolRegistry{
		tools: make(map[string]Tool),
	}
}

// Register adds a tool to the registry.
func (r *ToolRegistry) Register(tool Tool) {
	r.tools[tool.Name()] = tool
}

// Get retrieves a tool by name.
func (r *ToolRegistry) Get(name string) (Tool, bool) {
	tool, ok := r.tools[name]
	return tool, ok
}

// List returns all registered tools.
func (r *ToolRegistry) List() []Tool {
	tools := make([]Tool, 0, len(r.tools))
	for _, tool := range r.tools {
		tools = append(tools, tool)
	}
	return tools
}

// ToFunctionDeclarations converts tools to Gemini function calling format.
func (r *ToolRegistry) ToFunctionDeclarations() []gemini.FunctionDeclaration {
	decls := make([]gemini.FunctionDeclaration, 0, len(r.tools))
	for _, tool := range r.tools {
		decls = append(decls, gemini.FunctionDeclaration{
			Name:        tool.Name(),
			Description: tool.Description(),
			Parameters:  tool.Parameters(),
		})
	}
	return decls
}

// confirmationRequired is the static allow-list of tools with side effects
// visible to the end customer. These must never fire from a model tool call
// alone; a human has to trigger them explicitly.
var confirmationRequired = map[string]bool{
	"cancel_order":     true,
	"reset_password":   true,
	"send_replacement": true,
	"create_refund":    true,
	"issue_voucher":    true,
	"create_return":    true,
	"create_complaint": true,
	"update_info":      true,
}

// RequiresConfirmation reports whether a tool needs explicit operator approval
// before execution.
func RequiresConfirmation(name string) bool {
	return confirmationRequired[name]
}
