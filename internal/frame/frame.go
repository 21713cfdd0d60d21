package frame

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Frame is one self-contained unit in the server→client event stream.
// Exactly one of the four variants is set; the stream terminates on a
// Metadata frame, an Error frame, or transport close.
type Frame struct {
	Text     *Text     `json:"text,omitempty"`
	ToolCall *ToolCall `json:"toolCall,omitempty"`
	Metadata *Metadata `json:"metadata,omitempty"`
	Error    *Error    `json:"error,omitempty"`
}

// Text carries one incremental text segment of the suggested reply.
type Text struct {
	Text string `json:"text"`
}

// ToolCall carries one model-requested tool invocation with flattened args.
type ToolCall struct {
	Name string                 `json:"name"`
	Args map[string]interface{} `json:"args"`
}

// Metadata is the terminal success frame for a turn.
type Metadata struct {
	FinishReason string `json:"finishReason"`
	Usage        Usage  `json:"usage"`
}

// Usage carries token accounting surfaced with the terminal frame.
type Usage struct {
	PromptTokenCount        int `json:"promptTokenCount"`
	CandidatesTokenCount    int `json:"candidatesTokenCount"`
	TotalTokenCount         int `json:"totalTokenCount"`
	CachedContentTokenCount int `json:"cachedContentTokenCount"`
}

// Error is the terminal failure frame for a turn.
type Error struct {
	Message string `json:"message"`
}

// IsTerminal reports whether this frame ends the turn.
func (f Frame) IsTerminal() bool {
	return f.Metadata != nil || f.Error != nil
}

var (
	// ErrUnknownShape is returned for a line whose JSON does not match any
	// recognized frame variant.
	ErrUnknownShape = errors.New("unrecognized frame shape")

	// ErrAmbiguousShape is returned when more than one variant is present.
	ErrAmbiguousShape = errors.New("ambiguous frame: multiple variants set")
)

// NewText builds a Text frame.
func NewText(text string) Frame {
	return Frame{Text: &Text{Text: text}}
}

// NewToolCall builds a ToolCall frame.
func NewToolCall(name string, args map[string]interface{}) Frame {
	if args == nil {
		args = map[string]interface{}{}
	}
	return Frame{ToolCall: &ToolCall{Name: name, Args: args}}
}

// NewMetadata builds the terminal Metadata frame.
func NewMetadata(finishReason string, usage Usage) Frame {
	return Frame{Metadata: &Metadata{FinishReason: finishReason, Usage: usage}}
}

// NewError builds the terminal Error frame.
func NewError(message string) Frame {
	return Frame{Error: &Error{Message: message}}
}

// wireFrame mirrors Frame on the wire. Error is a bare string there, matching
// the {"error": "..."} line shape.
type wireFrame struct {
	Text     *Text     `json:"text,omitempty"`
	ToolCall *ToolCall `json:"toolCall,omitempty"`
	Metadata *Metadata `json:"metadata,omitempty"`
	Error    *string   `json:"error,omitempty"`
}

// MarshalJSON emits the single-variant wire shape.
func (f Frame) MarshalJSON() ([]byte, error) {
	w := wireFrame{ToolCall: f.ToolCall, Metadata: f.Metadata}
	if f.Text != nil {
		w.Text = f.Text
	}
	if f.Error != nil {
		w.Error = &f.Error.Message
	}
	type alias wireFrame
	return json.Marshal(alias(w))
}

// UnmarshalJSON decodes one line into a Frame, rejecting unknown or ambiguous
// shapes explicitly rather than silently ignoring them.
func (f *Frame) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var decoded Frame
	variants := 0
	for key, val := range raw {
		switch key {
		case "text":
			var s string
			if err := json.Unmarshal(val, &s); err != nil {
				return fmt.Errorf("invalid text frame: %w", err)
			}
			decoded.Text = &Text{Text: s}
			variants++
		case "toolCall":
			var tc ToolCall
			if err := json.Unmarshal(val, &tc); err != nil {
				return fmt.Errorf("invalid toolCall frame: %w", err)
			}
			decoded.ToolCall = &tc
			variants++
		case "metadata":
			var md Metadata
			if err := json.Unmarshal(val, &md); err != nil {
				return fmt.Errorf("invalid metadata frame: %w", err)
			}
			decoded.Metadata = &md
			variants++
		case "error":
			var msg string
			if err := json.Unmarshal(val, &msg); err != nil {
				return fmt.Errorf("invalid error frame: %w", err)
			}
			decoded.Error = &Error{Message: msg}
			variants++
		default:
			return fmt.Errorf("%w: tag %q", ErrUnknownShape, key)
		}
	}

	switch variants {
	case 0:
		return ErrUnknownShape
	case 1:
		*f = decoded
		return nil
	default:
		return ErrAmbiguousShape
	}
}

// Text frames marshal as {"text": "..."} with a bare string value.
func (t Text) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Text)
}

// UnmarshalJSON accepts the bare string value.
func (t *Text) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &t.Text)
}
