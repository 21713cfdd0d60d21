package suggestion

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"cs-chat-simulator/internal/agent"
	"cs-chat-simulator/internal/frame"
	"cs-chat-simulator/internal/model"
	"cs-chat-simulator/internal/session"
	"cs-chat-simulator/pkg/log"
)

// apologyPlaceholder is the reply shown when a turn fails before producing one.
const apologyPlaceholder = "죄송합니다. 응답을 처리하는 중 오류가 발생했습니다."

// Assembler consumes one turn's frame stream and maintains the operator-facing
// state: the transcript, the single pending suggestion, and the recommended
// actions awaiting confirmation. All mutation happens under one mutex.
type Assembler struct {
	mu         sync.Mutex
	l          log.Logger
	dispatcher *agent.Dispatcher
	registry   *agent.ToolRegistry
	identity   session.Info

	state    State
	pending  *Suggested
	original string // pre-edit content, restored by CancelEdit
	editing  bool
	actions  []Action
	messages []model.Message
}

// NewAssembler creates an idle assembler bound to the given identity.
func NewAssembler(l log.Logger, dispatcher *agent.Dispatcher, registry *agent.ToolRegistry, identity session.Info) *Assembler {
	return &Assembler{
		l:          l,
		dispatcher: dispatcher,
		registry:   registry,
		identity:   identity,
		state:      StateIdle,
	}
}

// BeginTurn appends the customer's message and discards any state left over
// from the previous turn.
func (a *Assembler) BeginTurn(content string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.messages = append(a.messages, model.Message{Role: model.RoleUser, Content: content})
	a.pending = nil
	a.actions = nil
	a.editing = false
	a.state = StateStreaming
}

// Consume reads frames from r until a terminal frame or stream end, applying
// each in arrival order. A malformed stream or transport error settles the
// turn with the apology placeholder instead of surfacing to the operator
// mid-stream.
func (a *Assembler) Consume(ctx context.Context, r io.Reader) error {
	dec := frame.NewDecoder(r)
	for {
		f, err := dec.Next()
		if err == io.EOF {
			a.settle()
			return nil
		}
		if err != nil {
			a.l.Errorf(ctx, "suggestion.Consume: %v", err)
			a.fail()
			return err
		}

		a.apply(ctx, f)
		if f.IsTerminal() {
			return nil
		}
	}
}

func (a *Assembler) apply(ctx context.Context, f frame.Frame) {
	switch {
	case f.Text != nil:
		a.appendText(f.Text.Text)
	case f.ToolCall != nil:
		a.handleToolCall(ctx, f.ToolCall)
	case f.Metadata != nil:
		a.settle()
	case f.Error != nil:
		a.l.Warnf(ctx, "suggestion: turn failed upstream: %s", f.Error.Message)
		a.fail()
	}
}

// appendText is idempotent with respect to replay of the same accumulated
// content: each segment extends the one pending suggestion in place.
func (a *Assembler) appendText(text string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.state = StateStreaming
	if a.pending == nil {
		a.pending = &Suggested{ID: uuid.NewString(), Status: StatusPending}
	}
	a.pending.Content += text
}

func (a *Assembler) handleToolCall(ctx context.Context, tc *frame.ToolCall) {
	a.mu.Lock()
	defer a.mu.Unlock()

	args := tc.Args
	if tool, ok := a.registry.Get(tc.Name); ok {
		args = agent.InjectIdentity(tool, args, a.identity.UserID)
	}

	if agent.RequiresConfirmation(tc.Name) {
		a.recommend(tc.Name, args)
		a.replacePending(describeAction(tc.Name, args))
		return
	}

	result, err := a.dispatcher.Execute(ctx, tc.Name, args, a.identity.UserID, false)
	if err != nil {
		a.l.Errorf(ctx, "suggestion: auto-dispatch %s: %v", tc.Name, err)
		a.replacePending(apologyPlaceholder)
		return
	}
	a.replacePending(describeResult(tc.Name, result.Result))
}

// recommend adds an action unless one with the same tool name already exists.
func (a *Assembler) recommend(name string, args map[string]interface{}) {
	for _, act := range a.actions {
		if act.Name == name {
			return
		}
	}
	a.actions = append(a.actions, Action{
		ID:         uuid.NewString(),
		Name:       name,
		Parameters: args,
	})
}

// replacePending swaps the suggestion wholesale under a fresh ID.
func (a *Assembler) replacePending(content string) {
	a.pending = &Suggested{
		ID:      uuid.NewString(),
		Content: content,
		Status:  StatusPending,
	}
}

// settle moves the turn out of streaming once the stream ends.
func (a *Assembler) settle() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.state != StateStreaming {
		return
	}
	if a.pending == nil {
		a.pending = &Suggested{ID: uuid.NewString(), Content: apologyPlaceholder, Status: StatusPending}
	}
	if len(a.actions) > 0 {
		a.state = StateToolPending
		return
	}
	a.state = StateSuggesting
}

// fail settles the turn with the apology placeholder as the one suggestion.
func (a *Assembler) fail() {
	a.mu.Lock()
	a.replacePending(apologyPlaceholder)
	a.mu.Unlock()
	a.settle()
}

// Edit replaces the pending content, remembering the original for CancelEdit.
func (a *Assembler) Edit(content string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.pending == nil {
		return ErrNothingPending
	}
	if !a.editing {
		a.original = a.pending.Content
		a.editing = true
	}
	a.pending.Content = content
	return nil
}

// CancelEdit restores the content from before the first Edit of this turn.
func (a *Assembler) CancelEdit() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.pending == nil {
		return ErrNothingPending
	}
	if a.editing {
		a.pending.Content = a.original
		a.editing = false
	}
	return nil
}

// Send approves the pending suggestion, appends it to the transcript as the
// assistant's message, and clears the turn state.
func (a *Assembler) Send() (model.Message, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.pending == nil {
		return model.Message{}, ErrNothingPending
	}

	a.pending.Status = StatusApproved
	msg := model.Message{Role: model.RoleAssistant, Content: a.pending.Content}
	a.messages = append(a.messages, msg)

	a.pending = nil
	a.actions = nil
	a.editing = false
	a.state = StateSent
	return msg, nil
}

// ExecuteAction dispatches a recommended action with operator confirmation.
// The recommendation is removed before dispatch, so each instance runs at
// most once; the execution outcome replaces the pending suggestion either way.
func (a *Assembler) ExecuteAction(ctx context.Context, actionID string) error {
	a.mu.Lock()
	idx := -1
	for i, act := range a.actions {
		if act.ID == actionID {
			idx = i
			break
		}
	}
	if idx < 0 {
		a.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrUnknownAction, actionID)
	}
	act := a.actions[idx]
	a.actions = append(a.actions[:idx], a.actions[idx+1:]...)
	a.mu.Unlock()

	result, err := a.dispatcher.Execute(ctx, act.Name, act.Parameters, a.identity.UserID, true)

	a.mu.Lock()
	defer a.mu.Unlock()
	if err != nil {
		a.l.Errorf(ctx, "suggestion.ExecuteAction %s: %v", act.Name, err)
		a.replacePending(apologyPlaceholder)
		if len(a.actions) == 0 && a.state == StateToolPending {
			a.state = StateSuggesting
		}
		return err
	}

	a.replacePending(describeResult(act.Name, result.Result))
	if len(a.actions) == 0 && a.state == StateToolPending {
		a.state = StateSuggesting
	}
	return nil
}

// State returns the current lifecycle state.
func (a *Assembler) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Pending returns a copy of the pending suggestion, if any.
func (a *Assembler) Pending() (Suggested, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.pending == nil {
		return Suggested{}, false
	}
	return *a.pending, true
}

// Actions returns a copy of the recommended-actions set.
func (a *Assembler) Actions() []Action {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Action, len(a.actions))
	copy(out, a.actions)
	return out
}

// Messages returns a copy of the transcript for posting the next turn.
func (a *Assembler) Messages() []model.Message {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]model.Message, len(a.messages))
	copy(out, a.messages)
	return out
}

// describeAction renders a confirmation-required call for the operator.
func describeAction(name string, args map[string]interface{}) string {
	keys := make([]string, 0, len(args))
	for k := range args {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, fmt.Sprintf("%s=%v", k, args[k]))
	}
	return fmt.Sprintf("확인이 필요한 조치가 있습니다: %s (%s)", name, strings.Join(pairs, ", "))
}

// describeResult renders an execution outcome as the suggested reply.
func describeResult(name string, result interface{}) string {
	detail, err := json.Marshal(result)
	if err != nil || string(detail) == "null" {
		return fmt.Sprintf("%s 처리가 완료되었습니다.", name)
	}
	return fmt.Sprintf("%s 처리가 완료되었습니다: %s", name, detail)
}
