package suggestion_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cs-chat-simulator/internal/agent"
	"cs-chat-simulator/internal/agent/tools"
	"cs-chat-simulator/internal/model"
	"cs-chat-simulator/internal/session"
	"cs-chat-simulator/internal/suggestion"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type fixture struct {
	asm   *suggestion.Assembler
	calls *[]string
}

func newFixture(t *testing.T) (*fixture, func()) {
	t.Helper()

	var calls []string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		json.NewDecoder(r.Body).Decode(&body)
		calls = append(calls, r.Method+" "+r.URL.Path)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}))

	registry := agent.NewToolRegistry()
	tools.RegisterAll(registry, ts.URL, nil)
	dispatcher := agent.NewDispatcher(registry, &mockLogger{})

	asm := suggestion.NewAssembler(&mockLogger{}, dispatcher, registry, session.Info{
		UserID:    "cus_28X44",
		SessionID: "sess-1",
	})
	return &fixture{asm: asm, calls: &calls}, ts.Close
}

func consume(t *testing.T, asm *suggestion.Assembler, stream string) {
	t.Helper()
	if err := asm.Consume(context.Background(), strings.NewReader(stream)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTextAccumulation(t *testing.T) {
	fx, done := newFixture(t)
	defer done()

	fx.asm.BeginTurn("환불은 어떻게 하나요?")
	consume(t, fx.asm, `{"text":"환불 절차를 "}
{"text":"안내해 드리겠습니다."}
{"metadata":{"finishReason":"STOP","usage":{}}}
`)

	pending, ok := fx.asm.Pending()
	if !ok {
		t.Fatal("expected a pending suggestion")
	}
	if pending.Content != "환불 절차를 안내해 드리겠습니다." {
		t.Errorf("unexpected content: %q", pending.Content)
	}
	if pending.Status != suggestion.StatusPending {
		t.Errorf("unexpected status: %s", pending.Status)
	}
	if fx.asm.State() != suggestion.StateSuggesting {
		t.Errorf("unexpected state: %s", fx.asm.State())
	}
}

func TestAccumulationIsDeterministic(t *testing.T) {
	stream := `{"text":"주문 "}
{"text":"ORD1001은 "}
{"text":"배송 준비 중입니다."}
{"metadata":{"finishReason":"STOP","usage":{}}}
`
	contents := make([]string, 2)
	for i := range contents {
		fx, done := newFixture(t)
		fx.asm.BeginTurn("주문 상태 알려주세요")
		consume(t, fx.asm, stream)
		pending, ok := fx.asm.Pending()
		if !ok {
			t.Fatal("expected a pending suggestion")
		}
		contents[i] = pending.Content
		done()
	}

	if contents[0] != contents[1] {
		t.Errorf("independent assemblers diverged: %q vs %q", contents[0], contents[1])
	}
	if contents[0] != "주문 ORD1001은 배송 준비 중입니다." {
		t.Errorf("unexpected content: %q", contents[0])
	}
}

func TestConfirmationRequiredToolCall(t *testing.T) {
	fx, done := newFixture(t)
	defer done()

	fx.asm.BeginTurn("ORD1001 주문을 취소해 주세요")
	consume(t, fx.asm, `{"text":"주문 취소를 도와드리겠습니다."}
{"toolCall":{"name":"cancel_order","args":{"order_id":"ORD1001"}}}
{"toolCall":{"name":"cancel_order","args":{"order_id":"ORD1001"}}}
{"metadata":{"finishReason":"STOP","usage":{}}}
`)

	if fx.asm.State() != suggestion.StateToolPending {
		t.Errorf("expected tool_pending, got %s", fx.asm.State())
	}

	actions := fx.asm.Actions()
	if len(actions) != 1 {
		t.Fatalf("duplicate recommendations must be deduped by name, got %d", len(actions))
	}
	if actions[0].Name != "cancel_order" {
		t.Errorf("unexpected action: %+v", actions[0])
	}

	pending, _ := fx.asm.Pending()
	if !strings.Contains(pending.Content, "cancel_order") {
		t.Errorf("suggestion must describe the pending action, got %q", pending.Content)
	}
	if len(*fx.calls) != 0 {
		t.Errorf("confirmation-required tool must not auto-run, saw %v", *fx.calls)
	}
}

func TestAutoDispatchToolCall(t *testing.T) {
	fx, done := newFixture(t)
	defer done()

	fx.asm.BeginTurn("추가 확인 부탁드립니다")
	consume(t, fx.asm, `{"toolCall":{"name":"create_ticket","args":{"type":"other","details":"Need more help with the request"}}}
{"metadata":{"finishReason":"STOP","usage":{}}}
`)

	if len(*fx.calls) != 1 || (*fx.calls)[0] != "POST /api/v1/tickets/create" {
		t.Fatalf("expected one immediate ticket call, got %v", *fx.calls)
	}
	if fx.asm.State() != suggestion.StateSuggesting {
		t.Errorf("unexpected state: %s", fx.asm.State())
	}

	pending, _ := fx.asm.Pending()
	if !strings.Contains(pending.Content, "create_ticket") {
		t.Errorf("suggestion must carry the execution result, got %q", pending.Content)
	}
	if len(fx.asm.Actions()) != 0 {
		t.Error("auto-dispatched tool must not be recommended")
	}
}

func TestToolCallReplacesSuggestionID(t *testing.T) {
	fx, done := newFixture(t)
	defer done()

	fx.asm.BeginTurn("주문을 취소해 주세요")
	consume(t, fx.asm, `{"text":"이전 제안"}
{"toolCall":{"name":"cancel_order","args":{"order_id":"ORD1001"}}}
{"metadata":{"finishReason":"STOP","usage":{}}}
`)

	// A later turn's text starts a fresh suggestion again.
	first, _ := fx.asm.Pending()
	fx.asm.BeginTurn("다른 문의입니다")
	consume(t, fx.asm, `{"text":"새 제안"}
{"metadata":{"finishReason":"STOP","usage":{}}}
`)
	second, _ := fx.asm.Pending()

	if first.ID == second.ID {
		t.Error("replaced suggestions must carry fresh IDs")
	}
	if second.Content != "새 제안" {
		t.Errorf("unexpected content: %q", second.Content)
	}
}

func TestErrorFrameYieldsApology(t *testing.T) {
	fx, done := newFixture(t)
	defer done()

	fx.asm.BeginTurn("안녕하세요")
	consume(t, fx.asm, `{"text":"부분 응답"}
{"error":"응답 생성 중 오류가 발생했습니다."}
`)

	pending, ok := fx.asm.Pending()
	if !ok {
		t.Fatal("a failed turn must still yield one pending suggestion")
	}
	if !strings.Contains(pending.Content, "죄송합니다") {
		t.Errorf("expected the apology placeholder, got %q", pending.Content)
	}
	if fx.asm.State() != suggestion.StateSuggesting {
		t.Errorf("unexpected state: %s", fx.asm.State())
	}
}

func TestStreamEndWithoutTerminalFrame(t *testing.T) {
	fx, done := newFixture(t)
	defer done()

	fx.asm.BeginTurn("안녕하세요")
	consume(t, fx.asm, `{"text":"잘린 응답"}
`)

	if fx.asm.State() != suggestion.StateSuggesting {
		t.Errorf("stream close must settle the turn, got %s", fx.asm.State())
	}
}

func TestSend(t *testing.T) {
	fx, done := newFixture(t)
	defer done()

	if _, err := fx.asm.Send(); !errors.Is(err, suggestion.ErrNothingPending) {
		t.Errorf("expected ErrNothingPending, got %v", err)
	}

	fx.asm.BeginTurn("환불 문의")
	consume(t, fx.asm, `{"text":"환불 안내입니다."}
{"metadata":{"finishReason":"STOP","usage":{}}}
`)

	msg, err := fx.asm.Send()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.Role != model.RoleAssistant || msg.Content != "환불 안내입니다." {
		t.Errorf("unexpected message: %+v", msg)
	}
	if fx.asm.State() != suggestion.StateSent {
		t.Errorf("unexpected state: %s", fx.asm.State())
	}
	if _, ok := fx.asm.Pending(); ok {
		t.Error("send must clear the pending suggestion")
	}

	transcript := fx.asm.Messages()
	if len(transcript) != 2 || transcript[1].Role != model.RoleAssistant {
		t.Errorf("unexpected transcript: %+v", transcript)
	}
}

func TestEditAndCancelEdit(t *testing.T) {
	fx, done := newFixture(t)
	defer done()

	fx.asm.BeginTurn("문의")
	consume(t, fx.asm, `{"text":"원래 제안"}
{"metadata":{"finishReason":"STOP","usage":{}}}
`)

	if err := fx.asm.Edit("수정된 제안"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := fx.asm.Edit("다시 수정된 제안"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pending, _ := fx.asm.Pending()
	if pending.Content != "다시 수정된 제안" {
		t.Errorf("unexpected content: %q", pending.Content)
	}

	if err := fx.asm.CancelEdit(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pending, _ = fx.asm.Pending()
	if pending.Content != "원래 제안" {
		t.Errorf("cancel must restore the pre-edit content, got %q", pending.Content)
	}
}

func TestExecuteAction(t *testing.T) {
	fx, done := newFixture(t)
	defer done()

	fx.asm.BeginTurn("주문을 취소해 주세요")
	consume(t, fx.asm, `{"toolCall":{"name":"cancel_order","args":{"order_id":"ORD1001"}}}
{"metadata":{"finishReason":"STOP","usage":{}}}
`)

	actions := fx.asm.Actions()
	if len(actions) != 1 {
		t.Fatalf("expected 1 action, got %d", len(actions))
	}

	ctx := context.Background()
	if err := fx.asm.ExecuteAction(ctx, actions[0].ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(*fx.calls) != 1 || (*fx.calls)[0] != "POST /api/v1/orders/ORD1001/cancel" {
		t.Fatalf("unexpected calls: %v", *fx.calls)
	}
	if fx.asm.State() != suggestion.StateSuggesting {
		t.Errorf("unexpected state: %s", fx.asm.State())
	}
	if len(fx.asm.Actions()) != 0 {
		t.Error("executed action must be removed")
	}

	// The same instance can only run once.
	if err := fx.asm.ExecuteAction(ctx, actions[0].ID); !errors.Is(err, suggestion.ErrUnknownAction) {
		t.Errorf("expected ErrUnknownAction on replay, got %v", err)
	}
	if len(*fx.calls) != 1 {
		t.Errorf("replay must not reach the backoffice, got %v", *fx.calls)
	}
}
