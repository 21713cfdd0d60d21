package frame_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"cs-chat-simulator/internal/frame"
)

const sampleStream = `{"text":"주문 "}
{"text":"상태를 확인해 "}
{"toolCall":{"name":"get_order","args":{"order_id":"ORD1001"}}}
{"text":"드리겠습니다."}
{"metadata":{"finishReason":"STOP","usage":{"promptTokenCount":10,"candidatesTokenCount":5,"totalTokenCount":15,"cachedContentTokenCount":0}}}
`

func collect(t *testing.T, frames []frame.Frame) []string {
	t.Helper()
	var out []string
	for _, f := range frames {
		switch {
		case f.Text != nil:
			out = append(out, "text:"+f.Text.Text)
		case f.ToolCall != nil:
			out = append(out, "tool:"+f.ToolCall.Name)
		case f.Metadata != nil:
			out = append(out, "meta:"+f.Metadata.FinishReason)
		case f.Error != nil:
			out = append(out, "error:"+f.Error.Message)
		}
	}
	return out
}

var wantOrder = []string{
	"text:주문 ",
	"text:상태를 확인해 ",
	"tool:get_order",
	"text:드리겠습니다.",
	"meta:STOP",
}

// Chunk boundaries may fall anywhere, including inside a multi-byte rune.
// Every fragmentation of the same byte stream must yield the same frames in
// the same order.
func TestParserFragmentation(t *testing.T) {
	raw := []byte(sampleStream)

	for size := 1; size <= len(raw); size++ {
		var parser frame.Parser
		var got []frame.Frame

		for start := 0; start < len(raw); start += size {
			end := start + size
			if end > len(raw) {
				end = len(raw)
			}
			frames, err := parser.Push(raw[start:end])
			if err != nil {
				t.Fatalf("chunk size %d: unexpected error: %v", size, err)
			}
			got = append(got, frames...)
		}
		rest, err := parser.Close()
		if err != nil {
			t.Fatalf("chunk size %d: close: %v", size, err)
		}
		got = append(got, rest...)

		seq := collect(t, got)
		if len(seq) != len(wantOrder) {
			t.Fatalf("chunk size %d: got %d frames, want %d: %v", size, len(seq), len(wantOrder), seq)
		}
		for i := range seq {
			if seq[i] != wantOrder[i] {
				t.Fatalf("chunk size %d: frame %d is %q, want %q", size, i, seq[i], wantOrder[i])
			}
		}
	}
}

func TestParserPartialLineNotParsedEarly(t *testing.T) {
	var parser frame.Parser

	frames, err := parser.Push([]byte(`{"text":"incomp`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(frames) != 0 {
		t.Fatalf("partial line must stay buffered, got %d frames", len(frames))
	}

	frames, err = parser.Push([]byte("lete\"}\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(frames) != 1 || frames[0].Text == nil || frames[0].Text.Text != "incomplete" {
		t.Fatalf("unexpected frames: %+v", frames)
	}
}

func TestParserCloseWithoutTrailingNewline(t *testing.T) {
	var parser frame.Parser

	if _, err := parser.Push([]byte(`{"error":"cut off"}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	frames, err := parser.Close()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(frames) != 1 || frames[0].Error == nil || frames[0].Error.Message != "cut off" {
		t.Fatalf("unexpected frames: %+v", frames)
	}
}

func TestParserRejectsBadLine(t *testing.T) {
	var parser frame.Parser

	if _, err := parser.Push([]byte("{\"delta\":\"nope\"}\n")); err == nil {
		t.Fatal("expected error for unrecognized tag")
	}
}

func TestDecoder(t *testing.T) {
	dec := frame.NewDecoder(strings.NewReader(sampleStream))

	var got []frame.Frame
	for {
		f, err := dec.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got = append(got, f)
	}

	seq := collect(t, got)
	for i := range wantOrder {
		if i >= len(seq) || seq[i] != wantOrder[i] {
			t.Fatalf("frame %d mismatch: got %v", i, seq)
		}
	}
}

func TestEncoderFlushesLineDelimited(t *testing.T) {
	var buf bytes.Buffer
	enc := frame.NewEncoder(&buf)

	if err := enc.Encode(frame.NewText("a")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := enc.Encode(frame.NewMetadata("STOP", frame.Usage{})); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}
	if lines[0] != `{"text":"a"}` {
		t.Errorf("unexpected first line: %s", lines[0])
	}
}
