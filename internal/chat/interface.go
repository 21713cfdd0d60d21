package chat

import (
	"context"

	"cs-chat-simulator/internal/frame"
	"cs-chat-simulator/pkg/gemini"
)

// EmitFunc receives frames in production order. Returning an error aborts the
// turn; the orchestrator still emits exactly one terminal frame.
type EmitFunc func(frame.Frame) error

// UseCase is the dual-model streaming orchestrator.
type UseCase interface {
	// Respond runs one turn: a non-streaming grounding call followed by a
	// streaming tool-capable call, demultiplexed into frames. Validation
	// failures are returned before any frame is emitted; every later failure
	// becomes a terminal Error frame.
	Respond(ctx context.Context, input RespondInput, emit EmitFunc) error
}

// Generator is the generation provider used for both pipeline phases. The
// mock generator implements the same interface as the live Gemini client.
type Generator interface {
	GenerateContent(ctx context.Context, model string, req gemini.GenerateRequest) (*gemini.GenerateResponse, error)
	StreamGenerateContent(ctx context.Context, model string, req gemini.GenerateRequest, fn func(*gemini.GenerateResponse) error) error
}
