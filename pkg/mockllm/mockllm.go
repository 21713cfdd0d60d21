// Package mockllm is a canned-response generator used when the live provider
// is unavailable. It implements the same interface as the Gemini client so the
// orchestrator cannot tell the two apart.
package mockllm

import (
	"context"
	"strings"

	"cs-chat-simulator/pkg/gemini"
)

// Generator serves scenario responses keyed off the last user message.
type Generator struct {
	scenarios []scenario
}

type scenario struct {
	id       string
	keywords []string
	response string
	toolCall *gemini.FunctionCall
}

// New creates a mock generator with the built-in scenario table.
func New() *Generator {
	return &Generator{scenarios: builtinScenarios}
}

// Model identifies the mock in logs and usage metadata.
func (g *Generator) Model() string {
	return "mock-gemini"
}

// GenerateContent returns the matched scenario as a single response.
func (g *Generator) GenerateContent(ctx context.Context, model string, req gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sc := g.match(req)
	parts := []gemini.Part{{Text: sc.response}}
	if sc.toolCall != nil && len(req.Tools) > 0 {
		parts = append(parts, gemini.Part{FunctionCall: sc.toolCall})
	}

	return &gemini.GenerateResponse{
		Candidates: []gemini.Candidate{{
			Content:      gemini.Content{Role: "model", Parts: parts},
			FinishReason: "STOP",
		}},
		UsageMetadata: g.usage(sc),
	}, nil
}

// StreamGenerateContent chunks the scenario text so the demultiplexer sees the
// same incremental shape the live provider produces.
func (g *Generator) StreamGenerateContent(ctx context.Context, model string, req gemini.GenerateRequest, fn func(*gemini.GenerateResponse) error) error {
	sc := g.match(req)

	for _, piece := range chunkRunes(sc.response, 16) {
		if err := ctx.Err(); err != nil {
			return err
		}
		chunk := &gemini.GenerateResponse{
			Candidates: []gemini.Candidate{{
				Content: gemini.Content{Role: "model", Parts: []gemini.Part{{Text: piece}}},
			}},
		}
		if err := fn(chunk); err != nil {
			return err
		}
	}

	if sc.toolCall != nil && len(req.Tools) > 0 {
		chunk := &gemini.GenerateResponse{
			Candidates: []gemini.Candidate{{
				Content: gemini.Content{Role: "model", Parts: []gemini.Part{{FunctionCall: sc.toolCall}}},
			}},
		}
		if err := fn(chunk); err != nil {
			return err
		}
	}

	final := &gemini.GenerateResponse{
		Candidates: []gemini.Candidate{{
			Content:      gemini.Content{Role: "model"},
			FinishReason: "STOP",
		}},
		UsageMetadata: g.usage(sc),
	}
	return fn(final)
}

func (g *Generator) match(req gemini.GenerateRequest) scenario {
	query := lastUserText(req.Contents)
	for _, sc := range g.scenarios {
		for _, kw := range sc.keywords {
			if strings.Contains(query, kw) {
				return sc
			}
		}
	}
	// Fall through to the greeting scenario.
	return g.scenarios[len(g.scenarios)-1]
}

func (g *Generator) usage(sc scenario) *gemini.UsageMetadata {
	out := len([]rune(sc.response))
	return &gemini.UsageMetadata{
		PromptTokenCount:     42,
		CandidatesTokenCount: out,
		TotalTokenCount:      42 + out,
	}
}

func lastUserText(contents []gemini.Content) string {
	for i := len(contents) - 1; i >= 0; i-- {
		if contents[i].Role != "user" {
			continue
		}
		for _, p := range contents[i].Parts {
			if p.Text != "" {
				return p.Text
			}
		}
	}
	return ""
}

func chunkRunes(s string, size int) []string {
	runes := []rune(s)
	var out []string
	for len(runes) > 0 {
		n := size
		if n > len(runes) {
			n = len(runes)
		}
		out = append(out, string(runes[:n]))
		runes = runes[n:]
	}
	return out
}
