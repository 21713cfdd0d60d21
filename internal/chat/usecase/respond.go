package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cs-chat-simulator/internal/chat"
	"cs-chat-simulator/internal/frame"
	"cs-chat-simulator/internal/model"
	"cs-chat-simulator/pkg/gemini"
)

// Respond runs the two-phase pipeline under a single turn deadline. The
// grounding call and the tool call share the same budget, so a slow grounding
// phase leaves less time for streaming.
func (uc *implUseCase) Respond(ctx context.Context, input chat.RespondInput, emit chat.EmitFunc) error {
	if err := chat.ValidateInput(input); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, uc.cfg.TurnTimeout)
	defer cancel()

	gen := uc.generator(input.UseMock)
	contents := toContents(input.Messages)

	answer, err := uc.ground(ctx, gen, contents, input.CacheName)
	if err != nil {
		uc.l.Errorf(ctx, "chat.usecase.Respond.ground: %v", err)
		if emitErr := emit(frame.NewError(userMessage(err))); emitErr != nil {
			return emitErr
		}
		return err
	}

	if err := uc.streamTools(ctx, gen, contents, answer, input.UserID, emit); err != nil {
		return err
	}
	return nil
}

// ground runs the non-streaming grounding call and returns the draft answer.
// When a cache handle is supplied the cached content carries its own system
// instruction, so none is sent alongside it.
func (uc *implUseCase) ground(ctx context.Context, gen chat.Generator, contents []gemini.Content, cacheName string) (string, error) {
	req := gemini.GenerateRequest{
		Contents: contents,
	}
	if cacheName != "" {
		req.CachedContent = cacheName
	} else {
		req.SystemInstruction = &gemini.Content{
			Parts: []gemini.Part{{Text: groundingInstruction}},
		}
	}

	resp, err := gen.GenerateContent(ctx, uc.cfg.GroundingModel, req)
	if err != nil {
		return "", classify(ctx, err)
	}

	answer := candidateText(resp)
	if strings.TrimSpace(answer) == "" {
		return "", chat.ErrEmptyGrounding
	}
	return answer, nil
}

// streamTools runs the streaming tool-capable call and demultiplexes each
// chunk into frames. Exactly one terminal frame is emitted on every path.
func (uc *implUseCase) streamTools(ctx context.Context, gen chat.Generator, contents []gemini.Content, groundingAnswer, userID string, emit chat.EmitFunc) error {
	req := gemini.GenerateRequest{
		Contents: contents,
		SystemInstruction: &gemini.Content{
			Parts: []gemini.Part{{Text: buildToolInstruction(groundingAnswer, userID)}},
		},
		Tools: []gemini.Tool{
			{FunctionDeclarations: uc.registry.ToFunctionDeclarations()},
		},
		ToolConfig: &gemini.ToolConfig{
			FunctionCallingConfig: &gemini.FunctionCallingConfig{Mode: "AUTO"},
		},
	}

	finishReason := "STOP"
	var usage frame.Usage

	streamErr := gen.StreamGenerateContent(ctx, uc.cfg.ToolModel, req, func(chunk *gemini.GenerateResponse) error {
		if chunk.UsageMetadata != nil {
			usage = frame.Usage{
				PromptTokenCount:        chunk.UsageMetadata.PromptTokenCount,
				CandidatesTokenCount:    chunk.UsageMetadata.CandidatesTokenCount,
				TotalTokenCount:         chunk.UsageMetadata.TotalTokenCount,
				CachedContentTokenCount: chunk.UsageMetadata.CachedContentTokenCount,
			}
		}
		for _, cand := range chunk.Candidates {
			if cand.FinishReason != "" {
				finishReason = cand.FinishReason
			}
			for _, part := range cand.Content.Parts {
				if part.Text != "" {
					if err := emit(frame.NewText(part.Text)); err != nil {
						return err
					}
				}
				if part.FunctionCall != nil {
					if err := emit(frame.NewToolCall(part.FunctionCall.Name, part.FunctionCall.Args)); err != nil {
						return err
					}
				}
			}
		}
		return nil
	})
	if streamErr != nil {
		err := classify(ctx, streamErr)
		uc.l.Errorf(ctx, "chat.usecase.Respond.streamTools: %v", err)
		if emitErr := emit(frame.NewError(userMessage(err))); emitErr != nil {
			return emitErr
		}
		return err
	}

	return emit(frame.NewMetadata(finishReason, usage))
}

// toContents maps conversation messages onto the provider's content roles.
// System notes are folded into the user role; assistant turns become model
// turns.
func toContents(messages []model.Message) []gemini.Content {
	contents := make([]gemini.Content, 0, len(messages))
	for _, m := range messages {
		role := "user"
		switch m.Role {
		case model.RoleAssistant:
			role = "model"
		case model.RoleFunction:
			role = "function"
		}
		contents = append(contents, gemini.Content{
			Role:  role,
			Parts: []gemini.Part{{Text: m.Content}},
		})
	}
	return contents
}

func candidateText(resp *gemini.GenerateResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	return sb.String()
}

func classify(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || ctx.Err() == context.DeadlineExceeded {
		return chat.ErrUpstreamTimeout
	}
	if errors.Is(err, context.Canceled) || ctx.Err() == context.Canceled {
		return fmt.Errorf("%w: %v", chat.ErrUpstreamProvider, context.Canceled)
	}
	return fmt.Errorf("%w: %v", chat.ErrUpstreamProvider, err)
}

// userMessage maps pipeline failures onto the message carried by the terminal
// Error frame. Provider details stay in the logs.
func userMessage(err error) string {
	switch {
	case errors.Is(err, chat.ErrUpstreamTimeout):
		return "응답 생성 시간이 초과되었습니다. 다시 시도해 주세요."
	case errors.Is(err, chat.ErrEmptyGrounding):
		return "지식 베이스에서 답변을 생성하지 못했습니다."
	default:
		return "응답 생성 중 오류가 발생했습니다."
	}
}
