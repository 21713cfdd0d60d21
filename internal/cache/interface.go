package cache

import (
	"context"

	"cs-chat-simulator/pkg/gemini"
)

// UseCase is the context cache manager.
type UseCase interface {
	// Create builds a grounding context from document references, collapsing
	// concurrent duplicate requests into one upstream call.
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)

	// Validate checks whether a cache handle still exists upstream. Remote
	// failures yield Valid=false, never an error.
	Validate(ctx context.Context, input ValidateInput) (ValidateOutput, error)
}

// ContextAPI is the slice of the Gemini client the cache manager needs.
type ContextAPI interface {
	GetFile(ctx context.Context, fileID string) (*gemini.File, error)
	CreateCachedContent(ctx context.Context, req gemini.CachedContentRequest) (*gemini.CachedContent, error)
	ListCachedContents(ctx context.Context) ([]gemini.CachedContent, error)
}
