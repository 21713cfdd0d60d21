package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"cs-chat-simulator/internal/cache"
	"cs-chat-simulator/pkg/gemini"
)

const cacheSystemInstruction = "Answer by referring to the cached content and say you don't know for things not in the cached content."

// Create builds a grounding context from the given document references.
// Concurrent calls with the same (order-independent) set of fileIds within the
// dedup window share a single upstream creation call and observe the same
// result or the same failure.
func (uc *implUseCase) Create(ctx context.Context, input cache.CreateInput) (cache.CreateOutput, error) {
	if len(input.FileIDs) == 0 {
		return cache.CreateOutput{}, cache.ErrNoFileIDs
	}

	key := dedupKey(input.FileIDs)

	uc.mu.Lock()
	if existing, ok := uc.inflight.Get(key); ok {
		uc.mu.Unlock()
		uc.l.Infof(ctx, "Duplicate cache creation request for key %s, joining in-flight call", key)
		return uc.await(ctx, existing)
	}

	c := &creation{done: make(chan struct{})}
	uc.inflight.Add(key, c)
	uc.mu.Unlock()

	c.out, c.err = uc.createCache(ctx, input.FileIDs)
	close(c.done)

	if c.err == nil {
		uc.validated.Add(c.out.CacheName, time.Now())
	}
	return c.out, c.err
}

// await blocks until the shared creation settles or the caller's context ends.
func (uc *implUseCase) await(ctx context.Context, c *creation) (cache.CreateOutput, error) {
	select {
	case <-c.done:
		return c.out, c.err
	case <-ctx.Done():
		return cache.CreateOutput{}, ctx.Err()
	}
}

// createCache performs the actual remote work: resolve each file, skip the
// ones that are not ready, and create one cached content from the rest.
func (uc *implUseCase) createCache(ctx context.Context, fileIDs []string) (cache.CreateOutput, error) {
	uc.l.Infof(ctx, "Creating cache for files: %s", strings.Join(fileIDs, ", "))

	var parts []gemini.Content
	for _, fileID := range fileIDs {
		file, err := uc.api.GetFile(ctx, fileID)
		if err != nil {
			uc.l.Warnf(ctx, "Error resolving file %s, skipping: %v", fileID, err)
			continue
		}
		if file.State != gemini.FileStateActive && file.State != gemini.FileStateUnspecified {
			uc.l.Warnf(ctx, "File %s is in state %s, skipping", fileID, file.State)
			continue
		}
		parts = append(parts, gemini.Content{
			Parts: []gemini.Part{{
				FileData: &gemini.FileData{FileURI: file.URI, MimeType: file.MimeType},
			}},
		})
	}

	if len(parts) == 0 {
		return cache.CreateOutput{}, cache.ErrNoValidDocuments
	}

	created, err := uc.api.CreateCachedContent(ctx, gemini.CachedContentRequest{
		Contents: parts,
		SystemInstruction: &gemini.Content{
			Parts: []gemini.Part{{Text: cacheSystemInstruction}},
		},
		TTL: fmt.Sprintf("%ds", cacheTTLSeconds),
	})
	if err != nil {
		return cache.CreateOutput{}, fmt.Errorf("failed to create cache: %w", err)
	}

	uc.l.Infof(ctx, "Cache created successfully: %s", created.Name)

	return cache.CreateOutput{
		CacheName:  created.Name,
		TTLSeconds: cacheTTLSeconds,
	}, nil
}

// dedupKey builds the order-independent key for a document reference set.
func dedupKey(fileIDs []string) string {
	sorted := make([]string, len(fileIDs))
	copy(sorted, fileIDs)
	sort.Strings(sorted)
	return strings.Join(sorted, ",")
}
