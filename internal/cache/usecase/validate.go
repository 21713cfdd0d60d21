package usecase

import (
	"context"
	"time"

	"cs-chat-simulator/internal/cache"
)

// Validate checks whether a handle still exists upstream. A handle validated
// within the trust window is trusted without a remote call. Remote failures
// are conservative: unknown means invalid, and the caller gets Valid=false
// rather than an error.
func (uc *implUseCase) Validate(ctx context.Context, input cache.ValidateInput) (cache.ValidateOutput, error) {
	if input.CacheName == "" {
		return cache.ValidateOutput{Valid: false}, nil
	}

	if _, ok := uc.validated.Get(input.CacheName); ok {
		uc.l.Debugf(ctx, "Cache %s validated recently, trusting without remote check", input.CacheName)
		return cache.ValidateOutput{
			Valid: true,
			Cache: &cache.Info{Name: input.CacheName},
		}, nil
	}

	uc.l.Infof(ctx, "Validating cache: %s", input.CacheName)

	entries, err := uc.api.ListCachedContents(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "Error listing caches, treating %s as invalid: %v", input.CacheName, err)
		return cache.ValidateOutput{Valid: false}, nil
	}

	for _, entry := range entries {
		if entry.Name != input.CacheName {
			continue
		}
		uc.validated.Add(input.CacheName, time.Now())
		return cache.ValidateOutput{
			Valid: true,
			Cache: &cache.Info{
				Name:       entry.Name,
				CreateTime: entry.CreateTime,
				UpdateTime: entry.UpdateTime,
			},
		}, nil
	}

	uc.l.Infof(ctx, "Cache %s not found in remote listing: %v", input.CacheName, cache.ErrCacheInvalid)
	return cache.ValidateOutput{Valid: false}, nil
}
