package usecase

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"cs-chat-simulator/internal/cache"
	"cs-chat-simulator/pkg/log"
)

const (
	// dedupWindow bounds how long an in-flight creation collapses duplicates.
	// Purging on this timer regardless of completion bounds memory under retry
	// storms; a creation outliving the window can be duplicated upstream.
	dedupWindow = 60 * time.Second

	// trustWindow is how long a validated handle is trusted without a remote
	// check.
	trustWindow = 5 * time.Minute

	// cacheTTLSeconds is the upstream lifetime requested for new caches.
	cacheTTLSeconds = 3600

	maxTrackedEntries = 1000
)

// creation is one in-flight cache creation future. Waiters hold the pointer,
// so expiry of the dedup entry never loses them the result.
type creation struct {
	done chan struct{}
	out  cache.CreateOutput
	err  error
}

// implUseCase is the private implementation of cache.UseCase.
type implUseCase struct {
	api cache.ContextAPI
	l   log.Logger

	// mu serializes the check-then-insert on inflight so at most one creation
	// future exists per key.
	mu        sync.Mutex
	inflight  *expirable.LRU[string, *creation]
	validated *expirable.LRU[string, time.Time]
}

// New creates a new cache UseCase implementation.
func New(api cache.ContextAPI, l log.Logger) *implUseCase {
	return &implUseCase{
		api:       api,
		l:         l,
		inflight:  expirable.NewLRU[string, *creation](maxTrackedEntries, nil, dedupWindow),
		validated: expirable.NewLRU[string, time.Time](maxTrackedEntries, nil, trustWindow),
	}
}
