package cache

import "time"

// Handle is a client-side record of a server-side grounding context.
type Handle struct {
	Name            string
	CreatedAt       time.Time
	LastValidatedAt *time.Time
}

// CreateInput carries the document references to cache.
type CreateInput struct {
	FileIDs []string
}

// CreateOutput is the created handle.
type CreateOutput struct {
	CacheName  string
	TTLSeconds int
}

// ValidateInput names the handle to check.
type ValidateInput struct {
	CacheName string
}

// ValidateOutput reports handle validity; Cache is set only when valid.
type ValidateOutput struct {
	Valid bool
	Cache *Info
}

// Info describes a live upstream cache entry.
type Info struct {
	Name       string
	CreateTime string
	UpdateTime string
}
