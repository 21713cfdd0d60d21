package cache

import "errors"

var (
	// ErrNoFileIDs is returned when the input document set is empty.
	ErrNoFileIDs = errors.New("no fileIds provided")

	// ErrNoValidDocuments is returned when none of the referenced documents is
	// in an active state.
	ErrNoValidDocuments = errors.New("no valid files to cache")

	// ErrCacheInvalid marks a handle that is no longer usable upstream.
	ErrCacheInvalid = errors.New("cache is no longer valid")
)
