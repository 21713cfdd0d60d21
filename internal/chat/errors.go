package chat

import "errors"

var (
	ErrInvalidRequest   = errors.New("no messages provided or last message is not from the user")
	ErrEmptyGrounding   = errors.New("grounding model returned no answer")
	ErrUpstreamTimeout  = errors.New("generation timed out")
	ErrUpstreamProvider = errors.New("generation provider error")
)
