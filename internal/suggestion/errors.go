package suggestion

import "errors"

var (
	ErrNothingPending = errors.New("no pending suggestion")
	ErrUnknownAction  = errors.New("unknown recommended action")
)
