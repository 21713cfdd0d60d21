package backoffice

import "errors"

var (
	ErrOrderNotFound  = errors.New("order not found")
	ErrUserNotFound   = errors.New("user not found")
	ErrNotCancellable = errors.New("order can no longer be cancelled")
)
