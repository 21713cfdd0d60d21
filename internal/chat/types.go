package chat

import (
	"cs-chat-simulator/internal/model"
)

type RespondInput struct {
	Messages  []model.Message
	CacheName string
	UserID    string
	UseMock   bool
}

// ValidateInput rejects turns that must fail before any frame is emitted:
// an empty conversation, or one whose last message is not from the user.
func ValidateInput(input RespondInput) error {
	if _, ok := model.LastUserMessage(input.Messages); !ok {
		return ErrInvalidRequest
	}
	return nil
}
