package http

import (
	"cs-chat-simulator/internal/chat"
	"cs-chat-simulator/internal/model"
)

type messageReq struct {
	Role    string `json:"role" binding:"required"`
	Content string `json:"content"`
}

type sessionInfoReq struct {
	UserID    string `json:"userId"`
	SessionID string `json:"sessionId"`
}

type respondReq struct {
	Messages    []messageReq    `json:"messages" binding:"required,min=1"`
	CacheName   string          `json:"cacheName"`
	UseMockData *bool           `json:"useMockData"`
	SessionInfo *sessionInfoReq `json:"sessionInfo"`
}

func (r respondReq) toInput(defaultUser string, defaultMock bool) chat.RespondInput {
	messages := make([]model.Message, 0, len(r.Messages))
	for _, m := range r.Messages {
		messages = append(messages, model.Message{
			Role:    model.Role(m.Role),
			Content: m.Content,
		})
	}

	useMock := defaultMock
	if r.UseMockData != nil {
		useMock = *r.UseMockData
	}

	userID := defaultUser
	if r.SessionInfo != nil && r.SessionInfo.UserID != "" {
		userID = r.SessionInfo.UserID
	}

	return chat.RespondInput{
		Messages:  messages,
		CacheName: r.CacheName,
		UserID:    userID,
		UseMock:   useMock,
	}
}
