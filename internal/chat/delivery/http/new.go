package http

import (
	"github.com/gin-gonic/gin"

	"cs-chat-simulator/internal/chat"
	"cs-chat-simulator/pkg/log"
)

type handler struct {
	l           log.Logger
	uc          chat.UseCase
	defaultUser string
	useMockData bool
}

// New creates a new HTTP handler for the chat domain.
func New(l log.Logger, uc chat.UseCase, defaultUser string, useMockData bool) *handler {
	return &handler{
		l:           l,
		uc:          uc,
		defaultUser: defaultUser,
		useMockData: useMockData,
	}
}

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.POST("/chat", h.Respond)
}
