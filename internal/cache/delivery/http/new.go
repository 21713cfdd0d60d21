package http

import (
	"github.com/gin-gonic/gin"

	"cs-chat-simulator/internal/cache"
	"cs-chat-simulator/pkg/log"
)

type handler struct {
	l  log.Logger
	uc cache.UseCase
}

// New creates a new HTTP handler for the cache domain.
func New(l log.Logger, uc cache.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	caches := rg.Group("/cache")
	{
		caches.POST("", h.Create)
		caches.POST("/validate", h.Validate)
	}
}
