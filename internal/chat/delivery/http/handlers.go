package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cs-chat-simulator/internal/chat"
	"cs-chat-simulator/internal/frame"
)

// Respond godoc
// @Summary     Stream a suggested reply for the conversation
// @Description Runs a grounding call then a tool-capable streaming call and emits newline-delimited JSON frames. Errors after the headers are sent arrive as a terminal error frame on the stream.
// @Tags        Chat
// @Accept      json
// @Produce     text/event-stream
// @Param       body body respondReq true "Conversation"
// @Success     200 {string} string "NDJSON frame stream"
// @Failure     400 {object} map[string]string "Invalid request"
// @Router      /api/v1/chat [POST]
func (h *handler) Respond(c *gin.Context) {
	ctx := c.Request.Context()

	var req respondReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": chat.ErrInvalidRequest.Error()})
		return
	}

	input := req.toInput(h.defaultUser, h.useMockData)
	if err := chat.ValidateInput(input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Type", "text/event-stream; charset=utf-8")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Writer.WriteHeader(http.StatusOK)
	c.Writer.Flush()

	enc := frame.NewEncoder(c.Writer)
	err := h.uc.Respond(ctx, input, enc.Encode)
	if err != nil && !errors.Is(err, chat.ErrInvalidRequest) {
		// The terminal Error frame already went out; this is for the logs.
		h.l.Errorf(ctx, "uc.Respond: %v", err)
	}
}
