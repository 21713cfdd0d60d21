package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cs-chat-simulator/internal/cache"
)

// Create godoc
// @Summary     Create a grounding context cache
// @Description Creates a server-side cache from uploaded document references. Duplicate concurrent requests are collapsed into one upstream call.
// @Tags        Cache
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Document references"
// @Success     200 {object} createResp
// @Failure     400 {object} map[string]string "No fileIds provided or invalid format"
// @Failure     500 {object} map[string]string "Creation failure"
// @Router      /api/v1/cache [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fileIds provided or invalid format"})
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		switch {
		case errors.Is(err, cache.ErrNoFileIDs):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, newCreateResp(output))
}

// Validate godoc
// @Summary     Validate a cache handle
// @Description Checks whether a cache still exists upstream. Never fails to the caller; remote errors yield valid=false.
// @Tags        Cache
// @Accept      json
// @Produce     json
// @Param       body body validateReq true "Cache name"
// @Success     200 {object} validateResp
// @Router      /api/v1/cache/validate [POST]
func (h *handler) Validate(c *gin.Context) {
	ctx := c.Request.Context()

	var req validateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, validateResp{Valid: false})
		return
	}

	output, err := h.uc.Validate(ctx, req.toInput())
	if err != nil {
		// Validate is contractually infallible; treat the unexpected as invalid.
		h.l.Errorf(ctx, "uc.Validate: %v", err)
		c.JSON(http.StatusOK, validateResp{Valid: false})
		return
	}

	c.JSON(http.StatusOK, newValidateResp(output))
}
