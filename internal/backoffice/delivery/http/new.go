package http

import (
	"github.com/gin-gonic/gin"

	"cs-chat-simulator/internal/backoffice"
	"cs-chat-simulator/pkg/log"
)

type handler struct {
	l     log.Logger
	store *backoffice.Store
}

// New creates a new HTTP handler over the demo backoffice store.
func New(l log.Logger, store *backoffice.Store) *handler {
	return &handler{
		l:     l,
		store: store,
	}
}

// RegisterRoutes maps the backoffice API surface the agent tools call.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	orders := rg.Group("/orders")
	{
		orders.GET("/:id", h.GetOrder)
		orders.POST("/:id/cancel", h.CancelOrder)
		orders.POST("/:id/create_refund", h.CreateRefund)
		orders.POST("/:id/send_replacement", h.SendReplacement)
		orders.POST("/:id/create_return", h.CreateReturn)
	}

	users := rg.Group("/users")
	{
		users.GET("/:id/order_history", h.OrderHistory)
		users.POST("/:id/reset_password", h.ResetPassword)
		users.POST("/:id/update_info", h.UpdateInfo)
	}

	rg.POST("/vouchers/create", h.CreateVoucher)
	rg.POST("/complaints/create", h.CreateComplaint)
	rg.POST("/tickets/create", h.CreateTicket)
}
