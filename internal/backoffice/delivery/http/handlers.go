package http

import (
	"github.com/gin-gonic/gin"

	"cs-chat-simulator/pkg/response"
)

// GetOrder godoc
// @Summary Fetch one order
// @Tags    Backoffice
// @Produce json
// @Param   id path string true "Order ID"
// @Success 200 {object} response.Resp
// @Router  /api/v1/orders/{id} [GET]
func (h *handler) GetOrder(c *gin.Context) {
	order, err := h.store.GetOrder(c.Param("id"))
	if err != nil {
		response.Error(c, mapError(err))
		return
	}
	response.OK(c, order)
}

// CancelOrder godoc
// @Summary Cancel an order that has not shipped
// @Tags    Backoffice
// @Produce json
// @Param   id path string true "Order ID"
// @Success 200 {object} response.Resp
// @Router  /api/v1/orders/{id}/cancel [POST]
func (h *handler) CancelOrder(c *gin.Context) {
	order, err := h.store.CancelOrder(c.Param("id"))
	if err != nil {
		response.Error(c, mapError(err))
		return
	}
	response.OK(c, order)
}

// CreateRefund godoc
// @Summary Refund an order
// @Tags    Backoffice
// @Accept  json
// @Produce json
// @Param   id path string true "Order ID"
// @Param   body body refundReq true "Refund details"
// @Success 200 {object} response.Resp
// @Router  /api/v1/orders/{id}/create_refund [POST]
func (h *handler) CreateRefund(c *gin.Context) {
	var req refundReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	order, err := h.store.CreateRefund(c.Param("id"), req.Amount, req.Reason)
	if err != nil {
		response.Error(c, mapError(err))
		return
	}
	response.OK(c, order)
}

// SendReplacement godoc
// @Summary Ship a replacement for one product on an order
// @Tags    Backoffice
// @Accept  json
// @Produce json
// @Param   id path string true "Order ID"
// @Param   body body replacementReq true "Replacement details"
// @Success 200 {object} response.Resp
// @Router  /api/v1/orders/{id}/send_replacement [POST]
func (h *handler) SendReplacement(c *gin.Context) {
	var req replacementReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	order, err := h.store.SendReplacement(c.Param("id"), req.ProductID)
	if err != nil {
		response.Error(c, mapError(err))
		return
	}
	response.OK(c, order)
}

// CreateReturn godoc
// @Summary Initiate a return against an order
// @Tags    Backoffice
// @Accept  json
// @Produce json
// @Param   id path string true "Order ID"
// @Param   body body returnReq true "Return details"
// @Success 200 {object} response.Resp
// @Router  /api/v1/orders/{id}/create_return [POST]
func (h *handler) CreateReturn(c *gin.Context) {
	var req returnReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	order, err := h.store.CreateReturn(c.Param("id"))
	if err != nil {
		response.Error(c, mapError(err))
		return
	}
	response.OK(c, order)
}

// OrderHistory godoc
// @Summary List a customer's orders
// @Tags    Backoffice
// @Produce json
// @Param   id path string true "Customer ID"
// @Success 200 {object} response.Resp
// @Router  /api/v1/users/{id}/order_history [GET]
func (h *handler) OrderHistory(c *gin.Context) {
	orders, err := h.store.OrderHistory(c.Param("id"))
	if err != nil {
		response.Error(c, mapError(err))
		return
	}
	response.OK(c, orders)
}

// ResetPassword godoc
// @Summary Send a password reset link to the customer
// @Tags    Backoffice
// @Produce json
// @Param   id path string true "Customer ID"
// @Success 200 {object} response.Resp
// @Router  /api/v1/users/{id}/reset_password [POST]
func (h *handler) ResetPassword(c *gin.Context) {
	user, err := h.store.ResetPassword(c.Param("id"))
	if err != nil {
		response.Error(c, mapError(err))
		return
	}
	response.OK(c, gin.H{
		"message": "Password reset link sent",
		"email":   user.Email,
	})
}

// UpdateInfo godoc
// @Summary Update customer profile fields
// @Tags    Backoffice
// @Accept  json
// @Produce json
// @Param   id path string true "Customer ID"
// @Param   body body updateInfoReq true "Fields to update"
// @Success 200 {object} response.Resp
// @Router  /api/v1/users/{id}/update_info [POST]
func (h *handler) UpdateInfo(c *gin.Context) {
	var req updateInfoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	user, err := h.store.UpdateInfo(c.Param("id"), req.Info)
	if err != nil {
		response.Error(c, mapError(err))
		return
	}
	response.OK(c, user)
}

// CreateVoucher godoc
// @Summary Issue a compensation voucher
// @Tags    Backoffice
// @Accept  json
// @Produce json
// @Param   body body voucherReq true "Voucher details"
// @Success 200 {object} response.Resp
// @Router  /api/v1/vouchers/create [POST]
func (h *handler) CreateVoucher(c *gin.Context) {
	var req voucherReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, h.store.CreateVoucher(req.UserID, req.Amount, req.Reason))
}

// CreateComplaint godoc
// @Summary File a formal complaint
// @Tags    Backoffice
// @Accept  json
// @Produce json
// @Param   body body caseReq true "Complaint details"
// @Success 200 {object} response.Resp
// @Router  /api/v1/complaints/create [POST]
func (h *handler) CreateComplaint(c *gin.Context) {
	var req caseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, h.store.CreateComplaint(req.UserID, req.Type, req.Details, req.OrderID))
}

// CreateTicket godoc
// @Summary Open a support ticket
// @Tags    Backoffice
// @Accept  json
// @Produce json
// @Param   body body caseReq true "Ticket details"
// @Success 200 {object} response.Resp
// @Router  /api/v1/tickets/create [POST]
func (h *handler) CreateTicket(c *gin.Context) {
	var req caseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, h.store.CreateTicket(req.UserID, req.Type, req.Details, req.OrderID))
}
