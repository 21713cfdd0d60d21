package http

import (
	"errors"
	"net/http"

	"cs-chat-simulator/internal/backoffice"
	"cs-chat-simulator/pkg/response"
)

type refundReq struct {
	Amount float64 `json:"amount"`
	Reason string  `json:"reason"`
}

type replacementReq struct {
	ProductID string `json:"product_id" binding:"required"`
}

type returnReq struct {
	ProductIDs []string `json:"product_ids"`
}

type updateInfoReq struct {
	Info map[string]string `json:"info" binding:"required"`
}

type voucherReq struct {
	UserID string  `json:"user_id" binding:"required"`
	Amount float64 `json:"amount" binding:"required"`
	Reason string  `json:"reason"`
}

type caseReq struct {
	UserID  string `json:"user_id" binding:"required"`
	Type    string `json:"type" binding:"required"`
	Details string `json:"details"`
	OrderID string `json:"order_id"`
}

func mapError(err error) error {
	switch {
	case errors.Is(err, backoffice.ErrOrderNotFound),
		errors.Is(err, backoffice.ErrUserNotFound):
		return response.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, backoffice.ErrNotCancellable):
		return response.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return err
	}
}
