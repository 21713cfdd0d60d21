package tools

import (
	"context"
	"fmt"
)

// GetOrderTool looks up a single order. Pure read; no confirmation needed.
type GetOrderTool struct {
	api *api
}

func (t *GetOrderTool) Name() string {
	return "get_order"
}

func (t *GetOrderTool) Description() string {
	return "Get details for a single order by its order ID."
}

func (t *GetOrderTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"order_id": map[string]interface{}{
				"type":        "string",
				"description": "Order ID to get details for",
			},
		},
		"required": []string{"order_id"},
	}
}

func (t *GetOrderTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	orderID, err := stringParam(params, "order_id")
	if err != nil {
		return nil, err
	}
	return t.api.get(ctx, "/api/v1/orders/"+orderID)
}

// CancelOrderTool cancels an order. Confirmation-required.
type CancelOrderTool struct {
	api *api
}

func (t *CancelOrderTool) Name() string {
	return "cancel_order"
}

func (t *CancelOrderTool) Description() string {
	return "Cancel an order that has not shipped yet."
}

func (t *CancelOrderTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"order_id": map[string]interface{}{
				"type":        "string",
				"description": "Order ID to cancel",
			},
		},
		"required": []string{"order_id"},
	}
}

func (t *CancelOrderTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	orderID, err := stringParam(params, "order_id")
	if err != nil {
		return nil, err
	}
	return t.api.post(ctx, fmt.Sprintf("/api/v1/orders/%s/cancel", orderID), map[string]interface{}{})
}

// CreateRefundTool creates a refund against an order. Confirmation-required.
type CreateRefundTool struct {
	api *api
}

func (t *CreateRefundTool) Name() string {
	return "create_refund"
}

func (t *CreateRefundTool) Description() string {
	return "Create a refund for an order with an amount and a reason."
}

func (t *CreateRefundTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"order_id": map[string]interface{}{
				"type":        "string",
				"description": "Order ID to create refund for",
			},
			"amount": map[string]interface{}{
				"type":        "number",
				"description": "Amount to refund",
			},
			"reason": map[string]interface{}{
				"type":        "string",
				"description": "Reason for refund",
			},
		},
		"required": []string{"order_id"},
	}
}

func (t *CreateRefundTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	orderID, err := stringParam(params, "order_id")
	if err != nil {
		return nil, err
	}
	return t.api.post(ctx, fmt.Sprintf("/api/v1/orders/%s/create_refund", orderID), map[string]interface{}{
		"amount": params["amount"],
		"reason": params["reason"],
	})
}

// SendReplacementTool ships a replacement product. Confirmation-required.
type SendReplacementTool struct {
	api *api
}

func (t *SendReplacementTool) Name() string {
	return "send_replacement"
}

func (t *SendReplacementTool) Description() string {
	return "Send a replacement for a product in an order."
}

func (t *SendReplacementTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"product_id": map[string]interface{}{
				"type":        "string",
				"description": "Product ID to send replacement for",
			},
			"order_id": map[string]interface{}{
				"type":        "string",
				"description": "Order ID to send replacement for",
			},
		},
		"required": []string{"product_id", "order_id"},
	}
}

func (t *SendReplacementTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	orderID, err := stringParam(params, "order_id")
	if err != nil {
		return nil, err
	}
	productID, err := stringParam(params, "product_id")
	if err != nil {
		return nil, err
	}
	return t.api.post(ctx, fmt.Sprintf("/api/v1/orders/%s/send_replacement", orderID), map[string]interface{}{
		"product_id": productID,
	})
}

// CreateReturnTool initiates a product return. Confirmation-required.
type CreateReturnTool struct {
	api *api
}

func (t *CreateReturnTool) Name() string {
	return "create_return"
}

func (t *CreateReturnTool) Description() string {
	return "Create a return for one or more products in an order."
}

func (t *CreateReturnTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"order_id": map[string]interface{}{
				"type":        "string",
				"description": "Order ID to create return for",
			},
			"product_ids": map[string]interface{}{
				"type":        "array",
				"description": "Product IDs to create return for",
				"items":       map[string]interface{}{"type": "string"},
			},
		},
		"required": []string{"order_id", "product_ids"},
	}
}

func (t *CreateReturnTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	orderID, err := stringParam(params, "order_id")
	if err != nil {
		return nil, err
	}
	return t.api.post(ctx, fmt.Sprintf("/api/v1/orders/%s/create_return", orderID), map[string]interface{}{
		"product_ids": params["product_ids"],
	})
}
