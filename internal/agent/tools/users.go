package tools

import (
	"context"
	"fmt"
)

// GetOrderHistoryTool lists a customer's orders. Pure read.
type GetOrderHistoryTool struct {
	api *api
}

func (t *GetOrderHistoryTool) Name() string {
	return "get_order_history"
}

func (t *GetOrderHistoryTool) Description() string {
	return "Get the order history for a user."
}

func (t *GetOrderHistoryTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"user_id": map[string]interface{}{
				"type":        "string",
				"description": "User ID to get order history for",
			},
		},
		"required": []string{"user_id"},
	}
}

func (t *GetOrderHistoryTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	userID, err := stringParam(params, "user_id")
	if err != nil {
		return nil, err
	}
	return t.api.get(ctx, fmt.Sprintf("/api/v1/users/%s/order_history", userID))
}

// ResetPasswordTool sends a password reset email. Confirmation-required.
type ResetPasswordTool struct {
	api *api
}

func (t *ResetPasswordTool) Name() string {
	return "reset_password"
}

func (t *ResetPasswordTool) Description() string {
	return "Send a password reset email to a user."
}

func (t *ResetPasswordTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"user_id": map[string]interface{}{
				"type":        "string",
				"description": "User ID to send password reset email to",
			},
		},
		"required": []string{"user_id"},
	}
}

func (t *ResetPasswordTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	userID, err := stringParam(params, "user_id")
	if err != nil {
		return nil, err
	}
	return t.api.post(ctx, fmt.Sprintf("/api/v1/users/%s/reset_password", userID), map[string]interface{}{})
}

// UpdateInfoTool updates one customer profile field. Confirmation-required.
type UpdateInfoTool struct {
	api *api
}

func (t *UpdateInfoTool) Name() string {
	return "update_info"
}

func (t *UpdateInfoTool) Description() string {
	return "Update a single profile field (email, phone, address, or name) for a user."
}

func (t *UpdateInfoTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"user_id": map[string]interface{}{
				"type":        "string",
				"description": "User ID to update information for",
			},
			"info": map[string]interface{}{
				"type":        "object",
				"description": "Information to update",
				"properties": map[string]interface{}{
					"field": map[string]interface{}{
						"type":        "string",
						"description": "Field to update",
						"enum":        []string{"email", "phone", "address", "name"},
					},
					"value": map[string]interface{}{
						"type":        "string",
						"description": "Value to update",
					},
				},
				"required": []string{"field", "value"},
			},
		},
		"required": []string{"user_id", "info"},
	}
}

func (t *UpdateInfoTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	userID, err := stringParam(params, "user_id")
	if err != nil {
		return nil, err
	}
	return t.api.post(ctx, fmt.Sprintf("/api/v1/users/%s/update_info", userID), map[string]interface{}{
		"info": params["info"],
	})
}
