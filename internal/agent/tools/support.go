package tools

import "context"

// IssueVoucherTool grants a goodwill voucher. Confirmation-required.
type IssueVoucherTool struct {
	api *api
}

func (t *IssueVoucherTool) Name() string {
	return "issue_voucher"
}

func (t *IssueVoucherTool) Description() string {
	return "Issue a voucher to a user with an amount and a reason."
}

func (t *IssueVoucherTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"user_id": map[string]interface{}{
				"type":        "string",
				"description": "User ID to issue voucher for",
			},
			"amount": map[string]interface{}{
				"type":        "number",
				"description": "Amount to issue voucher for",
			},
			"reason": map[string]interface{}{
				"type":        "string",
				"description": "Reason for issuing voucher",
			},
		},
		"required": []string{"user_id"},
	}
}

func (t *IssueVoucherTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	userID, err := stringParam(params, "user_id")
	if err != nil {
		return nil, err
	}
	return t.api.post(ctx, "/api/v1/vouchers/create", map[string]interface{}{
		"user_id": userID,
		"amount":  params["amount"],
		"reason":  params["reason"],
	})
}

// CreateComplaintTool records a formal complaint. Confirmation-required.
type CreateComplaintTool struct {
	api *api
}

func (t *CreateComplaintTool) Name() string {
	return "create_complaint"
}

func (t *CreateComplaintTool) Description() string {
	return "Create a complaint record for a user, optionally linked to an order."
}

func (t *CreateComplaintTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"user_id": map[string]interface{}{
				"type":        "string",
				"description": "User ID to create complaint for",
			},
			"type": map[string]interface{}{
				"type":        "string",
				"description": "Type of complaint",
				"enum":        []string{"product_quality", "order_delay", "delivery_issues", "other"},
			},
			"details": map[string]interface{}{
				"type":        "string",
				"description": "Details of the complaint",
			},
			"order_id": map[string]interface{}{
				"type":        "string",
				"description": "Order ID linked to the complaint, N/A if not linked to an order",
			},
		},
		"required": []string{"user_id", "type", "details"},
	}
}

func (t *CreateComplaintTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	userID, err := stringParam(params, "user_id")
	if err != nil {
		return nil, err
	}
	return t.api.post(ctx, "/api/v1/complaints/create", map[string]interface{}{
		"user_id":  userID,
		"type":     params["type"],
		"details":  params["details"],
		"order_id": params["order_id"],
	})
}

// CreateTicketTool opens a follow-up ticket. Auto-executable: it has no side
// effect visible to the customer.
type CreateTicketTool struct {
	api *api
}

func (t *CreateTicketTool) Name() string {
	return "create_ticket"
}

func (t *CreateTicketTool) Description() string {
	return "Create an internal follow-up ticket for a user, optionally linked to an order."
}

func (t *CreateTicketTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"user_id": map[string]interface{}{
				"type":        "string",
				"description": "User ID to create ticket for",
			},
			"type": map[string]interface{}{
				"type":        "string",
				"description": "Type of ticket",
				"enum":        []string{"bug_reported", "damaged_product", "other"},
			},
			"details": map[string]interface{}{
				"type":        "string",
				"description": "Details of the ticket",
			},
			"order_id": map[string]interface{}{
				"type":        "string",
				"description": "Order ID linked to the ticket, N/A if not linked to an order",
			},
		},
		"required": []string{"user_id", "type", "details"},
	}
}

func (t *CreateTicketTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	userID, err := stringParam(params, "user_id")
	if err != nil {
		return nil, err
	}
	return t.api.post(ctx, "/api/v1/tickets/create", map[string]interface{}{
		"user_id":  userID,
		"type":     params["type"],
		"details":  params["details"],
		"order_id": params["order_id"],
	})
}
