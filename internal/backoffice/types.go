package backoffice

// OrderItem is one line item on an order.
type OrderItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// Order is a demo order record.
type Order struct {
	ID                 string      `json:"id"`
	Date               string      `json:"date"`
	Status             string      `json:"status"`
	TrackingNumber     string      `json:"tracking_number,omitempty"`
	CancellationReason string      `json:"cancellation_reason,omitempty"`
	RefundStatus       string      `json:"refund_status,omitempty"`
	RefundAmount       float64     `json:"refund_amount,omitempty"`
	ReturnInitiated    bool        `json:"return_initiated,omitempty"`
	Complaint          string      `json:"complaint,omitempty"`
	Items              []OrderItem `json:"items,omitempty"`
}

// User is a demo customer profile.
type User struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone"`
	Address      string   `json:"address"`
	OrderHistory []string `json:"order_history"`
}

// Voucher is a compensation voucher issued to a customer.
type Voucher struct {
	ID     string  `json:"id"`
	UserID string  `json:"user_id"`
	Amount float64 `json:"amount"`
	Reason string  `json:"reason"`
	Status string  `json:"status"`
}

// Complaint is a formal complaint record.
type Complaint struct {
	ID      string `json:"id"`
	UserID  string `json:"user_id"`
	Type    string `json:"type"`
	Details string `json:"details"`
	OrderID string `json:"order_id,omitempty"`
	Status  string `json:"status"`
}

// Ticket is a support ticket record.
type Ticket struct {
	ID      string `json:"id"`
	UserID  string `json:"user_id"`
	Type    string `json:"type"`
	Details string `json:"details"`
	OrderID string `json:"order_id,omitempty"`
	Status  string `json:"status"`
}
