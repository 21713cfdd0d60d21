package backoffice

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store is the in-memory demo backoffice. It exists so the agent tools have a
// real collaborator to call; everything lives behind one mutex.
type Store struct {
	mu         sync.Mutex
	users      map[string]*User
	orders     map[string]*Order
	vouchers   map[string]*Voucher
	complaints map[string]*Complaint
	tickets    map[string]*Ticket
}

func daysAgo(d int) string {
	return time.Now().AddDate(0, 0, -d).Format("2006-01-02")
}

// NewStore returns a store seeded with the demo customer and orders.
func NewStore() *Store {
	s := &Store{
		users:      make(map[string]*User),
		orders:     make(map[string]*Order),
		vouchers:   make(map[string]*Voucher),
		complaints: make(map[string]*Complaint),
		tickets:    make(map[string]*Ticket),
	}

	s.users["cus_28X44"] = &User{
		ID:      "cus_28X44",
		Name:    "김고객",
		Email:   "customer@example.com",
		Phone:   "010-1234-5678",
		Address: "123 Main St, Anytown, USA",
		OrderHistory: []string{
			"ORD1001", "ORD1002", "ORD1003", "ORD1004", "ORD1005", "ORD1006", "ORD1007",
		},
	}

	seed := []*Order{
		{
			ID: "ORD1001", Date: daysAgo(1), Status: "pending",
			Items: []OrderItem{{ProductID: "P003", Name: "Smart Watch", Quantity: 1, Price: 149.99}},
		},
		{
			ID: "ORD1002", Date: daysAgo(8), Status: "completed",
			Items: []OrderItem{
				{ProductID: "P001", Name: "Wireless Headphones", Quantity: 1, Price: 99.99},
				{ProductID: "P002", Name: "Portable Charger", Quantity: 1, Price: 39.99},
			},
		},
		{
			ID: "ORD1003", Date: daysAgo(24), Status: "shipped", TrackingNumber: "TRK123456789",
			Items: []OrderItem{{ProductID: "P004", Name: "Bluetooth Speaker", Quantity: 2, Price: 59.99}},
		},
		{
			ID: "ORD1004", Date: daysAgo(28), Status: "cancelled",
			CancellationReason: "Customer requested cancellation before processing",
		},
		{
			ID: "ORD1005", Date: daysAgo(44), Status: "refunded", RefundStatus: "processing", RefundAmount: 149.99,
			Items: []OrderItem{{ProductID: "P005", Name: "Laptop Stand", Quantity: 1, Price: 149.99}},
		},
		{
			ID: "ORD1006", Date: daysAgo(96), Status: "delivered", ReturnInitiated: true,
			Items: []OrderItem{{ProductID: "P006", Name: "Ergonomic Keyboard", Quantity: 1, Price: 89.99}},
		},
		{
			ID: "ORD1007", Date: daysAgo(108), Status: "completed",
			Complaint: "Order delivered with damaged product",
			Items:     []OrderItem{{ProductID: "P007", Name: "Noise Cancelling Earbuds", Quantity: 1, Price: 129.99}},
		},
	}
	for _, o := range seed {
		s.orders[o.ID] = o
	}
	return s
}

func newID(prefix string) string {
	return prefix + "-" + strings.ToUpper(uuid.NewString()[:8])
}

// GetOrder returns a copy of the order.
func (s *Store) GetOrder(orderID string) (Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[orderID]
	if !ok {
		return Order{}, fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
	}
	return *o, nil
}

// CancelOrder cancels an order that has not shipped yet.
func (s *Store) CancelOrder(orderID string) (Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[orderID]
	if !ok {
		return Order{}, fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
	}
	switch o.Status {
	case "pending", "processing":
		o.Status = "cancelled"
		o.CancellationReason = "Cancelled at customer request"
		return *o, nil
	default:
		return Order{}, fmt.Errorf("%w: %s is %s", ErrNotCancellable, orderID, o.Status)
	}
}

// CreateRefund marks an order refunded with the given amount.
func (s *Store) CreateRefund(orderID string, amount float64, reason string) (Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[orderID]
	if !ok {
		return Order{}, fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
	}
	if amount <= 0 {
		amount = orderTotal(o)
	}
	o.Status = "refunded"
	o.RefundStatus = "processing"
	o.RefundAmount = amount
	_ = reason
	return *o, nil
}

// SendReplacement records a replacement shipment for one product on the order.
func (s *Store) SendReplacement(orderID, productID string) (Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[orderID]
	if !ok {
		return Order{}, fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
	}
	o.TrackingNumber = newID("TRK")
	_ = productID
	return *o, nil
}

// CreateReturn initiates a return against the order.
func (s *Store) CreateReturn(orderID string) (Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[orderID]
	if !ok {
		return Order{}, fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
	}
	o.ReturnInitiated = true
	return *o, nil
}

// OrderHistory returns the customer's orders, most recent first.
func (s *Store) OrderHistory(userID string) ([]Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUserNotFound, userID)
	}
	out := make([]Order, 0, len(u.OrderHistory))
	for _, id := range u.OrderHistory {
		if o, exists := s.orders[id]; exists {
			out = append(out, *o)
		}
	}
	return out, nil
}

// ResetPassword simulates sending a reset link to the customer's email.
func (s *Store) ResetPassword(userID string) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return User{}, fmt.Errorf("%w: %s", ErrUserNotFound, userID)
	}
	return *u, nil
}

// UpdateInfo applies the given profile fields to the customer record.
func (s *Store) UpdateInfo(userID string, info map[string]string) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return User{}, fmt.Errorf("%w: %s", ErrUserNotFound, userID)
	}
	for field, value := range info {
		switch field {
		case "name":
			u.Name = value
		case "email":
			u.Email = value
		case "phone":
			u.Phone = value
		case "address":
			u.Address = value
		}
	}
	return *u, nil
}

// CreateVoucher issues a compensation voucher.
func (s *Store) CreateVoucher(userID string, amount float64, reason string) Voucher {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := &Voucher{
		ID:     newID("VCH"),
		UserID: userID,
		Amount: amount,
		Reason: reason,
		Status: "issued",
	}
	s.vouchers[v.ID] = v
	return *v
}

// CreateComplaint files a formal complaint.
func (s *Store) CreateComplaint(userID, complaintType, details, orderID string) Complaint {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := &Complaint{
		ID:      newID("CMP"),
		UserID:  userID,
		Type:    complaintType,
		Details: details,
		OrderID: orderID,
		Status:  "open",
	}
	s.complaints[c.ID] = c
	return *c
}

// CreateTicket opens a support ticket.
func (s *Store) CreateTicket(userID, ticketType, details, orderID string) Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := &Ticket{
		ID:      newID("TKT"),
		UserID:  userID,
		Type:    ticketType,
		Details: details,
		OrderID: orderID,
		Status:  "open",
	}
	s.tickets[t.ID] = t
	return *t
}

func orderTotal(o *Order) float64 {
	var total float64
	for _, item := range o.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
