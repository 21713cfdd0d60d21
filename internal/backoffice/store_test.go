package backoffice_test

import (
	"errors"
	"strings"
	"testing"

	"cs-chat-simulator/internal/backoffice"
)

func TestSeedData(t *testing.T) {
	s := backoffice.NewStore()

	orders, err := s.OrderHistory("cus_28X44")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 7 {
		t.Fatalf("expected 7 seeded orders, got %d", len(orders))
	}
	if orders[0].ID != "ORD1001" || orders[0].Status != "pending" {
		t.Errorf("unexpected first order: %+v", orders[0])
	}

	if _, err := s.OrderHistory("cus_UNKNOWN"); !errors.Is(err, backoffice.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestGetOrder(t *testing.T) {
	s := backoffice.NewStore()

	o, err := s.GetOrder("ORD1003")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.Status != "shipped" || o.TrackingNumber != "TRK123456789" {
		t.Errorf("unexpected order: %+v", o)
	}

	if _, err := s.GetOrder("ORD9999"); !errors.Is(err, backoffice.ErrOrderNotFound) {
		t.Errorf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestCancelOrder(t *testing.T) {
	s := backoffice.NewStore()

	t.Run("Pending Order Cancels", func(t *testing.T) {
		o, err := s.CancelOrder("ORD1001")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.Status != "cancelled" || o.CancellationReason == "" {
			t.Errorf("unexpected order after cancel: %+v", o)
		}

		// The change must be visible on subsequent reads.
		got, err := s.GetOrder("ORD1001")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != "cancelled" {
			t.Errorf("cancel did not persist: %+v", got)
		}
	})

	t.Run("Shipped Order Not Cancellable", func(t *testing.T) {
		if _, err := s.CancelOrder("ORD1003"); !errors.Is(err, backoffice.ErrNotCancellable) {
			t.Errorf("expected ErrNotCancellable, got %v", err)
		}
	})

	t.Run("Completed Order Not Cancellable", func(t *testing.T) {
		if _, err := s.CancelOrder("ORD1002"); !errors.Is(err, backoffice.ErrNotCancellable) {
			t.Errorf("expected ErrNotCancellable, got %v", err)
		}
	})
}

func TestCreateRefund(t *testing.T) {
	s := backoffice.NewStore()

	t.Run("Explicit Amount", func(t *testing.T) {
		o, err := s.CreateRefund("ORD1002", 50, "partial refund")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.Status != "refunded" || o.RefundStatus != "processing" || o.RefundAmount != 50 {
			t.Errorf("unexpected order: %+v", o)
		}
	})

	t.Run("Zero Amount Defaults To Order Total", func(t *testing.T) {
		o, err := s.CreateRefund("ORD1003", 0, "defective")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// Two speakers at 59.99 each.
		if o.RefundAmount != 119.98 {
			t.Errorf("expected full order total, got %v", o.RefundAmount)
		}
	})
}

func TestSendReplacement(t *testing.T) {
	s := backoffice.NewStore()

	o, err := s.SendReplacement("ORD1003", "P004")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.TrackingNumber == "TRK123456789" || !strings.HasPrefix(o.TrackingNumber, "TRK-") {
		t.Errorf("expected fresh tracking number, got %s", o.TrackingNumber)
	}
}

func TestCreateReturn(t *testing.T) {
	s := backoffice.NewStore()

	o, err := s.CreateReturn("ORD1002")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !o.ReturnInitiated {
		t.Errorf("return not initiated: %+v", o)
	}
}

func TestUpdateInfo(t *testing.T) {
	s := backoffice.NewStore()

	u, err := s.UpdateInfo("cus_28X44", map[string]string{
		"email":   "new@example.com",
		"address": "456 Oak Ave",
		"ignored": "no such field",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Email != "new@example.com" || u.Address != "456 Oak Ave" {
		t.Errorf("fields not applied: %+v", u)
	}
	if u.Name != "김고객" || u.Phone != "010-1234-5678" {
		t.Errorf("untouched fields changed: %+v", u)
	}
}

func TestResetPassword(t *testing.T) {
	s := backoffice.NewStore()

	u, err := s.ResetPassword("cus_28X44")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Email != "customer@example.com" {
		t.Errorf("unexpected user: %+v", u)
	}

	if _, err := s.ResetPassword("cus_UNKNOWN"); !errors.Is(err, backoffice.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestCreateVoucherComplaintTicket(t *testing.T) {
	s := backoffice.NewStore()

	v := s.CreateVoucher("cus_28X44", 10, "shipping delay")
	if !strings.HasPrefix(v.ID, "VCH-") || v.Status != "issued" || v.Amount != 10 {
		t.Errorf("unexpected voucher: %+v", v)
	}

	c := s.CreateComplaint("cus_28X44", "delivery", "package left in rain", "ORD1006")
	if !strings.HasPrefix(c.ID, "CMP-") || c.Status != "open" || c.OrderID != "ORD1006" {
		t.Errorf("unexpected complaint: %+v", c)
	}

	tk := s.CreateTicket("cus_28X44", "other", "needs follow up", "")
	if !strings.HasPrefix(tk.ID, "TKT-") || tk.Status != "open" {
		t.Errorf("unexpected ticket: %+v", tk)
	}
}
