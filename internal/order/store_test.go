package order

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmeshcher/storefront-system/internal/model"
)

func testOrder(id, userID string) model.Order {
	return model.Order{
		ID:     id,
		UserID: userID,
		Date:   "2026-09-01",
		Total:  decimal.RequireFromString("19.99"),
		Status: model.OrderStatusProcessing,
		Items: []model.CartItem{
			{Product: model.Product{ID: "p1", Name: "Vitamin C"}, Quantity: 1},
		},
		StatusHistory: []model.StatusChange{
			{Status: model.OrderStatusProcessing, ChangedBy: "System", ChangedByID: "sys"},
		},
	}
}

func TestAdd_RejectsDuplicateID(t *testing.T) {
	s := NewStore()

	if err := s.Add(testOrder("ORD-000001", "u1")); err != nil {
		t.Fatalf("add error: %v", err)
	}
	if err := s.Add(testOrder("ORD-000001", "u1")); !errors.Is(err, ErrOrderExists) {
		t.Fatalf("expected ErrOrderExists, got %v", err)
	}
}

func TestByUser_ReturnsOrdersInPlacementOrder(t *testing.T) {
	s := NewStore()

	for _, o := range []model.Order{
		testOrder("ORD-000001", "u1"),
		testOrder("ORD-000002", "u2"),
		testOrder("ORD-000003", "u1"),
	} {
		if err := s.Add(o); err != nil {
			t.Fatalf("add error: %v", err)
		}
	}

	got := s.ByUser("u1")
	if len(got) != 2 || got[0].ID != "ORD-000001" || got[1].ID != "ORD-000003" {
		t.Fatalf("ByUser returned %+v", got)
	}

	if all := s.All(); len(all) != 3 {
		t.Fatalf("All returned %d orders, want 3", len(all))
	}
	if s.Len() != 3 {
		t.Fatalf("Len = %d, want 3", s.Len())
	}
}

func TestAdd_StoresIsolatedCopy(t *testing.T) {
	s := NewStore()

	o := testOrder("ORD-000001", "u1")
	if err := s.Add(o); err != nil {
		t.Fatalf("add error: %v", err)
	}

	// Изменение переданного значения не должно менять сохранённый заказ.
	o.Items[0].Quantity = 99
	o.Status = model.OrderStatusCancelled

	stored, err := s.ByID("ORD-000001")
	if err != nil {
		t.Fatalf("ByID error: %v", err)
	}
	if stored.Items[0].Quantity != 1 || stored.Status != model.OrderStatusProcessing {
		t.Fatalf("stored order was mutated through the caller's copy: %+v", stored)
	}

	// И наоборот: изменение выданной копии не трогает хранилище.
	stored.Items[0].Quantity = 77
	again, _ := s.ByID("ORD-000001")
	if again.Items[0].Quantity != 1 {
		t.Fatalf("store leaked internal state to callers")
	}
}

func TestUpdateStatus_AppendsHistory(t *testing.T) {
	s := NewStore()

	if err := s.Add(testOrder("ORD-000001", "u1")); err != nil {
		t.Fatalf("add error: %v", err)
	}

	if err := s.UpdateStatus("ORD-000001", model.OrderStatusShipped, "Store Admin", "a1"); err != nil {
		t.Fatalf("update status error: %v", err)
	}
	if err := s.UpdateStatus("ORD-000001", model.OrderStatusDelivered, "Store Admin", "a1"); err != nil {
		t.Fatalf("update status error: %v", err)
	}

	o, err := s.ByID("ORD-000001")
	if err != nil {
		t.Fatalf("ByID error: %v", err)
	}
	if o.Status != model.OrderStatusDelivered {
		t.Fatalf("status = %s, want delivered", o.Status)
	}
	if len(o.StatusHistory) != 3 {
		t.Fatalf("history has %d entries, want 3", len(o.StatusHistory))
	}
	if o.StatusHistory[1].Status != model.OrderStatusShipped || o.StatusHistory[1].ChangedBy != "Store Admin" {
		t.Fatalf("second history entry = %+v", o.StatusHistory[1])
	}
	if o.StatusHistory[2].Status != model.OrderStatusDelivered {
		t.Fatalf("third history entry = %+v", o.StatusHistory[2])
	}
}

func TestUpdateStatus_Errors(t *testing.T) {
	s := NewStore()

	if err := s.UpdateStatus("missing", model.OrderStatusShipped, "Store Admin", "a1"); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}

	if err := s.Add(testOrder("ORD-000001", "u1")); err != nil {
		t.Fatalf("add error: %v", err)
	}
	if err := s.UpdateStatus("ORD-000001", "teleported", "Store Admin", "a1"); !errors.Is(err, ErrUnknownStatus) {
		t.Fatalf("expected ErrUnknownStatus, got %v", err)
	}

	o, _ := s.ByID("ORD-000001")
	if len(o.StatusHistory) != 1 {
		t.Fatalf("failed update modified history: %+v", o.StatusHistory)
	}
}

func TestByID_NotFound(t *testing.T) {
	s := NewStore()

	if _, err := s.ByID("missing"); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}
