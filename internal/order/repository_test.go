package order

import (
	"testing"
	"time"
)

func testOrder(id, store string, status Status, amount float64) Order {
	return Order{
		ID:            id,
		StoreName:     store,
		Status:        status,
		PaymentAmount: amount,
		ClientCount:   2,
		Items:         3,
		Timestamp:     time.Date(2026, time.January, 15, 10, 0, 0, 0, time.UTC),
	}
}

func TestNewRepository_SortsByPaymentDescending(t *testing.T) {
	repo, err := NewRepository([]Order{
		testOrder("ORD-0001", "Walmart", StatusPending, 120),
		testOrder("ORD-0002", "Target", StatusCompleted, 80),
		testOrder("ORD-0003", "Walmart", StatusInProgress, 200),
	})
	if err != nil {
		t.Fatalf("NewRepository failed: %v", err)
	}

	orders := repo.Orders()
	want := []string{"ORD-0003", "ORD-0001", "ORD-0002"}
	for i, id := range want {
		if orders[i].ID != id {
			t.Errorf("Position %d: expected %s, got %s", i, id, orders[i].ID)
		}
	}
}

func TestNewRepository_RejectsDuplicateIDs(t *testing.T) {
	_, err := NewRepository([]Order{
		testOrder("ORD-0001", "Walmart", StatusPending, 120),
		testOrder("ORD-0001", "Target", StatusCompleted, 80),
	})
	if err == nil {
		t.Fatal("Expected duplicate id error")
	}
}

func TestNewRepository_RejectsMalformedOrders(t *testing.T) {
	cases := []Order{
		testOrder("ORDER-1", "Walmart", StatusPending, 10),
		testOrder("ORD-0001", "", StatusPending, 10),
		testOrder("ORD-0001", "Walmart", Status("shipped"), 10),
		testOrder("ORD-0001", "Walmart", StatusPending, -5),
		{ID: "ORD-0001", StoreName: "Walmart", Status: StatusPending, PaymentAmount: 10, ClientCount: 0, Items: 1},
		{ID: "ORD-0001", StoreName: "Walmart", Status: StatusPending, PaymentAmount: 10, ClientCount: 5, Items: 1},
		{ID: "ORD-0001", StoreName: "Walmart", Status: StatusPending, PaymentAmount: 10, ClientCount: 2, Items: 0},
	}
	for i, o := range cases {
		if _, err := NewRepository([]Order{o}); err == nil {
			t.Errorf("Case %d: expected validation error for %+v", i, o)
		}
	}
}

func TestRepository_OrdersReturnsCopy(t *testing.T) {
	repo, err := NewRepository([]Order{
		testOrder("ORD-0001", "Walmart", StatusPending, 120),
	})
	if err != nil {
		t.Fatalf("NewRepository failed: %v", err)
	}

	first := repo.Orders()
	first[0].StoreName = "mutated"

	if repo.Orders()[0].StoreName != "Walmart" {
		t.Error("Repository snapshot was mutated through Orders()")
	}
}

func TestParseStatus(t *testing.T) {
	for _, s := range AllStatuses() {
		got, ok := ParseStatus(string(s))
		if !ok || got != s {
			t.Errorf("ParseStatus(%q) = %q, %v", s, got, ok)
		}
	}
	if _, ok := ParseStatus("shipped"); ok {
		t.Error("ParseStatus accepted a value outside the closed set")
	}
}
