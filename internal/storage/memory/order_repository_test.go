package memory_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/orders/internal/domain"
	"github.com/vladislavdragonenkov/orders/internal/storage/memory"
)

func newOrder(id string, createdAt time.Time) domain.Order {
	return domain.Order{
		ID:          id,
		TotalAmount: decimal.RequireFromString("25.00"),
		TotalItems:  3,
		Status:      domain.OrderStatusPending,
		Items: []domain.OrderItem{
			{ProductID: 1, UnitPrice: decimal.RequireFromString("10.00"), Quantity: 2},
			{ProductID: 2, UnitPrice: decimal.RequireFromString("5.00"), Quantity: 1},
		},
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func TestOrderRepository_CreateGet(t *testing.T) {
	repo := memory.NewOrderRepository()
	order := newOrder("order-1", time.Now().UTC())

	if err := repo.CreateWithItems(order); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	stored, err := repo.Get(order.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if stored.ID != order.ID {
		t.Fatalf("expected id %s, got %s", order.ID, stored.ID)
	}
	if len(stored.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(stored.Items))
	}
	if !stored.TotalAmount.Equal(order.TotalAmount) {
		t.Fatalf("expected total %s, got %s", order.TotalAmount, stored.TotalAmount)
	}
}

func TestOrderRepository_CreateDuplicate(t *testing.T) {
	repo := memory.NewOrderRepository()
	order := newOrder("order-1", time.Now().UTC())

	if err := repo.CreateWithItems(order); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := repo.CreateWithItems(order); !errors.Is(err, domain.ErrOrderConstraint) {
		t.Fatalf("expected ErrOrderConstraint, got %v", err)
	}
}

func TestOrderRepository_GetNotFound(t *testing.T) {
	repo := memory.NewOrderRepository()

	if _, err := repo.Get("missing"); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestOrderRepository_ListPage(t *testing.T) {
	repo := memory.NewOrderRepository()
	base := time.Now().UTC()
	for i := 0; i < 5; i++ {
		order := newOrder(fmt.Sprintf("order-%d", i), base.Add(time.Duration(i)*time.Second))
		if i%2 == 0 {
			order.Status = domain.OrderStatusPaid
		}
		if err := repo.CreateWithItems(order); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	orders, total, err := repo.ListPage(nil, 1, 3)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 5 {
		t.Fatalf("expected total 5, got %d", total)
	}
	if len(orders) != 3 {
		t.Fatalf("expected 3 orders on page, got %d", len(orders))
	}
	// Свежие заказы идут первыми.
	if orders[0].ID != "order-4" {
		t.Fatalf("expected order-4 first, got %s", orders[0].ID)
	}

	status := domain.OrderStatusPaid
	paid, paidTotal, err := repo.ListPage(&status, 1, 10)
	if err != nil {
		t.Fatalf("list paid failed: %v", err)
	}
	if paidTotal != 3 || len(paid) != 3 {
		t.Fatalf("expected 3 paid orders, got total=%d len=%d", paidTotal, len(paid))
	}
	for _, order := range paid {
		if order.Status != domain.OrderStatusPaid {
			t.Fatalf("unexpected status %s in filtered page", order.Status)
		}
	}
}

func TestOrderRepository_ListPageBeyondEnd(t *testing.T) {
	repo := memory.NewOrderRepository()
	if err := repo.CreateWithItems(newOrder("order-1", time.Now().UTC())); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	orders, total, err := repo.ListPage(nil, 3, 10)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 {
		t.Fatalf("expected total 1, got %d", total)
	}
	if len(orders) != 0 {
		t.Fatalf("expected empty page, got %d orders", len(orders))
	}
}

func TestOrderRepository_UpdateStatus(t *testing.T) {
	repo := memory.NewOrderRepository()
	order := newOrder("order-1", time.Now().UTC())
	if err := repo.CreateWithItems(order); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := repo.UpdateStatus(order.ID, domain.OrderStatusPaid)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Status != domain.OrderStatusPaid {
		t.Fatalf("expected status PAID, got %s", updated.Status)
	}
	if !updated.Paid {
		t.Fatalf("expected paid flag to be set")
	}

	if _, err := repo.UpdateStatus("missing", domain.OrderStatusPaid); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}
