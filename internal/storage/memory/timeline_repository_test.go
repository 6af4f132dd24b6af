package memory_test

import (
	"testing"
	"time"

	"github.com/vladislavdragonenkov/orders/internal/domain"
	"github.com/vladislavdragonenkov/orders/internal/storage/memory"
)

func TestTimelineRepository_AppendList(t *testing.T) {
	repo := memory.NewTimelineRepository()
	base := time.Now().UTC()

	// Добавляем события в обратном порядке, чтобы проверить сортировку.
	events := []domain.TimelineEvent{
		{OrderID: "order-1", Type: "status_changed", Reason: "PENDING -> PAID", Occurred: base.Add(time.Minute)},
		{OrderID: "order-1", Type: "created", Occurred: base},
	}
	for _, event := range events {
		if err := repo.Append(event); err != nil {
			t.Fatalf("append failed: %v", err)
		}
	}

	list, err := repo.List("order-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 events, got %d", len(list))
	}
	if list[0].Type != "created" || list[1].Type != "status_changed" {
		t.Fatalf("expected chronological order, got %s then %s", list[0].Type, list[1].Type)
	}

	other, err := repo.List("order-2")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("expected empty timeline for unknown order, got %d", len(other))
	}
}
