package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/vladislavdragonenkov/orders/internal/domain"
)

// orderRepositoryInMemory — простая in-memory реализация OrderRepository.
type orderRepositoryInMemory struct {
	mu    sync.RWMutex
	items map[string]domain.Order
}

// NewOrderRepository возвращает in-memory репозиторий для локальной разработки и тестов.
func NewOrderRepository() domain.OrderRepository {
	return &orderRepositoryInMemory{
		items: make(map[string]domain.Order),
	}
}

// CreateWithItems сохраняет заказ вместе с позициями, если ID ещё не занят.
func (r *orderRepositoryInMemory) CreateWithItems(order domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[order.ID]; exists {
		return domain.ErrOrderConstraint
	}
	// Сохраняем копию позиций, чтобы избежать мутаций извне.
	r.items[order.ID] = cloneOrder(order)
	return nil
}

// Get возвращает заказ или ErrOrderNotFound, если его нет.
func (r *orderRepositoryInMemory) Get(id string) (domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.items[id]
	if !ok {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	return cloneOrder(order), nil
}

// ListPage возвращает страницу заказов и общее число совпадений под одной
// блокировкой, поэтому total всегда согласован с возвращёнными строками.
func (r *orderRepositoryInMemory) ListPage(status *domain.OrderStatus, page, limit int) ([]domain.Order, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}

	matched := make([]domain.Order, 0, len(r.items))
	for _, order := range r.items {
		if status != nil && order.Status != *status {
			continue
		}
		matched = append(matched, order)
	}

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID > matched[j].ID
	})

	total := int64(len(matched))
	offset := (page - 1) * limit
	if offset >= len(matched) {
		return []domain.Order{}, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}

	result := make([]domain.Order, 0, end-offset)
	for _, order := range matched[offset:end] {
		result = append(result, cloneOrder(order))
	}
	return result, total, nil
}

// UpdateStatus меняет статус заказа и отметку времени.
func (r *orderRepositoryInMemory) UpdateStatus(id string, status domain.OrderStatus) (domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.items[id]
	if !ok {
		return domain.Order{}, domain.ErrOrderNotFound
	}

	order.Status = status
	if status == domain.OrderStatusPaid {
		order.Paid = true
	}
	order.UpdatedAt = time.Now().UTC()
	r.items[id] = order

	return cloneOrder(order), nil
}

func cloneOrder(order domain.Order) domain.Order {
	items := make([]domain.OrderItem, len(order.Items))
	copy(items, order.Items)
	order.Items = items
	return order
}

var _ domain.OrderRepository = (*orderRepositoryInMemory)(nil)
