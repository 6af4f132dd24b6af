package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RequestedItem — позиция запроса на создание заказа до сверки с каталогом.
type RequestedItem struct {
	ProductID int64
	Quantity  int32
}

// OrderDraft — результат агрегации: суммы и позиции со снимками цен.
type OrderDraft struct {
	TotalAmount decimal.Decimal
	TotalItems  int32
	Items       []OrderItem
}

// DedupeProductIDs собирает уникальные идентификаторы товаров,
// сохраняя порядок первого вхождения. Дубликаты в запросе
// схлопываются в один lookup каталога.
func DedupeProductIDs(items []RequestedItem) []int64 {
	seen := make(map[int64]struct{}, len(items))
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}
	return ids
}

// mergeRequestedItems схлопывает повторные вхождения товара в одну позицию,
// суммируя количество. Порядок первого вхождения сохраняется.
func mergeRequestedItems(items []RequestedItem) []RequestedItem {
	index := make(map[int64]int, len(items))
	merged := make([]RequestedItem, 0, len(items))
	for _, item := range items {
		if i, ok := index[item.ProductID]; ok {
			merged[i].Quantity += item.Quantity
			continue
		}
		index[item.ProductID] = len(merged)
		merged = append(merged, item)
	}
	return merged
}

// AggregateOrder сверяет запрошенные позиции с ответом каталога и считает
// суммы. Цена каталога в этот момент становится постоянным снимком позиции.
// Повторные вхождения товара в запросе схлопываются в одну позицию заказа.
// Шаг чистый: никакого I/O, пригоден для прямого unit-тестирования.
//
// Если каталог не покрыл какой-то запрошенный товар, агрегация завершается
// ошибкой ErrProductNotValidated — тихий ноль здесь недопустим.
func AggregateOrder(requested []RequestedItem, catalog []Product) (OrderDraft, error) {
	if len(requested) == 0 {
		return OrderDraft{}, ErrItemsRequired
	}

	for _, item := range requested {
		if item.Quantity <= 0 {
			return OrderDraft{}, fmt.Errorf("%w: product %d", ErrItemQtyInvalid, item.ProductID)
		}
	}
	requested = mergeRequestedItems(requested)

	byID := make(map[int64]Product, len(catalog))
	for _, product := range catalog {
		byID[product.ID] = product
	}

	draft := OrderDraft{
		TotalAmount: decimal.Zero,
		Items:       make([]OrderItem, 0, len(requested)),
	}

	for _, item := range requested {
		product, ok := byID[item.ProductID]
		if !ok {
			return OrderDraft{}, fmt.Errorf("%w: product %d", ErrProductNotValidated, item.ProductID)
		}

		draft.TotalAmount = draft.TotalAmount.Add(product.Price.Mul(decimal.NewFromInt32(item.Quantity)))
		draft.TotalItems += item.Quantity
		draft.Items = append(draft.Items, OrderItem{
			ProductID: item.ProductID,
			UnitPrice: product.Price,
			Quantity:  item.Quantity,
		})
	}

	return draft, nil
}
