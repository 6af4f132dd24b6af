package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus описывает жизненный цикл заказа.
type OrderStatus string

const (
	// OrderStatusPending — заказ создан, оплата ещё не подтверждена.
	OrderStatusPending OrderStatus = "PENDING"
	// OrderStatusPaid — оплата подтверждена внешним сигналом.
	OrderStatusPaid OrderStatus = "PAID"
	// OrderStatusDelivered — заказ доставлен клиенту.
	OrderStatusDelivered OrderStatus = "DELIVERED"
	// OrderStatusCancelled — заказ отменён.
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// ParseOrderStatus валидирует строковое представление статуса.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusPaid, OrderStatusDelivered, OrderStatusCancelled:
		return OrderStatus(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrStatusInvalid, s)
	}
}

// OrderItem представляет одну позицию заказа.
type OrderItem struct {
	// ProductID — внешний идентификатор товара в каталоге.
	ProductID int64
	// UnitPrice — снимок цены на момент создания заказа; после создания не пересчитывается.
	UnitPrice decimal.Decimal
	// Quantity — количество единиц товара.
	Quantity int32
}

// Order агрегирует состояние заказа и его позиции.
type Order struct {
	ID          string
	TotalAmount decimal.Decimal
	TotalItems  int32
	Status      OrderStatus
	Paid        bool
	Items       []OrderItem
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProductIDs возвращает идентификаторы товаров в порядке позиций заказа.
func (o *Order) ProductIDs() []int64 {
	ids := make([]int64, 0, len(o.Items))
	for _, item := range o.Items {
		ids = append(ids, item.ProductID)
	}
	return ids
}

// ValidateInvariants проверяет базовые инварианты заказа и возвращает список замечаний.
func (o *Order) ValidateInvariants() []error {
	var errs []error

	if len(o.Items) == 0 {
		errs = append(errs, ErrItemsRequired)
	}
	if o.TotalAmount.IsNegative() {
		errs = append(errs, ErrAmountNegative)
	}

	// Сверяем totalAmount и totalItems с суммами по позициям.
	amount := decimal.Zero
	var count int32
	for _, item := range o.Items {
		if item.Quantity <= 0 {
			errs = append(errs, ErrItemQtyInvalid)
		}
		if item.UnitPrice.IsNegative() {
			errs = append(errs, ErrItemPriceInvalid)
		}
		amount = amount.Add(item.UnitPrice.Mul(decimal.NewFromInt32(item.Quantity)))
		count += item.Quantity
	}
	if !amount.Equal(o.TotalAmount) {
		errs = append(errs, ErrAmountMismatch)
	}
	if count != o.TotalItems {
		errs = append(errs, ErrTotalItemsMismatch)
	}

	return errs
}
