package domain

import (
	"errors"
	"fmt"
)

var (
	// Ошибка отсутствия хотя бы одного товара в заказе.
	ErrItemsRequired = errors.New("order must contain at least one item")
	// Ошибка отрицательной суммы заказа.
	ErrAmountNegative = errors.New("total_amount must be non-negative")
	// Ошибка при некорректном количестве товара (<= 0).
	ErrItemQtyInvalid = errors.New("item quantity must be greater than zero")
	// Ошибка, если цена позиции отрицательная.
	ErrItemPriceInvalid = errors.New("item price must be non-negative")
	// Ошибка несоответствия суммы заказа и сумм позиций.
	ErrAmountMismatch = errors.New("order amount does not match items sum")
	// Ошибка несоответствия числа позиций сумме количеств.
	ErrTotalItemsMismatch = errors.New("total_items does not match items quantity sum")
	// Ошибка неизвестного статуса заказа.
	ErrStatusInvalid = errors.New("invalid order status")
	// ErrOrderNotFound возвращается, если заказ не найден в репозитории.
	ErrOrderNotFound = errors.New("order not found")
	// ErrProductNotValidated — ответ каталога не покрыл запрошенный товар.
	ErrProductNotValidated = errors.New("product was not validated by catalog")
	// ErrOrderConstraint — нарушено ограничение хранилища при записи заказа.
	ErrOrderConstraint = errors.New("order persistence constraint violated")
	// ErrOutboxPublish — ошибка при публикации сообщения из outbox.
	ErrOutboxPublish = errors.New("outbox publish failed")
)

// CatalogError переносит статус и сообщение неудачного вызова каталога.
// Вызов не ретраится: любая ошибка означает «валидация не выполнена»
// и прерывает операцию целиком.
type CatalogError struct {
	Code    uint32
	Message string
}

func (e *CatalogError) Error() string {
	return fmt.Sprintf("catalog validation failed (code=%d): %s", e.Code, e.Message)
}

// AsCatalogError извлекает CatalogError из цепочки ошибок.
func AsCatalogError(err error) (*CatalogError, bool) {
	var catalogErr *CatalogError
	if errors.As(err, &catalogErr) {
		return catalogErr, true
	}
	return nil, false
}
