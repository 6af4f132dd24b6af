package domain

import "github.com/shopspring/decimal"

// Product — представление товара из внешнего каталога.
// Ядро никогда не сохраняет товары: они нужны только для расчёта
// сумм при создании заказа и для обогащения ответов названиями.
type Product struct {
	ID        int64
	Name      string
	Price     decimal.Decimal
	Available bool
}
