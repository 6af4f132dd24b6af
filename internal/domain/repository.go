package domain

// OrderRepository описывает требования к хранилищу заказов.
type OrderRepository interface {
	// CreateWithItems сохраняет заказ и все его позиции как единую
	// атомарную запись: при любом нарушении ограничений откатывается
	// всё целиком, частично созданный заказ невидим другим вызовам.
	CreateWithItems(order Order) error
	// Get возвращает заказ с позициями или ErrOrderNotFound, если его нет.
	Get(id string) (Order, error)
	// ListPage возвращает страницу заказов и общее число совпадений.
	// Выборка и счётчик выполняются в одной транзакции, чтобы total
	// не расходился с возвращёнными строками при конкурентных записях.
	ListPage(status *OrderStatus, page, limit int) ([]Order, int64, error)
	// UpdateStatus меняет статус заказа и возвращает обновлённую запись
	// или ErrOrderNotFound, если заказа нет.
	UpdateStatus(id string, status OrderStatus) (Order, error)
}
