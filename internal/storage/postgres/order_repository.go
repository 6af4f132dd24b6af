package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vladislavdragonenkov/orders/internal/domain"
)

const (
	opTimeout = 5 * time.Second
)

type orderRepository struct {
	db *sql.DB
}

// NewOrderRepository создаёт PostgreSQL-реализацию OrderRepository.
func NewOrderRepository(store *Store) domain.OrderRepository {
	return &orderRepository{db: store.DB()}
}

// CreateWithItems вставляет заказ и все его позиции в одной транзакции:
// либо сохраняется всё, либо ничего.
func (r *orderRepository) CreateWithItems(order domain.Order) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (
			id, total_amount, total_items, status, paid, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		order.ID, order.TotalAmount, order.TotalItems, string(order.Status),
		order.Paid, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if cerr := asConstraintError(err); cerr != nil {
			return cerr
		}
		return fmt.Errorf("insert order: %w", err)
	}

	for _, item := range order.Items {
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, product_id, unit_price, quantity)
			VALUES ($1,$2,$3,$4)
		`,
			order.ID, item.ProductID, item.UnitPrice, item.Quantity,
		); err != nil {
			if cerr := asConstraintError(err); cerr != nil {
				return cerr
			}
			return fmt.Errorf("insert order item: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit create order: %w", err)
	}

	return nil
}

func (r *orderRepository) Get(id string) (domain.Order, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	order, err := scanOrderRow(r.db.QueryRowContext(ctx, `
		SELECT id, total_amount, total_items, status, paid, created_at, updated_at
		FROM orders
		WHERE id = $1
	`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Order{}, domain.ErrOrderNotFound
		}
		return domain.Order{}, fmt.Errorf("select order: %w", err)
	}

	items, err := loadItems(ctx, r.db, order.ID)
	if err != nil {
		return domain.Order{}, err
	}
	order.Items = items

	return order, nil
}

// ListPage возвращает страницу заказов и общее число совпадений. Подсчёт и
// выборка выполняются в одной транзакции REPEATABLE READ, поэтому total
// согласован со строками страницы.
func (r *orderRepository) ListPage(status *domain.OrderStatus, page, limit int) ([]domain.Order, int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	offset := (page - 1) * limit

	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{
		Isolation: sql.LevelRepeatableRead,
		ReadOnly:  true,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("begin list tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var (
		statusFilter string
		args         []any
	)
	if status != nil {
		statusFilter = "WHERE status = $1"
		args = append(args, string(*status))
	}

	var total int64
	if err := tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM orders "+statusFilter, args...,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count orders: %w", err)
	}

	pageQuery := fmt.Sprintf(`
		SELECT id, total_amount, total_items, status, paid, created_at, updated_at
		FROM orders
		%s
		ORDER BY created_at DESC, id DESC
		LIMIT $%d OFFSET $%d
	`, statusFilter, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := tx.QueryContext(ctx, pageQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	orders := make([]domain.Order, 0, limit)
	for rows.Next() {
		order, err := scanOrderRow(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate order rows: %w", err)
	}

	for i := range orders {
		items, err := loadItems(ctx, tx, orders[i].ID)
		if err != nil {
			return nil, 0, err
		}
		orders[i].Items = items
	}

	if err := tx.Commit(); err != nil {
		return nil, 0, fmt.Errorf("commit list tx: %w", err)
	}

	return orders, total, nil
}

// UpdateStatus меняет статус заказа. Переход в PAID дополнительно
// поднимает флаг paid; обратно флаг не сбрасывается.
func (r *orderRepository) UpdateStatus(id string, status domain.OrderStatus) (domain.Order, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	order, err := scanOrderRow(r.db.QueryRowContext(ctx, `
		UPDATE orders
		SET status = $2,
		    paid = paid OR $3,
		    updated_at = $4
		WHERE id = $1
		RETURNING id, total_amount, total_items, status, paid, created_at, updated_at
	`, id, string(status), status == domain.OrderStatusPaid, time.Now().UTC()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Order{}, domain.ErrOrderNotFound
		}
		return domain.Order{}, fmt.Errorf("update order status: %w", err)
	}

	items, err := loadItems(ctx, r.db, order.ID)
	if err != nil {
		return domain.Order{}, err
	}
	order.Items = items

	return order, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func scanOrderRow(row rowScanner) (domain.Order, error) {
	var (
		order  domain.Order
		status string
	)
	if err := row.Scan(
		&order.ID, &order.TotalAmount, &order.TotalItems, &status,
		&order.Paid, &order.CreatedAt, &order.UpdatedAt,
	); err != nil {
		return domain.Order{}, err
	}
	order.Status = domain.OrderStatus(status)
	return order, nil
}

func loadItems(ctx context.Context, q queryer, orderID string) ([]domain.OrderItem, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT product_id, unit_price, quantity
		FROM order_items
		WHERE order_id = $1
		ORDER BY id ASC
	`, orderID)
	if err != nil {
		return nil, fmt.Errorf("load order items: %w", err)
	}
	defer rows.Close()

	items := make([]domain.OrderItem, 0)
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ProductID, &item.UnitPrice, &item.Quantity); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order items: %w", err)
	}

	return items, nil
}

// asConstraintError распознаёт нарушения ограничений целостности (класс
// 23xxx: unique, NOT NULL, FK, CHECK) и оборачивает сообщение драйвера в
// доменный sentinel. Для прочих ошибок возвращает nil.
func asConstraintError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, "23") {
		return fmt.Errorf("%w: %s", domain.ErrOrderConstraint, pgErr.Message)
	}
	return nil
}

var _ domain.OrderRepository = (*orderRepository)(nil)
