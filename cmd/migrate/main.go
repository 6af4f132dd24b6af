// Команда migrate управляет схемой базы заказов: накат и откат миграций
// orders/order_items/outbox/status_history плюс просмотр текущей версии.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/vladislavdragonenkov/orders/internal/storage/postgres"
)

const migrateTimeout = 30 * time.Second

func main() {
	var (
		direction string
		steps     int
		dsn       string
	)

	flag.StringVar(&direction, "direction", "up", "migration direction: up|down|status")
	flag.IntVar(&steps, "steps", 0, "number of migrations to apply/rollback (0=all for up, 1 for down)")
	flag.StringVar(&dsn, "dsn", "", "PostgreSQL DSN (fallback: ORDERS_POSTGRES_DSN)")
	flag.Parse()

	if strings.TrimSpace(dsn) == "" {
		dsn = strings.TrimSpace(os.Getenv("ORDERS_POSTGRES_DSN"))
	}
	if dsn == "" {
		fail("ORDERS_POSTGRES_DSN (or -dsn) is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), migrateTimeout)
	defer cancel()

	store, err := postgres.Open(ctx, dsn)
	if err != nil {
		fail("open orders database: %v", err)
	}
	defer store.Close()

	summary, err := runMigration(ctx, store, direction, steps)
	if err != nil {
		fail("%v", err)
	}
	fmt.Println(summary)
}

// runMigration выполняет команду над схемой заказов и возвращает итоговую
// строку с версией схемы и числом применённых миграций.
func runMigration(ctx context.Context, store *postgres.Store, direction string, steps int) (string, error) {
	switch strings.ToLower(strings.TrimSpace(direction)) {
	case "up":
		if err := store.MigrateUp(ctx, steps); err != nil {
			return "", fmt.Errorf("migrate up failed: %w", err)
		}
		return schemaSummary(ctx, store, "migrate up ok")
	case "down":
		if steps <= 0 {
			steps = 1
		}
		if err := store.MigrateDown(ctx, steps); err != nil {
			return "", fmt.Errorf("migrate down failed: %w", err)
		}
		return schemaSummary(ctx, store, "migrate down ok")
	case "status":
		return schemaSummary(ctx, store, "migration status")
	default:
		return "", fmt.Errorf("unsupported direction: %s (use up|down|status)", direction)
	}
}

func schemaSummary(ctx context.Context, store *postgres.Store, prefix string) (string, error) {
	version, count, err := store.MigrationStatus(ctx)
	if err != nil {
		return "", fmt.Errorf("migration status failed: %w", err)
	}
	return fmt.Sprintf("%s: version=%d applied=%d", prefix, version, count), nil
}

func fail(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
