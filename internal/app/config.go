package app

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// StorageDriver выбирает реализацию хранилища заказов.
type StorageDriver string

const (
	StorageDriverMemory   StorageDriver = "memory"
	StorageDriverPostgres StorageDriver = "postgres"
)

// Config описывает настройки запуска приложения.
type Config struct {
	GRPCAddr    string
	MetricsAddr string

	StorageDriver       StorageDriver
	PostgresDSN         string
	PostgresAutoMigrate bool

	CatalogAddr  string
	KafkaBrokers string

	// AllowMockIntegrations разрешает запуск без внешнего каталога:
	// вместо него поднимается mock с демо-товарами. Только для локальной
	// разработки, по умолчанию выключено.
	AllowMockIntegrations bool

	OutboxPollInterval time.Duration
	OutboxBatchSize    int
	OutboxMaxAttempts  int
	OutboxRetryDelay   time.Duration
}

// DefaultConfig возвращает конфигурацию для локального запуска.
func DefaultConfig() Config {
	return Config{
		GRPCAddr:            ":50051",
		MetricsAddr:         ":9090",
		StorageDriver:       StorageDriverMemory,
		PostgresAutoMigrate: true,
		OutboxPollInterval:  time.Second,
		OutboxBatchSize:     100,
		OutboxMaxAttempts:   3,
		OutboxRetryDelay:    50 * time.Millisecond,
	}
}

// LoadConfig читает конфигурацию из окружения поверх значений по умолчанию.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	if v := strings.TrimSpace(os.Getenv("ORDERS_GRPC_ADDR")); v != "" {
		cfg.GRPCAddr = v
	}
	if v := strings.TrimSpace(os.Getenv("ORDERS_METRICS_ADDR")); v != "" {
		cfg.MetricsAddr = v
	}
	if v := strings.TrimSpace(os.Getenv("ORDERS_STORAGE_DRIVER")); v != "" {
		cfg.StorageDriver = StorageDriver(v)
	}
	if v := strings.TrimSpace(os.Getenv("ORDERS_POSTGRES_DSN")); v != "" {
		cfg.PostgresDSN = v
	}
	if v := strings.TrimSpace(os.Getenv("ORDERS_POSTGRES_AUTO_MIGRATE")); v != "" {
		autoMigrate, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid ORDERS_POSTGRES_AUTO_MIGRATE %q: %w", v, err)
		}
		cfg.PostgresAutoMigrate = autoMigrate
	}
	if v := strings.TrimSpace(os.Getenv("ORDERS_CATALOG_ADDR")); v != "" {
		cfg.CatalogAddr = v
	}
	if v := strings.TrimSpace(os.Getenv("ORDERS_KAFKA_BROKERS")); v != "" {
		cfg.KafkaBrokers = v
	}
	if v := strings.TrimSpace(os.Getenv("ORDERS_ALLOW_MOCK_INTEGRATIONS")); v != "" {
		allowMock, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid ORDERS_ALLOW_MOCK_INTEGRATIONS %q: %w", v, err)
		}
		cfg.AllowMockIntegrations = allowMock
	}
	if v := strings.TrimSpace(os.Getenv("ORDERS_OUTBOX_POLL_INTERVAL")); v != "" {
		interval, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid ORDERS_OUTBOX_POLL_INTERVAL %q: %w", v, err)
		}
		cfg.OutboxPollInterval = interval
	}
	if v := strings.TrimSpace(os.Getenv("ORDERS_OUTBOX_BATCH_SIZE")); v != "" {
		batchSize, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid ORDERS_OUTBOX_BATCH_SIZE %q: %w", v, err)
		}
		cfg.OutboxBatchSize = batchSize
	}
	if v := strings.TrimSpace(os.Getenv("ORDERS_OUTBOX_MAX_ATTEMPTS")); v != "" {
		maxAttempts, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid ORDERS_OUTBOX_MAX_ATTEMPTS %q: %w", v, err)
		}
		cfg.OutboxMaxAttempts = maxAttempts
	}
	if v := strings.TrimSpace(os.Getenv("ORDERS_OUTBOX_RETRY_DELAY")); v != "" {
		delay, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid ORDERS_OUTBOX_RETRY_DELAY %q: %w", v, err)
		}
		cfg.OutboxRetryDelay = delay
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate проверяет согласованность конфигурации.
func (c Config) Validate() error {
	if c.GRPCAddr == "" {
		return fmt.Errorf("grpc addr must not be empty")
	}
	if c.MetricsAddr == "" {
		return fmt.Errorf("metrics addr must not be empty")
	}
	switch c.StorageDriver {
	case StorageDriverMemory:
	case StorageDriverPostgres:
		if strings.TrimSpace(c.PostgresDSN) == "" {
			return fmt.Errorf("postgres dsn is required for storage driver %q", c.StorageDriver)
		}
	default:
		return fmt.Errorf("unsupported storage driver %q", c.StorageDriver)
	}
	if strings.TrimSpace(c.CatalogAddr) == "" && !c.AllowMockIntegrations {
		return fmt.Errorf("catalog addr is required; set ORDERS_ALLOW_MOCK_INTEGRATIONS=true to run with a mock catalog")
	}
	if c.OutboxPollInterval <= 0 {
		return fmt.Errorf("outbox poll interval must be positive")
	}
	if c.OutboxBatchSize <= 0 {
		return fmt.Errorf("outbox batch size must be positive")
	}
	if c.OutboxMaxAttempts <= 0 {
		return fmt.Errorf("outbox max attempts must be positive")
	}
	if c.OutboxRetryDelay < 0 {
		return fmt.Errorf("outbox retry delay must not be negative")
	}
	return nil
}
