package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/vladislavdragonenkov/orders/internal/domain"
	ordersv1 "github.com/vladislavdragonenkov/orders/proto/orders/v1"
)

const callTimeout = 3 * time.Second

// Client — gRPC-клиент внешнего каталога товаров.
type Client struct {
	client ordersv1.ProductCatalogServiceClient
	conn   *grpc.ClientConn
	logger *log.Entry
}

// Dial открывает соединение с каталогом и возвращает готовый клиент.
func Dial(target string, logger *log.Entry) (*Client, error) {
	if logger == nil {
		logger = log.New().WithField("component", "catalog-client")
	}

	conn, err := grpc.NewClient(target,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("dial product catalog at %s: %w", target, err)
	}
	logger.WithField("target", target).Info("product catalog client initialized")

	return &Client{
		client: ordersv1.NewProductCatalogServiceClient(conn),
		conn:   conn,
		logger: logger,
	}, nil
}

// NewClient оборачивает уже созданный gRPC-клиент (используется в тестах).
func NewClient(client ordersv1.ProductCatalogServiceClient, logger *log.Entry) *Client {
	if logger == nil {
		logger = log.New().WithField("component", "catalog-client")
	}
	return &Client{client: client, logger: logger}
}

// Close закрывает соединение с каталогом.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// ValidateProducts выполняет один вызов каталога для набора идентификаторов.
// Любая ошибка каталога оборачивается в domain.CatalogError с кодом апстрима;
// повторных попыток нет.
func (c *Client) ValidateProducts(ctx context.Context, ids []int64) ([]domain.Product, error) {
	callCtx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	resp, err := c.client.ValidateProducts(callCtx, &ordersv1.ValidateProductsRequest{ProductIds: ids})
	if err != nil {
		st, _ := status.FromError(err)
		c.logger.WithError(err).WithField("ids", ids).Warn("product validation failed")
		return nil, &domain.CatalogError{
			Code:    uint32(st.Code()),
			Message: st.Message(),
		}
	}

	products := make([]domain.Product, 0, len(resp.GetProducts()))
	for _, p := range resp.GetProducts() {
		products = append(products, domain.Product{
			ID:        p.GetId(),
			Name:      p.GetName(),
			Price:     decimal.NewFromFloat(p.GetPrice()),
			Available: p.GetAvailable(),
		})
	}

	return products, nil
}

var _ domain.ProductCatalog = (*Client)(nil)
