package app

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/orders/internal/domain"
	"github.com/vladislavdragonenkov/orders/internal/service/catalog"
)

// initProductCatalog подключает внешний каталог товаров. Mock-каталог с
// демо-товарами поднимается только при явном allowMock: молчаливая подмена
// каталога в продакшене недопустима.
func initProductCatalog(addr string, allowMock bool, logger *log.Entry) (domain.ProductCatalog, func() error, error) {
	if strings.TrimSpace(addr) == "" {
		if !allowMock {
			return nil, nil, fmt.Errorf("catalog addr is empty and mock integrations are not allowed")
		}
		logger.Warn("catalog addr is empty, using mock product catalog with demo products")
		return demoCatalog(), nil, nil
	}

	client, err := catalog.Dial(addr, logger.WithField("component", "catalog-client"))
	if err != nil {
		return nil, nil, err
	}
	return client, client.Close, nil
}

func demoCatalog() *catalog.MockCatalog {
	return catalog.NewMockCatalog(
		domain.Product{ID: 1, Name: "keyboard", Price: decimal.RequireFromString("49.90"), Available: true},
		domain.Product{ID: 2, Name: "mouse", Price: decimal.RequireFromString("19.90"), Available: true},
		domain.Product{ID: 3, Name: "monitor", Price: decimal.RequireFromString("219.00"), Available: true},
	)
}
