package catalog

import (
	"context"

	"github.com/vladislavdragonenkov/orders/internal/domain"
)

// MockCatalog — конфигурируемая заглушка ProductCatalog для тестов.
type MockCatalog struct {
	Products []domain.Product
	Err      error

	ValidateCalls int
	LastIDs       []int64
}

// NewMockCatalog возвращает mock с успешным сценарием по умолчанию.
func NewMockCatalog(products ...domain.Product) *MockCatalog {
	return &MockCatalog{Products: products}
}

// ValidateProducts возвращает заранее настроенный ответ и считает вызовы.
func (m *MockCatalog) ValidateProducts(_ context.Context, ids []int64) ([]domain.Product, error) {
	m.ValidateCalls++
	m.LastIDs = append([]int64(nil), ids...)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Products, nil
}

var _ domain.ProductCatalog = (*MockCatalog)(nil)
