package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cerveceria-api/internal/domain/entity"
)

// InventoryItemRepository puerto de persistencia para el catálogo de materias primas.
type InventoryItemRepository interface {
	Create(ctx context.Context, it *entity.InventoryItem) error
	GetByID(ctx context.Context, id string) (*entity.InventoryItem, error)
	GetBySKU(ctx context.Context, sku string) (*entity.InventoryItem, error)
	List(ctx context.Context) ([]*entity.InventoryItem, error)
	Update(ctx context.Context, it *entity.InventoryItem) error
	UpdateCost(ctx context.Context, id string, cost decimal.Decimal) error
}
