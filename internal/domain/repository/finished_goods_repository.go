package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cerveceria-api/internal/domain/entity"
)

// FinishedGoodsRepository puerto de persistencia para producto terminado.
type FinishedGoodsRepository interface {
	Create(ctx context.Context, fg *entity.FinishedGoods) error
	GetByID(ctx context.Context, id string) (*entity.FinishedGoods, error)
	GetForUpdate(ctx context.Context, id string) (*entity.FinishedGoods, error)
	List(ctx context.Context, recipeID string) ([]*entity.FinishedGoods, error)
	ListByBatch(ctx context.Context, batchID string) ([]*entity.FinishedGoods, error)
	Update(ctx context.Context, fg *entity.FinishedGoods) error
	// AdjustReserved suma delta (con signo) a quantity_reserved de la existencia.
	AdjustReserved(ctx context.Context, id string, delta decimal.Decimal) error
	// ReservedByBatch total reservado contra producto terminado derivado del lote de producción.
	ReservedByBatch(ctx context.Context, batchID string) (decimal.Decimal, error)
}
