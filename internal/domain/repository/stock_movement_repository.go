package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Cerveceria-api/internal/domain/entity"
)

// StockMovementRepository puerto del libro de movimientos. Solo inserción y
// lectura: los asientos son inmutables.
type StockMovementRepository interface {
	Create(ctx context.Context, m *entity.StockMovement) error
	ListByItem(ctx context.Context, itemID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error)
	ListByLot(ctx context.Context, lotID string, limit, offset int) ([]*entity.StockMovement, error)
	ListByRef(ctx context.Context, refType, refID string) ([]*entity.StockMovement, error)
}
