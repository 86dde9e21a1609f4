package repository

import (
	"context"

	"github.com/jhoicas/Cerveceria-api/internal/domain/entity"
)

// LotRepository puerto de persistencia para lotes de materia prima.
type LotRepository interface {
	Create(ctx context.Context, l *entity.Lot) error
	GetByID(ctx context.Context, id string) (*entity.Lot, error)
	GetForUpdate(ctx context.Context, id string) (*entity.Lot, error)
	// ListOpenByItem lotes con on-hand > 0 y no vencidos, más antiguos primero (FEFO/FIFO).
	// Con forUpdate bloquea las filas para consumo transaccional.
	ListOpenByItem(ctx context.Context, itemID string, forUpdate bool) ([]*entity.Lot, error)
	ListByItem(ctx context.Context, itemID string) ([]*entity.Lot, error)
	// UpdateQuantity escribe la proyección on-hand del lote tras aplicar un movimiento.
	UpdateQuantity(ctx context.Context, l *entity.Lot) error
}
