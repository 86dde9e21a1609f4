package repository

import (
	"context"

	"github.com/jhoicas/Cerveceria-api/internal/domain/entity"
)

// BatchRepository puerto de persistencia para lotes de producción.
type BatchRepository interface {
	Create(ctx context.Context, b *entity.Batch) error
	GetByID(ctx context.Context, id string) (*entity.Batch, error)
	// GetForUpdate bloquea la fila del lote dentro de la transacción (SELECT FOR UPDATE).
	GetForUpdate(ctx context.Context, id string) (*entity.Batch, error)
	List(ctx context.Context, status string, limit, offset int) ([]*entity.Batch, error)
	Update(ctx context.Context, b *entity.Batch) error
	// UpdateStatus escribe el nuevo estado con guarda optimista sobre el estado previo.
	// Devuelve las filas afectadas: cero significa que otro escritor ganó la carrera.
	UpdateStatus(ctx context.Context, id string, from, to entity.BatchStatus, b *entity.Batch) (int64, error)
}
