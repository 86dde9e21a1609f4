package repository

import (
	"context"

	"github.com/jhoicas/Cerveceria-api/internal/domain/entity"
)

// OrderRepository puerto de persistencia para pedidos y sus renglones.
// Las lecturas devuelven el pedido con renglones cargados.
type OrderRepository interface {
	Create(ctx context.Context, o *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	GetForUpdate(ctx context.Context, id string) (*entity.Order, error)
	List(ctx context.Context, status string, limit, offset int) ([]*entity.Order, error)
	// Update persiste cabecera y renglones (reemplaza renglones completos).
	Update(ctx context.Context, o *entity.Order) error
	UpdateStatus(ctx context.Context, id string, from, to entity.OrderStatus, o *entity.Order) (int64, error)
	GetLine(ctx context.Context, lineID string) (*entity.OrderLine, error)
	UpdateLine(ctx context.Context, line *entity.OrderLine) error
}
