package repository

import (
	"context"

	"github.com/jhoicas/Cerveceria-api/internal/domain/entity"
)

// PurchaseOrderRepository puerto de persistencia para órdenes de compra y renglones.
// Las lecturas devuelven la orden con renglones cargados.
type PurchaseOrderRepository interface {
	Create(ctx context.Context, po *entity.PurchaseOrder) error
	GetByID(ctx context.Context, id string) (*entity.PurchaseOrder, error)
	GetForUpdate(ctx context.Context, id string) (*entity.PurchaseOrder, error)
	// GetByLineIDForUpdate carga la orden dueña del renglón y bloquea sus filas.
	GetByLineIDForUpdate(ctx context.Context, lineID string) (*entity.PurchaseOrder, error)
	List(ctx context.Context, status string, limit, offset int) ([]*entity.PurchaseOrder, error)
	Update(ctx context.Context, po *entity.PurchaseOrder) error
	UpdateStatus(ctx context.Context, id string, from, to entity.PurchaseOrderStatus, po *entity.PurchaseOrder) (int64, error)
	// UpdateLineReceived incrementa received_qty del renglón; el CHECK de DB
	// (received_qty <= ordered_qty) respalda la validación de sobre-recepción.
	UpdateLineReceived(ctx context.Context, line *entity.PurchaseOrderLine) error
}
