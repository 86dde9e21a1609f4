package repository

import (
	"context"

	"github.com/jhoicas/Cerveceria-api/internal/domain/entity"
)

// SupplierRepository puerto de persistencia para proveedores.
type SupplierRepository interface {
	Create(ctx context.Context, s *entity.Supplier) error
	GetByID(ctx context.Context, id string) (*entity.Supplier, error)
	List(ctx context.Context, search string, limit, offset int) ([]*entity.Supplier, error)
	Update(ctx context.Context, s *entity.Supplier) error
}
