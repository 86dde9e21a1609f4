package repository

import (
	"context"

	"github.com/jhoicas/Cerveceria-api/internal/domain/entity"
)

// CustomerRepository puerto de persistencia para clientes.
type CustomerRepository interface {
	Create(ctx context.Context, c *entity.Customer) error
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	List(ctx context.Context, search string, limit, offset int) ([]*entity.Customer, error)
	Update(ctx context.Context, c *entity.Customer) error
}
