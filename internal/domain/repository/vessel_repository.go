package repository

import (
	"context"

	"github.com/jhoicas/Cerveceria-api/internal/domain/entity"
)

// VesselRepository puerto de persistencia para tanques.
type VesselRepository interface {
	Create(ctx context.Context, v *entity.Vessel) error
	GetByID(ctx context.Context, id string) (*entity.Vessel, error)
	GetForUpdate(ctx context.Context, id string) (*entity.Vessel, error)
	List(ctx context.Context) ([]*entity.Vessel, error)
	UpdateStatus(ctx context.Context, id string, status entity.VesselStatus) error
}
