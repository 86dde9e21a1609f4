package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cerveceria-api/internal/application/dto"
	"github.com/jhoicas/Cerveceria-api/internal/domain"
	"github.com/jhoicas/Cerveceria-api/internal/domain/entity"
	"github.com/jhoicas/Cerveceria-api/internal/domain/repository"
)

// VesselUseCase casos de uso de tanques (fermentadores, bright tanks).
type VesselUseCase struct {
	vesselRepo repository.VesselRepository
}

// NewVesselUseCase construye el caso de uso.
func NewVesselUseCase(vesselRepo repository.VesselRepository) *VesselUseCase {
	return &VesselUseCase{vesselRepo: vesselRepo}
}

// Create registra un tanque disponible.
func (uc *VesselUseCase) Create(ctx context.Context, in dto.CreateVesselRequest) (*entity.Vessel, error) {
	if in.Name == "" || !in.Capacity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	v := &entity.Vessel{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Type:      in.Type,
		Capacity:  in.Capacity,
		Status:    entity.VesselAvailable,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.vesselRepo.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

// SetStatus cambia el estado operativo de un tanque (limpieza, mantenimiento).
// No permite marcar como disponible un tanque ocupado por un lote activo;
// la liberación la hace la transición del lote.
func (uc *VesselUseCase) SetStatus(ctx context.Context, id string, status string) (*entity.Vessel, error) {
	st, err := entity.ParseVesselStatus(status)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	v, err := uc.vesselRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	if v.Status == entity.VesselOccupied && st != entity.VesselOccupied {
		return nil, domain.ErrPreconditionFailed
	}
	if err := uc.vesselRepo.UpdateStatus(ctx, id, st); err != nil {
		return nil, err
	}
	v.Status = st
	return v, nil
}

// GetByID devuelve un tanque.
func (uc *VesselUseCase) GetByID(ctx context.Context, id string) (*entity.Vessel, error) {
	v, err := uc.vesselRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	return v, nil
}

// List lista todos los tanques.
func (uc *VesselUseCase) List(ctx context.Context) ([]*entity.Vessel, error) {
	return uc.vesselRepo.List(ctx)
}
