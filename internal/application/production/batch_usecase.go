// Package production implementa los casos de uso de lotes de producción:
// creación con consecutivo, asignación de tanque, mediciones de proceso y el
// flujo de empaque que deriva producto terminado.
package production

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cerveceria-api/internal/application/dto"
	"github.com/jhoicas/Cerveceria-api/internal/application/ports"
	"github.com/jhoicas/Cerveceria-api/internal/domain"
	"github.com/jhoicas/Cerveceria-api/internal/domain/entity"
	"github.com/jhoicas/Cerveceria-api/internal/domain/repository"
)

// Config parámetros de numeración para lotes.
type Config struct {
	NumberPrefix string // ej. "B"
}

// BatchUseCase casos de uso de lotes de producción.
type BatchUseCase struct {
	txRunner   ports.TxRunner
	batchRepo  repository.BatchRepository
	recipeRepo repository.RecipeRepository
	vesselRepo repository.VesselRepository
	cfg        Config
}

// NewBatchUseCase construye el caso de uso.
func NewBatchUseCase(
	txRunner ports.TxRunner,
	batchRepo repository.BatchRepository,
	recipeRepo repository.RecipeRepository,
	vesselRepo repository.VesselRepository,
	cfg Config,
) *BatchUseCase {
	return &BatchUseCase{
		txRunner:   txRunner,
		batchRepo:  batchRepo,
		recipeRepo: recipeRepo,
		vesselRepo: vesselRepo,
		cfg:        cfg,
	}
}

// Create crea un lote en planned. El tamaño por defecto es el de la receta.
func (uc *BatchUseCase) Create(ctx context.Context, in dto.CreateBatchRequest) (*entity.Batch, error) {
	if in.RecipeID == "" {
		return nil, domain.ErrInvalidInput
	}
	recipe, err := uc.recipeRepo.GetByID(ctx, in.RecipeID)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, domain.ErrNotFound
	}
	size := recipe.BatchSize
	if in.BatchSize != nil && in.BatchSize.GreaterThan(decimal.Zero) {
		size = *in.BatchSize
	}

	now := time.Now()
	b := &entity.Batch{
		ID:          uuid.New().String(),
		RecipeID:    in.RecipeID,
		Status:      entity.BatchPlanned,
		BatchSize:   size,
		PlannedDate: in.PlannedDate,
		ReadyDate:   in.ReadyDate,
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = uc.txRunner.Run(ctx, func(r ports.Repos) error {
		seq, err := r.Sequences.Next(ctx, uc.cfg.NumberPrefix)
		if err != nil {
			return err
		}
		b.Number = fmt.Sprintf("%s-%d-%04d", uc.cfg.NumberPrefix, now.Year(), seq)
		return r.Batches.Create(ctx, b)
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

// AssignVessel asigna un tanque disponible al lote. El lote posee el tanque en
// exclusiva mientras su estado lo ocupe; el tanque pasa a occupied.
func (uc *BatchUseCase) AssignVessel(ctx context.Context, batchID, vesselID string) (*entity.Batch, error) {
	if batchID == "" || vesselID == "" {
		return nil, domain.ErrInvalidInput
	}

	var result *entity.Batch
	err := uc.txRunner.Run(ctx, func(r ports.Repos) error {
		b, err := r.Batches.GetForUpdate(ctx, batchID)
		if err != nil {
			return err
		}
		if b == nil {
			return domain.ErrNotFound
		}
		// Asignable al planear o ya en proceso (cambio de tanque).
		if b.Status != entity.BatchPlanned && !b.Status.OccupiesVessel() {
			return domain.ErrPreconditionFailed
		}
		v, err := r.Vessels.GetForUpdate(ctx, vesselID)
		if err != nil {
			return err
		}
		if v == nil {
			return domain.ErrNotFound
		}
		if v.Status != entity.VesselAvailable {
			return domain.ErrPreconditionFailed
		}
		if v.Capacity.LessThan(b.BatchSize) {
			return domain.ErrPreconditionFailed
		}

		// Cambio de tanque: liberar el anterior.
		if b.VesselID != nil && *b.VesselID != vesselID {
			if err := r.Vessels.UpdateStatus(ctx, *b.VesselID, entity.VesselAvailable); err != nil {
				return err
			}
		}
		if err := r.Vessels.UpdateStatus(ctx, vesselID, entity.VesselOccupied); err != nil {
			return err
		}
		b.VesselID = &vesselID
		b.UpdatedAt = time.Now()
		if err := r.Batches.Update(ctx, b); err != nil {
			return err
		}
		result = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// RecordMeasurements registra mediciones reales del proceso (volumen, OG, FG, ABV).
func (uc *BatchUseCase) RecordMeasurements(ctx context.Context, batchID string, in dto.BatchMeasurementsRequest) (*entity.Batch, error) {
	if batchID == "" {
		return nil, domain.ErrInvalidInput
	}

	var result *entity.Batch
	err := uc.txRunner.Run(ctx, func(r ports.Repos) error {
		b, err := r.Batches.GetForUpdate(ctx, batchID)
		if err != nil {
			return err
		}
		if b == nil {
			return domain.ErrNotFound
		}
		if in.ActualVolume != nil {
			b.ActualVolume = in.ActualVolume
		}
		if in.OriginalGravity != nil {
			b.OriginalGravity = in.OriginalGravity
		}
		if in.FinalGravity != nil {
			b.FinalGravity = in.FinalGravity
		}
		if in.ABV != nil {
			b.ABV = in.ABV
		}
		b.UpdatedAt = time.Now()
		if err := r.Batches.Update(ctx, b); err != nil {
			return err
		}
		result = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// GetByID devuelve un lote.
func (uc *BatchUseCase) GetByID(ctx context.Context, id string) (*entity.Batch, error) {
	b, err := uc.batchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	return b, nil
}

// List lista lotes, opcionalmente por estado.
func (uc *BatchUseCase) List(ctx context.Context, status string, limit, offset int) ([]*entity.Batch, error) {
	if status != "" {
		if _, err := entity.ParseBatchStatus(status); err != nil {
			return nil, domain.ErrInvalidInput
		}
	}
	return uc.batchRepo.List(ctx, status, limit, offset)
}
