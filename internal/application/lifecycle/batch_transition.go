// Package lifecycle implementa el motor de transiciones de estado: valida una
// transición solicitada contra las tablas de política, aplica precondiciones y
// efectos secundarios, y confirma todo en una sola transacción. Re-solicitar una
// transición ya aplicada es un no-op exitoso (reintentos de cliente), no un error.
package lifecycle

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cerveceria-api/internal/application/ports"
	"github.com/jhoicas/Cerveceria-api/internal/domain"
	"github.com/jhoicas/Cerveceria-api/internal/domain/entity"
	"github.com/jhoicas/Cerveceria-api/internal/domain/lifecycle"
	"github.com/jhoicas/Cerveceria-api/pkg/logger"
)

// BatchHook se invoca tras el commit de una transición de lote. Cada hook debe
// ser idempotente; el motor solo garantiza que se dispara después del commit.
type BatchHook func(ctx context.Context, b *entity.Batch)

// BatchTransitionUseCase ejecuta transiciones de estado de lotes de producción.
type BatchTransitionUseCase struct {
	txRunner   ports.TxRunner
	log        *logger.Logger
	onPackaged []BatchHook
}

// NewBatchTransitionUseCase construye el caso de uso.
func NewBatchTransitionUseCase(txRunner ports.TxRunner, log *logger.Logger) *BatchTransitionUseCase {
	return &BatchTransitionUseCase{txRunner: txRunner, log: log}
}

// OnPackaged registra un hook post-commit para lotes que entran a packaged
// (flujo de empaque: crea producto terminado y consume materia prima).
func (uc *BatchTransitionUseCase) OnPackaged(h BatchHook) {
	uc.onPackaged = append(uc.onPackaged, h)
}

// Transition valida y aplica batch -> target.
//
//	(1) carga y bloquea el lote; ErrNotFound si no existe
//	(2) no-op exitoso si ya está en target (petición duplicada)
//	(3) ErrInvalidTransition si target no está en la política
//	(4) precondiciones y efectos: brewing estampa BrewDate; entrar a un estado
//	    que no ocupa tanque libera el tanque asignado (idempotente sin tanque);
//	    dumped se bloquea mientras el producto terminado derivado retenga reservas
//	(5) escritura con guarda de estado previo; cero filas -> ErrConcurrencyConflict
func (uc *BatchTransitionUseCase) Transition(ctx context.Context, batchID string, target entity.BatchStatus) (*entity.Batch, error) {
	var result *entity.Batch
	var packaged bool

	err := uc.txRunner.Run(ctx, func(r ports.Repos) error {
		b, err := r.Batches.GetForUpdate(ctx, batchID)
		if err != nil {
			return err
		}
		if b == nil {
			return domain.ErrNotFound
		}
		if b.Status == target {
			result = b
			return nil
		}
		if !lifecycle.CanBatchTransition(b.Status, target) {
			return domain.ErrInvalidTransition
		}

		from := b.Status
		now := time.Now()

		switch target {
		case entity.BatchBrewing:
			if b.BrewDate == nil {
				b.BrewDate = &now
			}
		case entity.BatchDumped:
			reserved, err := r.Finished.ReservedByBatch(ctx, b.ID)
			if err != nil {
				return err
			}
			if reserved.GreaterThan(decimal.Zero) {
				return domain.ErrPreconditionFailed
			}
		case entity.BatchPackaged:
			if b.PackagedAt == nil {
				b.PackagedAt = &now
			}
		case entity.BatchCompleted:
			if b.CompletedAt == nil {
				b.CompletedAt = &now
			}
		}

		// Liberar el tanque si el destino no lo ocupa. Sin condición sobre el
		// origen: un lote planned puede tener tanque asignado por adelantado y
		// cancelarlo no debe dejarlo ocupado.
		if b.VesselID != nil && !target.OccupiesVessel() {
			if err := r.Vessels.UpdateStatus(ctx, *b.VesselID, entity.VesselAvailable); err != nil {
				return err
			}
			b.VesselID = nil
		}

		b.Status = target
		b.UpdatedAt = now
		n, err := r.Batches.UpdateStatus(ctx, b.ID, from, target, b)
		if err != nil {
			return err
		}
		if n == 0 {
			return domain.ErrConcurrencyConflict
		}
		result = b
		packaged = target == entity.BatchPackaged
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("batch_id", result.ID).
		Str("status", string(result.Status)).
		Msg("transición de lote aplicada")

	// Hooks post-commit: el empaque crea producto terminado fuera de esta tx.
	if packaged {
		for _, h := range uc.onPackaged {
			h(ctx, result)
		}
	}
	return result, nil
}
