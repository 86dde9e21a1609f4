package lifecycle

import (
	"context"
	"time"

	"github.com/jhoicas/Cerveceria-api/internal/application/ports"
	"github.com/jhoicas/Cerveceria-api/internal/domain"
	"github.com/jhoicas/Cerveceria-api/internal/domain/entity"
	"github.com/jhoicas/Cerveceria-api/internal/domain/lifecycle"
	"github.com/jhoicas/Cerveceria-api/pkg/logger"
)

// PurchaseOrderTransitionUseCase ejecuta transiciones de estado de órdenes de compra
// solicitadas por el usuario. partially_received no se acepta aquí: ese borde solo
// lo recorre el reconciliador de recepciones.
type PurchaseOrderTransitionUseCase struct {
	txRunner ports.TxRunner
	log      *logger.Logger
}

// NewPurchaseOrderTransitionUseCase construye el caso de uso.
func NewPurchaseOrderTransitionUseCase(txRunner ports.TxRunner, log *logger.Logger) *PurchaseOrderTransitionUseCase {
	return &PurchaseOrderTransitionUseCase{txRunner: txRunner, log: log}
}

// Transition valida y aplica po -> target. received exige todos los renglones
// completos (ErrPreconditionFailed si no); cancelled siempre procede desde un
// estado no terminal, sin importar recepciones parciales.
func (uc *PurchaseOrderTransitionUseCase) Transition(ctx context.Context, poID string, target entity.PurchaseOrderStatus) (*entity.PurchaseOrder, error) {
	var result *entity.PurchaseOrder

	err := uc.txRunner.Run(ctx, func(r ports.Repos) error {
		po, err := r.PurchaseOrders.GetForUpdate(ctx, poID)
		if err != nil {
			return err
		}
		if po == nil {
			return domain.ErrNotFound
		}
		if po.Status == target {
			result = po
			return nil
		}
		// Borde interno del reconciliador, nunca solicitable por el usuario.
		if target == entity.POPartiallyReceived {
			return domain.ErrInvalidTransition
		}
		if !lifecycle.CanPurchaseOrderTransition(po.Status, target) {
			return domain.ErrInvalidTransition
		}

		if target == entity.POReceived {
			for _, l := range po.Lines {
				if !l.FullyReceived() {
					return domain.ErrPreconditionFailed
				}
			}
		}

		from := po.Status
		po.Status = target
		po.UpdatedAt = time.Now()
		n, err := r.PurchaseOrders.UpdateStatus(ctx, po.ID, from, target, po)
		if err != nil {
			return err
		}
		if n == 0 {
			return domain.ErrConcurrencyConflict
		}
		result = po
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("purchase_order_id", result.ID).
		Str("status", string(result.Status)).
		Msg("transición de orden de compra aplicada")
	return result, nil
}
