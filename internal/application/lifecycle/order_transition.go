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

// OrderTransitionUseCase ejecuta transiciones de estado de pedidos de cliente.
type OrderTransitionUseCase struct {
	txRunner ports.TxRunner
	log      *logger.Logger
}

// NewOrderTransitionUseCase construye el caso de uso.
func NewOrderTransitionUseCase(txRunner ports.TxRunner, log *logger.Logger) *OrderTransitionUseCase {
	return &OrderTransitionUseCase{txRunner: txRunner, log: log}
}

// Transition valida y aplica order -> target. Cancelar libera las reservas de
// producto terminado de los renglones; despachar exige todos los renglones
// alistados y descuenta sus existencias; paid/dispatched/delivered estampan fecha.
func (uc *OrderTransitionUseCase) Transition(ctx context.Context, orderID string, target entity.OrderStatus) (*entity.Order, error) {
	var result *entity.Order

	err := uc.txRunner.Run(ctx, func(r ports.Repos) error {
		o, err := r.Orders.GetForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if o == nil {
			return domain.ErrNotFound
		}
		if o.Status == target {
			result = o
			return nil
		}
		if !lifecycle.CanOrderTransition(o.Status, target) {
			return domain.ErrInvalidTransition
		}

		from := o.Status
		now := time.Now()

		switch target {
		case entity.OrderCancelled:
			// Liberar reservas de producto terminado de cada renglón asignado.
			for i := range o.Lines {
				line := &o.Lines[i]
				if line.FinishedGoodsID == nil {
					continue
				}
				if err := r.Finished.AdjustReserved(ctx, *line.FinishedGoodsID, line.Quantity.Neg()); err != nil {
					return err
				}
				line.FinishedGoodsID = nil
				if err := r.Orders.UpdateLine(ctx, line); err != nil {
					return err
				}
			}
		case entity.OrderDispatched:
			// La mercancía sale de planta: descuenta on-hand y libera la reserva
			// de cada renglón alistado.
			for i := range o.Lines {
				line := &o.Lines[i]
				if line.FinishedGoodsID == nil {
					return domain.ErrPreconditionFailed
				}
				fg, err := r.Finished.GetForUpdate(ctx, *line.FinishedGoodsID)
				if err != nil {
					return err
				}
				if fg == nil {
					return domain.ErrNotFound
				}
				fg.QuantityOnHand = fg.QuantityOnHand.Sub(line.Quantity)
				fg.QuantityReserved = fg.QuantityReserved.Sub(line.Quantity)
				fg.UpdatedAt = now
				if err := r.Finished.Update(ctx, fg); err != nil {
					return err
				}
			}
			if o.DispatchedAt == nil {
				o.DispatchedAt = &now
			}
		case entity.OrderDelivered:
			if o.DeliveredAt == nil {
				o.DeliveredAt = &now
			}
		case entity.OrderPaid:
			if o.PaidAt == nil {
				o.PaidAt = &now
			}
		}

		o.Status = target
		o.UpdatedAt = now
		n, err := r.Orders.UpdateStatus(ctx, o.ID, from, target, o)
		if err != nil {
			return err
		}
		if n == 0 {
			return domain.ErrConcurrencyConflict
		}
		result = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("order_id", result.ID).
		Str("status", string(result.Status)).
		Msg("transición de pedido aplicada")
	return result, nil
}
