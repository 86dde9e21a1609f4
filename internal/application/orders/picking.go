package orders

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cerveceria-api/internal/application/ports"
	"github.com/jhoicas/Cerveceria-api/internal/domain"
	"github.com/jhoicas/Cerveceria-api/internal/domain/entity"
)

// PickLine asigna una existencia de producto terminado a un renglón durante el
// alistamiento y reserva la cantidad. La asignación exige disponible >= 0 después
// de reservar (ErrPreconditionFailed); el disponible negativo solo puede surgir
// por otras vías (ajustes, bajas) y se expone como anomalía en el libro.
// Reasignar un renglón libera primero la reserva anterior.
func (uc *OrderUseCase) PickLine(ctx context.Context, orderID, lineID, finishedGoodsID string) (*entity.OrderLine, error) {
	if orderID == "" || lineID == "" || finishedGoodsID == "" {
		return nil, domain.ErrInvalidInput
	}

	var result *entity.OrderLine
	err := uc.txRunner.Run(ctx, func(r ports.Repos) error {
		o, err := r.Orders.GetForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if o == nil {
			return domain.ErrNotFound
		}
		if o.Status != entity.OrderPicking {
			return domain.ErrPreconditionFailed
		}

		var line *entity.OrderLine
		for i := range o.Lines {
			if o.Lines[i].ID == lineID {
				line = &o.Lines[i]
				break
			}
		}
		if line == nil {
			return domain.ErrNotFound
		}

		fg, err := r.Finished.GetForUpdate(ctx, finishedGoodsID)
		if err != nil {
			return err
		}
		if fg == nil {
			return domain.ErrNotFound
		}
		if fg.RecipeID != line.RecipeID || fg.Format != line.Format {
			return domain.ErrPreconditionFailed
		}
		if fg.Available().Sub(line.Quantity).LessThan(decimal.Zero) {
			return domain.ErrPreconditionFailed
		}

		// Reasignación: liberar la reserva previa antes de tomar la nueva.
		if line.FinishedGoodsID != nil && *line.FinishedGoodsID != finishedGoodsID {
			if err := r.Finished.AdjustReserved(ctx, *line.FinishedGoodsID, line.Quantity.Neg()); err != nil {
				return err
			}
		}
		if line.FinishedGoodsID == nil || *line.FinishedGoodsID != finishedGoodsID {
			if err := r.Finished.AdjustReserved(ctx, finishedGoodsID, line.Quantity); err != nil {
				return err
			}
		}
		line.FinishedGoodsID = &finishedGoodsID
		if err := r.Orders.UpdateLine(ctx, line); err != nil {
			return err
		}
		result = line
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
