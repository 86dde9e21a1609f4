package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cerveceria-api/internal/application/ports"
	"github.com/jhoicas/Cerveceria-api/internal/domain"
	"github.com/jhoicas/Cerveceria-api/internal/domain/entity"
	"github.com/jhoicas/Cerveceria-api/pkg/logger"
)

// AdjustInput entrada para un movimiento manual sobre un lote.
type AdjustInput struct {
	LotID    string
	Type     entity.MovementType // adjusted, written_off, returned
	Quantity decimal.Decimal     // con signo; written_off siempre resta
	Notes    string
	UserID   string
}

// AdjustStockUseCase registra ajustes manuales, devoluciones y bajas contra un
// lote: asiento inmutable más actualización de la proyección on-hand, en una
// sola transacción.
type AdjustStockUseCase struct {
	txRunner ports.TxRunner
	log      *logger.Logger
}

// NewAdjustStockUseCase construye el caso de uso.
func NewAdjustStockUseCase(txRunner ports.TxRunner, log *logger.Logger) *AdjustStockUseCase {
	return &AdjustStockUseCase{txRunner: txRunner, log: log}
}

// Adjust aplica el movimiento. La suma de movimientos nunca deja el on-hand del
// lote por debajo de cero (ErrInsufficientStock).
func (uc *AdjustStockUseCase) Adjust(ctx context.Context, in AdjustInput) (*entity.StockMovement, error) {
	switch in.Type {
	case entity.MovementAdjusted, entity.MovementWrittenOff, entity.MovementReturned:
	default:
		return nil, domain.ErrInvalidInput
	}
	if in.LotID == "" || in.Quantity.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	qty := in.Quantity
	if in.Type == entity.MovementWrittenOff && qty.GreaterThan(decimal.Zero) {
		qty = qty.Neg()
	}

	var mov *entity.StockMovement
	err := uc.txRunner.Run(ctx, func(r ports.Repos) error {
		lot, err := r.Lots.GetForUpdate(ctx, in.LotID)
		if err != nil {
			return err
		}
		if lot == nil {
			return domain.ErrNotFound
		}
		newQty := lot.QuantityOnHand.Add(qty)
		if newQty.LessThan(decimal.Zero) {
			return domain.ErrInsufficientStock
		}

		now := time.Now()
		mov = &entity.StockMovement{
			ID:        uuid.New().String(),
			LotID:     lot.ID,
			ItemID:    lot.ItemID,
			Type:      in.Type,
			Quantity:  qty,
			UnitCost:  lot.UnitCost,
			RefType:   entity.MovementRefManual,
			Notes:     in.Notes,
			CreatedAt: now,
			CreatedBy: in.UserID,
		}
		if err := r.Movements.Create(ctx, mov); err != nil {
			return err
		}
		lot.QuantityOnHand = newQty
		lot.UpdatedAt = now
		return r.Lots.UpdateQuantity(ctx, lot)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("lot_id", in.LotID).
		Str("type", string(in.Type)).
		Str("quantity", qty.String()).
		Msg("movimiento manual registrado")
	return mov, nil
}
