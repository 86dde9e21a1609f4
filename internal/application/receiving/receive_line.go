// Package receiving implementa el reconciliador de recepciones: aplica una
// recepción parcial o total contra un renglón de orden de compra, alimenta el
// libro de inventario y deriva el estado agregado de la orden.
package receiving

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cerveceria-api/internal/application/ports"
	"github.com/jhoicas/Cerveceria-api/internal/domain"
	"github.com/jhoicas/Cerveceria-api/internal/domain/entity"
	domaininv "github.com/jhoicas/Cerveceria-api/internal/domain/inventory"
	"github.com/jhoicas/Cerveceria-api/pkg/logger"
)

// ReceiveLineInput entrada para registrar una recepción sobre un renglón.
type ReceiveLineInput struct {
	LineID    string
	Quantity  decimal.Decimal
	LotNumber string
	Location  string
	ExpiresAt *time.Time
	Notes     string
	UserID    string
}

// ReceiveLineResult lote y asiento creados por la recepción, con la orden actualizada.
type ReceiveLineResult struct {
	Lot           *entity.Lot
	Movement      *entity.StockMovement
	PurchaseOrder *entity.PurchaseOrder
}

// ReceiveLineUseCase registra recepciones de mercancía de forma transaccional.
type ReceiveLineUseCase struct {
	txRunner ports.TxRunner
	log      *logger.Logger
}

// NewReceiveLineUseCase construye el caso de uso.
func NewReceiveLineUseCase(txRunner ports.TxRunner, log *logger.Logger) *ReceiveLineUseCase {
	return &ReceiveLineUseCase{txRunner: txRunner, log: log}
}

// ReceiveLine aplica una recepción contra un renglón, en una sola transacción:
//
//	(1) crea el lote del ítem (cantidad, costo del renglón, vencimiento, ubicación)
//	(2) agrega el asiento `received` referenciando el lote y la orden de compra
//	(3) incrementa received_qty del renglón
//	(4) deriva el estado de la orden recalculando sobre todos los renglones
//
// Precondiciones: orden en sent/acknowledged/partially_received (ErrPreconditionFailed),
// cantidad > 0 (ErrInvalidInput), y received+qty <= ordered (ErrOverReceipt; nunca
// se recorta en silencio).
func (uc *ReceiveLineUseCase) ReceiveLine(ctx context.Context, in ReceiveLineInput) (*ReceiveLineResult, error) {
	if in.LineID == "" || in.LotNumber == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	var out ReceiveLineResult
	err := uc.txRunner.Run(ctx, func(r ports.Repos) error {
		po, err := r.PurchaseOrders.GetByLineIDForUpdate(ctx, in.LineID)
		if err != nil {
			return err
		}
		if po == nil {
			return domain.ErrNotFound
		}
		if !po.Status.Receivable() {
			return domain.ErrPreconditionFailed
		}

		var line *entity.PurchaseOrderLine
		for i := range po.Lines {
			if po.Lines[i].ID == in.LineID {
				line = &po.Lines[i]
				break
			}
		}
		if line == nil {
			return domain.ErrNotFound
		}
		if line.ReceivedQty.Add(in.Quantity).GreaterThan(line.OrderedQty) {
			return domain.ErrOverReceipt
		}

		item, err := r.Items.GetByID(ctx, line.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}

		now := time.Now()

		// On-hand del ítem antes de la entrada, para el promedio ponderado.
		onHandBefore := decimal.Zero
		openLots, err := r.Lots.ListOpenByItem(ctx, line.ItemID, false)
		if err != nil {
			return err
		}
		for _, l := range openLots {
			onHandBefore = onHandBefore.Add(l.QuantityOnHand)
		}

		// (1) Lote físico con el costo del renglón.
		lot := &entity.Lot{
			ID:             uuid.New().String(),
			ItemID:         line.ItemID,
			LotNumber:      in.LotNumber,
			QuantityOnHand: in.Quantity,
			UnitCost:       line.UnitCost,
			ReceivedAt:     now,
			ExpiresAt:      in.ExpiresAt,
			Location:       in.Location,
			Notes:          in.Notes,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := r.Lots.Create(ctx, lot); err != nil {
			return err
		}

		// (2) Asiento inmutable del libro, referenciando lote y orden de compra.
		mov := &entity.StockMovement{
			ID:        uuid.New().String(),
			LotID:     lot.ID,
			ItemID:    line.ItemID,
			Type:      entity.MovementReceived,
			Quantity:  in.Quantity,
			UnitCost:  line.UnitCost,
			RefType:   entity.MovementRefPurchaseOrder,
			RefID:     po.ID,
			Notes:     in.Notes,
			CreatedAt: now,
			CreatedBy: in.UserID,
		}
		if err := r.Movements.Create(ctx, mov); err != nil {
			return err
		}

		// Costo de referencia del ítem: promedio ponderado con la entrada.
		newCost := domaininv.WeightedCost(onHandBefore, item.UnitCost, in.Quantity, line.UnitCost)
		if err := r.Items.UpdateCost(ctx, item.ID, newCost); err != nil {
			return err
		}

		// (3) Incrementar lo recibido del renglón (CHECK de DB respalda el tope).
		line.ReceivedQty = line.ReceivedQty.Add(in.Quantity)
		if err := r.PurchaseOrders.UpdateLineReceived(ctx, line); err != nil {
			return err
		}

		// (4) Derivación completa del estado agregado: nunca incremental, para que
		// el flag no se desincronice de los renglones que resume.
		if next, ok := po.DeriveReceiptStatus(); ok && next != po.Status {
			from := po.Status
			po.Status = next
			po.UpdatedAt = now
			n, err := r.PurchaseOrders.UpdateStatus(ctx, po.ID, from, next, po)
			if err != nil {
				return err
			}
			if n == 0 {
				return domain.ErrConcurrencyConflict
			}
		}

		out = ReceiveLineResult{Lot: lot, Movement: mov, PurchaseOrder: po}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("purchase_order_id", out.PurchaseOrder.ID).
		Str("lot_id", out.Lot.ID).
		Str("status", string(out.PurchaseOrder.Status)).
		Msg("recepción registrada")
	return &out, nil
}
