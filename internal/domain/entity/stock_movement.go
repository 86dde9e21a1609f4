package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// MovementType tipo de movimiento del libro de inventario.
type MovementType string

const (
	MovementReceived    MovementType = "received"
	MovementConsumed    MovementType = "consumed"
	MovementAdjusted    MovementType = "adjusted"
	MovementTransferred MovementType = "transferred"
	MovementReturned    MovementType = "returned"
	MovementWrittenOff  MovementType = "written_off"
)

// ParseMovementType valida un tipo de movimiento recibido del borde.
func ParseMovementType(s string) (MovementType, error) {
	switch MovementType(s) {
	case MovementReceived, MovementConsumed, MovementAdjusted,
		MovementTransferred, MovementReturned, MovementWrittenOff:
		return MovementType(s), nil
	}
	return "", fmt.Errorf("tipo de movimiento desconocido: %q", s)
}

// Tipos de documento origen de un movimiento.
const (
	MovementRefPurchaseOrder = "purchase_order"
	MovementRefBatch         = "batch"
	MovementRefOrder         = "order"
	MovementRefManual        = "manual"
)

// StockMovement asiento inmutable del libro de inventario (append-only).
// Quantity es con signo: positivo entra al lote, negativo sale. La suma de
// movimientos de un lote nunca deja su proyección on-hand por debajo de cero.
type StockMovement struct {
	ID        string
	LotID     string
	ItemID    string
	Type      MovementType
	Quantity  decimal.Decimal
	UnitCost  decimal.Decimal
	RefType   string // purchase_order, batch, order, manual
	RefID     string
	Notes     string
	CreatedAt time.Time
	CreatedBy string
}
