package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Lot cantidad física recibida de un ítem de inventario, con su propio costo y
// vencimiento. QuantityOnHand es una proyección cacheada del libro de movimientos:
// solo se modifica aplicando movimientos, nunca de forma independiente.
type Lot struct {
	ID         string
	ItemID     string
	LotNumber  string
	QuantityOnHand decimal.Decimal
	UnitCost   decimal.Decimal
	ReceivedAt time.Time
	ExpiresAt  *time.Time
	Location   string
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Expired indica si el lote está vencido a la fecha dada.
func (l *Lot) Expired(at time.Time) bool {
	return l.ExpiresAt != nil && l.ExpiresAt.Before(at)
}
