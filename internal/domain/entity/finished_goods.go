package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// FinishedGoods existencia de producto terminado, por receta y formato, derivada
// de un lote de producción empacado. QuantityReserved acumula las reservas de
// renglones de pedido en alistamiento.
//
// Available puede ser negativo: señala sobre-asignación y se muestra como anomalía,
// no se bloquea aquí (la asignación de un renglón sí exige disponible >= 0).
type FinishedGoods struct {
	ID               string
	BatchID          string
	RecipeID         string
	Format           PackFormat
	QuantityOnHand   decimal.Decimal
	QuantityReserved decimal.Decimal
	UnitCost         decimal.Decimal
	PackagedAt       time.Time
	BestBefore       *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Available cantidad libre para comprometer: on-hand menos reservado.
func (fg *FinishedGoods) Available() decimal.Decimal {
	return fg.QuantityOnHand.Sub(fg.QuantityReserved)
}
