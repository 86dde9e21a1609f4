package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías de materia prima.
const (
	ItemCategoryMalt      = "malt"
	ItemCategoryHops      = "hops"
	ItemCategoryYeast     = "yeast"
	ItemCategoryAdjunct   = "adjunct"
	ItemCategoryPackaging = "packaging"
	ItemCategoryOther     = "other"
)

// InventoryItem entrada de catálogo de materia prima. Las cantidades físicas
// viven en los lotes (Lot); aquí solo parámetros de compra y reorden.
type InventoryItem struct {
	ID           string
	SKU          string // código único
	Name         string
	Category     string
	Unit         string // kg, g, l, unit
	UnitCost     decimal.Decimal // costo de referencia del último lote recibido
	ReorderPoint decimal.Decimal
	ReorderQty   decimal.Decimal
	SupplierID   *string // proveedor habitual
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
