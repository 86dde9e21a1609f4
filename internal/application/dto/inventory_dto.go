package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemPositionDTO posición de inventario de una materia prima.
// available = on_hand - allocated; projected = available + incoming.
type ItemPositionDTO struct {
	ItemID    string          `json:"item_id"`
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	Unit      string          `json:"unit"`
	OnHand    decimal.Decimal `json:"on_hand"`
	Allocated decimal.Decimal `json:"allocated"`
	Available decimal.Decimal `json:"available"`
	Incoming  decimal.Decimal `json:"incoming"`
	Projected decimal.Decimal `json:"projected"`
	AsOf      time.Time       `json:"as_of"`
}

// FinishedPositionDTO posición de producto terminado por receta y formato.
type FinishedPositionDTO struct {
	RecipeID   string          `json:"recipe_id"`
	RecipeName string          `json:"recipe_name"`
	Format     string          `json:"format"`
	OnHand     decimal.Decimal `json:"on_hand"`
	Reserved   decimal.Decimal `json:"reserved"`
	Available  decimal.Decimal `json:"available"`
}

// AdjustStockRequest body para POST /api/inventory/adjustments: movimiento
// manual sobre un lote (adjusted, written_off, returned).
type AdjustStockRequest struct {
	LotID    string          `json:"lot_id" validate:"required,uuid4"`
	Type     string          `json:"type" validate:"required,oneof=adjusted written_off returned"`
	Quantity decimal.Decimal `json:"quantity" validate:"required"`
	Notes    string          `json:"notes"`
}

// MovementDTO representación de un movimiento de stock.
type MovementDTO struct {
	ID        string          `json:"id"`
	ItemID    string          `json:"item_id"`
	LotID     string          `json:"lot_id,omitempty"`
	Type      string          `json:"type"`
	Quantity  decimal.Decimal `json:"quantity"`
	RefType   string          `json:"ref_type,omitempty"`
	RefID     string          `json:"ref_id,omitempty"`
	Notes     string          `json:"notes,omitempty"`
	CreatedBy string          `json:"created_by,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}
