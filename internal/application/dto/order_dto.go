package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderLineRequest renglón de venta: producto = receta + formato de empaque.
// Si UnitPrice es nil se usa el precio de lista de la receta para ese formato.
type OrderLineRequest struct {
	RecipeID  string           `json:"recipe_id" validate:"required,uuid4"`
	Format    string           `json:"format" validate:"required"`
	Quantity  decimal.Decimal  `json:"quantity" validate:"required"`
	UnitPrice *decimal.Decimal `json:"unit_price,omitempty"`
}

// CreateOrderRequest body para POST /api/orders. El pedido nace en draft.
type CreateOrderRequest struct {
	CustomerID   string             `json:"customer_id" validate:"required,uuid4"`
	DeliveryDate *time.Time         `json:"delivery_date,omitempty"`
	Notes        string             `json:"notes"`
	Lines        []OrderLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// PickLineRequest body para asignar producto terminado a un renglón en picking.
type PickLineRequest struct {
	FinishedGoodsID string `json:"finished_goods_id" validate:"required,uuid4"`
}
