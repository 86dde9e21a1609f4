package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseOrderLineRequest renglón de una orden de compra. Si UnitCost es nil
// se usa el costo de referencia del ítem.
type PurchaseOrderLineRequest struct {
	ItemID     string           `json:"item_id" validate:"required,uuid4"`
	OrderedQty decimal.Decimal  `json:"ordered_qty" validate:"required"`
	UnitCost   *decimal.Decimal `json:"unit_cost,omitempty"`
}

// CreatePurchaseOrderRequest body para POST /api/purchase-orders.
type CreatePurchaseOrderRequest struct {
	SupplierID   string                     `json:"supplier_id" validate:"required,uuid4"`
	ExpectedDate *time.Time                 `json:"expected_date,omitempty"`
	Notes        string                     `json:"notes"`
	Lines        []PurchaseOrderLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// ReceiveLineRequest body para registrar la recepción parcial o total de un
// renglón: crea un lote con número y vencimiento del proveedor.
type ReceiveLineRequest struct {
	LineID    string          `json:"line_id" validate:"required,uuid4"`
	Quantity  decimal.Decimal `json:"quantity" validate:"required"`
	LotNumber string          `json:"lot_number" validate:"required"`
	ExpiresAt *time.Time      `json:"expires_at,omitempty"`
	Notes     string          `json:"notes"`
}
