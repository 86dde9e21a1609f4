package dto

import "github.com/shopspring/decimal"

// RecipeIngredientRequest ingrediente dentro de una receta.
type RecipeIngredientRequest struct {
	ItemID   string          `json:"item_id" validate:"required,uuid4"`
	Quantity decimal.Decimal `json:"quantity" validate:"required"`
	Stage    string          `json:"stage" validate:"omitempty,oneof=mash boil whirlpool fermentation packaging"`
}

// CreateRecipeRequest body para POST /api/recipes. Los precios van por formato
// de empaque (keg_50l, bottle_330ml, etc.).
type CreateRecipeRequest struct {
	Name          string                     `json:"name" validate:"required"`
	Style         string                     `json:"style"`
	BatchSize     decimal.Decimal            `json:"batch_size" validate:"required"`
	TargetOG      *decimal.Decimal           `json:"target_og,omitempty"`
	TargetFG      *decimal.Decimal           `json:"target_fg,omitempty"`
	TargetABV     *decimal.Decimal           `json:"target_abv,omitempty"`
	TaxRate       *decimal.Decimal           `json:"tax_rate,omitempty"`
	DefaultFormat string                     `json:"default_format"`
	UnitPrices    map[string]decimal.Decimal `json:"unit_prices"`
	Ingredients   []RecipeIngredientRequest  `json:"ingredients" validate:"dive"`
}

// CreateItemRequest body para POST /api/items.
type CreateItemRequest struct {
	SKU          string          `json:"sku" validate:"required"`
	Name         string          `json:"name" validate:"required"`
	Category     string          `json:"category" validate:"omitempty,oneof=malt hops yeast adjunct packaging other"`
	Unit         string          `json:"unit" validate:"required"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	ReorderPoint decimal.Decimal `json:"reorder_point"`
	ReorderQty   decimal.Decimal `json:"reorder_qty"`
	SupplierID   *string         `json:"supplier_id,omitempty" validate:"omitempty,uuid4"`
}

// UpdateItemRequest body para PUT /api/items/:id. Campos nil no se tocan.
type UpdateItemRequest struct {
	Name         *string          `json:"name,omitempty"`
	Category     *string          `json:"category,omitempty" validate:"omitempty,oneof=malt hops yeast adjunct packaging other"`
	ReorderPoint *decimal.Decimal `json:"reorder_point,omitempty"`
	ReorderQty   *decimal.Decimal `json:"reorder_qty,omitempty"`
	SupplierID   *string          `json:"supplier_id,omitempty"`
}

// CreateVesselRequest body para POST /api/vessels.
type CreateVesselRequest struct {
	Name     string          `json:"name" validate:"required"`
	Type     string          `json:"type" validate:"omitempty,oneof=fermenter conditioning brite"`
	Capacity decimal.Decimal `json:"capacity" validate:"required"`
}

// CustomerRequest body para crear o actualizar un cliente.
type CustomerRequest struct {
	Name    string `json:"name" validate:"required"`
	TaxID   string `json:"tax_id"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// SupplierRequest body para crear o actualizar un proveedor.
type SupplierRequest struct {
	Name         string `json:"name" validate:"required"`
	TaxID        string `json:"tax_id"`
	Email        string `json:"email" validate:"omitempty,email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	LeadTimeDays int    `json:"lead_time_days" validate:"omitempty,min=0"`
}
