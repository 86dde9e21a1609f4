package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UpcomingOrderDTO pedido abierto con demanda pendiente.
type UpcomingOrderDTO struct {
	OrderID      string     `json:"order_id"`
	Number       string     `json:"number"`
	Status       string     `json:"status"`
	CustomerName string     `json:"customer_name"`
	DeliveryDate *time.Time `json:"delivery_date,omitempty"`
}

// DemandGroupDTO demanda agregada por receta + formato contra disponibilidad
// de producto terminado.
type DemandGroupDTO struct {
	RecipeID   string          `json:"recipe_id"`
	RecipeName string          `json:"recipe_name"`
	Format     string          `json:"format"`
	Demand     decimal.Decimal `json:"demand"`
	Available  decimal.Decimal `json:"available"`
	Shortfall  decimal.Decimal `json:"shortfall"`
	Orders     int             `json:"orders"`
}

// DemandViewDTO vista de planeación: pedidos abiertos y demanda por producto.
type DemandViewDTO struct {
	UpcomingOrders  []UpcomingOrderDTO `json:"upcoming_orders"`
	DemandByProduct []DemandGroupDTO   `json:"demand_by_product"`
	Unfulfillable   []DemandGroupDTO   `json:"unfulfillable"`
}
