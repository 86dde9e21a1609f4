package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus estado del ciclo de vida de un pedido de cliente.
type OrderStatus string

const (
	OrderDraft      OrderStatus = "draft"
	OrderConfirmed  OrderStatus = "confirmed"
	OrderPicking    OrderStatus = "picking"
	OrderDispatched OrderStatus = "dispatched"
	OrderDelivered  OrderStatus = "delivered"
	OrderInvoiced   OrderStatus = "invoiced"
	OrderPaid       OrderStatus = "paid"
	OrderCancelled  OrderStatus = "cancelled"
)

// ParseOrderStatus valida un estado de pedido recibido del borde.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case OrderDraft, OrderConfirmed, OrderPicking, OrderDispatched,
		OrderDelivered, OrderInvoiced, OrderPaid, OrderCancelled:
		return OrderStatus(s), nil
	}
	return "", fmt.Errorf("estado de pedido desconocido: %q", s)
}

// HoldsReservations indica si los renglones del pedido aún retienen reservas
// de producto terminado. Tras despachar/entregar la mercancía ya salió;
// tras cancelar las reservas se liberan.
func (s OrderStatus) HoldsReservations() bool {
	switch s {
	case OrderConfirmed, OrderPicking:
		return true
	}
	return false
}

// Order representa un pedido de cliente. Subtotal/Tax/Total son proyecciones
// derivadas de los renglones: se recalculan transaccionalmente en cada cambio
// de renglón, nunca se editan de forma independiente.
type Order struct {
	ID           string
	Number       string
	CustomerID   string
	Status       OrderStatus
	OrderDate    time.Time
	DeliveryDate *time.Time
	DispatchedAt *time.Time
	DeliveredAt  *time.Time
	PaidAt       *time.Time
	Subtotal     decimal.Decimal
	Tax          decimal.Decimal
	Total        decimal.Decimal
	Notes        string
	Lines        []OrderLine
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OrderLine renglón de pedido: cantidad de unidades de una receta en un formato.
// FinishedGoodsID se asigna durante el alistamiento (picking) y reserva stock.
type OrderLine struct {
	ID              string
	OrderID         string
	RecipeID        string
	Format          PackFormat
	Quantity        decimal.Decimal
	UnitPrice       decimal.Decimal
	TaxRate         decimal.Decimal
	LineTotal       decimal.Decimal // Quantity * UnitPrice, proyección derivada
	FinishedGoodsID *string
}

// RecalcTotals recalcula las proyecciones Subtotal/Tax/Total a partir de los renglones.
func (o *Order) RecalcTotals() {
	subtotal := decimal.Zero
	tax := decimal.Zero
	for i := range o.Lines {
		line := &o.Lines[i]
		line.LineTotal = line.Quantity.Mul(line.UnitPrice)
		subtotal = subtotal.Add(line.LineTotal)
		tax = tax.Add(line.LineTotal.Mul(line.TaxRate))
	}
	o.Subtotal = subtotal
	o.Tax = tax.Round(2)
	o.Total = subtotal.Add(o.Tax)
}
