package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseOrderStatus estado del ciclo de vida de una orden de compra.
type PurchaseOrderStatus string

const (
	PODraft             PurchaseOrderStatus = "draft"
	POSent              PurchaseOrderStatus = "sent"
	POAcknowledged      PurchaseOrderStatus = "acknowledged"
	POPartiallyReceived PurchaseOrderStatus = "partially_received"
	POReceived          PurchaseOrderStatus = "received"
	POCancelled         PurchaseOrderStatus = "cancelled"
)

// ParsePurchaseOrderStatus valida un estado de orden de compra recibido del borde.
func ParsePurchaseOrderStatus(s string) (PurchaseOrderStatus, error) {
	switch PurchaseOrderStatus(s) {
	case PODraft, POSent, POAcknowledged, POPartiallyReceived, POReceived, POCancelled:
		return PurchaseOrderStatus(s), nil
	}
	return "", fmt.Errorf("estado de orden de compra desconocido: %q", s)
}

// Receivable indica si la orden admite recepciones de mercancía.
func (s PurchaseOrderStatus) Receivable() bool {
	switch s {
	case POSent, POAcknowledged, POPartiallyReceived:
		return true
	}
	return false
}

// PurchaseOrder orden de compra a un proveedor. Status es función pura del estado
// de recepción de sus renglones una vez enviada (ver DeriveReceiptStatus).
type PurchaseOrder struct {
	ID           string
	Number       string
	SupplierID   string
	Status       PurchaseOrderStatus
	OrderDate    time.Time
	ExpectedDate *time.Time
	Subtotal     decimal.Decimal
	Tax          decimal.Decimal
	Total        decimal.Decimal
	Notes        string
	Lines        []PurchaseOrderLine
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PurchaseOrderLine renglón de orden de compra.
// Invariante (también en DB): 0 <= ReceivedQty <= OrderedQty.
type PurchaseOrderLine struct {
	ID          string
	PurchaseOrderID string
	ItemID      string
	OrderedQty  decimal.Decimal
	ReceivedQty decimal.Decimal
	UnitCost    decimal.Decimal
	TaxRate     decimal.Decimal
	LineTotal   decimal.Decimal
}

// FullyReceived indica si el renglón está completamente recibido.
func (l PurchaseOrderLine) FullyReceived() bool {
	return l.ReceivedQty.GreaterThanOrEqual(l.OrderedQty)
}

// OutstandingQty cantidad pendiente por recibir del renglón.
func (l PurchaseOrderLine) OutstandingQty() decimal.Decimal {
	out := l.OrderedQty.Sub(l.ReceivedQty)
	if out.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return out
}

// RecalcTotals recalcula las proyecciones Subtotal/Tax/Total a partir de los renglones.
func (po *PurchaseOrder) RecalcTotals() {
	subtotal := decimal.Zero
	tax := decimal.Zero
	for i := range po.Lines {
		line := &po.Lines[i]
		line.LineTotal = line.OrderedQty.Mul(line.UnitCost)
		subtotal = subtotal.Add(line.LineTotal)
		tax = tax.Add(line.LineTotal.Mul(line.TaxRate))
	}
	po.Subtotal = subtotal
	po.Tax = tax.Round(2)
	po.Total = subtotal.Add(po.Tax)
}

// DeriveReceiptStatus deriva el estado agregado de recepción desde los renglones.
// Se recalcula completo en cada recepción para no arrastrar un flag desincronizado:
//   - todos los renglones completos  -> received
//   - alguna recepción parcial       -> partially_received
//   - sin recepciones                -> el estado actual se conserva (ok=false)
func (po *PurchaseOrder) DeriveReceiptStatus() (PurchaseOrderStatus, bool) {
	if len(po.Lines) == 0 {
		return po.Status, false
	}
	all := true
	any := false
	for _, l := range po.Lines {
		if !l.FullyReceived() {
			all = false
		}
		if l.ReceivedQty.GreaterThan(decimal.Zero) {
			any = true
		}
	}
	switch {
	case all:
		return POReceived, true
	case any:
		return POPartiallyReceived, true
	default:
		return po.Status, false
	}
}
