// Package lifecycle define las tablas de política de transición de estados para
// Batch, Order y PurchaseOrder. Son datos inmutables a nivel de proceso: se cargan
// una vez y no mutan en runtime, así que no requieren sincronización.
//
// Ninguna transición es implícita: un estado ausente del mapa es terminal
// (cero transiciones salientes). El motor de transiciones consulta estas tablas
// y aplica las precondiciones; aquí no hay comportamiento.
package lifecycle

import "github.com/jhoicas/Cerveceria-api/internal/domain/entity"

// batchPolicy: estado actual -> estados alcanzables en una transición.
// fermenting -> ready_to_package es el atajo explícito para recetas sin
// fase de maduración.
var batchPolicy = map[entity.BatchStatus][]entity.BatchStatus{
	entity.BatchPlanned:        {entity.BatchBrewing, entity.BatchCancelled},
	entity.BatchBrewing:        {entity.BatchFermenting, entity.BatchDumped, entity.BatchCancelled},
	entity.BatchFermenting:     {entity.BatchConditioning, entity.BatchReadyToPackage, entity.BatchDumped},
	entity.BatchConditioning:   {entity.BatchReadyToPackage, entity.BatchDumped},
	entity.BatchReadyToPackage: {entity.BatchPackaged, entity.BatchDumped},
	entity.BatchPackaged:       {entity.BatchCompleted},
}

var orderPolicy = map[entity.OrderStatus][]entity.OrderStatus{
	entity.OrderDraft:      {entity.OrderConfirmed, entity.OrderCancelled},
	entity.OrderConfirmed:  {entity.OrderPicking, entity.OrderCancelled},
	entity.OrderPicking:    {entity.OrderDispatched, entity.OrderCancelled},
	entity.OrderDispatched: {entity.OrderDelivered},
	entity.OrderDelivered:  {entity.OrderInvoiced},
	entity.OrderInvoiced:   {entity.OrderPaid},
}

// poPolicy incluye partially_received como destino válido, pero ese borde solo lo
// recorre el reconciliador de recepciones; se excluye de los destinos de usuario
// (ver UserPurchaseOrderTargets).
var poPolicy = map[entity.PurchaseOrderStatus][]entity.PurchaseOrderStatus{
	entity.PODraft:             {entity.POSent, entity.POCancelled},
	entity.POSent:              {entity.POAcknowledged, entity.POPartiallyReceived, entity.POReceived, entity.POCancelled},
	entity.POAcknowledged:      {entity.POPartiallyReceived, entity.POReceived, entity.POCancelled},
	entity.POPartiallyReceived: {entity.POReceived, entity.POCancelled},
}

func targets[S comparable](policy map[S][]S, from S) []S {
	allowed := policy[from]
	out := make([]S, len(allowed))
	copy(out, allowed)
	return out
}

func canTransition[S comparable](policy map[S][]S, from, to S) bool {
	for _, s := range policy[from] {
		if s == to {
			return true
		}
	}
	return false
}

// BatchTargets devuelve los estados alcanzables desde el estado dado de un lote.
func BatchTargets(from entity.BatchStatus) []entity.BatchStatus {
	return targets(batchPolicy, from)
}

// CanBatchTransition indica si la política permite from -> to para lotes.
func CanBatchTransition(from, to entity.BatchStatus) bool {
	return canTransition(batchPolicy, from, to)
}

// OrderTargets devuelve los estados alcanzables desde el estado dado de un pedido.
func OrderTargets(from entity.OrderStatus) []entity.OrderStatus {
	return targets(orderPolicy, from)
}

// CanOrderTransition indica si la política permite from -> to para pedidos.
func CanOrderTransition(from, to entity.OrderStatus) bool {
	return canTransition(orderPolicy, from, to)
}

// PurchaseOrderTargets devuelve los estados alcanzables desde el estado dado de una
// orden de compra, incluyendo el borde interno partially_received.
func PurchaseOrderTargets(from entity.PurchaseOrderStatus) []entity.PurchaseOrderStatus {
	return targets(poPolicy, from)
}

// CanPurchaseOrderTransition indica si la política permite from -> to para órdenes de compra.
func CanPurchaseOrderTransition(from, to entity.PurchaseOrderStatus) bool {
	return canTransition(poPolicy, from, to)
}

// UserPurchaseOrderTargets devuelve los destinos que un usuario puede solicitar
// directamente: excluye partially_received, alcanzable solo vía reconciliador.
func UserPurchaseOrderTargets(from entity.PurchaseOrderStatus) []entity.PurchaseOrderStatus {
	all := targets(poPolicy, from)
	out := all[:0]
	for _, s := range all {
		if s != entity.POPartiallyReceived {
			out = append(out, s)
		}
	}
	return out
}

// BatchTerminal indica si el estado de lote no tiene transiciones salientes.
func BatchTerminal(s entity.BatchStatus) bool { return len(batchPolicy[s]) == 0 }

// OrderTerminal indica si el estado de pedido no tiene transiciones salientes.
func OrderTerminal(s entity.OrderStatus) bool { return len(orderPolicy[s]) == 0 }

// PurchaseOrderTerminal indica si el estado de orden de compra no tiene transiciones salientes.
func PurchaseOrderTerminal(s entity.PurchaseOrderStatus) bool { return len(poPolicy[s]) == 0 }
