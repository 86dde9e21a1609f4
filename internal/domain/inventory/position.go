// Package inventory contiene la matemática pura del libro de cantidades:
// posición por ítem de materia prima y por producto terminado. Solo cómputo de
// lectura, sin mutación ni dependencias de infraestructura.
package inventory

import "github.com/shopspring/decimal"

// Position posición de inventario de un ítem de materia prima.
//
//	OnHand    = Σ on-hand de lotes no vencidos con cantidad > 0
//	Allocated = requerimientos de receta de lotes de producción en planned/brewing
//	            menos lo ya consumido por esos lotes
//	Available = OnHand - Allocated (puede ser negativo: sobre-compromiso, se
//	            muestra, no se oculta)
//	Projected = Available + Incoming - FuturePlanned
type Position struct {
	ItemID    string
	OnHand    decimal.Decimal
	Allocated decimal.Decimal
	Available decimal.Decimal
	Projected decimal.Decimal
}

// ComputePosition arma la posición a partir de los agregados ya consultados.
// incoming es la cantidad pendiente en renglones de órdenes de compra abiertas;
// futurePlanned es consumo planeado más allá de lo ya asignado (hoy siempre cero:
// allocated cubre todo el consumo no iniciado, ver ledger de decisiones).
func ComputePosition(itemID string, onHand, allocated, incoming, futurePlanned decimal.Decimal) Position {
	available := onHand.Sub(allocated)
	return Position{
		ItemID:    itemID,
		OnHand:    onHand,
		Allocated: allocated,
		Available: available,
		Projected: available.Add(incoming).Sub(futurePlanned),
	}
}

// FinishedPosition posición de producto terminado por (receta, formato).
// Reserved proviene de renglones de pedido con asignación cuyo pedido aún
// retiene reservas. Available puede ser negativo (sobre-asignación).
type FinishedPosition struct {
	RecipeID  string
	Format    string
	OnHand    decimal.Decimal
	Reserved  decimal.Decimal
	Available decimal.Decimal
}

// ComputeFinishedPosition arma la posición de producto terminado.
func ComputeFinishedPosition(recipeID, format string, onHand, reserved decimal.Decimal) FinishedPosition {
	return FinishedPosition{
		RecipeID:  recipeID,
		Format:    format,
		OnHand:    onHand,
		Reserved:  reserved,
		Available: onHand.Sub(reserved),
	}
}

// WeightedCost costo promedio ponderado tras una entrada:
// ((onHand * costoActual) + (qtyEntrada * costoEntrada)) / (onHand + qtyEntrada).
// Se usa para mantener el costo de referencia del ítem al recibir lotes.
func WeightedCost(onHand, currentCost, inQty, inCost decimal.Decimal) decimal.Decimal {
	sum := onHand.Add(inQty)
	if sum.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	num := onHand.Mul(currentCost).Add(inQty.Mul(inCost))
	return num.Div(sum)
}
