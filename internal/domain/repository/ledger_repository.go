package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cerveceria-api/internal/domain/entity"
)

// ItemAggregate agregados por ítem para el libro de cantidades. Cada término se
// calcula contra el libro al instante de la lectura, sin caché entre escrituras.
type ItemAggregate struct {
	ItemID    string
	SKU       string
	Name      string
	Unit      string
	OnHand    decimal.Decimal // Σ lotes no vencidos con cantidad > 0
	Allocated decimal.Decimal // requerimientos de lotes planned/brewing menos su consumo
	Incoming  decimal.Decimal // Σ (ordered - received) de OC abiertas
}

// FinishedAggregate agregados de producto terminado por (receta, formato).
type FinishedAggregate struct {
	RecipeID   string
	RecipeName string
	Format     entity.PackFormat
	OnHand     decimal.Decimal
	Reserved   decimal.Decimal // renglones asignados de pedidos que retienen reserva
}

// DemandRow demanda comprometida de un renglón de pedido no cumplido.
type DemandRow struct {
	OrderID      string
	OrderNumber  string
	OrderStatus  entity.OrderStatus
	CustomerName string
	DeliveryDate *time.Time
	RecipeID     string
	RecipeName   string
	Format       entity.PackFormat
	Quantity     decimal.Decimal
}

// LedgerRepository consultas de solo lectura del libro de cantidades.
// Alimenta el libro de posiciones y el agregador de demanda.
type LedgerRepository interface {
	ItemAggregates(ctx context.Context, itemID string) ([]ItemAggregate, error)
	FinishedAggregates(ctx context.Context, recipeID string) ([]FinishedAggregate, error)
	// OpenDemand renglones de pedidos en confirmed/picking/dispatched con fecha de
	// entrega futura o sin fecha, a la fecha de corte dada.
	OpenDemand(ctx context.Context, asOf time.Time) ([]DemandRow, error)
}
