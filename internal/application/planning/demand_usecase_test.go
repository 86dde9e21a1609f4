package planning_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Cerveceria-api/internal/application/planning"
	"github.com/jhoicas/Cerveceria-api/internal/domain/entity"
	"github.com/jhoicas/Cerveceria-api/internal/domain/repository"
)

// ledgerStub libro de cantidades precalculado para el agregador.
type ledgerStub struct {
	demand   []repository.DemandRow
	finished []repository.FinishedAggregate
}

func (s *ledgerStub) ItemAggregates(_ context.Context, _ string) ([]repository.ItemAggregate, error) {
	return nil, nil
}

func (s *ledgerStub) FinishedAggregates(_ context.Context, _ string) ([]repository.FinishedAggregate, error) {
	return s.finished, nil
}

func (s *ledgerStub) OpenDemand(_ context.Context, _ time.Time) ([]repository.DemandRow, error) {
	return s.demand, nil
}

func TestDemandViewGroupsByRecipeAndFormat(t *testing.T) {
	d1 := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
	stub := &ledgerStub{
		demand: []repository.DemandRow{
			{
				OrderID: "order-1", OrderNumber: "SO-2026-0001", OrderStatus: entity.OrderConfirmed,
				CustomerName: "Bar La Octava", DeliveryDate: &d1,
				RecipeID: "recipe-ipa", RecipeName: "IPA Insignia", Format: entity.FormatBottle330,
				Quantity: decimal.NewFromInt(120),
			},
			{
				OrderID: "order-2", OrderNumber: "SO-2026-0002", OrderStatus: entity.OrderPicking,
				CustomerName: "Distribuidora Norte", DeliveryDate: &d2,
				RecipeID: "recipe-ipa", RecipeName: "IPA Insignia", Format: entity.FormatBottle330,
				Quantity: decimal.NewFromInt(80),
			},
			{
				OrderID: "order-2", OrderNumber: "SO-2026-0002", OrderStatus: entity.OrderPicking,
				CustomerName: "Distribuidora Norte", DeliveryDate: &d2,
				RecipeID: "recipe-stout", RecipeName: "Stout Abadía", Format: entity.FormatKeg50,
				Quantity: decimal.NewFromInt(6),
			},
		},
		finished: []repository.FinishedAggregate{
			{RecipeID: "recipe-ipa", RecipeName: "IPA Insignia", Format: entity.FormatBottle330,
				OnHand: decimal.NewFromInt(300), Reserved: decimal.NewFromInt(50)},
			{RecipeID: "recipe-stout", RecipeName: "Stout Abadía", Format: entity.FormatKeg50,
				OnHand: decimal.NewFromInt(4), Reserved: decimal.Zero},
		},
	}
	uc := planning.NewDemandUseCase(stub)

	view, err := uc.DemandView(context.Background())
	require.NoError(t, err)

	// Dos grupos, ordenados por nombre de receta.
	require.Len(t, view.DemandByProduct, 2)
	ipa := view.DemandByProduct[0]
	assert.Equal(t, "IPA Insignia", ipa.RecipeName)
	assert.True(t, ipa.Demand.Equal(decimal.NewFromInt(200)), "120 + 80 agrupados")
	assert.Equal(t, 2, ipa.Orders)
	// Disponible = 300 on-hand - 50 reservado.
	assert.True(t, ipa.Available.Equal(decimal.NewFromInt(250)))
	assert.True(t, ipa.Shortfall.Equal(decimal.NewFromInt(-50)), "holgura en negativo")

	stout := view.DemandByProduct[1]
	assert.True(t, stout.Demand.Equal(decimal.NewFromInt(6)))
	assert.True(t, stout.Available.Equal(decimal.NewFromInt(4)))

	// Solo la stout queda sin cubrir.
	require.Len(t, view.Unfulfillable, 1)
	assert.Equal(t, "recipe-stout", view.Unfulfillable[0].RecipeID)
	assert.True(t, view.Unfulfillable[0].Shortfall.Equal(decimal.NewFromInt(2)))

	// Cada pedido aparece una sola vez, ordenado por fecha de entrega.
	require.Len(t, view.UpcomingOrders, 2)
	assert.Equal(t, "SO-2026-0001", view.UpcomingOrders[0].Number)
	assert.Equal(t, "SO-2026-0002", view.UpcomingOrders[1].Number)
}

func TestDemandViewCountsDistinctOrdersPerGroup(t *testing.T) {
	// Dos renglones del mismo pedido sobre el mismo (receta, formato): la
	// demanda se suma pero el pedido cuenta una sola vez.
	stub := &ledgerStub{
		demand: []repository.DemandRow{
			{
				OrderID: "order-1", OrderNumber: "SO-2026-0001", OrderStatus: entity.OrderConfirmed,
				RecipeID: "recipe-ipa", RecipeName: "IPA Insignia", Format: entity.FormatBottle330,
				Quantity: decimal.NewFromInt(30),
			},
			{
				OrderID: "order-1", OrderNumber: "SO-2026-0001", OrderStatus: entity.OrderConfirmed,
				RecipeID: "recipe-ipa", RecipeName: "IPA Insignia", Format: entity.FormatBottle330,
				Quantity: decimal.NewFromInt(20),
			},
		},
	}
	uc := planning.NewDemandUseCase(stub)

	view, err := uc.DemandView(context.Background())
	require.NoError(t, err)

	require.Len(t, view.DemandByProduct, 1)
	g := view.DemandByProduct[0]
	assert.True(t, g.Demand.Equal(decimal.NewFromInt(50)))
	assert.Equal(t, 1, g.Orders, "el mismo pedido no se cuenta por renglón")
	require.Len(t, view.UpcomingOrders, 1)
}

func TestDemandViewWithoutStock(t *testing.T) {
	stub := &ledgerStub{
		demand: []repository.DemandRow{{
			OrderID: "order-1", OrderNumber: "SO-2026-0001", OrderStatus: entity.OrderConfirmed,
			RecipeID: "recipe-ipa", RecipeName: "IPA Insignia", Format: entity.FormatBottle330,
			Quantity: decimal.NewFromInt(50),
		}},
	}
	uc := planning.NewDemandUseCase(stub)

	view, err := uc.DemandView(context.Background())
	require.NoError(t, err)
	require.Len(t, view.Unfulfillable, 1)
	assert.True(t, view.Unfulfillable[0].Available.IsZero())
	assert.True(t, view.Unfulfillable[0].Shortfall.Equal(decimal.NewFromInt(50)))
}

func TestDemandViewEmpty(t *testing.T) {
	uc := planning.NewDemandUseCase(&ledgerStub{})

	view, err := uc.DemandView(context.Background())
	require.NoError(t, err)
	assert.Empty(t, view.UpcomingOrders)
	assert.Empty(t, view.DemandByProduct)
	assert.Empty(t, view.Unfulfillable)
}
