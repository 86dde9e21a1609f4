package orders_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Cerveceria-api/internal/application/apptest"
	apporders "github.com/jhoicas/Cerveceria-api/internal/application/orders"
	"github.com/jhoicas/Cerveceria-api/internal/domain"
	"github.com/jhoicas/Cerveceria-api/internal/domain/entity"
)

func newOrderUC(store *apptest.Store) *apporders.OrderUseCase {
	repos := store.Repos()
	return apporders.NewOrderUseCase(
		&apptest.TxRunner{Store: store},
		repos.Orders,
		nil, // el alistamiento no toca clientes
		repos.Recipes,
		apporders.Config{NumberPrefix: "SO", DefaultTax: decimal.NewFromFloat(0.19)},
	)
}

func seedPickingScenario(store *apptest.Store) {
	store.Finished["fg-1"] = &entity.FinishedGoods{
		ID:             "fg-1",
		BatchID:        "batch-1",
		RecipeID:       "recipe-ipa",
		Format:         entity.FormatBottle330,
		QuantityOnHand: decimal.NewFromInt(100),
	}
	store.Finished["fg-2"] = &entity.FinishedGoods{
		ID:             "fg-2",
		BatchID:        "batch-2",
		RecipeID:       "recipe-ipa",
		Format:         entity.FormatBottle330,
		QuantityOnHand: decimal.NewFromInt(100),
	}
	store.Orders["order-1"] = &entity.Order{
		ID:     "order-1",
		Number: "SO-2026-0001",
		Status: entity.OrderPicking,
		Lines: []entity.OrderLine{{
			ID:       "line-1",
			OrderID:  "order-1",
			RecipeID: "recipe-ipa",
			Format:   entity.FormatBottle330,
			Quantity: decimal.NewFromInt(60),
		}},
	}
}

func TestPickLineReservesStock(t *testing.T) {
	store := apptest.NewStore()
	uc := newOrderUC(store)
	seedPickingScenario(store)

	line, err := uc.PickLine(context.Background(), "order-1", "line-1", "fg-1")
	require.NoError(t, err)

	require.NotNil(t, line.FinishedGoodsID)
	assert.Equal(t, "fg-1", *line.FinishedGoodsID)
	assert.True(t, store.Finished["fg-1"].QuantityReserved.Equal(decimal.NewFromInt(60)))
	assert.Equal(t, "fg-1", *store.Orders["order-1"].Lines[0].FinishedGoodsID)
}

func TestPickLineReassignmentReleasesPrevious(t *testing.T) {
	store := apptest.NewStore()
	uc := newOrderUC(store)
	seedPickingScenario(store)

	_, err := uc.PickLine(context.Background(), "order-1", "line-1", "fg-1")
	require.NoError(t, err)
	_, err = uc.PickLine(context.Background(), "order-1", "line-1", "fg-2")
	require.NoError(t, err)

	assert.True(t, store.Finished["fg-1"].QuantityReserved.IsZero(),
		"la reserva anterior se libera al reasignar")
	assert.True(t, store.Finished["fg-2"].QuantityReserved.Equal(decimal.NewFromInt(60)))
}

func TestPickLineIdempotentOnSameAssignment(t *testing.T) {
	store := apptest.NewStore()
	uc := newOrderUC(store)
	seedPickingScenario(store)

	_, err := uc.PickLine(context.Background(), "order-1", "line-1", "fg-1")
	require.NoError(t, err)
	_, err = uc.PickLine(context.Background(), "order-1", "line-1", "fg-1")
	require.NoError(t, err)

	assert.True(t, store.Finished["fg-1"].QuantityReserved.Equal(decimal.NewFromInt(60)),
		"repetir la misma asignación no duplica la reserva")
}

func TestPickLineInsufficientAvailability(t *testing.T) {
	store := apptest.NewStore()
	uc := newOrderUC(store)
	seedPickingScenario(store)
	store.Finished["fg-1"].QuantityReserved = decimal.NewFromInt(50)

	// Disponible 100-50=50 < 60 pedidos.
	_, err := uc.PickLine(context.Background(), "order-1", "line-1", "fg-1")
	assert.ErrorIs(t, err, domain.ErrPreconditionFailed)
}

func TestPickLineFormatMismatch(t *testing.T) {
	store := apptest.NewStore()
	uc := newOrderUC(store)
	seedPickingScenario(store)
	store.Finished["fg-1"].Format = entity.FormatKeg50

	_, err := uc.PickLine(context.Background(), "order-1", "line-1", "fg-1")
	assert.ErrorIs(t, err, domain.ErrPreconditionFailed)
}

func TestPickLineRequiresPickingStatus(t *testing.T) {
	store := apptest.NewStore()
	uc := newOrderUC(store)
	seedPickingScenario(store)
	store.Orders["order-1"].Status = entity.OrderConfirmed

	_, err := uc.PickLine(context.Background(), "order-1", "line-1", "fg-1")
	assert.ErrorIs(t, err, domain.ErrPreconditionFailed)
}
