package lifecycle_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Cerveceria-api/internal/application/apptest"
	applifecycle "github.com/jhoicas/Cerveceria-api/internal/application/lifecycle"
	"github.com/jhoicas/Cerveceria-api/internal/domain"
	"github.com/jhoicas/Cerveceria-api/internal/domain/entity"
)

func newOrderUC(store *apptest.Store) *applifecycle.OrderTransitionUseCase {
	return applifecycle.NewOrderTransitionUseCase(&apptest.TxRunner{Store: store}, apptest.Logger())
}

// seedPickedOrder pedido en alistamiento con un renglón asignado a una
// existencia de producto terminado con su reserva tomada.
func seedPickedOrder(store *apptest.Store) {
	fgID := "fg-1"
	store.Finished[fgID] = &entity.FinishedGoods{
		ID:               fgID,
		BatchID:          "batch-1",
		RecipeID:         "recipe-1",
		Format:           entity.FormatBottle330,
		QuantityOnHand:   decimal.NewFromInt(200),
		QuantityReserved: decimal.NewFromInt(48),
	}
	store.Orders["order-1"] = &entity.Order{
		ID:     "order-1",
		Number: "SO-2026-0001",
		Status: entity.OrderPicking,
		Lines: []entity.OrderLine{{
			ID:              "line-1",
			OrderID:         "order-1",
			RecipeID:        "recipe-1",
			Format:          entity.FormatBottle330,
			Quantity:        decimal.NewFromInt(48),
			FinishedGoodsID: &fgID,
		}},
	}
}

func TestOrderCancelReleasesReservations(t *testing.T) {
	store := apptest.NewStore()
	uc := newOrderUC(store)
	seedPickedOrder(store)

	got, err := uc.Transition(context.Background(), "order-1", entity.OrderCancelled)
	require.NoError(t, err)

	assert.Equal(t, entity.OrderCancelled, got.Status)
	fg := store.Finished["fg-1"]
	assert.True(t, fg.QuantityReserved.IsZero(), "la reserva se libera al cancelar, quedó %s", fg.QuantityReserved)
	assert.True(t, fg.QuantityOnHand.Equal(decimal.NewFromInt(200)), "cancelar no toca el on-hand")
	assert.Nil(t, store.Orders["order-1"].Lines[0].FinishedGoodsID)
}

func TestOrderDispatchShipsStock(t *testing.T) {
	store := apptest.NewStore()
	uc := newOrderUC(store)
	seedPickedOrder(store)

	got, err := uc.Transition(context.Background(), "order-1", entity.OrderDispatched)
	require.NoError(t, err)

	assert.NotNil(t, got.DispatchedAt)
	fg := store.Finished["fg-1"]
	assert.True(t, fg.QuantityOnHand.Equal(decimal.NewFromInt(152)), "despachar descuenta on-hand")
	assert.True(t, fg.QuantityReserved.IsZero(), "despachar consume la reserva")
}

func TestOrderDispatchRequiresPickedLines(t *testing.T) {
	store := apptest.NewStore()
	uc := newOrderUC(store)
	store.Orders["order-1"] = &entity.Order{
		ID:     "order-1",
		Status: entity.OrderPicking,
		Lines: []entity.OrderLine{{
			ID:       "line-1",
			OrderID:  "order-1",
			RecipeID: "recipe-1",
			Format:   entity.FormatBottle330,
			Quantity: decimal.NewFromInt(10),
		}},
	}

	_, err := uc.Transition(context.Background(), "order-1", entity.OrderDispatched)
	assert.ErrorIs(t, err, domain.ErrPreconditionFailed, "un renglón sin alistar bloquea el despacho")
}

func TestOrderInvalidTransition(t *testing.T) {
	store := apptest.NewStore()
	uc := newOrderUC(store)
	store.Orders["order-1"] = &entity.Order{ID: "order-1", Status: entity.OrderDraft}

	_, err := uc.Transition(context.Background(), "order-1", entity.OrderDelivered)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestOrderTransitionIdempotent(t *testing.T) {
	store := apptest.NewStore()
	uc := newOrderUC(store)
	seedPickedOrder(store)

	got, err := uc.Transition(context.Background(), "order-1", entity.OrderPicking)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderPicking, got.Status)
	assert.True(t, store.Finished["fg-1"].QuantityReserved.Equal(decimal.NewFromInt(48)),
		"el no-op no toca reservas")
}

func TestOrderPaidStampsDate(t *testing.T) {
	store := apptest.NewStore()
	uc := newOrderUC(store)
	store.Orders["order-1"] = &entity.Order{ID: "order-1", Status: entity.OrderInvoiced}

	got, err := uc.Transition(context.Background(), "order-1", entity.OrderPaid)
	require.NoError(t, err)
	assert.NotNil(t, got.PaidAt)
}
