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

func newPOUC(store *apptest.Store) *applifecycle.PurchaseOrderTransitionUseCase {
	return applifecycle.NewPurchaseOrderTransitionUseCase(&apptest.TxRunner{Store: store}, apptest.Logger())
}

func seedPO(store *apptest.Store, status entity.PurchaseOrderStatus, received decimal.Decimal) {
	store.POs["po-1"] = &entity.PurchaseOrder{
		ID:         "po-1",
		Number:     "PO-2026-0001",
		SupplierID: "supplier-1",
		Status:     status,
		Lines: []entity.PurchaseOrderLine{{
			ID:              "pol-1",
			PurchaseOrderID: "po-1",
			ItemID:          "item-1",
			OrderedQty:      decimal.NewFromInt(100),
			ReceivedQty:     received,
			UnitCost:        decimal.NewFromInt(8),
		}},
	}
}

func TestPOUserCannotRequestPartiallyReceived(t *testing.T) {
	store := apptest.NewStore()
	uc := newPOUC(store)
	// Aun desde sent, donde el reconciliador sí puede recorrer ese borde.
	seedPO(store, entity.POSent, decimal.Zero)

	_, err := uc.Transition(context.Background(), "po-1", entity.POPartiallyReceived)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Equal(t, entity.POSent, store.POs["po-1"].Status)
}

func TestPOReceivedRequiresFullLines(t *testing.T) {
	store := apptest.NewStore()
	uc := newPOUC(store)
	seedPO(store, entity.POPartiallyReceived, decimal.NewFromInt(40))

	_, err := uc.Transition(context.Background(), "po-1", entity.POReceived)
	assert.ErrorIs(t, err, domain.ErrPreconditionFailed, "faltan 60 por recibir")
}

func TestPOReceivedWithFullLines(t *testing.T) {
	store := apptest.NewStore()
	uc := newPOUC(store)
	seedPO(store, entity.POPartiallyReceived, decimal.NewFromInt(100))

	got, err := uc.Transition(context.Background(), "po-1", entity.POReceived)
	require.NoError(t, err)
	assert.Equal(t, entity.POReceived, got.Status)
}

func TestPOCancelWithPartialReceipts(t *testing.T) {
	store := apptest.NewStore()
	uc := newPOUC(store)
	seedPO(store, entity.POPartiallyReceived, decimal.NewFromInt(40))

	got, err := uc.Transition(context.Background(), "po-1", entity.POCancelled)
	require.NoError(t, err)
	assert.Equal(t, entity.POCancelled, got.Status)
}

func TestPOTransitionIdempotent(t *testing.T) {
	store := apptest.NewStore()
	uc := newPOUC(store)
	seedPO(store, entity.POSent, decimal.Zero)

	got, err := uc.Transition(context.Background(), "po-1", entity.POSent)
	require.NoError(t, err)
	assert.Equal(t, entity.POSent, got.Status)
}

func TestPOTransitionNotFound(t *testing.T) {
	store := apptest.NewStore()
	uc := newPOUC(store)

	_, err := uc.Transition(context.Background(), "po-nope", entity.POSent)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
