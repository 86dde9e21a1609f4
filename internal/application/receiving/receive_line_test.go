package receiving_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Cerveceria-api/internal/application/apptest"
	"github.com/jhoicas/Cerveceria-api/internal/application/receiving"
	"github.com/jhoicas/Cerveceria-api/internal/domain"
	"github.com/jhoicas/Cerveceria-api/internal/domain/entity"
)

func newReceiveUC(store *apptest.Store) *receiving.ReceiveLineUseCase {
	return receiving.NewReceiveLineUseCase(&apptest.TxRunner{Store: store}, apptest.Logger())
}

// seedReceivablePO orden enviada con dos renglones de malta y lúpulo.
func seedReceivablePO(store *apptest.Store) {
	store.Items["item-malta"] = &entity.InventoryItem{
		ID:       "item-malta",
		SKU:      "MAL-PIL-25",
		Name:     "Malta Pilsen 25kg",
		UnitCost: decimal.NewFromInt(10),
	}
	store.Items["item-lupulo"] = &entity.InventoryItem{
		ID:       "item-lupulo",
		SKU:      "LUP-CAS-5",
		Name:     "Lúpulo Cascade 5kg",
		UnitCost: decimal.NewFromInt(40),
	}
	store.POs["po-1"] = &entity.PurchaseOrder{
		ID:         "po-1",
		Number:     "PO-2026-0001",
		SupplierID: "supplier-1",
		Status:     entity.POSent,
		Lines: []entity.PurchaseOrderLine{
			{
				ID:              "pol-malta",
				PurchaseOrderID: "po-1",
				ItemID:          "item-malta",
				OrderedQty:      decimal.NewFromInt(100),
				UnitCost:        decimal.NewFromInt(12),
			},
			{
				ID:              "pol-lupulo",
				PurchaseOrderID: "po-1",
				ItemID:          "item-lupulo",
				OrderedQty:      decimal.NewFromInt(20),
				UnitCost:        decimal.NewFromInt(45),
			},
		},
	}
}

func TestReceiveLinePartialThenFull(t *testing.T) {
	store := apptest.NewStore()
	uc := newReceiveUC(store)
	seedReceivablePO(store)

	// Primera recepción parcial: la orden pasa a partially_received.
	res, err := uc.ReceiveLine(context.Background(), receiving.ReceiveLineInput{
		LineID:    "pol-malta",
		Quantity:  decimal.NewFromInt(40),
		LotNumber: "L-2026-001",
		Location:  "bodega-a",
		UserID:    "user-1",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.POPartiallyReceived, res.PurchaseOrder.Status)
	assert.Equal(t, entity.POPartiallyReceived, store.POs["po-1"].Status)

	// Completar ambos renglones: la orden pasa a received.
	_, err = uc.ReceiveLine(context.Background(), receiving.ReceiveLineInput{
		LineID:    "pol-malta",
		Quantity:  decimal.NewFromInt(60),
		LotNumber: "L-2026-002",
		UserID:    "user-1",
	})
	require.NoError(t, err)

	res, err = uc.ReceiveLine(context.Background(), receiving.ReceiveLineInput{
		LineID:    "pol-lupulo",
		Quantity:  decimal.NewFromInt(20),
		LotNumber: "L-2026-003",
		UserID:    "user-1",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.POReceived, res.PurchaseOrder.Status)
	assert.Equal(t, entity.POReceived, store.POs["po-1"].Status)
}

func TestReceiveLineCreatesLotAndMovement(t *testing.T) {
	store := apptest.NewStore()
	uc := newReceiveUC(store)
	seedReceivablePO(store)

	res, err := uc.ReceiveLine(context.Background(), receiving.ReceiveLineInput{
		LineID:    "pol-malta",
		Quantity:  decimal.NewFromInt(40),
		LotNumber: "L-2026-001",
		Location:  "bodega-a",
		Notes:     "pallet 3",
		UserID:    "user-1",
	})
	require.NoError(t, err)

	lot := store.Lots[res.Lot.ID]
	require.NotNil(t, lot)
	assert.Equal(t, "item-malta", lot.ItemID)
	assert.Equal(t, "L-2026-001", lot.LotNumber)
	assert.True(t, lot.QuantityOnHand.Equal(decimal.NewFromInt(40)))
	// El lote toma el costo del renglón, no el de referencia del ítem.
	assert.True(t, lot.UnitCost.Equal(decimal.NewFromInt(12)))

	require.Len(t, store.Movements, 1)
	mov := store.Movements[0]
	assert.Equal(t, entity.MovementReceived, mov.Type)
	assert.Equal(t, entity.MovementRefPurchaseOrder, mov.RefType)
	assert.Equal(t, "po-1", mov.RefID)
	assert.Equal(t, lot.ID, mov.LotID)
	assert.Equal(t, "user-1", mov.CreatedBy)
}

func TestReceiveLineUpdatesWeightedCost(t *testing.T) {
	store := apptest.NewStore()
	uc := newReceiveUC(store)
	seedReceivablePO(store)
	// Existencia previa: 100 unidades a 10 en un lote abierto.
	store.Lots["lot-0"] = &entity.Lot{
		ID:             "lot-0",
		ItemID:         "item-malta",
		LotNumber:      "L-2025-099",
		QuantityOnHand: decimal.NewFromInt(100),
		UnitCost:       decimal.NewFromInt(10),
	}

	_, err := uc.ReceiveLine(context.Background(), receiving.ReceiveLineInput{
		LineID:    "pol-malta",
		Quantity:  decimal.NewFromInt(50),
		LotNumber: "L-2026-001",
		UserID:    "user-1",
	})
	require.NoError(t, err)

	// (100*10 + 50*12) / 150 = 10.666...
	want := decimal.NewFromInt(1600).Div(decimal.NewFromInt(150))
	assert.True(t, store.Items["item-malta"].UnitCost.Equal(want),
		"costo ponderado esperado %s, quedó %s", want, store.Items["item-malta"].UnitCost)
}

func TestReceiveLineOverReceipt(t *testing.T) {
	store := apptest.NewStore()
	uc := newReceiveUC(store)
	seedReceivablePO(store)

	_, err := uc.ReceiveLine(context.Background(), receiving.ReceiveLineInput{
		LineID:    "pol-malta",
		Quantity:  decimal.NewFromInt(101),
		LotNumber: "L-2026-001",
		UserID:    "user-1",
	})
	assert.ErrorIs(t, err, domain.ErrOverReceipt)
	// Nada quedó escrito.
	assert.Empty(t, store.Movements)
	assert.True(t, store.POs["po-1"].Lines[0].ReceivedQty.IsZero())
}

func TestReceiveLineNotReceivable(t *testing.T) {
	store := apptest.NewStore()
	uc := newReceiveUC(store)
	seedReceivablePO(store)
	store.POs["po-1"].Status = entity.PODraft

	_, err := uc.ReceiveLine(context.Background(), receiving.ReceiveLineInput{
		LineID:    "pol-malta",
		Quantity:  decimal.NewFromInt(10),
		LotNumber: "L-2026-001",
	})
	assert.ErrorIs(t, err, domain.ErrPreconditionFailed)
}

func TestReceiveLineInvalidInput(t *testing.T) {
	store := apptest.NewStore()
	uc := newReceiveUC(store)
	seedReceivablePO(store)

	cases := []struct {
		name string
		in   receiving.ReceiveLineInput
	}{
		{"sin renglon", receiving.ReceiveLineInput{Quantity: decimal.NewFromInt(1), LotNumber: "L-1"}},
		{"sin lote", receiving.ReceiveLineInput{LineID: "pol-malta", Quantity: decimal.NewFromInt(1)}},
		{"cantidad cero", receiving.ReceiveLineInput{LineID: "pol-malta", LotNumber: "L-1"}},
		{"cantidad negativa", receiving.ReceiveLineInput{LineID: "pol-malta", Quantity: decimal.NewFromInt(-5), LotNumber: "L-1"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.ReceiveLine(context.Background(), tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}
