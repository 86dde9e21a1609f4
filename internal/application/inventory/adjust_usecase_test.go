package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Cerveceria-api/internal/application/apptest"
	appinv "github.com/jhoicas/Cerveceria-api/internal/application/inventory"
	"github.com/jhoicas/Cerveceria-api/internal/domain"
	"github.com/jhoicas/Cerveceria-api/internal/domain/entity"
)

func newAdjustUC(store *apptest.Store) *appinv.AdjustStockUseCase {
	return appinv.NewAdjustStockUseCase(&apptest.TxRunner{Store: store}, apptest.Logger())
}

func seedLot(store *apptest.Store, qty int64) {
	store.Lots["lot-1"] = &entity.Lot{
		ID:             "lot-1",
		ItemID:         "item-malta",
		LotNumber:      "L-2026-001",
		QuantityOnHand: decimal.NewFromInt(qty),
		UnitCost:       decimal.NewFromInt(10),
	}
}

func TestAdjustPositive(t *testing.T) {
	store := apptest.NewStore()
	uc := newAdjustUC(store)
	seedLot(store, 100)

	mov, err := uc.Adjust(context.Background(), appinv.AdjustInput{
		LotID:    "lot-1",
		Type:     entity.MovementAdjusted,
		Quantity: decimal.NewFromInt(5),
		Notes:    "conteo físico",
		UserID:   "user-1",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.MovementAdjusted, mov.Type)
	assert.Equal(t, entity.MovementRefManual, mov.RefType)
	assert.True(t, store.Lots["lot-1"].QuantityOnHand.Equal(decimal.NewFromInt(105)))
}

func TestAdjustWriteOffAlwaysSubtracts(t *testing.T) {
	store := apptest.NewStore()
	uc := newAdjustUC(store)
	seedLot(store, 100)

	// La baja se asienta en negativo aunque llegue con signo positivo del borde.
	mov, err := uc.Adjust(context.Background(), appinv.AdjustInput{
		LotID:    "lot-1",
		Type:     entity.MovementWrittenOff,
		Quantity: decimal.NewFromInt(20),
		UserID:   "user-1",
	})
	require.NoError(t, err)

	assert.True(t, mov.Quantity.Equal(decimal.NewFromInt(-20)))
	assert.True(t, store.Lots["lot-1"].QuantityOnHand.Equal(decimal.NewFromInt(80)))
}

func TestAdjustCannotGoBelowZero(t *testing.T) {
	store := apptest.NewStore()
	uc := newAdjustUC(store)
	seedLot(store, 10)

	_, err := uc.Adjust(context.Background(), appinv.AdjustInput{
		LotID:    "lot-1",
		Type:     entity.MovementAdjusted,
		Quantity: decimal.NewFromInt(-25),
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.True(t, store.Lots["lot-1"].QuantityOnHand.Equal(decimal.NewFromInt(10)),
		"el lote no cambia cuando el ajuste se rechaza")
	assert.Empty(t, store.Movements)
}

func TestAdjustRejectsNonManualTypes(t *testing.T) {
	store := apptest.NewStore()
	uc := newAdjustUC(store)
	seedLot(store, 10)

	_, err := uc.Adjust(context.Background(), appinv.AdjustInput{
		LotID:    "lot-1",
		Type:     entity.MovementReceived,
		Quantity: decimal.NewFromInt(5),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAdjustLotNotFound(t *testing.T) {
	store := apptest.NewStore()
	uc := newAdjustUC(store)

	_, err := uc.Adjust(context.Background(), appinv.AdjustInput{
		LotID:    "lot-nope",
		Type:     entity.MovementAdjusted,
		Quantity: decimal.NewFromInt(5),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
