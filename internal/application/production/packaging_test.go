package production_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Cerveceria-api/internal/application/apptest"
	"github.com/jhoicas/Cerveceria-api/internal/application/production"
	"github.com/jhoicas/Cerveceria-api/internal/domain/entity"
)

func newPackagingUC(store *apptest.Store) *production.PackagingUseCase {
	return production.NewPackagingUseCase(&apptest.TxRunner{Store: store}, apptest.Logger())
}

// seedPackagedBatch lote empacado de 500L de una IPA con dos ingredientes y
// lotes de materia prima suficientes.
func seedPackagedBatch(store *apptest.Store) {
	store.Recipes["recipe-1"] = &entity.Recipe{
		ID:            "recipe-1",
		Name:          "IPA Insignia",
		Style:         "IPA",
		Version:       1,
		BatchSize:     decimal.NewFromInt(500),
		DefaultFormat: entity.FormatBottle330,
		Ingredients: []entity.RecipeIngredient{
			{ID: "ri-1", RecipeID: "recipe-1", ItemID: "item-malta", Quantity: decimal.NewFromInt(100), Stage: "mash"},
			{ID: "ri-2", RecipeID: "recipe-1", ItemID: "item-lupulo", Quantity: decimal.NewFromInt(2), Stage: "boil"},
		},
		Active: true,
	}
	store.Batches["batch-1"] = &entity.Batch{
		ID:        "batch-1",
		Number:    "B-2026-0001",
		RecipeID:  "recipe-1",
		Status:    entity.BatchPackaged,
		BatchSize: decimal.NewFromInt(500),
	}
	store.Lots["lot-malta"] = &entity.Lot{
		ID:             "lot-malta",
		ItemID:         "item-malta",
		LotNumber:      "L-2026-001",
		QuantityOnHand: decimal.NewFromInt(500),
		UnitCost:       decimal.NewFromInt(10),
	}
	store.Lots["lot-lupulo"] = &entity.Lot{
		ID:             "lot-lupulo",
		ItemID:         "item-lupulo",
		LotNumber:      "L-2026-002",
		QuantityOnHand: decimal.NewFromInt(10),
		UnitCost:       decimal.NewFromInt(40),
	}
}

func TestPackageBatchCreatesFinishedGoods(t *testing.T) {
	store := apptest.NewStore()
	uc := newPackagingUC(store)
	seedPackagedBatch(store)

	err := uc.PackageBatch(context.Background(), "batch-1")
	require.NoError(t, err)

	var fg *entity.FinishedGoods
	for _, f := range store.Finished {
		fg = f
	}
	require.NotNil(t, fg, "debe existir producto terminado derivado del lote")
	assert.Equal(t, "batch-1", fg.BatchID)
	assert.Equal(t, entity.FormatBottle330, fg.Format)
	// floor(500 / 0.33) = 1515 botellas.
	assert.True(t, fg.QuantityOnHand.Equal(decimal.NewFromInt(1515)),
		"unidades esperadas 1515, quedaron %s", fg.QuantityOnHand)
	// Costo total 100*10 + 2*40 = 1080; 1080/1515 redondeado a 4.
	wantUnit := decimal.NewFromInt(1080).Div(decimal.NewFromInt(1515)).Round(4)
	assert.True(t, fg.UnitCost.Equal(wantUnit))
}

func TestPackageBatchUsesActualVolume(t *testing.T) {
	store := apptest.NewStore()
	uc := newPackagingUC(store)
	seedPackagedBatch(store)
	actual := decimal.NewFromInt(462)
	store.Batches["batch-1"].ActualVolume = &actual

	err := uc.PackageBatch(context.Background(), "batch-1")
	require.NoError(t, err)

	for _, fg := range store.Finished {
		// floor(462 / 0.33) = 1400 botellas.
		assert.True(t, fg.QuantityOnHand.Equal(decimal.NewFromInt(1400)),
			"unidades esperadas 1400, quedaron %s", fg.QuantityOnHand)
	}
}

func TestPackageBatchConsumesFEFO(t *testing.T) {
	store := apptest.NewStore()
	uc := newPackagingUC(store)
	seedPackagedBatch(store)
	// Lote próximo a vencer con stock parcial: se consume primero y no queda
	// por debajo de cero.
	soon := time.Now().Add(72 * time.Hour)
	store.Lots["lot-malta-viejo"] = &entity.Lot{
		ID:             "lot-malta-viejo",
		ItemID:         "item-malta",
		LotNumber:      "L-2025-050",
		QuantityOnHand: decimal.NewFromInt(30),
		UnitCost:       decimal.NewFromInt(9),
		ExpiresAt:      &soon,
	}

	err := uc.PackageBatch(context.Background(), "batch-1")
	require.NoError(t, err)

	assert.True(t, store.Lots["lot-malta-viejo"].QuantityOnHand.IsZero(),
		"el lote por vencer se agota primero")
	// Del lote grande salen los 70 restantes.
	assert.True(t, store.Lots["lot-malta"].QuantityOnHand.Equal(decimal.NewFromInt(430)))

	// Un asiento consumed por lote tocado, con referencia al lote de producción.
	var consumed []*entity.StockMovement
	for _, m := range store.Movements {
		if m.Type == entity.MovementConsumed && m.ItemID == "item-malta" {
			consumed = append(consumed, m)
		}
	}
	require.Len(t, consumed, 2)
	for _, m := range consumed {
		assert.Equal(t, entity.MovementRefBatch, m.RefType)
		assert.Equal(t, "batch-1", m.RefID)
		assert.True(t, m.Quantity.LessThan(decimal.Zero), "los consumos se asientan en negativo")
	}
}

func TestPackageBatchShortfallConsumesAvailable(t *testing.T) {
	store := apptest.NewStore()
	uc := newPackagingUC(store)
	seedPackagedBatch(store)
	store.Lots["lot-malta"].QuantityOnHand = decimal.NewFromInt(60)

	err := uc.PackageBatch(context.Background(), "batch-1")
	require.NoError(t, err, "el faltante se registra pero no bloquea el empaque")
	assert.True(t, store.Lots["lot-malta"].QuantityOnHand.IsZero())
}

func TestPackageBatchScalesByBatchSize(t *testing.T) {
	store := apptest.NewStore()
	uc := newPackagingUC(store)
	seedPackagedBatch(store)
	// Lote de 250L contra receta estándar de 500L: consume la mitad.
	store.Batches["batch-1"].BatchSize = decimal.NewFromInt(250)

	err := uc.PackageBatch(context.Background(), "batch-1")
	require.NoError(t, err)

	assert.True(t, store.Lots["lot-malta"].QuantityOnHand.Equal(decimal.NewFromInt(450)),
		"consumo de malta escalado a 50")
	assert.True(t, store.Lots["lot-lupulo"].QuantityOnHand.Equal(decimal.NewFromInt(9)))
}

func TestPackageBatchIdempotent(t *testing.T) {
	store := apptest.NewStore()
	uc := newPackagingUC(store)
	seedPackagedBatch(store)

	require.NoError(t, uc.PackageBatch(context.Background(), "batch-1"))
	movsAfterFirst := len(store.Movements)
	require.NoError(t, uc.PackageBatch(context.Background(), "batch-1"))

	assert.Len(t, store.Finished, 1, "el reintento no duplica producto terminado")
	assert.Len(t, store.Movements, movsAfterFirst, "el reintento no duplica consumos")
}

func TestPackageBatchRequiresPackagedStatus(t *testing.T) {
	store := apptest.NewStore()
	uc := newPackagingUC(store)
	seedPackagedBatch(store)
	store.Batches["batch-1"].Status = entity.BatchFermenting

	err := uc.PackageBatch(context.Background(), "batch-1")
	assert.Error(t, err)
	assert.Empty(t, store.Finished)
}
