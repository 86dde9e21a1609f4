package lifecycle_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Cerveceria-api/internal/application/apptest"
	applifecycle "github.com/jhoicas/Cerveceria-api/internal/application/lifecycle"
	"github.com/jhoicas/Cerveceria-api/internal/application/ports"
	"github.com/jhoicas/Cerveceria-api/internal/domain"
	"github.com/jhoicas/Cerveceria-api/internal/domain/entity"
	"github.com/jhoicas/Cerveceria-api/internal/domain/repository"
)

func newBatchUC(store *apptest.Store) *applifecycle.BatchTransitionUseCase {
	return applifecycle.NewBatchTransitionUseCase(&apptest.TxRunner{Store: store}, apptest.Logger())
}

func seedBatch(store *apptest.Store, status entity.BatchStatus) *entity.Batch {
	b := &entity.Batch{
		ID:        "batch-1",
		Number:    "B-2026-0001",
		RecipeID:  "recipe-1",
		Status:    status,
		BatchSize: decimal.NewFromInt(500),
	}
	store.Batches[b.ID] = b
	return b
}

func TestBatchTransitionHappyPath(t *testing.T) {
	store := apptest.NewStore()
	uc := newBatchUC(store)
	seedBatch(store, entity.BatchPlanned)
	ctx := context.Background()

	for _, target := range []entity.BatchStatus{
		entity.BatchBrewing,
		entity.BatchFermenting,
		entity.BatchConditioning,
		entity.BatchReadyToPackage,
		entity.BatchPackaged,
		entity.BatchCompleted,
	} {
		got, err := uc.Transition(ctx, "batch-1", target)
		require.NoError(t, err, "transición a %s", target)
		assert.Equal(t, target, got.Status)
	}

	final := store.Batches["batch-1"]
	assert.NotNil(t, final.BrewDate, "brewing estampa fecha de cocción")
	assert.NotNil(t, final.PackagedAt)
	assert.NotNil(t, final.CompletedAt)
}

func TestBatchTransitionIdempotentNoOp(t *testing.T) {
	store := apptest.NewStore()
	uc := newBatchUC(store)
	seedBatch(store, entity.BatchBrewing)

	got, err := uc.Transition(context.Background(), "batch-1", entity.BatchBrewing)
	require.NoError(t, err, "re-solicitar el estado actual es un no-op exitoso")
	assert.Equal(t, entity.BatchBrewing, got.Status)
}

func TestBatchTransitionInvalid(t *testing.T) {
	store := apptest.NewStore()
	uc := newBatchUC(store)
	seedBatch(store, entity.BatchPlanned)

	_, err := uc.Transition(context.Background(), "batch-1", entity.BatchPackaged)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Equal(t, entity.BatchPlanned, store.Batches["batch-1"].Status, "sin escritura parcial")
}

func TestBatchTransitionNotFound(t *testing.T) {
	store := apptest.NewStore()
	uc := newBatchUC(store)

	_, err := uc.Transition(context.Background(), "no-existe", entity.BatchBrewing)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBatchTransitionReleasesVessel(t *testing.T) {
	store := apptest.NewStore()
	uc := newBatchUC(store)
	b := seedBatch(store, entity.BatchReadyToPackage)
	vesselID := "fv-01"
	b.VesselID = &vesselID
	store.Vessels[vesselID] = &entity.Vessel{ID: vesselID, Name: "FV-01", Status: entity.VesselOccupied}

	got, err := uc.Transition(context.Background(), "batch-1", entity.BatchPackaged)
	require.NoError(t, err)

	assert.Nil(t, got.VesselID, "el lote suelta el tanque al salir del rango que lo ocupa")
	assert.Equal(t, entity.VesselAvailable, store.Vessels[vesselID].Status)
}

func TestBatchCancelReleasesPreassignedVessel(t *testing.T) {
	store := apptest.NewStore()
	uc := newBatchUC(store)
	// Un lote planned puede tener tanque asignado por adelantado; cancelarlo
	// no debe dejar el tanque ocupado ni la referencia colgando.
	b := seedBatch(store, entity.BatchPlanned)
	vesselID := "fv-02"
	b.VesselID = &vesselID
	store.Vessels[vesselID] = &entity.Vessel{ID: vesselID, Name: "FV-02", Status: entity.VesselOccupied}

	got, err := uc.Transition(context.Background(), "batch-1", entity.BatchCancelled)
	require.NoError(t, err)

	assert.Equal(t, entity.BatchCancelled, got.Status)
	assert.Nil(t, got.VesselID, "un lote terminal no conserva referencia a tanque")
	assert.Nil(t, store.Batches["batch-1"].VesselID)
	assert.Equal(t, entity.VesselAvailable, store.Vessels[vesselID].Status)
}

func TestBatchDumpBlockedByReservations(t *testing.T) {
	store := apptest.NewStore()
	uc := newBatchUC(store)
	seedBatch(store, entity.BatchReadyToPackage)
	store.Finished["fg-1"] = &entity.FinishedGoods{
		ID:               "fg-1",
		BatchID:          "batch-1",
		RecipeID:         "recipe-1",
		Format:           entity.FormatBottle330,
		QuantityOnHand:   decimal.NewFromInt(100),
		QuantityReserved: decimal.NewFromInt(10),
	}

	_, err := uc.Transition(context.Background(), "batch-1", entity.BatchDumped)
	assert.ErrorIs(t, err, domain.ErrPreconditionFailed,
		"no se descarta un lote con producto terminado reservado")
}

func TestBatchPackagedFiresHook(t *testing.T) {
	store := apptest.NewStore()
	uc := newBatchUC(store)
	seedBatch(store, entity.BatchReadyToPackage)

	var hooked []string
	uc.OnPackaged(func(_ context.Context, b *entity.Batch) {
		hooked = append(hooked, b.ID)
	})

	_, err := uc.Transition(context.Background(), "batch-1", entity.BatchPackaged)
	require.NoError(t, err)
	assert.Equal(t, []string{"batch-1"}, hooked, "el hook de empaque corre tras el commit")

	// Una transición que no entra a packaged no dispara el hook.
	_, err = uc.Transition(context.Background(), "batch-1", entity.BatchCompleted)
	require.NoError(t, err)
	assert.Len(t, hooked, 1)
}

func TestBatchTransitionConcurrencyConflict(t *testing.T) {
	store := apptest.NewStore()
	// TxRunner que simula un escritor rival: cambia el estado almacenado después
	// de la lectura y antes de la escritura guardada.
	uc := applifecycle.NewBatchTransitionUseCase(raceTxRunner{store: store}, apptest.Logger())
	seedBatch(store, entity.BatchPlanned)

	_, err := uc.Transition(context.Background(), "batch-1", entity.BatchBrewing)
	assert.ErrorIs(t, err, domain.ErrConcurrencyConflict)
}

// raceTxRunner intercala una mutación rival entre la lectura for-update y la
// escritura guardada: el guard de estado previo debe detectar la carrera.
type raceTxRunner struct {
	store *apptest.Store
}

func (t raceTxRunner) Run(_ context.Context, fn func(r ports.Repos) error) error {
	repos := t.store.Repos()
	repos.Batches = raceBatchRepo{BatchRepository: repos.Batches, store: t.store}
	return fn(repos)
}

type raceBatchRepo struct {
	repository.BatchRepository
	store *apptest.Store
}

func (r raceBatchRepo) GetForUpdate(ctx context.Context, id string) (*entity.Batch, error) {
	b, err := r.BatchRepository.GetForUpdate(ctx, id)
	if b != nil {
		// El rival gana la carrera justo después de nuestra lectura.
		r.store.Batches[id].Status = entity.BatchCancelled
	}
	return b, err
}
