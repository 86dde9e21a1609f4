package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Cerveceria-api/internal/application/ports"
)

var _ ports.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. Si fn falla no queda estado parcial visible.
func (r *TxRunner) Run(ctx context.Context, fn func(repos ports.Repos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	repos := ports.Repos{
		Batches:        NewBatchRepository(tx),
		Vessels:        NewVesselRepository(tx),
		Recipes:        NewRecipeRepository(tx),
		Orders:         NewOrderRepository(tx),
		PurchaseOrders: NewPurchaseOrderRepository(tx),
		Items:          NewInventoryItemRepository(tx),
		Lots:           NewLotRepository(tx),
		Movements:      NewStockMovementRepository(tx),
		Finished:       NewFinishedGoodsRepository(tx),
		Sequences:      NewSequenceRepository(tx),
	}

	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
