// Package ports define los puertos compartidos de la capa de aplicación.
package ports

import (
	"context"

	"github.com/jhoicas/Cerveceria-api/internal/domain/repository"
)

// Repos repositorios atados a una misma transacción de base de datos.
type Repos struct {
	Batches        repository.BatchRepository
	Vessels        repository.VesselRepository
	Recipes        repository.RecipeRepository
	Orders         repository.OrderRepository
	PurchaseOrders repository.PurchaseOrderRepository
	Items          repository.InventoryItemRepository
	Lots           repository.LotRepository
	Movements      repository.StockMovementRepository
	Finished       repository.FinishedGoodsRepository
	Sequences      repository.SequenceRepository
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Commit si fn devuelve nil, Rollback si no:
// ante cualquier fallo no queda estado parcial visible.
type TxRunner interface {
	Run(ctx context.Context, fn func(r Repos) error) error
}
