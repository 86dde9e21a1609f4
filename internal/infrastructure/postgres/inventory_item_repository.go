package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cerveceria-api/internal/domain"
	"github.com/jhoicas/Cerveceria-api/internal/domain/entity"
	"github.com/jhoicas/Cerveceria-api/internal/domain/repository"
)

var _ repository.InventoryItemRepository = (*InventoryItemRepo)(nil)

const itemColumns = `id, sku, name, category, unit, unit_cost, reorder_point, reorder_qty, supplier_id, created_at, updated_at`

// InventoryItemRepo implementación de InventoryItemRepository sobre PostgreSQL
// (usable con pool o tx).
type InventoryItemRepo struct {
	q Querier
}

// NewInventoryItemRepository construye el adaptador del catálogo. Pasar pool o tx (Querier).
func NewInventoryItemRepository(q Querier) *InventoryItemRepo {
	return &InventoryItemRepo{q: q}
}

// Create persiste un ítem de catálogo. SKU único.
func (r *InventoryItemRepo) Create(ctx context.Context, it *entity.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		it.ID, it.SKU, it.Name, it.Category, it.Unit, it.UnitCost,
		it.ReorderPoint, it.ReorderQty, it.SupplierID, it.CreatedAt, it.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert inventory item: %w", err)
	}
	return nil
}

// GetByID obtiene un ítem por ID; nil si no existe.
func (r *InventoryItemRepo) GetByID(ctx context.Context, id string) (*entity.InventoryItem, error) {
	return r.getBy(ctx, `id`, id)
}

// GetBySKU obtiene un ítem por SKU; nil si no existe.
func (r *InventoryItemRepo) GetBySKU(ctx context.Context, sku string) (*entity.InventoryItem, error) {
	return r.getBy(ctx, `sku`, sku)
}

func (r *InventoryItemRepo) getBy(ctx context.Context, column, value string) (*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE ` + column + ` = $1`
	var it entity.InventoryItem
	err := r.q.QueryRow(ctx, query, value).Scan(
		&it.ID, &it.SKU, &it.Name, &it.Category, &it.Unit, &it.UnitCost,
		&it.ReorderPoint, &it.ReorderQty, &it.SupplierID, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory item: %w", err)
	}
	return &it, nil
}

// List lista el catálogo completo por SKU.
func (r *InventoryItemRepo) List(ctx context.Context) ([]*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items ORDER BY sku`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list inventory items: %w", err)
	}
	defer rows.Close()

	var out []*entity.InventoryItem
	for rows.Next() {
		var it entity.InventoryItem
		if err := rows.Scan(
			&it.ID, &it.SKU, &it.Name, &it.Category, &it.Unit, &it.UnitCost,
			&it.ReorderPoint, &it.ReorderQty, &it.SupplierID, &it.CreatedAt, &it.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		out = append(out, &it)
	}
	return out, rows.Err()
}

// Update persiste los campos editables del ítem. No toca unit_cost (ver UpdateCost).
func (r *InventoryItemRepo) Update(ctx context.Context, it *entity.InventoryItem) error {
	query := `
		UPDATE inventory_items
		SET name = $2, category = $3, reorder_point = $4, reorder_qty = $5, supplier_id = $6, updated_at = $7
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		it.ID, it.Name, it.Category, it.ReorderPoint, it.ReorderQty, it.SupplierID, it.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update inventory item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateCost actualiza solo el costo de referencia (promedio ponderado tras recepción).
func (r *InventoryItemRepo) UpdateCost(ctx context.Context, id string, cost decimal.Decimal) error {
	_, err := r.q.Exec(ctx,
		`UPDATE inventory_items SET unit_cost = $2, updated_at = now() WHERE id = $1`,
		id, cost,
	)
	if err != nil {
		return fmt.Errorf("update inventory item cost: %w", err)
	}
	return nil
}
