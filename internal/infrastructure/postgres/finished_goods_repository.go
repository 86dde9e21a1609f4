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

var _ repository.FinishedGoodsRepository = (*FinishedGoodsRepo)(nil)

const fgColumns = `id, batch_id, recipe_id, format, quantity_on_hand, quantity_reserved, unit_cost, packaged_at, best_before, created_at, updated_at`

// FinishedGoodsRepo implementación de FinishedGoodsRepository sobre PostgreSQL
// (usable con pool o tx).
type FinishedGoodsRepo struct {
	q Querier
}

// NewFinishedGoodsRepository construye el adaptador de producto terminado. Pasar pool o tx (Querier).
func NewFinishedGoodsRepository(q Querier) *FinishedGoodsRepo {
	return &FinishedGoodsRepo{q: q}
}

// Create persiste una existencia de producto terminado.
func (r *FinishedGoodsRepo) Create(ctx context.Context, fg *entity.FinishedGoods) error {
	query := `
		INSERT INTO finished_goods (` + fgColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		fg.ID, fg.BatchID, fg.RecipeID, fg.Format, fg.QuantityOnHand, fg.QuantityReserved,
		fg.UnitCost, fg.PackagedAt, fg.BestBefore, fg.CreatedAt, fg.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert finished goods: %w", err)
	}
	return nil
}

// GetByID obtiene una existencia por ID; nil si no existe.
func (r *FinishedGoodsRepo) GetByID(ctx context.Context, id string) (*entity.FinishedGoods, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate obtiene una existencia bloqueando la fila (SELECT FOR UPDATE).
func (r *FinishedGoodsRepo) GetForUpdate(ctx context.Context, id string) (*entity.FinishedGoods, error) {
	return r.get(ctx, id, true)
}

func (r *FinishedGoodsRepo) get(ctx context.Context, id string, forUpdate bool) (*entity.FinishedGoods, error) {
	query := `SELECT ` + fgColumns + ` FROM finished_goods WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	fg, err := scanFinishedGoods(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get finished goods: %w", err)
	}
	return fg, nil
}

// List existencias, opcionalmente por receta, más recientes primero.
func (r *FinishedGoodsRepo) List(ctx context.Context, recipeID string) ([]*entity.FinishedGoods, error) {
	query := `SELECT ` + fgColumns + ` FROM finished_goods`
	args := []any{}
	if recipeID != "" {
		query += ` WHERE recipe_id = $1`
		args = append(args, recipeID)
	}
	query += ` ORDER BY packaged_at DESC`
	return r.list(ctx, query, args...)
}

// ListByBatch existencias derivadas de un lote de producción.
func (r *FinishedGoodsRepo) ListByBatch(ctx context.Context, batchID string) ([]*entity.FinishedGoods, error) {
	query := `SELECT ` + fgColumns + ` FROM finished_goods WHERE batch_id = $1 ORDER BY created_at`
	return r.list(ctx, query, batchID)
}

func (r *FinishedGoodsRepo) list(ctx context.Context, query string, args ...any) ([]*entity.FinishedGoods, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list finished goods: %w", err)
	}
	defer rows.Close()

	var out []*entity.FinishedGoods
	for rows.Next() {
		fg, err := scanFinishedGoods(rows)
		if err != nil {
			return nil, fmt.Errorf("scan finished goods: %w", err)
		}
		out = append(out, fg)
	}
	return out, rows.Err()
}

// Update persiste cantidades y costo de la existencia.
func (r *FinishedGoodsRepo) Update(ctx context.Context, fg *entity.FinishedGoods) error {
	query := `
		UPDATE finished_goods
		SET quantity_on_hand = $2, quantity_reserved = $3, unit_cost = $4, best_before = $5, updated_at = $6
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		fg.ID, fg.QuantityOnHand, fg.QuantityReserved, fg.UnitCost, fg.BestBefore, fg.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update finished goods: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AdjustReserved suma delta (con signo) a quantity_reserved de la existencia.
func (r *FinishedGoodsRepo) AdjustReserved(ctx context.Context, id string, delta decimal.Decimal) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE finished_goods
		SET quantity_reserved = quantity_reserved + $2, updated_at = now()
		WHERE id = $1`,
		id, delta,
	)
	if err != nil {
		if isCheckViolation(err) {
			return domain.ErrInsufficientStock
		}
		return fmt.Errorf("adjust finished goods reserved: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ReservedByBatch total reservado contra producto terminado derivado del lote de producción.
func (r *FinishedGoodsRepo) ReservedByBatch(ctx context.Context, batchID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(quantity_reserved), 0) FROM finished_goods WHERE batch_id = $1`,
		batchID,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("reserved by batch: %w", err)
	}
	return total, nil
}

func scanFinishedGoods(row pgx.Row) (*entity.FinishedGoods, error) {
	var fg entity.FinishedGoods
	err := row.Scan(
		&fg.ID, &fg.BatchID, &fg.RecipeID, &fg.Format, &fg.QuantityOnHand, &fg.QuantityReserved,
		&fg.UnitCost, &fg.PackagedAt, &fg.BestBefore, &fg.CreatedAt, &fg.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &fg, nil
}
