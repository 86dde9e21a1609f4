package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Cerveceria-api/internal/domain/entity"
	"github.com/jhoicas/Cerveceria-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

const movementColumns = `id, lot_id, item_id, type, quantity, unit_cost, ref_type, ref_id, notes, created_at, created_by`

// StockMovementRepo implementación de StockMovementRepository sobre PostgreSQL
// (usable con pool o tx). Solo inserta y lee: los asientos son inmutables.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador del libro de movimientos. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create inserta un asiento en el libro.
func (r *StockMovementRepo) Create(ctx context.Context, m *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.LotID, m.ItemID, m.Type, m.Quantity, m.UnitCost,
		m.RefType, m.RefID, m.Notes, m.CreatedAt, m.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// ListByItem movimientos de un ítem, con rango de fechas opcional, más recientes primero.
func (r *StockMovementRepo) ListByItem(ctx context.Context, itemID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements WHERE item_id = $1`
	args := []any{itemID}
	if from != nil {
		args = append(args, *from)
		query += fmt.Sprintf(` AND created_at >= $%d`, len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += fmt.Sprintf(` AND created_at <= $%d`, len(args))
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)
	return r.list(ctx, query, args...)
}

// ListByLot movimientos de un lote, más recientes primero.
func (r *StockMovementRepo) ListByLot(ctx context.Context, lotID string, limit, offset int) ([]*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements WHERE lot_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.list(ctx, query, lotID, limit, offset)
}

// ListByRef movimientos generados por un documento (orden de compra, lote de
// producción, pedido), en orden de inserción.
func (r *StockMovementRepo) ListByRef(ctx context.Context, refType, refID string) ([]*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements WHERE ref_type = $1 AND ref_id = $2 ORDER BY created_at`
	return r.list(ctx, query, refType, refID)
}

func (r *StockMovementRepo) list(ctx context.Context, query string, args ...any) ([]*entity.StockMovement, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()

	var out []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(
			&m.ID, &m.LotID, &m.ItemID, &m.Type, &m.Quantity, &m.UnitCost,
			&m.RefType, &m.RefID, &m.Notes, &m.CreatedAt, &m.CreatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}
