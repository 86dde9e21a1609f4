package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Cerveceria-api/internal/domain"
	"github.com/jhoicas/Cerveceria-api/internal/domain/entity"
	"github.com/jhoicas/Cerveceria-api/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

const poColumns = `id, number, supplier_id, status, order_date, expected_date, subtotal, tax, total, notes, created_at, updated_at`

const poLineColumns = `id, purchase_order_id, item_id, ordered_qty, received_qty, unit_cost, tax_rate, line_total`

// PurchaseOrderRepo implementación de PurchaseOrderRepository sobre PostgreSQL
// (usable con pool o tx). Las lecturas devuelven la orden con renglones cargados.
type PurchaseOrderRepo struct {
	q Querier
}

// NewPurchaseOrderRepository construye el adaptador de órdenes de compra. Pasar pool o tx (Querier).
func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{q: q}
}

// Create persiste la orden de compra con sus renglones.
func (r *PurchaseOrderRepo) Create(ctx context.Context, po *entity.PurchaseOrder) error {
	query := `
		INSERT INTO purchase_orders (` + poColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		po.ID, po.Number, po.SupplierID, po.Status, po.OrderDate, po.ExpectedDate,
		po.Subtotal, po.Tax, po.Total, po.Notes, po.CreatedAt, po.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert purchase order: %w", err)
	}
	return r.insertLines(ctx, po)
}

// GetByID obtiene una orden con renglones; nil si no existe.
func (r *PurchaseOrderRepo) GetByID(ctx context.Context, id string) (*entity.PurchaseOrder, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate obtiene una orden bloqueando la fila de cabecera (SELECT FOR UPDATE).
func (r *PurchaseOrderRepo) GetForUpdate(ctx context.Context, id string) (*entity.PurchaseOrder, error) {
	return r.get(ctx, id, true)
}

func (r *PurchaseOrderRepo) get(ctx context.Context, id string, forUpdate bool) (*entity.PurchaseOrder, error) {
	query := `SELECT ` + poColumns + ` FROM purchase_orders WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	po, err := scanPurchaseOrder(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase order: %w", err)
	}
	if err := r.loadLines(ctx, po, forUpdate); err != nil {
		return nil, err
	}
	return po, nil
}

// GetByLineIDForUpdate carga la orden dueña del renglón y bloquea cabecera y renglones.
func (r *PurchaseOrderRepo) GetByLineIDForUpdate(ctx context.Context, lineID string) (*entity.PurchaseOrder, error) {
	var poID string
	err := r.q.QueryRow(ctx,
		`SELECT purchase_order_id FROM purchase_order_lines WHERE id = $1`, lineID,
	).Scan(&poID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase order by line: %w", err)
	}
	return r.get(ctx, poID, true)
}

// List lista órdenes de compra, opcionalmente por estado, más recientes primero.
func (r *PurchaseOrderRepo) List(ctx context.Context, status string, limit, offset int) ([]*entity.PurchaseOrder, error) {
	query := `SELECT ` + poColumns + ` FROM purchase_orders`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}
	defer rows.Close()

	var out []*entity.PurchaseOrder
	for rows.Next() {
		po, err := scanPurchaseOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan purchase order: %w", err)
		}
		out = append(out, po)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, po := range out {
		if err := r.loadLines(ctx, po, false); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Update persiste cabecera y reemplaza renglones completos (solo en draft).
func (r *PurchaseOrderRepo) Update(ctx context.Context, po *entity.PurchaseOrder) error {
	query := `
		UPDATE purchase_orders
		SET expected_date = $2, subtotal = $3, tax = $4, total = $5, notes = $6, updated_at = $7
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		po.ID, po.ExpectedDate, po.Subtotal, po.Tax, po.Total, po.Notes, po.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update purchase order: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM purchase_order_lines WHERE purchase_order_id = $1`, po.ID); err != nil {
		return fmt.Errorf("delete purchase order lines: %w", err)
	}
	return r.insertLines(ctx, po)
}

// UpdateStatus escribe el nuevo estado con guarda optimista sobre el estado previo.
func (r *PurchaseOrderRepo) UpdateStatus(ctx context.Context, id string, from, to entity.PurchaseOrderStatus, po *entity.PurchaseOrder) (int64, error) {
	cmd, err := r.q.Exec(ctx, `
		UPDATE purchase_orders SET status = $3, updated_at = $4
		WHERE id = $1 AND status = $2`,
		id, from, to, po.UpdatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("update purchase order status: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// UpdateLineReceived incrementa received_qty del renglón. El CHECK de DB
// (received_qty <= ordered_qty) respalda la validación de sobre-recepción.
func (r *PurchaseOrderRepo) UpdateLineReceived(ctx context.Context, line *entity.PurchaseOrderLine) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE purchase_order_lines SET received_qty = $2 WHERE id = $1`,
		line.ID, line.ReceivedQty,
	)
	if err != nil {
		if isCheckViolation(err) {
			return domain.ErrOverReceipt
		}
		return fmt.Errorf("update purchase order line: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PurchaseOrderRepo) insertLines(ctx context.Context, po *entity.PurchaseOrder) error {
	for _, l := range po.Lines {
		_, err := r.q.Exec(ctx, `
			INSERT INTO purchase_order_lines (`+poLineColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			l.ID, l.PurchaseOrderID, l.ItemID, l.OrderedQty, l.ReceivedQty,
			l.UnitCost, l.TaxRate, l.LineTotal,
		)
		if err != nil {
			return fmt.Errorf("insert purchase order line: %w", err)
		}
	}
	return nil
}

func (r *PurchaseOrderRepo) loadLines(ctx context.Context, po *entity.PurchaseOrder, forUpdate bool) error {
	query := `SELECT ` + poLineColumns + ` FROM purchase_order_lines WHERE purchase_order_id = $1 ORDER BY id`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	rows, err := r.q.Query(ctx, query, po.ID)
	if err != nil {
		return fmt.Errorf("list purchase order lines: %w", err)
	}
	defer rows.Close()
	po.Lines = po.Lines[:0]
	for rows.Next() {
		var l entity.PurchaseOrderLine
		if err := rows.Scan(
			&l.ID, &l.PurchaseOrderID, &l.ItemID, &l.OrderedQty, &l.ReceivedQty,
			&l.UnitCost, &l.TaxRate, &l.LineTotal,
		); err != nil {
			return fmt.Errorf("scan purchase order line: %w", err)
		}
		po.Lines = append(po.Lines, l)
	}
	return rows.Err()
}

func scanPurchaseOrder(row pgx.Row) (*entity.PurchaseOrder, error) {
	var po entity.PurchaseOrder
	err := row.Scan(
		&po.ID, &po.Number, &po.SupplierID, &po.Status, &po.OrderDate, &po.ExpectedDate,
		&po.Subtotal, &po.Tax, &po.Total, &po.Notes, &po.CreatedAt, &po.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &po, nil
}
