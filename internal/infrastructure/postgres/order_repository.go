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

var _ repository.OrderRepository = (*OrderRepo)(nil)

const orderColumns = `id, number, customer_id, status, order_date, delivery_date, dispatched_at, delivered_at, paid_at, subtotal, tax, total, notes, created_at, updated_at`

const orderLineColumns = `id, order_id, recipe_id, format, quantity, unit_price, tax_rate, line_total, finished_goods_id`

// OrderRepo implementación de OrderRepository sobre PostgreSQL (usable con pool o tx).
// Las lecturas devuelven el pedido con renglones cargados.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de pedidos. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste el pedido con sus renglones.
func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	query := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(ctx, query,
		o.ID, o.Number, o.CustomerID, o.Status, o.OrderDate, o.DeliveryDate,
		o.DispatchedAt, o.DeliveredAt, o.PaidAt, o.Subtotal, o.Tax, o.Total,
		o.Notes, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return r.insertLines(ctx, o)
}

// GetByID obtiene un pedido con renglones; nil si no existe.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate obtiene un pedido bloqueando la fila de cabecera (SELECT FOR UPDATE).
func (r *OrderRepo) GetForUpdate(ctx context.Context, id string) (*entity.Order, error) {
	return r.get(ctx, id, true)
}

func (r *OrderRepo) get(ctx context.Context, id string, forUpdate bool) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	o, err := scanOrder(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	if err := r.loadLines(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// List lista pedidos, opcionalmente por estado, más recientes primero.
func (r *OrderRepo) List(ctx context.Context, status string, limit, offset int) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var out []*entity.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, o := range out {
		if err := r.loadLines(ctx, o); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Update persiste cabecera y reemplaza los renglones completos.
func (r *OrderRepo) Update(ctx context.Context, o *entity.Order) error {
	query := `
		UPDATE orders
		SET delivery_date = $2, subtotal = $3, tax = $4, total = $5, notes = $6, updated_at = $7
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		o.ID, o.DeliveryDate, o.Subtotal, o.Tax, o.Total, o.Notes, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM order_lines WHERE order_id = $1`, o.ID); err != nil {
		return fmt.Errorf("delete order lines: %w", err)
	}
	return r.insertLines(ctx, o)
}

// UpdateStatus escribe el nuevo estado con guarda optimista sobre el estado previo.
func (r *OrderRepo) UpdateStatus(ctx context.Context, id string, from, to entity.OrderStatus, o *entity.Order) (int64, error) {
	query := `
		UPDATE orders
		SET status = $3, dispatched_at = $4, delivered_at = $5, paid_at = $6, updated_at = $7
		WHERE id = $1 AND status = $2`
	cmd, err := r.q.Exec(ctx, query,
		id, from, to, o.DispatchedAt, o.DeliveredAt, o.PaidAt, o.UpdatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("update order status: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// GetLine obtiene un renglón por ID; nil si no existe.
func (r *OrderRepo) GetLine(ctx context.Context, lineID string) (*entity.OrderLine, error) {
	query := `SELECT ` + orderLineColumns + ` FROM order_lines WHERE id = $1`
	var l entity.OrderLine
	err := r.q.QueryRow(ctx, query, lineID).Scan(
		&l.ID, &l.OrderID, &l.RecipeID, &l.Format, &l.Quantity,
		&l.UnitPrice, &l.TaxRate, &l.LineTotal, &l.FinishedGoodsID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order line: %w", err)
	}
	return &l, nil
}

// UpdateLine persiste un renglón (asignación de picking incluida).
func (r *OrderRepo) UpdateLine(ctx context.Context, line *entity.OrderLine) error {
	query := `
		UPDATE order_lines
		SET quantity = $2, unit_price = $3, tax_rate = $4, line_total = $5, finished_goods_id = $6
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		line.ID, line.Quantity, line.UnitPrice, line.TaxRate, line.LineTotal, line.FinishedGoodsID,
	)
	if err != nil {
		return fmt.Errorf("update order line: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *OrderRepo) insertLines(ctx context.Context, o *entity.Order) error {
	for _, l := range o.Lines {
		_, err := r.q.Exec(ctx, `
			INSERT INTO order_lines (`+orderLineColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			l.ID, l.OrderID, l.RecipeID, l.Format, l.Quantity,
			l.UnitPrice, l.TaxRate, l.LineTotal, l.FinishedGoodsID,
		)
		if err != nil {
			return fmt.Errorf("insert order line: %w", err)
		}
	}
	return nil
}

func (r *OrderRepo) loadLines(ctx context.Context, o *entity.Order) error {
	rows, err := r.q.Query(ctx,
		`SELECT `+orderLineColumns+` FROM order_lines WHERE order_id = $1 ORDER BY id`, o.ID)
	if err != nil {
		return fmt.Errorf("list order lines: %w", err)
	}
	defer rows.Close()
	o.Lines = o.Lines[:0]
	for rows.Next() {
		var l entity.OrderLine
		if err := rows.Scan(
			&l.ID, &l.OrderID, &l.RecipeID, &l.Format, &l.Quantity,
			&l.UnitPrice, &l.TaxRate, &l.LineTotal, &l.FinishedGoodsID,
		); err != nil {
			return fmt.Errorf("scan order line: %w", err)
		}
		o.Lines = append(o.Lines, l)
	}
	return rows.Err()
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	err := row.Scan(
		&o.ID, &o.Number, &o.CustomerID, &o.Status, &o.OrderDate, &o.DeliveryDate,
		&o.DispatchedAt, &o.DeliveredAt, &o.PaidAt, &o.Subtotal, &o.Tax, &o.Total,
		&o.Notes, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
