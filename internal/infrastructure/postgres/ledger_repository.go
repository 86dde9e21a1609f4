package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Cerveceria-api/internal/domain/repository"
)

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

// LedgerRepo consultas de solo lectura del libro de cantidades. Cada término se
// agrega contra el estado actual en una sola consulta: sin caché entre escrituras.
type LedgerRepo struct {
	pool *pgxpool.Pool
}

// NewLedgerRepository construye el adaptador del libro.
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepo {
	return &LedgerRepo{pool: pool}
}

// ItemAggregates agrega por ítem los términos de la posición de inventario:
//   - on_hand:   Σ quantity_on_hand de lotes no vencidos
//   - allocated: requerimientos de lotes planned/brewing escalados al tamaño
//     real del lote, menos lo ya consumido contra ese lote (clamp en cero)
//   - incoming:  Σ (ordered - received) de órdenes de compra abiertas
//
// itemID vacío agrega todo el catálogo.
func (r *LedgerRepo) ItemAggregates(ctx context.Context, itemID string) ([]repository.ItemAggregate, error) {
	const query = `
	WITH on_hand AS (
	    SELECT l.item_id, SUM(l.quantity_on_hand) AS qty
	    FROM lots l
	    WHERE l.quantity_on_hand > 0
	      AND (l.expires_at IS NULL OR l.expires_at >= now())
	    GROUP BY l.item_id
	),
	allocated AS (
	    SELECT ri.item_id,
	           SUM(GREATEST(ri.quantity * b.batch_size / rec.batch_size + COALESCE(cons.qty, 0), 0)) AS qty
	    FROM batches b
	    JOIN recipes rec            ON rec.id = b.recipe_id
	    JOIN recipe_ingredients ri  ON ri.recipe_id = b.recipe_id
	    LEFT JOIN LATERAL (
	        SELECT SUM(m.quantity) AS qty
	        FROM stock_movements m
	        WHERE m.ref_type = 'batch'
	          AND m.ref_id   = b.id
	          AND m.item_id  = ri.item_id
	          AND m.type     = 'consumed'
	    ) cons ON true
	    WHERE b.status IN ('planned', 'brewing')
	    GROUP BY ri.item_id
	),
	incoming AS (
	    SELECT pol.item_id, SUM(pol.ordered_qty - pol.received_qty) AS qty
	    FROM purchase_order_lines pol
	    JOIN purchase_orders po ON po.id = pol.purchase_order_id
	    WHERE po.status IN ('sent', 'acknowledged', 'partially_received')
	    GROUP BY pol.item_id
	)
	SELECT
	    i.id, i.sku, i.name, i.unit,
	    COALESCE(oh.qty,  0) AS on_hand,
	    COALESCE(al.qty,  0) AS allocated,
	    COALESCE(inc.qty, 0) AS incoming
	FROM inventory_items i
	LEFT JOIN on_hand   oh  ON oh.item_id  = i.id
	LEFT JOIN allocated al  ON al.item_id  = i.id
	LEFT JOIN incoming  inc ON inc.item_id = i.id
	WHERE $1 = '' OR i.id = $1
	ORDER BY i.sku`

	rows, err := r.pool.Query(ctx, query, itemID)
	if err != nil {
		return nil, fmt.Errorf("ledger.ItemAggregates: %w", err)
	}
	defer rows.Close()

	var out []repository.ItemAggregate
	for rows.Next() {
		var a repository.ItemAggregate
		if err := rows.Scan(&a.ItemID, &a.SKU, &a.Name, &a.Unit, &a.OnHand, &a.Allocated, &a.Incoming); err != nil {
			return nil, fmt.Errorf("ledger.ItemAggregates scan: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// FinishedAggregates agrega producto terminado por (receta, formato).
// recipeID vacío agrega todas las recetas.
func (r *LedgerRepo) FinishedAggregates(ctx context.Context, recipeID string) ([]repository.FinishedAggregate, error) {
	const query = `
	SELECT
	    fg.recipe_id,
	    rec.name AS recipe_name,
	    fg.format,
	    SUM(fg.quantity_on_hand)   AS on_hand,
	    SUM(fg.quantity_reserved)  AS reserved
	FROM finished_goods fg
	JOIN recipes rec ON rec.id = fg.recipe_id
	WHERE $1 = '' OR fg.recipe_id = $1
	GROUP BY fg.recipe_id, rec.name, fg.format
	ORDER BY rec.name, fg.format`

	rows, err := r.pool.Query(ctx, query, recipeID)
	if err != nil {
		return nil, fmt.Errorf("ledger.FinishedAggregates: %w", err)
	}
	defer rows.Close()

	var out []repository.FinishedAggregate
	for rows.Next() {
		var a repository.FinishedAggregate
		if err := rows.Scan(&a.RecipeID, &a.RecipeName, &a.Format, &a.OnHand, &a.Reserved); err != nil {
			return nil, fmt.Errorf("ledger.FinishedAggregates scan: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// OpenDemand renglones de pedidos en confirmed/picking/dispatched con fecha de
// entrega en o después del corte, o sin fecha.
func (r *LedgerRepo) OpenDemand(ctx context.Context, asOf time.Time) ([]repository.DemandRow, error) {
	const query = `
	SELECT
	    o.id, o.number, o.status,
	    c.name AS customer_name,
	    o.delivery_date,
	    ol.recipe_id,
	    rec.name AS recipe_name,
	    ol.format,
	    ol.quantity
	FROM orders o
	JOIN customers c    ON c.id   = o.customer_id
	JOIN order_lines ol ON ol.order_id = o.id
	JOIN recipes rec    ON rec.id = ol.recipe_id
	WHERE o.status IN ('confirmed', 'picking', 'dispatched')
	  AND (o.delivery_date IS NULL OR o.delivery_date >= $1)
	ORDER BY o.delivery_date NULLS LAST, o.number`

	rows, err := r.pool.Query(ctx, query, asOf)
	if err != nil {
		return nil, fmt.Errorf("ledger.OpenDemand: %w", err)
	}
	defer rows.Close()

	var out []repository.DemandRow
	for rows.Next() {
		var d repository.DemandRow
		if err := rows.Scan(
			&d.OrderID, &d.OrderNumber, &d.OrderStatus, &d.CustomerName, &d.DeliveryDate,
			&d.RecipeID, &d.RecipeName, &d.Format, &d.Quantity,
		); err != nil {
			return nil, fmt.Errorf("ledger.OpenDemand scan: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
