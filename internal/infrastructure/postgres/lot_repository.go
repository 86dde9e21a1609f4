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

var _ repository.LotRepository = (*LotRepo)(nil)

const lotColumns = `id, item_id, lot_number, quantity_on_hand, unit_cost, received_at, expires_at, location, notes, created_at, updated_at`

// LotRepo implementación de LotRepository sobre PostgreSQL (usable con pool o tx).
type LotRepo struct {
	q Querier
}

// NewLotRepository construye el adaptador de lotes de materia prima. Pasar pool o tx (Querier).
func NewLotRepository(q Querier) *LotRepo {
	return &LotRepo{q: q}
}

// Create persiste un lote recibido.
func (r *LotRepo) Create(ctx context.Context, l *entity.Lot) error {
	query := `
		INSERT INTO lots (` + lotColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		l.ID, l.ItemID, l.LotNumber, l.QuantityOnHand, l.UnitCost,
		l.ReceivedAt, l.ExpiresAt, l.Location, l.Notes, l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert lot: %w", err)
	}
	return nil
}

// GetByID obtiene un lote por ID; nil si no existe.
func (r *LotRepo) GetByID(ctx context.Context, id string) (*entity.Lot, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate obtiene un lote bloqueando la fila (SELECT FOR UPDATE).
func (r *LotRepo) GetForUpdate(ctx context.Context, id string) (*entity.Lot, error) {
	return r.get(ctx, id, true)
}

func (r *LotRepo) get(ctx context.Context, id string, forUpdate bool) (*entity.Lot, error) {
	query := `SELECT ` + lotColumns + ` FROM lots WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	l, err := scanLot(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lot: %w", err)
	}
	return l, nil
}

// ListOpenByItem lotes con on-hand > 0 y no vencidos, ordenados para consumo
// FEFO: primero por vencimiento más próximo (NULL al final), luego por recepción.
// Con forUpdate bloquea las filas para consumo transaccional.
func (r *LotRepo) ListOpenByItem(ctx context.Context, itemID string, forUpdate bool) ([]*entity.Lot, error) {
	query := `
		SELECT ` + lotColumns + `
		FROM lots
		WHERE item_id = $1
		  AND quantity_on_hand > 0
		  AND (expires_at IS NULL OR expires_at >= now())
		ORDER BY expires_at NULLS LAST, received_at`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	return r.list(ctx, query, itemID)
}

// ListByItem todos los lotes del ítem, más recientes primero.
func (r *LotRepo) ListByItem(ctx context.Context, itemID string) ([]*entity.Lot, error) {
	query := `SELECT ` + lotColumns + ` FROM lots WHERE item_id = $1 ORDER BY received_at DESC`
	return r.list(ctx, query, itemID)
}

func (r *LotRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Lot, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list lots: %w", err)
	}
	defer rows.Close()

	var out []*entity.Lot
	for rows.Next() {
		l, err := scanLot(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lot: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// UpdateQuantity escribe la proyección on-hand del lote tras aplicar un movimiento.
// El CHECK de DB (quantity_on_hand >= 0) respalda el invariante del libro.
func (r *LotRepo) UpdateQuantity(ctx context.Context, l *entity.Lot) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE lots SET quantity_on_hand = $2, updated_at = now() WHERE id = $1`,
		l.ID, l.QuantityOnHand,
	)
	if err != nil {
		if isCheckViolation(err) {
			return domain.ErrInsufficientStock
		}
		return fmt.Errorf("update lot quantity: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanLot(row pgx.Row) (*entity.Lot, error) {
	var l entity.Lot
	err := row.Scan(
		&l.ID, &l.ItemID, &l.LotNumber, &l.QuantityOnHand, &l.UnitCost,
		&l.ReceivedAt, &l.ExpiresAt, &l.Location, &l.Notes, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}
