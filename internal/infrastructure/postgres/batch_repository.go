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

var _ repository.BatchRepository = (*BatchRepo)(nil)

const batchColumns = `id, number, recipe_id, vessel_id, status, batch_size, planned_date, brew_date, ready_date, completed_at, packaged_at, actual_volume, original_gravity, final_gravity, abv, notes, created_at, updated_at`

// BatchRepo implementación de BatchRepository sobre PostgreSQL (usable con pool o tx).
type BatchRepo struct {
	q Querier
}

// NewBatchRepository construye el adaptador de lotes. Pasar pool o tx (Querier).
func NewBatchRepository(q Querier) *BatchRepo {
	return &BatchRepo{q: q}
}

// Create persiste un lote nuevo.
func (r *BatchRepo) Create(ctx context.Context, b *entity.Batch) error {
	query := `
		INSERT INTO batches (` + batchColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.q.Exec(ctx, query,
		b.ID, b.Number, b.RecipeID, b.VesselID, b.Status, b.BatchSize,
		b.PlannedDate, b.BrewDate, b.ReadyDate, b.CompletedAt, b.PackagedAt,
		b.ActualVolume, b.OriginalGravity, b.FinalGravity, b.ABV,
		b.Notes, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert batch: %w", err)
	}
	return nil
}

// GetByID obtiene un lote por ID; nil si no existe.
func (r *BatchRepo) GetByID(ctx context.Context, id string) (*entity.Batch, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate obtiene un lote bloqueando la fila (SELECT FOR UPDATE).
func (r *BatchRepo) GetForUpdate(ctx context.Context, id string) (*entity.Batch, error) {
	return r.get(ctx, id, true)
}

func (r *BatchRepo) get(ctx context.Context, id string, forUpdate bool) (*entity.Batch, error) {
	query := `SELECT ` + batchColumns + ` FROM batches WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	b, err := scanBatch(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get batch: %w", err)
	}
	return b, nil
}

// List lista lotes, opcionalmente filtrando por estado, más recientes primero.
func (r *BatchRepo) List(ctx context.Context, status string, limit, offset int) ([]*entity.Batch, error) {
	query := `SELECT ` + batchColumns + ` FROM batches`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}
	defer rows.Close()

	var out []*entity.Batch
	for rows.Next() {
		b, err := scanBatch(rows)
		if err != nil {
			return nil, fmt.Errorf("scan batch: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// Update persiste los campos mutables del lote (sin tocar el estado).
func (r *BatchRepo) Update(ctx context.Context, b *entity.Batch) error {
	query := `
		UPDATE batches
		SET vessel_id = $2, batch_size = $3, planned_date = $4, ready_date = $5,
		    actual_volume = $6, original_gravity = $7, final_gravity = $8, abv = $9,
		    notes = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		b.ID, b.VesselID, b.BatchSize, b.PlannedDate, b.ReadyDate,
		b.ActualVolume, b.OriginalGravity, b.FinalGravity, b.ABV,
		b.Notes, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update batch: %w", err)
	}
	return nil
}

// UpdateStatus escribe el nuevo estado con guarda optimista sobre el estado previo.
// Cero filas afectadas significa que otro escritor ganó la carrera.
func (r *BatchRepo) UpdateStatus(ctx context.Context, id string, from, to entity.BatchStatus, b *entity.Batch) (int64, error) {
	query := `
		UPDATE batches
		SET status = $3, vessel_id = $4, brew_date = $5, completed_at = $6, packaged_at = $7, updated_at = $8
		WHERE id = $1 AND status = $2`
	cmd, err := r.q.Exec(ctx, query,
		id, from, to, b.VesselID, b.BrewDate, b.CompletedAt, b.PackagedAt, b.UpdatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("update batch status: %w", err)
	}
	return cmd.RowsAffected(), nil
}

func scanBatch(row pgx.Row) (*entity.Batch, error) {
	var b entity.Batch
	err := row.Scan(
		&b.ID, &b.Number, &b.RecipeID, &b.VesselID, &b.Status, &b.BatchSize,
		&b.PlannedDate, &b.BrewDate, &b.ReadyDate, &b.CompletedAt, &b.PackagedAt,
		&b.ActualVolume, &b.OriginalGravity, &b.FinalGravity, &b.ABV,
		&b.Notes, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
