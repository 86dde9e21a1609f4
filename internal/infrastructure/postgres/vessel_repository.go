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

var _ repository.VesselRepository = (*VesselRepo)(nil)

// VesselRepo implementación de VesselRepository sobre PostgreSQL (usable con pool o tx).
type VesselRepo struct {
	q Querier
}

// NewVesselRepository construye el adaptador de tanques. Pasar pool o tx (Querier).
func NewVesselRepository(q Querier) *VesselRepo {
	return &VesselRepo{q: q}
}

// Create persiste un tanque nuevo.
func (r *VesselRepo) Create(ctx context.Context, v *entity.Vessel) error {
	query := `
		INSERT INTO vessels (id, name, type, capacity, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query, v.ID, v.Name, v.Type, v.Capacity, v.Status, v.CreatedAt, v.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert vessel: %w", err)
	}
	return nil
}

// GetByID obtiene un tanque por ID; nil si no existe.
func (r *VesselRepo) GetByID(ctx context.Context, id string) (*entity.Vessel, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate obtiene un tanque bloqueando la fila (SELECT FOR UPDATE).
func (r *VesselRepo) GetForUpdate(ctx context.Context, id string) (*entity.Vessel, error) {
	return r.get(ctx, id, true)
}

func (r *VesselRepo) get(ctx context.Context, id string, forUpdate bool) (*entity.Vessel, error) {
	query := `SELECT id, name, type, capacity, status, created_at, updated_at FROM vessels WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var v entity.Vessel
	err := r.q.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.Name, &v.Type, &v.Capacity, &v.Status, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vessel: %w", err)
	}
	return &v, nil
}

// List lista todos los tanques por nombre.
func (r *VesselRepo) List(ctx context.Context) ([]*entity.Vessel, error) {
	query := `SELECT id, name, type, capacity, status, created_at, updated_at FROM vessels ORDER BY name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list vessels: %w", err)
	}
	defer rows.Close()

	var out []*entity.Vessel
	for rows.Next() {
		var v entity.Vessel
		if err := rows.Scan(&v.ID, &v.Name, &v.Type, &v.Capacity, &v.Status, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan vessel: %w", err)
		}
		out = append(out, &v)
	}
	return out, rows.Err()
}

// UpdateStatus escribe el estado operativo del tanque.
func (r *VesselRepo) UpdateStatus(ctx context.Context, id string, status entity.VesselStatus) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE vessels SET status = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("update vessel status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
