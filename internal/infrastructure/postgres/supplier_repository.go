package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Cerveceria-api/internal/domain"
	"github.com/jhoicas/Cerveceria-api/internal/domain/entity"
	"github.com/jhoicas/Cerveceria-api/internal/domain/repository"
	"github.com/jhoicas/Cerveceria-api/pkg/search"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

const supplierColumns = `id, name, tax_id, email, phone, address, lead_time_days, created_at, updated_at`

// SupplierRepo implementación de SupplierRepository sobre PostgreSQL (usable con pool o tx).
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador de proveedores. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create persiste un proveedor nuevo.
func (r *SupplierRepo) Create(ctx context.Context, s *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (` + supplierColumns + `, name_normalized)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.Name, s.TaxID, s.Email, s.Phone, s.Address, s.LeadTimeDays,
		s.CreatedAt, s.UpdatedAt, search.Normalize(s.Name),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID; nil si no existe.
func (r *SupplierRepo) GetByID(ctx context.Context, id string) (*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE id = $1`
	var s entity.Supplier
	err := r.q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.TaxID, &s.Email, &s.Phone, &s.Address, &s.LeadTimeDays,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// List busca por nombre sin distinguir mayúsculas ni acentos, con paginación.
func (r *SupplierRepo) List(ctx context.Context, searchTerm string, limit, offset int) ([]*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers`
	args := []any{}
	if searchTerm != "" {
		query += ` WHERE name_normalized LIKE '%' || $1 || '%'`
		args = append(args, search.Normalize(searchTerm))
	}
	query += fmt.Sprintf(` ORDER BY name LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()

	var out []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(
			&s.ID, &s.Name, &s.TaxID, &s.Email, &s.Phone, &s.Address, &s.LeadTimeDays,
			&s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}

// Update persiste los datos del proveedor.
func (r *SupplierRepo) Update(ctx context.Context, s *entity.Supplier) error {
	query := `
		UPDATE suppliers
		SET name = $2, tax_id = $3, email = $4, phone = $5, address = $6,
		    lead_time_days = $7, updated_at = $8, name_normalized = $9
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		s.ID, s.Name, s.TaxID, s.Email, s.Phone, s.Address,
		s.LeadTimeDays, s.UpdatedAt, search.Normalize(s.Name),
	)
	if err != nil {
		return fmt.Errorf("update supplier: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
