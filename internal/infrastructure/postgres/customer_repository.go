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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `id, name, tax_id, email, phone, address, created_at, updated_at`

// CustomerRepo implementación de CustomerRepository sobre PostgreSQL (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador de clientes. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un cliente nuevo.
func (r *CustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	query := `
		INSERT INTO customers (` + customerColumns + `, name_normalized)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.Name, c.TaxID, c.Email, c.Phone, c.Address, c.CreatedAt, c.UpdatedAt,
		search.Normalize(c.Name),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID; nil si no existe.
func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	var c entity.Customer
	err := r.q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.TaxID, &c.Email, &c.Phone, &c.Address, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// List busca por nombre sin distinguir mayúsculas ni acentos, con paginación.
func (r *CustomerRepo) List(ctx context.Context, searchTerm string, limit, offset int) ([]*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers`
	args := []any{}
	if searchTerm != "" {
		query += ` WHERE name_normalized LIKE '%' || $1 || '%'`
		args = append(args, search.Normalize(searchTerm))
	}
	query += fmt.Sprintf(` ORDER BY name LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var out []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.TaxID, &c.Email, &c.Phone, &c.Address, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

// Update persiste los datos de contacto del cliente.
func (r *CustomerRepo) Update(ctx context.Context, c *entity.Customer) error {
	query := `
		UPDATE customers
		SET name = $2, tax_id = $3, email = $4, phone = $5, address = $6, updated_at = $7, name_normalized = $8
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		c.ID, c.Name, c.TaxID, c.Email, c.Phone, c.Address, c.UpdatedAt,
		search.Normalize(c.Name),
	)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
