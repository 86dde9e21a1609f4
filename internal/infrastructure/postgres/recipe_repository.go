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

var _ repository.RecipeRepository = (*RecipeRepo)(nil)

const recipeColumns = `id, name, style, version, batch_size, target_og, target_fg, target_abv, tax_rate, default_format, active, created_at, updated_at`

// RecipeRepo implementación de RecipeRepository sobre PostgreSQL (usable con pool o tx).
// Carga siempre ingredientes y precios por formato junto con la cabecera.
type RecipeRepo struct {
	q Querier
}

// NewRecipeRepository construye el adaptador de recetas. Pasar pool o tx (Querier).
func NewRecipeRepository(q Querier) *RecipeRepo {
	return &RecipeRepo{q: q}
}

// Create persiste la receta con ingredientes y precios.
func (r *RecipeRepo) Create(ctx context.Context, rec *entity.Recipe) error {
	query := `
		INSERT INTO recipes (` + recipeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		rec.ID, rec.Name, rec.Style, rec.Version, rec.BatchSize,
		rec.TargetOG, rec.TargetFG, rec.TargetABV, rec.TaxRate, rec.DefaultFormat,
		rec.Active, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert recipe: %w", err)
	}
	if err := r.insertIngredients(ctx, rec); err != nil {
		return err
	}
	return r.replacePrices(ctx, rec)
}

// GetByID obtiene una receta con ingredientes y precios; nil si no existe.
func (r *RecipeRepo) GetByID(ctx context.Context, id string) (*entity.Recipe, error) {
	query := `SELECT ` + recipeColumns + ` FROM recipes WHERE id = $1`
	rec, err := scanRecipe(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get recipe: %w", err)
	}
	if err := r.loadChildren(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// List lista recetas (con ingredientes y precios), opcionalmente solo activas.
func (r *RecipeRepo) List(ctx context.Context, onlyActive bool) ([]*entity.Recipe, error) {
	query := `SELECT ` + recipeColumns + ` FROM recipes`
	if onlyActive {
		query += ` WHERE active`
	}
	query += ` ORDER BY name, version DESC`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	defer rows.Close()

	var out []*entity.Recipe
	for rows.Next() {
		rec, err := scanRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, rec := range out {
		if err := r.loadChildren(ctx, rec); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Update persiste cabecera y precios. Los ingredientes de una receta no se
// editan después de creada: para cambiarlos se clona una nueva versión.
func (r *RecipeRepo) Update(ctx context.Context, rec *entity.Recipe) error {
	query := `
		UPDATE recipes
		SET style = $2, batch_size = $3, target_og = $4, target_fg = $5, target_abv = $6,
		    tax_rate = $7, default_format = $8, active = $9, updated_at = $10
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		rec.ID, rec.Style, rec.BatchSize, rec.TargetOG, rec.TargetFG, rec.TargetABV,
		rec.TaxRate, rec.DefaultFormat, rec.Active, rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update recipe: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return r.replacePrices(ctx, rec)
}

// MaxVersionByName devuelve la versión más alta registrada para el nombre (0 si no existe).
func (r *RecipeRepo) MaxVersionByName(ctx context.Context, name string) (int, error) {
	var v int
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(MAX(version), 0) FROM recipes WHERE name = $1`, name,
	).Scan(&v)
	if err != nil {
		return 0, fmt.Errorf("max recipe version: %w", err)
	}
	return v, nil
}

func (r *RecipeRepo) insertIngredients(ctx context.Context, rec *entity.Recipe) error {
	for _, ing := range rec.Ingredients {
		_, err := r.q.Exec(ctx, `
			INSERT INTO recipe_ingredients (id, recipe_id, item_id, quantity, stage)
			VALUES ($1, $2, $3, $4, $5)`,
			ing.ID, ing.RecipeID, ing.ItemID, ing.Quantity, ing.Stage,
		)
		if err != nil {
			return fmt.Errorf("insert recipe ingredient: %w", err)
		}
	}
	return nil
}

func (r *RecipeRepo) replacePrices(ctx context.Context, rec *entity.Recipe) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM recipe_prices WHERE recipe_id = $1`, rec.ID); err != nil {
		return fmt.Errorf("delete recipe prices: %w", err)
	}
	for format, price := range rec.UnitPrices {
		_, err := r.q.Exec(ctx, `
			INSERT INTO recipe_prices (recipe_id, format, unit_price)
			VALUES ($1, $2, $3)`,
			rec.ID, format, price,
		)
		if err != nil {
			return fmt.Errorf("insert recipe price: %w", err)
		}
	}
	return nil
}

func (r *RecipeRepo) loadChildren(ctx context.Context, rec *entity.Recipe) error {
	rows, err := r.q.Query(ctx, `
		SELECT id, recipe_id, item_id, quantity, stage
		FROM recipe_ingredients WHERE recipe_id = $1`, rec.ID)
	if err != nil {
		return fmt.Errorf("list recipe ingredients: %w", err)
	}
	defer rows.Close()
	rec.Ingredients = rec.Ingredients[:0]
	for rows.Next() {
		var ing entity.RecipeIngredient
		if err := rows.Scan(&ing.ID, &ing.RecipeID, &ing.ItemID, &ing.Quantity, &ing.Stage); err != nil {
			return fmt.Errorf("scan recipe ingredient: %w", err)
		}
		rec.Ingredients = append(rec.Ingredients, ing)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	priceRows, err := r.q.Query(ctx,
		`SELECT format, unit_price FROM recipe_prices WHERE recipe_id = $1`, rec.ID)
	if err != nil {
		return fmt.Errorf("list recipe prices: %w", err)
	}
	defer priceRows.Close()
	rec.UnitPrices = map[entity.PackFormat]decimal.Decimal{}
	for priceRows.Next() {
		var format entity.PackFormat
		var price decimal.Decimal
		if err := priceRows.Scan(&format, &price); err != nil {
			return fmt.Errorf("scan recipe price: %w", err)
		}
		rec.UnitPrices[format] = price
	}
	return priceRows.Err()
}

func scanRecipe(row pgx.Row) (*entity.Recipe, error) {
	var rec entity.Recipe
	err := row.Scan(
		&rec.ID, &rec.Name, &rec.Style, &rec.Version, &rec.BatchSize,
		&rec.TargetOG, &rec.TargetFG, &rec.TargetABV, &rec.TaxRate, &rec.DefaultFormat,
		&rec.Active, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
