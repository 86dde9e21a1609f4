package repository

import (
	"context"

	"github.com/jhoicas/Cerveceria-api/internal/domain/entity"
)

// RecipeRepository puerto de persistencia para recetas (incluye ingredientes y precios).
type RecipeRepository interface {
	Create(ctx context.Context, r *entity.Recipe) error
	GetByID(ctx context.Context, id string) (*entity.Recipe, error)
	List(ctx context.Context, onlyActive bool) ([]*entity.Recipe, error)
	Update(ctx context.Context, r *entity.Recipe) error
	// MaxVersionByName devuelve la versión más alta registrada para el nombre (0 si no existe).
	MaxVersionByName(ctx context.Context, name string) (int, error)
}
