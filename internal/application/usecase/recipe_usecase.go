// Package usecase agrupa los casos de uso de catálogo: recetas, ítems de
// inventario, tanques, clientes y proveedores.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cerveceria-api/internal/application/dto"
	"github.com/jhoicas/Cerveceria-api/internal/domain"
	"github.com/jhoicas/Cerveceria-api/internal/domain/entity"
	"github.com/jhoicas/Cerveceria-api/internal/domain/repository"
)

// RecipeUseCase casos de uso de recetas.
type RecipeUseCase struct {
	recipeRepo repository.RecipeRepository
	itemRepo   repository.InventoryItemRepository
}

// NewRecipeUseCase construye el caso de uso.
func NewRecipeUseCase(recipeRepo repository.RecipeRepository, itemRepo repository.InventoryItemRepository) *RecipeUseCase {
	return &RecipeUseCase{recipeRepo: recipeRepo, itemRepo: itemRepo}
}

// Create crea una receta versión 1 con sus ingredientes.
func (uc *RecipeUseCase) Create(ctx context.Context, in dto.CreateRecipeRequest) (*entity.Recipe, error) {
	if in.Name == "" || !in.BatchSize.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	format := entity.FormatKeg50
	if in.DefaultFormat != "" {
		f, err := entity.ParsePackFormat(in.DefaultFormat)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		format = f
	}
	taxRate := decimal.Zero
	if in.TaxRate != nil {
		taxRate = *in.TaxRate
	}
	now := time.Now()
	r := &entity.Recipe{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Style:         in.Style,
		Version:       1,
		BatchSize:     in.BatchSize,
		TargetOG:      in.TargetOG,
		TargetFG:      in.TargetFG,
		TargetABV:     in.TargetABV,
		TaxRate:       taxRate,
		DefaultFormat: format,
		UnitPrices:    map[entity.PackFormat]decimal.Decimal{},
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for f, p := range in.UnitPrices {
		pf, err := entity.ParsePackFormat(f)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		r.UnitPrices[pf] = p
	}
	for _, ing := range in.Ingredients {
		if ing.ItemID == "" || !ing.Quantity.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		item, err := uc.itemRepo.GetByID(ctx, ing.ItemID)
		if err != nil {
			return nil, err
		}
		if item == nil {
			return nil, domain.ErrNotFound
		}
		r.Ingredients = append(r.Ingredients, entity.RecipeIngredient{
			ID:       uuid.New().String(),
			RecipeID: r.ID,
			ItemID:   ing.ItemID,
			Quantity: ing.Quantity,
			Stage:    ing.Stage,
		})
	}
	if err := uc.recipeRepo.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// CloneVersion clona una receta como nueva versión independiente (versionado
// histórico explícito: la única forma de versionar recetas). La receta origen
// se marca inactiva.
func (uc *RecipeUseCase) CloneVersion(ctx context.Context, recipeID string) (*entity.Recipe, error) {
	src, err := uc.recipeRepo.GetByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if src == nil {
		return nil, domain.ErrNotFound
	}
	maxVer, err := uc.recipeRepo.MaxVersionByName(ctx, src.Name)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	clone := &entity.Recipe{
		ID:            uuid.New().String(),
		Name:          src.Name,
		Style:         src.Style,
		Version:       maxVer + 1,
		BatchSize:     src.BatchSize,
		TargetOG:      src.TargetOG,
		TargetFG:      src.TargetFG,
		TargetABV:     src.TargetABV,
		TaxRate:       src.TaxRate,
		DefaultFormat: src.DefaultFormat,
		UnitPrices:    make(map[entity.PackFormat]decimal.Decimal, len(src.UnitPrices)),
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for f, p := range src.UnitPrices {
		clone.UnitPrices[f] = p
	}
	for _, ing := range src.Ingredients {
		clone.Ingredients = append(clone.Ingredients, entity.RecipeIngredient{
			ID:       uuid.New().String(),
			RecipeID: clone.ID,
			ItemID:   ing.ItemID,
			Quantity: ing.Quantity,
			Stage:    ing.Stage,
		})
	}
	if err := uc.recipeRepo.Create(ctx, clone); err != nil {
		return nil, err
	}

	src.Active = false
	src.UpdatedAt = now
	if err := uc.recipeRepo.Update(ctx, src); err != nil {
		return nil, err
	}
	return clone, nil
}

// GetByID devuelve una receta con ingredientes.
func (uc *RecipeUseCase) GetByID(ctx context.Context, id string) (*entity.Recipe, error) {
	r, err := uc.recipeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	return r, nil
}

// List lista recetas.
func (uc *RecipeUseCase) List(ctx context.Context, onlyActive bool) ([]*entity.Recipe, error) {
	return uc.recipeRepo.List(ctx, onlyActive)
}
