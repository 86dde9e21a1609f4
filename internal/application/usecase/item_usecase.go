package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Cerveceria-api/internal/application/dto"
	"github.com/jhoicas/Cerveceria-api/internal/domain"
	"github.com/jhoicas/Cerveceria-api/internal/domain/entity"
	"github.com/jhoicas/Cerveceria-api/internal/domain/repository"
)

// ItemUseCase casos de uso del catálogo de materias primas.
type ItemUseCase struct {
	itemRepo repository.InventoryItemRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(itemRepo repository.InventoryItemRepository) *ItemUseCase {
	return &ItemUseCase{itemRepo: itemRepo}
}

// Create registra un ítem de catálogo. El SKU debe ser único.
func (uc *ItemUseCase) Create(ctx context.Context, in dto.CreateItemRequest) (*entity.InventoryItem, error) {
	if in.SKU == "" || in.Name == "" || in.Unit == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.itemRepo.GetBySKU(ctx, in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	it := &entity.InventoryItem{
		ID:           uuid.New().String(),
		SKU:          in.SKU,
		Name:         in.Name,
		Category:     in.Category,
		Unit:         in.Unit,
		UnitCost:     in.UnitCost,
		ReorderPoint: in.ReorderPoint,
		ReorderQty:   in.ReorderQty,
		SupplierID:   in.SupplierID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if it.Category == "" {
		it.Category = entity.ItemCategoryOther
	}
	if err := uc.itemRepo.Create(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

// Update actualiza nombre, categoría y parámetros de reorden.
func (uc *ItemUseCase) Update(ctx context.Context, id string, in dto.UpdateItemRequest) (*entity.InventoryItem, error) {
	it, err := uc.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		it.Name = *in.Name
	}
	if in.Category != nil {
		it.Category = *in.Category
	}
	if in.ReorderPoint != nil {
		it.ReorderPoint = *in.ReorderPoint
	}
	if in.ReorderQty != nil {
		it.ReorderQty = *in.ReorderQty
	}
	if in.SupplierID != nil {
		it.SupplierID = in.SupplierID
	}
	it.UpdatedAt = time.Now()
	if err := uc.itemRepo.Update(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

// GetByID devuelve un ítem.
func (uc *ItemUseCase) GetByID(ctx context.Context, id string) (*entity.InventoryItem, error) {
	it, err := uc.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, domain.ErrNotFound
	}
	return it, nil
}

// List lista el catálogo completo.
func (uc *ItemUseCase) List(ctx context.Context) ([]*entity.InventoryItem, error) {
	return uc.itemRepo.List(ctx)
}
