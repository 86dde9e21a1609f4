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

// SupplierUseCase casos de uso de proveedores.
type SupplierUseCase struct {
	supplierRepo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(supplierRepo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{supplierRepo: supplierRepo}
}

// Create registra un proveedor.
func (uc *SupplierUseCase) Create(ctx context.Context, in dto.SupplierRequest) (*entity.Supplier, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	s := &entity.Supplier{
		ID:           uuid.New().String(),
		Name:         in.Name,
		TaxID:        in.TaxID,
		Email:        in.Email,
		Phone:        in.Phone,
		Address:      in.Address,
		LeadTimeDays: in.LeadTimeDays,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.supplierRepo.Create(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Update actualiza los datos de un proveedor.
func (uc *SupplierUseCase) Update(ctx context.Context, id string, in dto.SupplierRequest) (*entity.Supplier, error) {
	s, err := uc.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		s.Name = in.Name
	}
	s.TaxID = in.TaxID
	s.Email = in.Email
	s.Phone = in.Phone
	s.Address = in.Address
	s.LeadTimeDays = in.LeadTimeDays
	s.UpdatedAt = time.Now()
	if err := uc.supplierRepo.Update(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// GetByID devuelve un proveedor.
func (uc *SupplierUseCase) GetByID(ctx context.Context, id string) (*entity.Supplier, error) {
	s, err := uc.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

// List busca proveedores por nombre con paginación.
func (uc *SupplierUseCase) List(ctx context.Context, search string, page dto.PageRequest) ([]*entity.Supplier, error) {
	limit, offset := page.LimitOffset()
	return uc.supplierRepo.List(ctx, search, limit, offset)
}
