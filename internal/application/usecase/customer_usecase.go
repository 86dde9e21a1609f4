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

// CustomerUseCase casos de uso de clientes.
type CustomerUseCase struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(customerRepo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{customerRepo: customerRepo}
}

// Create registra un cliente.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CustomerRequest) (*entity.Customer, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	c := &entity.Customer{
		ID:        uuid.New().String(),
		Name:      in.Name,
		TaxID:     in.TaxID,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.customerRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Update actualiza los datos de contacto de un cliente.
func (uc *CustomerUseCase) Update(ctx context.Context, id string, in dto.CustomerRequest) (*entity.Customer, error) {
	c, err := uc.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		c.Name = in.Name
	}
	c.TaxID = in.TaxID
	c.Email = in.Email
	c.Phone = in.Phone
	c.Address = in.Address
	c.UpdatedAt = time.Now()
	if err := uc.customerRepo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// GetByID devuelve un cliente.
func (uc *CustomerUseCase) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	c, err := uc.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

// List busca clientes por nombre (búsqueda sin acentos) con paginación.
func (uc *CustomerUseCase) List(ctx context.Context, search string, page dto.PageRequest) ([]*entity.Customer, error) {
	limit, offset := page.LimitOffset()
	return uc.customerRepo.List(ctx, search, limit, offset)
}
