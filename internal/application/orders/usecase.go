// Package orders implementa los casos de uso de pedidos de cliente: creación,
// edición de renglones en borrador (con recálculo transaccional de totales) y
// alistamiento (asignación de producto terminado con reserva).
package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cerveceria-api/internal/application/dto"
	"github.com/jhoicas/Cerveceria-api/internal/application/ports"
	"github.com/jhoicas/Cerveceria-api/internal/domain"
	"github.com/jhoicas/Cerveceria-api/internal/domain/entity"
	"github.com/jhoicas/Cerveceria-api/internal/domain/repository"
)

// Config parámetros de numeración e impuestos para pedidos.
type Config struct {
	NumberPrefix string          // ej. "SO"
	DefaultTax   decimal.Decimal // IVA por defecto si la receta no define tarifa
}

// OrderUseCase casos de uso de pedidos.
type OrderUseCase struct {
	txRunner     ports.TxRunner
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	recipeRepo   repository.RecipeRepository
	cfg          Config
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	txRunner ports.TxRunner,
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	recipeRepo repository.RecipeRepository,
	cfg Config,
) *OrderUseCase {
	return &OrderUseCase{
		txRunner:     txRunner,
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		recipeRepo:   recipeRepo,
		cfg:          cfg,
	}
}

// Create crea un pedido en borrador con sus renglones. El número sale del
// generador de consecutivos dentro de la misma transacción; los totales se
// derivan de los renglones antes de persistir.
func (uc *OrderUseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*entity.Order, error) {
	if in.CustomerID == "" || len(in.Lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customerRepo.GetByID(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	order := &entity.Order{
		ID:           uuid.New().String(),
		CustomerID:   in.CustomerID,
		Status:       entity.OrderDraft,
		OrderDate:    now,
		DeliveryDate: in.DeliveryDate,
		Notes:        in.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	lines, err := uc.buildLines(ctx, order.ID, in.Lines)
	if err != nil {
		return nil, err
	}
	order.Lines = lines
	order.RecalcTotals()

	err = uc.txRunner.Run(ctx, func(r ports.Repos) error {
		seq, err := r.Sequences.Next(ctx, uc.cfg.NumberPrefix)
		if err != nil {
			return err
		}
		order.Number = fmt.Sprintf("%s-%d-%04d", uc.cfg.NumberPrefix, now.Year(), seq)
		return r.Orders.Create(ctx, order)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// ReplaceLines reemplaza los renglones de un pedido en borrador y recalcula los
// totales en la misma transacción. Fuera de draft los renglones son inmutables.
func (uc *OrderUseCase) ReplaceLines(ctx context.Context, orderID string, in []dto.OrderLineRequest) (*entity.Order, error) {
	if orderID == "" || len(in) == 0 {
		return nil, domain.ErrInvalidInput
	}
	lines, err := uc.buildLines(ctx, orderID, in)
	if err != nil {
		return nil, err
	}

	var result *entity.Order
	err = uc.txRunner.Run(ctx, func(r ports.Repos) error {
		o, err := r.Orders.GetForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if o == nil {
			return domain.ErrNotFound
		}
		if o.Status != entity.OrderDraft {
			return domain.ErrPreconditionFailed
		}
		o.Lines = lines
		o.RecalcTotals()
		o.UpdatedAt = time.Now()
		if err := r.Orders.Update(ctx, o); err != nil {
			return err
		}
		result = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// GetByID devuelve un pedido con renglones.
func (uc *OrderUseCase) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	o, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	return o, nil
}

// List lista pedidos, opcionalmente por estado.
func (uc *OrderUseCase) List(ctx context.Context, status string, limit, offset int) ([]*entity.Order, error) {
	if status != "" {
		if _, err := entity.ParseOrderStatus(status); err != nil {
			return nil, domain.ErrInvalidInput
		}
	}
	return uc.orderRepo.List(ctx, status, limit, offset)
}

func (uc *OrderUseCase) buildLines(ctx context.Context, orderID string, in []dto.OrderLineRequest) ([]entity.OrderLine, error) {
	lines := make([]entity.OrderLine, 0, len(in))
	for _, l := range in {
		format, err := entity.ParsePackFormat(l.Format)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		if !l.Quantity.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		recipe, err := uc.recipeRepo.GetByID(ctx, l.RecipeID)
		if err != nil {
			return nil, err
		}
		if recipe == nil {
			return nil, domain.ErrNotFound
		}
		price := l.UnitPrice
		if price == nil || price.IsZero() {
			p := recipe.UnitPrice(format)
			price = &p
		}
		tax := recipe.TaxRate
		if tax.IsZero() {
			tax = uc.cfg.DefaultTax
		}
		lines = append(lines, entity.OrderLine{
			ID:        uuid.New().String(),
			OrderID:   orderID,
			RecipeID:  l.RecipeID,
			Format:    format,
			Quantity:  l.Quantity,
			UnitPrice: *price,
			TaxRate:   tax,
		})
	}
	return lines, nil
}
