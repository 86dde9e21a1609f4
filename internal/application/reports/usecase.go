// Package reports arma los documentos descargables: remisión de despacho en
// PDF y reporte de posiciones de inventario en XLSX.
package reports

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cerveceria-api/internal/application/dto"
	"github.com/jhoicas/Cerveceria-api/internal/application/inventory"
	"github.com/jhoicas/Cerveceria-api/internal/domain"
	"github.com/jhoicas/Cerveceria-api/internal/domain/entity"
	"github.com/jhoicas/Cerveceria-api/internal/domain/repository"
)

// DispatchLine es un renglón de la remisión ya resuelto a nombre de producto.
type DispatchLine struct {
	ProductName string
	Format      entity.PackFormat
	Quantity    decimal.Decimal
}

// DispatchNotePDFGenerator produce los bytes del PDF de remisión.
type DispatchNotePDFGenerator interface {
	GenerateDispatchNote(ctx context.Context, order *entity.Order, customer *entity.Customer, lines []DispatchLine) ([]byte, error)
}

// PositionReportGenerator produce los bytes del XLSX de posiciones.
type PositionReportGenerator interface {
	GeneratePositionsXLSX(ctx context.Context, items []dto.ItemPositionDTO, finished []dto.FinishedPositionDTO) ([]byte, error)
}

// UseCase orquesta la generación de reportes.
type UseCase struct {
	orders    repository.OrderRepository
	customers repository.CustomerRepository
	recipes   repository.RecipeRepository
	positions *inventory.PositionsUseCase
	pdfGen    DispatchNotePDFGenerator
	xlsxGen   PositionReportGenerator
}

// NewUseCase construye el caso de uso de reportes.
func NewUseCase(
	orders repository.OrderRepository,
	customers repository.CustomerRepository,
	recipes repository.RecipeRepository,
	positions *inventory.PositionsUseCase,
	pdfGen DispatchNotePDFGenerator,
	xlsxGen PositionReportGenerator,
) *UseCase {
	return &UseCase{
		orders:    orders,
		customers: customers,
		recipes:   recipes,
		positions: positions,
		pdfGen:    pdfGen,
		xlsxGen:   xlsxGen,
	}
}

// DispatchNotePDF genera la remisión de un pedido. Un borrador o un pedido
// cancelado no tiene mercancía que remitir.
func (uc *UseCase) DispatchNotePDF(ctx context.Context, orderID string) ([]byte, string, error) {
	order, err := uc.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, "", err
	}
	if order == nil {
		return nil, "", domain.ErrNotFound
	}
	if order.Status == entity.OrderDraft || order.Status == entity.OrderCancelled {
		return nil, "", fmt.Errorf("%w: el pedido %s no admite remisión en estado %s",
			domain.ErrPreconditionFailed, order.Number, order.Status)
	}

	customer, err := uc.customers.GetByID(ctx, order.CustomerID)
	if err != nil {
		return nil, "", err
	}
	if customer == nil {
		return nil, "", domain.ErrNotFound
	}

	lines := make([]DispatchLine, 0, len(order.Lines))
	for _, l := range order.Lines {
		recipe, err := uc.recipes.GetByID(ctx, l.RecipeID)
		if err != nil {
			return nil, "", err
		}
		name := l.RecipeID
		if recipe != nil {
			name = recipe.Name
		}
		lines = append(lines, DispatchLine{
			ProductName: name,
			Format:      l.Format,
			Quantity:    l.Quantity,
		})
	}

	pdf, err := uc.pdfGen.GenerateDispatchNote(ctx, order, customer, lines)
	if err != nil {
		return nil, "", err
	}
	return pdf, fmt.Sprintf("remision-%s.pdf", order.Number), nil
}

// PositionsXLSX genera el reporte de posiciones de materia prima y producto
// terminado al instante de la llamada.
func (uc *UseCase) PositionsXLSX(ctx context.Context) ([]byte, string, error) {
	items, err := uc.positions.PositionForAll(ctx)
	if err != nil {
		return nil, "", err
	}
	finished, err := uc.positions.FinishedPositions(ctx, "")
	if err != nil {
		return nil, "", err
	}
	book, err := uc.xlsxGen.GeneratePositionsXLSX(ctx, items, finished)
	if err != nil {
		return nil, "", err
	}
	return book, "posiciones-inventario.xlsx", nil
}
