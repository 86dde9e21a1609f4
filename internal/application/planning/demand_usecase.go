// Package planning implementa el agregador de demanda: resume los renglones de
// pedidos comprometidos por (receta, formato) y marca la demanda que el producto
// terminado disponible no alcanza a cubrir. Solo lectura, sin efectos.
package planning

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cerveceria-api/internal/application/dto"
	domaininv "github.com/jhoicas/Cerveceria-api/internal/domain/inventory"
	"github.com/jhoicas/Cerveceria-api/internal/domain/repository"
)

// DemandUseCase arma la vista de demanda para planeación.
type DemandUseCase struct {
	ledgerRepo repository.LedgerRepository
}

// NewDemandUseCase construye el caso de uso.
func NewDemandUseCase(ledgerRepo repository.LedgerRepository) *DemandUseCase {
	return &DemandUseCase{ledgerRepo: ledgerRepo}
}

// DemandView agrupa la demanda comprometida (pedidos en confirmed/picking/dispatched
// con entrega futura o sin fecha) por (receta, formato) y la compara contra el
// disponible de producto terminado. Cero pedidos o cero stock producen una vista
// vacía, no un error.
func (uc *DemandUseCase) DemandView(ctx context.Context) (*dto.DemandViewDTO, error) {
	now := time.Now()
	rows, err := uc.ledgerRepo.OpenDemand(ctx, now)
	if err != nil {
		return nil, err
	}
	finished, err := uc.ledgerRepo.FinishedAggregates(ctx, "")
	if err != nil {
		return nil, err
	}

	type key struct {
		recipeID string
		format   string
	}
	availableByKey := make(map[key]decimal.Decimal, len(finished))
	for _, f := range finished {
		k := key{f.RecipeID, string(f.Format)}
		p := domaininv.ComputeFinishedPosition(f.RecipeID, string(f.Format), f.OnHand, f.Reserved)
		availableByKey[k] = availableByKey[k].Add(p.Available)
	}

	groups := make(map[key]*dto.DemandGroupDTO)
	ordersSeen := make(map[string]bool)
	groupOrders := make(map[key]map[string]bool)
	view := &dto.DemandViewDTO{
		UpcomingOrders:  []dto.UpcomingOrderDTO{},
		DemandByProduct: []dto.DemandGroupDTO{},
		Unfulfillable:   []dto.DemandGroupDTO{},
	}

	for _, row := range rows {
		if !ordersSeen[row.OrderID] {
			ordersSeen[row.OrderID] = true
			view.UpcomingOrders = append(view.UpcomingOrders, dto.UpcomingOrderDTO{
				OrderID:      row.OrderID,
				Number:       row.OrderNumber,
				Status:       string(row.OrderStatus),
				CustomerName: row.CustomerName,
				DeliveryDate: row.DeliveryDate,
			})
		}
		k := key{row.RecipeID, string(row.Format)}
		g, ok := groups[k]
		if !ok {
			g = &dto.DemandGroupDTO{
				RecipeID:   row.RecipeID,
				RecipeName: row.RecipeName,
				Format:     string(row.Format),
				Available:  availableByKey[k],
			}
			groups[k] = g
			groupOrders[k] = make(map[string]bool)
		}
		g.Demand = g.Demand.Add(row.Quantity)
		// Pedidos distintos por grupo: dos renglones del mismo pedido cuentan uno.
		if !groupOrders[k][row.OrderID] {
			groupOrders[k][row.OrderID] = true
			g.Orders++
		}
	}

	for _, g := range groups {
		g.Shortfall = g.Demand.Sub(g.Available)
		view.DemandByProduct = append(view.DemandByProduct, *g)
		if g.Demand.GreaterThan(g.Available) {
			view.Unfulfillable = append(view.Unfulfillable, *g)
		}
	}

	sort.Slice(view.DemandByProduct, func(i, j int) bool {
		a, b := view.DemandByProduct[i], view.DemandByProduct[j]
		if a.RecipeName != b.RecipeName {
			return a.RecipeName < b.RecipeName
		}
		return a.Format < b.Format
	})
	sort.Slice(view.Unfulfillable, func(i, j int) bool {
		return view.Unfulfillable[i].Shortfall.GreaterThan(view.Unfulfillable[j].Shortfall)
	})
	sort.Slice(view.UpcomingOrders, func(i, j int) bool {
		a, b := view.UpcomingOrders[i], view.UpcomingOrders[j]
		switch {
		case a.DeliveryDate == nil && b.DeliveryDate == nil:
			return a.Number < b.Number
		case a.DeliveryDate == nil:
			return false
		case b.DeliveryDate == nil:
			return true
		}
		return a.DeliveryDate.Before(*b.DeliveryDate)
	})
	return view, nil
}
