// Package inventory expone el lado de lectura del libro de cantidades y los
// movimientos manuales de ajuste. Las posiciones son cómputo puro sobre el
// libro al instante de la lectura: sin mutación y sin caché entre escrituras.
package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/Cerveceria-api/internal/application/dto"
	"github.com/jhoicas/Cerveceria-api/internal/domain"
	domaininv "github.com/jhoicas/Cerveceria-api/internal/domain/inventory"
	"github.com/jhoicas/Cerveceria-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// PositionsUseCase consulta posiciones de materia prima y producto terminado.
type PositionsUseCase struct {
	ledgerRepo repository.LedgerRepository
}

// NewPositionsUseCase construye el caso de uso.
func NewPositionsUseCase(ledgerRepo repository.LedgerRepository) *PositionsUseCase {
	return &PositionsUseCase{ledgerRepo: ledgerRepo}
}

// PositionForItem devuelve la posición de un ítem: on-hand, asignado, disponible
// y proyectado. Disponible puede ser negativo (sobre-compromiso visible).
func (uc *PositionsUseCase) PositionForItem(ctx context.Context, itemID string) (*dto.ItemPositionDTO, error) {
	if itemID == "" {
		return nil, domain.ErrInvalidInput
	}
	aggs, err := uc.ledgerRepo.ItemAggregates(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if len(aggs) == 0 {
		return nil, domain.ErrNotFound
	}
	out := toItemPositionDTO(aggs[0])
	return &out, nil
}

// PositionForAll devuelve la posición de todos los ítems del catálogo.
func (uc *PositionsUseCase) PositionForAll(ctx context.Context) ([]dto.ItemPositionDTO, error) {
	aggs, err := uc.ledgerRepo.ItemAggregates(ctx, "")
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemPositionDTO, 0, len(aggs))
	for _, a := range aggs {
		out = append(out, toItemPositionDTO(a))
	}
	return out, nil
}

// FinishedPositions devuelve posiciones de producto terminado por (receta, formato).
// recipeID vacío = todas.
func (uc *PositionsUseCase) FinishedPositions(ctx context.Context, recipeID string) ([]dto.FinishedPositionDTO, error) {
	aggs, err := uc.ledgerRepo.FinishedAggregates(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.FinishedPositionDTO, 0, len(aggs))
	for _, a := range aggs {
		p := domaininv.ComputeFinishedPosition(a.RecipeID, string(a.Format), a.OnHand, a.Reserved)
		out = append(out, dto.FinishedPositionDTO{
			RecipeID:   p.RecipeID,
			RecipeName: a.RecipeName,
			Format:     p.Format,
			OnHand:     p.OnHand,
			Reserved:   p.Reserved,
			Available:  p.Available,
		})
	}
	return out, nil
}

func toItemPositionDTO(a repository.ItemAggregate) dto.ItemPositionDTO {
	// Consumo futuro más allá de lo asignado: hoy cero; allocated ya cubre todo
	// el consumo no iniciado (lotes planned y brewing).
	p := domaininv.ComputePosition(a.ItemID, a.OnHand, a.Allocated, a.Incoming, decimal.Zero)
	return dto.ItemPositionDTO{
		ItemID:    p.ItemID,
		SKU:       a.SKU,
		Name:      a.Name,
		Unit:      a.Unit,
		OnHand:    p.OnHand,
		Allocated: p.Allocated,
		Available: p.Available,
		Incoming:  a.Incoming,
		Projected: p.Projected,
		AsOf:      time.Now(),
	}
}
