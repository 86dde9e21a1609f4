package production

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cerveceria-api/internal/application/ports"
	"github.com/jhoicas/Cerveceria-api/internal/domain"
	"github.com/jhoicas/Cerveceria-api/internal/domain/entity"
	"github.com/jhoicas/Cerveceria-api/pkg/logger"
)

// PackagingUseCase flujo de empaque: al entrar un lote a packaged crea las
// existencias de producto terminado y consume la materia prima de los lotes
// de inventario (más antiguos y próximos a vencer primero). Se invoca como
// hook post-commit del motor de transiciones y es idempotente: si el lote ya
// tiene producto terminado derivado, no hace nada.
type PackagingUseCase struct {
	txRunner ports.TxRunner
	log      *logger.Logger
}

// NewPackagingUseCase construye el caso de uso.
func NewPackagingUseCase(txRunner ports.TxRunner, log *logger.Logger) *PackagingUseCase {
	return &PackagingUseCase{txRunner: txRunner, log: log}
}

// Hook adapta PackageBatch a la firma de hook del motor de transiciones.
// El error se registra y no se propaga: la transición ya está confirmada.
func (uc *PackagingUseCase) Hook(ctx context.Context, b *entity.Batch) {
	if err := uc.PackageBatch(ctx, b.ID); err != nil {
		uc.log.Error().Err(err).Str("batch_id", b.ID).Msg("flujo de empaque falló")
	}
}

// PackageBatch crea producto terminado y asientos `consumed` para el lote dado.
//
// Unidades = floor(volumen real / litros del formato por defecto de la receta);
// el consumo de ingredientes se escala por tamaño real del lote frente al
// estándar de la receta y se aplica FEFO sobre los lotes de inventario sin dejar
// ninguno por debajo de cero.
func (uc *PackagingUseCase) PackageBatch(ctx context.Context, batchID string) error {
	if batchID == "" {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.Run(ctx, func(r ports.Repos) error {
		b, err := r.Batches.GetForUpdate(ctx, batchID)
		if err != nil {
			return err
		}
		if b == nil {
			return domain.ErrNotFound
		}
		if b.Status != entity.BatchPackaged {
			return domain.ErrPreconditionFailed
		}

		// Idempotencia: el hook puede re-dispararse por reintentos.
		existing, err := r.Finished.ListByBatch(ctx, b.ID)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			return nil
		}

		recipe, err := r.Recipes.GetByID(ctx, b.RecipeID)
		if err != nil {
			return err
		}
		if recipe == nil {
			return domain.ErrNotFound
		}

		volume := b.BatchSize
		if b.ActualVolume != nil && b.ActualVolume.GreaterThan(decimal.Zero) {
			volume = *b.ActualVolume
		}
		format := recipe.DefaultFormat
		if format == "" {
			format = entity.FormatKeg50
		}
		units := volume.Div(format.Liters()).Floor()
		if !units.GreaterThan(decimal.Zero) {
			return domain.ErrPreconditionFailed
		}

		now := time.Now()

		// Consumo de ingredientes escalado al tamaño real del lote.
		scale := decimal.NewFromInt(1)
		if recipe.BatchSize.GreaterThan(decimal.Zero) {
			scale = b.BatchSize.Div(recipe.BatchSize)
		}
		totalCost := decimal.Zero
		for _, ing := range recipe.Ingredients {
			required := ing.Quantity.Mul(scale)
			consumed, cost, err := uc.consumeFEFO(ctx, r, ing.ItemID, required, b.ID, now)
			if err != nil {
				return err
			}
			totalCost = totalCost.Add(cost)
			if consumed.LessThan(required) {
				uc.log.Warn().
					Str("batch_id", b.ID).
					Str("item_id", ing.ItemID).
					Str("faltante", required.Sub(consumed).String()).
					Msg("stock insuficiente al empacar; se consumió lo disponible")
			}
		}

		unitCost := decimal.Zero
		if units.GreaterThan(decimal.Zero) {
			unitCost = totalCost.Div(units).Round(4)
		}
		fg := &entity.FinishedGoods{
			ID:             uuid.New().String(),
			BatchID:        b.ID,
			RecipeID:       recipe.ID,
			Format:         format,
			QuantityOnHand: units,
			UnitCost:       unitCost,
			PackagedAt:     now,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := r.Finished.Create(ctx, fg); err != nil {
			return err
		}

		uc.log.Info().
			Str("batch_id", b.ID).
			Str("format", string(format)).
			Str("units", units.String()).
			Msg("lote empacado")
		return nil
	})
}

// consumeFEFO descuenta required del ítem recorriendo los lotes abiertos en orden
// de vencimiento/recepción, con un asiento `consumed` por lote tocado. Devuelve
// lo consumido y su costo; nunca deja un lote por debajo de cero.
func (uc *PackagingUseCase) consumeFEFO(
	ctx context.Context,
	r ports.Repos,
	itemID string,
	required decimal.Decimal,
	batchID string,
	now time.Time,
) (decimal.Decimal, decimal.Decimal, error) {
	lots, err := r.Lots.ListOpenByItem(ctx, itemID, true)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	remaining := required
	consumed := decimal.Zero
	cost := decimal.Zero
	for _, lot := range lots {
		if !remaining.GreaterThan(decimal.Zero) {
			break
		}
		take := decimal.Min(remaining, lot.QuantityOnHand)
		if !take.GreaterThan(decimal.Zero) {
			continue
		}
		mov := &entity.StockMovement{
			ID:        uuid.New().String(),
			LotID:     lot.ID,
			ItemID:    itemID,
			Type:      entity.MovementConsumed,
			Quantity:  take.Neg(),
			UnitCost:  lot.UnitCost,
			RefType:   entity.MovementRefBatch,
			RefID:     batchID,
			CreatedAt: now,
		}
		if err := r.Movements.Create(ctx, mov); err != nil {
			return consumed, cost, err
		}
		lot.QuantityOnHand = lot.QuantityOnHand.Sub(take)
		lot.UpdatedAt = now
		if err := r.Lots.UpdateQuantity(ctx, lot); err != nil {
			return consumed, cost, err
		}
		remaining = remaining.Sub(take)
		consumed = consumed.Add(take)
		cost = cost.Add(take.Mul(lot.UnitCost))
	}
	return consumed, cost, nil
}
