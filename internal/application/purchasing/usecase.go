// Package purchasing implementa los casos de uso de órdenes de compra: creación
// en borrador con totales derivados y consultas con cantidades pendientes.
package purchasing

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

// Config parámetros de numeración e impuestos para órdenes de compra.
type Config struct {
	NumberPrefix string          // ej. "OC"
	DefaultTax   decimal.Decimal
}

// PurchaseOrderUseCase casos de uso de órdenes de compra.
type PurchaseOrderUseCase struct {
	txRunner     ports.TxRunner
	poRepo       repository.PurchaseOrderRepository
	supplierRepo repository.SupplierRepository
	itemRepo     repository.InventoryItemRepository
	cfg          Config
}

// NewPurchaseOrderUseCase construye el caso de uso.
func NewPurchaseOrderUseCase(
	txRunner ports.TxRunner,
	poRepo repository.PurchaseOrderRepository,
	supplierRepo repository.SupplierRepository,
	itemRepo repository.InventoryItemRepository,
	cfg Config,
) *PurchaseOrderUseCase {
	return &PurchaseOrderUseCase{
		txRunner:     txRunner,
		poRepo:       poRepo,
		supplierRepo: supplierRepo,
		itemRepo:     itemRepo,
		cfg:          cfg,
	}
}

// Create crea una orden de compra en borrador. El costo unitario por defecto es
// el costo de referencia del ítem; los totales se derivan de los renglones.
func (uc *PurchaseOrderUseCase) Create(ctx context.Context, in dto.CreatePurchaseOrderRequest) (*entity.PurchaseOrder, error) {
	if in.SupplierID == "" || len(in.Lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	supplier, err := uc.supplierRepo.GetByID(ctx, in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	po := &entity.PurchaseOrder{
		ID:           uuid.New().String(),
		SupplierID:   in.SupplierID,
		Status:       entity.PODraft,
		OrderDate:    now,
		ExpectedDate: in.ExpectedDate,
		Notes:        in.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, l := range in.Lines {
		if l.ItemID == "" || !l.OrderedQty.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		item, err := uc.itemRepo.GetByID(ctx, l.ItemID)
		if err != nil {
			return nil, err
		}
		if item == nil {
			return nil, domain.ErrNotFound
		}
		cost := l.UnitCost
		if cost == nil || cost.IsZero() {
			cost = &item.UnitCost
		}
		po.Lines = append(po.Lines, entity.PurchaseOrderLine{
			ID:              uuid.New().String(),
			PurchaseOrderID: po.ID,
			ItemID:          l.ItemID,
			OrderedQty:      l.OrderedQty,
			ReceivedQty:     decimal.Zero,
			UnitCost:        *cost,
			TaxRate:         uc.cfg.DefaultTax,
		})
	}
	po.RecalcTotals()

	err = uc.txRunner.Run(ctx, func(r ports.Repos) error {
		seq, err := r.Sequences.Next(ctx, uc.cfg.NumberPrefix)
		if err != nil {
			return err
		}
		po.Number = fmt.Sprintf("%s-%d-%04d", uc.cfg.NumberPrefix, now.Year(), seq)
		return r.PurchaseOrders.Create(ctx, po)
	})
	if err != nil {
		return nil, err
	}
	return po, nil
}

// GetByID devuelve una orden de compra con renglones.
func (uc *PurchaseOrderUseCase) GetByID(ctx context.Context, id string) (*entity.PurchaseOrder, error) {
	po, err := uc.poRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if po == nil {
		return nil, domain.ErrNotFound
	}
	return po, nil
}

// List lista órdenes de compra, opcionalmente por estado.
func (uc *PurchaseOrderUseCase) List(ctx context.Context, status string, limit, offset int) ([]*entity.PurchaseOrder, error) {
	if status != "" {
		if _, err := entity.ParsePurchaseOrderStatus(status); err != nil {
			return nil, domain.ErrInvalidInput
		}
	}
	return uc.poRepo.List(ctx, status, limit, offset)
}
