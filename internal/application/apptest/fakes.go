// Package apptest provee repositorios en memoria y un TxRunner sin transacción
// real para probar los casos de uso de aplicación sin base de datos. Los fakes
// imitan el contrato observable de la capa postgres: lecturas "for update"
// devuelven copias, las guardas de estado cuentan filas afectadas y las listas
// FEFO ordenan por vencimiento y recepción.
package apptest

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cerveceria-api/internal/application/ports"
	"github.com/jhoicas/Cerveceria-api/internal/domain/entity"
	"github.com/jhoicas/Cerveceria-api/internal/domain/repository"
	"github.com/jhoicas/Cerveceria-api/pkg/logger"
)

// Store estado compartido de todos los fakes de un test.
type Store struct {
	Batches   map[string]*entity.Batch
	Vessels   map[string]*entity.Vessel
	Recipes   map[string]*entity.Recipe
	Orders    map[string]*entity.Order
	POs       map[string]*entity.PurchaseOrder
	Items     map[string]*entity.InventoryItem
	Lots      map[string]*entity.Lot
	Movements []*entity.StockMovement
	Finished  map[string]*entity.FinishedGoods
	Seqs      map[string]int64
}

// NewStore crea un estado vacío.
func NewStore() *Store {
	return &Store{
		Batches:  map[string]*entity.Batch{},
		Vessels:  map[string]*entity.Vessel{},
		Recipes:  map[string]*entity.Recipe{},
		Orders:   map[string]*entity.Order{},
		POs:      map[string]*entity.PurchaseOrder{},
		Items:    map[string]*entity.InventoryItem{},
		Lots:     map[string]*entity.Lot{},
		Finished: map[string]*entity.FinishedGoods{},
		Seqs:     map[string]int64{},
	}
}

// Repos arma el juego de repositorios atado al store.
func (s *Store) Repos() ports.Repos {
	return ports.Repos{
		Batches:        &batchRepo{s},
		Vessels:        &vesselRepo{s},
		Recipes:        &recipeRepo{s},
		Orders:         &orderRepo{s},
		PurchaseOrders: &poRepo{s},
		Items:          &itemRepo{s},
		Lots:           &lotRepo{s},
		Movements:      &movementRepo{s},
		Finished:       &finishedRepo{s},
		Sequences:      &sequenceRepo{s},
	}
}

// TxRunner ejecuta fn directamente sobre el store; no hay rollback real, los
// tests verifican efectos, no atomicidad.
type TxRunner struct {
	Store *Store
}

// Run implementa ports.TxRunner.
func (t *TxRunner) Run(_ context.Context, fn func(r ports.Repos) error) error {
	return fn(t.Store.Repos())
}

// Logger devuelve un logger silencioso para los casos de uso bajo prueba.
func Logger() *logger.Logger {
	return logger.New(logger.Config{Env: "test", Level: "error"})
}

// ── Batches ───────────────────────────────────────────────────────────────────

type batchRepo struct{ s *Store }

var _ repository.BatchRepository = (*batchRepo)(nil)

func (r *batchRepo) Create(_ context.Context, b *entity.Batch) error {
	cp := *b
	r.s.Batches[b.ID] = &cp
	return nil
}

func (r *batchRepo) GetByID(_ context.Context, id string) (*entity.Batch, error) {
	b, ok := r.s.Batches[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *batchRepo) GetForUpdate(ctx context.Context, id string) (*entity.Batch, error) {
	return r.GetByID(ctx, id)
}

func (r *batchRepo) List(_ context.Context, status string, _, _ int) ([]*entity.Batch, error) {
	var out []*entity.Batch
	for _, b := range r.s.Batches {
		if status == "" || string(b.Status) == status {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *batchRepo) Update(_ context.Context, b *entity.Batch) error {
	cp := *b
	r.s.Batches[b.ID] = &cp
	return nil
}

func (r *batchRepo) UpdateStatus(_ context.Context, id string, from, to entity.BatchStatus, b *entity.Batch) (int64, error) {
	cur, ok := r.s.Batches[id]
	if !ok || cur.Status != from {
		return 0, nil
	}
	cp := *b
	cp.Status = to
	r.s.Batches[id] = &cp
	return 1, nil
}

// ── Vessels ───────────────────────────────────────────────────────────────────

type vesselRepo struct{ s *Store }

var _ repository.VesselRepository = (*vesselRepo)(nil)

func (r *vesselRepo) Create(_ context.Context, v *entity.Vessel) error {
	cp := *v
	r.s.Vessels[v.ID] = &cp
	return nil
}

func (r *vesselRepo) GetByID(_ context.Context, id string) (*entity.Vessel, error) {
	v, ok := r.s.Vessels[id]
	if !ok {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}

func (r *vesselRepo) GetForUpdate(ctx context.Context, id string) (*entity.Vessel, error) {
	return r.GetByID(ctx, id)
}

func (r *vesselRepo) List(_ context.Context) ([]*entity.Vessel, error) {
	var out []*entity.Vessel
	for _, v := range r.s.Vessels {
		cp := *v
		out = append(out, &cp)
	}
	return out, nil
}

func (r *vesselRepo) UpdateStatus(_ context.Context, id string, status entity.VesselStatus) error {
	if v, ok := r.s.Vessels[id]; ok {
		v.Status = status
	}
	return nil
}

// ── Recipes ───────────────────────────────────────────────────────────────────

type recipeRepo struct{ s *Store }

var _ repository.RecipeRepository = (*recipeRepo)(nil)

func (r *recipeRepo) Create(_ context.Context, rec *entity.Recipe) error {
	cp := *rec
	r.s.Recipes[rec.ID] = &cp
	return nil
}

func (r *recipeRepo) GetByID(_ context.Context, id string) (*entity.Recipe, error) {
	rec, ok := r.s.Recipes[id]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (r *recipeRepo) List(_ context.Context, onlyActive bool) ([]*entity.Recipe, error) {
	var out []*entity.Recipe
	for _, rec := range r.s.Recipes {
		if onlyActive && !rec.Active {
			continue
		}
		cp := *rec
		out = append(out, &cp)
	}
	return out, nil
}

func (r *recipeRepo) Update(_ context.Context, rec *entity.Recipe) error {
	cp := *rec
	r.s.Recipes[rec.ID] = &cp
	return nil
}

func (r *recipeRepo) MaxVersionByName(_ context.Context, name string) (int, error) {
	max := 0
	for _, rec := range r.s.Recipes {
		if rec.Name == name && rec.Version > max {
			max = rec.Version
		}
	}
	return max, nil
}

// ── Orders ────────────────────────────────────────────────────────────────────

type orderRepo struct{ s *Store }

var _ repository.OrderRepository = (*orderRepo)(nil)

func copyOrder(o *entity.Order) *entity.Order {
	cp := *o
	cp.Lines = make([]entity.OrderLine, len(o.Lines))
	copy(cp.Lines, o.Lines)
	return &cp
}

func (r *orderRepo) Create(_ context.Context, o *entity.Order) error {
	r.s.Orders[o.ID] = copyOrder(o)
	return nil
}

func (r *orderRepo) GetByID(_ context.Context, id string) (*entity.Order, error) {
	o, ok := r.s.Orders[id]
	if !ok {
		return nil, nil
	}
	return copyOrder(o), nil
}

func (r *orderRepo) GetForUpdate(ctx context.Context, id string) (*entity.Order, error) {
	return r.GetByID(ctx, id)
}

func (r *orderRepo) List(_ context.Context, status string, _, _ int) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.s.Orders {
		if status == "" || string(o.Status) == status {
			out = append(out, copyOrder(o))
		}
	}
	return out, nil
}

func (r *orderRepo) Update(_ context.Context, o *entity.Order) error {
	r.s.Orders[o.ID] = copyOrder(o)
	return nil
}

func (r *orderRepo) UpdateStatus(_ context.Context, id string, from, to entity.OrderStatus, o *entity.Order) (int64, error) {
	cur, ok := r.s.Orders[id]
	if !ok || cur.Status != from {
		return 0, nil
	}
	cp := copyOrder(o)
	cp.Status = to
	r.s.Orders[id] = cp
	return 1, nil
}

func (r *orderRepo) GetLine(_ context.Context, lineID string) (*entity.OrderLine, error) {
	for _, o := range r.s.Orders {
		for i := range o.Lines {
			if o.Lines[i].ID == lineID {
				cp := o.Lines[i]
				return &cp, nil
			}
		}
	}
	return nil, nil
}

func (r *orderRepo) UpdateLine(_ context.Context, line *entity.OrderLine) error {
	for _, o := range r.s.Orders {
		for i := range o.Lines {
			if o.Lines[i].ID == line.ID {
				o.Lines[i] = *line
				return nil
			}
		}
	}
	return nil
}

// ── Purchase orders ───────────────────────────────────────────────────────────

type poRepo struct{ s *Store }

var _ repository.PurchaseOrderRepository = (*poRepo)(nil)

func copyPO(po *entity.PurchaseOrder) *entity.PurchaseOrder {
	cp := *po
	cp.Lines = make([]entity.PurchaseOrderLine, len(po.Lines))
	copy(cp.Lines, po.Lines)
	return &cp
}

func (r *poRepo) Create(_ context.Context, po *entity.PurchaseOrder) error {
	r.s.POs[po.ID] = copyPO(po)
	return nil
}

func (r *poRepo) GetByID(_ context.Context, id string) (*entity.PurchaseOrder, error) {
	po, ok := r.s.POs[id]
	if !ok {
		return nil, nil
	}
	return copyPO(po), nil
}

func (r *poRepo) GetForUpdate(ctx context.Context, id string) (*entity.PurchaseOrder, error) {
	return r.GetByID(ctx, id)
}

func (r *poRepo) GetByLineIDForUpdate(_ context.Context, lineID string) (*entity.PurchaseOrder, error) {
	for _, po := range r.s.POs {
		for i := range po.Lines {
			if po.Lines[i].ID == lineID {
				return copyPO(po), nil
			}
		}
	}
	return nil, nil
}

func (r *poRepo) List(_ context.Context, status string, _, _ int) ([]*entity.PurchaseOrder, error) {
	var out []*entity.PurchaseOrder
	for _, po := range r.s.POs {
		if status == "" || string(po.Status) == status {
			out = append(out, copyPO(po))
		}
	}
	return out, nil
}

func (r *poRepo) Update(_ context.Context, po *entity.PurchaseOrder) error {
	r.s.POs[po.ID] = copyPO(po)
	return nil
}

func (r *poRepo) UpdateStatus(_ context.Context, id string, from, to entity.PurchaseOrderStatus, po *entity.PurchaseOrder) (int64, error) {
	cur, ok := r.s.POs[id]
	if !ok || cur.Status != from {
		return 0, nil
	}
	cp := copyPO(po)
	cp.Status = to
	r.s.POs[id] = cp
	return 1, nil
}

func (r *poRepo) UpdateLineReceived(_ context.Context, line *entity.PurchaseOrderLine) error {
	for _, po := range r.s.POs {
		for i := range po.Lines {
			if po.Lines[i].ID == line.ID {
				po.Lines[i].ReceivedQty = line.ReceivedQty
				return nil
			}
		}
	}
	return nil
}

// ── Items ─────────────────────────────────────────────────────────────────────

type itemRepo struct{ s *Store }

var _ repository.InventoryItemRepository = (*itemRepo)(nil)

func (r *itemRepo) Create(_ context.Context, it *entity.InventoryItem) error {
	cp := *it
	r.s.Items[it.ID] = &cp
	return nil
}

func (r *itemRepo) GetByID(_ context.Context, id string) (*entity.InventoryItem, error) {
	it, ok := r.s.Items[id]
	if !ok {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (r *itemRepo) GetBySKU(_ context.Context, sku string) (*entity.InventoryItem, error) {
	for _, it := range r.s.Items {
		if it.SKU == sku {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *itemRepo) List(_ context.Context) ([]*entity.InventoryItem, error) {
	var out []*entity.InventoryItem
	for _, it := range r.s.Items {
		cp := *it
		out = append(out, &cp)
	}
	return out, nil
}

func (r *itemRepo) Update(_ context.Context, it *entity.InventoryItem) error {
	cp := *it
	r.s.Items[it.ID] = &cp
	return nil
}

func (r *itemRepo) UpdateCost(_ context.Context, id string, cost decimal.Decimal) error {
	if it, ok := r.s.Items[id]; ok {
		it.UnitCost = cost
	}
	return nil
}

// ── Lots ──────────────────────────────────────────────────────────────────────

type lotRepo struct{ s *Store }

var _ repository.LotRepository = (*lotRepo)(nil)

func (r *lotRepo) Create(_ context.Context, l *entity.Lot) error {
	cp := *l
	r.s.Lots[l.ID] = &cp
	return nil
}

func (r *lotRepo) GetByID(_ context.Context, id string) (*entity.Lot, error) {
	l, ok := r.s.Lots[id]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (r *lotRepo) GetForUpdate(ctx context.Context, id string) (*entity.Lot, error) {
	return r.GetByID(ctx, id)
}

func (r *lotRepo) ListOpenByItem(_ context.Context, itemID string, _ bool) ([]*entity.Lot, error) {
	now := time.Now()
	var out []*entity.Lot
	for _, l := range r.s.Lots {
		if l.ItemID != itemID || !l.QuantityOnHand.GreaterThan(decimal.Zero) {
			continue
		}
		if l.ExpiresAt != nil && l.ExpiresAt.Before(now) {
			continue
		}
		cp := *l
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch {
		case a.ExpiresAt == nil && b.ExpiresAt != nil:
			return false
		case a.ExpiresAt != nil && b.ExpiresAt == nil:
			return true
		case a.ExpiresAt != nil && b.ExpiresAt != nil && !a.ExpiresAt.Equal(*b.ExpiresAt):
			return a.ExpiresAt.Before(*b.ExpiresAt)
		}
		return a.ReceivedAt.Before(b.ReceivedAt)
	})
	return out, nil
}

func (r *lotRepo) ListByItem(_ context.Context, itemID string) ([]*entity.Lot, error) {
	var out []*entity.Lot
	for _, l := range r.s.Lots {
		if l.ItemID == itemID {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *lotRepo) UpdateQuantity(_ context.Context, l *entity.Lot) error {
	if cur, ok := r.s.Lots[l.ID]; ok {
		cur.QuantityOnHand = l.QuantityOnHand
		cur.UpdatedAt = l.UpdatedAt
	}
	return nil
}

// ── Movements ─────────────────────────────────────────────────────────────────

type movementRepo struct{ s *Store }

var _ repository.StockMovementRepository = (*movementRepo)(nil)

func (r *movementRepo) Create(_ context.Context, m *entity.StockMovement) error {
	cp := *m
	r.s.Movements = append(r.s.Movements, &cp)
	return nil
}

func (r *movementRepo) ListByItem(_ context.Context, itemID string, from, to *time.Time, _, _ int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.s.Movements {
		if m.ItemID != itemID {
			continue
		}
		if from != nil && m.CreatedAt.Before(*from) {
			continue
		}
		if to != nil && m.CreatedAt.After(*to) {
			continue
		}
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

func (r *movementRepo) ListByLot(_ context.Context, lotID string, _, _ int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.s.Movements {
		if m.LotID == lotID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *movementRepo) ListByRef(_ context.Context, refType, refID string) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.s.Movements {
		if m.RefType == refType && m.RefID == refID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

// ── Finished goods ────────────────────────────────────────────────────────────

type finishedRepo struct{ s *Store }

var _ repository.FinishedGoodsRepository = (*finishedRepo)(nil)

func (r *finishedRepo) Create(_ context.Context, fg *entity.FinishedGoods) error {
	cp := *fg
	r.s.Finished[fg.ID] = &cp
	return nil
}

func (r *finishedRepo) GetByID(_ context.Context, id string) (*entity.FinishedGoods, error) {
	fg, ok := r.s.Finished[id]
	if !ok {
		return nil, nil
	}
	cp := *fg
	return &cp, nil
}

func (r *finishedRepo) GetForUpdate(ctx context.Context, id string) (*entity.FinishedGoods, error) {
	return r.GetByID(ctx, id)
}

func (r *finishedRepo) List(_ context.Context, recipeID string) ([]*entity.FinishedGoods, error) {
	var out []*entity.FinishedGoods
	for _, fg := range r.s.Finished {
		if recipeID == "" || fg.RecipeID == recipeID {
			cp := *fg
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *finishedRepo) ListByBatch(_ context.Context, batchID string) ([]*entity.FinishedGoods, error) {
	var out []*entity.FinishedGoods
	for _, fg := range r.s.Finished {
		if fg.BatchID == batchID {
			cp := *fg
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *finishedRepo) Update(_ context.Context, fg *entity.FinishedGoods) error {
	cp := *fg
	r.s.Finished[fg.ID] = &cp
	return nil
}

func (r *finishedRepo) AdjustReserved(_ context.Context, id string, delta decimal.Decimal) error {
	if fg, ok := r.s.Finished[id]; ok {
		fg.QuantityReserved = fg.QuantityReserved.Add(delta)
	}
	return nil
}

func (r *finishedRepo) ReservedByBatch(_ context.Context, batchID string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, fg := range r.s.Finished {
		if fg.BatchID == batchID {
			total = total.Add(fg.QuantityReserved)
		}
	}
	return total, nil
}

// ── Sequences ─────────────────────────────────────────────────────────────────

type sequenceRepo struct{ s *Store }

var _ repository.SequenceRepository = (*sequenceRepo)(nil)

func (r *sequenceRepo) Next(_ context.Context, prefix string) (int64, error) {
	r.s.Seqs[prefix]++
	return r.s.Seqs[prefix], nil
}
