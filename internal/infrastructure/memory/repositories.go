package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/cpr-planning/internal/domain"
	"github.com/jhoicas/cpr-planning/internal/domain/entity"
	"github.com/jhoicas/cpr-planning/internal/domain/planning"
	"github.com/jhoicas/cpr-planning/internal/domain/repository"
)

var (
	_ repository.ManufacturingOrderRepository = (*ManufacturingOrderRepo)(nil)
	_ repository.StockLotRepository           = (*StockLotRepo)(nil)
	_ repository.OrderFragmentRepository      = (*OrderFragmentRepo)(nil)
	_ repository.ConsolidatedOrderRepository  = (*ConsolidatedOrderRepo)(nil)
	_ repository.AuditRepository              = (*AuditRepo)(nil)
)

// ── Órdenes de fabricación ────────────────────────────────────────────────────

// ManufacturingOrderRepo OFs en memoria.
type ManufacturingOrderRepo struct{ scope }

// planningClash replica el índice parcial (product_ref, scheduled_date) WHERE status <> 'Incidencia'.
func planningClash(d *data, mo *entity.ManufacturingOrder) bool {
	if mo.Status == entity.MOStatusIncidencia {
		return false
	}
	for _, o := range d.orders {
		if o.ID != mo.ID && o.Status != entity.MOStatusIncidencia &&
			o.ProductRef == mo.ProductRef && o.ScheduledDate.Equal(mo.ScheduledDate) {
			return true
		}
	}
	return false
}

func (r *ManufacturingOrderRepo) Create(_ context.Context, mo *entity.ManufacturingOrder) error {
	return r.view(func(d *data) error {
		if _, ok := d.orders[mo.ID]; ok {
			return fmt.Errorf("%w: OF %s ya existe", domain.ErrConflict, mo.ID)
		}
		if planningClash(d, mo) {
			return fmt.Errorf("%w: OF duplicada para %s", domain.ErrConflict, mo.ProductRef)
		}
		d.orders[mo.ID] = mo.Clone()
		return nil
	})
}

func (r *ManufacturingOrderRepo) GetByID(_ context.Context, id string) (*entity.ManufacturingOrder, error) {
	var out *entity.ManufacturingOrder
	err := r.view(func(d *data) error {
		out = d.orders[id].Clone()
		return nil
	})
	return out, err
}

func (r *ManufacturingOrderRepo) GetForUpdate(ctx context.Context, id string) (*entity.ManufacturingOrder, error) {
	return r.GetByID(ctx, id)
}

func (r *ManufacturingOrderRepo) FindPlanned(_ context.Context, productRef string, date time.Time) (*entity.ManufacturingOrder, error) {
	var out *entity.ManufacturingOrder
	day := entity.DateOnly(date)
	err := r.view(func(d *data) error {
		for _, o := range d.orders {
			if o.ProductRef == productRef && o.ScheduledDate.Equal(day) && o.Status != entity.MOStatusIncidencia {
				out = o.Clone()
				return nil
			}
		}
		return nil
	})
	return out, err
}

func (r *ManufacturingOrderRepo) Update(_ context.Context, mo *entity.ManufacturingOrder) error {
	return r.view(func(d *data) error {
		if _, ok := d.orders[mo.ID]; !ok {
			return fmt.Errorf("OF %s: %w", mo.ID, domain.ErrNotFound)
		}
		if planningClash(d, mo) {
			return fmt.Errorf("%w: OF duplicada para %s", domain.ErrConflict, mo.ProductRef)
		}
		d.orders[mo.ID] = mo.Clone()
		return nil
	})
}

func (r *ManufacturingOrderRepo) List(_ context.Context, f repository.ManufacturingOrderFilter) ([]*entity.ManufacturingOrder, error) {
	var out []*entity.ManufacturingOrder
	err := r.view(func(d *data) error {
		for _, o := range d.orders {
			if f.Status != "" && o.Status != f.Status {
				continue
			}
			if f.Station != "" && o.Station != f.Station {
				continue
			}
			if f.ProductRef != "" && o.ProductRef != f.ProductRef {
				continue
			}
			if !inRange(o.ScheduledDate, f.From, f.To) {
				continue
			}
			out = append(out, o.Clone())
		}
		return nil
	})
	sortOrders(out)
	return out, err
}

func (r *ManufacturingOrderRepo) ListOpen(ctx context.Context, from, to time.Time) ([]*entity.ManufacturingOrder, error) {
	all, err := r.List(ctx, repository.ManufacturingOrderFilter{From: &from, To: &to})
	if err != nil {
		return nil, err
	}
	out := all[:0]
	for _, o := range all {
		if o.Status.Open() {
			out = append(out, o)
		}
	}
	return out, nil
}

func sortOrders(list []*entity.ManufacturingOrder) {
	sort.Slice(list, func(i, j int) bool {
		if !list[i].ScheduledDate.Equal(list[j].ScheduledDate) {
			return list[i].ScheduledDate.Before(list[j].ScheduledDate)
		}
		return list[i].Code < list[j].Code
	})
}

// ── Lotes ─────────────────────────────────────────────────────────────────────

// StockLotRepo lotes en memoria.
type StockLotRepo struct{ scope }

func (r *StockLotRepo) Create(_ context.Context, lot *entity.StockLot) error {
	return r.view(func(d *data) error {
		if _, ok := d.lots[lot.ID]; ok {
			return fmt.Errorf("%w: lote %s ya existe", domain.ErrConflict, lot.ID)
		}
		if lot.QuantityAssigned.IsNegative() || lot.QuantityAssigned.GreaterThan(lot.QuantityProduced) {
			return fmt.Errorf("%w: cantidades del lote fuera de rango", domain.ErrInvalidInput)
		}
		d.lots[lot.ID] = lot.Clone()
		return nil
	})
}

func (r *StockLotRepo) GetByID(_ context.Context, id string) (*entity.StockLot, error) {
	var out *entity.StockLot
	err := r.view(func(d *data) error {
		out = d.lots[id].Clone()
		return nil
	})
	return out, err
}

func (r *StockLotRepo) GetForUpdate(ctx context.Context, id string) (*entity.StockLot, error) {
	return r.GetByID(ctx, id)
}

func (r *StockLotRepo) ListAvailable(_ context.Context, productRef string) ([]*entity.StockLot, error) {
	var out []*entity.StockLot
	err := r.view(func(d *data) error {
		for _, l := range d.lots {
			if productRef != "" && l.ProductRef != productRef {
				continue
			}
			if !l.Available().GreaterThan(decimal.Zero) {
				continue
			}
			out = append(out, l.Clone())
		}
		return nil
	})
	planning.SortFEFO(out)
	return out, err
}

// ListAvailableForUpdate solo lista lotes de un producto concreto; sin referencia no hay filas.
func (r *StockLotRepo) ListAvailableForUpdate(ctx context.Context, productRef string) ([]*entity.StockLot, error) {
	if productRef == "" {
		return nil, nil
	}
	return r.ListAvailable(ctx, productRef)
}

func (r *StockLotRepo) IncrementAssigned(_ context.Context, id string, qty decimal.Decimal) (*entity.StockLot, error) {
	var out *entity.StockLot
	err := r.view(func(d *data) error {
		l, ok := d.lots[id]
		if !ok {
			return fmt.Errorf("lote %s: %w", id, domain.ErrNotFound)
		}
		next := l.QuantityAssigned.Add(qty)
		if next.GreaterThan(l.QuantityProduced) {
			return fmt.Errorf("%w: lote %s sin disponible suficiente", domain.ErrConflict, id)
		}
		l.QuantityAssigned = next
		l.UpdatedAt = time.Now().UTC()
		out = l.Clone()
		return nil
	})
	return out, err
}

func (r *StockLotRepo) DecrementAssigned(_ context.Context, id string, qty decimal.Decimal) (*entity.StockLot, error) {
	var out *entity.StockLot
	err := r.view(func(d *data) error {
		l, ok := d.lots[id]
		if !ok {
			return fmt.Errorf("lote %s: %w", id, domain.ErrNotFound)
		}
		l.QuantityAssigned = decimal.Max(decimal.Zero, l.QuantityAssigned.Sub(qty))
		l.UpdatedAt = time.Now().UTC()
		out = l.Clone()
		return nil
	})
	return out, err
}

// ── Sub-pedidos ───────────────────────────────────────────────────────────────

// OrderFragmentRepo sub-pedidos en memoria.
type OrderFragmentRepo struct{ scope }

// slotClash replica el índice parcial (delivery_date, location, context) WHERE status <> 'Cancelado'.
func slotClash(d *data, f *entity.PendingOrderFragment) bool {
	if !f.Status.Live() {
		return false
	}
	key := f.SlotKey()
	for _, o := range d.fragments {
		if o.ID != f.ID && o.Status.Live() && o.SlotKey() == key {
			return true
		}
	}
	return false
}

func (r *OrderFragmentRepo) Create(_ context.Context, f *entity.PendingOrderFragment) error {
	return r.view(func(d *data) error {
		if _, ok := d.fragments[f.ID]; ok {
			return fmt.Errorf("%w: sub-pedido %s ya existe", domain.ErrConflict, f.ID)
		}
		if slotClash(d, f) {
			return fmt.Errorf("%w: ranura ocupada", domain.ErrConflict)
		}
		d.fragments[f.ID] = f.Clone()
		return nil
	})
}

func (r *OrderFragmentRepo) GetByID(_ context.Context, id string) (*entity.PendingOrderFragment, error) {
	var out *entity.PendingOrderFragment
	err := r.view(func(d *data) error {
		out = d.fragments[id].Clone()
		return nil
	})
	return out, err
}

func (r *OrderFragmentRepo) GetForUpdate(ctx context.Context, id string) (*entity.PendingOrderFragment, error) {
	return r.GetByID(ctx, id)
}

func (r *OrderFragmentRepo) Update(_ context.Context, f *entity.PendingOrderFragment) error {
	return r.view(func(d *data) error {
		if _, ok := d.fragments[f.ID]; !ok {
			return fmt.Errorf("sub-pedido %s: %w", f.ID, domain.ErrNotFound)
		}
		if slotClash(d, f) {
			return fmt.Errorf("%w: ranura ocupada", domain.ErrConflict)
		}
		d.fragments[f.ID] = f.Clone()
		return nil
	})
}

func (r *OrderFragmentRepo) FindLiveBySlot(_ context.Context, date time.Time, location string, reqCtx entity.RequestContext) (*entity.PendingOrderFragment, error) {
	key := entity.SlotKey(date, location, reqCtx)
	var out *entity.PendingOrderFragment
	err := r.view(func(d *data) error {
		for _, f := range d.fragments {
			if f.Status.Live() && f.SlotKey() == key {
				out = f.Clone()
				return nil
			}
		}
		return nil
	})
	return out, err
}

func (r *OrderFragmentRepo) ListLive(_ context.Context, from, to *time.Time) ([]*entity.PendingOrderFragment, error) {
	var out []*entity.PendingOrderFragment
	err := r.view(func(d *data) error {
		for _, f := range d.fragments {
			if f.Status.Live() && inRange(f.DeliveryDate, from, to) {
				out = append(out, f.Clone())
			}
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if !a.DeliveryDate.Equal(b.DeliveryDate) {
			return a.DeliveryDate.Before(b.DeliveryDate)
		}
		if a.DeliveryLocation != b.DeliveryLocation {
			return a.DeliveryLocation < b.DeliveryLocation
		}
		return a.RequestContext < b.RequestContext
	})
	return out, err
}

// ── Pedidos consolidados ──────────────────────────────────────────────────────

// ConsolidatedOrderRepo pedidos consolidados en memoria.
type ConsolidatedOrderRepo struct{ scope }

func (r *ConsolidatedOrderRepo) Create(_ context.Context, o *entity.ConsolidatedOrder) error {
	return r.view(func(d *data) error {
		for _, existing := range d.consolidated {
			if existing.ID == o.ID || existing.OrderNumber == o.OrderNumber {
				return fmt.Errorf("%w: número de pedido %s ya existe", domain.ErrConflict, o.OrderNumber)
			}
		}
		d.consolidated[o.ID] = o.Clone()
		return nil
	})
}

func (r *ConsolidatedOrderRepo) GetByID(_ context.Context, id string) (*entity.ConsolidatedOrder, error) {
	var out *entity.ConsolidatedOrder
	err := r.view(func(d *data) error {
		out = d.consolidated[id].Clone()
		return nil
	})
	return out, err
}

func (r *ConsolidatedOrderRepo) ListAll(_ context.Context) ([]*entity.ConsolidatedOrder, error) {
	var out []*entity.ConsolidatedOrder
	err := r.view(func(d *data) error {
		for _, o := range d.consolidated {
			out = append(out, o.Clone())
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].OrderNumber != out[j].OrderNumber {
			return out[i].OrderNumber < out[j].OrderNumber
		}
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, err
}

func (r *ConsolidatedOrderRepo) ListOrderNumbers(_ context.Context) ([]string, error) {
	var out []string
	err := r.view(func(d *data) error {
		for _, o := range d.consolidated {
			out = append(out, o.OrderNumber)
		}
		return nil
	})
	return out, err
}

func (r *ConsolidatedOrderRepo) DeleteDuplicates(_ context.Context, orderNumber, keeperID string, ids []string) ([]string, error) {
	deleted := []string{}
	err := r.view(func(d *data) error {
		for _, id := range ids {
			if id == keeperID {
				continue
			}
			o, ok := d.consolidated[id]
			if !ok || o.OrderNumber != orderNumber {
				continue
			}
			delete(d.consolidated, id)
			deleted = append(deleted, id)
		}
		return nil
	})
	return deleted, err
}

// ── Auditoría ─────────────────────────────────────────────────────────────────

// AuditRepo registro de actividad en memoria.
type AuditRepo struct{ scope }

func (r *AuditRepo) Record(_ context.Context, e *entity.AuditEntry) error {
	return r.view(func(d *data) error {
		cp := *e
		d.audit = append(d.audit, &cp)
		return nil
	})
}

func (r *AuditRepo) ListByEntity(_ context.Context, entityType, entityID string) ([]*entity.AuditEntry, error) {
	var out []*entity.AuditEntry
	err := r.view(func(d *data) error {
		for _, e := range d.audit {
			if e.EntityType == entityType && e.EntityID == entityID {
				cp := *e
				out = append(out, &cp)
			}
		}
		return nil
	})
	return out, err
}

func inRange(day time.Time, from, to *time.Time) bool {
	if from != nil && day.Before(entity.DateOnly(*from)) {
		return false
	}
	if to != nil && day.After(entity.DateOnly(*to)) {
		return false
	}
	return true
}
