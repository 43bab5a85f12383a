package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/cpr-planning/internal/domain/entity"
	"github.com/jhoicas/cpr-planning/internal/domain/repository"
)

var _ repository.OrderFragmentRepository = (*OrderFragmentRepo)(nil)

// OrderFragmentRepo sub-pedidos sobre PostgreSQL. Las líneas van en JSONB.
type OrderFragmentRepo struct {
	q Querier
}

// NewOrderFragmentRepository construye el adaptador.
func NewOrderFragmentRepository(q Querier) *OrderFragmentRepo {
	return &OrderFragmentRepo{q: q}
}

const fragmentColumns = `id, service_order_ref, delivery_date, delivery_time, delivery_location, request_context,
	supplier_ref, items, item_count, unit_count, status, created_by, created_at, updated_at`

func scanFragment(row pgx.Row) (*entity.PendingOrderFragment, error) {
	var f entity.PendingOrderFragment
	err := row.Scan(&f.ID, &f.ServiceOrderRef, &f.DeliveryDate, &f.DeliveryTime, &f.DeliveryLocation,
		&f.RequestContext, &f.SupplierRef, &f.Items, &f.ItemCount, &f.UnitCount, &f.Status,
		&f.CreatedBy, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, err
	}
	f.DeliveryDate = entity.DateOnly(f.DeliveryDate)
	if f.Items == nil {
		f.Items = []entity.OrderLine{}
	}
	return &f, nil
}

func fragmentItems(f *entity.PendingOrderFragment) []entity.OrderLine {
	if f.Items == nil {
		return []entity.OrderLine{}
	}
	return f.Items
}

// Create devuelve ErrConflict si la ranura (fecha, localización, origen) está ocupada.
func (r *OrderFragmentRepo) Create(ctx context.Context, f *entity.PendingOrderFragment) error {
	query := `INSERT INTO pending_order_fragments (` + fragmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		f.ID, f.ServiceOrderRef, f.DeliveryDate, f.DeliveryTime, entity.NormalizeLocation(f.DeliveryLocation),
		f.RequestContext, f.SupplierRef, fragmentItems(f), f.ItemCount, f.UnitCount, f.Status,
		f.CreatedBy, f.CreatedAt, f.UpdatedAt,
	)
	return mapWriteError("insert fragment", err)
}

func (r *OrderFragmentRepo) get(ctx context.Context, query, id string) (*entity.PendingOrderFragment, error) {
	f, err := scanFragment(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get fragment: %w", err)
	}
	return f, nil
}

func (r *OrderFragmentRepo) GetByID(ctx context.Context, id string) (*entity.PendingOrderFragment, error) {
	return r.get(ctx, `SELECT `+fragmentColumns+` FROM pending_order_fragments WHERE id = $1`, id)
}

func (r *OrderFragmentRepo) GetForUpdate(ctx context.Context, id string) (*entity.PendingOrderFragment, error) {
	return r.get(ctx, `SELECT `+fragmentColumns+` FROM pending_order_fragments WHERE id = $1 FOR UPDATE`, id)
}

func (r *OrderFragmentRepo) Update(ctx context.Context, f *entity.PendingOrderFragment) error {
	query := `UPDATE pending_order_fragments SET
		delivery_date = $2, delivery_location = $3, request_context = $4, items = $5,
		item_count = $6, unit_count = $7, status = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		f.ID, f.DeliveryDate, entity.NormalizeLocation(f.DeliveryLocation), f.RequestContext,
		fragmentItems(f), f.ItemCount, f.UnitCount, f.Status, f.UpdatedAt,
	)
	return mapWriteError("update fragment", err)
}

func (r *OrderFragmentRepo) FindLiveBySlot(ctx context.Context, date time.Time, location string, reqCtx entity.RequestContext) (*entity.PendingOrderFragment, error) {
	query := `SELECT ` + fragmentColumns + ` FROM pending_order_fragments
		WHERE delivery_date = $1 AND delivery_location = $2 AND request_context = $3 AND status <> 'Cancelado'
		LIMIT 1`
	f, err := scanFragment(r.q.QueryRow(ctx, query, entity.DateOnly(date), entity.NormalizeLocation(location), reqCtx))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find fragment by slot: %w", err)
	}
	return f, nil
}

func (r *OrderFragmentRepo) ListLive(ctx context.Context, from, to *time.Time) ([]*entity.PendingOrderFragment, error) {
	where := []string{`status <> 'Cancelado'`}
	var args []any
	if from != nil {
		args = append(args, entity.DateOnly(*from))
		where = append(where, fmt.Sprintf("delivery_date >= $%d", len(args)))
	}
	if to != nil {
		args = append(args, entity.DateOnly(*to))
		where = append(where, fmt.Sprintf("delivery_date <= $%d", len(args)))
	}
	query := `SELECT ` + fragmentColumns + ` FROM pending_order_fragments WHERE ` +
		strings.Join(where, " AND ") + ` ORDER BY delivery_date, delivery_location, request_context`
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list fragments: %w", err)
	}
	defer rows.Close()
	var out []*entity.PendingOrderFragment
	for rows.Next() {
		f, err := scanFragment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan fragment: %w", err)
		}
		out = append(out, f)
	}
	return out, rows.Err()
}
