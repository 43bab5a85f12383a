package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/cpr-planning/internal/domain/entity"
	"github.com/jhoicas/cpr-planning/internal/domain/repository"
)

var _ repository.ConsolidatedOrderRepository = (*ConsolidatedOrderRepo)(nil)

// ConsolidatedOrderRepo pedidos consolidados sobre PostgreSQL.
type ConsolidatedOrderRepo struct {
	q Querier
}

// NewConsolidatedOrderRepository construye el adaptador.
func NewConsolidatedOrderRepository(q Querier) *ConsolidatedOrderRepo {
	return &ConsolidatedOrderRepo{q: q}
}

const consolidatedColumns = `id, order_number, delivery_date, delivery_location, items, source_fragment_ids,
	comment, status, created_at`

func scanConsolidated(row pgx.Row) (*entity.ConsolidatedOrder, error) {
	var o entity.ConsolidatedOrder
	err := row.Scan(&o.ID, &o.OrderNumber, &o.DeliveryDate, &o.DeliveryLocation, &o.Items,
		&o.SourceFragmentIDs, &o.Comment, &o.Status, &o.CreatedAt)
	if err != nil {
		return nil, err
	}
	o.DeliveryDate = entity.DateOnly(o.DeliveryDate)
	return &o, nil
}

func (r *ConsolidatedOrderRepo) Create(ctx context.Context, o *entity.ConsolidatedOrder) error {
	items := o.Items
	if items == nil {
		items = []entity.OrderLine{}
	}
	sources := o.SourceFragmentIDs
	if sources == nil {
		sources = []string{}
	}
	query := `INSERT INTO consolidated_orders (` + consolidatedColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		o.ID, o.OrderNumber, o.DeliveryDate, o.DeliveryLocation, items, sources,
		o.Comment, o.Status, o.CreatedAt,
	)
	return mapWriteError("insert consolidated order", err)
}

func (r *ConsolidatedOrderRepo) GetByID(ctx context.Context, id string) (*entity.ConsolidatedOrder, error) {
	o, err := scanConsolidated(r.q.QueryRow(ctx,
		`SELECT `+consolidatedColumns+` FROM consolidated_orders WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get consolidated order: %w", err)
	}
	return o, nil
}

// ListAll todas las filas, agrupables por número: orden (número, alta, id).
func (r *ConsolidatedOrderRepo) ListAll(ctx context.Context) ([]*entity.ConsolidatedOrder, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+consolidatedColumns+` FROM consolidated_orders ORDER BY order_number, created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list consolidated orders: %w", err)
	}
	defer rows.Close()
	var out []*entity.ConsolidatedOrder
	for rows.Next() {
		o, err := scanConsolidated(rows)
		if err != nil {
			return nil, fmt.Errorf("scan consolidated order: %w", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *ConsolidatedOrderRepo) ListOrderNumbers(ctx context.Context) ([]string, error) {
	rows, err := r.q.Query(ctx, `SELECT DISTINCT order_number FROM consolidated_orders`)
	if err != nil {
		return nil, fmt.Errorf("list order numbers: %w", err)
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("scan order number: %w", err)
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

// DeleteDuplicates el superviviente queda excluido en la propia sentencia, aunque
// el llamador lo incluyera en ids.
func (r *ConsolidatedOrderRepo) DeleteDuplicates(ctx context.Context, orderNumber, keeperID string, ids []string) ([]string, error) {
	deleted := []string{}
	if len(ids) == 0 {
		return deleted, nil
	}
	rows, err := r.q.Query(ctx,
		`DELETE FROM consolidated_orders
		 WHERE order_number = $1 AND id <> $2 AND id = ANY($3)
		 RETURNING id`,
		orderNumber, keeperID, ids)
	if err != nil {
		return nil, fmt.Errorf("delete duplicates %s: %w", orderNumber, err)
	}
	defer rows.Close()
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan deleted id: %w", err)
		}
		deleted = append(deleted, id)
	}
	return deleted, rows.Err()
}
