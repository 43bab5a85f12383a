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

var _ repository.ManufacturingOrderRepository = (*ManufacturingOrderRepo)(nil)

// ManufacturingOrderRepo OFs sobre PostgreSQL (usable con pool o tx).
type ManufacturingOrderRepo struct {
	q Querier
}

// NewManufacturingOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewManufacturingOrderRepository(q Querier) *ManufacturingOrderRepo {
	return &ManufacturingOrderRepo{q: q}
}

const moColumns = `id, code, product_ref, product_name, planned_quantity, unit, scheduled_date, station,
	assignee, status, incident_notes, actual_quantity, created_at, assigned_at, completed_at, updated_at`

func scanMO(row pgx.Row) (*entity.ManufacturingOrder, error) {
	var mo entity.ManufacturingOrder
	err := row.Scan(
		&mo.ID, &mo.Code, &mo.ProductRef, &mo.ProductName, &mo.PlannedQuantity, &mo.Unit,
		&mo.ScheduledDate, &mo.Station, &mo.Assignee, &mo.Status, &mo.IncidentNotes,
		&mo.ActualQuantity, &mo.CreatedAt, &mo.AssignedAt, &mo.CompletedAt, &mo.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	mo.ScheduledDate = entity.DateOnly(mo.ScheduledDate)
	return &mo, nil
}

func (r *ManufacturingOrderRepo) Create(ctx context.Context, mo *entity.ManufacturingOrder) error {
	query := `INSERT INTO manufacturing_orders (` + moColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(ctx, query,
		mo.ID, mo.Code, mo.ProductRef, mo.ProductName, mo.PlannedQuantity, mo.Unit,
		mo.ScheduledDate, mo.Station, mo.Assignee, mo.Status, mo.IncidentNotes,
		mo.ActualQuantity, mo.CreatedAt, mo.AssignedAt, mo.CompletedAt, mo.UpdatedAt,
	)
	return mapWriteError("insert manufacturing order", err)
}

func (r *ManufacturingOrderRepo) get(ctx context.Context, query, id string) (*entity.ManufacturingOrder, error) {
	mo, err := scanMO(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get manufacturing order: %w", err)
	}
	return mo, nil
}

// GetByID obtiene una OF por ID. nil si no existe.
func (r *ManufacturingOrderRepo) GetByID(ctx context.Context, id string) (*entity.ManufacturingOrder, error) {
	return r.get(ctx, `SELECT `+moColumns+` FROM manufacturing_orders WHERE id = $1`, id)
}

// GetForUpdate bloquea la fila hasta el fin de la transacción.
func (r *ManufacturingOrderRepo) GetForUpdate(ctx context.Context, id string) (*entity.ManufacturingOrder, error) {
	return r.get(ctx, `SELECT `+moColumns+` FROM manufacturing_orders WHERE id = $1 FOR UPDATE`, id)
}

func (r *ManufacturingOrderRepo) FindPlanned(ctx context.Context, productRef string, date time.Time) (*entity.ManufacturingOrder, error) {
	query := `SELECT ` + moColumns + ` FROM manufacturing_orders
		WHERE product_ref = $1 AND scheduled_date = $2 AND status <> 'Incidencia'
		LIMIT 1`
	mo, err := scanMO(r.q.QueryRow(ctx, query, productRef, entity.DateOnly(date)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find planned manufacturing order: %w", err)
	}
	return mo, nil
}

func (r *ManufacturingOrderRepo) Update(ctx context.Context, mo *entity.ManufacturingOrder) error {
	query := `UPDATE manufacturing_orders SET
		station = $2, assignee = $3, status = $4, incident_notes = $5, actual_quantity = $6,
		assigned_at = $7, completed_at = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		mo.ID, mo.Station, mo.Assignee, mo.Status, mo.IncidentNotes, mo.ActualQuantity,
		mo.AssignedAt, mo.CompletedAt, mo.UpdatedAt,
	)
	return mapWriteError("update manufacturing order", err)
}

func (r *ManufacturingOrderRepo) List(ctx context.Context, f repository.ManufacturingOrderFilter) ([]*entity.ManufacturingOrder, error) {
	var (
		where []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}
	if f.Status != "" {
		add("status = $%d", f.Status)
	}
	if f.Station != "" {
		add("station = $%d", f.Station)
	}
	if f.ProductRef != "" {
		add("product_ref = $%d", f.ProductRef)
	}
	if f.From != nil {
		add("scheduled_date >= $%d", entity.DateOnly(*f.From))
	}
	if f.To != nil {
		add("scheduled_date <= $%d", entity.DateOnly(*f.To))
	}
	query := `SELECT ` + moColumns + ` FROM manufacturing_orders`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY scheduled_date, code`
	return r.list(ctx, query, args...)
}

func (r *ManufacturingOrderRepo) ListOpen(ctx context.Context, from, to time.Time) ([]*entity.ManufacturingOrder, error) {
	query := `SELECT ` + moColumns + ` FROM manufacturing_orders
		WHERE status IN ('Pendiente', 'Asignado') AND scheduled_date BETWEEN $1 AND $2
		ORDER BY scheduled_date, code`
	return r.list(ctx, query, entity.DateOnly(from), entity.DateOnly(to))
}

func (r *ManufacturingOrderRepo) list(ctx context.Context, query string, args ...any) ([]*entity.ManufacturingOrder, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list manufacturing orders: %w", err)
	}
	defer rows.Close()
	var out []*entity.ManufacturingOrder
	for rows.Next() {
		mo, err := scanMO(rows)
		if err != nil {
			return nil, fmt.Errorf("scan manufacturing order: %w", err)
		}
		out = append(out, mo)
	}
	return out, rows.Err()
}
