package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cpr-planning/internal/domain"
	"github.com/jhoicas/cpr-planning/internal/domain/entity"
	"github.com/jhoicas/cpr-planning/internal/domain/repository"
)

var _ repository.StockLotRepository = (*StockLotRepo)(nil)

// StockLotRepo lotes sobre PostgreSQL (usable con pool o tx).
type StockLotRepo struct {
	q Querier
}

// NewStockLotRepository construye el adaptador de persistencia para lotes.
func NewStockLotRepository(q Querier) *StockLotRepo {
	return &StockLotRepo{q: q}
}

const lotColumns = `id, product_ref, source_mo_id, quantity_produced, quantity_assigned, unit,
	expiration_date, created_at, updated_at`

// Orden FEFO: caducidad, alta, id.
const lotFEFOOrder = ` ORDER BY expiration_date, created_at, id`

func scanLot(row pgx.Row) (*entity.StockLot, error) {
	var l entity.StockLot
	err := row.Scan(&l.ID, &l.ProductRef, &l.SourceMOID, &l.QuantityProduced, &l.QuantityAssigned,
		&l.Unit, &l.ExpirationDate, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	l.ExpirationDate = entity.DateOnly(l.ExpirationDate)
	return &l, nil
}

func (r *StockLotRepo) Create(ctx context.Context, lot *entity.StockLot) error {
	query := `INSERT INTO stock_lots (` + lotColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		lot.ID, lot.ProductRef, lot.SourceMOID, lot.QuantityProduced, lot.QuantityAssigned,
		lot.Unit, lot.ExpirationDate, lot.CreatedAt, lot.UpdatedAt,
	)
	return mapWriteError("insert stock lot", err)
}

func (r *StockLotRepo) get(ctx context.Context, query, id string) (*entity.StockLot, error) {
	l, err := scanLot(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock lot: %w", err)
	}
	return l, nil
}

func (r *StockLotRepo) GetByID(ctx context.Context, id string) (*entity.StockLot, error) {
	return r.get(ctx, `SELECT `+lotColumns+` FROM stock_lots WHERE id = $1`, id)
}

func (r *StockLotRepo) GetForUpdate(ctx context.Context, id string) (*entity.StockLot, error) {
	return r.get(ctx, `SELECT `+lotColumns+` FROM stock_lots WHERE id = $1 FOR UPDATE`, id)
}

// ListAvailable lotes con disponible > 0; productRef vacío = todos los productos.
func (r *StockLotRepo) ListAvailable(ctx context.Context, productRef string) ([]*entity.StockLot, error) {
	query := `SELECT ` + lotColumns + ` FROM stock_lots
		WHERE quantity_produced > quantity_assigned AND ($1 = '' OR product_ref = $1)` + lotFEFOOrder
	return r.queryLots(ctx, query, productRef)
}

// ListAvailableForUpdate bloquea los lotes de un único producto, en orden FEFO
// para que dos asignaciones concurrentes pidan los candados en el mismo orden.
// Una referencia vacía no devuelve filas: nunca bloquea todo el stock.
func (r *StockLotRepo) ListAvailableForUpdate(ctx context.Context, productRef string) ([]*entity.StockLot, error) {
	if productRef == "" {
		return nil, nil
	}
	query := `SELECT ` + lotColumns + ` FROM stock_lots
		WHERE quantity_produced > quantity_assigned AND product_ref = $1` + lotFEFOOrder + ` FOR UPDATE`
	return r.queryLots(ctx, query, productRef)
}

func (r *StockLotRepo) queryLots(ctx context.Context, query string, args ...any) ([]*entity.StockLot, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list available lots: %w", err)
	}
	defer rows.Close()
	var out []*entity.StockLot
	for rows.Next() {
		l, err := scanLot(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock lot: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// IncrementAssigned suma qty a lo asignado solo si cabe; si no, ErrConflict.
func (r *StockLotRepo) IncrementAssigned(ctx context.Context, id string, qty decimal.Decimal) (*entity.StockLot, error) {
	query := `UPDATE stock_lots SET quantity_assigned = quantity_assigned + $2, updated_at = now()
		WHERE id = $1 AND quantity_assigned + $2 <= quantity_produced
		RETURNING ` + lotColumns
	l, err := scanLot(r.q.QueryRow(ctx, query, id, qty))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.missingOrConflict(ctx, id)
		}
		return nil, mapWriteError("increment assigned", err)
	}
	return l, nil
}

// DecrementAssigned resta qty de lo asignado, con suelo en cero.
func (r *StockLotRepo) DecrementAssigned(ctx context.Context, id string, qty decimal.Decimal) (*entity.StockLot, error) {
	query := `UPDATE stock_lots SET quantity_assigned = GREATEST(quantity_assigned - $2, 0), updated_at = now()
		WHERE id = $1
		RETURNING ` + lotColumns
	l, err := scanLot(r.q.QueryRow(ctx, query, id, qty))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("lote %s: %w", id, domain.ErrNotFound)
		}
		return nil, mapWriteError("decrement assigned", err)
	}
	return l, nil
}

func (r *StockLotRepo) missingOrConflict(ctx context.Context, id string) error {
	l, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if l == nil {
		return fmt.Errorf("lote %s: %w", id, domain.ErrNotFound)
	}
	return fmt.Errorf("%w: lote %s sin disponible suficiente", domain.ErrConflict, id)
}
