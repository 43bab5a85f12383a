package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/cpr-planning/internal/domain/entity"
)

// StockLotRepository define el puerto de persistencia para lotes de producción.
type StockLotRepository interface {
	Create(ctx context.Context, lot *entity.StockLot) error
	GetByID(ctx context.Context, id string) (*entity.StockLot, error)
	GetForUpdate(ctx context.Context, id string) (*entity.StockLot, error)

	// ListAvailable lotes con disponible > 0 en orden FEFO. productRef vacío = todos.
	ListAvailable(ctx context.Context, productRef string) ([]*entity.StockLot, error)
	// ListAvailableForUpdate lotes de un producto bloqueando las filas (SELECT FOR UPDATE).
	// productRef vacío no es comodín: devuelve lista vacía.
	ListAvailableForUpdate(ctx context.Context, productRef string) ([]*entity.StockLot, error)

	// IncrementAssigned suma qty a quantity_assigned solo si no supera lo producido;
	// si la guarda falla devuelve domain.ErrConflict y no modifica nada.
	IncrementAssigned(ctx context.Context, id string, qty decimal.Decimal) (*entity.StockLot, error)
	// DecrementAssigned resta qty a quantity_assigned con suelo en cero.
	DecrementAssigned(ctx context.Context, id string, qty decimal.Decimal) (*entity.StockLot, error)
}
