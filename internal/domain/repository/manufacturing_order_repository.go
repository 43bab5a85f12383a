package repository

import (
	"context"
	"time"

	"github.com/jhoicas/cpr-planning/internal/domain/entity"
)

// ManufacturingOrderFilter filtros del listado de OFs. Campos vacíos no filtran.
type ManufacturingOrderFilter struct {
	Status     entity.MOStatus
	Station    entity.Station
	ProductRef string
	From       *time.Time
	To         *time.Time
}

// ManufacturingOrderRepository define el puerto de persistencia para órdenes de fabricación.
// Los Get devuelven (nil, nil) si no existe la fila.
type ManufacturingOrderRepository interface {
	// Create devuelve domain.ErrConflict si ya hay una OF no fallida para (producto, fecha).
	Create(ctx context.Context, mo *entity.ManufacturingOrder) error
	GetByID(ctx context.Context, id string) (*entity.ManufacturingOrder, error)
	// GetForUpdate bloquea la fila hasta el fin de la transacción.
	GetForUpdate(ctx context.Context, id string) (*entity.ManufacturingOrder, error)
	// FindPlanned devuelve la OF que ocupa (producto, fecha), es decir, cualquiera salvo Incidencia.
	FindPlanned(ctx context.Context, productRef string, date time.Time) (*entity.ManufacturingOrder, error)
	Update(ctx context.Context, mo *entity.ManufacturingOrder) error
	List(ctx context.Context, filter ManufacturingOrderFilter) ([]*entity.ManufacturingOrder, error)
	// ListOpen OFs Pendiente/Asignado con fecha en [from, to].
	ListOpen(ctx context.Context, from, to time.Time) ([]*entity.ManufacturingOrder, error)
}
