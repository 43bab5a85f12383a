package repository

import (
	"context"
	"time"

	"github.com/jhoicas/cpr-planning/internal/domain/entity"
)

// OrderFragmentRepository define el puerto de persistencia para sub-pedidos.
// Create y Update devuelven domain.ErrConflict si la ranura
// (fecha, localización normalizada, contexto) ya la ocupa otro sub-pedido vivo.
type OrderFragmentRepository interface {
	Create(ctx context.Context, f *entity.PendingOrderFragment) error
	GetByID(ctx context.Context, id string) (*entity.PendingOrderFragment, error)
	GetForUpdate(ctx context.Context, id string) (*entity.PendingOrderFragment, error)
	Update(ctx context.Context, f *entity.PendingOrderFragment) error

	// FindLiveBySlot sub-pedido no cancelado que ocupa la ranura, o nil.
	FindLiveBySlot(ctx context.Context, date time.Time, location string, reqCtx entity.RequestContext) (*entity.PendingOrderFragment, error)
	// ListLive sub-pedidos no cancelados con entrega en [from, to]; nil = sin límite.
	ListLive(ctx context.Context, from, to *time.Time) ([]*entity.PendingOrderFragment, error)
}
