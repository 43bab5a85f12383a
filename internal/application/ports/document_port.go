package ports

import (
	"context"

	"github.com/jhoicas/cpr-planning/internal/domain/entity"
)

// DocumentRenderer genera el documento imprimible de un pedido consolidado
// (el que se envía al proveedor).
type DocumentRenderer interface {
	RenderConsolidatedOrder(ctx context.Context, order *entity.ConsolidatedOrder) ([]byte, error)
}
