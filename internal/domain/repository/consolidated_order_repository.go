package repository

import (
	"context"

	"github.com/jhoicas/cpr-planning/internal/domain/entity"
)

// ConsolidatedOrderRepository define el puerto de persistencia para pedidos consolidados.
type ConsolidatedOrderRepository interface {
	// Create devuelve domain.ErrConflict si el número de pedido ya existe.
	Create(ctx context.Context, o *entity.ConsolidatedOrder) error
	GetByID(ctx context.Context, id string) (*entity.ConsolidatedOrder, error)
	ListAll(ctx context.Context) ([]*entity.ConsolidatedOrder, error)
	ListOrderNumbers(ctx context.Context) ([]string, error)

	// DeleteDuplicates borra las filas ids con ese número de pedido excepto keeperID,
	// que queda excluido explícitamente en la propia sentencia. Devuelve los ids borrados.
	DeleteDuplicates(ctx context.Context, orderNumber, keeperID string, ids []string) ([]string, error)
}
