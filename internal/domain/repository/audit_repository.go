package repository

import (
	"context"

	"github.com/jhoicas/cpr-planning/internal/domain/entity"
)

// AuditRepository registro de actividad. Record se llama dentro de la misma
// transacción que la mutación auditada.
type AuditRepository interface {
	Record(ctx context.Context, entry *entity.AuditEntry) error
	ListByEntity(ctx context.Context, entityType, entityID string) ([]*entity.AuditEntry, error)
}
