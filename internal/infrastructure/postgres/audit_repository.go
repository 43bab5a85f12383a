package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/cpr-planning/internal/domain/entity"
	"github.com/jhoicas/cpr-planning/internal/domain/repository"
)

var _ repository.AuditRepository = (*AuditRepo)(nil)

// AuditRepo registro de actividad (activity_log). Antes/después se guardan como JSONB.
type AuditRepo struct {
	q Querier
}

// NewAuditRepository construye el adaptador.
func NewAuditRepository(q Querier) *AuditRepo {
	return &AuditRepo{q: q}
}

func toJSON(v any) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	return json.Marshal(v)
}

func (r *AuditRepo) Record(ctx context.Context, e *entity.AuditEntry) error {
	before, err := toJSON(e.Before)
	if err != nil {
		return fmt.Errorf("marshal before: %w", err)
	}
	after, err := toJSON(e.After)
	if err != nil {
		return fmt.Errorf("marshal after: %w", err)
	}
	_, err = r.q.Exec(ctx,
		`INSERT INTO activity_log (id, actor, action, entity_type, entity_id, before, after, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		e.ID, e.Actor, e.Action, e.EntityType, e.EntityID, before, after, e.CreatedAt)
	return mapWriteError("insert activity log", err)
}

// ListByEntity historial de una entidad en orden cronológico. Before/After vuelven
// como json.RawMessage.
func (r *AuditRepo) ListByEntity(ctx context.Context, entityType, entityID string) ([]*entity.AuditEntry, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, actor, action, entity_type, entity_id, before, after, created_at
		 FROM activity_log WHERE entity_type = $1 AND entity_id = $2 ORDER BY created_at, id`,
		entityType, entityID)
	if err != nil {
		return nil, fmt.Errorf("list activity log: %w", err)
	}
	defer rows.Close()
	var out []*entity.AuditEntry
	for rows.Next() {
		var (
			e             entity.AuditEntry
			before, after []byte
		)
		if err := rows.Scan(&e.ID, &e.Actor, &e.Action, &e.EntityType, &e.EntityID, &before, &after, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan activity log: %w", err)
		}
		if before != nil {
			e.Before = json.RawMessage(before)
		}
		if after != nil {
			e.After = json.RawMessage(after)
		}
		out = append(out, &e)
	}
	return out, rows.Err()
}
