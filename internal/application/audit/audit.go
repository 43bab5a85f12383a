// Package audit escribe el registro de actividad. Cada mutación deja una entrada
// dentro de la misma transacción que la produce.
package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/cpr-planning/internal/domain/entity"
	"github.com/jhoicas/cpr-planning/internal/domain/repository"
)

// SystemActor actor de las operaciones sin usuario (CLI, tareas).
const SystemActor = "system"

// LogOptions datos de una entrada. Before/After deben ser serializables a JSON.
type LogOptions struct {
	Actor      string
	Action     entity.AuditAction
	EntityType string
	EntityID   string
	Before     any
	After      any
}

// WriteLog registra la entrada usando el repositorio de la transacción en curso.
func WriteLog(ctx context.Context, repo repository.AuditRepository, opts LogOptions) error {
	actor := opts.Actor
	if actor == "" {
		actor = SystemActor
	}
	entry := &entity.AuditEntry{
		ID:         uuid.New().String(),
		Actor:      actor,
		Action:     opts.Action,
		EntityType: opts.EntityType,
		EntityID:   opts.EntityID,
		Before:     opts.Before,
		After:      opts.After,
		CreatedAt:  time.Now().UTC(),
	}
	if err := repo.Record(ctx, entry); err != nil {
		return fmt.Errorf("registrar auditoría %s/%s: %w", opts.EntityType, opts.EntityID, err)
	}
	return nil
}
