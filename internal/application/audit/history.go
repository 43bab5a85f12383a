package audit

import (
	"context"
	"fmt"

	"github.com/jhoicas/cpr-planning/internal/application/dto"
	"github.com/jhoicas/cpr-planning/internal/domain"
	"github.com/jhoicas/cpr-planning/internal/domain/entity"
	"github.com/jhoicas/cpr-planning/internal/domain/repository"
)

var auditedTypes = map[string]bool{
	entity.EntityManufacturingOrder: true,
	entity.EntityStockLot:           true,
	entity.EntityOrderFragment:      true,
	entity.EntityConsolidatedOrder:  true,
}

// HistoryUseCase consulta del registro de actividad de una entidad.
type HistoryUseCase struct {
	repo repository.AuditRepository
}

// NewHistoryUseCase construye el caso de uso.
func NewHistoryUseCase(repo repository.AuditRepository) *HistoryUseCase {
	return &HistoryUseCase{repo: repo}
}

// ListByEntity devuelve las entradas en orden de registro.
func (uc *HistoryUseCase) ListByEntity(ctx context.Context, entityType, entityID string) ([]dto.AuditEntryResponse, error) {
	if !auditedTypes[entityType] {
		return nil, domain.NewValidationError("entity_type", "tipo de entidad desconocido")
	}
	if entityID == "" {
		return nil, domain.NewValidationError("entity_id", "obligatorio")
	}
	list, err := uc.repo.ListByEntity(ctx, entityType, entityID)
	if err != nil {
		return nil, fmt.Errorf("historial %s/%s: %w", entityType, entityID, err)
	}
	out := make([]dto.AuditEntryResponse, 0, len(list))
	for _, e := range list {
		out = append(out, dto.AuditEntryResponse{
			ID:         e.ID,
			Actor:      e.Actor,
			Action:     string(e.Action),
			EntityType: e.EntityType,
			EntityID:   e.EntityID,
			Before:     e.Before,
			After:      e.After,
			CreatedAt:  e.CreatedAt,
		})
	}
	return out, nil
}
