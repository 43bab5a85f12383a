package procurement

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/cpr-planning/internal/application/audit"
	"github.com/jhoicas/cpr-planning/internal/application/dto"
	"github.com/jhoicas/cpr-planning/internal/application/ports"
	"github.com/jhoicas/cpr-planning/internal/domain"
	"github.com/jhoicas/cpr-planning/internal/domain/entity"
	"github.com/jhoicas/cpr-planning/internal/domain/planning"
	"github.com/jhoicas/cpr-planning/internal/domain/repository"
	"github.com/jhoicas/cpr-planning/pkg/logger"
)

// ConsolidationUseCase convierte sub-pedidos seleccionados en pedidos de proveedor,
// uno por (fecha de entrega, localización).
type ConsolidationUseCase struct {
	txRunner ports.TxRunner
	orders   repository.ConsolidatedOrderRepository
	renderer ports.DocumentRenderer
	log      *logger.Logger
}

// NewConsolidationUseCase construye el caso de uso. renderer puede ser nil si no se
// sirven documentos.
func NewConsolidationUseCase(
	txRunner ports.TxRunner,
	orders repository.ConsolidatedOrderRepository,
	renderer ports.DocumentRenderer,
	log *logger.Logger,
) *ConsolidationUseCase {
	return &ConsolidationUseCase{
		txRunner: txRunner,
		orders:   orders,
		renderer: renderer,
		log:      log.Component("consolidation"),
	}
}

// Consolidate carga los sub-pedidos en una transacción, los fusiona, numera cada
// grupo con el siguiente A#### libre y marca los sub-pedidos como Enviado.
// Un id inexistente es ErrNotFound; un sub-pedido cancelado o ya enviado es ErrInvalidState.
func (uc *ConsolidationUseCase) Consolidate(ctx context.Context, actor string, in dto.ConsolidateRequest) (*dto.ConsolidateResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	ids := uniqueIDs(in.FragmentIDs)

	var created []*entity.ConsolidatedOrder
	err := uc.txRunner.Run(ctx, func(repos repository.Repos) error {
		fragments := make([]*entity.PendingOrderFragment, 0, len(ids))
		for _, id := range ids {
			f, err := repos.Fragments.GetForUpdate(ctx, id)
			if err != nil {
				return err
			}
			if f == nil {
				return fmt.Errorf("sub-pedido %s: %w", id, domain.ErrNotFound)
			}
			if f.Status.Terminal() {
				return fmt.Errorf("%w: sub-pedido %s en estado %s", domain.ErrInvalidState, id, f.Status)
			}
			fragments = append(fragments, f)
		}

		groups, err := planning.Consolidate(fragments)
		if err != nil {
			return err
		}

		numbers, err := repos.Consolidated.ListOrderNumbers(ctx)
		if err != nil {
			return err
		}
		now := time.Now().UTC()
		comment := strings.TrimSpace(in.Comment)
		for _, g := range groups {
			number := entity.NextOrderNumber(numbers)
			numbers = append(numbers, number)
			order := &entity.ConsolidatedOrder{
				ID:                uuid.New().String(),
				OrderNumber:       number,
				DeliveryDate:      g.DeliveryDate,
				DeliveryLocation:  g.DeliveryLocation,
				Items:             g.Items,
				SourceFragmentIDs: g.SourceFragmentIDs,
				Comment:           comment,
				CreatedAt:         now,
				Status:            entity.ConsolidatedStatusEnPreparacion,
			}
			if err := repos.Consolidated.Create(ctx, order); err != nil {
				return err
			}
			if err := audit.WriteLog(ctx, repos.Audit, audit.LogOptions{
				Actor:      actor,
				Action:     entity.AuditActionCreate,
				EntityType: entity.EntityConsolidatedOrder,
				EntityID:   order.ID,
				After:      toConsolidatedResponse(order),
			}); err != nil {
				return err
			}
			created = append(created, order)
		}

		// Enviado lo fija la consolidación aunque el sub-pedido no estuviera Confirmado.
		for _, f := range fragments {
			before := toFragmentResponse(f.Clone())
			f.Status = entity.FragmentStatusEnviado
			f.UpdatedAt = now
			if err := repos.Fragments.Update(ctx, f); err != nil {
				return err
			}
			if err := audit.WriteLog(ctx, repos.Audit, audit.LogOptions{
				Actor:      actor,
				Action:     entity.AuditActionUpdate,
				EntityType: entity.EntityOrderFragment,
				EntityID:   f.ID,
				Before:     before,
				After:      toFragmentResponse(f),
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := &dto.ConsolidateResponse{Orders: make([]dto.ConsolidatedOrderResponse, 0, len(created))}
	for _, o := range created {
		out.Orders = append(out.Orders, *toConsolidatedResponse(o))
		uc.log.Info().Str("order_number", o.OrderNumber).Int("fragments", len(o.SourceFragmentIDs)).
			Str("location", o.DeliveryLocation).Msg("pedido consolidado")
	}
	return out, nil
}

// Get obtiene un pedido consolidado.
func (uc *ConsolidationUseCase) Get(ctx context.Context, id string) (*dto.ConsolidatedOrderResponse, error) {
	o, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return toConsolidatedResponse(o), nil
}

// RenderDocument genera el PDF del pedido. Devuelve también el número de pedido
// para nombrar el fichero.
func (uc *ConsolidationUseCase) RenderDocument(ctx context.Context, id string) ([]byte, string, error) {
	if uc.renderer == nil {
		return nil, "", fmt.Errorf("renderizador de documentos no configurado")
	}
	o, err := uc.load(ctx, id)
	if err != nil {
		return nil, "", err
	}
	pdf, err := uc.renderer.RenderConsolidatedOrder(ctx, o)
	if err != nil {
		return nil, "", fmt.Errorf("generar documento %s: %w", o.OrderNumber, err)
	}
	return pdf, o.OrderNumber, nil
}

func (uc *ConsolidationUseCase) load(ctx context.Context, id string) (*entity.ConsolidatedOrder, error) {
	o, err := uc.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, fmt.Errorf("pedido %s: %w", id, domain.ErrNotFound)
	}
	return o, nil
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func toConsolidatedResponse(o *entity.ConsolidatedOrder) *dto.ConsolidatedOrderResponse {
	return &dto.ConsolidatedOrderResponse{
		ID:                o.ID,
		OrderNumber:       o.OrderNumber,
		DeliveryDate:      o.DeliveryDate.Format(entity.DateLayout),
		DeliveryLocation:  o.DeliveryLocation,
		Items:             toLineDTOs(o.Items),
		SourceFragmentIDs: append([]string{}, o.SourceFragmentIDs...),
		Comment:           o.Comment,
		Status:            string(o.Status),
		CreatedAt:         o.CreatedAt,
	}
}
