package procurement

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/cpr-planning/internal/application/audit"
	"github.com/jhoicas/cpr-planning/internal/application/dto"
	"github.com/jhoicas/cpr-planning/internal/application/ports"
	"github.com/jhoicas/cpr-planning/internal/domain"
	"github.com/jhoicas/cpr-planning/internal/domain/entity"
	"github.com/jhoicas/cpr-planning/internal/domain/repository"
)

// Franja horaria admitida para la hora de entrega.
const (
	earliestDelivery = "08:00"
	latestDelivery   = "22:00"
)

// FragmentUseCase sub-pedidos de Sala y Cocina previos a la consolidación.
// Solo puede haber un sub-pedido vivo por (fecha, localización, origen).
type FragmentUseCase struct {
	txRunner  ports.TxRunner
	fragments repository.OrderFragmentRepository
}

// NewFragmentUseCase construye el caso de uso.
func NewFragmentUseCase(txRunner ports.TxRunner, fragments repository.OrderFragmentRepository) *FragmentUseCase {
	return &FragmentUseCase{txRunner: txRunner, fragments: fragments}
}

// Create da de alta un sub-pedido. ErrConflict si la ranura está ocupada.
func (uc *FragmentUseCase) Create(ctx context.Context, actor string, in dto.CreateFragmentRequest) (*dto.FragmentResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	date, err := entity.ParseDate(in.DeliveryDate)
	if err != nil {
		return nil, domain.NewValidationError("delivery_date", "fecha inválida")
	}
	if err := checkDeliveryTime(in.DeliveryTime); err != nil {
		return nil, err
	}
	location := entity.NormalizeLocation(in.DeliveryLocation)
	if location == "" {
		return nil, domain.NewValidationError("delivery_location", "obligatorio")
	}
	items, err := toLines(in.Items)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	f := &entity.PendingOrderFragment{
		ID:               uuid.New().String(),
		ServiceOrderRef:  strings.TrimSpace(in.ServiceOrderRef),
		DeliveryDate:     date,
		DeliveryTime:     in.DeliveryTime,
		DeliveryLocation: location,
		RequestContext:   entity.RequestContext(in.RequestContext),
		SupplierRef:      strings.TrimSpace(in.SupplierRef),
		Items:            items,
		Status:           entity.FragmentStatusPendiente,
		CreatedBy:        actor,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	f.RecomputeTotals()

	err = uc.txRunner.Run(ctx, func(repos repository.Repos) error {
		if err := ensureSlotFree(ctx, repos, f, ""); err != nil {
			return err
		}
		if err := repos.Fragments.Create(ctx, f); err != nil {
			return err
		}
		return audit.WriteLog(ctx, repos.Audit, audit.LogOptions{
			Actor:      actor,
			Action:     entity.AuditActionCreate,
			EntityType: entity.EntityOrderFragment,
			EntityID:   f.ID,
			After:      toFragmentResponse(f),
		})
	})
	if err != nil {
		return nil, err
	}
	return toFragmentResponse(f), nil
}

// UpdateItems sustituye las líneas y recalcula los totales.
func (uc *FragmentUseCase) UpdateItems(ctx context.Context, actor, id string, in dto.UpdateFragmentItemsRequest) (*dto.FragmentResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	items, err := toLines(in.Items)
	if err != nil {
		return nil, err
	}
	return uc.mutate(ctx, actor, id, func(_ repository.Repos, f *entity.PendingOrderFragment) error {
		if f.Status.Terminal() {
			return fmt.Errorf("%w: sub-pedido en estado %s", domain.ErrInvalidState, f.Status)
		}
		f.Items = items
		f.RecomputeTotals()
		return nil
	})
}

// ChangeContext mueve el sub-pedido a otra fecha, localización u origen, comprobando
// que la nueva ranura no la ocupe otro sub-pedido vivo.
func (uc *FragmentUseCase) ChangeContext(ctx context.Context, actor, id string, in dto.ChangeFragmentContextRequest) (*dto.FragmentResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	return uc.mutate(ctx, actor, id, func(repos repository.Repos, f *entity.PendingOrderFragment) error {
		if f.Status.Terminal() {
			return fmt.Errorf("%w: sub-pedido en estado %s", domain.ErrInvalidState, f.Status)
		}
		if in.DeliveryDate != nil {
			d, err := entity.ParseDate(*in.DeliveryDate)
			if err != nil {
				return domain.NewValidationError("delivery_date", "fecha inválida")
			}
			f.DeliveryDate = d
		}
		if in.DeliveryLocation != nil {
			loc := entity.NormalizeLocation(*in.DeliveryLocation)
			if loc == "" {
				return domain.NewValidationError("delivery_location", "obligatorio")
			}
			f.DeliveryLocation = loc
		}
		if in.RequestContext != nil {
			f.RequestContext = entity.RequestContext(*in.RequestContext)
		}
		return ensureSlotFree(ctx, repos, f, f.ID)
	})
}

// ChangeStatus aplica una transición de la tabla de estados.
func (uc *FragmentUseCase) ChangeStatus(ctx context.Context, actor, id string, in dto.ChangeFragmentStatusRequest) (*dto.FragmentResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	next := entity.FragmentStatus(in.Status)
	return uc.mutate(ctx, actor, id, func(_ repository.Repos, f *entity.PendingOrderFragment) error {
		if !f.Status.CanTransitionTo(next) {
			return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidState, f.Status, next)
		}
		f.Status = next
		return nil
	})
}

func (uc *FragmentUseCase) mutate(
	ctx context.Context,
	actor, id string,
	apply func(repos repository.Repos, f *entity.PendingOrderFragment) error,
) (*dto.FragmentResponse, error) {
	var out *entity.PendingOrderFragment
	err := uc.txRunner.Run(ctx, func(repos repository.Repos) error {
		f, err := repos.Fragments.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if f == nil {
			return fmt.Errorf("sub-pedido %s: %w", id, domain.ErrNotFound)
		}
		before := toFragmentResponse(f.Clone())
		if err := apply(repos, f); err != nil {
			return err
		}
		f.UpdatedAt = time.Now().UTC()
		if err := repos.Fragments.Update(ctx, f); err != nil {
			return err
		}
		out = f
		return audit.WriteLog(ctx, repos.Audit, audit.LogOptions{
			Actor:      actor,
			Action:     entity.AuditActionUpdate,
			EntityType: entity.EntityOrderFragment,
			EntityID:   f.ID,
			Before:     before,
			After:      toFragmentResponse(f),
		})
	})
	if err != nil {
		return nil, err
	}
	return toFragmentResponse(out), nil
}

// Get obtiene un sub-pedido (también cancelados o enviados).
func (uc *FragmentUseCase) Get(ctx context.Context, id string) (*dto.FragmentResponse, error) {
	f, err := uc.fragments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, fmt.Errorf("sub-pedido %s: %w", id, domain.ErrNotFound)
	}
	return toFragmentResponse(f), nil
}

// ListLive sub-pedidos no cancelados con entrega en el rango.
func (uc *FragmentUseCase) ListLive(ctx context.Context, q dto.ListFragmentsQuery) ([]dto.FragmentResponse, error) {
	if err := dto.Validate(q); err != nil {
		return nil, err
	}
	var from, to *time.Time
	if q.From != "" {
		d, _ := entity.ParseDate(q.From)
		from = &d
	}
	if q.To != "" {
		d, _ := entity.ParseDate(q.To)
		to = &d
	}
	list, err := uc.fragments.ListLive(ctx, from, to)
	if err != nil {
		return nil, err
	}
	out := make([]dto.FragmentResponse, 0, len(list))
	for _, f := range list {
		out = append(out, *toFragmentResponse(f))
	}
	return out, nil
}

// ensureSlotFree ErrConflict si otro sub-pedido vivo (distinto de selfID) ocupa la ranura.
func ensureSlotFree(ctx context.Context, repos repository.Repos, f *entity.PendingOrderFragment, selfID string) error {
	other, err := repos.Fragments.FindLiveBySlot(ctx, f.DeliveryDate, f.DeliveryLocation, f.RequestContext)
	if err != nil {
		return err
	}
	if other != nil && other.ID != selfID {
		return fmt.Errorf("%w: ya existe un sub-pedido de %s para %s el %s",
			domain.ErrConflict, f.RequestContext, f.DeliveryLocation, f.DeliveryDate.Format(entity.DateLayout))
	}
	return nil
}

func checkDeliveryTime(s string) error {
	if s == "" {
		return nil
	}
	// HH:MM con ceros a la izquierda: la comparación de cadenas es cronológica.
	if s < earliestDelivery || s > latestDelivery {
		return domain.NewValidationError("delivery_time", "fuera de la franja "+earliestDelivery+"-"+latestDelivery)
	}
	return nil
}

// toLines normaliza las referencias; una referencia en blanco se mezclaría con
// otras al consolidar.
func toLines(items []dto.OrderLineDTO) ([]entity.OrderLine, error) {
	out := make([]entity.OrderLine, 0, len(items))
	verr := &domain.ValidationError{}
	for i, it := range items {
		ref := strings.TrimSpace(it.ItemRef)
		if ref == "" {
			verr.Add(fmt.Sprintf("items[%d].item_ref", i), "obligatorio")
			continue
		}
		out = append(out, entity.OrderLine{
			ItemRef:     ref,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}
	if verr.HasErrors() {
		return nil, verr
	}
	return out, nil
}

func toLineDTOs(lines []entity.OrderLine) []dto.OrderLineDTO {
	out := make([]dto.OrderLineDTO, 0, len(lines))
	for _, l := range lines {
		out = append(out, dto.OrderLineDTO{
			ItemRef:     l.ItemRef,
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
		})
	}
	return out
}

func toFragmentResponse(f *entity.PendingOrderFragment) *dto.FragmentResponse {
	return &dto.FragmentResponse{
		ID:               f.ID,
		ServiceOrderRef:  f.ServiceOrderRef,
		DeliveryDate:     f.DeliveryDate.Format(entity.DateLayout),
		DeliveryTime:     f.DeliveryTime,
		DeliveryLocation: f.DeliveryLocation,
		RequestContext:   string(f.RequestContext),
		SupplierRef:      f.SupplierRef,
		Items:            toLineDTOs(f.Items),
		ItemCount:        f.ItemCount,
		UnitCount:        f.UnitCount,
		Status:           string(f.Status),
		CreatedBy:        f.CreatedBy,
		CreatedAt:        f.CreatedAt,
		UpdatedAt:        f.UpdatedAt,
	}
}
