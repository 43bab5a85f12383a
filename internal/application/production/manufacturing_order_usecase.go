package production

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cpr-planning/internal/application/audit"
	"github.com/jhoicas/cpr-planning/internal/application/dto"
	"github.com/jhoicas/cpr-planning/internal/application/ports"
	"github.com/jhoicas/cpr-planning/internal/application/stock"
	"github.com/jhoicas/cpr-planning/internal/domain"
	"github.com/jhoicas/cpr-planning/internal/domain/entity"
	"github.com/jhoicas/cpr-planning/internal/domain/repository"
	"github.com/jhoicas/cpr-planning/pkg/logger"
)

// LotDepositor alta de lote dentro de la transacción del cierre de la OF.
type LotDepositor interface {
	DepositInTx(ctx context.Context, repos repository.Repos, actor string, in stock.DepositInput) (*entity.StockLot, error)
}

// ManufacturingOrderUseCase ciclo de vida de las órdenes de fabricación.
// Cada operación es una transacción con una entrada de auditoría por mutación.
type ManufacturingOrderUseCase struct {
	txRunner  ports.TxRunner
	orders    repository.ManufacturingOrderRepository
	depositor LotDepositor
	log       *logger.Logger
}

// NewManufacturingOrderUseCase construye el caso de uso.
func NewManufacturingOrderUseCase(
	txRunner ports.TxRunner,
	orders repository.ManufacturingOrderRepository,
	depositor LotDepositor,
	log *logger.Logger,
) *ManufacturingOrderUseCase {
	return &ManufacturingOrderUseCase{
		txRunner:  txRunner,
		orders:    orders,
		depositor: depositor,
		log:       log.Component("manufacturing"),
	}
}

type createInput struct {
	productRef  string
	productName string
	quantity    decimal.Decimal
	unit        string
	date        time.Time
	station     entity.Station
}

// Create da de alta una OF. Falla con ErrConflict si ya hay una OF no fallida para
// el mismo producto y fecha.
func (uc *ManufacturingOrderUseCase) Create(ctx context.Context, actor string, in dto.CreateManufacturingOrderRequest) (*dto.ManufacturingOrderResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	date, err := entity.ParseDate(in.ScheduledDate)
	if err != nil {
		return nil, domain.NewValidationError("scheduled_date", "fecha inválida")
	}
	mo, err := uc.create(ctx, actor, createInput{
		productRef:  strings.TrimSpace(in.ProductRef),
		productName: in.ProductName,
		quantity:    in.PlannedQuantity,
		unit:        in.Unit,
		date:        date,
		station:     entity.Station(in.Station),
	})
	if err != nil {
		return nil, err
	}
	return toMOResponse(mo), nil
}

// CreateFromNeeds genera una OF por necesidad. Cada una va en su propia transacción:
// un conflicto o error de validación se informa en Failed y no detiene el resto.
func (uc *ManufacturingOrderUseCase) CreateFromNeeds(ctx context.Context, actor string, in dto.CreateFromNeedsRequest) (*dto.CreateFromNeedsResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	var override time.Time
	if in.ScheduledDate != "" {
		d, err := entity.ParseDate(in.ScheduledDate)
		if err != nil {
			return nil, domain.NewValidationError("scheduled_date", "fecha inválida")
		}
		override = d
	}

	out := &dto.CreateFromNeedsResponse{
		Created: []dto.ManufacturingOrderResponse{},
		Failed:  []dto.BatchFailure{},
	}
	for i, need := range in.Needs {
		date := override
		if date.IsZero() {
			d, err := entity.ParseDate(need.Date)
			if err != nil {
				out.Failed = append(out.Failed, batchFailure(need, need.Date, domain.NewValidationError(fmt.Sprintf("needs[%d].date", i), "fecha inválida")))
				continue
			}
			date = d
		}
		station := entity.Station(need.Station)
		if station == "" {
			station = entity.Station(in.Station)
		}
		mo, err := uc.create(ctx, actor, createInput{
			productRef:  strings.TrimSpace(need.ProductRef),
			productName: need.ProductName,
			quantity:    need.Quantity,
			unit:        need.Unit,
			date:        date,
			station:     station,
		})
		if err != nil {
			if !errors.Is(err, domain.ErrConflict) && !errors.Is(err, domain.ErrInvalidInput) {
				return nil, err
			}
			out.Failed = append(out.Failed, batchFailure(need, date.Format(entity.DateLayout), err))
			continue
		}
		out.Created = append(out.Created, *toMOResponse(mo))
	}
	uc.log.Info().Int("created", len(out.Created)).Int("failed", len(out.Failed)).Msg("OFs generadas desde necesidades")
	return out, nil
}

func batchFailure(need dto.DemandLine, date string, err error) dto.BatchFailure {
	code := "VALIDATION"
	if errors.Is(err, domain.ErrConflict) {
		code = "CONFLICT"
	}
	return dto.BatchFailure{ProductRef: need.ProductRef, Date: date, Code: code, Message: err.Error()}
}

func (uc *ManufacturingOrderUseCase) create(ctx context.Context, actor string, in createInput) (*entity.ManufacturingOrder, error) {
	verr := &domain.ValidationError{}
	if in.productRef == "" {
		verr.Add("product_ref", "obligatorio")
	}
	if !in.quantity.GreaterThan(decimal.Zero) {
		verr.Add("planned_quantity", "debe ser mayor que 0")
	}
	if !in.station.Valid() {
		verr.Add("station", "partida desconocida")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	mo := &entity.ManufacturingOrder{
		ID:              uuid.New().String(),
		ProductRef:      in.productRef,
		ProductName:     in.productName,
		PlannedQuantity: in.quantity,
		Unit:            in.unit,
		ScheduledDate:   entity.DateOnly(in.date),
		Station:         in.station,
		Status:          entity.MOStatusPendiente,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	mo.Code = orderCode(mo.ScheduledDate, mo.ID)

	err := uc.txRunner.Run(ctx, func(repos repository.Repos) error {
		existing, err := repos.Orders.FindPlanned(ctx, mo.ProductRef, mo.ScheduledDate)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("%w: ya existe la OF %s para %s el %s",
				domain.ErrConflict, existing.Code, mo.ProductRef, mo.ScheduledDate.Format(entity.DateLayout))
		}
		if err := repos.Orders.Create(ctx, mo); err != nil {
			return err
		}
		return audit.WriteLog(ctx, repos.Audit, audit.LogOptions{
			Actor:      actor,
			Action:     entity.AuditActionCreate,
			EntityType: entity.EntityManufacturingOrder,
			EntityID:   mo.ID,
			After:      toMOResponse(mo),
		})
	})
	if err != nil {
		return nil, err
	}
	return mo, nil
}

// orderCode OF-YYYYMMDD-XXXXXX a partir de la fecha y del id.
func orderCode(date time.Time, id string) string {
	suffix := strings.ToUpper(strings.ReplaceAll(id, "-", ""))
	if len(suffix) > 6 {
		suffix = suffix[:6]
	}
	return "OF-" + date.Format("20060102") + "-" + suffix
}

// Assign asigna (o reasigna) la OF a un operario. ErrInvalidState si es terminal.
func (uc *ManufacturingOrderUseCase) Assign(ctx context.Context, actor, id string, in dto.AssignManufacturingOrderRequest) (*dto.ManufacturingOrderResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	assignee := strings.TrimSpace(in.Assignee)
	if assignee == "" {
		return nil, domain.NewValidationError("assignee", "obligatorio")
	}
	return uc.transition(ctx, actor, id, entity.MOStatusAsignado, func(mo *entity.ManufacturingOrder, now time.Time) {
		mo.Assignee = &assignee
		if in.Station != "" {
			mo.Station = entity.Station(in.Station)
		}
		mo.AssignedAt = &now
	})
}

// ReportIncident cierra la OF como fallida con notas obligatorias.
func (uc *ManufacturingOrderUseCase) ReportIncident(ctx context.Context, actor, id string, in dto.ReportIncidentRequest) (*dto.ManufacturingOrderResponse, error) {
	notes := strings.TrimSpace(in.Notes)
	if notes == "" {
		return nil, domain.NewValidationError("notes", "obligatorio")
	}
	return uc.transition(ctx, actor, id, entity.MOStatusIncidencia, func(mo *entity.ManufacturingOrder, _ time.Time) {
		mo.IncidentNotes = &notes
	})
}

func (uc *ManufacturingOrderUseCase) transition(
	ctx context.Context,
	actor, id string,
	next entity.MOStatus,
	apply func(mo *entity.ManufacturingOrder, now time.Time),
) (*dto.ManufacturingOrderResponse, error) {
	var out *entity.ManufacturingOrder
	err := uc.txRunner.Run(ctx, func(repos repository.Repos) error {
		mo, err := loadForUpdate(ctx, repos, id)
		if err != nil {
			return err
		}
		if !mo.Status.CanTransitionTo(next) {
			return fmt.Errorf("%w: OF %s en estado %s no admite %s", domain.ErrInvalidState, mo.Code, mo.Status, next)
		}
		before := toMOResponse(mo.Clone())
		now := time.Now().UTC()
		apply(mo, now)
		mo.Status = next
		mo.UpdatedAt = now
		if err := repos.Orders.Update(ctx, mo); err != nil {
			return err
		}
		out = mo
		return audit.WriteLog(ctx, repos.Audit, audit.LogOptions{
			Actor:      actor,
			Action:     entity.AuditActionUpdate,
			EntityType: entity.EntityManufacturingOrder,
			EntityID:   mo.ID,
			Before:     before,
			After:      toMOResponse(mo),
		})
	})
	if err != nil {
		return nil, err
	}
	return toMOResponse(out), nil
}

// Complete cierra una OF asignada con la cantidad real y deposita exactamente un
// lote en la misma transacción.
func (uc *ManufacturingOrderUseCase) Complete(ctx context.Context, actor, id string, in dto.CompleteManufacturingOrderRequest) (*dto.CompleteManufacturingOrderResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	exp, err := entity.ParseDate(in.ExpirationDate)
	if err != nil {
		return nil, domain.NewValidationError("expiration_date", "fecha inválida")
	}

	var (
		mo  *entity.ManufacturingOrder
		lot *entity.StockLot
	)
	err = uc.txRunner.Run(ctx, func(repos repository.Repos) error {
		var err error
		mo, err = loadForUpdate(ctx, repos, id)
		if err != nil {
			return err
		}
		if !mo.Status.CanTransitionTo(entity.MOStatusCompletado) {
			return fmt.Errorf("%w: OF %s en estado %s no se puede completar", domain.ErrInvalidState, mo.Code, mo.Status)
		}
		before := toMOResponse(mo.Clone())
		now := time.Now().UTC()
		actual := in.ActualQuantity
		mo.ActualQuantity = &actual
		mo.CompletedAt = &now
		mo.Status = entity.MOStatusCompletado
		mo.UpdatedAt = now
		if err := repos.Orders.Update(ctx, mo); err != nil {
			return err
		}
		if err := audit.WriteLog(ctx, repos.Audit, audit.LogOptions{
			Actor:      actor,
			Action:     entity.AuditActionUpdate,
			EntityType: entity.EntityManufacturingOrder,
			EntityID:   mo.ID,
			Before:     before,
			After:      toMOResponse(mo),
		}); err != nil {
			return err
		}
		sourceID := mo.ID
		lot, err = uc.depositor.DepositInTx(ctx, repos, actor, stock.DepositInput{
			ProductRef:     mo.ProductRef,
			Quantity:       actual,
			Unit:           mo.Unit,
			ExpirationDate: exp,
			SourceMOID:     &sourceID,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return &dto.CompleteManufacturingOrderResponse{
		Order: *toMOResponse(mo),
		Lot:   *stock.ToLotResponse(lot),
	}, nil
}

// Get obtiene una OF por id.
func (uc *ManufacturingOrderUseCase) Get(ctx context.Context, id string) (*dto.ManufacturingOrderResponse, error) {
	mo, err := uc.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if mo == nil {
		return nil, fmt.Errorf("OF %s: %w", id, domain.ErrNotFound)
	}
	return toMOResponse(mo), nil
}

// List lista OFs por estado, partida, producto y rango de fechas.
func (uc *ManufacturingOrderUseCase) List(ctx context.Context, q dto.ListManufacturingOrdersQuery) ([]dto.ManufacturingOrderResponse, error) {
	if err := dto.Validate(q); err != nil {
		return nil, err
	}
	filter := repository.ManufacturingOrderFilter{
		Status:     entity.MOStatus(q.Status),
		Station:    entity.Station(q.Station),
		ProductRef: strings.TrimSpace(q.ProductRef),
	}
	if q.From != "" {
		d, _ := entity.ParseDate(q.From)
		filter.From = &d
	}
	if q.To != "" {
		d, _ := entity.ParseDate(q.To)
		filter.To = &d
	}
	list, err := uc.orders.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ManufacturingOrderResponse, 0, len(list))
	for _, mo := range list {
		out = append(out, *toMOResponse(mo))
	}
	return out, nil
}

func loadForUpdate(ctx context.Context, repos repository.Repos, id string) (*entity.ManufacturingOrder, error) {
	mo, err := repos.Orders.GetForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}
	if mo == nil {
		return nil, fmt.Errorf("OF %s: %w", id, domain.ErrNotFound)
	}
	return mo, nil
}

func toMOResponse(mo *entity.ManufacturingOrder) *dto.ManufacturingOrderResponse {
	return &dto.ManufacturingOrderResponse{
		ID:              mo.ID,
		Code:            mo.Code,
		ProductRef:      mo.ProductRef,
		ProductName:     mo.ProductName,
		PlannedQuantity: mo.PlannedQuantity,
		Unit:            mo.Unit,
		ScheduledDate:   mo.ScheduledDate.Format(entity.DateLayout),
		Station:         string(mo.Station),
		Assignee:        mo.Assignee,
		Status:          string(mo.Status),
		IncidentNotes:   mo.IncidentNotes,
		ActualQuantity:  mo.ActualQuantity,
		CreatedAt:       mo.CreatedAt,
		AssignedAt:      mo.AssignedAt,
		CompletedAt:     mo.CompletedAt,
		UpdatedAt:       mo.UpdatedAt,
	}
}
