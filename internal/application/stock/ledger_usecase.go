package stock

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cpr-planning/internal/application/audit"
	"github.com/jhoicas/cpr-planning/internal/application/dto"
	"github.com/jhoicas/cpr-planning/internal/application/ports"
	"github.com/jhoicas/cpr-planning/internal/domain"
	"github.com/jhoicas/cpr-planning/internal/domain/entity"
	"github.com/jhoicas/cpr-planning/internal/domain/planning"
	"github.com/jhoicas/cpr-planning/internal/domain/repository"
	"github.com/jhoicas/cpr-planning/pkg/logger"
)

// LedgerUseCase libro de lotes: altas, consumo FEFO y devoluciones.
// Todas las escrituras van en transacción con bloqueo de fila (SELECT FOR UPDATE).
type LedgerUseCase struct {
	txRunner ports.TxRunner
	lots     repository.StockLotRepository
	log      *logger.Logger
}

// NewLedgerUseCase construye el caso de uso. lots es el repositorio de lectura (fuera de tx).
func NewLedgerUseCase(txRunner ports.TxRunner, lots repository.StockLotRepository, log *logger.Logger) *LedgerUseCase {
	return &LedgerUseCase{txRunner: txRunner, lots: lots, log: log.Component("stock")}
}

// DepositInput alta de lote dentro de una transacción ya abierta.
type DepositInput struct {
	ProductRef     string
	Quantity       decimal.Decimal
	Unit           string
	ExpirationDate time.Time
	SourceMOID     *string
}

// Deposit registra un lote manual (ajuste de inventario).
func (uc *LedgerUseCase) Deposit(ctx context.Context, actor string, in dto.DepositRequest) (*dto.StockLotResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	exp, err := entity.ParseDate(in.ExpirationDate)
	if err != nil {
		return nil, domain.NewValidationError("expiration_date", "fecha inválida")
	}
	input := DepositInput{
		ProductRef:     strings.TrimSpace(in.ProductRef),
		Quantity:       in.Quantity,
		Unit:           in.Unit,
		ExpirationDate: exp,
	}
	if in.SourceMOID != "" {
		id := in.SourceMOID
		input.SourceMOID = &id
	}
	var lot *entity.StockLot
	err = uc.txRunner.Run(ctx, func(repos repository.Repos) error {
		var err error
		lot, err = uc.DepositInTx(ctx, repos, actor, input)
		return err
	})
	if err != nil {
		return nil, err
	}
	return ToLotResponse(lot), nil
}

// DepositInTx crea el lote con los repositorios de la transacción del llamador.
// Lo usa el cierre de OFs para que OF y lote se confirmen juntos.
func (uc *LedgerUseCase) DepositInTx(ctx context.Context, repos repository.Repos, actor string, in DepositInput) (*entity.StockLot, error) {
	if in.ProductRef == "" {
		return nil, domain.NewValidationError("product_ref", "obligatorio")
	}
	if !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.NewValidationError("quantity", "debe ser mayor que 0")
	}
	if in.ExpirationDate.IsZero() {
		return nil, domain.NewValidationError("expiration_date", "obligatorio")
	}
	now := time.Now().UTC()
	lot := &entity.StockLot{
		ID:               uuid.New().String(),
		ProductRef:       in.ProductRef,
		SourceMOID:       in.SourceMOID,
		QuantityProduced: in.Quantity,
		QuantityAssigned: decimal.Zero,
		Unit:             in.Unit,
		ExpirationDate:   entity.DateOnly(in.ExpirationDate),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := repos.Lots.Create(ctx, lot); err != nil {
		return nil, err
	}
	if err := audit.WriteLog(ctx, repos.Audit, audit.LogOptions{
		Actor:      actor,
		Action:     entity.AuditActionCreate,
		EntityType: entity.EntityStockLot,
		EntityID:   lot.ID,
		After:      ToLotResponse(lot),
	}); err != nil {
		return nil, err
	}
	uc.log.Info().Str("lot_id", lot.ID).Str("product_ref", lot.ProductRef).
		Str("quantity", lot.QuantityProduced.String()).Msg("lote registrado")
	return lot, nil
}

// Allocate reparte la cantidad pedida entre los lotes del producto, caducidad más
// próxima primero. Nunca falla por falta de stock: el faltante va en la respuesta.
func (uc *LedgerUseCase) Allocate(ctx context.Context, actor string, in dto.AllocateRequest) (*dto.AllocationResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	var excludeAt time.Time
	if in.ExcludeExpiredAt != "" {
		d, err := entity.ParseDate(in.ExcludeExpiredAt)
		if err != nil {
			return nil, domain.NewValidationError("exclude_expired_at", "fecha inválida")
		}
		excludeAt = d
	}
	productRef := strings.TrimSpace(in.ProductRef)
	if productRef == "" {
		return nil, domain.NewValidationError("product_ref", "obligatorio")
	}

	var plan planning.AllocationPlan
	err := uc.txRunner.Run(ctx, func(repos repository.Repos) error {
		lots, err := repos.Lots.ListAvailableForUpdate(ctx, productRef)
		if err != nil {
			return err
		}
		if !excludeAt.IsZero() {
			usable := lots[:0]
			for _, l := range lots {
				if !l.ExpiredAt(excludeAt) {
					usable = append(usable, l)
				}
			}
			lots = usable
		}
		byID := make(map[string]*entity.StockLot, len(lots))
		for _, l := range lots {
			byID[l.ID] = l
		}

		plan = planning.PlanAllocation(lots, in.Quantity)
		for _, a := range plan.Allocations {
			before := ToLotResponse(byID[a.LotID])
			updated, err := repos.Lots.IncrementAssigned(ctx, a.LotID, a.Quantity)
			if err != nil {
				return fmt.Errorf("asignar lote %s: %w", a.LotID, err)
			}
			if err := audit.WriteLog(ctx, repos.Audit, audit.LogOptions{
				Actor:      actor,
				Action:     entity.AuditActionAllocate,
				EntityType: entity.EntityStockLot,
				EntityID:   a.LotID,
				Before:     before,
				After:      ToLotResponse(updated),
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if plan.Shortfall.GreaterThan(decimal.Zero) {
		uc.log.Warn().Str("product_ref", productRef).
			Str("requested", in.Quantity.String()).
			Str("shortfall", plan.Shortfall.String()).
			Msg("stock insuficiente para la asignación")
	}
	return toAllocationResponse(productRef, in.Quantity, plan), nil
}

// Release devuelve cantidad asignada a un lote (suelo en cero).
func (uc *LedgerUseCase) Release(ctx context.Context, actor, lotID string, in dto.ReleaseRequest) (*dto.StockLotResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	var updated *entity.StockLot
	err := uc.txRunner.Run(ctx, func(repos repository.Repos) error {
		lot, err := repos.Lots.GetForUpdate(ctx, lotID)
		if err != nil {
			return err
		}
		if lot == nil {
			return fmt.Errorf("lote %s: %w", lotID, domain.ErrNotFound)
		}
		before := ToLotResponse(lot)
		updated, err = repos.Lots.DecrementAssigned(ctx, lotID, in.Quantity)
		if err != nil {
			return err
		}
		return audit.WriteLog(ctx, repos.Audit, audit.LogOptions{
			Actor:      actor,
			Action:     entity.AuditActionRelease,
			EntityType: entity.EntityStockLot,
			EntityID:   lotID,
			Before:     before,
			After:      ToLotResponse(updated),
		})
	})
	if err != nil {
		return nil, err
	}
	return ToLotResponse(updated), nil
}

// ListAvailable lotes con disponible > 0 (vista de planificación), en orden FEFO.
func (uc *LedgerUseCase) ListAvailable(ctx context.Context, productRef string) ([]dto.StockLotResponse, error) {
	lots, err := uc.lots.ListAvailable(ctx, strings.TrimSpace(productRef))
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockLotResponse, 0, len(lots))
	for _, l := range lots {
		out = append(out, *ToLotResponse(l))
	}
	return out, nil
}

// Get obtiene un lote por id, aunque esté agotado.
func (uc *LedgerUseCase) Get(ctx context.Context, id string) (*dto.StockLotResponse, error) {
	lot, err := uc.lots.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lot == nil {
		return nil, fmt.Errorf("lote %s: %w", id, domain.ErrNotFound)
	}
	return ToLotResponse(lot), nil
}

// ToLotResponse convierte un lote a su DTO.
func ToLotResponse(l *entity.StockLot) *dto.StockLotResponse {
	if l == nil {
		return nil
	}
	return &dto.StockLotResponse{
		ID:               l.ID,
		ProductRef:       l.ProductRef,
		SourceMOID:       l.SourceMOID,
		QuantityProduced: l.QuantityProduced,
		QuantityAssigned: l.QuantityAssigned,
		Available:        l.Available(),
		Unit:             l.Unit,
		ExpirationDate:   l.ExpirationDate.Format(entity.DateLayout),
		CreatedAt:        l.CreatedAt,
		UpdatedAt:        l.UpdatedAt,
	}
}

func toAllocationResponse(productRef string, requested decimal.Decimal, plan planning.AllocationPlan) *dto.AllocationResponse {
	out := &dto.AllocationResponse{
		ProductRef:  productRef,
		Requested:   requested,
		Allocations: make([]dto.LotAllocationResponse, 0, len(plan.Allocations)),
		Allocated:   plan.Allocated,
		Shortfall:   plan.Shortfall,
	}
	for _, a := range plan.Allocations {
		out.Allocations = append(out.Allocations, dto.LotAllocationResponse{
			LotID:          a.LotID,
			Quantity:       a.Quantity,
			ExpirationDate: a.ExpirationDate.Format(entity.DateLayout),
		})
	}
	return out
}
