package production

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/cpr-planning/internal/application/dto"
	"github.com/jhoicas/cpr-planning/internal/domain"
	"github.com/jhoicas/cpr-planning/internal/domain/entity"
	"github.com/jhoicas/cpr-planning/internal/domain/planning"
	"github.com/jhoicas/cpr-planning/internal/domain/repository"
)

// NeedsUseCase carga la foto (lotes disponibles y OFs abiertas) y calcula las
// necesidades netas para la demanda recibida. No escribe nada.
type NeedsUseCase struct {
	orders repository.ManufacturingOrderRepository
	lots   repository.StockLotRepository
	now    func() time.Time
}

// NewNeedsUseCase construye el caso de uso.
func NewNeedsUseCase(orders repository.ManufacturingOrderRepository, lots repository.StockLotRepository) *NeedsUseCase {
	return &NeedsUseCase{orders: orders, lots: lots, now: time.Now}
}

// Calculate devuelve necesidades (neto > 0) y cubiertas (neto = 0).
func (uc *NeedsUseCase) Calculate(ctx context.Context, in dto.NeedsRequest) (*dto.NeedsResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	asOf := entity.DateOnly(uc.now())
	if in.AsOf != "" {
		d, err := entity.ParseDate(in.AsOf)
		if err != nil {
			return nil, domain.NewValidationError("as_of", "fecha inválida")
		}
		asOf = d
	}

	demand := make([]entity.DemandEntry, 0, len(in.Demand))
	products := make(map[string]bool)
	var from, to time.Time
	for _, d := range in.Demand {
		date, err := entity.ParseDate(d.Date)
		if err != nil {
			return nil, domain.NewValidationError("demand.date", "fecha inválida")
		}
		ref := strings.TrimSpace(d.ProductRef)
		demand = append(demand, entity.DemandEntry{
			ProductRef:  ref,
			ProductName: d.ProductName,
			Quantity:    d.Quantity,
			Unit:        d.Unit,
			Date:        date,
			Station:     entity.Station(d.Station),
		})
		products[ref] = true
		if from.IsZero() || date.Before(from) {
			from = date
		}
		if date.After(to) {
			to = date
		}
	}

	allLots, err := uc.lots.ListAvailable(ctx, "")
	if err != nil {
		return nil, err
	}
	lots := make([]*entity.StockLot, 0, len(allLots))
	for _, l := range allLots {
		if products[l.ProductRef] {
			lots = append(lots, l)
		}
	}
	orders, err := uc.orders.ListOpen(ctx, from, to)
	if err != nil {
		return nil, err
	}

	res, err := planning.CalculateNeeds(planning.NeedsSnapshot{
		Demand: demand,
		Lots:   lots,
		Orders: orders,
		AsOf:   asOf,
	})
	if err != nil {
		return nil, err
	}
	return &dto.NeedsResponse{
		Needs:   toNetResponses(res.Needs),
		Covered: toNetResponses(res.Covered),
	}, nil
}

func toNetResponses(list []entity.NetRequirement) []dto.NetRequirementResponse {
	out := make([]dto.NetRequirementResponse, 0, len(list))
	for _, n := range list {
		out = append(out, dto.NetRequirementResponse{
			ProductRef:      n.ProductRef,
			ProductName:     n.ProductName,
			Unit:            n.Unit,
			Station:         string(n.Station),
			Date:            n.Date.Format(entity.DateLayout),
			Demand:          n.Demand,
			StockApplied:    n.StockApplied,
			PlannedInOrders: n.PlannedInOrders,
			Net:             n.Net,
		})
	}
	return out
}
