package planning

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/cpr-planning/internal/domain/entity"
)

// LotAllocation cantidad tomada de un lote concreto.
type LotAllocation struct {
	LotID          string
	Quantity       decimal.Decimal
	ExpirationDate time.Time
}

// AllocationPlan resultado de repartir una petición entre lotes.
// Shortfall > 0 significa stock insuficiente; no es un error.
type AllocationPlan struct {
	Allocations []LotAllocation
	Allocated   decimal.Decimal
	Shortfall   decimal.Decimal
}

// SortFEFO ordena in situ por caducidad ascendente, luego alta más antigua y luego id.
func SortFEFO(lots []*entity.StockLot) {
	sort.SliceStable(lots, func(i, j int) bool {
		a, b := lots[i], lots[j]
		if !a.ExpirationDate.Equal(b.ExpirationDate) {
			return a.ExpirationDate.Before(b.ExpirationDate)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})
}

func sortedFEFO(lots []*entity.StockLot) []*entity.StockLot {
	out := make([]*entity.StockLot, 0, len(lots))
	for _, l := range lots {
		if l != nil {
			out = append(out, l)
		}
	}
	SortFEFO(out)
	return out
}

// PlanAllocation reparte requested entre los lotes, caducidad más próxima primero,
// sin superar nunca el disponible de cada lote. No modifica los lotes.
func PlanAllocation(lots []*entity.StockLot, requested decimal.Decimal) AllocationPlan {
	plan := AllocationPlan{Allocated: decimal.Zero, Shortfall: decimal.Zero}
	remaining := requested
	for _, lot := range sortedFEFO(lots) {
		if !remaining.GreaterThan(decimal.Zero) {
			break
		}
		avail := lot.Available()
		if !avail.GreaterThan(decimal.Zero) {
			continue
		}
		take := decimal.Min(avail, remaining)
		plan.Allocations = append(plan.Allocations, LotAllocation{
			LotID:          lot.ID,
			Quantity:       take,
			ExpirationDate: lot.ExpirationDate,
		})
		plan.Allocated = plan.Allocated.Add(take)
		remaining = remaining.Sub(take)
	}
	if remaining.GreaterThan(decimal.Zero) {
		plan.Shortfall = remaining
	}
	return plan
}
