// Package planning contiene los servicios de dominio puros del núcleo de
// planificación del CPR: cálculo de necesidades netas, plan de consumo de lotes
// por caducidad, consolidación de sub-pedidos y detección de pedidos duplicados.
// Ninguna función toca la base de datos; todas operan sobre snapshots explícitos.
package planning

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/cpr-planning/internal/domain"
	"github.com/jhoicas/cpr-planning/internal/domain/entity"
)

// NeedsSnapshot entradas del cálculo. AsOf descarta lotes ya caducados a esa fecha
// (zero value = no descartar por fecha de consulta).
type NeedsSnapshot struct {
	Demand []entity.DemandEntry
	Lots   []*entity.StockLot
	Orders []*entity.ManufacturingOrder
	AsOf   time.Time
}

// NeedsResult necesidades netas (> 0) y necesidades ya cubiertas (= 0).
type NeedsResult struct {
	Needs   []entity.NetRequirement
	Covered []entity.NetRequirement
}

type needKey struct {
	product string
	date    time.Time
}

type lotBalance struct {
	lot       *entity.StockLot
	remaining decimal.Decimal
}

// CalculateNeeds compara la demanda por (producto, fecha) con la cobertura existente:
// OFs abiertas de la misma fecha y stock disponible en lotes no caducados.
//
// El stock de un producto es una bolsa compartida entre fechas: se consume por fecha
// ascendente y lote de caducidad más próxima primero, de modo que una misma unidad
// nunca cubre dos fechas. Un lote solo cubre fechas anteriores o iguales a su caducidad.
func CalculateNeeds(s NeedsSnapshot) (*NeedsResult, error) {
	verr := &domain.ValidationError{}
	demand := make(map[needKey]*entity.NetRequirement)
	for i, d := range s.Demand {
		field := fmt.Sprintf("demand[%d]", i)
		if d.ProductRef == "" {
			verr.Add(field+".product_ref", "requerido")
		}
		if d.Date.IsZero() {
			verr.Add(field+".date", "requerida")
		}
		if !d.Quantity.GreaterThan(decimal.Zero) {
			verr.Add(field+".quantity", "debe ser mayor que cero")
		}
		if verr.HasErrors() {
			continue
		}
		k := needKey{product: d.ProductRef, date: entity.DateOnly(d.Date)}
		req, ok := demand[k]
		if !ok {
			req = &entity.NetRequirement{
				ProductRef:      d.ProductRef,
				ProductName:     d.ProductName,
				Unit:            d.Unit,
				Station:         d.Station,
				Date:            k.date,
				Demand:          decimal.Zero,
				StockApplied:    decimal.Zero,
				PlannedInOrders: decimal.Zero,
				Net:             decimal.Zero,
			}
			demand[k] = req
		}
		req.Demand = req.Demand.Add(d.Quantity)
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	// Producción ya comprometida en OFs abiertas, por producto y fecha.
	planned := make(map[needKey]decimal.Decimal)
	for _, mo := range s.Orders {
		if mo == nil || !mo.Status.Open() {
			continue
		}
		k := needKey{product: mo.ProductRef, date: entity.DateOnly(mo.ScheduledDate)}
		planned[k] = planned[k].Add(mo.PlannedQuantity)
	}

	// Bolsa de stock por producto, ordenada por caducidad.
	pools := make(map[string][]*lotBalance)
	for _, lot := range sortedFEFO(s.Lots) {
		if !lot.Available().GreaterThan(decimal.Zero) {
			continue
		}
		if !s.AsOf.IsZero() && lot.ExpiredAt(s.AsOf) {
			continue
		}
		pools[lot.ProductRef] = append(pools[lot.ProductRef], &lotBalance{lot: lot, remaining: lot.Available()})
	}

	keys := make([]needKey, 0, len(demand))
	for k := range demand {
		keys = append(keys, k)
	}
	// Por producto y fecha ascendente: así el stock se aplica primero a lo más urgente.
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].product != keys[j].product {
			return keys[i].product < keys[j].product
		}
		return keys[i].date.Before(keys[j].date)
	})

	res := &NeedsResult{Needs: []entity.NetRequirement{}, Covered: []entity.NetRequirement{}}
	for _, k := range keys {
		req := demand[k]
		req.PlannedInOrders = planned[k]

		remaining := req.Demand.Sub(req.PlannedInOrders)
		if remaining.IsNegative() {
			remaining = decimal.Zero
		}
		applied := decimal.Zero
		for _, b := range pools[k.product] {
			if !remaining.GreaterThan(decimal.Zero) {
				break
			}
			if !b.remaining.GreaterThan(decimal.Zero) || b.lot.ExpiredAt(k.date) {
				continue
			}
			take := decimal.Min(b.remaining, remaining)
			b.remaining = b.remaining.Sub(take)
			remaining = remaining.Sub(take)
			applied = applied.Add(take)
		}
		req.StockApplied = applied
		req.Net = remaining

		if req.Net.GreaterThan(decimal.Zero) {
			res.Needs = append(res.Needs, *req)
		} else {
			res.Covered = append(res.Covered, *req)
		}
	}
	sortRequirements(res.Needs)
	sortRequirements(res.Covered)
	return res, nil
}

func sortRequirements(list []entity.NetRequirement) {
	sort.SliceStable(list, func(i, j int) bool {
		if !list[i].Date.Equal(list[j].Date) {
			return list[i].Date.Before(list[j].Date)
		}
		return list[i].ProductRef < list[j].ProductRef
	})
}
