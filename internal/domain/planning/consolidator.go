package planning

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/cpr-planning/internal/domain"
	"github.com/jhoicas/cpr-planning/internal/domain/entity"
)

// ConsolidatedGroup líneas fusionadas de todos los fragmentos con la misma
// (fecha de entrega, localización), sea cual sea su origen.
type ConsolidatedGroup struct {
	DeliveryDate      time.Time
	DeliveryLocation  string
	Items             []entity.OrderLine
	SourceFragmentIDs []string
}

type groupKey struct {
	date     time.Time
	location string
}

// Consolidate fusiona los fragmentos seleccionados. Rechaza una selección vacía o
// cualquier fragmento sin líneas. El resultado no depende del orden de entrada:
// los fragmentos se recorren por (CreatedAt, ID), de ahí sale el "primer" precio.
func Consolidate(fragments []*entity.PendingOrderFragment) ([]ConsolidatedGroup, error) {
	if len(fragments) == 0 {
		return nil, domain.NewValidationError("fragments", "la selección está vacía")
	}
	verr := &domain.ValidationError{}
	ordered := make([]*entity.PendingOrderFragment, 0, len(fragments))
	for i, f := range fragments {
		if f == nil {
			verr.Add(fmt.Sprintf("fragments[%d]", i), "nulo")
			continue
		}
		if len(f.Items) == 0 {
			verr.Add("fragments."+f.ID, "el sub-pedido no tiene artículos")
			continue
		}
		ordered = append(ordered, f)
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].CreatedAt.Equal(ordered[j].CreatedAt) {
			return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
		}
		return ordered[i].ID < ordered[j].ID
	})

	type acc struct {
		group ConsolidatedGroup
		items map[string]*entity.OrderLine
	}
	groups := make(map[groupKey]*acc)
	for _, f := range ordered {
		k := groupKey{date: entity.DateOnly(f.DeliveryDate), location: entity.NormalizeLocation(f.DeliveryLocation)}
		g, ok := groups[k]
		if !ok {
			g = &acc{
				group: ConsolidatedGroup{DeliveryDate: k.date, DeliveryLocation: k.location},
				items: make(map[string]*entity.OrderLine),
			}
			groups[k] = g
		}
		g.group.SourceFragmentIDs = append(g.group.SourceFragmentIDs, f.ID)
		for _, it := range f.Items {
			if line, ok := g.items[it.ItemRef]; ok {
				line.Quantity = line.Quantity.Add(it.Quantity)
				continue
			}
			line := it
			g.items[it.ItemRef] = &line
		}
	}

	out := make([]ConsolidatedGroup, 0, len(groups))
	for _, g := range groups {
		refs := make([]string, 0, len(g.items))
		for ref := range g.items {
			refs = append(refs, ref)
		}
		sort.Strings(refs)
		g.group.Items = make([]entity.OrderLine, 0, len(refs))
		for _, ref := range refs {
			g.group.Items = append(g.group.Items, *g.items[ref])
		}
		sort.Strings(g.group.SourceFragmentIDs)
		out = append(out, g.group)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].DeliveryDate.Equal(out[j].DeliveryDate) {
			return out[i].DeliveryDate.Before(out[j].DeliveryDate)
		}
		return out[i].DeliveryLocation < out[j].DeliveryLocation
	})
	return out, nil
}

// TotalUnits suma de cantidades de un grupo.
func (g ConsolidatedGroup) TotalUnits() decimal.Decimal {
	total := decimal.Zero
	for _, it := range g.Items {
		total = total.Add(it.Quantity)
	}
	return total
}
