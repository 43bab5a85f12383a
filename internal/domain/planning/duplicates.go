package planning

import (
	"sort"

	"github.com/jhoicas/cpr-planning/internal/domain/entity"
)

// DuplicateGroup pedidos con el mismo número: se conserva el más antiguo.
type DuplicateGroup struct {
	OrderNumber string
	Keeper      *entity.ConsolidatedOrder
	Losers      []*entity.ConsolidatedOrder
}

// LoserIDs ids a eliminar del grupo.
func (g DuplicateGroup) LoserIDs() []string {
	ids := make([]string, 0, len(g.Losers))
	for _, o := range g.Losers {
		ids = append(ids, o.ID)
	}
	return ids
}

// FindDuplicates agrupa por número de pedido y, para cada grupo con más de una fila,
// elige como superviviente la de CreatedAt más antiguo (empate: id menor).
// La política "gana el más antiguo" no compara contenido.
func FindDuplicates(orders []*entity.ConsolidatedOrder) []DuplicateGroup {
	byNumber := make(map[string][]*entity.ConsolidatedOrder)
	for _, o := range orders {
		if o == nil {
			continue
		}
		byNumber[o.OrderNumber] = append(byNumber[o.OrderNumber], o)
	}
	var groups []DuplicateGroup
	for number, rows := range byNumber {
		if len(rows) < 2 {
			continue
		}
		sort.SliceStable(rows, func(i, j int) bool {
			if !rows[i].CreatedAt.Equal(rows[j].CreatedAt) {
				return rows[i].CreatedAt.Before(rows[j].CreatedAt)
			}
			return rows[i].ID < rows[j].ID
		})
		groups = append(groups, DuplicateGroup{
			OrderNumber: number,
			Keeper:      rows[0],
			Losers:      rows[1:],
		})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].OrderNumber < groups[j].OrderNumber })
	return groups
}
