package planning_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cpr-planning/internal/domain/entity"
	"github.com/jhoicas/cpr-planning/internal/domain/planning"
)

func TestFindDuplicates_ConservaElMasAntiguo(t *testing.T) {
	t1 := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	orders := []*entity.ConsolidatedOrder{
		{ID: "c3", OrderNumber: "A0007", CreatedAt: t1.Add(2 * time.Minute)},
		{ID: "c1", OrderNumber: "A0007", CreatedAt: t1},
		{ID: "c2", OrderNumber: "A0007", CreatedAt: t1.Add(time.Minute)},
		{ID: "solo", OrderNumber: "A0008", CreatedAt: t1},
	}
	groups := planning.FindDuplicates(orders)
	require.Len(t, groups, 1)
	assert.Equal(t, "A0007", groups[0].OrderNumber)
	assert.Equal(t, "c1", groups[0].Keeper.ID)
	assert.Equal(t, []string{"c2", "c3"}, groups[0].LoserIDs())
}

func TestFindDuplicates_EmpateDesempataPorID(t *testing.T) {
	t1 := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	groups := planning.FindDuplicates([]*entity.ConsolidatedOrder{
		{ID: "b", OrderNumber: "A0001", CreatedAt: t1},
		{ID: "a", OrderNumber: "A0001", CreatedAt: t1},
	})
	require.Len(t, groups, 1)
	assert.Equal(t, "a", groups[0].Keeper.ID)
}

func TestFindDuplicates_SinDuplicados(t *testing.T) {
	assert.Empty(t, planning.FindDuplicates([]*entity.ConsolidatedOrder{
		{ID: "a", OrderNumber: "A0001"},
		{ID: "b", OrderNumber: "A0002"},
	}))
}
