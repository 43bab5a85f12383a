package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cpr-planning/internal/domain"
	"github.com/jhoicas/cpr-planning/internal/domain/entity"
	"github.com/jhoicas/cpr-planning/internal/domain/repository"
	"github.com/jhoicas/cpr-planning/internal/infrastructure/memory"
)

func day(s string) time.Time {
	d, err := entity.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func newLot(id string, produced int64, exp string) *entity.StockLot {
	return &entity.StockLot{
		ID:               id,
		ProductRef:       "CROQ",
		QuantityProduced: decimal.NewFromInt(produced),
		QuantityAssigned: decimal.Zero,
		Unit:             "ud",
		ExpirationDate:   day(exp),
	}
}

func TestStore_RollbackDescartaCambios(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	boom := errors.New("boom")

	err := s.Run(ctx, func(r repository.Repos) error {
		require.NoError(t, r.Lots.Create(ctx, newLot("l1", 5, "2024-01-10")))
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := s.Repos().Lots.GetByID(ctx, "l1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_CommitPublicaCambios(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()

	require.NoError(t, s.Run(ctx, func(r repository.Repos) error {
		return r.Lots.Create(ctx, newLot("l1", 5, "2024-01-10"))
	}))

	got, err := s.Repos().Lots.GetByID(ctx, "l1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.QuantityProduced.Equal(decimal.NewFromInt(5)))
}

func TestStockLotRepo_IncrementAssignedNoSuperaLoProducido(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	lots := s.Repos().Lots
	require.NoError(t, lots.Create(ctx, newLot("l1", 5, "2024-01-10")))

	updated, err := lots.IncrementAssigned(ctx, "l1", decimal.NewFromInt(4))
	require.NoError(t, err)
	assert.True(t, updated.Available().Equal(decimal.NewFromInt(1)))

	_, err = lots.IncrementAssigned(ctx, "l1", decimal.NewFromInt(2))
	assert.ErrorIs(t, err, domain.ErrConflict)

	released, err := lots.DecrementAssigned(ctx, "l1", decimal.NewFromInt(10))
	require.NoError(t, err)
	assert.True(t, released.QuantityAssigned.IsZero(), "la devolución no baja de cero")

	_, err = lots.IncrementAssigned(ctx, "nope", decimal.NewFromInt(1))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStockLotRepo_ListAvailableOrdenFEFO(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	lots := s.Repos().Lots
	require.NoError(t, lots.Create(ctx, newLot("feb", 5, "2024-02-01")))
	require.NoError(t, lots.Create(ctx, newLot("ene", 5, "2024-01-01")))
	agotado := newLot("agotado", 5, "2023-12-01")
	agotado.QuantityAssigned = decimal.NewFromInt(5)
	require.NoError(t, lots.Create(ctx, agotado))

	list, err := lots.ListAvailable(ctx, "CROQ")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "ene", list[0].ID)
	assert.Equal(t, "feb", list[1].ID)
}

func TestManufacturingOrderRepo_UnaOFNoFallidaPorProductoYFecha(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	orders := s.Repos().Orders
	mo := func(id string, status entity.MOStatus) *entity.ManufacturingOrder {
		return &entity.ManufacturingOrder{
			ID: id, Code: "OF-" + id, ProductRef: "CROQ", Status: status,
			PlannedQuantity: decimal.NewFromInt(10), ScheduledDate: day("2024-03-01"),
			Station: entity.StationCaliente,
		}
	}

	require.NoError(t, orders.Create(ctx, mo("a", entity.MOStatusIncidencia)))
	require.NoError(t, orders.Create(ctx, mo("b", entity.MOStatusPendiente)))
	assert.ErrorIs(t, orders.Create(ctx, mo("c", entity.MOStatusPendiente)), domain.ErrConflict)

	found, err := orders.FindPlanned(ctx, "CROQ", day("2024-03-01"))
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "b", found.ID)

	open, err := orders.ListOpen(ctx, day("2024-03-01"), day("2024-03-01"))
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, "b", open[0].ID)
}

func TestOrderFragmentRepo_RanuraUnicaEntreVivos(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	frags := s.Repos().Fragments
	frag := func(id, loc string) *entity.PendingOrderFragment {
		return &entity.PendingOrderFragment{
			ID: id, DeliveryDate: day("2024-03-01"), DeliveryLocation: loc,
			RequestContext: entity.RequestContextSala, Status: entity.FragmentStatusPendiente,
		}
	}

	first := frag("f1", "Almacén")
	require.NoError(t, frags.Create(ctx, first))
	assert.ErrorIs(t, frags.Create(ctx, frag("f2", "Almacén")), domain.ErrConflict)

	first.Status = entity.FragmentStatusCancelado
	require.NoError(t, frags.Update(ctx, first))
	require.NoError(t, frags.Create(ctx, frag("f2", "Almacén")))

	live, err := frags.ListLive(ctx, nil, nil)
	require.NoError(t, err)
	require.Len(t, live, 1)
	assert.Equal(t, "f2", live[0].ID)
}

func TestConsolidatedOrderRepo_DeleteDuplicatesRespetaAlSuperviviente(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	base := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	s.SeedConsolidated(
		&entity.ConsolidatedOrder{ID: "c1", OrderNumber: "A0001", CreatedAt: base},
		&entity.ConsolidatedOrder{ID: "c2", OrderNumber: "A0001", CreatedAt: base.Add(time.Minute)},
		&entity.ConsolidatedOrder{ID: "c3", OrderNumber: "A0002", CreatedAt: base},
	)
	repo := s.Repos().Consolidated

	assert.ErrorIs(t, repo.Create(ctx, &entity.ConsolidatedOrder{ID: "c4", OrderNumber: "A0002"}), domain.ErrConflict)

	deleted, err := repo.DeleteDuplicates(ctx, "A0001", "c1", []string{"c1", "c2", "c3"})
	require.NoError(t, err)
	assert.Equal(t, []string{"c2"}, deleted, "c1 es el superviviente y c3 tiene otro número")

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "c1", all[0].ID)
	assert.Equal(t, "c3", all[1].ID)
}

func TestStockLotRepo_ListAvailableForUpdateSinReferenciaNoEsComodin(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	lots := s.Repos().Lots
	require.NoError(t, lots.Create(ctx, newLot("croq", 5, "2024-01-01")))

	list, err := lots.ListAvailableForUpdate(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, list)

	list, err = lots.ListAvailable(ctx, "")
	require.NoError(t, err)
	assert.Len(t, list, 1, "la vista de planificación sí lista todos los productos")
}
