package procurement_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cpr-planning/internal/application/dto"
	"github.com/jhoicas/cpr-planning/internal/application/procurement"
	"github.com/jhoicas/cpr-planning/internal/domain"
	"github.com/jhoicas/cpr-planning/internal/domain/entity"
	"github.com/jhoicas/cpr-planning/internal/infrastructure/memory"
	"github.com/jhoicas/cpr-planning/pkg/logger"
)

const actor = "compras-1"

// fakeLocker candado local para probar la exclusión de la limpieza.
type fakeLocker struct {
	mu   sync.Mutex
	held bool
}

func (l *fakeLocker) TryLock(_ context.Context, _ string, _ time.Duration) (func(), bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held {
		return nil, false, nil
	}
	l.held = true
	return func() {
		l.mu.Lock()
		l.held = false
		l.mu.Unlock()
	}, true, nil
}

type fakeRenderer struct{}

func (fakeRenderer) RenderConsolidatedOrder(_ context.Context, o *entity.ConsolidatedOrder) ([]byte, error) {
	return []byte("%PDF " + o.OrderNumber), nil
}

type fixture struct {
	store     *memory.Store
	fragments *procurement.FragmentUseCase
	consolid  *procurement.ConsolidationUseCase
	reconcile *procurement.ReconcileUseCase
	locker    *fakeLocker
}

func newFixture() *fixture {
	s := memory.NewStore()
	repos := s.Repos()
	log := logger.Nop()
	locker := &fakeLocker{}
	return &fixture{
		store:     s,
		fragments: procurement.NewFragmentUseCase(s, repos.Fragments),
		consolid:  procurement.NewConsolidationUseCase(s, repos.Consolidated, fakeRenderer{}, log),
		reconcile: procurement.NewReconcileUseCase(s, repos.Consolidated, locker, time.Minute, log),
		locker:    locker,
	}
}

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func line(ref string, qty, price int64) dto.OrderLineDTO {
	return dto.OrderLineDTO{ItemRef: ref, Quantity: dec(qty), UnitPrice: dec(price)}
}

func createFragment(t *testing.T, f *fixture, date, loc, ctx string, items ...dto.OrderLineDTO) *dto.FragmentResponse {
	t.Helper()
	out, err := f.fragments.Create(context.Background(), actor, dto.CreateFragmentRequest{
		DeliveryDate:     date,
		DeliveryLocation: loc,
		RequestContext:   ctx,
		Items:            items,
	})
	require.NoError(t, err)
	return out
}

func TestFragmentCreate_UnoVivoPorRanura(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	first := createFragment(t, f, "2024-03-01", "Almacén", "Sala", line("PAN", 2, 1))
	assert.Equal(t, 1, first.ItemCount)
	assert.True(t, first.UnitCount.Equal(dec(2)))

	// misma localización escrita con tilde combinada
	_, err := f.fragments.Create(ctx, actor, dto.CreateFragmentRequest{
		DeliveryDate: "2024-03-01", DeliveryLocation: " Almace\u0301n ", RequestContext: "Sala",
	})
	assert.ErrorIs(t, err, domain.ErrConflict)

	createFragment(t, f, "2024-03-01", "Almacén", "Cocina")

	_, err = f.fragments.ChangeStatus(ctx, actor, first.ID, dto.ChangeFragmentStatusRequest{Status: "Cancelado"})
	require.NoError(t, err)
	createFragment(t, f, "2024-03-01", "Almacén", "Sala")
}

func TestFragmentCreate_HoraFueraDeFranja(t *testing.T) {
	f := newFixture()
	_, err := f.fragments.Create(context.Background(), actor, dto.CreateFragmentRequest{
		DeliveryDate: "2024-03-01", DeliveryTime: "23:30", DeliveryLocation: "Almacén", RequestContext: "Sala",
	})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "delivery_time")
}

func TestFragmentChangeContext_NoPuedeOcuparRanuraAjena(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	createFragment(t, f, "2024-03-01", "Almacén", "Sala")
	other := createFragment(t, f, "2024-03-02", "Almacén", "Sala")

	date := "2024-03-01"
	_, err := f.fragments.ChangeContext(ctx, actor, other.ID, dto.ChangeFragmentContextRequest{DeliveryDate: &date})
	assert.ErrorIs(t, err, domain.ErrConflict)

	got, err := f.fragments.Get(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-02", got.DeliveryDate, "el rechazo no deja cambios a medias")

	loc := "Terraza"
	moved, err := f.fragments.ChangeContext(ctx, actor, other.ID, dto.ChangeFragmentContextRequest{DeliveryDate: &date, DeliveryLocation: &loc})
	require.NoError(t, err)
	assert.Equal(t, "Terraza", moved.DeliveryLocation)
}

func TestFragmentChangeStatus_TablaDeTransiciones(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	frag := createFragment(t, f, "2024-03-01", "Almacén", "Sala")

	_, err := f.fragments.ChangeStatus(ctx, actor, frag.ID, dto.ChangeFragmentStatusRequest{Status: "Enviado"})
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	_, err = f.fragments.ChangeStatus(ctx, actor, frag.ID, dto.ChangeFragmentStatusRequest{Status: "Revisar"})
	require.NoError(t, err)
	got, err := f.fragments.ChangeStatus(ctx, actor, frag.ID, dto.ChangeFragmentStatusRequest{Status: "Confirmado"})
	require.NoError(t, err)
	assert.Equal(t, "Confirmado", got.Status)
}

func TestFragmentUpdateItems_RecalculaTotales(t *testing.T) {
	f := newFixture()
	frag := createFragment(t, f, "2024-03-01", "Almacén", "Sala", line("PAN", 2, 1))

	got, err := f.fragments.UpdateItems(context.Background(), actor, frag.ID, dto.UpdateFragmentItemsRequest{
		Items: []dto.OrderLineDTO{line("PAN", 4, 1), line("LECHE", 6, 1)},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, got.ItemCount)
	assert.True(t, got.UnitCount.Equal(dec(10)))
}

func TestFragment_RechazaReferenciaEnBlanco(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.fragments.Create(ctx, actor, dto.CreateFragmentRequest{
		DeliveryDate: "2024-03-01", DeliveryLocation: "Almacén", RequestContext: "Sala",
		Items: []dto.OrderLineDTO{line("PAN", 1, 1), line("   ", 2, 1)},
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "items[1].item_ref")

	frag := createFragment(t, f, "2024-03-01", "Almacén", "Sala", line("PAN", 2, 1))
	_, err = f.fragments.UpdateItems(ctx, actor, frag.ID, dto.UpdateFragmentItemsRequest{
		Items: []dto.OrderLineDTO{line(" ", 4, 1)},
	})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "items[0].item_ref")

	got, err := f.fragments.Get(ctx, frag.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "PAN", got.Items[0].ItemRef)
}

func TestConsolidate_FusionaSalaYCocina(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	sala := createFragment(t, f, "2024-03-01", "Almacén", "Sala", line("PAN", 2, 1), line("LECHE", 1, 2))
	cocina := createFragment(t, f, "2024-03-01", "Almacén", "Cocina", line("PAN", 3, 5))
	otra := createFragment(t, f, "2024-03-02", "Almacén", "Sala", line("PAN", 1, 1))

	res, err := f.consolid.Consolidate(ctx, actor, dto.ConsolidateRequest{
		FragmentIDs: []string{cocina.ID, sala.ID, otra.ID, sala.ID},
		Comment:     "semana 9",
	})
	require.NoError(t, err)
	require.Len(t, res.Orders, 2)

	first := res.Orders[0]
	assert.Equal(t, "A0001", first.OrderNumber)
	assert.Equal(t, "2024-03-01", first.DeliveryDate)
	assert.ElementsMatch(t, []string{sala.ID, cocina.ID}, first.SourceFragmentIDs)
	byRef := map[string]dto.OrderLineDTO{}
	for _, it := range first.Items {
		byRef[it.ItemRef] = it
	}
	assert.True(t, byRef["PAN"].Quantity.Equal(dec(5)))
	assert.True(t, byRef["LECHE"].Quantity.Equal(dec(1)))
	assert.Equal(t, "A0002", res.Orders[1].OrderNumber)

	for _, id := range []string{sala.ID, cocina.ID, otra.ID} {
		got, err := f.fragments.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Enviado", got.Status)
	}

	_, err = f.consolid.Consolidate(ctx, actor, dto.ConsolidateRequest{FragmentIDs: []string{sala.ID}})
	assert.ErrorIs(t, err, domain.ErrInvalidState, "un sub-pedido enviado no se consolida dos veces")

	pdf, number, err := f.consolid.RenderDocument(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "A0001", number)
	assert.Contains(t, string(pdf), "A0001")
}

func TestConsolidate_TodoONada(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	ok := createFragment(t, f, "2024-03-01", "Almacén", "Sala", line("PAN", 2, 1))
	vacio := createFragment(t, f, "2024-03-01", "Almacén", "Cocina")

	_, err := f.consolid.Consolidate(ctx, actor, dto.ConsolidateRequest{FragmentIDs: []string{ok.ID, vacio.ID}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.consolid.Consolidate(ctx, actor, dto.ConsolidateRequest{FragmentIDs: []string{ok.ID, "nope"}})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	got, err := f.fragments.Get(ctx, ok.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pendiente", got.Status)
}

func TestConsolidate_ContinuaLaNumeracion(t *testing.T) {
	f := newFixture()
	f.store.SeedConsolidated(&entity.ConsolidatedOrder{ID: "old", OrderNumber: "A0041", CreatedAt: time.Now()})
	frag := createFragment(t, f, "2024-03-01", "Almacén", "Sala", line("PAN", 1, 1))

	res, err := f.consolid.Consolidate(context.Background(), actor, dto.ConsolidateRequest{FragmentIDs: []string{frag.ID}})
	require.NoError(t, err)
	require.Len(t, res.Orders, 1)
	assert.Equal(t, "A0042", res.Orders[0].OrderNumber)
}

func seedDuplicates(f *fixture) {
	base := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	f.store.SeedConsolidated(
		&entity.ConsolidatedOrder{ID: "c2", OrderNumber: "A0001", CreatedAt: base.Add(time.Hour)},
		&entity.ConsolidatedOrder{ID: "c1", OrderNumber: "A0001", CreatedAt: base},
		&entity.ConsolidatedOrder{ID: "c3", OrderNumber: "A0001", CreatedAt: base.Add(2 * time.Hour)},
		&entity.ConsolidatedOrder{ID: "c4", OrderNumber: "A0002", CreatedAt: base},
	)
}

func TestReconcile_ConservaElMasAntiguoYEsIdempotente(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	seedDuplicates(f)

	res, err := f.reconcile.Reconcile(ctx, actor, false)
	require.NoError(t, err)
	assert.Equal(t, 2, res.DeletedCount)
	assert.ElementsMatch(t, []string{"c2", "c3"}, res.DeletedIDs)
	require.Len(t, res.Groups, 1)
	assert.Equal(t, "c1", res.Groups[0].KeptID)

	deletes := 0
	for _, e := range f.store.AuditEntries() {
		if e.Action == entity.AuditActionDelete {
			deletes++
		}
	}
	assert.Equal(t, 2, deletes)

	again, err := f.reconcile.Reconcile(ctx, actor, false)
	require.NoError(t, err)
	assert.Zero(t, again.DeletedCount)
	assert.Empty(t, again.Groups)
}

func TestReconcile_DryRunNoBorra(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	seedDuplicates(f)

	res, err := f.reconcile.Reconcile(ctx, actor, true)
	require.NoError(t, err)
	assert.True(t, res.DryRun)
	assert.ElementsMatch(t, []string{"c2", "c3"}, res.DeletedIDs)

	all, err := f.store.Repos().Consolidated.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestReconcile_RechazaEjecucionConcurrente(t *testing.T) {
	f := newFixture()
	unlock, ok, err := f.locker.TryLock(context.Background(), procurement.ReconcileLockKey, time.Minute)
	require.NoError(t, err)
	require.True(t, ok)
	defer unlock()

	_, err = f.reconcile.Reconcile(context.Background(), actor, false)
	assert.ErrorIs(t, err, domain.ErrConflict)
}
