package production_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cpr-planning/internal/application/dto"
	"github.com/jhoicas/cpr-planning/internal/application/production"
	"github.com/jhoicas/cpr-planning/internal/application/stock"
	"github.com/jhoicas/cpr-planning/internal/domain"
	"github.com/jhoicas/cpr-planning/internal/domain/entity"
	"github.com/jhoicas/cpr-planning/internal/infrastructure/memory"
	"github.com/jhoicas/cpr-planning/pkg/logger"
)

const actor = "user-1"

type fixture struct {
	store  *memory.Store
	ledger *stock.LedgerUseCase
	mos    *production.ManufacturingOrderUseCase
	needs  *production.NeedsUseCase
}

func newFixture() *fixture {
	s := memory.NewStore()
	repos := s.Repos()
	log := logger.Nop()
	ledger := stock.NewLedgerUseCase(s, repos.Lots, log)
	return &fixture{
		store:  s,
		ledger: ledger,
		mos:    production.NewManufacturingOrderUseCase(s, repos.Orders, ledger, log),
		needs:  production.NewNeedsUseCase(repos.Orders, repos.Lots),
	}
}

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func createMO(t *testing.T, f *fixture, ref, date string, qty int64) *dto.ManufacturingOrderResponse {
	t.Helper()
	mo, err := f.mos.Create(context.Background(), actor, dto.CreateManufacturingOrderRequest{
		ProductRef:      ref,
		PlannedQuantity: dec(qty),
		Unit:            "ud",
		ScheduledDate:   date,
		Station:         "CALIENTE",
	})
	require.NoError(t, err)
	return mo
}

func TestCreate_GeneraCodigoYEstadoPendiente(t *testing.T) {
	f := newFixture()
	mo := createMO(t, f, "CROQ", "2024-03-01", 10)

	assert.Equal(t, "Pendiente", mo.Status)
	assert.Regexp(t, `^OF-20240301-[0-9A-F]{6}$`, mo.Code)

	entries := f.store.AuditEntries()
	require.Len(t, entries, 1)
	assert.Equal(t, entity.AuditActionCreate, entries[0].Action)
	assert.Equal(t, mo.ID, entries[0].EntityID)
	assert.Equal(t, actor, entries[0].Actor)
}

func TestCreate_DuplicadaParaProductoYFechaEsConflicto(t *testing.T) {
	f := newFixture()
	createMO(t, f, "CROQ", "2024-03-01", 10)

	_, err := f.mos.Create(context.Background(), actor, dto.CreateManufacturingOrderRequest{
		ProductRef: "CROQ", PlannedQuantity: dec(5), Unit: "ud", ScheduledDate: "2024-03-01", Station: "FRIO",
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCreate_TrasIncidenciaSePuedeReplanificar(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	mo := createMO(t, f, "CROQ", "2024-03-01", 10)
	_, err := f.mos.ReportIncident(ctx, actor, mo.ID, dto.ReportIncidentRequest{Notes: "horno averiado"})
	require.NoError(t, err)

	createMO(t, f, "CROQ", "2024-03-01", 10)
}

func TestCreate_ValidaCampos(t *testing.T) {
	f := newFixture()
	_, err := f.mos.Create(context.Background(), actor, dto.CreateManufacturingOrderRequest{
		ProductRef: "CROQ", PlannedQuantity: dec(0), Unit: "ud", ScheduledDate: "01/03/2024", Station: "HORNO",
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "planned_quantity")
	assert.Contains(t, verr.Fields, "scheduled_date")
	assert.Contains(t, verr.Fields, "station")
}

func TestCreateFromNeeds_InformaConflictosSinDetenerElLote(t *testing.T) {
	f := newFixture()
	createMO(t, f, "CROQ", "2024-03-01", 10)

	res, err := f.mos.CreateFromNeeds(context.Background(), actor, dto.CreateFromNeedsRequest{
		Needs: []dto.DemandLine{
			{ProductRef: "CROQ", Quantity: dec(5), Unit: "ud", Date: "2024-03-01"},
			{ProductRef: "TARTA", Quantity: dec(2), Unit: "ud", Date: "2024-03-01", Station: "PASTELERIA"},
		},
		Station: "CALIENTE",
	})
	require.NoError(t, err)
	require.Len(t, res.Created, 1)
	assert.Equal(t, "TARTA", res.Created[0].ProductRef)
	assert.Equal(t, "PASTELERIA", res.Created[0].Station)
	require.Len(t, res.Failed, 1)
	assert.Equal(t, "CROQ", res.Failed[0].ProductRef)
	assert.Equal(t, "CONFLICT", res.Failed[0].Code)
}

func TestCreateFromNeeds_SinPartidaFallaLaNecesidad(t *testing.T) {
	f := newFixture()
	res, err := f.mos.CreateFromNeeds(context.Background(), actor, dto.CreateFromNeedsRequest{
		Needs:         []dto.DemandLine{{ProductRef: "CROQ", Quantity: dec(5), Date: "2024-03-01"}},
		ScheduledDate: "2024-03-02",
	})
	require.NoError(t, err)
	assert.Empty(t, res.Created)
	require.Len(t, res.Failed, 1)
	assert.Equal(t, "VALIDATION", res.Failed[0].Code)
	assert.Equal(t, "2024-03-02", res.Failed[0].Date)
}

func TestReportIncident_ExigeNotas(t *testing.T) {
	f := newFixture()
	mo := createMO(t, f, "CROQ", "2024-03-01", 10)

	_, err := f.mos.ReportIncident(context.Background(), actor, mo.ID, dto.ReportIncidentRequest{Notes: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	got, err := f.mos.Get(context.Background(), mo.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pendiente", got.Status)
}

func TestAssign_ReasignaYRechazaTerminales(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	mo := createMO(t, f, "CROQ", "2024-03-01", 10)

	got, err := f.mos.Assign(ctx, actor, mo.ID, dto.AssignManufacturingOrderRequest{Assignee: "ana"})
	require.NoError(t, err)
	assert.Equal(t, "Asignado", got.Status)
	require.NotNil(t, got.AssignedAt)

	got, err = f.mos.Assign(ctx, actor, mo.ID, dto.AssignManufacturingOrderRequest{Assignee: "luis", Station: "FRIO"})
	require.NoError(t, err)
	assert.Equal(t, "luis", *got.Assignee)
	assert.Equal(t, "FRIO", got.Station)

	_, err = f.mos.ReportIncident(ctx, actor, mo.ID, dto.ReportIncidentRequest{Notes: "sin género"})
	require.NoError(t, err)

	_, err = f.mos.Assign(ctx, actor, mo.ID, dto.AssignManufacturingOrderRequest{Assignee: "ana"})
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestComplete_DepositaUnLoteEnLaMismaTransaccion(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	mo := createMO(t, f, "CROQ", "2024-03-01", 10)

	_, err := f.mos.Complete(ctx, actor, mo.ID, dto.CompleteManufacturingOrderRequest{
		ActualQuantity: dec(9), ExpirationDate: "2024-03-05",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidState, "una OF pendiente no se completa")

	_, err = f.mos.Assign(ctx, actor, mo.ID, dto.AssignManufacturingOrderRequest{Assignee: "ana"})
	require.NoError(t, err)

	res, err := f.mos.Complete(ctx, actor, mo.ID, dto.CompleteManufacturingOrderRequest{
		ActualQuantity: dec(9), ExpirationDate: "2024-03-05",
	})
	require.NoError(t, err)
	assert.Equal(t, "Completado", res.Order.Status)
	require.NotNil(t, res.Order.ActualQuantity)
	assert.True(t, res.Order.ActualQuantity.Equal(dec(9)))
	require.NotNil(t, res.Lot.SourceMOID)
	assert.Equal(t, mo.ID, *res.Lot.SourceMOID)
	assert.True(t, res.Lot.QuantityProduced.Equal(dec(9)))
	assert.Equal(t, "2024-03-05", res.Lot.ExpirationDate)

	lots, err := f.ledger.ListAvailable(ctx, "CROQ")
	require.NoError(t, err)
	require.Len(t, lots, 1)
	assert.Equal(t, res.Lot.ID, lots[0].ID)

	_, err = f.mos.Complete(ctx, actor, mo.ID, dto.CompleteManufacturingOrderRequest{
		ActualQuantity: dec(9), ExpirationDate: "2024-03-05",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidState)
	lots, err = f.ledger.ListAvailable(ctx, "CROQ")
	require.NoError(t, err)
	assert.Len(t, lots, 1, "un segundo cierre no deposita otro lote")
}

func TestGet_Inexistente(t *testing.T) {
	f := newFixture()
	_, err := f.mos.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestList_FiltraPorEstadoYFecha(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	a := createMO(t, f, "CROQ", "2024-03-01", 10)
	createMO(t, f, "TARTA", "2024-03-02", 3)
	_, err := f.mos.Assign(ctx, actor, a.ID, dto.AssignManufacturingOrderRequest{Assignee: "ana"})
	require.NoError(t, err)

	list, err := f.mos.List(ctx, dto.ListManufacturingOrdersQuery{Status: "Pendiente"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "TARTA", list[0].ProductRef)

	list, err = f.mos.List(ctx, dto.ListManufacturingOrdersQuery{From: "2024-03-01", To: "2024-03-01"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, a.ID, list[0].ID)
}

func TestCalculate_DescuentaStockYOFsAbiertas(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	_, err := f.ledger.Deposit(ctx, actor, dto.DepositRequest{
		ProductRef: "CROQ", Quantity: dec(8), Unit: "ud", ExpirationDate: "2024-03-10",
	})
	require.NoError(t, err)
	createMO(t, f, "CROQ", "2024-03-01", 4)

	res, err := f.needs.Calculate(ctx, dto.NeedsRequest{
		AsOf: "2024-02-28",
		Demand: []dto.DemandLine{
			{ProductRef: "CROQ", Quantity: dec(25), Unit: "ud", Date: "2024-03-01", Station: "CALIENTE"},
			{ProductRef: "PAN", Quantity: dec(3), Unit: "ud", Date: "2024-03-01"},
		},
	})
	require.NoError(t, err)
	require.Len(t, res.Needs, 2)

	byRef := map[string]dto.NetRequirementResponse{}
	for _, n := range res.Needs {
		byRef[n.ProductRef] = n
	}
	assert.True(t, byRef["CROQ"].Net.Equal(dec(13)), "25 - 8 en stock - 4 en OF")
	assert.True(t, byRef["CROQ"].StockApplied.Equal(dec(8)))
	assert.True(t, byRef["CROQ"].PlannedInOrders.Equal(dec(4)))
	assert.True(t, byRef["PAN"].Net.Equal(dec(3)))
	assert.Empty(t, res.Covered)
}

func TestCalculate_DemandaCubiertaSinEscribirNada(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	_, err := f.ledger.Deposit(ctx, actor, dto.DepositRequest{
		ProductRef: "CROQ", Quantity: dec(12), Unit: "ud", ExpirationDate: "2024-03-10",
	})
	require.NoError(t, err)
	before := len(f.store.AuditEntries())

	res, err := f.needs.Calculate(ctx, dto.NeedsRequest{
		AsOf:   "2024-02-28",
		Demand: []dto.DemandLine{{ProductRef: "CROQ", Quantity: dec(10), Date: "2024-03-01"}},
	})
	require.NoError(t, err)
	assert.Empty(t, res.Needs)
	require.Len(t, res.Covered, 1)
	assert.True(t, res.Covered[0].Net.IsZero())
	assert.Len(t, f.store.AuditEntries(), before)
}
