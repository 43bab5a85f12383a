//go:build integration

package postgres_test

// Ejecutar con: go test -tags integration ./internal/infrastructure/postgres/...

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/jhoicas/cpr-planning/internal/application/dto"
	"github.com/jhoicas/cpr-planning/internal/application/procurement"
	"github.com/jhoicas/cpr-planning/internal/application/stock"
	"github.com/jhoicas/cpr-planning/internal/domain"
	"github.com/jhoicas/cpr-planning/internal/domain/entity"
	"github.com/jhoicas/cpr-planning/internal/infrastructure/lock"
	"github.com/jhoicas/cpr-planning/internal/infrastructure/postgres"
	"github.com/jhoicas/cpr-planning/pkg/config"
	"github.com/jhoicas/cpr-planning/pkg/logger"
)

func setupPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.Run(ctx, "postgres:16-alpine",
		tcPostgres.WithDatabase("cpr_test"),
		tcPostgres.WithUsername("cpr"),
		tcPostgres.WithPassword("cpr"),
		tcPostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	dsn, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: dsn})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, postgres.EnsureSchema(ctx, pool))
	require.NoError(t, postgres.EnsureSchema(ctx, pool), "el esquema se puede aplicar dos veces")
	return pool
}

func TestIntegration_AsignacionConcurrenteNoSobrevende(t *testing.T) {
	pool := setupPool(t)
	ctx := context.Background()
	tx := postgres.NewTxRunner(pool)
	ledger := stock.NewLedgerUseCase(tx, postgres.NewStockLotRepository(pool), logger.Nop())

	for _, exp := range []string{"2024-01-01", "2024-02-01"} {
		_, err := ledger.Deposit(ctx, "test", dto.DepositRequest{
			ProductRef: "CROQ", Quantity: decimal.NewFromInt(10), Unit: "ud", ExpirationDate: exp,
		})
		require.NoError(t, err)
	}

	const workers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		allocated = decimal.Zero
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := ledger.Allocate(ctx, "test", dto.AllocateRequest{ProductRef: "CROQ", Quantity: decimal.NewFromInt(3)})
			if !assert.NoError(t, err) {
				return
			}
			mu.Lock()
			allocated = allocated.Add(res.Allocated)
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.True(t, allocated.Equal(decimal.NewFromInt(20)), "24 pedidas, 20 producidas: asignado %s", allocated)
	lots, err := ledger.ListAvailable(ctx, "CROQ")
	require.NoError(t, err)
	assert.Empty(t, lots)
}

func TestIntegration_BloqueoDeLotesSoloPorProducto(t *testing.T) {
	pool := setupPool(t)
	ctx := context.Background()
	lots := postgres.NewStockLotRepository(pool)
	now := time.Now().UTC()
	for _, ref := range []string{"CROQ", "TARTA"} {
		require.NoError(t, lots.Create(ctx, &entity.StockLot{
			ID: uuid.New().String(), ProductRef: ref, QuantityProduced: decimal.NewFromInt(5),
			QuantityAssigned: decimal.Zero, Unit: "ud", ExpirationDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			CreatedAt: now, UpdatedAt: now,
		}))
	}

	locked, err := lots.ListAvailableForUpdate(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, locked, "sin referencia no se bloquea nada")

	locked, err = lots.ListAvailableForUpdate(ctx, "TARTA")
	require.NoError(t, err)
	require.Len(t, locked, 1)
	assert.Equal(t, "TARTA", locked[0].ProductRef)
}

func TestIntegration_RanuraUnicaEnAlmacenamiento(t *testing.T) {
	pool := setupPool(t)
	ctx := context.Background()
	repo := postgres.NewOrderFragmentRepository(pool)
	frag := func() *entity.PendingOrderFragment {
		now := time.Now().UTC()
		return &entity.PendingOrderFragment{
			ID: uuid.New().String(), DeliveryDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			DeliveryLocation: "Almacén", RequestContext: entity.RequestContextSala,
			Status: entity.FragmentStatusPendiente, CreatedAt: now, UpdatedAt: now,
		}
	}

	first := frag()
	require.NoError(t, repo.Create(ctx, first))
	assert.ErrorIs(t, repo.Create(ctx, frag()), domain.ErrConflict)

	first.Status = entity.FragmentStatusCancelado
	require.NoError(t, repo.Update(ctx, first))
	require.NoError(t, repo.Create(ctx, frag()))
}

func TestIntegration_OFUnicaPorProductoYFecha(t *testing.T) {
	pool := setupPool(t)
	ctx := context.Background()
	repo := postgres.NewManufacturingOrderRepository(pool)
	mo := func(status entity.MOStatus) *entity.ManufacturingOrder {
		id := uuid.New().String()
		now := time.Now().UTC()
		return &entity.ManufacturingOrder{
			ID: id, Code: "OF-" + id[:8], ProductRef: "CROQ", PlannedQuantity: decimal.NewFromInt(5),
			Unit: "ud", ScheduledDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			Station: entity.StationCaliente, Status: status, CreatedAt: now, UpdatedAt: now,
		}
	}

	require.NoError(t, repo.Create(ctx, mo(entity.MOStatusIncidencia)))
	require.NoError(t, repo.Create(ctx, mo(entity.MOStatusPendiente)))
	assert.ErrorIs(t, repo.Create(ctx, mo(entity.MOStatusPendiente)), domain.ErrConflict)
}

func TestIntegration_ConsolidarYLimpiarDuplicados(t *testing.T) {
	pool := setupPool(t)
	ctx := context.Background()
	tx := postgres.NewTxRunner(pool)
	repos := postgres.NewRepos(pool)
	log := logger.Nop()

	fragments := procurement.NewFragmentUseCase(tx, repos.Fragments)
	consolidation := procurement.NewConsolidationUseCase(tx, repos.Consolidated, nil, log)
	var ids []string
	for _, origin := range []string{"Sala", "Cocina"} {
		f, err := fragments.Create(ctx, "test", dto.CreateFragmentRequest{
			DeliveryDate: "2024-03-01", DeliveryLocation: "Almacén", RequestContext: origin,
			Items: []dto.OrderLineDTO{{ItemRef: "PAN", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(1)}},
		})
		require.NoError(t, err)
		ids = append(ids, f.ID)
	}
	res, err := consolidation.Consolidate(ctx, "test", dto.ConsolidateRequest{FragmentIDs: ids})
	require.NoError(t, err)
	require.Len(t, res.Orders, 1)
	assert.Equal(t, "A0001", res.Orders[0].OrderNumber)
	assert.True(t, res.Orders[0].Items[0].Quantity.Equal(decimal.NewFromInt(4)))

	history, err := repos.Audit.ListByEntity(ctx, entity.EntityConsolidatedOrder, res.Orders[0].ID)
	require.NoError(t, err)
	require.Len(t, history, 1)

	// Simula datos heredados: sin el índice único, dos filas con el mismo número.
	_, err = pool.Exec(ctx, `DROP INDEX ux_consolidated_order_number`)
	require.NoError(t, err)
	dup := &entity.ConsolidatedOrder{
		ID: uuid.New().String(), OrderNumber: "A0001", DeliveryDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		DeliveryLocation: "Almacén", CreatedAt: time.Now().UTC().Add(time.Hour), Status: entity.ConsolidatedStatusEnPreparacion,
	}
	require.NoError(t, repos.Consolidated.Create(ctx, dup))

	reconcile := procurement.NewReconcileUseCase(tx, repos.Consolidated, lock.NewLocalLocker(), time.Minute, log)
	out, err := reconcile.Reconcile(ctx, "test", false)
	require.NoError(t, err)
	assert.Equal(t, []string{dup.ID}, out.DeletedIDs)

	again, err := reconcile.Reconcile(ctx, "test", false)
	require.NoError(t, err)
	assert.Zero(t, again.DeletedCount)

	require.NoError(t, postgres.EnsureSchema(ctx, pool), "tras la limpieza el índice se recrea")
}
