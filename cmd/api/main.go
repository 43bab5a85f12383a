package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/cpr-planning/docs"
	"github.com/jhoicas/cpr-planning/internal/application/audit"
	"github.com/jhoicas/cpr-planning/internal/application/ports"
	"github.com/jhoicas/cpr-planning/internal/application/procurement"
	"github.com/jhoicas/cpr-planning/internal/application/production"
	"github.com/jhoicas/cpr-planning/internal/application/stock"
	"github.com/jhoicas/cpr-planning/internal/domain/repository"
	"github.com/jhoicas/cpr-planning/internal/infrastructure/lock"
	"github.com/jhoicas/cpr-planning/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/cpr-planning/internal/infrastructure/pdf"
	"github.com/jhoicas/cpr-planning/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/cpr-planning/internal/interfaces/http"
	"github.com/jhoicas/cpr-planning/pkg/config"
	"github.com/jhoicas/cpr-planning/pkg/logger"
)

// @title                       CPR Planning API
// @version                     1.0
// @description                 Planificación de producción y compras de la cocina central.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
// @securityDefinitions.apikey  MaintenanceKey
// @in                          header
// @name                        X-Maintenance-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.App.StorageDriver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var (
		txRunner ports.TxRunner
		repos    repository.Repos
	)
	switch cfg.App.StorageDriver {
	case config.StorageDriverMemory:
		store := memory.NewStore()
		txRunner, repos = store, store.Repos()
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		txRunner, repos = postgres.NewTxRunner(pool), postgres.NewRepos(pool)
	}

	// Candado de la limpieza de duplicados: Redis si hay varias réplicas.
	var locker ports.RunLocker = lock.NewLocalLocker()
	if cfg.Redis.URL != "" {
		rdb, err := lock.NewRedisClient(ctx, cfg.Redis.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer rdb.Close()
		locker = lock.NewRedisLocker(rdb)
	}

	ledgerUC := stock.NewLedgerUseCase(txRunner, repos.Lots, log)
	moUC := production.NewManufacturingOrderUseCase(txRunner, repos.Orders, ledgerUC, log)
	needsUC := production.NewNeedsUseCase(repos.Orders, repos.Lots)
	fragmentUC := procurement.NewFragmentUseCase(txRunner, repos.Fragments)

	// PDF: documento del pedido consolidado que se envía al proveedor
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Name)
	consolidationUC := procurement.NewConsolidationUseCase(txRunner, repos.Consolidated, pdfGenerator, log)
	reconcileUC := procurement.NewReconcileUseCase(txRunner, repos.Consolidated, locker, cfg.Maintenance.LockTTL(), log)
	historyUC := audit.NewHistoryUseCase(repos.Audit)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "CPR Planning API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "storage": cfg.App.StorageDriver})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		NeedsUC:              needsUC,
		ManufacturingOrderUC: moUC,
		LedgerUC:             ledgerUC,
		FragmentUC:           fragmentUC,
		ConsolidationUC:      consolidationUC,
		ReconcileUC:          reconcileUC,
		HistoryUC:            historyUC,
		JWTSecret:            cfg.JWT.Secret,
		MaintenanceKeyHash:   cfg.Maintenance.KeyHash,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
