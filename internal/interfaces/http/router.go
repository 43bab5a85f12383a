package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cpr-planning/internal/application/audit"
	"github.com/jhoicas/cpr-planning/internal/application/procurement"
	"github.com/jhoicas/cpr-planning/internal/application/production"
	"github.com/jhoicas/cpr-planning/internal/application/stock"
	"github.com/jhoicas/cpr-planning/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	NeedsUC              *production.NeedsUseCase
	ManufacturingOrderUC *production.ManufacturingOrderUseCase
	LedgerUC             *stock.LedgerUseCase
	FragmentUC           *procurement.FragmentUseCase
	ConsolidationUC      *procurement.ConsolidationUseCase
	ReconcileUC          *procurement.ReconcileUseCase
	HistoryUC            *audit.HistoryUseCase
	JWTSecret            string
	MaintenanceKeyHash   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Mantenimiento: JWT admin o X-Maintenance-Key (no pasa por AuthMiddleware)
	maintenanceHandler := NewMaintenanceHandler(deps.ReconcileUC)
	api.Post("/maintenance/duplicate-orders/cleanup",
		RequireMaintenance(deps.JWTSecret, deps.MaintenanceKeyHash),
		maintenanceHandler.CleanupDuplicateOrders,
	)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	canProduce := RequireRole(jwt.RoleAdmin, jwt.RoleOperator, jwt.RoleCook)
	canProcure := RequireRole(jwt.RoleAdmin, jwt.RoleOperator, jwt.RoleLogistic)
	anyRole := RequireRole(jwt.RoleAdmin, jwt.RoleOperator, jwt.RoleCook, jwt.RoleLogistic)

	// Planificación
	planningHandler := NewPlanningHandler(deps.NeedsUC)
	protected.Post("/planning/needs", canProduce, planningHandler.Needs)

	// Órdenes de fabricación
	mos := protected.Group("/manufacturing-orders", canProduce)
	moHandler := NewManufacturingOrderHandler(deps.ManufacturingOrderUC)
	mos.Post("/", moHandler.Create)
	mos.Post("/from-needs", moHandler.CreateFromNeeds)
	mos.Get("/", moHandler.List)
	mos.Get("/:id", moHandler.GetByID)
	mos.Post("/:id/assign", moHandler.Assign)
	mos.Post("/:id/incident", moHandler.ReportIncident)
	mos.Post("/:id/complete", moHandler.Complete)

	// Stock
	stockGroup := protected.Group("/stock", anyRole)
	stockHandler := NewStockHandler(deps.LedgerUC)
	stockGroup.Post("/lots", stockHandler.Deposit)
	stockGroup.Get("/lots", stockHandler.ListAvailable)
	stockGroup.Get("/lots/:id", stockHandler.GetByID)
	stockGroup.Post("/lots/:id/release", stockHandler.Release)
	stockGroup.Post("/allocations", stockHandler.Allocate)

	// Sub-pedidos
	fragments := protected.Group("/fragments", canProcure)
	fragmentHandler := NewFragmentHandler(deps.FragmentUC)
	fragments.Post("/", fragmentHandler.Create)
	fragments.Get("/", fragmentHandler.List)
	fragments.Get("/:id", fragmentHandler.GetByID)
	fragments.Put("/:id/items", fragmentHandler.UpdateItems)
	fragments.Patch("/:id/context", fragmentHandler.ChangeContext)
	fragments.Patch("/:id/status", fragmentHandler.ChangeStatus)

	// Pedidos consolidados
	consolidated := protected.Group("/consolidated-orders", canProcure)
	consolidatedHandler := NewConsolidatedOrderHandler(deps.ConsolidationUC)
	consolidated.Post("/", consolidatedHandler.Consolidate)
	consolidated.Get("/:id", consolidatedHandler.GetByID)
	consolidated.Get("/:id/pdf", consolidatedHandler.PDF)

	// Historial
	activityHandler := NewActivityHandler(deps.HistoryUC)
	protected.Get("/activity/:entity_type/:entity_id", RequireRole(jwt.RoleAdmin, jwt.RoleOperator), activityHandler.History)
}
