package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cpr-planning/internal/application/procurement"
)

// MaintenanceHandler operaciones de mantenimiento de datos.
type MaintenanceHandler struct {
	reconcile *procurement.ReconcileUseCase
}

// NewMaintenanceHandler construye el handler.
func NewMaintenanceHandler(reconcile *procurement.ReconcileUseCase) *MaintenanceHandler {
	return &MaintenanceHandler{reconcile: reconcile}
}

// CleanupDuplicateOrders godoc
// @Summary      Limpiar pedidos consolidados duplicados
// @Description  Conserva el más antiguo de cada número repetido y borra el resto. Con dry_run=true solo informa.
// @Tags         maintenance
// @Security     Bearer
// @Security     MaintenanceKey
// @Produce      json
// @Param        dry_run  query     bool  false  "Solo informar"
// @Success      200      {object}  dto.ReconcileResponse
// @Failure      401      {object}  dto.ErrorResponse
// @Failure      403      {object}  dto.ErrorResponse
// @Failure      409      {object}  dto.ErrorResponse  "otra limpieza en curso"
// @Router       /api/maintenance/duplicate-orders/cleanup [post]
func (h *MaintenanceHandler) CleanupDuplicateOrders(c *fiber.Ctx) error {
	out, err := h.reconcile.Reconcile(c.UserContext(), GetUserID(c), c.QueryBool("dry_run", false))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
