package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cpr-planning/internal/application/audit"
)

// ActivityHandler historial de cambios de una entidad.
type ActivityHandler struct {
	uc *audit.HistoryUseCase
}

// NewActivityHandler construye el handler.
func NewActivityHandler(uc *audit.HistoryUseCase) *ActivityHandler {
	return &ActivityHandler{uc: uc}
}

// History godoc
// @Summary      Historial de una entidad
// @Tags         activity
// @Security     Bearer
// @Produce      json
// @Param        entity_type  path  string  true  "manufacturing_order, stock_lot, pending_order_fragment, consolidated_order"
// @Param        entity_id    path  string  true  "ID"
// @Success      200  {array}   dto.AuditEntryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/activity/{entity_type}/{entity_id} [get]
func (h *ActivityHandler) History(c *fiber.Ctx) error {
	out, err := h.uc.ListByEntity(c.UserContext(), c.Params("entity_type"), c.Params("entity_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
