package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cpr-planning/internal/application/dto"
	"github.com/jhoicas/cpr-planning/internal/application/production"
)

// PlanningHandler cálculo de necesidades netas.
type PlanningHandler struct {
	uc *production.NeedsUseCase
}

// NewPlanningHandler construye el handler.
func NewPlanningHandler(uc *production.NeedsUseCase) *PlanningHandler {
	return &PlanningHandler{uc: uc}
}

// Needs godoc
// @Summary      Calcular necesidades netas
// @Description  Demanda menos stock disponible y OFs abiertas, por producto y fecha.
// @Tags         planning
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.NeedsRequest  true  "Demanda"
// @Success      200   {object}  dto.NeedsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/planning/needs [post]
func (h *PlanningHandler) Needs(c *fiber.Ctx) error {
	var in dto.NeedsRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Calculate(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
