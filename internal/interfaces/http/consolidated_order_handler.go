package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cpr-planning/internal/application/dto"
	"github.com/jhoicas/cpr-planning/internal/application/procurement"
)

// ConsolidatedOrderHandler pedidos de proveedor generados desde sub-pedidos.
type ConsolidatedOrderHandler struct {
	uc *procurement.ConsolidationUseCase
}

// NewConsolidatedOrderHandler construye el handler.
func NewConsolidatedOrderHandler(uc *procurement.ConsolidationUseCase) *ConsolidatedOrderHandler {
	return &ConsolidatedOrderHandler{uc: uc}
}

// Consolidate godoc
// @Summary      Consolidar sub-pedidos
// @Description  Agrupa por fecha y localización; un pedido A#### por grupo. Todo o nada.
// @Tags         consolidated-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.ConsolidateRequest  true  "Sub-pedidos seleccionados"
// @Success      201   {object}  dto.ConsolidateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/consolidated-orders [post]
func (h *ConsolidatedOrderHandler) Consolidate(c *fiber.Ctx) error {
	var in dto.ConsolidateRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Consolidate(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener pedido consolidado
// @Tags         consolidated-orders
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "ID del pedido"
// @Success      200  {object}  dto.ConsolidatedOrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/consolidated-orders/{id} [get]
func (h *ConsolidatedOrderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// PDF godoc
// @Summary      Documento del pedido
// @Tags         consolidated-orders
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/consolidated-orders/{id}/pdf [get]
func (h *ConsolidatedOrderHandler) PDF(c *fiber.Ctx) error {
	doc, number, err := h.uc.RenderDocument(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="pedido-`+number+`.pdf"`)
	return c.Send(doc)
}
