package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cpr-planning/internal/application/dto"
	"github.com/jhoicas/cpr-planning/internal/application/procurement"
)

// FragmentHandler sub-pedidos de Sala y Cocina pendientes de consolidar.
type FragmentHandler struct {
	uc *procurement.FragmentUseCase
}

// NewFragmentHandler construye el handler.
func NewFragmentHandler(uc *procurement.FragmentUseCase) *FragmentHandler {
	return &FragmentHandler{uc: uc}
}

// Create godoc
// @Summary      Crear sub-pedido
// @Tags         fragments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateFragmentRequest  true  "Sub-pedido"
// @Success      201   {object}  dto.FragmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "ya existe un sub-pedido para esa fecha, localización y contexto"
// @Router       /api/fragments [post]
func (h *FragmentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFragmentRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar sub-pedidos vivos
// @Tags         fragments
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to    query  string  false  "Hasta (YYYY-MM-DD)"
// @Success      200  {array}   dto.FragmentResponse
// @Router       /api/fragments [get]
func (h *FragmentHandler) List(c *fiber.Ctx) error {
	var q dto.ListFragmentsQuery
	if err := c.QueryParser(&q); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.ListLive(c.UserContext(), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener sub-pedido
// @Tags         fragments
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "ID del sub-pedido"
// @Success      200  {object}  dto.FragmentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/fragments/{id} [get]
func (h *FragmentHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateItems godoc
// @Summary      Sustituir líneas
// @Tags         fragments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path      string                          true  "ID del sub-pedido"
// @Param        body  body      dto.UpdateFragmentItemsRequest  true  "Líneas"
// @Success      200   {object}  dto.FragmentResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/fragments/{id}/items [put]
func (h *FragmentHandler) UpdateItems(c *fiber.Ctx) error {
	var in dto.UpdateFragmentItemsRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateItems(c.UserContext(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ChangeContext godoc
// @Summary      Mover sub-pedido (fecha, localización o contexto)
// @Tags         fragments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path      string                            true  "ID del sub-pedido"
// @Param        body  body      dto.ChangeFragmentContextRequest  true  "Nueva ranura"
// @Success      200   {object}  dto.FragmentResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/fragments/{id}/context [patch]
func (h *FragmentHandler) ChangeContext(c *fiber.Ctx) error {
	var in dto.ChangeFragmentContextRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.ChangeContext(c.UserContext(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ChangeStatus godoc
// @Summary      Cambiar estado
// @Tags         fragments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path      string                           true  "ID del sub-pedido"
// @Param        body  body      dto.ChangeFragmentStatusRequest  true  "Estado"
// @Success      200   {object}  dto.FragmentResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/fragments/{id}/status [patch]
func (h *FragmentHandler) ChangeStatus(c *fiber.Ctx) error {
	var in dto.ChangeFragmentStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.ChangeStatus(c.UserContext(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
