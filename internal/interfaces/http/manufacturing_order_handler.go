package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cpr-planning/internal/application/dto"
	"github.com/jhoicas/cpr-planning/internal/application/production"
)

// ManufacturingOrderHandler órdenes de fabricación (OF).
type ManufacturingOrderHandler struct {
	uc *production.ManufacturingOrderUseCase
}

// NewManufacturingOrderHandler construye el handler.
func NewManufacturingOrderHandler(uc *production.ManufacturingOrderUseCase) *ManufacturingOrderHandler {
	return &ManufacturingOrderHandler{uc: uc}
}

// Create godoc
// @Summary      Crear OF
// @Tags         manufacturing-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateManufacturingOrderRequest  true  "Datos de la OF"
// @Success      201   {object}  dto.ManufacturingOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/manufacturing-orders [post]
func (h *ManufacturingOrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateManufacturingOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CreateFromNeeds godoc
// @Summary      Generar OFs desde necesidades
// @Description  Cada necesidad se procesa por separado; las que fallan se devuelven en failed.
// @Tags         manufacturing-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateFromNeedsRequest  true  "Necesidades"
// @Success      200   {object}  dto.CreateFromNeedsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/manufacturing-orders/from-needs [post]
func (h *ManufacturingOrderHandler) CreateFromNeeds(c *fiber.Ctx) error {
	var in dto.CreateFromNeedsRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.CreateFromNeeds(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar OFs
// @Tags         manufacturing-orders
// @Security     Bearer
// @Produce      json
// @Param        status       query  string  false  "Pendiente, Asignado, Completado, Incidencia"
// @Param        station      query  string  false  "Partida"
// @Param        product_ref  query  string  false  "Elaboración"
// @Param        from         query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to           query  string  false  "Hasta (YYYY-MM-DD)"
// @Success      200  {array}   dto.ManufacturingOrderResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/manufacturing-orders [get]
func (h *ManufacturingOrderHandler) List(c *fiber.Ctx) error {
	var q dto.ListManufacturingOrdersQuery
	if err := c.QueryParser(&q); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.List(c.UserContext(), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener OF
// @Tags         manufacturing-orders
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "ID de la OF"
// @Success      200  {object}  dto.ManufacturingOrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/manufacturing-orders/{id} [get]
func (h *ManufacturingOrderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Assign godoc
// @Summary      Asignar OF a un operario
// @Tags         manufacturing-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path      string                               true  "ID de la OF"
// @Param        body  body      dto.AssignManufacturingOrderRequest  true  "Operario y partida"
// @Success      200   {object}  dto.ManufacturingOrderResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/manufacturing-orders/{id}/assign [post]
func (h *ManufacturingOrderHandler) Assign(c *fiber.Ctx) error {
	var in dto.AssignManufacturingOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Assign(c.UserContext(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ReportIncident godoc
// @Summary      Registrar incidencia
// @Tags         manufacturing-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path      string                     true  "ID de la OF"
// @Param        body  body      dto.ReportIncidentRequest  true  "Notas"
// @Success      200   {object}  dto.ManufacturingOrderResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/manufacturing-orders/{id}/incident [post]
func (h *ManufacturingOrderHandler) ReportIncident(c *fiber.Ctx) error {
	var in dto.ReportIncidentRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.ReportIncident(c.UserContext(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Complete godoc
// @Summary      Completar OF
// @Description  Cierra la OF y da de alta el lote producido.
// @Tags         manufacturing-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path      string                                 true  "ID de la OF"
// @Param        body  body      dto.CompleteManufacturingOrderRequest  true  "Cantidad real y caducidad"
// @Success      200   {object}  dto.CompleteManufacturingOrderResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/manufacturing-orders/{id}/complete [post]
func (h *ManufacturingOrderHandler) Complete(c *fiber.Ctx) error {
	var in dto.CompleteManufacturingOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Complete(c.UserContext(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
