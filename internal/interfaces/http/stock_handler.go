package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cpr-planning/internal/application/dto"
	"github.com/jhoicas/cpr-planning/internal/application/stock"
)

// StockHandler lotes de producción terminada y su consumo FEFO.
type StockHandler struct {
	uc *stock.LedgerUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *stock.LedgerUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Deposit godoc
// @Summary      Alta manual de lote
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.DepositRequest  true  "Lote"
// @Success      201   {object}  dto.StockLotResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/stock/lots [post]
func (h *StockHandler) Deposit(c *fiber.Ctx) error {
	var in dto.DepositRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Deposit(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListAvailable godoc
// @Summary      Lotes con disponible
// @Description  Ordenados por caducidad (FEFO). Sin product_ref lista todos los productos.
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        product_ref  query  string  false  "Elaboración"
// @Success      200  {array}   dto.StockLotResponse
// @Router       /api/stock/lots [get]
func (h *StockHandler) ListAvailable(c *fiber.Ctx) error {
	out, err := h.uc.ListAvailable(c.UserContext(), c.Query("product_ref"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener lote
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "ID del lote"
// @Success      200  {object}  dto.StockLotResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/lots/{id} [get]
func (h *StockHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Allocate godoc
// @Summary      Consumir stock (FEFO)
// @Description  Reparte la cantidad entre lotes por caducidad. shortfall > 0 indica stock insuficiente.
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.AllocateRequest  true  "Producto y cantidad"
// @Success      200   {object}  dto.AllocationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/stock/allocations [post]
func (h *StockHandler) Allocate(c *fiber.Ctx) error {
	var in dto.AllocateRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Allocate(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Release godoc
// @Summary      Devolver asignación
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path      string              true  "ID del lote"
// @Param        body  body      dto.ReleaseRequest  true  "Cantidad"
// @Success      200   {object}  dto.StockLotResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock/lots/{id}/release [post]
func (h *StockHandler) Release(c *fiber.Ctx) error {
	var in dto.ReleaseRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Release(c.UserContext(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
