package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-api/internal/application/audit"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/stock"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// StockInHandler maneja las peticiones HTTP para entradas de stock (protegido).
type StockInHandler struct {
	uc      *stock.StockInUseCase
	auditor *audit.Service
}

// NewStockInHandler construye el handler.
func NewStockInHandler(uc *stock.StockInUseCase, auditor *audit.Service) *StockInHandler {
	return &StockInHandler{uc: uc, auditor: auditor}
}

// Create godoc
// @Summary      Registrar entrada de stock
// @Description  Crea la entrada, incrementa el stock del repuesto y, si se
// @Description  envía warranty_expiry, crea la garantía asociada. Todo en una
// @Description  transacción.
// @Tags         stock-in
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStockInRequest  true  "Datos de la entrada"
// @Success      201   {object}  dto.StockInResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock-in [post]
func (h *StockInHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStockInRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	h.auditor.Record(GetUserID(c), entity.ActionCreate, "stock_in", out.ID, "entrada de stock")
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener entrada por ID
// @Tags         stock-in
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la entrada"
// @Success      200  {object}  dto.StockInResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock-in/{id} [get]
func (h *StockInHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "entrada no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar entradas de stock
// @Tags         stock-in
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.StockInListResponse
// @Router       /api/stock-in [get]
func (h *StockInHandler) List(c *fiber.Ctx) error {
	limit, offset := parsePage(c)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar entrada de stock
// @Description  Revierte simétricamente el incremento de stock y elimina la
// @Description  garantía asociada si existe. Falla con 409 si el stock actual
// @Description  ya no alcanza para revertir.
// @Tags         stock-in
// @Security     Bearer
// @Param        id   path  string  true  "ID de la entrada"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/stock-in/{id} [delete]
func (h *StockInHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	h.auditor.Record(GetUserID(c), entity.ActionDelete, "stock_in", id, "reversión de entrada")
	return c.SendStatus(fiber.StatusNoContent)
}
