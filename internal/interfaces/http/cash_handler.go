package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-api/internal/application/audit"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/usecase"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// CashHandler maneja las peticiones HTTP para caja menor (protegido).
type CashHandler struct {
	uc      *usecase.CashUseCase
	auditor *audit.Service
}

// NewCashHandler construye el handler.
func NewCashHandler(uc *usecase.CashUseCase, auditor *audit.Service) *CashHandler {
	return &CashHandler{uc: uc, auditor: auditor}
}

// Create godoc
// @Summary      Registrar movimiento de caja
// @Description  Calcula el saldo corrido dentro de la transacción. Un gasto
// @Description  mayor al saldo disponible responde 409.
// @Tags         cash
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCashEntryRequest  true  "Datos del movimiento"
// @Success      201   {object}  dto.CashEntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/cash [post]
func (h *CashHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCashEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	h.auditor.Record(GetUserID(c), entity.ActionCreate, "cash_entry", out.ID, out.Type+" "+out.Amount.String())
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Balance godoc
// @Summary      Consultar saldo de caja
// @Tags         cash
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CashBalanceResponse
// @Router       /api/cash/balance [get]
func (h *CashHandler) Balance(c *fiber.Ctx) error {
	out, err := h.uc.Balance()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar movimientos de caja
// @Tags         cash
// @Security     Bearer
// @Produce      json
// @Param        type    query  string  false  "Filtrar por tipo (income/expense)"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.CashListResponse
// @Router       /api/cash [get]
func (h *CashHandler) List(c *fiber.Ctx) error {
	limit, offset := parsePage(c)
	out, err := h.uc.List(c.Query("type"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
