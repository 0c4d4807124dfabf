package http

import (
	"bytes"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-api/internal/application/audit"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/stock"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// StockOutHandler maneja las peticiones HTTP para solicitudes de salida (protegido).
type StockOutHandler struct {
	uc      *stock.StockOutUseCase
	pdfGen  stock.VoucherPDFGenerator
	auditor *audit.Service
}

// NewStockOutHandler construye el handler.
func NewStockOutHandler(uc *stock.StockOutUseCase, pdfGen stock.VoucherPDFGenerator, auditor *audit.Service) *StockOutHandler {
	return &StockOutHandler{uc: uc, pdfGen: pdfGen, auditor: auditor}
}

// Create godoc
// @Summary      Crear solicitud de salida
// @Description  Nace en pending; no descuenta ni reserva stock. La suficiencia
// @Description  se verifica contra el stock del momento como chequeo blando.
// @Tags         stock-out
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStockOutRequest  true  "Datos de la solicitud"
// @Success      201   {object}  dto.StockOutResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock-out [post]
func (h *StockOutHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStockOutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	h.auditor.Record(GetUserID(c), entity.ActionCreate, "stock_out", out.ID, "solicitud de salida")
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener solicitud por ID
// @Tags         stock-out
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la solicitud"
// @Success      200  {object}  dto.StockOutResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock-out/{id} [get]
func (h *StockOutHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "solicitud no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar solicitudes de salida
// @Tags         stock-out
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "Filtrar por estado (pending/approved/rejected)"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.StockOutListResponse
// @Router       /api/stock-out [get]
func (h *StockOutHandler) List(c *fiber.Ctx) error {
	limit, offset := parsePage(c)
	out, err := h.uc.List(c.Query("status"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Approve godoc
// @Summary      Aprobar solicitud de salida
// @Description  Re-verifica suficiencia contra el stock ACTUAL bajo bloqueo de
// @Description  fila y descuenta. Solo una aprobación puede ganar; la segunda
// @Description  responde 409.
// @Tags         stock-out
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la solicitud"
// @Success      200  {object}  dto.StockOutResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/stock-out/{id}/approve [put]
func (h *StockOutHandler) Approve(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.Approve(c.UserContext(), id, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	h.auditor.Record(GetUserID(c), entity.ActionApprove, "stock_out", id, "salida aprobada")
	return c.JSON(out)
}

// Reject godoc
// @Summary      Rechazar solicitud de salida
// @Description  Requiere un motivo no vacío. No toca el stock.
// @Tags         stock-out
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la solicitud"
// @Param        body  body  dto.RejectStockOutRequest  true  "Motivo del rechazo"
// @Success      200   {object}  dto.StockOutResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock-out/{id}/reject [put]
func (h *StockOutHandler) Reject(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.RejectStockOutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Reject(c.UserContext(), id, in.Reason)
	if err != nil {
		return respondError(c, err)
	}
	h.auditor.Record(GetUserID(c), entity.ActionReject, "stock_out", id, "motivo: "+in.Reason)
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar solicitud de salida
// @Description  Solo solicitudes en pending; las decididas son historial inmutable.
// @Tags         stock-out
// @Security     Bearer
// @Param        id   path  string  true  "ID de la solicitud"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/stock-out/{id} [delete]
func (h *StockOutHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	h.auditor.Record(GetUserID(c), entity.ActionDelete, "stock_out", id, "")
	return c.SendStatus(fiber.StatusNoContent)
}

// Voucher godoc
// @Summary      Descargar vale de salida en PDF
// @Description  Solo disponible para solicitudes aprobadas.
// @Tags         stock-out
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la solicitud"
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/stock-out/{id}/voucher.pdf [get]
func (h *StockOutHandler) Voucher(c *fiber.Ctx) error {
	data, err := h.uc.Voucher(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	pdfBytes, err := h.pdfGen.GenerateVoucherPDF(c.UserContext(), data)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="vale-salida.pdf"`)
	return c.SendStream(bytes.NewReader(pdfBytes), len(pdfBytes))
}
