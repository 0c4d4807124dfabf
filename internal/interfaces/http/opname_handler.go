package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-api/internal/application/audit"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/stock"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// OpnameHandler maneja las peticiones HTTP para tomas físicas (protegido).
type OpnameHandler struct {
	uc      *stock.OpnameUseCase
	auditor *audit.Service
}

// NewOpnameHandler construye el handler.
func NewOpnameHandler(uc *stock.OpnameUseCase, auditor *audit.Service) *OpnameHandler {
	return &OpnameHandler{uc: uc, auditor: auditor}
}

// Create godoc
// @Summary      Reconciliar una toma física de inventario
// @Description  Procesa el lote completo en una transacción: por cada repuesto
// @Description  con diferencia sintetiza el ajuste (entrada o salida aprobada)
// @Description  y sobrescribe el stock al valor contado. Si ningún ítem
// @Description  difiere responde 422.
// @Tags         opname
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOpnameRequest  true  "Lote de conteos"
// @Success      201   {object}  dto.OpnameResultResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/opname [post]
func (h *OpnameHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOpnameRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Reconcile(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	h.auditor.Record(GetUserID(c), entity.ActionCreate, "opname", out.SessionID, "toma física reconciliada")
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListSessions godoc
// @Summary      Listar tomas físicas
// @Tags         opname
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.OpnameSessionListResponse
// @Router       /api/opname [get]
func (h *OpnameHandler) ListSessions(c *fiber.Ctx) error {
	limit, offset := parsePage(c)
	sessions, err := h.uc.ListSessions(limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	items := make([]dto.OpnameSessionResponse, 0, len(sessions))
	for _, s := range sessions {
		items = append(items, dto.OpnameSessionResponse{
			ID:        s.ID,
			Notes:     s.Notes,
			CreatedAt: s.CreatedAt.Format(time.RFC3339),
			CreatedBy: s.CreatedBy,
		})
	}
	return c.JSON(dto.OpnameSessionListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	})
}

// Items godoc
// @Summary      Listar los ítems con diferencia de una toma física
// @Tags         opname
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la toma"
// @Success      200  {array}  dto.OpnameItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/opname/{id}/items [get]
func (h *OpnameHandler) Items(c *fiber.Ctx) error {
	list, err := h.uc.SessionItems(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	items := make([]dto.OpnameItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, dto.OpnameItemResponse{
			ID:            it.ID,
			SessionID:     it.SessionID,
			SparepartID:   it.SparepartID,
			SystemStock:   it.SystemStock,
			PhysicalStock: it.PhysicalStock,
			Difference:    it.Difference,
			Notes:         it.Notes,
		})
	}
	return c.JSON(items)
}
