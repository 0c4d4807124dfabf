package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-api/internal/application/audit"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/usecase"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// WarrantyHandler maneja las peticiones HTTP para garantías (protegido).
type WarrantyHandler struct {
	uc      *usecase.WarrantyUseCase
	auditor *audit.Service
}

// NewWarrantyHandler construye el handler.
func NewWarrantyHandler(uc *usecase.WarrantyUseCase, auditor *audit.Service) *WarrantyHandler {
	return &WarrantyHandler{uc: uc, auditor: auditor}
}

// List godoc
// @Summary      Listar garantías
// @Description  Con expiring_days devuelve solo garantías activas que vencen
// @Description  dentro de esa ventana.
// @Tags         warranties
// @Security     Bearer
// @Produce      json
// @Param        expiring_days  query  int  false  "Ventana de vencimiento en días"
// @Param        limit          query  int  false  "Límite"   default(20)
// @Param        offset         query  int  false  "Offset"   default(0)
// @Success      200            {object}  dto.WarrantyListResponse
// @Router       /api/warranties [get]
func (h *WarrantyHandler) List(c *fiber.Ctx) error {
	limit, offset := parsePage(c)
	expiringDays := c.QueryInt("expiring_days", 0)
	out, err := h.uc.List(expiringDays, limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Claim godoc
// @Summary      Reclamar una garantía
// @Description  Solo garantías activas; reclamar dos veces responde 409.
// @Tags         warranties
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la garantía"
// @Success      200  {object}  dto.WarrantyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/warranties/{id}/claim [put]
func (h *WarrantyHandler) Claim(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.Claim(id)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "garantía no encontrada"})
	}
	h.auditor.Record(GetUserID(c), entity.ActionUpdate, "warranty", id, "garantía reclamada")
	return c.JSON(out)
}
