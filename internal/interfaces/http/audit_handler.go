package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-api/internal/application/audit"
)

// AuditHandler consulta de bitácora (protegido, solo admin).
type AuditHandler struct {
	svc *audit.Service
}

// NewAuditHandler construye el handler.
func NewAuditHandler(svc *audit.Service) *AuditHandler {
	return &AuditHandler{svc: svc}
}

// List godoc
// @Summary      Listar bitácora de auditoría y seguridad
// @Tags         audit
// @Security     Bearer
// @Produce      json
// @Param        kind    query  string  false  "Filtrar por tipo (audit/security)"
// @Param        entity  query  string  false  "Filtrar por entidad"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.AuditListResponse
// @Router       /api/audit [get]
func (h *AuditHandler) List(c *fiber.Ctx) error {
	limit, offset := parsePage(c)
	out, err := h.svc.List(c.Query("kind"), c.Query("entity"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
