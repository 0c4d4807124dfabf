package http

import (
	"bytes"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-api/internal/application/audit"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/usecase"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/infrastructure/excel"
)

// SparepartHandler maneja las peticiones HTTP para repuestos (protegido).
type SparepartHandler struct {
	uc       *usecase.SparepartUseCase
	importer *excel.SparepartImporter
	auditor  *audit.Service
}

// NewSparepartHandler construye el handler.
func NewSparepartHandler(uc *usecase.SparepartUseCase, importer *excel.SparepartImporter, auditor *audit.Service) *SparepartHandler {
	return &SparepartHandler{uc: uc, importer: importer, auditor: auditor}
}

// Create godoc
// @Summary      Crear repuesto
// @Tags         spareparts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSparepartRequest  true  "Datos del repuesto"
// @Success      201   {object}  dto.SparepartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/spareparts [post]
func (h *SparepartHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSparepartRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	h.auditor.Record(GetUserID(c), entity.ActionCreate, "sparepart", out.ID, "repuesto "+out.Code)
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener repuesto por ID
// @Tags         spareparts
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del repuesto"
// @Success      200  {object}  dto.SparepartResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/spareparts/{id} [get]
func (h *SparepartHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "repuesto no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar repuestos
// @Tags         spareparts
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Buscar por código o nombre"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.SparepartListResponse
// @Router       /api/spareparts [get]
func (h *SparepartHandler) List(c *fiber.Ctx) error {
	limit, offset := parsePage(c)
	out, err := h.uc.List(c.Query("search"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar repuesto
// @Tags         spareparts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del repuesto"
// @Param        body  body  dto.UpdateSparepartRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.SparepartResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/spareparts/{id} [put]
func (h *SparepartHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSparepartRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "repuesto no encontrado"})
	}
	h.auditor.Record(GetUserID(c), entity.ActionUpdate, "sparepart", out.ID, "repuesto "+out.Code)
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar repuesto
// @Tags         spareparts
// @Security     Bearer
// @Param        id   path  string  true  "ID del repuesto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/spareparts/{id} [delete]
func (h *SparepartHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err)
	}
	h.auditor.Record(GetUserID(c), entity.ActionDelete, "sparepart", id, "")
	return c.SendStatus(fiber.StatusNoContent)
}

// Import godoc
// @Summary      Importar repuestos desde Excel
// @Tags         spareparts
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Archivo .xlsx con columnas código/nombre/..."
// @Success      200   {object}  dto.ImportResult
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/spareparts/import [post]
func (h *SparepartHandler) Import(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "archivo 'file' requerido"})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo abrir el archivo"})
	}
	defer file.Close()

	result, err := h.importer.Import(file)
	if err != nil {
		return respondError(c, err)
	}
	h.auditor.Record(GetUserID(c), entity.ActionImport, "sparepart", "",
		fileHeader.Filename)
	return c.JSON(result)
}

// ExportStock godoc
// @Summary      Exportar reporte de existencias (.xlsx)
// @Tags         spareparts
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200
// @Router       /api/reports/stock.xlsx [get]
func (h *SparepartHandler) ExportStock(c *fiber.Ctx) error {
	// Sin paginar: el reporte cubre el catálogo completo.
	out, err := h.uc.List("", 10000, 0)
	if err != nil {
		return respondError(c, err)
	}
	exporter := excel.NewStockReportExporter()
	data, err := exporter.Export(out.Items)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="existencias.xlsx"`)
	return c.SendStream(bytes.NewReader(data), len(data))
}
