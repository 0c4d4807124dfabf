package excel

import (
	"fmt"
	"time"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/xuri/excelize/v2"
)

// StockReportExporter genera el reporte de existencias en formato .xlsx.
type StockReportExporter struct{}

// NewStockReportExporter construye el exportador.
func NewStockReportExporter() *StockReportExporter {
	return &StockReportExporter{}
}

// Export escribe una hoja "Existencias" con una fila por repuesto y devuelve
// el archivo serializado.
func (e *StockReportExporter) Export(spareparts []dto.SparepartResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Existencias"
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, fmt.Errorf("renombrar hoja: %w", err)
	}

	header := []any{"Código", "Nombre", "Categoría", "Unidad", "Stock mínimo", "Stock actual", "Ubicación", "Precio"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("escribir encabezado: %w", err)
	}

	for i, sp := range spareparts {
		row := []any{
			sp.Code, sp.Name, sp.Category, sp.Unit,
			sp.MinStock, sp.CurrentStock, sp.Location,
			sp.Price.InexactFloat64(),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("escribir fila %d: %w", i+2, err)
		}
	}

	// Metadatos útiles al pie: cuándo se generó el reporte.
	footerCell := fmt.Sprintf("A%d", len(spareparts)+3)
	_ = f.SetCellValue(sheet, footerCell, "Generado: "+time.Now().Format("2006-01-02 15:04"))

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializar reporte: %w", err)
	}
	return buf.Bytes(), nil
}
