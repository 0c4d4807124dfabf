// Package pdf implementa la generación del vale de salida de bodega.
//
// Layout de la página A5 horizontal:
//
//	┌──────────────────────────────────────────────────────┐
//	│  HEADER: Almacén de Repuestos  │  N° Vale + Fecha    │
//	│  ──────────────────────────────────────────────────  │
//	│  DESTINO: Equipo + Solicitante                       │
//	│  ──────────────────────────────────────────────────  │
//	│  TABLA: Código | Repuesto | Unidad | Cantidad        │
//	│  ──────────────────────────────────────────────────  │
//	│  FIRMAS: Entrega ______ | Recibe ______              │
//	└──────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appstock "github.com/tu-usuario/almacen-api/internal/application/stock"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 30, Green: 80, Blue: 60}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ appstock.VoucherPDFGenerator = (*MarotoVoucherGenerator)(nil)

// MarotoVoucherGenerator implementa stock.VoucherPDFGenerator usando Maroto v2.
type MarotoVoucherGenerator struct{}

// NewMarotoVoucherGenerator construye el generador.
func NewMarotoVoucherGenerator() *MarotoVoucherGenerator { return &MarotoVoucherGenerator{} }

// GenerateVoucherPDF genera el vale de salida y devuelve sus bytes.
func (g *MarotoVoucherGenerator) GenerateVoucherPDF(_ context.Context, data *appstock.VoucherData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Vale de Salida de Bodega", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data.Out))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(destinationRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableDetailRow(data.Sparepart, data.Out.Quantity))

	m.AddRows(line.NewRow(3))
	m.AddRows(signatureRow(data))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar vale: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título del almacén (izq) y N° de vale + fecha de aprobación (der).
func headerRow(out *entity.StockOut) core.Row {
	fecha := ""
	if out.ApprovedAt != nil {
		fecha = out.ApprovedAt.Format("02/01/2006 15:04")
	}
	return row.New(16).Add(
		col.New(7).Add(
			text.New("ALMACÉN DE REPUESTOS", props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1,
			}),
			text.New("Maquinaria pesada", props.Text{
				Size: 8, Top: 8, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("VALE DE SALIDA", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("N° "+shortID(out.ID), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 6,
			}),
			text.New("Aprobado: "+fecha, props.Text{
				Size: 7, Align: align.Right, Top: 12, Color: colorGray,
			}),
		),
	)
}

// destinationRow: equipo destino + empleado solicitante + propósito.
func destinationRow(data *appstock.VoucherData) core.Row {
	equipo := "—"
	if data.Equipment != nil {
		equipo = fmt.Sprintf("%s (%s)", data.Equipment.Name, data.Equipment.Code)
	}
	solicitante := "—"
	if data.Employee != nil {
		solicitante = fmt.Sprintf("%s (%s)", data.Employee.Name, data.Employee.Code)
	}
	return row.New(16).Add(
		col.New(12).Add(
			text.New("DESTINO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Equipo: %s   |   Solicita: %s", equipo, solicitante), props.Text{
				Size: 8, Top: 6,
			}),
			text.New("Propósito: "+nonEmpty(data.Out.Purpose, "—"), props.Text{
				Size: 8, Top: 11, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla del repuesto entregado.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Código", 2, align.Left),
		h("Repuesto", 6, align.Left),
		h("Unidad", 2, align.Center),
		h("Cantidad", 2, align.Right),
	)
}

// tableDetailRow: la línea del repuesto con su cantidad aprobada.
func tableDetailRow(sp *entity.Sparepart, quantity int64) core.Row {
	return row.New(8).Add(
		col.New(2).Add(text.New(sp.Code, props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(6).Add(text.New(sp.Name, props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(2).Add(text.New(sp.Unit, props.Text{Size: 8, Align: align.Center, Top: 1})),
		col.New(2).Add(text.New(fmt.Sprintf("%d", quantity), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1, Right: 1,
		})),
	)
}

// signatureRow: líneas de firma para quien entrega y quien recibe.
func signatureRow(data *appstock.VoucherData) core.Row {
	recibe := ""
	if data.Employee != nil {
		recibe = data.Employee.Name
	}
	return row.New(22).Add(
		col.New(6).Add(
			text.New("_______________________", props.Text{Size: 9, Align: align.Center, Top: 10}),
			text.New("Entrega (bodega)", props.Text{Size: 7, Align: align.Center, Top: 16, Color: colorGray}),
		),
		col.New(6).Add(
			text.New("_______________________", props.Text{Size: 9, Align: align.Center, Top: 10}),
			text.New("Recibe: "+nonEmpty(recibe, "solicitante"), props.Text{
				Size: 7, Align: align.Center, Top: 16, Color: colorGray,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// shortID toma el primer bloque del UUID para un número de vale legible.
func shortID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}
