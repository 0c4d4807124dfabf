package excel

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// SparepartImporter carga masiva de repuestos desde una hoja Excel.
// Crea por código nuevo y actualiza por código existente; nunca toca
// CurrentStock (eso va por entradas/salidas/conteos).
type SparepartImporter struct {
	repo repository.SparepartRepository
}

// NewSparepartImporter construye el importador.
func NewSparepartImporter(repo repository.SparepartRepository) *SparepartImporter {
	return &SparepartImporter{repo: repo}
}

// Columnas reconocidas en la fila de encabezado (tras quitar acentos y bajar
// a minúsculas). "codigo" y "nombre" son obligatorias, el resto opcionales.
var headerAliases = map[string]string{
	"codigo":       "code",
	"code":         "code",
	"nombre":       "name",
	"name":         "name",
	"categoria":    "category",
	"category":     "category",
	"unidad":       "unit",
	"unit":         "unit",
	"stock minimo": "min_stock",
	"minimo":       "min_stock",
	"min stock":    "min_stock",
	"ubicacion":    "location",
	"location":     "location",
	"precio":       "price",
	"price":        "price",
}

var accentFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizeHeader quita acentos y normaliza espacios: " Código " -> "codigo".
func normalizeHeader(s string) string {
	folded, _, err := transform.String(accentFolder, s)
	if err != nil {
		folded = s
	}
	folded = strings.ToLower(strings.TrimSpace(folded))
	return strings.Join(strings.Fields(strings.NewReplacer("_", " ", "-", " ").Replace(folded)), " ")
}

// Import lee la primera hoja del archivo y procesa fila por fila. Las filas
// inválidas se acumulan en el resultado sin abortar el resto.
func (imp *SparepartImporter) Import(r io.Reader) (*dto.ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("abrir archivo Excel: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, domain.ErrInvalidInput
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("leer hoja: %w", err)
	}
	if len(rows) < 2 {
		return nil, domain.ErrInvalidInput
	}

	cols := map[string]int{}
	for i, cell := range rows[0] {
		if field, ok := headerAliases[normalizeHeader(cell)]; ok {
			cols[field] = i
		}
	}
	if _, ok := cols["code"]; !ok {
		return nil, domain.ErrInvalidInput
	}
	if _, ok := cols["name"]; !ok {
		return nil, domain.ErrInvalidInput
	}

	result := &dto.ImportResult{}
	for i, row := range rows[1:] {
		rowNum := i + 2 // 1-based, saltando el encabezado
		if err := imp.importRow(row, cols, result); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, dto.ImportRowError{Row: rowNum, Message: err.Error()})
		}
	}
	return result, nil
}

func (imp *SparepartImporter) importRow(row []string, cols map[string]int, result *dto.ImportResult) error {
	cell := func(field string) string {
		idx, ok := cols[field]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	code := cell("code")
	name := cell("name")
	if code == "" || name == "" {
		return fmt.Errorf("código y nombre son obligatorios")
	}

	var minStock int64
	if v := cell("min_stock"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 0 {
			return fmt.Errorf("stock mínimo inválido: %q", v)
		}
		minStock = n
	}
	price := decimal.Zero
	if v := cell("price"); v != "" {
		p, err := decimal.NewFromString(strings.ReplaceAll(v, ",", "."))
		if err != nil || p.IsNegative() {
			return fmt.Errorf("precio inválido: %q", v)
		}
		price = p
	}

	existing, err := imp.repo.GetByCode(code)
	if err != nil {
		return err
	}
	now := time.Now()
	if existing != nil {
		existing.Name = name
		if v := cell("category"); v != "" {
			existing.Category = v
		}
		if v := cell("unit"); v != "" {
			existing.Unit = v
		}
		if cell("min_stock") != "" {
			existing.MinStock = minStock
		}
		if v := cell("location"); v != "" {
			existing.Location = v
		}
		if cell("price") != "" {
			existing.Price = price
		}
		existing.UpdatedAt = now
		if err := imp.repo.Update(existing); err != nil {
			return err
		}
		result.Updated++
		return nil
	}

	unit := cell("unit")
	if unit == "" {
		unit = "pza"
	}
	sp := &entity.Sparepart{
		ID:        uuid.New().String(),
		Code:      code,
		Name:      name,
		Category:  cell("category"),
		Unit:      unit,
		MinStock:  minStock,
		Location:  cell("location"),
		Price:     price,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := imp.repo.Create(sp); err != nil {
		return err
	}
	result.Created++
	return nil
}
