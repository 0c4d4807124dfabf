package excel_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/infrastructure/excel"
	"github.com/xuri/excelize/v2"
)

// fakeSparepartRepo cubre solo lo que el importador usa: GetByCode, Create y Update.
type fakeSparepartRepo struct {
	byCode map[string]*entity.Sparepart
}

func newFakeSparepartRepo() *fakeSparepartRepo {
	return &fakeSparepartRepo{byCode: make(map[string]*entity.Sparepart)}
}

func (r *fakeSparepartRepo) Create(sp *entity.Sparepart) error {
	cp := *sp
	r.byCode[sp.Code] = &cp
	return nil
}

func (r *fakeSparepartRepo) GetByCode(code string) (*entity.Sparepart, error) {
	sp, ok := r.byCode[code]
	if !ok {
		return nil, nil
	}
	cp := *sp
	return &cp, nil
}

func (r *fakeSparepartRepo) Update(sp *entity.Sparepart) error {
	cp := *sp
	r.byCode[sp.Code] = &cp
	return nil
}

func (r *fakeSparepartRepo) GetByID(id string) (*entity.Sparepart, error)      { return nil, nil }
func (r *fakeSparepartRepo) GetForUpdate(id string) (*entity.Sparepart, error) { return nil, nil }
func (r *fakeSparepartRepo) SetCurrentStock(id string, quantity int64) error   { return nil }
func (r *fakeSparepartRepo) List(search string, limit, offset int) ([]*entity.Sparepart, error) {
	return nil, nil
}
func (r *fakeSparepartRepo) ListLowStock(limit int) ([]*entity.Sparepart, error) { return nil, nil }
func (r *fakeSparepartRepo) Delete(id string) error                              { return nil }

// buildXLSX arma un archivo en memoria con la fila de encabezado y las filas dadas.
func buildXLSX(t *testing.T, header []string, rows ...[]string) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &header))
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

// ──────────────────────────────────────────────────────────────────────────────
// Importación
// ──────────────────────────────────────────────────────────────────────────────

func TestImport_CreaConEncabezadosAcentuados(t *testing.T) {
	repo := newFakeSparepartRepo()
	imp := excel.NewSparepartImporter(repo)

	buf := buildXLSX(t,
		[]string{"Código", "Nombre", "Categoría", "Unidad", "Stock Mínimo", "Ubicación", "Precio"},
		[]string{"FLT-001", "Filtro de aceite", "filtros", "pza", "5", "A-12", "149.90"},
		[]string{"ROD-002", "Rodamiento 6205", "rodamientos", "", "", "", ""},
	)

	result, err := imp.Import(buf)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 0, result.Updated)
	assert.Equal(t, 0, result.Failed)

	sp, err := repo.GetByCode("FLT-001")
	require.NoError(t, err)
	require.NotNil(t, sp)
	assert.Equal(t, "Filtro de aceite", sp.Name)
	assert.Equal(t, int64(5), sp.MinStock)
	assert.Equal(t, "A-12", sp.Location)
	assert.True(t, sp.Price.Equal(decimal.NewFromFloat(149.90)))

	sp2, _ := repo.GetByCode("ROD-002")
	require.NotNil(t, sp2)
	assert.Equal(t, "pza", sp2.Unit, "la unidad vacía cae al valor por defecto")
}

func TestImport_ActualizaPorCodigoSinTocarStock(t *testing.T) {
	repo := newFakeSparepartRepo()
	now := time.Now()
	repo.byCode["FLT-001"] = &entity.Sparepart{
		ID: "sp-1", Code: "FLT-001", Name: "Filtro viejo", Unit: "pza",
		CurrentStock: 8, Price: decimal.NewFromInt(100),
		CreatedAt: now, UpdatedAt: now,
	}
	imp := excel.NewSparepartImporter(repo)

	buf := buildXLSX(t,
		[]string{"codigo", "nombre", "precio"},
		[]string{"FLT-001", "Filtro de aceite premium", "180"},
	)

	result, err := imp.Import(buf)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Created)
	assert.Equal(t, 1, result.Updated)

	sp, _ := repo.GetByCode("FLT-001")
	assert.Equal(t, "Filtro de aceite premium", sp.Name)
	assert.True(t, sp.Price.Equal(decimal.NewFromInt(180)))
	assert.Equal(t, int64(8), sp.CurrentStock, "la importación nunca modifica el stock")
}

func TestImport_FilasInvalidasNoAbortanElResto(t *testing.T) {
	repo := newFakeSparepartRepo()
	imp := excel.NewSparepartImporter(repo)

	buf := buildXLSX(t,
		[]string{"codigo", "nombre", "stock minimo", "precio"},
		[]string{"FLT-001", "Filtro de aceite", "5", "100"},
		[]string{"", "Sin código", "", ""},
		[]string{"ROD-002", "Rodamiento", "no-es-numero", ""},
		[]string{"MNG-003", "Manguera hidráulica", "2", "-50"},
		[]string{"COR-004", "Correa", "", "75.5"},
	)

	result, err := imp.Import(buf)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 3, result.Failed)
	require.Len(t, result.Errors, 3)

	// Los números de fila son 1-based contando el encabezado
	assert.Equal(t, 3, result.Errors[0].Row)
	assert.Equal(t, 4, result.Errors[1].Row)
	assert.Equal(t, 5, result.Errors[2].Row)
}

func TestImport_EncabezadoObligatorioAusente(t *testing.T) {
	repo := newFakeSparepartRepo()
	imp := excel.NewSparepartImporter(repo)

	buf := buildXLSX(t,
		[]string{"nombre", "precio"},
		[]string{"Filtro", "100"},
	)

	_, err := imp.Import(buf)
	assert.Error(t, err, "sin columna de código la importación debe fallar completa")
}

func TestImport_ArchivoNoExcel(t *testing.T) {
	repo := newFakeSparepartRepo()
	imp := excel.NewSparepartImporter(repo)

	_, err := imp.Import(bytes.NewReader([]byte("esto no es un xlsx")))
	assert.Error(t, err)
}
