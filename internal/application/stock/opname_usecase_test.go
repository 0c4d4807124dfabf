package stock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/stock"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

func newOpnameUseCase(f *stockFixture) *stock.OpnameUseCase {
	return stock.NewOpnameUseCase(f.runner, f.spareparts, f.opnames)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reconciliación
// ──────────────────────────────────────────────────────────────────────────────

func TestOpnameReconcile_SobranteCreaEntradaDeAjuste(t *testing.T) {
	f := newStockFixture()
	f.seedSparepart("sp-1", "FLT-001", 10)
	uc := newOpnameUseCase(f)

	result, err := uc.Reconcile(context.Background(), testUserID, dto.CreateOpnameRequest{
		Notes: "conteo de fin de mes",
		Items: []dto.OpnameItemRequest{
			{SparepartID: "sp-1", SystemStock: 10, PhysicalStock: 14},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.StockInCreated)
	assert.Equal(t, 0, result.StockOutCreated)
	assert.Equal(t, 0, result.Skipped)

	sp, _ := f.spareparts.GetByID("sp-1")
	assert.Equal(t, int64(14), sp.CurrentStock, "el stock se sobrescribe al valor contado")

	entradas, _ := f.stockIns.ListBySparepart("sp-1", 10, 0)
	require.Len(t, entradas, 1)
	assert.Equal(t, int64(4), entradas[0].Quantity)
	assert.True(t, entradas[0].IsAdjustment, "la entrada sintetizada debe marcarse como ajuste")
	assert.Equal(t, "ajuste por conteo físico "+result.SessionID, entradas[0].Notes)
}

func TestOpnameReconcile_FaltanteCreaSalidaAprobada(t *testing.T) {
	f := newStockFixture()
	f.seedSparepart("sp-1", "FLT-001", 10)
	uc := newOpnameUseCase(f)

	result, err := uc.Reconcile(context.Background(), testUserID, dto.CreateOpnameRequest{
		Items: []dto.OpnameItemRequest{
			{SparepartID: "sp-1", SystemStock: 10, PhysicalStock: 7},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.StockOutCreated)
	assert.Equal(t, 0, result.StockInCreated)

	sp, _ := f.spareparts.GetByID("sp-1")
	assert.Equal(t, int64(7), sp.CurrentStock)

	salidas, _ := f.stockOuts.List("", 10, 0)
	require.Len(t, salidas, 1)
	assert.Equal(t, int64(3), salidas[0].Quantity)
	assert.Equal(t, entity.StockOutStatusApproved, salidas[0].Status,
		"la salida de ajuste nace aprobada, sin pasar por pending")
	assert.True(t, salidas[0].IsAdjustment)
	assert.NotNil(t, salidas[0].ApprovedAt)
}

func TestOpnameReconcile_SobrescribeAunConDeriva(t *testing.T) {
	f := newStockFixture()
	// El conteo se hizo cuando el sistema decía 10, pero una escritura
	// posterior dejó el stock en 12 antes de reconciliar.
	f.seedSparepart("sp-1", "FLT-001", 12)
	uc := newOpnameUseCase(f)

	_, err := uc.Reconcile(context.Background(), testUserID, dto.CreateOpnameRequest{
		Items: []dto.OpnameItemRequest{
			{SparepartID: "sp-1", SystemStock: 10, PhysicalStock: 14},
		},
	})
	require.NoError(t, err)

	sp, _ := f.spareparts.GetByID("sp-1")
	assert.Equal(t, int64(14), sp.CurrentStock,
		"la escritura es absoluta: 14, no 12+4")
}

func TestOpnameReconcile_ItemsSinDiferenciaSeOmiten(t *testing.T) {
	f := newStockFixture()
	f.seedSparepart("sp-1", "FLT-001", 10)
	f.seedSparepart("sp-2", "ROD-002", 6)
	f.seedSparepart("sp-3", "MNG-003", 4)
	uc := newOpnameUseCase(f)

	result, err := uc.Reconcile(context.Background(), testUserID, dto.CreateOpnameRequest{
		Items: []dto.OpnameItemRequest{
			{SparepartID: "sp-1", SystemStock: 10, PhysicalStock: 12},
			{SparepartID: "sp-2", SystemStock: 6, PhysicalStock: 6},
			{SparepartID: "sp-3", SystemStock: 4, PhysicalStock: 1},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.StockInCreated)
	assert.Equal(t, 1, result.StockOutCreated)
	assert.Equal(t, 1, result.Skipped)

	items, err := uc.SessionItems(result.SessionID)
	require.NoError(t, err)
	assert.Len(t, items, 2, "solo los ítems con diferencia se persisten")

	sp2, _ := f.spareparts.GetByID("sp-2")
	assert.Equal(t, int64(6), sp2.CurrentStock, "el ítem omitido no toca el stock")
}

func TestOpnameReconcile_SinDiferenciasNoCreaSesion(t *testing.T) {
	f := newStockFixture()
	f.seedSparepart("sp-1", "FLT-001", 10)
	uc := newOpnameUseCase(f)

	_, err := uc.Reconcile(context.Background(), testUserID, dto.CreateOpnameRequest{
		Items: []dto.OpnameItemRequest{
			{SparepartID: "sp-1", SystemStock: 10, PhysicalStock: 10},
		},
	})
	assert.ErrorIs(t, err, domain.ErrNothingToReconcile)

	sesiones, _ := uc.ListSessions(10, 0)
	assert.Empty(t, sesiones, "un lote sin diferencias no debe dejar sesión vacía")
}

func TestOpnameReconcile_Validaciones(t *testing.T) {
	f := newStockFixture()
	f.seedSparepart("sp-1", "FLT-001", 10)
	uc := newOpnameUseCase(f)
	ctx := context.Background()

	_, err := uc.Reconcile(ctx, testUserID, dto.CreateOpnameRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "lote vacío debe rechazarse")

	_, err = uc.Reconcile(ctx, testUserID, dto.CreateOpnameRequest{
		Items: []dto.OpnameItemRequest{
			{SparepartID: "sp-1", SystemStock: 10, PhysicalStock: -1},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "conteo negativo debe rechazarse")

	_, err = uc.Reconcile(ctx, testUserID, dto.CreateOpnameRequest{
		Items: []dto.OpnameItemRequest{
			{SparepartID: "sp-1", SystemStock: 10, PhysicalStock: 12},
			{SparepartID: "sp-1", SystemStock: 10, PhysicalStock: 13},
		},
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate, "repuesto repetido en el lote debe rechazarse")

	_, err = uc.Reconcile(ctx, testUserID, dto.CreateOpnameRequest{
		Items: []dto.OpnameItemRequest{
			{SparepartID: "no-existe", SystemStock: 0, PhysicalStock: 5},
		},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound, "repuesto inexistente debe rechazarse")

	sesiones, _ := uc.ListSessions(10, 0)
	assert.Empty(t, sesiones, "ninguna validación fallida debe dejar sesión")
}

func TestOpnameSessionItems_SesionInexistente(t *testing.T) {
	f := newStockFixture()
	uc := newOpnameUseCase(f)

	_, err := uc.SessionItems("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
