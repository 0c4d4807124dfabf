package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/usecase"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

const testUserID = "8d7a3c2e-0000-4000-8000-000000000001"

// fakeCashRepo guarda los movimientos en orden de inserción; el último lleva
// el saldo vigente, igual que la tabla real.
type fakeCashRepo struct {
	entries []*entity.CashEntry
}

func (r *fakeCashRepo) Create(e *entity.CashEntry) error {
	cp := *e
	r.entries = append(r.entries, &cp)
	return nil
}

func (r *fakeCashRepo) LastBalanceForUpdate() (decimal.Decimal, error) {
	return r.LastBalance()
}

func (r *fakeCashRepo) LastBalance() (decimal.Decimal, error) {
	if len(r.entries) == 0 {
		return decimal.Zero, nil
	}
	return r.entries[len(r.entries)-1].Balance, nil
}

func (r *fakeCashRepo) List(entryType string, limit, offset int) ([]*entity.CashEntry, error) {
	var list []*entity.CashEntry
	for _, e := range r.entries {
		if entryType == "" || e.Type == entryType {
			cp := *e
			list = append(list, &cp)
		}
	}
	return list, nil
}

type fakeCashTxRunner struct {
	repo *fakeCashRepo
}

func (f *fakeCashTxRunner) RunCash(ctx context.Context, fn func(cashRepo repository.CashRepository) error) error {
	return fn(f.repo)
}

func newCashUseCase() (*usecase.CashUseCase, *fakeCashRepo) {
	repo := &fakeCashRepo{}
	return usecase.NewCashUseCase(&fakeCashTxRunner{repo: repo}, repo), repo
}

// registra inserta un movimiento y falla el test si el caso de uso lo rechaza.
func registra(t *testing.T, uc *usecase.CashUseCase, tipo string, monto int64, desc string) *dto.CashEntryResponse {
	t.Helper()
	resp, err := uc.Create(context.Background(), testUserID, dto.CreateCashEntryRequest{
		Type:        tipo,
		Amount:      decimal.NewFromInt(monto),
		Description: desc,
	})
	require.NoError(t, err, "el movimiento debe registrarse sin error")
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Saldo corrido
// ──────────────────────────────────────────────────────────────────────────────

func TestCashCreate_SaldoCorrido(t *testing.T) {
	uc, _ := newCashUseCase()

	ingreso := registra(t, uc, entity.CashTypeIncome, 1000, "fondo inicial")
	assert.True(t, ingreso.Balance.Equal(decimal.NewFromInt(1000)),
		"el primer ingreso parte de saldo cero")

	egreso := registra(t, uc, entity.CashTypeExpense, 350, "compra de grasa para rodamientos")
	assert.True(t, egreso.Balance.Equal(decimal.NewFromInt(650)))

	otro := registra(t, uc, entity.CashTypeIncome, 50, "reintegro")
	assert.True(t, otro.Balance.Equal(decimal.NewFromInt(700)))

	saldo, err := uc.Balance()
	require.NoError(t, err)
	assert.True(t, saldo.Balance.Equal(decimal.NewFromInt(700)), "Balance devuelve el último saldo")
}

func TestCashCreate_EgresoMayorAlSaldo(t *testing.T) {
	uc, repo := newCashUseCase()
	registra(t, uc, entity.CashTypeIncome, 100, "fondo inicial")

	_, err := uc.Create(context.Background(), testUserID, dto.CreateCashEntryRequest{
		Type:        entity.CashTypeExpense,
		Amount:      decimal.NewFromInt(101),
		Description: "compra que no alcanza",
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
	assert.Len(t, repo.entries, 1, "el egreso rechazado no debe escribirse")
}

func TestCashCreate_EgresoConCajaVacia(t *testing.T) {
	uc, _ := newCashUseCase()

	_, err := uc.Create(context.Background(), testUserID, dto.CreateCashEntryRequest{
		Type:        entity.CashTypeExpense,
		Amount:      decimal.NewFromInt(1),
		Description: "sin fondo",
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
}

func TestCashCreate_Validaciones(t *testing.T) {
	uc, _ := newCashUseCase()
	ctx := context.Background()

	_, err := uc.Create(ctx, testUserID, dto.CreateCashEntryRequest{
		Type: "transfer", Amount: decimal.NewFromInt(10), Description: "x",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "tipo desconocido debe rechazarse")

	_, err = uc.Create(ctx, testUserID, dto.CreateCashEntryRequest{
		Type: entity.CashTypeIncome, Amount: decimal.Zero, Description: "x",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "monto cero debe rechazarse")

	_, err = uc.Create(ctx, testUserID, dto.CreateCashEntryRequest{
		Type: entity.CashTypeIncome, Amount: decimal.NewFromInt(-5), Description: "x",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "monto negativo debe rechazarse")

	_, err = uc.Create(ctx, testUserID, dto.CreateCashEntryRequest{
		Type: entity.CashTypeIncome, Amount: decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "descripción vacía debe rechazarse")
}

func TestCashList_FiltraPorTipo(t *testing.T) {
	uc, _ := newCashUseCase()
	registra(t, uc, entity.CashTypeIncome, 500, "fondo inicial")
	registra(t, uc, entity.CashTypeExpense, 100, "peaje")
	registra(t, uc, entity.CashTypeExpense, 50, "tornillería")

	egresos, err := uc.List(entity.CashTypeExpense, 20, 0)
	require.NoError(t, err)
	assert.Len(t, egresos.Items, 2)

	todos, err := uc.List("", 20, 0)
	require.NoError(t, err)
	assert.Len(t, todos.Items, 3)

	_, err = uc.List("transfer", 20, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
