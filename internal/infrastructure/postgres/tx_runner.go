package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/almacen-api/internal/application/stock"
	"github.com/tu-usuario/almacen-api/internal/application/usecase"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// Ensure TxRunner implementa los puertos transaccionales de la aplicación.
var _ stock.TxRunner = (*TxRunner)(nil)
var _ stock.OpnameTxRunner = (*TxRunner)(nil)
var _ usecase.CashTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	sparepartRepo repository.SparepartRepository,
	stockInRepo repository.StockInRepository,
	stockOutRepo repository.StockOutRepository,
	warrantyRepo repository.WarrantyRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	sparepartRepo := NewSparepartRepository(tx)
	stockInRepo := NewStockInRepository(tx)
	stockOutRepo := NewStockOutRepository(tx)
	warrantyRepo := NewWarrantyRepository(tx)

	if err := fn(sparepartRepo, stockInRepo, stockOutRepo, warrantyRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunOpname inicia una transacción con los repos del conteo físico
// (sesión + ítems + ajustes sintetizados + sobrescritura de stock).
func (r *TxRunner) RunOpname(ctx context.Context, fn func(
	sparepartRepo repository.SparepartRepository,
	stockInRepo repository.StockInRepository,
	stockOutRepo repository.StockOutRepository,
	opnameRepo repository.OpnameRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	sparepartRepo := NewSparepartRepository(tx)
	stockInRepo := NewStockInRepository(tx)
	stockOutRepo := NewStockOutRepository(tx)
	opnameRepo := NewOpnameRepository(tx)

	if err := fn(sparepartRepo, stockInRepo, stockOutRepo, opnameRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunCash inicia una transacción con el repo de caja (saldo corrido serializado).
func (r *TxRunner) RunCash(ctx context.Context, fn func(cashRepo repository.CashRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewCashRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
