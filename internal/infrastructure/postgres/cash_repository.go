package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.CashRepository = (*CashRepo)(nil)

// CashRepo implementación del puerto CashRepository sobre PostgreSQL (usable con pool o tx).
type CashRepo struct {
	q Querier
}

// NewCashRepository construye el adaptador de persistencia para caja menor. Pasar pool o tx (Querier).
func NewCashRepository(q Querier) *CashRepo {
	return &CashRepo{q: q}
}

const cashColumns = `id, type, amount, balance, description, date, created_at, created_by`

// Create persiste un movimiento de caja con su saldo resultante.
func (r *CashRepo) Create(e *entity.CashEntry) error {
	query := `
		INSERT INTO cash_entries (` + cashColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.Type, e.Amount, e.Balance, e.Description, e.Date, e.CreatedAt, e.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert cash entry: %w", err)
	}
	return nil
}

// LastBalanceForUpdate devuelve el saldo del último movimiento bloqueando su
// fila, para serializar el cálculo del saldo corrido dentro de la transacción.
// Devuelve cero si la caja no tiene movimientos.
func (r *CashRepo) LastBalanceForUpdate() (decimal.Decimal, error) {
	return r.lastBalance(`SELECT balance FROM cash_entries ORDER BY created_at DESC, id DESC LIMIT 1 FOR UPDATE`)
}

// LastBalance devuelve el saldo actual de caja sin bloquear (solo lectura).
func (r *CashRepo) LastBalance() (decimal.Decimal, error) {
	return r.lastBalance(`SELECT balance FROM cash_entries ORDER BY created_at DESC, id DESC LIMIT 1`)
}

func (r *CashRepo) lastBalance(query string) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := r.q.QueryRow(context.Background(), query).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, nil
		}
		return decimal.Zero, fmt.Errorf("last cash balance: %w", err)
	}
	return balance, nil
}

// List lista movimientos con filtro opcional por tipo, más recientes primero.
func (r *CashRepo) List(entryType string, limit, offset int) ([]*entity.CashEntry, error) {
	query := `SELECT ` + cashColumns + ` FROM cash_entries`
	args := []any{}
	if entryType != "" {
		query += ` WHERE type = $1`
		args = append(args, entryType)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list cash entries: %w", err)
	}
	defer rows.Close()

	var list []*entity.CashEntry
	for rows.Next() {
		var e entity.CashEntry
		if err := rows.Scan(&e.ID, &e.Type, &e.Amount, &e.Balance, &e.Description, &e.Date, &e.CreatedAt, &e.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan cash entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
