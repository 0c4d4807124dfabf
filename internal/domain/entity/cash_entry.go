package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de caja menor.
const (
	CashTypeIncome  = "income"
	CashTypeExpense = "expense"
)

// CashEntry representa un movimiento de caja menor. Balance es el saldo
// resultante después de aplicar el movimiento, calculado dentro de la misma
// transacción que lo persiste.
type CashEntry struct {
	ID          string
	Type        string // income, expense
	Amount      decimal.Decimal
	Balance     decimal.Decimal // saldo después del movimiento
	Description string
	Date        time.Time
	CreatedAt   time.Time
	CreatedBy   string // UserID
}
