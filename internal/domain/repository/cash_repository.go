package repository

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// CashRepository define el puerto de persistencia para caja menor.
// LastBalanceForUpdate bloquea el último movimiento para serializar el cálculo
// del saldo corrido dentro de la transacción.
type CashRepository interface {
	Create(e *entity.CashEntry) error
	LastBalanceForUpdate() (decimal.Decimal, error)
	LastBalance() (decimal.Decimal, error)
	List(entryType string, limit, offset int) ([]*entity.CashEntry, error)
}
