package stock

import (
	"context"

	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de stock:
// crear el registro y ajustar CurrentStock comprometen juntos o no comprometen.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		sparepartRepo repository.SparepartRepository,
		stockInRepo repository.StockInRepository,
		stockOutRepo repository.StockOutRepository,
		warrantyRepo repository.WarrantyRepository,
	) error) error
}

// OpnameTxRunner ejecuta la reconciliación completa de un conteo físico en una
// sola transacción (sesión + ítems + ajustes sintetizados + sobrescritura de stock).
type OpnameTxRunner interface {
	RunOpname(ctx context.Context, fn func(
		sparepartRepo repository.SparepartRepository,
		stockInRepo repository.StockInRepository,
		stockOutRepo repository.StockOutRepository,
		opnameRepo repository.OpnameRepository,
	) error) error
}
