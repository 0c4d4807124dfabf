package repository

import "github.com/tu-usuario/almacen-api/internal/domain/entity"

// SparepartRepository define el puerto de persistencia para Sparepart (DIP).
// GetForUpdate y SetCurrentStock se usan dentro de transacciones: el stock solo
// se modifica bajo bloqueo de fila.
type SparepartRepository interface {
	Create(sp *entity.Sparepart) error
	GetByID(id string) (*entity.Sparepart, error)
	GetByCode(code string) (*entity.Sparepart, error)
	Update(sp *entity.Sparepart) error
	// GetForUpdate bloquea la fila del repuesto (SELECT FOR UPDATE).
	GetForUpdate(id string) (*entity.Sparepart, error)
	// SetCurrentStock escribe el stock como valor absoluto (no delta).
	SetCurrentStock(id string, quantity int64) error
	List(search string, limit, offset int) ([]*entity.Sparepart, error)
	// ListLowStock lista repuestos con CurrentStock <= MinStock.
	ListLowStock(limit int) ([]*entity.Sparepart, error)
	Delete(id string) error
}
