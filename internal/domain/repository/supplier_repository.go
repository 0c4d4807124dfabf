package repository

import "github.com/tu-usuario/almacen-api/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para proveedores.
type SupplierRepository interface {
	Create(s *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	Update(s *entity.Supplier) error
	List(search string, limit, offset int) ([]*entity.Supplier, error)
	Delete(id string) error
}
