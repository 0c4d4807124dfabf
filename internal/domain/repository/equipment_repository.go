package repository

import "github.com/tu-usuario/almacen-api/internal/domain/entity"

// EquipmentRepository define el puerto de persistencia para equipos.
type EquipmentRepository interface {
	Create(e *entity.Equipment) error
	GetByID(id string) (*entity.Equipment, error)
	GetByCode(code string) (*entity.Equipment, error)
	Update(e *entity.Equipment) error
	List(search string, limit, offset int) ([]*entity.Equipment, error)
	Delete(id string) error
}
