package repository

import "github.com/tu-usuario/almacen-api/internal/domain/entity"

// EmployeeRepository define el puerto de persistencia para empleados.
type EmployeeRepository interface {
	Create(e *entity.Employee) error
	GetByID(id string) (*entity.Employee, error)
	GetByCode(code string) (*entity.Employee, error)
	Update(e *entity.Employee) error
	List(search string, limit, offset int) ([]*entity.Employee, error)
	Delete(id string) error
}
