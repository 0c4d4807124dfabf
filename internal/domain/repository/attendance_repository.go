package repository

import (
	"time"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// AttendanceRepository define el puerto de persistencia para asistencia.
type AttendanceRepository interface {
	Create(a *entity.Attendance) error
	// GetByEmployeeAndDate devuelve el registro del empleado para la fecha dada
	// (nil si no existe).
	GetByEmployeeAndDate(employeeID string, date time.Time) (*entity.Attendance, error)
	SetCheckOut(id string, checkOut time.Time) error
	List(date *time.Time, employeeID string, limit, offset int) ([]*entity.Attendance, error)
}
