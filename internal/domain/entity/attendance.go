package entity

import "time"

// Attendance representa la asistencia diaria de un empleado.
// CheckOut es nil mientras la jornada siga abierta.
type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time // fecha (sin hora) de la jornada
	CheckIn    time.Time
	CheckOut   *time.Time
	Notes      string
	CreatedAt  time.Time
}
