package entity

import "time"

// Employee representa un empleado (operador o mecánico) que solicita repuestos.
type Employee struct {
	ID        string
	Code      string // código interno único
	Name      string
	Position  string // mecánico, operador, supervisor
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
