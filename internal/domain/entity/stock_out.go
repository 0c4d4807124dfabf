package entity

import "time"

// Estados del ciclo de vida de una salida de repuestos.
// pending es el estado inicial; approved y rejected son terminales.
const (
	StockOutStatusPending  = "pending"
	StockOutStatusApproved = "approved"
	StockOutStatusRejected = "rejected"
)

// StockOut representa una solicitud de salida de repuestos para un equipo.
// Nace en pending y un segundo actor la aprueba (descontando stock, con
// re-verificación de suficiencia) o la rechaza (con motivo obligatorio).
// Una solicitud pending no reserva stock.
type StockOut struct {
	ID           string
	SparepartID  string
	EquipmentID  *string // nil en ajustes de conteo
	EmployeeID   *string // nil en ajustes de conteo
	Quantity     int64   // siempre > 0
	Purpose      string
	Status       string // pending, approved, rejected
	RejectReason string
	IsAdjustment bool // true si fue sintetizada (ya aprobada) por un conteo físico
	ApprovedAt   *time.Time
	ApprovedBy   string // UserID del aprobador
	CreatedAt    time.Time
	CreatedBy    string // UserID
}

// IsPending indica si la solicitud todavía admite aprobar/rechazar/eliminar.
func (s *StockOut) IsPending() bool {
	return s.Status == StockOutStatusPending
}
