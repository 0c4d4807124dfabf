package entity

import "time"

// Estados operativos de un equipo.
const (
	EquipmentStatusActive      = "active"
	EquipmentStatusMaintenance = "maintenance"
	EquipmentStatusRetired     = "retired"
)

// Equipment representa una unidad de maquinaria pesada que consume repuestos
// (excavadora, cargador, volqueta, etc.).
type Equipment struct {
	ID        string
	Code      string // código único de la unidad
	Name      string
	Type      string // excavadora, bulldozer, grúa...
	Brand     string
	Status    string // active, maintenance, retired
	CreatedAt time.Time
	UpdatedAt time.Time
}
