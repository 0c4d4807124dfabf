package entity

import "time"

// Estados de una garantía.
const (
	WarrantyStatusActive  = "active"
	WarrantyStatusClaimed = "claimed"
)

// Warranty representa la ventana de garantía asociada 1:1 a una entrada de
// stock. Su ciclo de vida (active -> claimed) es independiente una vez creada,
// pero se elimina en cascada si se elimina la entrada que la originó.
type Warranty struct {
	ID          string
	StockInID   string
	SparepartID string
	ExpiryDate  time.Time
	Status      string // active, claimed
	ClaimedAt   *time.Time
	Notes       string
	CreatedAt   time.Time
}
