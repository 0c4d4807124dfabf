package entity

import "time"

// OpnameSession representa una toma física de inventario (stock opname):
// un lote de conteos por repuesto reconciliado en una sola transacción.
type OpnameSession struct {
	ID        string
	Notes     string
	CreatedAt time.Time
	CreatedBy string // UserID
}

// OpnameItem captura, para un repuesto, el stock registrado y el contado en el
// momento del conteo, junto con la diferencia con signo (contado - registrado).
// Solo se persisten ítems con diferencia distinta de cero.
type OpnameItem struct {
	ID            string
	SessionID     string
	SparepartID   string
	SystemStock   int64 // stock registrado al momento del conteo
	PhysicalStock int64 // stock contado físicamente
	Difference    int64 // PhysicalStock - SystemStock
	Notes         string
}
