package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sparepart representa un repuesto (SKU) del almacén de maquinaria pesada.
// CurrentStock nunca puede ser negativo: toda resta pasa por una verificación
// de suficiencia dentro de la transacción que la aplica.
type Sparepart struct {
	ID           string
	Code         string // código único del repuesto
	Name         string
	Category     string
	Unit         string // unidad de medida: pza, set, lt, kg
	MinStock     int64  // umbral de stock mínimo para alertas
	CurrentStock int64
	Location     string // ubicación física en bodega (estante/fila)
	Price        decimal.Decimal // precio de referencia de compra
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
