package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSparepartRequest entrada para crear un repuesto.
type CreateSparepartRequest struct {
	Code     string          `json:"code" validate:"required,min=1,max=50"`
	Name     string          `json:"name" validate:"required,min=1,max=200"`
	Category string          `json:"category"`
	Unit     string          `json:"unit" validate:"required"`
	MinStock int64           `json:"min_stock" validate:"min=0"`
	Location string          `json:"location"`
	Price    decimal.Decimal `json:"price"`
}

// UpdateSparepartRequest entrada para actualizar un repuesto.
// CurrentStock no se puede modificar aquí: solo vía entradas/salidas/conteos.
type UpdateSparepartRequest struct {
	Name     *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Category *string          `json:"category"`
	Unit     *string          `json:"unit"`
	MinStock *int64           `json:"min_stock" validate:"omitempty,min=0"`
	Location *string          `json:"location"`
	Price    *decimal.Decimal `json:"price"`
}

// SparepartResponse salida de un repuesto.
type SparepartResponse struct {
	ID           string          `json:"id"`
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Unit         string          `json:"unit"`
	MinStock     int64           `json:"min_stock"`
	CurrentStock int64           `json:"current_stock"`
	Location     string          `json:"location"`
	Price        decimal.Decimal `json:"price"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// SparepartListResponse lista paginada de repuestos.
type SparepartListResponse struct {
	Items []SparepartResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
