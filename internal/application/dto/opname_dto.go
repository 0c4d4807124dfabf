package dto

// OpnameItemRequest un conteo por repuesto dentro del lote.
type OpnameItemRequest struct {
	SparepartID   string `json:"sparepart_id" validate:"required"`
	SystemStock   int64  `json:"system_stock" validate:"min=0"`
	PhysicalStock int64  `json:"physical_stock" validate:"min=0"`
	Notes         string `json:"notes,omitempty"`
}

// CreateOpnameRequest body para POST /api/opname.
type CreateOpnameRequest struct {
	Notes string              `json:"notes,omitempty"`
	Items []OpnameItemRequest `json:"items" validate:"required,min=1"`
}

// OpnameSessionResponse cabecera de una toma física.
type OpnameSessionResponse struct {
	ID        string `json:"id"`
	Notes     string `json:"notes,omitempty"`
	CreatedAt string `json:"created_at"`
	CreatedBy string `json:"created_by"`
}

// OpnameSessionListResponse lista paginada de tomas físicas.
type OpnameSessionListResponse struct {
	Items []OpnameSessionResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}

// OpnameItemResponse un ítem con diferencia dentro de una toma física.
type OpnameItemResponse struct {
	ID            string `json:"id"`
	SessionID     string `json:"session_id"`
	SparepartID   string `json:"sparepart_id"`
	SystemStock   int64  `json:"system_stock"`
	PhysicalStock int64  `json:"physical_stock"`
	Difference    int64  `json:"difference"`
	Notes         string `json:"notes,omitempty"`
}

// OpnameResultResponse resumen de la reconciliación.
type OpnameResultResponse struct {
	SessionID       string `json:"session_id"`
	StockInCreated  int    `json:"stock_in_created"`
	StockOutCreated int    `json:"stock_out_created"`
	Skipped         int    `json:"skipped"`
}
