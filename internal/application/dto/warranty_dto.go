package dto

import "time"

// WarrantyResponse salida de una garantía.
type WarrantyResponse struct {
	ID          string     `json:"id"`
	StockInID   string     `json:"stock_in_id"`
	SparepartID string     `json:"sparepart_id"`
	ExpiryDate  time.Time  `json:"expiry_date"`
	Status      string     `json:"status"`
	ClaimedAt   *time.Time `json:"claimed_at,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// WarrantyListResponse lista paginada de garantías.
type WarrantyListResponse struct {
	Items []WarrantyResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
