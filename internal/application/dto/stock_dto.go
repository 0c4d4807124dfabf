package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateStockInRequest body para POST /api/stock-in.
type CreateStockInRequest struct {
	SparepartID    string           `json:"sparepart_id" validate:"required"`
	Quantity       int64            `json:"quantity" validate:"required,gt=0"`
	SupplierID     *string          `json:"supplier_id,omitempty"`
	InvoiceNumber  string           `json:"invoice_number,omitempty"`
	PurchasePrice  *decimal.Decimal `json:"purchase_price,omitempty"`
	WarrantyExpiry *time.Time       `json:"warranty_expiry,omitempty"`
	Notes          string           `json:"notes,omitempty"`
}

// StockInResponse salida de una entrada de stock.
type StockInResponse struct {
	ID            string           `json:"id"`
	SparepartID   string           `json:"sparepart_id"`
	SupplierID    *string          `json:"supplier_id,omitempty"`
	Quantity      int64            `json:"quantity"`
	InvoiceNumber string           `json:"invoice_number,omitempty"`
	PurchasePrice *decimal.Decimal `json:"purchase_price,omitempty"`
	IsAdjustment  bool             `json:"is_adjustment"`
	Notes         string           `json:"notes,omitempty"`
	Date          time.Time        `json:"date"`
	CreatedAt     time.Time        `json:"created_at"`
	WarrantyID    string           `json:"warranty_id,omitempty"`
}

// StockInListResponse lista paginada de entradas.
type StockInListResponse struct {
	Items []StockInResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// CreateStockOutRequest body para POST /api/stock-out.
type CreateStockOutRequest struct {
	SparepartID string `json:"sparepart_id" validate:"required"`
	EquipmentID string `json:"equipment_id" validate:"required"`
	EmployeeID  string `json:"employee_id" validate:"required"`
	Quantity    int64  `json:"quantity" validate:"required,gt=0"`
	Purpose     string `json:"purpose,omitempty"`
}

// RejectStockOutRequest body para PUT /api/stock-out/{id}/reject.
type RejectStockOutRequest struct {
	Reason string `json:"reason" validate:"required"`
}

// StockOutResponse salida de una solicitud de salida.
type StockOutResponse struct {
	ID           string     `json:"id"`
	SparepartID  string     `json:"sparepart_id"`
	EquipmentID  *string    `json:"equipment_id,omitempty"`
	EmployeeID   *string    `json:"employee_id,omitempty"`
	Quantity     int64      `json:"quantity"`
	Purpose      string     `json:"purpose,omitempty"`
	Status       string     `json:"status"`
	RejectReason string     `json:"reject_reason,omitempty"`
	IsAdjustment bool       `json:"is_adjustment"`
	ApprovedAt   *time.Time `json:"approved_at,omitempty"`
	ApprovedBy   string     `json:"approved_by,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// StockOutListResponse lista paginada de solicitudes de salida.
type StockOutListResponse struct {
	Items []StockOutResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
