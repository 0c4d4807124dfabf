package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCashEntryRequest body para POST /api/cash.
type CreateCashEntryRequest struct {
	Type        string          `json:"type" validate:"required,oneof=income expense"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Description string          `json:"description" validate:"required"`
	Date        *time.Time      `json:"date,omitempty"` // por defecto: ahora
}

// CashEntryResponse salida de un movimiento de caja.
type CashEntryResponse struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Balance     decimal.Decimal `json:"balance"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	CreatedAt   time.Time       `json:"created_at"`
}

// CashListResponse lista paginada de movimientos de caja.
type CashListResponse struct {
	Items []CashEntryResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}

// CashBalanceResponse saldo actual de caja menor.
type CashBalanceResponse struct {
	Balance decimal.Decimal `json:"balance"`
}
