package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockIn representa una entrada de repuestos al almacén (recepción de compra
// o ajuste positivo de conteo físico). Es un evento inmutable: una vez creado
// solo puede eliminarse, lo que revierte simétricamente el stock del repuesto.
type StockIn struct {
	ID            string
	SparepartID   string
	SupplierID    *string // opcional; nil en ajustes de conteo
	Quantity      int64   // siempre > 0
	InvoiceNumber string
	PurchasePrice *decimal.Decimal // precio unitario de compra, opcional
	IsAdjustment  bool             // true si fue sintetizada por un conteo físico
	Notes         string
	Date          time.Time
	CreatedAt     time.Time
	CreatedBy     string // UserID
}
