package repository

import "time"

// DashboardCounts agrupa los totales de maestros para el panel.
type DashboardCounts struct {
	Spareparts int64
	Suppliers  int64
	Equipment  int64
	Employees  int64
}

// DashboardRepository define el puerto de consultas agregadas para el panel.
type DashboardRepository interface {
	Counts() (*DashboardCounts, error)
	CountPendingStockOuts() (int64, error)
	CountWarrantiesExpiring(before time.Time) (int64, error)
	// CountMovementsSince devuelve entradas y salidas aprobadas desde la fecha.
	CountMovementsSince(since time.Time) (stockIns, stockOuts int64, err error)
}
