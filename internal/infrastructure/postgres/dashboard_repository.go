package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas agregadas para el panel, sobre PostgreSQL.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador de consultas del panel. Pasar pool o tx (Querier).
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// Counts devuelve los totales de maestros en una sola consulta.
func (r *DashboardRepo) Counts() (*repository.DashboardCounts, error) {
	var c repository.DashboardCounts
	err := r.q.QueryRow(context.Background(), `
		SELECT
			(SELECT count(*) FROM spareparts),
			(SELECT count(*) FROM suppliers),
			(SELECT count(*) FROM equipment),
			(SELECT count(*) FROM employees)`,
	).Scan(&c.Spareparts, &c.Suppliers, &c.Equipment, &c.Employees)
	if err != nil {
		return nil, fmt.Errorf("dashboard counts: %w", err)
	}
	return &c, nil
}

// CountPendingStockOuts cuenta solicitudes de salida pendientes de decisión.
func (r *DashboardRepo) CountPendingStockOuts() (int64, error) {
	var count int64
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM stock_outs WHERE status = $1`, entity.StockOutStatusPending,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count pending stock_outs: %w", err)
	}
	return count, nil
}

// CountWarrantiesExpiring cuenta garantías activas que vencen antes de la fecha dada.
func (r *DashboardRepo) CountWarrantiesExpiring(before time.Time) (int64, error) {
	var count int64
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM warranties WHERE status = $1 AND expiry_date <= $2`,
		entity.WarrantyStatusActive, before,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count expiring warranties: %w", err)
	}
	return count, nil
}

// CountMovementsSince devuelve entradas y salidas aprobadas desde la fecha dada.
func (r *DashboardRepo) CountMovementsSince(since time.Time) (stockIns, stockOuts int64, err error) {
	err = r.q.QueryRow(context.Background(), `
		SELECT
			(SELECT count(*) FROM stock_ins WHERE created_at >= $1),
			(SELECT count(*) FROM stock_outs WHERE status = $2 AND approved_at >= $1)`,
		since, entity.StockOutStatusApproved,
	).Scan(&stockIns, &stockOuts)
	if err != nil {
		return 0, 0, fmt.Errorf("count movements: %w", err)
	}
	return stockIns, stockOuts, nil
}
