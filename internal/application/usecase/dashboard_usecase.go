package usecase

import (
	"time"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// DashboardUseCase arma el resumen del panel principal a partir de consultas
// agregadas (solo lectura).
type DashboardUseCase struct {
	dashboardRepo repository.DashboardRepository
	sparepartRepo repository.SparepartRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(dashboardRepo repository.DashboardRepository, sparepartRepo repository.SparepartRepository) *DashboardUseCase {
	return &DashboardUseCase{dashboardRepo: dashboardRepo, sparepartRepo: sparepartRepo}
}

// Summary devuelve totales, movimientos recientes, solicitudes pendientes,
// garantías por vencer (30 días) y repuestos bajo el umbral mínimo.
func (uc *DashboardUseCase) Summary() (*dto.DashboardResponse, error) {
	counts, err := uc.dashboardRepo.Counts()
	if err != nil {
		return nil, err
	}
	pending, err := uc.dashboardRepo.CountPendingStockOuts()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	expiring, err := uc.dashboardRepo.CountWarrantiesExpiring(now.AddDate(0, 0, 30))
	if err != nil {
		return nil, err
	}
	ins, outs, err := uc.dashboardRepo.CountMovementsSince(now.AddDate(0, 0, -30))
	if err != nil {
		return nil, err
	}
	lowStock, err := uc.sparepartRepo.ListLowStock(10)
	if err != nil {
		return nil, err
	}

	low := make([]dto.SparepartResponse, 0, len(lowStock))
	for _, sp := range lowStock {
		low = append(low, *toSparepartResponse(sp))
	}
	return &dto.DashboardResponse{
		TotalSpareparts:     counts.Spareparts,
		TotalSuppliers:      counts.Suppliers,
		TotalEquipment:      counts.Equipment,
		TotalEmployees:      counts.Employees,
		PendingStockOuts:    pending,
		WarrantiesExpiring:  expiring,
		StockInsLast30Days:  ins,
		StockOutsLast30Days: outs,
		LowStock:            low,
	}, nil
}
