package dto

// DashboardResponse resumen para el panel principal.
type DashboardResponse struct {
	TotalSpareparts     int64               `json:"total_spareparts"`
	TotalSuppliers      int64               `json:"total_suppliers"`
	TotalEquipment      int64               `json:"total_equipment"`
	TotalEmployees      int64               `json:"total_employees"`
	PendingStockOuts    int64               `json:"pending_stock_outs"`
	WarrantiesExpiring  int64               `json:"warranties_expiring_30d"`
	StockInsLast30Days  int64               `json:"stock_ins_last_30d"`
	StockOutsLast30Days int64               `json:"stock_outs_last_30d"`
	LowStock            []SparepartResponse `json:"low_stock"`
}
