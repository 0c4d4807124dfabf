package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-api/internal/application/audit"
	"github.com/tu-usuario/almacen-api/internal/application/auth"
	"github.com/tu-usuario/almacen-api/internal/application/stock"
	"github.com/tu-usuario/almacen-api/internal/application/usecase"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/infrastructure/excel"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	SparepartUC  *usecase.SparepartUseCase
	SupplierUC   *usecase.SupplierUseCase
	EquipmentUC  *usecase.EquipmentUseCase
	EmployeeUC   *usecase.EmployeeUseCase
	StockInUC    *stock.StockInUseCase
	StockOutUC   *stock.StockOutUseCase
	OpnameUC     *stock.OpnameUseCase
	WarrantyUC   *usecase.WarrantyUseCase
	CashUC       *usecase.CashUseCase
	AttendanceUC *usecase.AttendanceUseCase
	DashboardUC  *usecase.DashboardUseCase
	Importer     *excel.SparepartImporter
	VoucherPDF   stock.VoucherPDFGenerator
	Auditor      *audit.Service
	JWTSecret    string
}

// Router registra las rutas de la API. Las decisiones sobre salidas (aprobar,
// rechazar), las eliminaciones de movimientos y la bitácora son solo admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Auditor)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)

	// Spareparts (protegido)
	spareparts := protected.Group("/spareparts")
	sparepartHandler := NewSparepartHandler(deps.SparepartUC, deps.Importer, deps.Auditor)
	spareparts.Post("/", sparepartHandler.Create)
	spareparts.Get("/", sparepartHandler.List)
	spareparts.Post("/import", sparepartHandler.Import)
	spareparts.Get("/:id", sparepartHandler.GetByID)
	spareparts.Put("/:id", sparepartHandler.Update)
	spareparts.Delete("/:id", adminOnly, sparepartHandler.Delete)

	// Reportes (protegido)
	reports := protected.Group("/reports")
	reports.Get("/stock.xlsx", sparepartHandler.ExportStock)

	// Suppliers (protegido)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", adminOnly, supplierHandler.Delete)

	// Equipment (protegido)
	equipment := protected.Group("/equipment")
	equipmentHandler := NewEquipmentHandler(deps.EquipmentUC)
	equipment.Post("/", equipmentHandler.Create)
	equipment.Get("/", equipmentHandler.List)
	equipment.Get("/:id", equipmentHandler.GetByID)
	equipment.Put("/:id", equipmentHandler.Update)
	equipment.Delete("/:id", adminOnly, equipmentHandler.Delete)

	// Employees (protegido)
	employees := protected.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/", employeeHandler.List)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", adminOnly, employeeHandler.Delete)

	// Stock in (protegido)
	stockIn := protected.Group("/stock-in")
	stockInHandler := NewStockInHandler(deps.StockInUC, deps.Auditor)
	stockIn.Post("/", stockInHandler.Create)
	stockIn.Get("/", stockInHandler.List)
	stockIn.Get("/:id", stockInHandler.GetByID)
	stockIn.Delete("/:id", adminOnly, stockInHandler.Delete)

	// Stock out (protegido; decisiones solo admin)
	stockOut := protected.Group("/stock-out")
	stockOutHandler := NewStockOutHandler(deps.StockOutUC, deps.VoucherPDF, deps.Auditor)
	stockOut.Post("/", stockOutHandler.Create)
	stockOut.Get("/", stockOutHandler.List)
	stockOut.Get("/:id", stockOutHandler.GetByID)
	stockOut.Get("/:id/voucher.pdf", stockOutHandler.Voucher)
	stockOut.Put("/:id/approve", adminOnly, stockOutHandler.Approve)
	stockOut.Put("/:id/reject", adminOnly, stockOutHandler.Reject)
	stockOut.Delete("/:id", stockOutHandler.Delete)

	// Opname (protegido; reconciliar solo admin)
	opname := protected.Group("/opname")
	opnameHandler := NewOpnameHandler(deps.OpnameUC, deps.Auditor)
	opname.Post("/", adminOnly, opnameHandler.Create)
	opname.Get("/", opnameHandler.ListSessions)
	opname.Get("/:id/items", opnameHandler.Items)

	// Warranties (protegido)
	warranties := protected.Group("/warranties")
	warrantyHandler := NewWarrantyHandler(deps.WarrantyUC, deps.Auditor)
	warranties.Get("/", warrantyHandler.List)
	warranties.Put("/:id/claim", warrantyHandler.Claim)

	// Cash (protegido)
	cash := protected.Group("/cash")
	cashHandler := NewCashHandler(deps.CashUC, deps.Auditor)
	cash.Post("/", cashHandler.Create)
	cash.Get("/", cashHandler.List)
	cash.Get("/balance", cashHandler.Balance)

	// Attendance (protegido)
	attendance := protected.Group("/attendance")
	attendanceHandler := NewAttendanceHandler(deps.AttendanceUC)
	attendance.Post("/check-in", attendanceHandler.CheckIn)
	attendance.Put("/check-out", attendanceHandler.CheckOut)
	attendance.Get("/", attendanceHandler.List)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Summary)

	// Audit (protegido, solo admin)
	auditHandler := NewAuditHandler(deps.Auditor)
	protected.Get("/audit", adminOnly, auditHandler.List)
}
