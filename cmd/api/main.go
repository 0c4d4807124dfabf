package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/almacen-api/internal/application/audit"
	"github.com/tu-usuario/almacen-api/internal/application/auth"
	"github.com/tu-usuario/almacen-api/internal/application/stock"
	"github.com/tu-usuario/almacen-api/internal/application/usecase"
	"github.com/tu-usuario/almacen-api/internal/infrastructure/excel"
	infrapdf "github.com/tu-usuario/almacen-api/internal/infrastructure/pdf"
	"github.com/tu-usuario/almacen-api/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/almacen-api/internal/interfaces/http"
	"github.com/tu-usuario/almacen-api/pkg/config"
	"github.com/tu-usuario/almacen-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Repositorios sobre el pool (fuera de transacción)
	userRepo := postgres.NewUserRepository(pool)
	sparepartRepo := postgres.NewSparepartRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	equipmentRepo := postgres.NewEquipmentRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	stockInRepo := postgres.NewStockInRepository(pool)
	stockOutRepo := postgres.NewStockOutRepository(pool)
	warrantyRepo := postgres.NewWarrantyRepository(pool)
	opnameRepo := postgres.NewOpnameRepository(pool)
	cashRepo := postgres.NewCashRepository(pool)
	attendanceRepo := postgres.NewAttendanceRepository(pool)
	auditRepo := postgres.NewAuditRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Casos de uso
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	sparepartUC := usecase.NewSparepartUseCase(sparepartRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	equipmentUC := usecase.NewEquipmentUseCase(equipmentRepo)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo)
	stockInUC := stock.NewStockInUseCase(txRunner, sparepartRepo, supplierRepo, stockInRepo, warrantyRepo)
	stockOutUC := stock.NewStockOutUseCase(txRunner, sparepartRepo, equipmentRepo, employeeRepo, stockOutRepo)
	opnameUC := stock.NewOpnameUseCase(txRunner, sparepartRepo, opnameRepo)
	warrantyUC := usecase.NewWarrantyUseCase(warrantyRepo)
	cashUC := usecase.NewCashUseCase(txRunner, cashRepo)
	attendanceUC := usecase.NewAttendanceUseCase(attendanceRepo, employeeRepo)
	dashboardUC := usecase.NewDashboardUseCase(dashboardRepo, sparepartRepo)
	auditor := audit.NewService(auditRepo, log)

	importer := excel.NewSparepartImporter(sparepartRepo)
	voucherPDF := infrapdf.NewMarotoVoucherGenerator()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    cfg.HTTP.MaxUploadMB * 1024 * 1024,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Almacén de Repuestos API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		SparepartUC:  sparepartUC,
		SupplierUC:   supplierUC,
		EquipmentUC:  equipmentUC,
		EmployeeUC:   employeeUC,
		StockInUC:    stockInUC,
		StockOutUC:   stockOutUC,
		OpnameUC:     opnameUC,
		WarrantyUC:   warrantyUC,
		CashUC:       cashUC,
		AttendanceUC: attendanceUC,
		DashboardUC:  dashboardUC,
		Importer:     importer,
		VoucherPDF:   voucherPDF,
		Auditor:      auditor,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
