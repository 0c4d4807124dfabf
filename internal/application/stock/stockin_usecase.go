package stock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// StockInUseCase registra entradas de repuestos de forma transaccional:
// crea el registro de entrada, suma la cantidad al stock bajo bloqueo de fila
// (SELECT FOR UPDATE) y, si viene vencimiento de garantía, abre la garantía.
// La eliminación revierte simétricamente: resta stock y borra la garantía en cascada.
type StockInUseCase struct {
	txRunner      TxRunner
	sparepartRepo repository.SparepartRepository
	supplierRepo  repository.SupplierRepository
	stockInRepo   repository.StockInRepository
	warrantyRepo  repository.WarrantyRepository
}

// NewStockInUseCase construye el caso de uso.
func NewStockInUseCase(
	txRunner TxRunner,
	sparepartRepo repository.SparepartRepository,
	supplierRepo repository.SupplierRepository,
	stockInRepo repository.StockInRepository,
	warrantyRepo repository.WarrantyRepository,
) *StockInUseCase {
	return &StockInUseCase{
		txRunner:      txRunner,
		sparepartRepo: sparepartRepo,
		supplierRepo:  supplierRepo,
		stockInRepo:   stockInRepo,
		warrantyRepo:  warrantyRepo,
	}
}

// Create valida referencias, inicia la transacción y persiste entrada + stock + garantía.
func (uc *StockInUseCase) Create(ctx context.Context, userID string, in dto.CreateStockInRequest) (*dto.StockInResponse, error) {
	if in.SparepartID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.PurchasePrice != nil && in.PurchasePrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	sp, err := uc.sparepartRepo.GetByID(in.SparepartID)
	if err != nil {
		return nil, err
	}
	if sp == nil {
		return nil, domain.ErrNotFound
	}
	if in.SupplierID != nil && *in.SupplierID != "" {
		supplier, err := uc.supplierRepo.GetByID(*in.SupplierID)
		if err != nil {
			return nil, err
		}
		if supplier == nil {
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now()
	record := &entity.StockIn{
		ID:            uuid.New().String(),
		SparepartID:   in.SparepartID,
		SupplierID:    in.SupplierID,
		Quantity:      in.Quantity,
		InvoiceNumber: in.InvoiceNumber,
		PurchasePrice: in.PurchasePrice,
		Notes:         in.Notes,
		Date:          now,
		CreatedAt:     now,
		CreatedBy:     userID,
	}
	var warrantyID string

	err = uc.txRunner.Run(ctx, func(
		sparepartRepo repository.SparepartRepository,
		stockInRepo repository.StockInRepository,
		_ repository.StockOutRepository,
		warrantyRepo repository.WarrantyRepository,
	) error {
		// Bloquea la fila del repuesto para que el incremento no pise otra escritura
		locked, err := sparepartRepo.GetForUpdate(in.SparepartID)
		if err != nil {
			return err
		}
		if locked == nil {
			return domain.ErrNotFound
		}
		if err := stockInRepo.Create(record); err != nil {
			return err
		}
		if err := sparepartRepo.SetCurrentStock(locked.ID, locked.CurrentStock+in.Quantity); err != nil {
			return err
		}
		if in.WarrantyExpiry != nil {
			w := &entity.Warranty{
				ID:          uuid.New().String(),
				StockInID:   record.ID,
				SparepartID: in.SparepartID,
				ExpiryDate:  *in.WarrantyExpiry,
				Status:      entity.WarrantyStatusActive,
				CreatedAt:   now,
			}
			if err := warrantyRepo.Create(w); err != nil {
				return err
			}
			warrantyID = w.ID
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := toStockInResponse(record)
	resp.WarrantyID = warrantyID
	return resp, nil
}

// Delete revierte una entrada: resta su cantidad al stock, elimina la garantía
// asociada (si existe) y borra el registro. Todo en una transacción.
func (uc *StockInUseCase) Delete(ctx context.Context, id string) error {
	record, err := uc.stockInRepo.GetByID(id)
	if err != nil {
		return err
	}
	if record == nil {
		return domain.ErrNotFound
	}

	return uc.txRunner.Run(ctx, func(
		sparepartRepo repository.SparepartRepository,
		stockInRepo repository.StockInRepository,
		_ repository.StockOutRepository,
		warrantyRepo repository.WarrantyRepository,
	) error {
		locked, err := sparepartRepo.GetForUpdate(record.SparepartID)
		if err != nil {
			return err
		}
		if locked == nil {
			return domain.ErrNotFound
		}
		// Revertir la entrada no puede dejar stock negativo
		if locked.CurrentStock < record.Quantity {
			return domain.ErrInsufficientStock
		}
		if err := sparepartRepo.SetCurrentStock(locked.ID, locked.CurrentStock-record.Quantity); err != nil {
			return err
		}
		if err := warrantyRepo.DeleteByStockInID(record.ID); err != nil {
			return err
		}
		return stockInRepo.Delete(record.ID)
	})
}

// GetByID obtiene una entrada por ID.
func (uc *StockInUseCase) GetByID(id string) (*dto.StockInResponse, error) {
	record, err := uc.stockInRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}
	return toStockInResponse(record), nil
}

// List lista entradas con paginación.
func (uc *StockInUseCase) List(limit, offset int) (*dto.StockInListResponse, error) {
	list, err := uc.stockInRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockInResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toStockInResponse(r))
	}
	return &dto.StockInListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toStockInResponse(r *entity.StockIn) *dto.StockInResponse {
	if r == nil {
		return nil
	}
	return &dto.StockInResponse{
		ID:            r.ID,
		SparepartID:   r.SparepartID,
		SupplierID:    r.SupplierID,
		Quantity:      r.Quantity,
		InvoiceNumber: r.InvoiceNumber,
		PurchasePrice: r.PurchasePrice,
		IsAdjustment:  r.IsAdjustment,
		Notes:         r.Notes,
		Date:          r.Date,
		CreatedAt:     r.CreatedAt,
	}
}
