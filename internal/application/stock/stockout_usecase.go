package stock

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// StockOutUseCase implementa el ciclo de vida de solicitudes de salida:
// pending -> approved | rejected (ambos terminales).
//
// La suficiencia se verifica dos veces: al crear (chequeo blando, el stock no
// se reserva) y al aprobar (chequeo definitivo contra el stock ACTUAL, bajo
// SELECT FOR UPDATE, de modo que dos aprobaciones concurrentes sobre el mismo
// repuesto quedan serializadas y nunca dejan stock negativo).
type StockOutUseCase struct {
	txRunner      TxRunner
	sparepartRepo repository.SparepartRepository
	equipmentRepo repository.EquipmentRepository
	employeeRepo  repository.EmployeeRepository
	stockOutRepo  repository.StockOutRepository
}

// NewStockOutUseCase construye el caso de uso.
func NewStockOutUseCase(
	txRunner TxRunner,
	sparepartRepo repository.SparepartRepository,
	equipmentRepo repository.EquipmentRepository,
	employeeRepo repository.EmployeeRepository,
	stockOutRepo repository.StockOutRepository,
) *StockOutUseCase {
	return &StockOutUseCase{
		txRunner:      txRunner,
		sparepartRepo: sparepartRepo,
		equipmentRepo: equipmentRepo,
		employeeRepo:  employeeRepo,
		stockOutRepo:  stockOutRepo,
	}
}

// Create valida referencias y suficiencia al momento de la solicitud y crea la
// solicitud en pending. No descuenta ni reserva stock.
func (uc *StockOutUseCase) Create(ctx context.Context, userID string, in dto.CreateStockOutRequest) (*dto.StockOutResponse, error) {
	if in.SparepartID == "" || in.EquipmentID == "" || in.EmployeeID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	sp, err := uc.sparepartRepo.GetByID(in.SparepartID)
	if err != nil {
		return nil, err
	}
	if sp == nil {
		return nil, domain.ErrNotFound
	}
	eq, err := uc.equipmentRepo.GetByID(in.EquipmentID)
	if err != nil {
		return nil, err
	}
	if eq == nil {
		return nil, domain.ErrNotFound
	}
	emp, err := uc.employeeRepo.GetByID(in.EmployeeID)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrNotFound
	}
	// Chequeo blando: puede quedar obsoleto si otra aprobación consume stock
	// antes de que esta solicitud se apruebe; la aprobación re-verifica.
	if in.Quantity > sp.CurrentStock {
		return nil, domain.ErrInsufficientStock
	}

	now := time.Now()
	out := &entity.StockOut{
		ID:          uuid.New().String(),
		SparepartID: in.SparepartID,
		EquipmentID: &in.EquipmentID,
		EmployeeID:  &in.EmployeeID,
		Quantity:    in.Quantity,
		Purpose:     in.Purpose,
		Status:      entity.StockOutStatusPending,
		CreatedAt:   now,
		CreatedBy:   userID,
	}
	if err := uc.stockOutRepo.Create(out); err != nil {
		return nil, err
	}
	return toStockOutResponse(out), nil
}

// Approve transiciona pending -> approved descontando stock en la misma
// transacción. Si el stock actual ya no alcanza, falla con ErrInsufficientStock
// y la solicitud permanece en pending.
func (uc *StockOutUseCase) Approve(ctx context.Context, id, approverID string) (*dto.StockOutResponse, error) {
	out, err := uc.stockOutRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, domain.ErrNotFound
	}
	if !out.IsPending() {
		return nil, domain.ErrInvalidStateTransition
	}

	now := time.Now()
	err = uc.txRunner.Run(ctx, func(
		sparepartRepo repository.SparepartRepository,
		_ repository.StockInRepository,
		stockOutRepo repository.StockOutRepository,
		_ repository.WarrantyRepository,
	) error {
		// Re-verificación contra el stock ACTUAL bajo bloqueo de fila: la
		// suficiencia al crear la solicitud no garantiza nada aquí.
		locked, err := sparepartRepo.GetForUpdate(out.SparepartID)
		if err != nil {
			return err
		}
		if locked == nil {
			return domain.ErrNotFound
		}
		if out.Quantity > locked.CurrentStock {
			return domain.ErrInsufficientStock
		}
		// El UPDATE condicionado a status=pending cierra la ventana entre el
		// GetByID de arriba y esta transacción: solo un aprobador gana.
		ok, err := stockOutRepo.Approve(out.ID, approverID, now)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrInvalidStateTransition
		}
		return sparepartRepo.SetCurrentStock(locked.ID, locked.CurrentStock-out.Quantity)
	})
	if err != nil {
		return nil, err
	}

	out.Status = entity.StockOutStatusApproved
	out.ApprovedAt = &now
	out.ApprovedBy = approverID
	return toStockOutResponse(out), nil
}

// Reject transiciona pending -> rejected. El motivo es obligatorio.
func (uc *StockOutUseCase) Reject(ctx context.Context, id, reason string) (*dto.StockOutResponse, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, domain.ErrInvalidInput
	}
	out, err := uc.stockOutRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, domain.ErrNotFound
	}
	if !out.IsPending() {
		return nil, domain.ErrInvalidStateTransition
	}
	ok, err := uc.stockOutRepo.Reject(id, reason)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInvalidStateTransition
	}
	out.Status = entity.StockOutStatusRejected
	out.RejectReason = reason
	return toStockOutResponse(out), nil
}

// Delete elimina una solicitud solo mientras sigue en pending. Sin efectos
// sobre el stock.
func (uc *StockOutUseCase) Delete(ctx context.Context, id string) error {
	out, err := uc.stockOutRepo.GetByID(id)
	if err != nil {
		return err
	}
	if out == nil {
		return domain.ErrNotFound
	}
	if !out.IsPending() {
		return domain.ErrInvalidStateTransition
	}
	return uc.stockOutRepo.Delete(id)
}

// GetByID obtiene una solicitud por ID.
func (uc *StockOutUseCase) GetByID(id string) (*dto.StockOutResponse, error) {
	out, err := uc.stockOutRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, nil
	}
	return toStockOutResponse(out), nil
}

// List lista solicitudes, opcionalmente filtradas por estado.
func (uc *StockOutUseCase) List(status string, limit, offset int) (*dto.StockOutListResponse, error) {
	switch status {
	case "", entity.StockOutStatusPending, entity.StockOutStatusApproved, entity.StockOutStatusRejected:
	default:
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.stockOutRepo.List(status, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockOutResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toStockOutResponse(o))
	}
	return &dto.StockOutListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toStockOutResponse(o *entity.StockOut) *dto.StockOutResponse {
	if o == nil {
		return nil
	}
	return &dto.StockOutResponse{
		ID:           o.ID,
		SparepartID:  o.SparepartID,
		EquipmentID:  o.EquipmentID,
		EmployeeID:   o.EmployeeID,
		Quantity:     o.Quantity,
		Purpose:      o.Purpose,
		Status:       o.Status,
		RejectReason: o.RejectReason,
		IsAdjustment: o.IsAdjustment,
		ApprovedAt:   o.ApprovedAt,
		ApprovedBy:   o.ApprovedBy,
		CreatedAt:    o.CreatedAt,
	}
}
