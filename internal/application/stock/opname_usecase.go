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

// OpnameUseCase reconcilia un conteo físico contra el stock registrado.
//
// Por cada ítem con diferencia distinta de cero sintetiza el ajuste
// correspondiente (entrada si sobró, salida ya aprobada si faltó) y
// SOBRESCRIBE el stock al valor contado; la escritura absoluta evita acumular
// deriva si otra escritura se coló entre el conteo y la reconciliación.
// Todo el lote es una sola transacción.
type OpnameUseCase struct {
	txRunner      OpnameTxRunner
	sparepartRepo repository.SparepartRepository
	opnameRepo    repository.OpnameRepository
}

// NewOpnameUseCase construye el caso de uso.
func NewOpnameUseCase(
	txRunner OpnameTxRunner,
	sparepartRepo repository.SparepartRepository,
	opnameRepo repository.OpnameRepository,
) *OpnameUseCase {
	return &OpnameUseCase{
		txRunner:      txRunner,
		sparepartRepo: sparepartRepo,
		opnameRepo:    opnameRepo,
	}
}

// Reconcile procesa el lote. Ítems donde contado == registrado se omiten por
// completo (ni siquiera se persisten). Si ningún ítem difiere, falla con
// ErrNothingToReconcile sin crear sesión.
func (uc *OpnameUseCase) Reconcile(ctx context.Context, userID string, in dto.CreateOpnameRequest) (*dto.OpnameResultResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	seen := make(map[string]bool, len(in.Items))
	for _, item := range in.Items {
		if item.SparepartID == "" || item.PhysicalStock < 0 || item.SystemStock < 0 {
			return nil, domain.ErrInvalidInput
		}
		if seen[item.SparepartID] {
			return nil, domain.ErrDuplicate
		}
		seen[item.SparepartID] = true
		sp, err := uc.sparepartRepo.GetByID(item.SparepartID)
		if err != nil {
			return nil, err
		}
		if sp == nil {
			return nil, domain.ErrNotFound
		}
	}

	// Pre-chequeo: lote sin ninguna diferencia no crea sesión vacía
	skipped := 0
	for _, item := range in.Items {
		if item.PhysicalStock == item.SystemStock {
			skipped++
		}
	}
	if skipped == len(in.Items) {
		return nil, domain.ErrNothingToReconcile
	}

	now := time.Now()
	session := &entity.OpnameSession{
		ID:        uuid.New().String(),
		Notes:     in.Notes,
		CreatedAt: now,
		CreatedBy: userID,
	}
	result := &dto.OpnameResultResponse{SessionID: session.ID, Skipped: skipped}

	err := uc.txRunner.RunOpname(ctx, func(
		sparepartRepo repository.SparepartRepository,
		stockInRepo repository.StockInRepository,
		stockOutRepo repository.StockOutRepository,
		opnameRepo repository.OpnameRepository,
	) error {
		if err := opnameRepo.CreateSession(session); err != nil {
			return err
		}
		for _, item := range in.Items {
			if item.PhysicalStock == item.SystemStock {
				continue
			}
			diff := item.PhysicalStock - item.SystemStock

			if diff > 0 {
				adj := &entity.StockIn{
					ID:           uuid.New().String(),
					SparepartID:  item.SparepartID,
					Quantity:     diff,
					IsAdjustment: true,
					Notes:        "ajuste por conteo físico " + session.ID,
					Date:         now,
					CreatedAt:    now,
					CreatedBy:    userID,
				}
				if err := stockInRepo.Create(adj); err != nil {
					return err
				}
				result.StockInCreated++
			} else {
				adj := &entity.StockOut{
					ID:           uuid.New().String(),
					SparepartID:  item.SparepartID,
					Quantity:     -diff,
					Purpose:      "ajuste por conteo físico " + session.ID,
					Status:       entity.StockOutStatusApproved,
					IsAdjustment: true,
					ApprovedAt:   &now,
					ApprovedBy:   userID,
					CreatedAt:    now,
					CreatedBy:    userID,
				}
				if err := stockOutRepo.Create(adj); err != nil {
					return err
				}
				result.StockOutCreated++
			}

			// Sobrescritura directa al valor contado (no incremento)
			locked, err := sparepartRepo.GetForUpdate(item.SparepartID)
			if err != nil {
				return err
			}
			if locked == nil {
				return domain.ErrNotFound
			}
			if err := sparepartRepo.SetCurrentStock(locked.ID, item.PhysicalStock); err != nil {
				return err
			}

			opItem := &entity.OpnameItem{
				ID:            uuid.New().String(),
				SessionID:     session.ID,
				SparepartID:   item.SparepartID,
				SystemStock:   item.SystemStock,
				PhysicalStock: item.PhysicalStock,
				Difference:    diff,
				Notes:         item.Notes,
			}
			if err := opnameRepo.CreateItem(opItem); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ListSessions lista sesiones de conteo con paginación.
func (uc *OpnameUseCase) ListSessions(limit, offset int) ([]*entity.OpnameSession, error) {
	return uc.opnameRepo.ListSessions(limit, offset)
}

// SessionItems devuelve los ítems persistidos de una sesión.
func (uc *OpnameUseCase) SessionItems(sessionID string) ([]*entity.OpnameItem, error) {
	s, err := uc.opnameRepo.GetSession(sessionID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return uc.opnameRepo.ListItems(sessionID)
}
