package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// CashTxRunner ejecuta una función con el repositorio de caja atado a una
// transacción: el cálculo del saldo corrido y el insert comprometen juntos.
type CashTxRunner interface {
	RunCash(ctx context.Context, fn func(cashRepo repository.CashRepository) error) error
}

// CashUseCase libro de caja menor con saldo corrido. Un egreso que exceda el
// saldo disponible se rechaza antes de escribir.
type CashUseCase struct {
	txRunner CashTxRunner
	cashRepo repository.CashRepository
}

// NewCashUseCase construye el caso de uso.
func NewCashUseCase(txRunner CashTxRunner, cashRepo repository.CashRepository) *CashUseCase {
	return &CashUseCase{txRunner: txRunner, cashRepo: cashRepo}
}

// Create registra un ingreso o egreso y calcula el saldo resultante dentro de
// la misma transacción (el último movimiento queda bloqueado mientras tanto).
func (uc *CashUseCase) Create(ctx context.Context, userID string, in dto.CreateCashEntryRequest) (*dto.CashEntryResponse, error) {
	if in.Type != entity.CashTypeIncome && in.Type != entity.CashTypeExpense {
		return nil, domain.ErrInvalidInput
	}
	if !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	if in.Description == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	date := now
	if in.Date != nil {
		date = *in.Date
	}
	entry := &entity.CashEntry{
		ID:          uuid.New().String(),
		Type:        in.Type,
		Amount:      in.Amount,
		Description: in.Description,
		Date:        date,
		CreatedAt:   now,
		CreatedBy:   userID,
	}

	err := uc.txRunner.RunCash(ctx, func(cashRepo repository.CashRepository) error {
		balance, err := cashRepo.LastBalanceForUpdate()
		if err != nil {
			return err
		}
		if in.Type == entity.CashTypeExpense {
			if in.Amount.GreaterThan(balance) {
				return domain.ErrInsufficientBalance
			}
			entry.Balance = balance.Sub(in.Amount)
		} else {
			entry.Balance = balance.Add(in.Amount)
		}
		return cashRepo.Create(entry)
	})
	if err != nil {
		return nil, err
	}
	return toCashEntryResponse(entry), nil
}

// Balance devuelve el saldo actual de caja.
func (uc *CashUseCase) Balance() (*dto.CashBalanceResponse, error) {
	balance, err := uc.cashRepo.LastBalance()
	if err != nil {
		return nil, err
	}
	return &dto.CashBalanceResponse{Balance: balance}, nil
}

// List lista movimientos, opcionalmente filtrados por tipo.
func (uc *CashUseCase) List(entryType string, limit, offset int) (*dto.CashListResponse, error) {
	switch entryType {
	case "", entity.CashTypeIncome, entity.CashTypeExpense:
	default:
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.cashRepo.List(entryType, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CashEntryResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toCashEntryResponse(e))
	}
	return &dto.CashListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toCashEntryResponse(e *entity.CashEntry) *dto.CashEntryResponse {
	if e == nil {
		return nil
	}
	return &dto.CashEntryResponse{
		ID:          e.ID,
		Type:        e.Type,
		Amount:      e.Amount,
		Balance:     e.Balance,
		Description: e.Description,
		Date:        e.Date,
		CreatedAt:   e.CreatedAt,
	}
}
