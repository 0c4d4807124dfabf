package usecase

import (
	"time"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// WarrantyUseCase maneja el ciclo de vida de garantías (active -> claimed).
// La creación ocurre dentro del registro de entradas; aquí solo consultas y reclamo.
type WarrantyUseCase struct {
	repo repository.WarrantyRepository
}

// NewWarrantyUseCase construye el caso de uso.
func NewWarrantyUseCase(repo repository.WarrantyRepository) *WarrantyUseCase {
	return &WarrantyUseCase{repo: repo}
}

// Claim marca una garantía como reclamada. Solo legal desde active.
func (uc *WarrantyUseCase) Claim(id string) (*dto.WarrantyResponse, error) {
	w, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, domain.ErrNotFound
	}
	if w.Status != entity.WarrantyStatusActive {
		return nil, domain.ErrInvalidStateTransition
	}
	now := time.Now()
	ok, err := uc.repo.Claim(id, now)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInvalidStateTransition
	}
	w.Status = entity.WarrantyStatusClaimed
	w.ClaimedAt = &now
	return toWarrantyResponse(w), nil
}

// List lista garantías; si expiringDays > 0 filtra las activas que vencen
// dentro de esa ventana.
func (uc *WarrantyUseCase) List(expiringDays, limit, offset int) (*dto.WarrantyListResponse, error) {
	var (
		list []*entity.Warranty
		err  error
	)
	if expiringDays > 0 {
		before := time.Now().AddDate(0, 0, expiringDays)
		list, err = uc.repo.ListExpiring(before, limit, offset)
	} else {
		list, err = uc.repo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarrantyResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *toWarrantyResponse(w))
	}
	return &dto.WarrantyListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toWarrantyResponse(w *entity.Warranty) *dto.WarrantyResponse {
	if w == nil {
		return nil
	}
	return &dto.WarrantyResponse{
		ID:          w.ID,
		StockInID:   w.StockInID,
		SparepartID: w.SparepartID,
		ExpiryDate:  w.ExpiryDate,
		Status:      w.Status,
		ClaimedAt:   w.ClaimedAt,
		Notes:       w.Notes,
		CreatedAt:   w.CreatedAt,
	}
}
