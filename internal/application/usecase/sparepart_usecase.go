package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// SparepartUseCase casos de uso CRUD para repuestos. CurrentStock no se toca
// aquí: solo los motores de entradas/salidas/conteos lo modifican.
type SparepartUseCase struct {
	repo repository.SparepartRepository
}

// NewSparepartUseCase construye el caso de uso.
func NewSparepartUseCase(repo repository.SparepartRepository) *SparepartUseCase {
	return &SparepartUseCase{repo: repo}
}

// Create crea un repuesto nuevo. CurrentStock inicia en 0.
func (uc *SparepartUseCase) Create(in dto.CreateSparepartRequest) (*dto.SparepartResponse, error) {
	if in.Code == "" || in.Name == "" || in.Unit == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.MinStock < 0 || in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByCode(in.Code)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	sp := &entity.Sparepart{
		ID:           uuid.New().String(),
		Code:         in.Code,
		Name:         in.Name,
		Category:     in.Category,
		Unit:         in.Unit,
		MinStock:     in.MinStock,
		CurrentStock: 0,
		Location:     in.Location,
		Price:        in.Price,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(sp); err != nil {
		return nil, err
	}
	return toSparepartResponse(sp), nil
}

// GetByID obtiene un repuesto por ID.
func (uc *SparepartUseCase) GetByID(id string) (*dto.SparepartResponse, error) {
	sp, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sp == nil {
		return nil, nil
	}
	return toSparepartResponse(sp), nil
}

// Update actualiza un repuesto. No permite modificar Code ni CurrentStock.
func (uc *SparepartUseCase) Update(id string, in dto.UpdateSparepartRequest) (*dto.SparepartResponse, error) {
	sp, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sp == nil {
		return nil, nil
	}
	if in.Name != nil {
		sp.Name = *in.Name
	}
	if in.Category != nil {
		sp.Category = *in.Category
	}
	if in.Unit != nil {
		sp.Unit = *in.Unit
	}
	if in.MinStock != nil {
		if *in.MinStock < 0 {
			return nil, domain.ErrInvalidInput
		}
		sp.MinStock = *in.MinStock
	}
	if in.Location != nil {
		sp.Location = *in.Location
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		sp.Price = *in.Price
	}
	sp.UpdatedAt = time.Now()
	if err := uc.repo.Update(sp); err != nil {
		return nil, err
	}
	return toSparepartResponse(sp), nil
}

// List lista repuestos con búsqueda por código/nombre y paginación.
func (uc *SparepartUseCase) List(search string, limit, offset int) (*dto.SparepartListResponse, error) {
	list, err := uc.repo.List(search, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SparepartResponse, 0, len(list))
	for _, sp := range list {
		items = append(items, *toSparepartResponse(sp))
	}
	return &dto.SparepartListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un repuesto por ID.
func (uc *SparepartUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toSparepartResponse(sp *entity.Sparepart) *dto.SparepartResponse {
	if sp == nil {
		return nil
	}
	return &dto.SparepartResponse{
		ID:           sp.ID,
		Code:         sp.Code,
		Name:         sp.Name,
		Category:     sp.Category,
		Unit:         sp.Unit,
		MinStock:     sp.MinStock,
		CurrentStock: sp.CurrentStock,
		Location:     sp.Location,
		Price:        sp.Price,
		CreatedAt:    sp.CreatedAt,
		UpdatedAt:    sp.UpdatedAt,
	}
}
