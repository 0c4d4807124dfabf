package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// EquipmentUseCase casos de uso CRUD para equipos de maquinaria.
type EquipmentUseCase struct {
	repo repository.EquipmentRepository
}

// NewEquipmentUseCase construye el caso de uso.
func NewEquipmentUseCase(repo repository.EquipmentRepository) *EquipmentUseCase {
	return &EquipmentUseCase{repo: repo}
}

// Create crea un equipo. Status inicia en active.
func (uc *EquipmentUseCase) Create(in dto.CreateEquipmentRequest) (*dto.EquipmentResponse, error) {
	if in.Code == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByCode(in.Code)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	e := &entity.Equipment{
		ID:        uuid.New().String(),
		Code:      in.Code,
		Name:      in.Name,
		Type:      in.Type,
		Brand:     in.Brand,
		Status:    entity.EquipmentStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(e); err != nil {
		return nil, err
	}
	return toEquipmentResponse(e), nil
}

// GetByID obtiene un equipo por ID.
func (uc *EquipmentUseCase) GetByID(id string) (*dto.EquipmentResponse, error) {
	e, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, nil
	}
	return toEquipmentResponse(e), nil
}

// Update actualiza un equipo. Code no es modificable.
func (uc *EquipmentUseCase) Update(id string, in dto.UpdateEquipmentRequest) (*dto.EquipmentResponse, error) {
	e, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, nil
	}
	if in.Name != nil {
		e.Name = *in.Name
	}
	if in.Type != nil {
		e.Type = *in.Type
	}
	if in.Brand != nil {
		e.Brand = *in.Brand
	}
	if in.Status != nil {
		switch *in.Status {
		case entity.EquipmentStatusActive, entity.EquipmentStatusMaintenance, entity.EquipmentStatusRetired:
			e.Status = *in.Status
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	e.UpdatedAt = time.Now()
	if err := uc.repo.Update(e); err != nil {
		return nil, err
	}
	return toEquipmentResponse(e), nil
}

// List lista equipos con paginación.
func (uc *EquipmentUseCase) List(search string, limit, offset int) (*dto.EquipmentListResponse, error) {
	list, err := uc.repo.List(search, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EquipmentResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEquipmentResponse(e))
	}
	return &dto.EquipmentListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un equipo por ID.
func (uc *EquipmentUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toEquipmentResponse(e *entity.Equipment) *dto.EquipmentResponse {
	if e == nil {
		return nil
	}
	return &dto.EquipmentResponse{
		ID:        e.ID,
		Code:      e.Code,
		Name:      e.Name,
		Type:      e.Type,
		Brand:     e.Brand,
		Status:    e.Status,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
