package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// AttendanceUseCase registro de asistencia diaria: un check-in por empleado
// por fecha; el check-out cierra la jornada abierta.
type AttendanceUseCase struct {
	repo         repository.AttendanceRepository
	employeeRepo repository.EmployeeRepository
}

// NewAttendanceUseCase construye el caso de uso.
func NewAttendanceUseCase(repo repository.AttendanceRepository, employeeRepo repository.EmployeeRepository) *AttendanceUseCase {
	return &AttendanceUseCase{repo: repo, employeeRepo: employeeRepo}
}

// CheckIn abre la jornada del empleado para hoy. Doble check-in el mismo día
// falla con ErrDuplicate.
func (uc *AttendanceUseCase) CheckIn(in dto.CheckInRequest) (*dto.AttendanceResponse, error) {
	if in.EmployeeID == "" {
		return nil, domain.ErrInvalidInput
	}
	emp, err := uc.employeeRepo.GetByID(in.EmployeeID)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	today := truncateToDate(now)
	existing, err := uc.repo.GetByEmployeeAndDate(in.EmployeeID, today)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	a := &entity.Attendance{
		ID:         uuid.New().String(),
		EmployeeID: in.EmployeeID,
		Date:       today,
		CheckIn:    now,
		Notes:      in.Notes,
		CreatedAt:  now,
	}
	if err := uc.repo.Create(a); err != nil {
		return nil, err
	}
	return toAttendanceResponse(a), nil
}

// CheckOut cierra la jornada abierta de hoy. Sin check-in previo falla con
// ErrNotFound; doble check-out con ErrInvalidStateTransition.
func (uc *AttendanceUseCase) CheckOut(in dto.CheckOutRequest) (*dto.AttendanceResponse, error) {
	if in.EmployeeID == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	today := truncateToDate(now)
	a, err := uc.repo.GetByEmployeeAndDate(in.EmployeeID, today)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	if a.CheckOut != nil {
		return nil, domain.ErrInvalidStateTransition
	}
	if err := uc.repo.SetCheckOut(a.ID, now); err != nil {
		return nil, err
	}
	a.CheckOut = &now
	return toAttendanceResponse(a), nil
}

// List lista asistencia, opcionalmente por fecha y/o empleado.
func (uc *AttendanceUseCase) List(date *time.Time, employeeID string, limit, offset int) (*dto.AttendanceListResponse, error) {
	if date != nil {
		d := truncateToDate(*date)
		date = &d
	}
	list, err := uc.repo.List(date, employeeID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AttendanceResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAttendanceResponse(a))
	}
	return &dto.AttendanceListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func toAttendanceResponse(a *entity.Attendance) *dto.AttendanceResponse {
	if a == nil {
		return nil
	}
	return &dto.AttendanceResponse{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		Date:       a.Date,
		CheckIn:    a.CheckIn,
		CheckOut:   a.CheckOut,
		Notes:      a.Notes,
	}
}
