package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/usecase"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

type fakeAttendanceRepo struct {
	records map[string]*entity.Attendance
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]*entity.Attendance)}
}

func (r *fakeAttendanceRepo) Create(a *entity.Attendance) error {
	cp := *a
	r.records[a.ID] = &cp
	return nil
}

func (r *fakeAttendanceRepo) GetByEmployeeAndDate(employeeID string, date time.Time) (*entity.Attendance, error) {
	for _, a := range r.records {
		if a.EmployeeID == employeeID && a.Date.Equal(date) {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeAttendanceRepo) SetCheckOut(id string, checkOut time.Time) error {
	a, ok := r.records[id]
	if !ok {
		return domain.ErrNotFound
	}
	out := checkOut
	a.CheckOut = &out
	return nil
}

func (r *fakeAttendanceRepo) List(date *time.Time, employeeID string, limit, offset int) ([]*entity.Attendance, error) {
	var list []*entity.Attendance
	for _, a := range r.records {
		if date != nil && !a.Date.Equal(*date) {
			continue
		}
		if employeeID != "" && a.EmployeeID != employeeID {
			continue
		}
		cp := *a
		list = append(list, &cp)
	}
	return list, nil
}

type fakeEmployeeRepo struct {
	records map[string]*entity.Employee
}

func (r *fakeEmployeeRepo) Create(e *entity.Employee) error                  { return nil }
func (r *fakeEmployeeRepo) GetByCode(code string) (*entity.Employee, error)  { return nil, nil }
func (r *fakeEmployeeRepo) Update(e *entity.Employee) error                  { return nil }
func (r *fakeEmployeeRepo) Delete(id string) error                           { return nil }
func (r *fakeEmployeeRepo) List(s string, l, o int) ([]*entity.Employee, error) {
	return nil, nil
}

func (r *fakeEmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	e, ok := r.records[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func newAttendanceUseCase() (*usecase.AttendanceUseCase, *fakeAttendanceRepo) {
	attRepo := newFakeAttendanceRepo()
	empRepo := &fakeEmployeeRepo{records: map[string]*entity.Employee{
		"emp-1": {ID: "emp-1", Code: "EMP-01", Name: "Carlos Mejía", Position: "mecánico"},
	}}
	return usecase.NewAttendanceUseCase(attRepo, empRepo), attRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// Check-in / check-out
// ──────────────────────────────────────────────────────────────────────────────

func TestAttendanceCheckIn_AbreJornada(t *testing.T) {
	uc, _ := newAttendanceUseCase()

	resp, err := uc.CheckIn(dto.CheckInRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)
	assert.Equal(t, "emp-1", resp.EmployeeID)
	assert.Nil(t, resp.CheckOut, "la jornada recién abierta no tiene salida")
	assert.Equal(t, 0, resp.Date.Hour(), "la fecha se trunca a medianoche")
}

func TestAttendanceCheckIn_DobleElMismoDia(t *testing.T) {
	uc, _ := newAttendanceUseCase()

	_, err := uc.CheckIn(dto.CheckInRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	_, err = uc.CheckIn(dto.CheckInRequest{EmployeeID: "emp-1"})
	assert.ErrorIs(t, err, domain.ErrDuplicate, "un empleado solo marca entrada una vez por día")
}

func TestAttendanceCheckIn_EmpleadoInexistente(t *testing.T) {
	uc, _ := newAttendanceUseCase()

	_, err := uc.CheckIn(dto.CheckInRequest{EmployeeID: "emp-fantasma"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAttendanceCheckOut_CierraJornada(t *testing.T) {
	uc, _ := newAttendanceUseCase()
	_, err := uc.CheckIn(dto.CheckInRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	resp, err := uc.CheckOut(dto.CheckOutRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)
	require.NotNil(t, resp.CheckOut)

	_, err = uc.CheckOut(dto.CheckOutRequest{EmployeeID: "emp-1"})
	assert.ErrorIs(t, err, domain.ErrInvalidStateTransition, "la jornada ya cerrada no se cierra de nuevo")
}

func TestAttendanceCheckOut_SinCheckInPrevio(t *testing.T) {
	uc, _ := newAttendanceUseCase()

	_, err := uc.CheckOut(dto.CheckOutRequest{EmployeeID: "emp-1"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
