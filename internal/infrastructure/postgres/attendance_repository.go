package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.AttendanceRepository = (*AttendanceRepo)(nil)

// AttendanceRepo implementación del puerto AttendanceRepository sobre PostgreSQL (usable con pool o tx).
type AttendanceRepo struct {
	q Querier
}

// NewAttendanceRepository construye el adaptador de persistencia para asistencia. Pasar pool o tx (Querier).
func NewAttendanceRepository(q Querier) *AttendanceRepo {
	return &AttendanceRepo{q: q}
}

const attendanceColumns = `id, employee_id, date, check_in, check_out, notes, created_at`

// Create persiste un registro de asistencia (check-in).
func (r *AttendanceRepo) Create(a *entity.Attendance) error {
	query := `
		INSERT INTO attendances (` + attendanceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.EmployeeID, a.Date, a.CheckIn, a.CheckOut, a.Notes, a.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert attendance: %w", err)
	}
	return nil
}

// GetByEmployeeAndDate devuelve el registro del empleado para la fecha dada (nil si no existe).
func (r *AttendanceRepo) GetByEmployeeAndDate(employeeID string, date time.Time) (*entity.Attendance, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendances WHERE employee_id = $1 AND date = $2`
	var a entity.Attendance
	err := r.q.QueryRow(context.Background(), query, employeeID, date).Scan(
		&a.ID, &a.EmployeeID, &a.Date, &a.CheckIn, &a.CheckOut, &a.Notes, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get attendance: %w", err)
	}
	return &a, nil
}

// SetCheckOut cierra la jornada escribiendo la hora de salida.
func (r *AttendanceRepo) SetCheckOut(id string, checkOut time.Time) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE attendances SET check_out = $2 WHERE id = $1`, id, checkOut,
	)
	if err != nil {
		return fmt.Errorf("set check out: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista asistencia con filtros opcionales por fecha y empleado.
func (r *AttendanceRepo) List(date *time.Time, employeeID string, limit, offset int) ([]*entity.Attendance, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendances`
	args := []any{}
	where := ""
	if date != nil {
		args = append(args, *date)
		where = fmt.Sprintf(` WHERE date = $%d`, len(args))
	}
	if employeeID != "" {
		args = append(args, employeeID)
		if where == "" {
			where = fmt.Sprintf(` WHERE employee_id = $%d`, len(args))
		} else {
			where += fmt.Sprintf(` AND employee_id = $%d`, len(args))
		}
	}
	query += where + fmt.Sprintf(` ORDER BY date DESC, check_in DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list attendances: %w", err)
	}
	defer rows.Close()

	var list []*entity.Attendance
	for rows.Next() {
		var a entity.Attendance
		if err := rows.Scan(&a.ID, &a.EmployeeID, &a.Date, &a.CheckIn, &a.CheckOut, &a.Notes, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan attendance: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
