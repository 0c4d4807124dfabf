package dto

import "time"

// CheckInRequest body para POST /api/attendance/check-in.
type CheckInRequest struct {
	EmployeeID string `json:"employee_id" validate:"required"`
	Notes      string `json:"notes,omitempty"`
}

// CheckOutRequest body para PUT /api/attendance/check-out.
type CheckOutRequest struct {
	EmployeeID string `json:"employee_id" validate:"required"`
}

// AttendanceResponse salida de un registro de asistencia.
type AttendanceResponse struct {
	ID         string     `json:"id"`
	EmployeeID string     `json:"employee_id"`
	Date       time.Time  `json:"date"`
	CheckIn    time.Time  `json:"check_in"`
	CheckOut   *time.Time `json:"check_out,omitempty"`
	Notes      string     `json:"notes,omitempty"`
}

// AttendanceListResponse lista paginada de asistencia.
type AttendanceListResponse struct {
	Items []AttendanceResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}
