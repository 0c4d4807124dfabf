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

var _ repository.StockOutRepository = (*StockOutRepo)(nil)

// StockOutRepo implementación del puerto StockOutRepository sobre PostgreSQL (usable con pool o tx).
type StockOutRepo struct {
	q Querier
}

// NewStockOutRepository construye el adaptador de persistencia para salidas. Pasar pool o tx (Querier).
func NewStockOutRepository(q Querier) *StockOutRepo {
	return &StockOutRepo{q: q}
}

const stockOutColumns = `id, sparepart_id, equipment_id, employee_id, quantity, purpose, status, reject_reason, is_adjustment, approved_at, approved_by, created_at, created_by`

// Create persiste una nueva solicitud de salida.
func (r *StockOutRepo) Create(out *entity.StockOut) error {
	query := `
		INSERT INTO stock_outs (` + stockOutColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		out.ID, out.SparepartID, out.EquipmentID, out.EmployeeID, out.Quantity,
		out.Purpose, out.Status, out.RejectReason, out.IsAdjustment,
		out.ApprovedAt, out.ApprovedBy, out.CreatedAt, out.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert stock_out: %w", err)
	}
	return nil
}

// GetByID obtiene una solicitud por ID.
func (r *StockOutRepo) GetByID(id string) (*entity.StockOut, error) {
	query := `SELECT ` + stockOutColumns + ` FROM stock_outs WHERE id = $1`
	var out entity.StockOut
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&out.ID, &out.SparepartID, &out.EquipmentID, &out.EmployeeID, &out.Quantity,
		&out.Purpose, &out.Status, &out.RejectReason, &out.IsAdjustment,
		&out.ApprovedAt, &out.ApprovedBy, &out.CreatedAt, &out.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock_out: %w", err)
	}
	return &out, nil
}

// Approve marca la solicitud como aprobada solo si sigue en pending.
// El WHERE condicional garantiza una única transición aunque dos aprobadores
// compitan: el segundo obtiene false.
func (r *StockOutRepo) Approve(id, approvedBy string, approvedAt time.Time) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `
		UPDATE stock_outs SET status = $2, approved_by = $3, approved_at = $4
		WHERE id = $1 AND status = $5`,
		id, entity.StockOutStatusApproved, approvedBy, approvedAt, entity.StockOutStatusPending,
	)
	if err != nil {
		return false, fmt.Errorf("approve stock_out: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Reject marca la solicitud como rechazada solo si sigue en pending.
func (r *StockOutRepo) Reject(id, reason string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `
		UPDATE stock_outs SET status = $2, reject_reason = $3
		WHERE id = $1 AND status = $4`,
		id, entity.StockOutStatusRejected, reason, entity.StockOutStatusPending,
	)
	if err != nil {
		return false, fmt.Errorf("reject stock_out: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// List lista solicitudes con filtro opcional por estado, más recientes primero.
func (r *StockOutRepo) List(status string, limit, offset int) ([]*entity.StockOut, error) {
	query := `SELECT ` + stockOutColumns + ` FROM stock_outs`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock_outs: %w", err)
	}
	defer rows.Close()

	var list []*entity.StockOut
	for rows.Next() {
		var out entity.StockOut
		if err := rows.Scan(
			&out.ID, &out.SparepartID, &out.EquipmentID, &out.EmployeeID, &out.Quantity,
			&out.Purpose, &out.Status, &out.RejectReason, &out.IsAdjustment,
			&out.ApprovedAt, &out.ApprovedBy, &out.CreatedAt, &out.CreatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan stock_out: %w", err)
		}
		list = append(list, &out)
	}
	return list, rows.Err()
}

// CountByStatus cuenta solicitudes en un estado dado.
func (r *StockOutRepo) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM stock_outs WHERE status = $1`, status,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count stock_outs: %w", err)
	}
	return count, nil
}

// Delete elimina una solicitud por ID.
func (r *StockOutRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM stock_outs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stock_out: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
