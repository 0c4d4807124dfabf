package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.WarrantyRepository = (*WarrantyRepo)(nil)

// WarrantyRepo implementación del puerto WarrantyRepository sobre PostgreSQL (usable con pool o tx).
type WarrantyRepo struct {
	q Querier
}

// NewWarrantyRepository construye el adaptador de persistencia para garantías. Pasar pool o tx (Querier).
func NewWarrantyRepository(q Querier) *WarrantyRepo {
	return &WarrantyRepo{q: q}
}

const warrantyColumns = `id, stock_in_id, sparepart_id, expiry_date, status, claimed_at, notes, created_at`

// Create persiste una nueva garantía asociada a una entrada de stock.
func (r *WarrantyRepo) Create(w *entity.Warranty) error {
	query := `
		INSERT INTO warranties (` + warrantyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		w.ID, w.StockInID, w.SparepartID, w.ExpiryDate, w.Status, w.ClaimedAt, w.Notes, w.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert warranty: %w", err)
	}
	return nil
}

// GetByID obtiene una garantía por ID.
func (r *WarrantyRepo) GetByID(id string) (*entity.Warranty, error) {
	query := `SELECT ` + warrantyColumns + ` FROM warranties WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get warranty")
}

// GetByStockInID obtiene la garantía asociada a una entrada (nil si no tiene).
func (r *WarrantyRepo) GetByStockInID(stockInID string) (*entity.Warranty, error) {
	query := `SELECT ` + warrantyColumns + ` FROM warranties WHERE stock_in_id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, stockInID), "get warranty by stock_in")
}

// Claim marca la garantía como reclamada solo si sigue active.
func (r *WarrantyRepo) Claim(id string, claimedAt time.Time) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `
		UPDATE warranties SET status = $2, claimed_at = $3
		WHERE id = $1 AND status = $4`,
		id, entity.WarrantyStatusClaimed, claimedAt, entity.WarrantyStatusActive,
	)
	if err != nil {
		return false, fmt.Errorf("claim warranty: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// ListExpiring lista garantías activas que vencen antes de la fecha dada.
func (r *WarrantyRepo) ListExpiring(before time.Time, limit, offset int) ([]*entity.Warranty, error) {
	query := `
		SELECT ` + warrantyColumns + ` FROM warranties
		WHERE status = $1 AND expiry_date <= $2
		ORDER BY expiry_date LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, entity.WarrantyStatusActive, before, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list expiring warranties: %w", err)
	}
	defer rows.Close()
	return r.scanRows(rows)
}

// List lista garantías con paginación, más recientes primero.
func (r *WarrantyRepo) List(limit, offset int) ([]*entity.Warranty, error) {
	query := `SELECT ` + warrantyColumns + ` FROM warranties ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list warranties: %w", err)
	}
	defer rows.Close()
	return r.scanRows(rows)
}

// CountExpiring cuenta garantías activas que vencen antes de la fecha dada.
func (r *WarrantyRepo) CountExpiring(before time.Time) (int64, error) {
	var count int64
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM warranties WHERE status = $1 AND expiry_date <= $2`,
		entity.WarrantyStatusActive, before,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count expiring warranties: %w", err)
	}
	return count, nil
}

// DeleteByStockInID elimina la garantía de una entrada (cascada al borrar la entrada).
// No falla si la entrada no tenía garantía.
func (r *WarrantyRepo) DeleteByStockInID(stockInID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM warranties WHERE stock_in_id = $1`, stockInID)
	if err != nil {
		return fmt.Errorf("delete warranty by stock_in: %w", err)
	}
	return nil
}

func (r *WarrantyRepo) scanOne(row pgx.Row, op string) (*entity.Warranty, error) {
	var w entity.Warranty
	err := row.Scan(&w.ID, &w.StockInID, &w.SparepartID, &w.ExpiryDate, &w.Status, &w.ClaimedAt, &w.Notes, &w.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &w, nil
}

func (r *WarrantyRepo) scanRows(rows pgx.Rows) ([]*entity.Warranty, error) {
	var list []*entity.Warranty
	for rows.Next() {
		var w entity.Warranty
		if err := rows.Scan(&w.ID, &w.StockInID, &w.SparepartID, &w.ExpiryDate, &w.Status, &w.ClaimedAt, &w.Notes, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan warranty: %w", err)
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}
