package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.StockInRepository = (*StockInRepo)(nil)

// StockInRepo implementación del puerto StockInRepository sobre PostgreSQL (usable con pool o tx).
type StockInRepo struct {
	q Querier
}

// NewStockInRepository construye el adaptador de persistencia para entradas. Pasar pool o tx (Querier).
func NewStockInRepository(q Querier) *StockInRepo {
	return &StockInRepo{q: q}
}

const stockInColumns = `id, sparepart_id, supplier_id, quantity, invoice_number, purchase_price, is_adjustment, notes, date, created_at, created_by`

// Create persiste una nueva entrada de stock.
func (r *StockInRepo) Create(in *entity.StockIn) error {
	query := `
		INSERT INTO stock_ins (` + stockInColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		in.ID, in.SparepartID, in.SupplierID, in.Quantity, in.InvoiceNumber,
		in.PurchasePrice, in.IsAdjustment, in.Notes, in.Date, in.CreatedAt, in.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert stock_in: %w", err)
	}
	return nil
}

// GetByID obtiene una entrada por ID.
func (r *StockInRepo) GetByID(id string) (*entity.StockIn, error) {
	query := `SELECT ` + stockInColumns + ` FROM stock_ins WHERE id = $1`
	var in entity.StockIn
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&in.ID, &in.SparepartID, &in.SupplierID, &in.Quantity, &in.InvoiceNumber,
		&in.PurchasePrice, &in.IsAdjustment, &in.Notes, &in.Date, &in.CreatedAt, &in.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock_in: %w", err)
	}
	return &in, nil
}

// ListBySparepart lista entradas de un repuesto, más recientes primero.
func (r *StockInRepo) ListBySparepart(sparepartID string, limit, offset int) ([]*entity.StockIn, error) {
	query := `
		SELECT ` + stockInColumns + ` FROM stock_ins
		WHERE sparepart_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, sparepartID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock_ins by sparepart: %w", err)
	}
	defer rows.Close()
	return r.scanRows(rows)
}

// List lista entradas con paginación, más recientes primero.
func (r *StockInRepo) List(limit, offset int) ([]*entity.StockIn, error) {
	query := `SELECT ` + stockInColumns + ` FROM stock_ins ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock_ins: %w", err)
	}
	defer rows.Close()
	return r.scanRows(rows)
}

// Delete elimina una entrada por ID.
func (r *StockInRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM stock_ins WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stock_in: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *StockInRepo) scanRows(rows pgx.Rows) ([]*entity.StockIn, error) {
	var list []*entity.StockIn
	for rows.Next() {
		var in entity.StockIn
		if err := rows.Scan(
			&in.ID, &in.SparepartID, &in.SupplierID, &in.Quantity, &in.InvoiceNumber,
			&in.PurchasePrice, &in.IsAdjustment, &in.Notes, &in.Date, &in.CreatedAt, &in.CreatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan stock_in: %w", err)
		}
		list = append(list, &in)
	}
	return list, rows.Err()
}
