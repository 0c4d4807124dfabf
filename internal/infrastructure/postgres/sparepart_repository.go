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

var _ repository.SparepartRepository = (*SparepartRepo)(nil)

// SparepartRepo implementación del puerto SparepartRepository sobre PostgreSQL (usable con pool o tx).
type SparepartRepo struct {
	q Querier
}

// NewSparepartRepository construye el adaptador de persistencia para repuestos. Pasar pool o tx (Querier).
func NewSparepartRepository(q Querier) *SparepartRepo {
	return &SparepartRepo{q: q}
}

const sparepartColumns = `id, code, name, category, unit, min_stock, current_stock, location, price, created_at, updated_at`

// Create persiste un nuevo repuesto. CurrentStock inicia en 0.
func (r *SparepartRepo) Create(sp *entity.Sparepart) error {
	query := `
		INSERT INTO spareparts (` + sparepartColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		sp.ID, sp.Code, sp.Name, sp.Category, sp.Unit, sp.MinStock,
		sp.CurrentStock, sp.Location, sp.Price, sp.CreatedAt, sp.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sparepart: %w", err)
	}
	return nil
}

// GetByID obtiene un repuesto por ID.
func (r *SparepartRepo) GetByID(id string) (*entity.Sparepart, error) {
	query := `SELECT ` + sparepartColumns + ` FROM spareparts WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get sparepart")
}

// GetByCode obtiene un repuesto por código único.
func (r *SparepartRepo) GetByCode(code string) (*entity.Sparepart, error) {
	query := `SELECT ` + sparepartColumns + ` FROM spareparts WHERE code = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, code), "get sparepart by code")
}

// GetForUpdate bloquea la fila del repuesto dentro de la transacción actual.
// Toda mutación de stock pasa primero por aquí.
func (r *SparepartRepo) GetForUpdate(id string) (*entity.Sparepart, error) {
	query := `SELECT ` + sparepartColumns + ` FROM spareparts WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "lock sparepart")
}

// Update actualiza un repuesto existente. No permite modificar Code ni
// CurrentStock (se manejan vía movimientos).
func (r *SparepartRepo) Update(sp *entity.Sparepart) error {
	query := `
		UPDATE spareparts SET name = $2, category = $3, unit = $4, min_stock = $5, location = $6, price = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		sp.ID, sp.Name, sp.Category, sp.Unit, sp.MinStock, sp.Location, sp.Price, sp.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update sparepart: %w", err)
	}
	return nil
}

// SetCurrentStock escribe el stock como valor absoluto (no delta).
func (r *SparepartRepo) SetCurrentStock(id string, quantity int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE spareparts SET current_stock = $2, updated_at = now() WHERE id = $1`,
		id, quantity,
	)
	if err != nil {
		return fmt.Errorf("set current stock: %w", err)
	}
	return nil
}

// List lista repuestos con búsqueda opcional por código o nombre (ILIKE).
func (r *SparepartRepo) List(search string, limit, offset int) ([]*entity.Sparepart, error) {
	query := `SELECT ` + sparepartColumns + ` FROM spareparts`
	args := []any{}
	if search != "" {
		query += ` WHERE code ILIKE $1 OR name ILIKE $1`
		args = append(args, "%"+search+"%")
	}
	query += fmt.Sprintf(` ORDER BY code LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list spareparts: %w", err)
	}
	defer rows.Close()
	return r.scanRows(rows)
}

// ListLowStock lista repuestos con stock en o bajo el mínimo configurado.
func (r *SparepartRepo) ListLowStock(limit int) ([]*entity.Sparepart, error) {
	query := `
		SELECT ` + sparepartColumns + `
		FROM spareparts WHERE current_stock <= min_stock
		ORDER BY current_stock - min_stock LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()
	return r.scanRows(rows)
}

// Delete elimina un repuesto por ID.
func (r *SparepartRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM spareparts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sparepart: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *SparepartRepo) scanOne(row pgx.Row, op string) (*entity.Sparepart, error) {
	var sp entity.Sparepart
	err := row.Scan(
		&sp.ID, &sp.Code, &sp.Name, &sp.Category, &sp.Unit, &sp.MinStock,
		&sp.CurrentStock, &sp.Location, &sp.Price, &sp.CreatedAt, &sp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &sp, nil
}

func (r *SparepartRepo) scanRows(rows pgx.Rows) ([]*entity.Sparepart, error) {
	var list []*entity.Sparepart
	for rows.Next() {
		var sp entity.Sparepart
		if err := rows.Scan(
			&sp.ID, &sp.Code, &sp.Name, &sp.Category, &sp.Unit, &sp.MinStock,
			&sp.CurrentStock, &sp.Location, &sp.Price, &sp.CreatedAt, &sp.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan sparepart: %w", err)
		}
		list = append(list, &sp)
	}
	return list, rows.Err()
}
