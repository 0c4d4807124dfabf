package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.OpnameRepository = (*OpnameRepo)(nil)

// OpnameRepo implementación del puerto OpnameRepository sobre PostgreSQL (usable con pool o tx).
type OpnameRepo struct {
	q Querier
}

// NewOpnameRepository construye el adaptador de persistencia para tomas físicas. Pasar pool o tx (Querier).
func NewOpnameRepository(q Querier) *OpnameRepo {
	return &OpnameRepo{q: q}
}

// CreateSession persiste la cabecera de una toma física.
func (r *OpnameRepo) CreateSession(s *entity.OpnameSession) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO opname_sessions (id, notes, created_at, created_by)
		VALUES ($1, $2, $3, $4)`,
		s.ID, s.Notes, s.CreatedAt, s.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert opname session: %w", err)
	}
	return nil
}

// CreateItem persiste un ítem contado con diferencia distinta de cero.
func (r *OpnameRepo) CreateItem(item *entity.OpnameItem) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO opname_items (id, session_id, sparepart_id, system_stock, physical_stock, difference, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		item.ID, item.SessionID, item.SparepartID, item.SystemStock, item.PhysicalStock, item.Difference, item.Notes,
	)
	if err != nil {
		return fmt.Errorf("insert opname item: %w", err)
	}
	return nil
}

// GetSession obtiene la cabecera de una toma física por ID.
func (r *OpnameRepo) GetSession(id string) (*entity.OpnameSession, error) {
	var s entity.OpnameSession
	err := r.q.QueryRow(context.Background(),
		`SELECT id, notes, created_at, created_by FROM opname_sessions WHERE id = $1`, id,
	).Scan(&s.ID, &s.Notes, &s.CreatedAt, &s.CreatedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get opname session: %w", err)
	}
	return &s, nil
}

// ListSessions lista tomas físicas, más recientes primero.
func (r *OpnameRepo) ListSessions(limit, offset int) ([]*entity.OpnameSession, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, notes, created_at, created_by FROM opname_sessions
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list opname sessions: %w", err)
	}
	defer rows.Close()

	var list []*entity.OpnameSession
	for rows.Next() {
		var s entity.OpnameSession
		if err := rows.Scan(&s.ID, &s.Notes, &s.CreatedAt, &s.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan opname session: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// ListItems lista los ítems de una toma física.
func (r *OpnameRepo) ListItems(sessionID string) ([]*entity.OpnameItem, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, session_id, sparepart_id, system_stock, physical_stock, difference, notes
		FROM opname_items WHERE session_id = $1 ORDER BY sparepart_id`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list opname items: %w", err)
	}
	defer rows.Close()

	var list []*entity.OpnameItem
	for rows.Next() {
		var item entity.OpnameItem
		if err := rows.Scan(&item.ID, &item.SessionID, &item.SparepartID, &item.SystemStock, &item.PhysicalStock, &item.Difference, &item.Notes); err != nil {
			return nil, fmt.Errorf("scan opname item: %w", err)
		}
		list = append(list, &item)
	}
	return list, rows.Err()
}
