package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.AuditRepository = (*AuditRepo)(nil)

// AuditRepo implementación del puerto AuditRepository sobre PostgreSQL (append-only).
type AuditRepo struct {
	q Querier
}

// NewAuditRepository construye el adaptador de persistencia para la bitácora. Pasar pool o tx (Querier).
func NewAuditRepository(q Querier) *AuditRepo {
	return &AuditRepo{q: q}
}

const auditColumns = `id, kind, actor_id, action, entity, entity_id, detail, ip, created_at`

// Create persiste un registro de la bitácora.
func (r *AuditRepo) Create(l *entity.AuditLog) error {
	query := `
		INSERT INTO audit_logs (` + auditColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		l.ID, l.Kind, l.ActorID, l.Action, l.Entity, l.EntityID, l.Detail, l.IP, l.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}

// List lista la bitácora con filtros opcionales por kind y entidad, más recientes primero.
func (r *AuditRepo) List(kind, entityName string, limit, offset int) ([]*entity.AuditLog, error) {
	query := `SELECT ` + auditColumns + ` FROM audit_logs`
	args := []any{}
	where := ""
	if kind != "" {
		args = append(args, kind)
		where = fmt.Sprintf(` WHERE kind = $%d`, len(args))
	}
	if entityName != "" {
		args = append(args, entityName)
		if where == "" {
			where = fmt.Sprintf(` WHERE entity = $%d`, len(args))
		} else {
			where += fmt.Sprintf(` AND entity = $%d`, len(args))
		}
	}
	query += where + fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}
	defer rows.Close()

	var list []*entity.AuditLog
	for rows.Next() {
		var l entity.AuditLog
		if err := rows.Scan(&l.ID, &l.Kind, &l.ActorID, &l.Action, &l.Entity, &l.EntityID, &l.Detail, &l.IP, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan audit log: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
