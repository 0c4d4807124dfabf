package repository

import "github.com/tu-usuario/almacen-api/internal/domain/entity"

// AuditRepository define el puerto de persistencia para la bitácora (append-only).
type AuditRepository interface {
	Create(l *entity.AuditLog) error
	List(kind, entityName string, limit, offset int) ([]*entity.AuditLog, error)
}
