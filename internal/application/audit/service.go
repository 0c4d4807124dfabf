package audit

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
	"github.com/tu-usuario/almacen-api/pkg/logger"
)

// Service escribe la bitácora de auditoría y seguridad. El actor se pasa
// explícitamente en cada llamada; no hay un "usuario actual" implícito.
// Un fallo al escribir la bitácora no debe tumbar la operación de negocio:
// se registra en el log y se continúa.
type Service struct {
	repo repository.AuditRepository
	log  *logger.Logger
}

// NewService construye el servicio de bitácora.
func NewService(repo repository.AuditRepository, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Record registra una acción de negocio (CREATE/UPDATE/DELETE/APPROVE/...).
func (s *Service) Record(actorID, action, entityName, entityID, detail string) {
	s.write(entity.AuditKindAudit, actorID, action, entityName, entityID, detail, "")
}

// RecordSecurity registra un evento de seguridad (login fallido, token inválido).
func (s *Service) RecordSecurity(actorID, action, detail, ip string) {
	s.write(entity.AuditKindSecurity, actorID, action, "", "", detail, ip)
}

func (s *Service) write(kind, actorID, action, entityName, entityID, detail, ip string) {
	l := &entity.AuditLog{
		ID:        uuid.New().String(),
		Kind:      kind,
		ActorID:   actorID,
		Action:    action,
		Entity:    entityName,
		EntityID:  entityID,
		Detail:    detail,
		IP:        ip,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Create(l); err != nil {
		s.log.Error().Err(err).
			Str("action", action).
			Str("entity", entityName).
			Msg("no se pudo escribir la bitácora")
	}
}

// List lista la bitácora con filtros opcionales por kind y entidad.
func (s *Service) List(kind, entityName string, limit, offset int) (*dto.AuditListResponse, error) {
	list, err := s.repo.List(kind, entityName, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AuditLogResponse, 0, len(list))
	for _, l := range list {
		items = append(items, dto.AuditLogResponse{
			ID:        l.ID,
			Kind:      l.Kind,
			ActorID:   l.ActorID,
			Action:    l.Action,
			Entity:    l.Entity,
			EntityID:  l.EntityID,
			Detail:    l.Detail,
			IP:        l.IP,
			CreatedAt: l.CreatedAt,
		})
	}
	return &dto.AuditListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}
