package repository

import "github.com/tu-usuario/almacen-api/internal/domain/entity"

// OpnameRepository define el puerto de persistencia para tomas físicas de
// inventario. Solo se usa dentro de la transacción del conteo.
type OpnameRepository interface {
	CreateSession(s *entity.OpnameSession) error
	CreateItem(item *entity.OpnameItem) error
	GetSession(id string) (*entity.OpnameSession, error)
	ListSessions(limit, offset int) ([]*entity.OpnameSession, error)
	ListItems(sessionID string) ([]*entity.OpnameItem, error)
}
