package repository

import (
	"time"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// StockOutRepository define el puerto de persistencia para solicitudes de salida.
type StockOutRepository interface {
	Create(out *entity.StockOut) error
	GetByID(id string) (*entity.StockOut, error)
	// Approve marca la solicitud como aprobada solo si sigue en pending.
	// Devuelve false si ninguna fila cambió (ya no estaba pending).
	Approve(id, approvedBy string, approvedAt time.Time) (bool, error)
	// Reject marca la solicitud como rechazada solo si sigue en pending.
	Reject(id, reason string) (bool, error)
	List(status string, limit, offset int) ([]*entity.StockOut, error)
	CountByStatus(status string) (int64, error)
	Delete(id string) error
}
