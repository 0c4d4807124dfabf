package repository

import (
	"time"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// WarrantyRepository define el puerto de persistencia para garantías.
type WarrantyRepository interface {
	Create(w *entity.Warranty) error
	GetByID(id string) (*entity.Warranty, error)
	GetByStockInID(stockInID string) (*entity.Warranty, error)
	// Claim marca la garantía como reclamada solo si sigue active.
	// Devuelve false si ninguna fila cambió.
	Claim(id string, claimedAt time.Time) (bool, error)
	// ListExpiring lista garantías activas que vencen antes de la fecha dada.
	ListExpiring(before time.Time, limit, offset int) ([]*entity.Warranty, error)
	List(limit, offset int) ([]*entity.Warranty, error)
	CountExpiring(before time.Time) (int64, error)
	DeleteByStockInID(stockInID string) error
}
