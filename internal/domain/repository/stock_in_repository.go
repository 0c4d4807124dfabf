package repository

import "github.com/tu-usuario/almacen-api/internal/domain/entity"

// StockInRepository define el puerto de persistencia para entradas de stock.
type StockInRepository interface {
	Create(in *entity.StockIn) error
	GetByID(id string) (*entity.StockIn, error)
	ListBySparepart(sparepartID string, limit, offset int) ([]*entity.StockIn, error)
	List(limit, offset int) ([]*entity.StockIn, error)
	Delete(id string) error
}
