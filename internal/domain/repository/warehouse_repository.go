package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// WarehouseRepository define el puerto de persistencia para Warehouse (DIP).
type WarehouseRepository interface {
	Exists(id int64) (bool, error)
	GetByID(id int64) (*entity.Warehouse, error)
}
