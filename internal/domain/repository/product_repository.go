package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Exists(id int64) (bool, error)
	GetByID(id int64) (*entity.Product, error)
}
