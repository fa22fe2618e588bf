package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// ReceiptRepository define el puerto de persistencia para recepciones
// (product_warehouse).
type ReceiptRepository interface {
	// ExistsForOrder indica si ya existe una recepción que referencia la orden.
	ExistsForOrder(orderID int64) (bool, error)
	// Create persiste la recepción y asigna el ID generado en receipt.ID.
	Create(receipt *entity.Receipt) error
	GetByID(id int64) (*entity.Receipt, error)
	List(limit, offset int) ([]*entity.Receipt, error)
}
