package repository

import (
	"time"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// OrderRepository define el puerto para consultar y surtir órdenes de compra.
// Usado dentro de transacciones para garantizar consistencia.
type OrderRepository interface {
	// FindEligibleForUpdate busca la primera orden con el mismo producto y la
	// misma cantidad creada antes de `before`, bloqueando la fila
	// (SELECT FOR UPDATE). Desempate determinista: created_at más antiguo y
	// luego id más bajo. Devuelve nil si no hay ninguna.
	FindEligibleForUpdate(productID, amount int64, before time.Time) (*entity.Order, error)
	// MarkFulfilled escribe el timestamp de surtido de la orden.
	MarkFulfilled(orderID int64, fulfilledAt time.Time) error
}
