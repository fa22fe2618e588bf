package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receipt representa la recepción de mercancía en bodega (tabla
// product_warehouse): qué producto entró, a qué bodega, cuánto, a qué precio
// total y contra qué orden de compra. Se crea una sola vez por orden surtida
// y nunca se actualiza ni elimina.
type Receipt struct {
	ID          int64
	ProductID   int64
	WarehouseID int64
	Amount      int64
	Price       decimal.Decimal // precio total: unitario de la orden × cantidad
	CreatedAt   time.Time
	OrderID     int64
}
