package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order representa una orden de compra por un producto y una cantidad.
// Price es el precio unitario pactado. FulfilledAt se escribe una sola vez,
// dentro de la misma transacción que crea la recepción.
type Order struct {
	ID          int64
	ProductID   int64
	Amount      int64
	Price       decimal.Decimal // precio unitario
	CreatedAt   time.Time
	FulfilledAt *time.Time
}

// TotalFor calcula el precio total para la cantidad recibida
// (precio unitario × cantidad, sin redondeo adicional).
func (o *Order) TotalFor(amount int64) decimal.Decimal {
	return o.Price.Mul(decimal.NewFromInt(amount))
}
