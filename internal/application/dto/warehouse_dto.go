package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductWarehouseRequest body para POST /api/warehouse/add-product.
// CreatedAt es el filtro de orden: solo califican órdenes creadas antes.
type ProductWarehouseRequest struct {
	ProductID   int64     `json:"product_id"`
	WarehouseID int64     `json:"warehouse_id"`
	Amount      int64     `json:"amount"`
	CreatedAt   time.Time `json:"created_at"`
}

// AddProductResponse respuesta de una recepción registrada.
type AddProductResponse struct {
	ID int64 `json:"id"`
}

// ReceiptResponse representación HTTP de una recepción.
type ReceiptResponse struct {
	ID          int64           `json:"id"`
	ProductID   int64           `json:"product_id"`
	WarehouseID int64           `json:"warehouse_id"`
	Amount      int64           `json:"amount"`
	Price       decimal.Decimal `json:"price"`
	CreatedAt   time.Time       `json:"created_at"`
	OrderID     int64           `json:"order_id"`
}

// ReceiptListResponse listado paginado de recepciones. Count es la cantidad
// de elementos de la página, no el total de filas de la tabla.
type ReceiptListResponse struct {
	Count    int               `json:"count"`
	Receipts []ReceiptResponse `json:"receipts"`
}
