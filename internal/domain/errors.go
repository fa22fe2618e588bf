package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrProductNotFound   = errors.New("producto no encontrado")
	ErrWarehouseNotFound = errors.New("bodega no encontrada")
	ErrOrderNotFound     = errors.New("orden de compra elegible no encontrada")
	ErrOrderFulfilled    = errors.New("orden de compra ya surtida")
	ErrReceiptNotFound   = errors.New("recepción no encontrada")
)
