package warehouse

import (
	"context"
	"time"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de
// recepciones: Commit si fn retorna nil, Rollback en cualquier otro caso.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		warehouseRepo repository.WarehouseRepository,
		orderRepo repository.OrderRepository,
		receiptRepo repository.ReceiptRepository,
	) error) error
}

// ProcedureRunner es la ruta alterna del mismo contrato: los siete pasos se
// ejecutan del lado del servidor como una sola llamada atómica que devuelve
// el ID generado de la recepción.
type ProcedureRunner interface {
	AddProductToWarehouse(ctx context.Context, productID, warehouseID, amount int64, createdAt time.Time) (int64, error)
}

// ReceiptPDFGenerator genera el comprobante de recepción en PDF.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, receipt *entity.Receipt, product *entity.Product, warehouse *entity.Warehouse) ([]byte, error)
}
