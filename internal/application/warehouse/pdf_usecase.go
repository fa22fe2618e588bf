package warehouse

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// ReceiptPDFUseCase arma el comprobante de recepción en PDF: carga la
// recepción con su producto y bodega y delega el render al generador.
type ReceiptPDFUseCase struct {
	receiptRepo   repository.ReceiptRepository
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
	generator     ReceiptPDFGenerator
}

// NewReceiptPDFUseCase construye el caso de uso.
func NewReceiptPDFUseCase(
	receiptRepo repository.ReceiptRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	generator ReceiptPDFGenerator,
) *ReceiptPDFUseCase {
	return &ReceiptPDFUseCase{
		receiptRepo:   receiptRepo,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		generator:     generator,
	}
}

// Generate devuelve los bytes del PDF del comprobante.
func (uc *ReceiptPDFUseCase) Generate(ctx context.Context, receiptID int64) ([]byte, error) {
	receipt, err := uc.receiptRepo.GetByID(receiptID)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, domain.ErrReceiptNotFound
	}
	product, err := uc.productRepo.GetByID(receipt.ProductID)
	if err != nil {
		return nil, err
	}
	warehouse, err := uc.warehouseRepo.GetByID(receipt.WarehouseID)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateReceiptPDF(ctx, receipt, product, warehouse)
}
