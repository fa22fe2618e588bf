package warehouse

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// ReceiptQueryUseCase consultas de solo lectura sobre recepciones.
type ReceiptQueryUseCase struct {
	receiptRepo repository.ReceiptRepository
}

// NewReceiptQueryUseCase construye el caso de uso.
func NewReceiptQueryUseCase(receiptRepo repository.ReceiptRepository) *ReceiptQueryUseCase {
	return &ReceiptQueryUseCase{receiptRepo: receiptRepo}
}

// GetByID obtiene una recepción por ID.
func (uc *ReceiptQueryUseCase) GetByID(_ context.Context, id int64) (*dto.ReceiptResponse, error) {
	receipt, err := uc.receiptRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, domain.ErrReceiptNotFound
	}
	resp := toReceiptResponse(receipt)
	return &resp, nil
}

// List lista recepciones con paginación.
func (uc *ReceiptQueryUseCase) List(_ context.Context, page dto.PageRequest) (*dto.ReceiptListResponse, error) {
	page.DefaultPage()
	list, err := uc.receiptRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReceiptResponse, 0, len(list))
	for _, r := range list {
		items = append(items, toReceiptResponse(r))
	}
	return &dto.ReceiptListResponse{Count: len(items), Receipts: items}, nil
}

func toReceiptResponse(r *entity.Receipt) dto.ReceiptResponse {
	return dto.ReceiptResponse{
		ID:          r.ID,
		ProductID:   r.ProductID,
		WarehouseID: r.WarehouseID,
		Amount:      r.Amount,
		Price:       r.Price,
		CreatedAt:   r.CreatedAt,
		OrderID:     r.OrderID,
	}
}
