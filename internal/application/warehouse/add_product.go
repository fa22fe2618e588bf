package warehouse

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/clock"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// AddProductUseCase registra la recepción de mercancía en bodega de forma
// transaccional: verifica producto y bodega, localiza la orden de compra
// elegible (con bloqueo de fila), la marca como surtida e inserta la
// recepción con el precio total. Commit si todo pasa, Rollback si algo falla.
type AddProductUseCase struct {
	txRunner TxRunner
	proc     ProcedureRunner
	clock    clock.Clock
}

// NewAddProductUseCase construye el caso de uso.
func NewAddProductUseCase(txRunner TxRunner, proc ProcedureRunner, clk clock.Clock) *AddProductUseCase {
	return &AddProductUseCase{txRunner: txRunner, proc: proc, clock: clk}
}

// validate rechaza requests estructuralmente inválidos antes de tocar la BD.
// Sin efectos secundarios.
func validate(in dto.ProductWarehouseRequest) error {
	if in.ProductID <= 0 || in.WarehouseID <= 0 || in.CreatedAt.IsZero() {
		return domain.ErrInvalidInput
	}
	if in.Amount <= 0 {
		return domain.ErrInvalidInput
	}
	return nil
}

// AddProduct ejecuta la secuencia completa dentro de una transacción y
// devuelve el ID generado de la recepción.
func (uc *AddProductUseCase) AddProduct(ctx context.Context, in dto.ProductWarehouseRequest) (int64, error) {
	if err := validate(in); err != nil {
		return 0, err
	}

	var insertedID int64
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		warehouseRepo repository.WarehouseRepository,
		orderRepo repository.OrderRepository,
		receiptRepo repository.ReceiptRepository,
	) error {
		ok, err := productRepo.Exists(in.ProductID)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrProductNotFound
		}

		ok, err = warehouseRepo.Exists(in.WarehouseID)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrWarehouseNotFound
		}

		// Bloquea la fila de la orden (SELECT FOR UPDATE): dos recepciones
		// concurrentes sobre la misma orden se serializan aquí.
		order, err := orderRepo.FindEligibleForUpdate(in.ProductID, in.Amount, in.CreatedAt)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrOrderNotFound
		}

		fulfilled, err := receiptRepo.ExistsForOrder(order.ID)
		if err != nil {
			return err
		}
		if fulfilled {
			return domain.ErrOrderFulfilled
		}

		now := uc.clock.Now()
		if err := orderRepo.MarkFulfilled(order.ID, now); err != nil {
			return err
		}

		receipt := &entity.Receipt{
			ProductID:   in.ProductID,
			WarehouseID: in.WarehouseID,
			Amount:      in.Amount,
			Price:       order.TotalFor(in.Amount),
			CreatedAt:   now,
			OrderID:     order.ID,
		}
		if err := receiptRepo.Create(receipt); err != nil {
			return err
		}
		insertedID = receipt.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return insertedID, nil
}

// AddProductStoredProcedure ejecuta el mismo contrato vía la función
// almacenada add_product_to_warehouse: misma condición de éxito, misma
// taxonomía de errores, mismo estado final persistido.
func (uc *AddProductUseCase) AddProductStoredProcedure(ctx context.Context, in dto.ProductWarehouseRequest) (int64, error) {
	if err := validate(in); err != nil {
		return 0, err
	}
	return uc.proc.AddProductToWarehouse(ctx, in.ProductID, in.WarehouseID, in.Amount, in.CreatedAt)
}
