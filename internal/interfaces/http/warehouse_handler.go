package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
)

// AddProductExecutor es lo que el handler necesita del caso de uso: las dos
// rutas de ejecución del mismo contrato.
type AddProductExecutor interface {
	AddProduct(ctx context.Context, in dto.ProductWarehouseRequest) (int64, error)
	AddProductStoredProcedure(ctx context.Context, in dto.ProductWarehouseRequest) (int64, error)
}

// WarehouseHandler maneja las peticiones HTTP de recepción de mercancía.
type WarehouseHandler struct {
	uc AddProductExecutor
}

// NewWarehouseHandler construye el handler.
func NewWarehouseHandler(uc AddProductExecutor) *WarehouseHandler {
	return &WarehouseHandler{uc: uc}
}

// AddProduct godoc
// @Summary      Registrar recepción de mercancía en bodega
// @Description  Localiza la orden de compra elegible, la marca como surtida e
//               inserta la recepción con precio total, todo en una transacción.
// @Tags         warehouse
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductWarehouseRequest  true  "product_id, warehouse_id, amount (> 0), created_at"
// @Success      201   {object}  dto.AddProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/warehouse/add-product [post]
func (h *WarehouseHandler) AddProduct(c *fiber.Ctx) error {
	return h.handle(c, h.uc.AddProduct)
}

// AddProductStoredProcedure godoc
// @Summary      Registrar recepción vía función almacenada
// @Description  Mismo contrato que add-product, ejecutado del lado del servidor
//               como una sola llamada atómica.
// @Tags         warehouse
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductWarehouseRequest  true  "product_id, warehouse_id, amount (> 0), created_at"
// @Success      201   {object}  dto.AddProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/warehouse/add-product-stored-procedure [post]
func (h *WarehouseHandler) AddProductStoredProcedure(c *fiber.Ctx) error {
	return h.handle(c, h.uc.AddProductStoredProcedure)
}

func (h *WarehouseHandler) handle(c *fiber.Ctx, run func(context.Context, dto.ProductWarehouseRequest) (int64, error)) error {
	var in dto.ProductWarehouseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	id, err := run(c.Context(), in)
	if err != nil {
		return mapEngineError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.AddProductResponse{ID: id})
}

// mapEngineError traduce la taxonomía del motor a códigos HTTP. El original
// colapsaba NotFound y Conflict en 500; aquí se distinguen deliberadamente
// (404/409) para que el cliente pueda reaccionar.
func mapEngineError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrProductNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PRODUCT_NOT_FOUND", Message: domain.ErrProductNotFound.Error()})
	case errors.Is(err, domain.ErrWarehouseNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "WAREHOUSE_NOT_FOUND", Message: domain.ErrWarehouseNotFound.Error()})
	case errors.Is(err, domain.ErrOrderNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "ORDER_NOT_FOUND", Message: domain.ErrOrderNotFound.Error()})
	case errors.Is(err, domain.ErrOrderFulfilled):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ORDER_FULFILLED", Message: domain.ErrOrderFulfilled.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
