package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/warehouse"
	"github.com/jhoicas/Almacen-api/internal/domain"
)

// ReceiptsHandler maneja las consultas de recepciones y su comprobante PDF.
type ReceiptsHandler struct {
	query *warehouse.ReceiptQueryUseCase
	pdf   *warehouse.ReceiptPDFUseCase
}

// NewReceiptsHandler construye el handler.
func NewReceiptsHandler(query *warehouse.ReceiptQueryUseCase, pdf *warehouse.ReceiptPDFUseCase) *ReceiptsHandler {
	return &ReceiptsHandler{query: query, pdf: pdf}
}

// GetByID godoc
// @Summary      Consultar una recepción
// @Tags         receipts
// @Produce      json
// @Param        id   path      int  true  "ID de la recepción"
// @Success      200  {object}  dto.ReceiptResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/receipts/{id} [get]
func (h *ReceiptsHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	receipt, err := h.query.GetByID(c.Context(), int64(id))
	if err != nil {
		if errors.Is(err, domain.ErrReceiptNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: domain.ErrReceiptNotFound.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(receipt)
}

// List godoc
// @Summary      Listar recepciones
// @Tags         receipts
// @Produce      json
// @Param        limit   query  int  false  "Máximo de filas (def. 20, máx. 100)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.ReceiptListResponse
// @Router       /api/receipts [get]
func (h *ReceiptsHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paginación inválida"})
	}
	list, err := h.query.List(c.Context(), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// GetPDF godoc
// @Summary      Comprobante de recepción en PDF
// @Tags         receipts
// @Produce      application/pdf
// @Param        id   path      int  true  "ID de la recepción"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/receipts/{id}/pdf [get]
func (h *ReceiptsHandler) GetPDF(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	pdfBytes, err := h.pdf.Generate(c.Context(), int64(id))
	if err != nil {
		if errors.Is(err, domain.ErrReceiptNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: domain.ErrReceiptNotFound.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(pdfBytes)
}
