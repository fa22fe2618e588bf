package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/warehouse"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AddProduct *warehouse.AddProductUseCase
	Receipts   *warehouse.ReceiptQueryUseCase
	ReceiptPDF *warehouse.ReceiptPDFUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Recepción de mercancía
	wh := api.Group("/warehouse")
	warehouseHandler := NewWarehouseHandler(deps.AddProduct)
	wh.Post("/add-product", warehouseHandler.AddProduct)
	wh.Post("/add-product-stored-procedure", warehouseHandler.AddProductStoredProcedure)

	// Consultas de recepciones
	receipts := api.Group("/receipts")
	receiptsHandler := NewReceiptsHandler(deps.Receipts, deps.ReceiptPDF)
	receipts.Get("/", receiptsHandler.List)
	receipts.Get("/:id", receiptsHandler.GetByID)
	receipts.Get("/:id/pdf", receiptsHandler.GetPDF)
}
