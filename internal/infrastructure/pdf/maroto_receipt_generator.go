// Package pdf genera el comprobante de recepción de mercancía en bodega.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Comprobante de Recepción  │  N° Recepción + Fecha  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  BODEGA: nombre + dirección                                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Cantidad | Orden | Precio total           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Almacen-api/internal/application/warehouse"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ warehouse.ReceiptPDFGenerator = (*MarotoReceiptGenerator)(nil)

// MarotoReceiptGenerator implementa warehouse.ReceiptPDFGenerator usando Maroto v2.
type MarotoReceiptGenerator struct{}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// GenerateReceiptPDF genera el PDF y devuelve sus bytes. product y warehouse
// pueden venir nil (catálogo administrado por fuera); se usa el ID como respaldo.
func (g *MarotoReceiptGenerator) GenerateReceiptPDF(
	_ context.Context,
	receipt *entity.Receipt,
	product *entity.Product,
	wh *entity.Warehouse,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Comprobante de Recepción #%d", receipt.ID), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(receipt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(warehouseRow(wh, receipt.WarehouseID))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(detailHeaderRow())
	m.AddRows(detailRow(receipt, product))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generar PDF de recepción: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(receipt *entity.Receipt) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New("COMPROBANTE DE RECEPCIÓN DE MERCANCÍA", props.Text{
				Size: 13, Style: fontstyle.Bold, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(5).Add(
			text.New(fmt.Sprintf("Recepción N° %d", receipt.ID), props.Text{
				Size: 11, Style: fontstyle.Bold, Align: align.Right, Top: 1,
			}),
			text.New("Fecha: "+receipt.CreatedAt.Format("2006-01-02 15:04"), props.Text{
				Size: 9, Color: colorGray, Align: align.Right, Top: 7,
			}),
		),
	)
}

func warehouseRow(wh *entity.Warehouse, warehouseID int64) core.Row {
	name := fmt.Sprintf("Bodega #%d", warehouseID)
	address := ""
	if wh != nil {
		name = wh.Name
		address = wh.Address
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("BODEGA RECEPTORA: "+name, props.Text{
				Size: 10, Style: fontstyle.Bold, Top: 2,
			}),
			text.New(address, props.Text{Size: 9, Color: colorGray, Top: 7}),
		),
	)
}

func detailHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: a,
			Color: colorPrimary, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(7).Add(
		h("Producto", 5, align.Left),
		h("Cantidad", 2, align.Right),
		h("Orden", 2, align.Right),
		h("Precio total", 3, align.Right),
	)
}

func detailRow(receipt *entity.Receipt, product *entity.Product) core.Row {
	name := fmt.Sprintf("Producto #%d", receipt.ProductID)
	if product != nil {
		name = product.Name
	}
	return row.New(8).Add(
		col.New(5).Add(text.New(name, props.Text{Size: 9, Top: 2})),
		col.New(2).Add(text.New(fmt.Sprintf("%d", receipt.Amount), props.Text{
			Size: 9, Align: align.Right, Top: 2,
		})),
		col.New(2).Add(text.New(fmt.Sprintf("#%d", receipt.OrderID), props.Text{
			Size: 9, Align: align.Right, Top: 2,
		})),
		col.New(3).Add(text.New("$ "+receipt.Price.StringFixed(2), props.Text{
			Size: 9, Style: fontstyle.Bold, Align: align.Right, Top: 2,
		})),
	)
}
