// Package pdf implementa la generación de la remisión de despacho en A4.
//
// Layout de la página:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Cervecería + N° Remisión │ N° Pedido + Fechas       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + NIT/CC + dirección de entrega             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | Formato                            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: Observaciones + firmas de entrega y recibido        │
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

	"github.com/jhoicas/Cerveceria-api/internal/application/reports"
	"github.com/jhoicas/Cerveceria-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 122, Green: 74, Blue: 14}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// DispatchNoteGenerator implementa reports.DispatchNotePDFGenerator usando Maroto v2.
type DispatchNoteGenerator struct {
	breweryName string
}

// NewDispatchNoteGenerator construye el generador con el nombre de la cervecería
// que encabeza el documento.
func NewDispatchNoteGenerator(breweryName string) *DispatchNoteGenerator {
	return &DispatchNoteGenerator{breweryName: breweryName}
}

// GenerateDispatchNote genera el PDF y devuelve sus bytes.
func (g *DispatchNoteGenerator) GenerateDispatchNote(
	_ context.Context,
	order *entity.Order,
	customer *entity.Customer,
	lines []reports.DispatchLine,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Remisión de despacho "+order.Number, true).
		WithAuthor(g.breweryName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	for _, r := range footerRows(order) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar remisión: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: cervecería (izq) y número de pedido + fechas (der).
func (g *DispatchNoteGenerator) headerRow(order *entity.Order) core.Row {
	fecha := order.OrderDate.Format("02/01/2006")
	entrega := "por confirmar"
	if order.DeliveryDate != nil {
		entrega = order.DeliveryDate.Format("02/01/2006")
	}

	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.breweryName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("REMISIÓN DE DESPACHO", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Pedido "+order.Number, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 1,
			}),
			text.New("Fecha pedido: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
			text.New("Entrega: "+entrega, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// customerRow: datos del cliente que recibe la mercancía.
func customerRow(customer *entity.Customer) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("ENTREGAR A", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(customer.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("NIT/CC: %s   |   Dirección: %s   |   Tel: %s",
				nonEmpty(customer.TaxID, "—"),
				nonEmpty(customer.Address, "—"),
				nonEmpty(customer.Phone, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de renglones.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 2, align.Center),
		h("Producto", 7, align.Left),
		h("Formato", 3, align.Center),
	)
}

// tableDetailRows: una fila por renglón despachado.
func tableDetailRows(lines []reports.DispatchLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				l.Quantity.StringFixed(0),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(7).Add(text.New(
				l.ProductName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				string(l.Format),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
		))
	}
	return result
}

// footerRows: observaciones del pedido y líneas de firma.
func footerRows(order *entity.Order) []core.Row {
	rows := []core.Row{}

	if order.Notes != "" {
		rows = append(rows, row.New(10).Add(col.New(12).Add(
			text.New("Observaciones:", props.Text{
				Style: fontstyle.Bold, Size: 8, Top: 1,
			}),
			text.New(order.Notes, props.Text{Size: 8, Top: 6, Color: colorGray}),
		)))
	}

	rows = append(rows, row.New(8))
	rows = append(rows, row.New(16).Add(
		col.New(5).Add(
			text.New("_______________________________", props.Text{Size: 9, Top: 6, Align: align.Center}),
			text.New("Entrega (cervecería)", props.Text{Size: 8, Top: 12, Align: align.Center, Color: colorGray}),
		),
		col.New(2),
		col.New(5).Add(
			text.New("_______________________________", props.Text{Size: 9, Top: 6, Align: align.Center}),
			text.New("Recibido (cliente)", props.Text{Size: 8, Top: 12, Align: align.Center, Color: colorGray}),
		),
	))

	rows = append(rows, row.New(8).Add(col.New(12).Add(
		text.New(
			"Este documento soporta la entrega física de la mercancía relacionada. "+
				"Cualquier novedad debe anotarse al momento de la recepción.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	)))

	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
