// Package pdf implementa la hoja resumen de pedido con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: N° Pedido + Estado actual  │  Fecha + Entrega      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + contacto                                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Historial de estados (fecha | estado | nota)        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Diamantes consumidos (lote | ct | piedras)          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL DEL PEDIDO                                           │
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

	"github.com/jmestre/joyeria-api/internal/application/orders"
	"github.com/jmestre/joyeria-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 40, Green: 40, Blue: 90}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ orders.OrderPDFGenerator = (*MarotoOrderPDFGenerator)(nil)

// MarotoOrderPDFGenerator implementa orders.OrderPDFGenerator usando Maroto v2.
type MarotoOrderPDFGenerator struct{}

// NewMarotoOrderPDFGenerator construye el generador.
func NewMarotoOrderPDFGenerator() *MarotoOrderPDFGenerator { return &MarotoOrderPDFGenerator{} }

// GenerateOrderPDF genera la hoja resumen y devuelve sus bytes.
func (g *MarotoOrderPDFGenerator) GenerateOrderPDF(
	_ context.Context,
	order *entity.Order,
	customer *entity.Customer,
	history []*entity.OrderStatusEntry,
	movements []*entity.ParcelMovement,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Hoja de pedido "+order.OrderNumber, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Historial de estados
	m.AddRows(sectionTitleRow("HISTORIAL DE ESTADOS"))
	for _, r := range historyRows(history) {
		m.AddRows(r)
	}

	// Diamantes consumidos
	if len(movements) > 0 {
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
		m.AddRows(sectionTitleRow("DIAMANTES DEL PEDIDO"))
		for _, r := range movementRows(movements) {
			m.AddRows(r)
		}
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(totalRow(order))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: número de pedido + estado (izq), fechas (der).
func headerRow(order *entity.Order) core.Row {
	fecha := order.CreatedAt.Format("02/01/2006")
	entrega := "—"
	if order.DueDate != nil {
		entrega = order.DueDate.Format("02/01/2006")
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New("PEDIDO "+order.OrderNumber, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Estado: "+order.Status, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Fecha: "+fecha, props.Text{
				Size: 9, Align: align.Right, Top: 3, Color: colorGray,
			}),
			text.New("Entrega: "+entrega, props.Text{
				Size: 9, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

// customerRow: datos del cliente.
func customerRow(customer *entity.Customer) core.Row {
	name := "—"
	contact := "—"
	if customer != nil {
		name = customer.Name
		contact = fmt.Sprintf("Email: %s   |   Tel: %s",
			nonEmpty(customer.Email, "—"), nonEmpty(customer.Phone, "—"))
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(contact, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(7).Add(
		col.New(12).Add(text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
		})),
	)
}

// historyRows: una fila por entrada del historial.
func historyRows(history []*entity.OrderStatusEntry) []core.Row {
	result := make([]core.Row, 0, len(history))
	for _, e := range history {
		result = append(result, row.New(6).Add(
			col.New(3).Add(text.New(
				e.CreatedAt.Format("02/01/2006 15:04"),
				props.Text{Size: 8, Top: 1, Color: colorGray},
			)),
			col.New(3).Add(text.New(e.Status, props.Text{
				Style: fontstyle.Bold, Size: 8, Top: 1,
			})),
			col.New(6).Add(text.New(nonEmpty(e.Comment, ""), props.Text{
				Size: 8, Top: 1, Color: colorGray,
			})),
		))
	}
	return result
}

// movementRows: una fila por movimiento de diamantes del pedido.
func movementRows(movements []*entity.ParcelMovement) []core.Row {
	result := make([]core.Row, 0, len(movements))
	for _, mv := range movements {
		result = append(result, row.New(6).Add(
			col.New(4).Add(text.New("Lote "+mv.ParcelID, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(mv.Type, props.Text{Size: 8, Top: 1, Color: colorGray})),
			col.New(3).Add(text.New(
				mv.CtWeight.StringFixed(2)+" ct",
				props.Text{Size: 8, Align: align.Right, Top: 1},
			)),
			col.New(3).Add(text.New(
				fmt.Sprintf("%d piedras", mv.Stones),
				props.Text{Size: 8, Align: align.Right, Top: 1},
			)),
		))
	}
	return result
}

// totalRow: total del pedido.
func totalRow(order *entity.Order) core.Row {
	return row.New(10).Add(
		col.New(12).Add(text.New(
			"TOTAL DEL PEDIDO: $"+order.TotalPrice.StringFixed(2),
			props.Text{Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorPrimary, Top: 2},
		)),
	)
}

func nonEmpty(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
